package service

import (
	"context"
	"errors"
	"time"

	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CharitiesService struct {
	repo    repository.Charities
	orphans Orphans
	watcher AddressWatcher
	db      *gorm.DB
	l       logger.Logger
}

func NewCharitiesService(db *gorm.DB, repo repository.Charities, orphans Orphans, watcher AddressWatcher, l logger.Logger) *CharitiesService {
	return &CharitiesService{db: db, repo: repo, orphans: orphans, watcher: watcher, l: l}
}

const COMPENSATE_TIMEOUT = 10 * time.Second

// Onboard registers the wallet with the address watcher and persists the
// charity. The two systems cannot commit atomically, so the harder-to-undo
// operation (the external subscription) goes first and a failed local insert
// is compensated by a single cancel.
func (s *CharitiesService) Onboard(ctx context.Context, name, description, walletAddress string) (*domain.Charities, error) {
	// fast path. the unique index stays the authority for races
	_, err := s.repo.FindByWalletAddress(s.db, walletAddress)
	if err == nil {
		return nil, domain.ErrDuplicateWallet
	}
	if !postgres.IsNotFound(err) {
		s.l.Debug("find by wallet error: "+err.Error(), "wallet", walletAddress)
		return nil, domain.ErrPersistenceFailed
	}

	subscriptionID, err := s.watcher.Subscribe(ctx, walletAddress)
	if err != nil {
		s.l.Debug("subscribe error: "+err.Error(), "wallet", walletAddress)
		return nil, domain.ErrSubscriptionFailed
	}

	charity := &domain.Charities{
		CharityID:      uuid.NewString(),
		Name:           name,
		Description:    description,
		WalletAddress:  walletAddress,
		SubscriptionID: subscriptionID,
	}

	err = s.repo.Create(s.db, charity)
	if err == nil {
		return charity, nil
	}

	s.compensate(subscriptionID, walletAddress)

	if errors.Is(err, domain.ErrDuplicateWallet) {
		return nil, domain.ErrDuplicateWallet
	}

	s.l.Debug("create charity error: "+err.Error(), "wallet", walletAddress)
	return nil, domain.ErrPersistenceFailed
}

// cancellation is best-effort. a failure leaves an orphaned subscription on
// the watcher side, recorded for the sweep and never masking the insert error.
// runs on its own context: the request context may already be dead
func (s *CharitiesService) compensate(subscriptionID, walletAddress string) {
	ctx, cancel := context.WithTimeout(context.Background(), COMPENSATE_TIMEOUT)
	defer cancel()

	err := s.watcher.Unsubscribe(ctx, subscriptionID)
	if err == nil {
		return
	}

	s.l.TemplSweepErr("compensating unsubscribe failed", subscriptionID, err)

	if err := s.orphans.Record(s.db, subscriptionID, walletAddress, domain.ORPHAN_REASON_CANCEL_FAILED); err != nil {
		s.l.TemplSweepErr("orphan record failed", subscriptionID, err)
	}
}

func (s *CharitiesService) FindByCharityID(tx *gorm.DB, charityID string) (*domain.Charities, error) {
	charity, err := s.repo.FindByCharityID(tx, charityID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}
	return charity, nil
}

func (s *CharitiesService) List(tx *gorm.DB) ([]domain.Charities, error) {
	return s.repo.List(tx)
}
