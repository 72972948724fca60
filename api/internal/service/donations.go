package service

import (
	"time"

	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/repository"

	"gorm.io/gorm"
)

type DonationsService struct {
	repo      repository.Transactions
	charities repository.Charities
	db        *gorm.DB
	l         logger.Logger
}

func NewDonationsService(db *gorm.DB, repo repository.Transactions, charities repository.Charities, l logger.Logger) *DonationsService {
	return &DonationsService{db: db, repo: repo, charities: charities, l: l}
}

// Ingest records a watcher notification as a transaction row. Delivery is
// at-least-once and unordered, so the row is keyed by the on-chain tx hash:
// a redelivery surfaces as ErrTxAlreadyExists, which callers ack as success.
func (s *DonationsService) Ingest(notification *domain.AddressNotification, rawPayload []byte) (*domain.Transactions, error) {
	charity, err := s.charities.FindBySubscriptionID(s.db, notification.SubscriptionID)
	if err != nil {
		if postgres.IsNotFound(err) {
			// the subscription may have been cancelled between emission and
			// delivery. acked upstream, redelivery cannot fix it
			return nil, domain.ErrUnknownSubscription
		}
		return nil, err
	}

	transaction := &domain.Transactions{
		TxID:       notification.TxHash,
		CharityID:  charity.CharityID,
		Amount:     notification.Amount,
		RawPayload: string(rawPayload),
		ReceivedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(s.db, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

func (s *DonationsService) ListByCharityID(tx *gorm.DB, charityID string) ([]domain.Transactions, error) {
	return s.repo.ListByCharityID(tx, charityID)
}
