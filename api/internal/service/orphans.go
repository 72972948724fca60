package service

import (
	"context"
	"time"

	"watchdog/api/internal/config"
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/repository"
	"watchdog/pkg/nats/watchdomain"

	"gorm.io/gorm"
)

type OrphansService struct {
	repo      repository.Orphans
	charities repository.Charities
	watcher   AddressWatcher
	alerts    AlertPublisher

	db       *gorm.DB
	l        logger.Logger
	interval time.Duration
}

func NewOrphansService(db *gorm.DB, repo repository.Orphans, charities repository.Charities, watcher AddressWatcher, alerts AlertPublisher, l logger.Logger, config *config.Config) *OrphansService {
	return &OrphansService{db: db, repo: repo, charities: charities, watcher: watcher, alerts: alerts, l: l, interval: config.Sweep.Interval}
}

func (s *OrphansService) Record(tx *gorm.DB, subscriptionID, walletAddress, reason string) error {
	return s.repo.Create(tx, &domain.Orphans{
		SubscriptionID: subscriptionID,
		WalletAddress:  walletAddress,
		Reason:         reason,
	})
}

const (
	SWEEP_BATCH   = 20
	SWEEP_TIMEOUT = time.Minute
	// an unclaimed subscription younger than this may belong to an
	// onboarding still in flight between subscribe and insert
	SWEEP_GRACE = 10 * time.Minute
)

// periodic reconciliation of watcher subscriptions against the store.
// checks orphans table and retries cancellation
func (s *OrphansService) StartSweep() {
	go func() {
		for {
			s.sweep()
			time.Sleep(s.interval)
		}
	}()
}

func (s *OrphansService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), SWEEP_TIMEOUT)
	defer cancel()

	s.reconcile(ctx)

	orphans, err := s.repo.FindNew(s.db, SWEEP_BATCH)
	if err != nil {
		s.l.Debug("find orphans error: " + err.Error())
		return
	}

	for _, orphan := range orphans {
		if time.Since(orphan.CreatedAt) < SWEEP_GRACE {
			continue
		}

		// the row may have been claimed since it was flagged
		if _, err := s.charities.FindBySubscriptionID(s.db, orphan.SubscriptionID); err == nil {
			if err := s.repo.Done(s.db, orphan.SubscriptionID); err != nil {
				s.l.TemplSweepErr("orphan done error", orphan.SubscriptionID, err)
			}
			continue
		}

		if err := s.watcher.Unsubscribe(ctx, orphan.SubscriptionID); err != nil {
			s.l.TemplSweepErr("retry unsubscribe failed", orphan.SubscriptionID, err)
			s.alert(orphan)
			continue
		}

		if err := s.repo.Done(s.db, orphan.SubscriptionID); err != nil {
			s.l.TemplSweepErr("orphan done error", orphan.SubscriptionID, err)
			continue
		}

		s.l.TemplSweepInfo("orphaned subscription cancelled", orphan.SubscriptionID)
	}
}

// live subscriptions that no charity owns become orphan rows
func (s *OrphansService) reconcile(ctx context.Context) {
	subscriptions, err := s.watcher.ListSubscriptions(ctx)
	if err != nil {
		s.l.Debug("list subscriptions error: " + err.Error())
		return
	}

	for _, subscription := range subscriptions {
		_, err := s.charities.FindBySubscriptionID(s.db, subscription.ID)
		if err == nil {
			continue
		}
		if !postgres.IsNotFound(err) {
			s.l.Debug("find by subscription error: " + err.Error())
			continue
		}

		err = s.Record(s.db, subscription.ID, subscription.Address, domain.ORPHAN_REASON_UNCLAIMED)
		if err != nil {
			s.l.TemplSweepErr("orphan record failed", subscription.ID, err)
		}
	}
}

func (s *OrphansService) alert(orphan domain.Orphans) {
	err := s.alerts.PublishOrphanAlert(watchdomain.OrphanAlert{
		SubscriptionID: orphan.SubscriptionID,
		WalletAddress:  orphan.WalletAddress,
		Reason:         orphan.Reason,
		Timestamp:      time.Now().UTC(),
	})
	if err != nil {
		s.l.TemplNatsError("publish orphan alert failed", logger.NA, err)
	}
}
