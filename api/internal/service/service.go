package service

import (
	"context"

	"watchdog/api/internal/config"
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/meerkat"
	"watchdog/api/internal/infra/nats"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/repository"
	"watchdog/pkg/nats/watchdomain"

	"gorm.io/gorm"
)

// boundary around the remote address-watch API. it has its own failure
// domain and latency, every call carries a bounded timeout via ctx
type AddressWatcher interface {
	Subscribe(ctx context.Context, address string) (string, error)
	Unsubscribe(ctx context.Context, subscriptionID string) error
	ListSubscriptions(ctx context.Context) ([]meerkat.Subscription, error)
}

type AlertPublisher interface {
	PublishOrphanAlert(alert watchdomain.OrphanAlert) error
}

type Charities interface {
	Onboard(ctx context.Context, name, description, walletAddress string) (*domain.Charities, error)
	FindByCharityID(tx *gorm.DB, charityID string) (*domain.Charities, error)
	List(tx *gorm.DB) ([]domain.Charities, error)
}

type Donations interface {
	Ingest(notification *domain.AddressNotification, rawPayload []byte) (*domain.Transactions, error)
	ListByCharityID(tx *gorm.DB, charityID string) ([]domain.Transactions, error)
}

type Orphans interface {
	Record(tx *gorm.DB, subscriptionID, walletAddress, reason string) error

	// for autostart only
	StartSweep()
}

type QrCodes interface {
	// generates qr code and saves it to cache
	New(content string) (string, error)
	// returns qr code from cache or generates new one
	FindOrNew(content string) (string, error)
}

type Services struct {
	Orphans   Orphans
	Charities Charities
	Donations Donations
	QrCodes   QrCodes
}

func NewServices(watcher AddressWatcher, natsinfra *nats.NatsInfra, db *gorm.DB, l logger.Logger, config *config.Config) *Services {
	repos := repository.New()
	orphansService := NewOrphansService(db, repos.Orphans, repos.Charities, watcher, natsinfra, l, config)

	return &Services{
		Orphans:   orphansService,
		Charities: NewCharitiesService(db, repos.Charities, orphansService, watcher, l),
		Donations: NewDonationsService(db, repos.Transactions, repos.Charities, l),
		QrCodes:   NewQrCodesService(),
	}
}
