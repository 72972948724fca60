package repository

import (
	"watchdog/api/internal/domain"

	"gorm.io/gorm"
)

type Charities interface {
	Create(tx *gorm.DB, charity *domain.Charities) error
	FindByCharityID(tx *gorm.DB, charityID string) (*domain.Charities, error)
	FindByWalletAddress(tx *gorm.DB, walletAddress string) (*domain.Charities, error)
	FindBySubscriptionID(tx *gorm.DB, subscriptionID string) (*domain.Charities, error)
	List(tx *gorm.DB) ([]domain.Charities, error)
}

type Transactions interface {
	Create(tx *gorm.DB, transaction *domain.Transactions) error
	FindByTxID(tx *gorm.DB, txID string) (*domain.Transactions, error)
	ListByCharityID(tx *gorm.DB, charityID string) ([]domain.Transactions, error)
}

type Orphans interface {
	Create(tx *gorm.DB, orphan *domain.Orphans) error
	FindNew(tx *gorm.DB, count int) ([]domain.Orphans, error)
	Done(tx *gorm.DB, subscriptionID string) error
}

type Repositories struct {
	Charities    Charities
	Transactions Transactions
	Orphans      Orphans
}

func New() *Repositories {
	return &Repositories{
		Charities:    InitCharitiesRepo(),
		Transactions: InitTransactionsRepo(),
		Orphans:      InitOrphansRepo(),
	}
}
