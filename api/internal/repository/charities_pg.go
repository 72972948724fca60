package repository

import (
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"

	"gorm.io/gorm"
)

type CharitiesRepo struct {
}

func InitCharitiesRepo() *CharitiesRepo {
	return &CharitiesRepo{}
}

// the unique index on wallet_address is the serialization point for
// concurrent onboarding: exactly one insert wins
func (r *CharitiesRepo) Create(tx *gorm.DB, charity *domain.Charities) error {
	err := tx.Create(charity).Error
	if postgres.IsDuplicate(err) {
		return domain.ErrDuplicateWallet
	}
	return err
}

func (r *CharitiesRepo) FindByCharityID(tx *gorm.DB, charityID string) (*domain.Charities, error) {
	var charity domain.Charities
	return &charity, tx.Where(&domain.Charities{CharityID: charityID}).First(&charity).Error
}

func (r *CharitiesRepo) FindByWalletAddress(tx *gorm.DB, walletAddress string) (*domain.Charities, error) {
	var charity domain.Charities
	return &charity, tx.Where(&domain.Charities{WalletAddress: walletAddress}).First(&charity).Error
}

func (r *CharitiesRepo) FindBySubscriptionID(tx *gorm.DB, subscriptionID string) (*domain.Charities, error) {
	var charity domain.Charities
	return &charity, tx.Where(&domain.Charities{SubscriptionID: subscriptionID}).First(&charity).Error
}

func (r *CharitiesRepo) List(tx *gorm.DB) ([]domain.Charities, error) {
	var charities []domain.Charities
	return charities, tx.Order("id").Find(&charities).Error
}
