package repository

import (
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"

	"gorm.io/gorm"
)

type OrphansRepo struct {
}

func InitOrphansRepo() *OrphansRepo {
	return &OrphansRepo{}
}

// one row per subscription id, repeated records are no-ops
func (r *OrphansRepo) Create(tx *gorm.DB, orphan *domain.Orphans) error {
	_, err := r.find(tx, orphan.SubscriptionID)
	if err != nil {
		if !postgres.IsNotFound(err) {
			return err
		}
		orphan.Status = domain.ORPHAN_STATUS_NEW
		err := tx.Create(orphan).Error
		if postgres.IsDuplicate(err) { // lost the race, row exists
			return nil
		}
		return err
	}
	return nil
}

func (r *OrphansRepo) FindNew(tx *gorm.DB, count int) ([]domain.Orphans, error) {
	var orphans []domain.Orphans
	return orphans, tx.Where(&domain.Orphans{Status: domain.ORPHAN_STATUS_NEW}).Limit(count).Find(&orphans).Error
}

func (r *OrphansRepo) Done(tx *gorm.DB, subscriptionID string) error {
	return tx.Model(&domain.Orphans{}).Where(domain.Orphans{SubscriptionID: subscriptionID}).Update("status", domain.ORPHAN_STATUS_DONE).Error
}

func (r *OrphansRepo) find(tx *gorm.DB, subscriptionID string) (*domain.Orphans, error) {
	var orphan domain.Orphans
	return &orphan, tx.Where(&domain.Orphans{SubscriptionID: subscriptionID}).First(&orphan).Error
}
