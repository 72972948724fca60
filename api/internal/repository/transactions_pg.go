package repository

import (
	"watchdog/api/internal/domain"
	"watchdog/api/internal/infra/postgres"

	"gorm.io/gorm"
)

type TransactionsRepo struct {
}

func InitTransactionsRepo() *TransactionsRepo {
	return &TransactionsRepo{}
}

// rows are keyed by the on-chain tx hash. redelivery of the same
// notification surfaces as ErrTxAlreadyExists, never a second row
func (r *TransactionsRepo) Create(tx *gorm.DB, transaction *domain.Transactions) error {
	err := tx.Create(transaction).Error
	if postgres.IsDuplicate(err) {
		return domain.ErrTxAlreadyExists
	}
	return err
}

func (r *TransactionsRepo) FindByTxID(tx *gorm.DB, txID string) (*domain.Transactions, error) {
	var transaction domain.Transactions
	return &transaction, tx.Where(&domain.Transactions{TxID: txID}).First(&transaction).Error
}

func (r *TransactionsRepo) ListByCharityID(tx *gorm.DB, charityID string) ([]domain.Transactions, error) {
	var transactions []domain.Transactions
	return transactions, tx.Where(&domain.Transactions{CharityID: charityID}).Order("received_at desc").Find(&transactions).Error
}
