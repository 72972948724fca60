package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transactions struct {
	Model
	ID uint `gorm:"primaryKey"`
	// on-chain tx hash from the notification. natural dedup key
	TxID       string          `gorm:"uniqueIndex;not null"`
	CharityID  string          `gorm:"size:36;not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric"`
	RawPayload string          `gorm:"type:text"` // notification body as received
	ReceivedAt time.Time
}
