package domain

import "time"

const (
	ORPHAN_REASON_CANCEL_FAILED = "cancel_failed" // compensating unsubscribe failed
	ORPHAN_REASON_UNCLAIMED     = "unclaimed"     // live subscription no charity owns
)

const (
	ORPHAN_STATUS_NEW  = "new"
	ORPHAN_STATUS_DONE = "done"
)

// Orphaned subscriptions on the watcher side. Swept periodically until cancelled.
type Orphans struct {
	ID             uint   `gorm:"primaryKey"`
	SubscriptionID string `gorm:"uniqueIndex;not null"`
	WalletAddress  string
	Reason         string `gorm:"type:varchar(255)"` // const ORPHAN_REASON_*
	Status         string // const ORPHAN_STATUS_*
	CreatedAt      time.Time
}
