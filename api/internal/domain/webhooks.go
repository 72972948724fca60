package domain

import "github.com/shopspring/decimal"

// notification body sent by the address watcher on wallet activity.
// delivery is at-least-once and unordered, so TxHash is the dedup key.
type AddressNotification struct {
	SubscriptionID string          `json:"subscription_id" validate:"required"`
	TxHash         string          `json:"tx_hash" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
}

const (
	WEBHOOK_STATUS_OK       = "ok"       // durably recorded (or already present)
	WEBHOOK_STATUS_IGNORED  = "ignored"  // acked, no row (orphaned notification)
	WEBHOOK_STATUS_REJECTED = "rejected" // structurally invalid, do not redeliver
)
