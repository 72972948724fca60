package watchdomain

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// nats struct
type Ns struct {
	Nc *nats.Conn
	Js jetstream.JetStream
}

// operator-visible condition: a live Meerkat subscription nobody owns.
// published so ops tooling can reconcile or cancel by hand.
type OrphanAlert struct {
	SubscriptionID string    `json:"subscription_id"`
	WalletAddress  string    `json:"wallet_address"`
	Reason         string    `json:"reason"`
	Timestamp      time.Time `json:"timestamp"`
}
