package nats

import (
	"context"
	"fmt"
	"time"

	"watchdog/api/internal/config"
	"watchdog/api/internal/logger"
	"watchdog/pkg/nats/watchdomain"
	"watchdog/pkg/utils"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NatsInfra struct {
	*watchdomain.Ns
}

func Init(config *config.Config, log logger.Logger) *NatsInfra {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	nc, err := nats.Connect(config.Nats.Servers,
		nats.MaxReconnects(100),
		nats.ReconnectWait(3*time.Second),
		nats.DisconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("disconnected", nc.ConnectedUrl())
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("reconnected", nc.ConnectedUrl())
		}))
	if err != nil {
		panic("NATS: connect failed: " + err.Error())
	}

	js, err := jetstream.New(nc)
	if err != nil {
		panic(err)
	}

	if _, err := InitAlertsStream(ctx, js); err != nil {
		panic("NATS: alerts stream: " + err.Error())
	}

	fmt.Println("nats: Connected to", nc.ConnectedAddr())
	return &NatsInfra{&watchdomain.Ns{Nc: nc, Js: js}}
}

func InitAlertsStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     "alerts",
		Subjects: watchdomain.AlertSubjects[:],
	})
}

// msgId = subscription id, so repeated sweeps don't spam the stream
func (n *NatsInfra) PublishOrphanAlert(alert watchdomain.OrphanAlert) error {
	return n.JsPublishMsgId(watchdomain.SubjAlertOrphans.String(), utils.MustMarshal(alert), alert.SubscriptionID)
}
