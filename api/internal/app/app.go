package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"watchdog/api/internal/config"
	"watchdog/api/internal/delivery"
	"watchdog/api/internal/infra/meerkat"
	"watchdog/api/internal/infra/nats"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/service"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Db        *gorm.DB
	NatsInfra *nats.NatsInfra
	Log       logger.Logger
}

func (app *App) Start() {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(cors.Default())

	watcher := meerkat.NewClient(app.Config, app.Log)
	services := service.NewServices(watcher, app.NatsInfra, app.Db, app.Log, app.Config)

	app.Autostart(services)

	{
		h := delivery.InitHandler(services, app.Db, app.Config, app.NatsInfra, app.Log)

		h.InitAPI(r)
	}

	eChan := make(chan error)
	interrupt := make(chan os.Signal, 1)

	fmt.Println("watchdog web is starting")

	go func() {
		err := r.Run(app.Config.Api.Ipv4)
		if err != nil {
			eChan <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-eChan:
		app.Log.TemplHTTPError("app fatal error", app.Config.Api.Ipv4, err)
		return
	case <-interrupt:
		return
	}
}

// start autostart services
func (app *App) Autostart(services *service.Services) {
	fmt.Println("Autostart: start orphan sweep")
	services.Orphans.StartSweep()
}
