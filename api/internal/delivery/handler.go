package delivery

import (
	"net/http"
	"os"
	"path/filepath"

	"watchdog/api/internal/config"
	v1 "watchdog/api/internal/delivery/rest/v1"
	"watchdog/api/internal/infra/nats"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	Services  *service.Services
	Db        *gorm.DB
	Config    *config.Config
	Natsinfra *nats.NatsInfra
	Log       logger.Logger
}

func (h *Handler) InitAPI(r *gin.Engine) {
	api := r.Group("/api")
	webhook := r.Group("/webhook")

	v1Handler := v1.NewHandler(h.Services, h.Db, h.Config, h.Natsinfra, h.Log)

	{
		v1Handler.InitRoutes(api.Group("/v1"), webhook.Group("/v1"))
	}

	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Coming Soon"})
	})

	h.initSPA(r)
}

// prebuilt single-page app. unknown GET paths fall back to index.html so the
// app handles its own routing
func (h *Handler) initSPA(r *gin.Engine) {
	staticDir := h.Config.StaticDir
	if staticDir == "" {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}

		file := filepath.Join(staticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	})
}

func InitHandler(services *service.Services, db *gorm.DB, config *config.Config, natsinfra *nats.NatsInfra, log logger.Logger) *Handler {
	return &Handler{
		Config:    config,
		Natsinfra: natsinfra,
		Log:       log,
		Services:  services,
		Db:        db,
	}
}
