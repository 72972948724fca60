package v1

import (
	"watchdog/api/internal/config"
	"watchdog/api/internal/infra/nats"
	"watchdog/api/internal/logger"
	"watchdog/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	services  *service.Services
	db        *gorm.DB
	config    *config.Config
	Natsinfra *nats.NatsInfra
	log       logger.Logger
}

func (h *Handler) InitRoutes(api *gin.RouterGroup, webhook *gin.RouterGroup) {
	{
		h.initCharityRoutes(api)
		h.initWebhookRoutes(webhook)
	}
}

func NewHandler(services *service.Services, db *gorm.DB, config *config.Config, natsinfra *nats.NatsInfra, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		Natsinfra: natsinfra,
		log:       log,
		services:  services,
		db:        db,
	}
}
