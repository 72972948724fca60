// WEBHOOK ROUTES
//
// meerkat delivers at-least-once and unordered. the contract here is:
// 2xx acknowledges (durable or deliberately dropped), 4xx rejects without
// redelivery, 5xx asks for redelivery. nothing is acknowledged before the
// transaction row is committed or confirmed already present.

package v1

import (
	"errors"
	"io"
	"net/http"

	"watchdog/api/internal/domain"
	"watchdog/api/internal/logger"
	"watchdog/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// POST /webhook/v1/address
func (h *Handler) addressWebhook(c *gin.Context) {
	var errid = logger.GenErrorId()

	rawPayload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		return
	}

	notification, err := utils.Unmarshal[domain.AddressNotification](rawPayload)
	if err != nil {
		h.log.TemplWebhookErr("malformed payload: "+err.Error(), errid, logger.NA, logger.NA, c.Request.RequestURI)
		c.AbortWithStatusJSON(http.StatusBadRequest, responseWebhook{Error: true, Status: domain.WEBHOOK_STATUS_REJECTED})
		return
	}

	v := validator.New()
	if err := v.Struct(notification); err != nil {
		h.log.TemplWebhookErr("missing required fields: "+err.Error(), errid, notification.SubscriptionID, notification.TxHash, c.Request.RequestURI)
		c.AbortWithStatusJSON(http.StatusBadRequest, responseWebhook{Error: true, Status: domain.WEBHOOK_STATUS_REJECTED})
		return
	}

	transaction, err := h.services.Donations.Ingest(notification, rawPayload)
	switch {
	case err == nil:
		h.log.TemplWebhookInfo("donation recorded", notification.SubscriptionID, notification.TxHash, transaction.CharityID)
		c.AbortWithStatusJSON(http.StatusOK, responseWebhook{Error: false, Status: domain.WEBHOOK_STATUS_OK})

	case errors.Is(err, domain.ErrTxAlreadyExists):
		// idempotent redelivery
		c.AbortWithStatusJSON(http.StatusOK, responseWebhook{Error: false, Status: domain.WEBHOOK_STATUS_OK})

	case errors.Is(err, domain.ErrUnknownSubscription):
		h.log.TemplWebhookInfo("notification for unknown subscription dropped", notification.SubscriptionID, notification.TxHash, logger.NA)
		c.AbortWithStatusJSON(http.StatusOK, responseWebhook{Error: false, Status: domain.WEBHOOK_STATUS_IGNORED})

	default:
		h.log.TemplWebhookErr("ingest error: "+err.Error(), errid, notification.SubscriptionID, notification.TxHash, c.Request.RequestURI)
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
	}
}

// GET /webhook/v1/address
// meerkat probes the endpoint before enabling delivery
func (h *Handler) addressWebhookPing(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusOK, responseWebhook{Error: false, Status: domain.WEBHOOK_STATUS_OK})
}

func (h *Handler) initWebhookRoutes(g *gin.RouterGroup) {
	g.POST("/address", h.addressWebhook)
	g.GET("/address", h.addressWebhookPing)
}
