// CHARITY ROUTES

package v1

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"watchdog/api/internal/domain"
	"watchdog/api/internal/logger"

	"github.com/gin-gonic/gin"
)

const ONBOARD_TIMEOUT = 30 * time.Second

// POST /api/v1/charity/new
func (h *Handler) charityCreate(c *gin.Context) {
	var errid = logger.GenErrorId()

	charityData, ok := filterQuery(c)
	if !ok || charityData == nil {
		return
	}

	isRateLimited := onboardRateLimit(c.ClientIP(), DEFAULT_LIMIT)
	if isRateLimited {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded, "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ONBOARD_TIMEOUT)
	defer cancel()

	charity, err := h.services.Charities.Onboard(ctx, charityData.Name, charityData.Description, charityData.WalletAddress)
	if err != nil {
		status := domain.GetStatusByErr(err)
		responseErr(c, status, err.Error(), errid)
		if status >= http.StatusInternalServerError {
			h.log.TemplCharityErr("onboard error: "+err.Error(), errid, logger.NA, charityData.WalletAddress, c.Request.RequestURI, c.ClientIP())
		}
		return
	}

	// qr code is convenience for the donation page, a failure here must not
	// undo a committed onboarding
	if _, err := h.services.QrCodes.New(charity.WalletAddress); err != nil {
		h.log.Debug("qr code new error: "+err.Error(), "wallet", charity.WalletAddress)
	}

	c.AbortWithStatusJSON(http.StatusOK, responseCharityCreated{
		Error: false,
		Charity: responseCharityCreatedInfo{
			Id:             charity.CharityID,
			WalletAddress:  charity.WalletAddress,
			SubscriptionId: charity.SubscriptionID,
			QrCode:         fmt.Sprintf("%s://%s/api/v1/charity/%s/qr-code", h.config.Api.Proto, h.config.Api.Ipv4, charity.CharityID),
		},
	})

	h.log.TemplCharityInfo("new charity onboarded", errid, charity.CharityID, charity.WalletAddress, c.Request.RequestURI, c.ClientIP())
}

// GET /api/v1/charity
func (h *Handler) charityList(c *gin.Context) {
	var errid = logger.GenErrorId()

	charities, err := h.services.Charities.List(h.db)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.TemplCharityErr("list charities error: "+err.Error(), errid, logger.NA, logger.NA, c.Request.RequestURI, c.ClientIP())
		return
	}

	data := make([]domain.ResponseCharityInfo, 0, len(charities))
	for _, charity := range charities {
		data = append(data, domain.ResponseCharityInfo{
			CharityID:      charity.CharityID,
			Name:           charity.Name,
			Description:    charity.Description,
			WalletAddress:  charity.WalletAddress,
			SubscriptionID: charity.SubscriptionID,
			CreatedAt:      charity.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.AbortWithStatusJSON(http.StatusOK, responseCharityList{Error: false, Data: data})
}

// GET /api/v1/charity/:charity_id
func (h *Handler) charityTransactions(c *gin.Context) {
	var errid = logger.GenErrorId()

	charityId := c.Param("charity_id")
	if charityId == "" {
		responseErr(c, http.StatusBadRequest, fmt.Sprintf(domain.ErrMsgParamsBadRequest, "charity id is required"), "")
		return
	}

	charity, err := h.services.Charities.FindByCharityID(h.db, charityId)
	if err != nil {
		status := domain.GetStatusByErr(err)
		responseErr(c, status, err.Error(), errid)
		if status >= http.StatusInternalServerError {
			h.log.TemplCharityErr("find charity error: "+err.Error(), errid, charityId, logger.NA, c.Request.RequestURI, c.ClientIP())
		}
		return
	}

	transactions, err := h.services.Donations.ListByCharityID(h.db, charity.CharityID)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.TemplCharityErr("list transactions error: "+err.Error(), errid, charityId, charity.WalletAddress, c.Request.RequestURI, c.ClientIP())
		return
	}

	data := make([]domain.ResponseTransactionInfo, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, domain.ResponseTransactionInfo{
			TxID:       transaction.TxID,
			CharityID:  transaction.CharityID,
			Amount:     transaction.Amount.String(),
			ReceivedAt: transaction.ReceivedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.AbortWithStatusJSON(http.StatusOK, responseTransactionList{Error: false, Data: data})
}

// GET /api/v1/charity/:charity_id/qr-code
func (h *Handler) qrCode(c *gin.Context) {
	var errid = logger.GenErrorId()

	charityId := c.Param("charity_id")
	if charityId == "" {
		responseErr(c, http.StatusBadRequest, fmt.Sprintf(domain.ErrMsgParamsBadRequest, "charity id is required"), "")
		return
	}

	charity, err := h.services.Charities.FindByCharityID(h.db, charityId)
	if err != nil {
		responseErr(c, domain.GetStatusByErr(err), err.Error(), errid)
		return
	}

	qrCode, err := h.services.QrCodes.FindOrNew(charity.WalletAddress)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.TemplCharityErr("qr code find or new error: "+err.Error(), errid, charityId, charity.WalletAddress, c.Request.RequestURI, c.ClientIP())
		return
	}

	imageData, err := base64.RawStdEncoding.DecodeString(qrCode)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		h.log.TemplCharityErr("qr code decode error: "+err.Error(), errid, charityId, charity.WalletAddress, c.Request.RequestURI, c.ClientIP())
		return
	}

	c.Data(http.StatusOK, "image/png", imageData)
}

func (h *Handler) initCharityRoutes(g *gin.RouterGroup) {
	g.POST("/charity/new", h.charityCreate)
	g.GET("/charity", h.charityList)
	g.GET("/charity/:charity_id", h.charityTransactions)
	g.GET("/charity/:charity_id/qr-code", h.qrCode)
}
