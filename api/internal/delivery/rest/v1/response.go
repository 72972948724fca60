package v1

import (
	"watchdog/api/internal/domain"

	"github.com/gin-gonic/gin"
)

type responseError struct {
	Error   bool   `json:"error"`
	ErrorID string `json:"error_id"`
	Msg     string `json:"msg"`
}

// /charity/new
type responseCharityCreatedInfo struct {
	Id             string `json:"id"`
	WalletAddress  string `json:"wallet_address"`
	SubscriptionId string `json:"subscription_id"`
	QrCode         string `json:"qr_code"`
}

type responseCharityCreated struct {
	Error   bool                       `json:"error"`
	Charity responseCharityCreatedInfo `json:"charity"`
}

// /charity
type responseCharityList struct {
	Error bool                         `json:"error"`
	Data  []domain.ResponseCharityInfo `json:"data"`
}

// /charity/:charity_id
type responseTransactionList struct {
	Error bool                             `json:"error"`
	Data  []domain.ResponseTransactionInfo `json:"data"`
}

// /webhook/v1/address. status distinguishes "durable" from "acked, dropped"
type responseWebhook struct {
	Error  bool   `json:"error"`
	Status string `json:"status"`
}

func responseErr(c *gin.Context, statusCode int, msg, errorID string) {
	c.AbortWithStatusJSON(statusCode, responseError{true, errorID, msg})
}
