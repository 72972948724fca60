package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ResponseCharityInfo struct {
	CharityID      string `json:"charity_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	WalletAddress  string `json:"wallet_address"`
	SubscriptionID string `json:"subscription_id"`
	CreatedAt      string `json:"created_at"`
}

type ResponseTransactionInfo struct {
	TxID       string `json:"tx_id"`
	CharityID  string `json:"charity_id"`
	Amount     string `json:"amount"`
	ReceivedAt string `json:"received_at"`
}

const (
	ErrMsgRateLimitExceeded   = "rate limit exceeded"
	ErrMsgInternalServerError = "internal server error"
	ErrMsgBadRequest          = "bad request"
	ErrMsgParamsBadRequest    = "bad request: %s"

	ErrMsgDuplicateWallet    = "charity with that wallet address already exists"
	ErrMsgCharityNotFound    = "charity not found"
	ErrMsgSubscriptionFailed = "address subscription failed, retry the request"
	ErrMsgPersistenceFailed  = "charity was not saved, retry the request"
)

var (
	ErrDuplicateWallet     = fmt.Errorf(ErrMsgDuplicateWallet)
	ErrSubscriptionFailed  = fmt.Errorf(ErrMsgSubscriptionFailed)
	ErrPersistenceFailed   = fmt.Errorf(ErrMsgPersistenceFailed)
	ErrCharityNotFound     = fmt.Errorf(ErrMsgCharityNotFound)
	ErrUnknownSubscription = fmt.Errorf("unknown subscription id")
	ErrTxAlreadyExists     = fmt.Errorf("transaction already recorded")
	ErrInternalServerError = fmt.Errorf(ErrMsgInternalServerError)
)

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return 200
	}

	switch {
	case errors.Is(err, ErrDuplicateWallet):
		status = http.StatusConflict
	case errors.Is(err, ErrSubscriptionFailed):
		status = http.StatusBadGateway
	case errors.Is(err, ErrPersistenceFailed):
		status = http.StatusInternalServerError
	case errors.Is(err, ErrCharityNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	return status
}
