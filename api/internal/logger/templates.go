package logger

func (l Logger) TemplCharityErr(message string, errorId string, charityId string, wallet string, uri string, ip string) string {
	l.Error(message, LS_CHARITIES, true, "charity_id", charityId, "wallet", wallet, "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplCharityInfo(message string, errorId string, charityId string, wallet string, uri string, ip string) string {
	l.Info(message, LS_CHARITIES, true, "charity_id", charityId, "wallet", wallet, "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplWebhookErr(message string, errorId string, subscriptionId string, txId string, uri string) string {
	l.Error(message, LS_WEBHOOKS, true, "subscription_id", subscriptionId, "tx_id", txId, "uri", uri, "error_id", errorId)
	return errorId
}

func (l Logger) TemplWebhookInfo(message string, subscriptionId string, txId string, charityId string) {
	l.Info(message, LS_WEBHOOKS, true, "subscription_id", subscriptionId, "tx_id", txId, "charity_id", charityId)
}

func (l Logger) TemplMeerkatErr(message string, url string, attempts int, err error) {
	l.Error(message, LS_MEERKAT, true, "url", url, "attempts", attempts, "error", err.Error())
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.Fatal(message, LS_FATAL, true, "error", err.Error(), "ipv4", ipv4)
}

func (l Logger) TemplNatsError(message, natsUrl string, err error) {
	l.Error(message, LS_NATS, true, "nats_url", natsUrl, "error", err.Error())
}

func (l Logger) TemplNatsInfo(message, natsUrl string) {
	l.Info(message, LS_NATS, true, "nats_url", natsUrl, "error", NA)
}

func (l Logger) TemplSweepErr(message string, subscriptionId string, err error) {
	l.Error(message, LS_SWEEP, true, "subscription_id", subscriptionId, "error", err.Error())
}

func (l Logger) TemplSweepInfo(message string, subscriptionId string) {
	l.Info(message, LS_SWEEP, true, "subscription_id", subscriptionId)
}
