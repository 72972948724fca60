package cache

// cache
var (
	RateLimitsCache = InitStorage()
	QrCodesCache    = InitStorage()
)
