package v1

import (
	"time"

	"watchdog/api/internal/infra/cache"
)

const DEFAULT_LIMIT = 30
const EXPIRATION_SECONDS = 30

// onboarding is the only write surface exposed to clients, so it is the only
// rate-limited one. keyed by client ip.
// returns true if rate limit is exceeded
func onboardRateLimit(clientIP string, limit int) bool {
	var expiration = time.Second * time.Duration(EXPIRATION_SECONDS)

	count := cache.RateLimitsCache.LoadOrSet(clientIP, 1, expiration)
	if count == nil {
		return true
	}

	countInt, ok := count.(int)
	if !ok {
		return true
	}

	if countInt > limit {
		return true
	}

	cache.RateLimitsCache.Set(clientIP, countInt+1, expiration)
	return false
}
