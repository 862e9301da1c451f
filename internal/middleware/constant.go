package middleware

import "time"

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// Limiter store bounds
const (
	limiterMaxClients = 1000
	limiterTTL        = 5 * time.Minute
)

// Log prefixes
const (
	LogPrefixRateLimit = "internal.middleware.RateLimit"
	LogPrefixAccessLog = "internal.middleware.AccessLog"
)
