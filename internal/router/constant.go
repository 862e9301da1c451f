package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// WeatherKeyword routes a message to the weather pipeline when present
const WeatherKeyword = "weather"

// Confidence values
const (
	ConfidenceKeyword  = 100
	ConfidenceFallback = 50
)

// Reasons
const (
	ReasonKeywordMatch = "message mentions weather"
	ReasonNoKeyword    = "no weather keyword, route to general assistant"
)
