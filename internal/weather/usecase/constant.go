package usecase

// Log prefixes
const (
	LogPrefixFetchCurrent  = "internal.weather.usecase.FetchCurrent"
	LogPrefixFetchForecast = "internal.weather.usecase.FetchForecast"
)

// Output formats
const (
	FormatSnapshot = "Weather in %s, %s: %s. Temperature: %s%s (feels like %s%s). Humidity: %s%%. Wind speed: %s %s."
	FormatHourMin  = "15:04"
)
