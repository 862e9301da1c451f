package orchestrator

// Log prefixes
const (
	LogPrefixProcessQuery   = "internal.agent.orchestrator.ProcessQuery"
	LogPrefixHandleGeneral  = "internal.agent.orchestrator.handleGeneral"
	LogPrefixHandleWeather  = "internal.agent.orchestrator.handleWeather"
	LogPrefixFetchForecast  = "internal.agent.orchestrator.fetchForecast"
	LogPrefixRecoverWeather = "internal.agent.orchestrator.recoverWeather"
)

// PromptGeneral is sent for every query that does not mention weather
const PromptGeneral = `
You are a helpful AI assistant with access to weather information.
If the user asks about the weather, use the weather tool to provide accurate information.
Otherwise, respond helpfully to their query.

User query: %s

Think step by step:
1. Determine if this is a weather-related query
2. If it is weather-related, extract the location and use the weather tool
3. If not weather-related, respond based on your knowledge

Your response:
`

// User-facing messages
const (
	MsgLocationRequired = "I need a location to check the weather. Please specify a city or place."
	MsgExtractionFailed = "I'm sorry, I couldn't tell which location you're asking about. " +
		"Please try again with a clearer location, for example: \"What's the weather in London?\""

	FormatLocationNotFound   = "I couldn't find the location \"%s\". Please check the spelling or try a nearby larger city."
	FormatLocationSuggestion = " You could also try asking about \"%s\"."
	FormatWeatherUnavailable = "I couldn't get the weather for %s. %s"
	FormatWeatherAnswer      = "Based on your query about the weather in %s, here's what I found:\n\n%s\n\n%s"
	FormatProcessingError    = "I had trouble processing your weather query: %v"
)

// Log messages
const (
	LogMsgIntent            = "Intent %s for query %q"
	LogMsgExtractFallback   = "Extraction failed, trying patterns on query: %v"
	LogMsgLocation          = "Location %q"
	LogMsgResolved          = "Resolved %q to %s via %s"
	LogMsgForecastFailed    = "Forecast unavailable, advising on current conditions only: %v"
	LogMsgRecoveredPanic    = "Recovered from panic: %v"
	LogMsgGeneralLLMFailure = "LLM call failed: %v"
)
