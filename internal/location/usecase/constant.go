package usecase

// Log prefixes
const (
	LogPrefixExtract         = "internal.location.usecase.Extract"
	LogPrefixGeocode         = "internal.location.usecase.Geocode"
	LogPrefixEstimate        = "internal.location.usecase.estimateCoordinates"
	LogPrefixGeocodeVariants = "internal.location.usecase.geocodeVariants"
)

// Prompts
const (
	PromptExtractLocation = `Extract the location from the following weather query.
Respond with ONLY a JSON object of the form {"location": "<place>"} and no other text.
If the query does not mention a place, respond with {"location": "Unknown"}.

Examples:
Query: What's the weather in London?
{"location": "London"}
Query: How is the weather in New York City today?
{"location": "New York City"}
Query: Tell me the weather for Paris, France
{"location": "Paris, France"}
Query: What's the weather like?
{"location": "Unknown"}

Query: %s
`

	PromptEstimateCoordinates = `What are the geographic coordinates of %s?
Respond with ONLY a JSON object of the form {"latitude": <number>, "longitude": <number>}.
Use 6 decimal places of precision. Do not include any explanation or extra text.
`
)

// Geocoding
const (
	GeocodeLimit = 1
)
