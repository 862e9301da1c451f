package router

// Intent represents user's intention
type Intent string

const (
	IntentGeneral Intent = "GENERAL"
	IntentWeather Intent = "WEATHER"
)

// RouterOutput is the result of classification
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}
