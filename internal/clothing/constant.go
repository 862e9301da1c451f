package clothing

// Thresholds in °C and m/s
const (
	FreezingBelow = 0.0
	ColdBelow     = 10.0
	CoolBelow     = 15.0
	MildBelow     = 20.0
	WarmBelow     = 25.0
	SunnyAbove    = 20.0
	WindyAbove    = 10.0
)

// Output formats
const (
	FormatHeader    = "Clothing recommendations:\n\nFor now: %s.\n\n"
	FormatRestOfDay = "For the rest of the day:\n"
	FormatBlock     = "- %s: %s.\n"
	FormatError     = "Error generating clothing recommendations: %v"
)

var (
	itemsFreezing = []string{"heavy winter coat", "hat, scarf, and gloves", "thermal layers", "insulated boots"}
	itemsCold     = []string{"winter coat or heavy jacket", "hat and gloves", "warm layers"}
	itemsCool     = []string{"light jacket or heavy sweater", "long sleeves"}
	itemsMild     = []string{"light sweater or long sleeves"}
	itemsWarm     = []string{"t-shirt", "light pants"}
	itemsHot      = []string{"light breathable clothing", "shorts", "sun protection"}

	itemsRain         = []string{"raincoat", "waterproof shoes"}
	itemsSnow         = []string{"waterproof boots", "warm waterproof jacket"}
	itemsThunderstorm = []string{"stay indoors if possible", "raincoat and umbrella"}
	itemsSun          = []string{"sunglasses", "sunscreen", "sun hat"}
	itemWind          = "windbreaker (it's windy)"

	blockItemRain = "raincoat or umbrella"
	blockItemSnow = "waterproof boots"
	blockItemSun  = "sunglasses and sunscreen"
	blockItemWind = "windbreaker"
)
