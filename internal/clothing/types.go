package clothing

// TimeBlock is a part of the day used to bucket forecast entries
type TimeBlock string

const (
	Morning   TimeBlock = "Morning"
	Afternoon TimeBlock = "Afternoon"
	Evening   TimeBlock = "Evening"
)

// Blocks lists the time blocks in rendering order
var Blocks = []TimeBlock{Morning, Afternoon, Evening}

// Recommendation holds the items for now and for each remaining block of today.
type Recommendation struct {
	Now    []string
	Blocks map[TimeBlock][]string
}

// blockFor maps a local hour to its time block
func blockFor(hour int) TimeBlock {
	switch {
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Evening
	}
}
