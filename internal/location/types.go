package location

import (
	"strings"

	"weather-agent/internal/model"
)

// Unknown is the canonical value meaning no location could be determined
const Unknown = "Unknown"

// Coordinates is the resolved position of a location
type Coordinates = model.Coordinates

// Source tells which tier resolved a location
type Source string

const (
	SourceModel        Source = "model"
	SourceGeocodingAPI Source = "geocoding_api"
)

// GeocodeOutput is the result of Geocode.
type GeocodeOutput struct {
	Location    string
	Coordinates Coordinates
	Source      Source
	Variant     string // the variant that matched; empty for SourceModel
}

// IsUnknown reports whether loc means "no location present"
func IsUnknown(loc string) bool {
	loc = strings.TrimSpace(loc)
	return loc == "" || strings.EqualFold(loc, Unknown)
}
