package location

import "context"

// UseCase defines the business logic interface for the location domain.
type UseCase interface {
	// Extract asks the language model for the place named in a weather query.
	// Returns Unknown when the model output names no place.
	Extract(ctx context.Context, query string) (string, error)

	// ExtractFromText runs only the pattern-based strategies over arbitrary text.
	ExtractFromText(text string) string

	// Variants expands a location into the ordered spellings tried against geocoding.
	Variants(location string) []string

	// Geocode resolves a location with the model estimate first and the
	// geocoding API second. Returns ErrLocationNotFound when neither tier resolves it.
	Geocode(ctx context.Context, location string) (GeocodeOutput, error)
}
