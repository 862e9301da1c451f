package usecase

import (
	"context"
	"fmt"

	"weather-agent/internal/location"
)

// Geocode tries the model estimate, then each variant against the geocoding API
func (uc *implUseCase) Geocode(ctx context.Context, loc string) (location.GeocodeOutput, error) {
	if location.IsUnknown(loc) {
		return location.GeocodeOutput{}, fmt.Errorf("%w: %q", location.ErrLocationNotFound, loc)
	}

	if coords, ok := uc.estimateCoordinates(ctx, loc); ok {
		uc.l.Infof(ctx, "%s: %q resolved by model to %s", LogPrefixGeocode, loc, coords)
		return location.GeocodeOutput{
			Location:    loc,
			Coordinates: coords,
			Source:      location.SourceModel,
		}, nil
	}

	if out, ok := uc.geocodeVariants(ctx, loc); ok {
		uc.l.Infof(ctx, "%s: %q resolved by geocoding API via %q to %s", LogPrefixGeocode, loc, out.Variant, out.Coordinates)
		return out, nil
	}

	if err := ctx.Err(); err != nil {
		return location.GeocodeOutput{}, err
	}

	uc.l.Warnf(ctx, "%s: %q could not be resolved", LogPrefixGeocode, loc)
	return location.GeocodeOutput{}, fmt.Errorf("%w: %q", location.ErrLocationNotFound, loc)
}

// estimateCoordinates never returns an error; every failure is "no result"
func (uc *implUseCase) estimateCoordinates(ctx context.Context, loc string) (location.Coordinates, bool) {
	output, err := uc.llm.Complete(ctx, fmt.Sprintf(PromptEstimateCoordinates, loc))
	if err != nil {
		uc.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixEstimate, err)
		return location.Coordinates{}, false
	}

	coords, strategy, ok := coordinatesChain.Run(output)
	if !ok {
		uc.l.Debugf(ctx, "%s: unparseable model output %q", LogPrefixEstimate, output)
		return location.Coordinates{}, false
	}
	if !coords.Valid() {
		uc.l.Warnf(ctx, "%s: out of range coordinates %s via %s", LogPrefixEstimate, coords, strategy)
		return location.Coordinates{}, false
	}

	uc.l.Debugf(ctx, "%s: parsed %s via %s", LogPrefixEstimate, coords, strategy)
	return coords, true
}

// geocodeVariants stops at the first variant whose first result has both lat and lon
func (uc *implUseCase) geocodeVariants(ctx context.Context, loc string) (location.GeocodeOutput, bool) {
	for _, variant := range Variants(loc) {
		if ctx.Err() != nil {
			return location.GeocodeOutput{}, false
		}

		results, err := uc.geo.Geocode(ctx, variant, GeocodeLimit)
		if err != nil {
			uc.l.Warnf(ctx, "%s: variant %q failed: %v", LogPrefixGeocodeVariants, variant, err)
			continue
		}
		if len(results) == 0 || results[0].Lat == nil || results[0].Lon == nil {
			uc.l.Debugf(ctx, "%s: variant %q returned no usable result", LogPrefixGeocodeVariants, variant)
			continue
		}

		return location.GeocodeOutput{
			Location:    loc,
			Coordinates: location.Coordinates{Latitude: *results[0].Lat, Longitude: *results[0].Lon},
			Source:      location.SourceGeocodingAPI,
			Variant:     variant,
		}, true
	}
	return location.GeocodeOutput{}, false
}
