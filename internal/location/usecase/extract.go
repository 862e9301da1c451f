package usecase

import (
	"context"
	"fmt"

	"weather-agent/internal/location"
)

// Extract prompts the model and parses its answer, falling back to Unknown
func (uc *implUseCase) Extract(ctx context.Context, query string) (string, error) {
	output, err := uc.llm.Complete(ctx, fmt.Sprintf(PromptExtractLocation, query))
	if err != nil {
		uc.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixExtract, err)
		return "", fmt.Errorf("%w: %v", location.ErrExtractionFailed, err)
	}

	value, strategy, ok := locationChain.Run(output)
	if !ok {
		uc.l.Debugf(ctx, "%s: no strategy matched model output %q", LogPrefixExtract, output)
		return location.Unknown, nil
	}

	uc.l.Debugf(ctx, "%s: extracted %q via %s", LogPrefixExtract, value, strategy)
	if location.IsUnknown(value) {
		return location.Unknown, nil
	}
	return value, nil
}

// ExtractFromText applies the pattern strategies only
func (uc *implUseCase) ExtractFromText(text string) string {
	if value, _, ok := textChain.Run(text); ok && !location.IsUnknown(value) {
		return value
	}
	return location.Unknown
}
