package orchestrator

import (
	"context"
	"fmt"

	"weather-agent/internal/router"
)

// ProcessQuery normalizes the text and routes it to the general or weather flow
func (o *Orchestrator) ProcessQuery(ctx context.Context, text string) (string, error) {
	query := NormalizeText(text)

	route := o.router.Classify(ctx, query)
	o.l.Infof(ctx, "%s: "+LogMsgIntent, LogPrefixProcessQuery, route.Intent, query)

	if route.Intent == router.IntentWeather {
		return o.handleWeather(ctx, query), nil
	}
	return o.handleGeneral(ctx, query)
}

func (o *Orchestrator) handleGeneral(ctx context.Context, query string) (string, error) {
	resp, err := o.llm.Complete(ctx, fmt.Sprintf(PromptGeneral, query))
	if err != nil {
		o.l.Errorf(ctx, "%s: "+LogMsgGeneralLLMFailure, LogPrefixHandleGeneral, err)
		return "", fmt.Errorf("%s: %w", LogPrefixHandleGeneral, err)
	}
	return resp, nil
}
