package orchestrator

import (
	"weather-agent/internal/agent"
	"weather-agent/internal/location"
	"weather-agent/internal/router"
	"weather-agent/internal/weather"
	"weather-agent/pkg/llmprovider"
	pkgLog "weather-agent/pkg/log"
)

type Orchestrator struct {
	llm      llmprovider.Completer
	router   router.Router
	location location.UseCase
	weather  weather.UseCase
	units    string
	l        pkgLog.Logger
}

var _ agent.Orchestrator = (*Orchestrator)(nil)

// New wires the query pipeline. An empty units value means metric.
func New(
	l pkgLog.Logger,
	llm llmprovider.Completer,
	rt router.Router,
	loc location.UseCase,
	wx weather.UseCase,
	units string,
) *Orchestrator {
	if units == "" {
		units = weather.UnitsMetric
	}
	return &Orchestrator{
		llm:      llm,
		router:   rt,
		location: loc,
		weather:  wx,
		units:    units,
		l:        l,
	}
}
