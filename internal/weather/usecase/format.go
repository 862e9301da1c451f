package usecase

import (
	"fmt"
	"strconv"

	"weather-agent/internal/weather"
)

// Format renders a snapshot in its own units
func (uc *implUseCase) Format(s weather.Snapshot) string {
	return Format(s)
}

// Format is the pure form of UseCase.Format
func Format(s weather.Snapshot) string {
	temp := weather.TempUnit(s.Units)
	return fmt.Sprintf(FormatSnapshot,
		s.City, s.Country, s.Description,
		number(s.Temp), temp,
		number(s.FeelsLike), temp,
		number(s.Humidity),
		number(s.WindSpeed), weather.WindUnit(s.Units),
	)
}

// number prints the shortest representation, so 15.5 stays "15.5" and 76 stays "76"
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
