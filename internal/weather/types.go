package weather

import "time"

// Units as sent to the provider
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// Snapshot is one set of observed or forecast conditions.
type Snapshot struct {
	City        string
	Country     string
	Description string
	Temp        float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Units       string
}

// ForecastEntry is a snapshot for a point later today.
type ForecastEntry struct {
	Snapshot
	Timestamp time.Time
	LocalTime string // "15:04" in the configured timezone
}

// CurrentOutput is the result of FetchCurrent.
type CurrentOutput struct {
	Text     string
	Snapshot Snapshot
}

// ForecastOutput is the result of FetchForecast.
type ForecastOutput struct {
	Entries []ForecastEntry
}

// TempUnit returns "°C" for metric and "°F" otherwise
func TempUnit(units string) string {
	if units == UnitsMetric {
		return "°C"
	}
	return "°F"
}

// WindUnit returns "m/s" for metric and "mph" otherwise
func WindUnit(units string) string {
	if units == UnitsMetric {
		return "m/s"
	}
	return "mph"
}

// Metric returns s with temperatures in Celsius and wind in m/s.
// Metric snapshots are returned unchanged.
func (s Snapshot) Metric() Snapshot {
	if s.Units != UnitsImperial {
		return s
	}
	out := s
	out.Units = UnitsMetric
	out.Temp = fahrenheitToCelsius(s.Temp)
	out.FeelsLike = fahrenheitToCelsius(s.FeelsLike)
	out.WindSpeed = s.WindSpeed * 0.44704
	return out
}

func fahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
