package clothing

import (
	"strings"

	"weather-agent/internal/weather"
)

// Advise builds the recommendation for current conditions and the rest of
// today. Imperial snapshots are converted before the thresholds apply.
func Advise(current *weather.Snapshot, forecast []weather.ForecastEntry) (Recommendation, error) {
	if current == nil {
		return Recommendation{}, ErrMissingWeather
	}

	rec := Recommendation{
		Now:    nowItems(current.Metric()),
		Blocks: make(map[TimeBlock][]string),
	}

	grouped := make(map[TimeBlock][]weather.ForecastEntry)
	for _, e := range forecast {
		b := blockFor(e.Timestamp.Hour())
		grouped[b] = append(grouped[b], e)
	}
	for _, b := range Blocks {
		entries := grouped[b]
		if len(entries) == 0 {
			continue
		}
		if items := blockItems(entries[len(entries)/2].Snapshot.Metric()); len(items) > 0 {
			rec.Blocks[b] = items
		}
	}

	return rec, nil
}

func nowItems(s weather.Snapshot) []string {
	items := append([]string(nil), tierItems(s.Temp)...)
	desc := strings.ToLower(s.Description)

	if isRain(desc) {
		items = append(items, itemsRain...)
	}
	if isSnow(desc) {
		items = append(items, itemsSnow...)
	}
	if strings.Contains(desc, "thunderstorm") {
		items = append(items, itemsThunderstorm...)
	}
	if isSunny(desc, s.Temp) {
		items = append(items, itemsSun...)
	}
	if s.WindSpeed > WindyAbove {
		items = append(items, itemWind)
	}
	return items
}

// blockItems is the reduced rule set applied to a forecast block
func blockItems(s weather.Snapshot) []string {
	var items []string
	if s.Temp < FreezingBelow {
		items = append(items, itemsFreezing[:len(itemsFreezing)-1]...)
	} else {
		items = append(items, tierItems(s.Temp)...)
	}

	desc := strings.ToLower(s.Description)
	if isRain(desc) {
		items = append(items, blockItemRain)
	}
	if isSnow(desc) {
		items = append(items, blockItemSnow)
	}
	if isSunny(desc, s.Temp) {
		items = append(items, blockItemSun)
	}
	if s.WindSpeed > WindyAbove {
		items = append(items, blockItemWind)
	}
	return items
}

func tierItems(temp float64) []string {
	switch {
	case temp < FreezingBelow:
		return itemsFreezing
	case temp < ColdBelow:
		return itemsCold
	case temp < CoolBelow:
		return itemsCool
	case temp < MildBelow:
		return itemsMild
	case temp < WarmBelow:
		return itemsWarm
	default:
		return itemsHot
	}
}

func isRain(desc string) bool {
	return strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle") || strings.Contains(desc, "shower")
}

func isSnow(desc string) bool {
	return strings.Contains(desc, "snow") || strings.Contains(desc, "sleet")
}

func isSunny(desc string, temp float64) bool {
	return strings.Contains(desc, "clear") && temp > SunnyAbove
}
