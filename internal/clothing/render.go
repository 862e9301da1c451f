package clothing

import (
	"fmt"
	"strings"

	"weather-agent/internal/weather"
)

// Render formats a recommendation. Blocks appear in Morning, Afternoon, Evening order.
func Render(r Recommendation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, FormatHeader, strings.Join(r.Now, ", "))

	var lines strings.Builder
	for _, b := range Blocks {
		if items := r.Blocks[b]; len(items) > 0 {
			fmt.Fprintf(&lines, FormatBlock, b, strings.Join(items, ", "))
		}
	}
	if lines.Len() > 0 {
		sb.WriteString(FormatRestOfDay)
		sb.WriteString(lines.String())
	}
	return sb.String()
}

// Recommend runs Advise and Render. Failures are rendered as text.
func Recommend(current *weather.Snapshot, forecast []weather.ForecastEntry) string {
	rec, err := Advise(current, forecast)
	if err != nil {
		return fmt.Sprintf(FormatError, err)
	}
	return Render(rec)
}
