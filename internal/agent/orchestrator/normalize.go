package orchestrator

import (
	"regexp"
	"strings"
)

var interrogative = regexp.MustCompile(`(?i)^(how|what|when|where|why|is|can|will|should)\b`)

// NormalizeText collapses whitespace and appends "?" to questions missing one.
// NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if interrogative.MatchString(text) && !strings.HasSuffix(text, "?") {
		text += "?"
	}
	return text
}
