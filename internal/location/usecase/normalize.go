package usecase

import (
	"regexp"
	"strings"
)

var punctuationPattern = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s]`)

// Variants returns loc first, then the punctuation-stripped form, the first
// token and the two halves of a single comma split. Duplicates are dropped.
func (uc *implUseCase) Variants(loc string) []string {
	return Variants(loc)
}

// Variants is the pure form of UseCase.Variants
func Variants(loc string) []string {
	variants := []string{loc}
	seen := map[string]bool{loc: true}
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		variants = append(variants, v)
	}

	if stripped := punctuationPattern.ReplaceAllString(loc, ""); stripped != loc {
		add(strings.TrimSpace(stripped))
	}

	if tokens := strings.Fields(loc); len(tokens) > 1 {
		add(tokens[0])
	}

	if strings.Count(loc, ",") == 1 {
		parts := strings.SplitN(loc, ",", 2)
		add(strings.TrimSpace(parts[0]))
		add(strings.TrimSpace(parts[1]))
	}

	return variants
}
