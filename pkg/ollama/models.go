package ollama

import "strings"

const latestTag = ":latest"

// HasModel reports whether name is among models. A name without a tag
// matches its ":latest" form.
func HasModel(models []string, name string) bool {
	for _, m := range models {
		if m == name {
			return true
		}
		if !strings.Contains(name, ":") && m == name+latestTag {
			return true
		}
	}
	return false
}
