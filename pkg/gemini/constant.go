package gemini

import "time"

// Defaults applied by Config.Validate
const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

const (
	generateURLFormat = "%s/models/%s:generateContent?key=%s"
	roleUser          = "user"
)
