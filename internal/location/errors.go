package location

import "errors"

// Domain-specific errors for the location package.
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrExtractionFailed = errors.New("location extraction failed")
)
