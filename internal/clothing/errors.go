package clothing

import "errors"

var ErrMissingWeather = errors.New("current weather is missing")
