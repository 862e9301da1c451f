package http

import "errors"

var errTextRequired = errors.New("field required: text")
