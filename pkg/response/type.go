package response

import (
	"encoding/json"
	"time"
)

// DateTimeFormat is the layout used by DateTime
const DateTimeFormat = "2006-01-02 15:04:05"

// ErrorResp is the body of every non-2xx response.
type ErrorResp struct {
	Detail string `json:"detail"`
}

// MessageResp carries a plain informational message.
type MessageResp struct {
	Message string `json:"message"`
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
