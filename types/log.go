package types

import "time"

// LogEntry is the in-flight representation of an HTTP request/response log
// before it is persisted by the async logger.
type LogEntry struct {
	Method          string    `json:"method"`
	URL             string    `json:"url"`
	RequestBody     string    `json:"request_body"`
	RequestHeaders  string    `json:"request_headers"`
	ResponseBody    string    `json:"response_body"`
	ResponseHeaders string    `json:"response_headers"`
	StatusCode      int       `json:"status_code"`
	CreatedAt       time.Time `json:"created_at"`
}
