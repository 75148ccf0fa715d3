package types

import (
	"time"
)

// LogEntry carries a sanitized request/response snapshot through the
// async logger channel before it is persisted.
type LogEntry struct {
	Method          string
	URL             string
	RequestBody     string
	RequestHeaders  string
	ResponseBody    string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
