package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry records one mutating call made against the backend.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Endpoint   string    `json:"endpoint"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code,omitempty"`
	Outcome    string    `json:"outcome"`
	User       string    `json:"user,omitempty"`
	OrderID    int64     `json:"order_id,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
	Error      string    `json:"error,omitempty"`
}

const maxBodyLen = 512

// Truncate bounds request and response bodies stored in an entry.
func Truncate(body []byte) string {
	if len(body) <= maxBodyLen {
		return string(body)
	}
	return string(body[:maxBodyLen]) + "..."
}
