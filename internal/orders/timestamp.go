package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// LocalDateTime is what the backend emits: ISO local time without a zone.
	LocalDateTime = "2006-01-02T15:04:05"
	// LocalDateTimeMinutes is the precision of the editable delivery-time field.
	LocalDateTimeMinutes = "2006-01-02T15:04"

	editableLen = len(LocalDateTimeMinutes)
)

var ErrEmptyTimestamp = errors.New("empty timestamp")

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	LocalDateTimeMinutes,
}

// ParseTimestamp reads RFC 3339 values as is and zone-less values in local time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported format", s)
}

// EditableTime truncates a server timestamp to the minute-precision form used
// when editing delivery times.
func EditableTime(raw string) string {
	if len(raw) <= editableLen {
		return raw
	}
	return raw[:editableLen]
}

// FormatLocal renders t the way the backend expects query timestamps.
func FormatLocal(t time.Time) string {
	return t.Format(LocalDateTime)
}
