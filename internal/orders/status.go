package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Status is the fulfillment state of an order or farm order. The backend owns
// the legal transitions; the client only refuses values outside the set.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusReady     Status = "READY"
	StatusDelivered Status = "DELIVERED"
)

var ErrUnknownStatus = errors.New("unknown order status")

// Statuses lists the selectable values in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusReady, StatusDelivered}
}

// ParseStatus accepts any letter case and normalises to the canonical form.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReady, StatusDelivered:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("order status: %w", err)
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// BadgeColor maps a raw status string to its badge colour.
func BadgeColor(status string) string {
	switch strings.ToLower(status) {
	case "pending":
		return "orange"
	case "ready":
		return "green"
	case "delivered":
		return "blue"
	default:
		return "gray"
	}
}

func (s Status) BadgeColor() string { return BadgeColor(string(s)) }
