package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure.
type Kind int

const (
	// KindAuth means no usable token was available; nothing was sent.
	KindAuth Kind = iota + 1
	// KindTransport means the request never produced an HTTP response.
	KindTransport
	// KindServer means the backend answered with a non-2xx status.
	KindServer
	// KindDecode means a 2xx body did not match the endpoint schema.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// MsgLoginRequired is shown when a call is attempted without a session.
const MsgLoginRequired = "You must log in first."

var ErrNotAuthenticated = errors.New("not authenticated")

type Error struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int
	// Message is the server supplied text for KindServer errors.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	case KindAuth:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, ErrNotAuthenticated)
	default:
		return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Path, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() []error {
	var errs []error
	if e.Kind == KindAuth {
		errs = append(errs, ErrNotAuthenticated)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// StatusCode returns the HTTP status of a KindServer error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindServer {
		return apiErr.StatusCode
	}
	return 0
}

// Message derives the user facing notice for err: the server message for
// KindServer errors, the login prompt for KindAuth, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return fallback
	}
	switch apiErr.Kind {
	case KindServer:
		if apiErr.Message != "" {
			return apiErr.Message
		}
	case KindAuth:
		return MsgLoginRequired
	}
	return fallback
}
