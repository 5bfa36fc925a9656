package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("no session token")
	ErrTokenExpired = errors.New("session token expired")
)

const (
	RoleConsumer = "ROLE_CONSUMER"
	RoleFarmer   = "ROLE_FARMER"
	RoleHandler  = "ROLE_HANDLER"
)

// Source supplies the persisted credentials a session is loaded from.
type Source interface {
	Credentials() (token string, roles []string, err error)
}

// Static is a Source backed by fixed values, typically from configuration.
type Static struct {
	Token string
	Roles []string
}

func (s Static) Credentials() (string, []string, error) {
	return s.Token, s.Roles, nil
}

// Session is the explicit authentication context handed to every API caller.
type Session struct {
	source Source

	mu       sync.RWMutex
	token    string
	username string
	roles    []string
	expires  time.Time
	loaded   bool

	timeNow func() time.Time
}

func New(source Source) *Session {
	return &Session{
		source:  source,
		timeNow: time.Now,
	}
}

// Load reads the credentials from the source. Tokens that are JWTs contribute
// their subject, roles and expiry claims; opaque tokens are used as is.
func (s *Session) Load() error {
	token, roles, err := s.source.Credentials()
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	if token == "" {
		return ErrNoToken
	}

	s.token = token
	s.roles = append([]string(nil), roles...)
	s.loaded = true

	c, ok := parseClaims(token)
	if !ok {
		return nil
	}
	s.username = c.Subject
	if len(s.roles) == 0 {
		s.roles = c.Roles
	}
	if c.ExpiresAt != nil {
		s.expires = c.ExpiresAt.Time
		if !s.timeNow().Before(s.expires) {
			s.reset()
			return ErrTokenExpired
		}
	}
	return nil
}

// Invalidate forgets the loaded credentials, e.g. after the backend answered 401.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Token returns the bearer token, or ErrNoToken when the session is empty or
// has expired since it was loaded.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded || s.token == "" {
		return "", ErrNoToken
	}
	if !s.expires.IsZero() && !s.timeNow().Before(s.expires) {
		return "", ErrTokenExpired
	}
	return s.token, nil
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) Roles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.roles...)
}

// HasRole compares case-insensitively and tolerates a missing ROLE_ prefix.
func (s *Session) HasRole(role string) bool {
	want := normalizeRole(role)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.roles {
		if normalizeRole(r) == want {
			return true
		}
	}
	return false
}

func (s *Session) reset() {
	s.token = ""
	s.username = ""
	s.roles = nil
	s.expires = time.Time{}
	s.loaded = false
}

func normalizeRole(r string) string {
	r = strings.ToUpper(strings.TrimSpace(r))
	if !strings.HasPrefix(r, "ROLE_") {
		r = "ROLE_" + r
	}
	return r
}

// Claims is the payload the backend signs into session tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// parseClaims decodes the token payload without verifying the signature: the
// backend verifies, the client only reads what it was issued.
func parseClaims(token string) (*Claims, bool) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, false
	}
	return &c, true
}
