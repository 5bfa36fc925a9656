package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, c Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

type failingSource struct{}

func (failingSource) Credentials() (string, []string, error) {
	return "", nil, errors.New("keystore locked")
}

func TestSession_Load(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("jwt with roles and expiry", func(t *testing.T) {
		tok := signed(t, Claims{
			Roles: []string{RoleHandler},
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "hana",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		})
		s := New(Static{Token: tok})
		s.timeNow = func() time.Time { return now }

		require.NoError(t, s.Load())
		got, err := s.Token()
		require.NoError(t, err)
		assert.Equal(t, tok, got)
		assert.Equal(t, "hana", s.Username())
		assert.True(t, s.HasRole("handler"))
		assert.False(t, s.HasRole(RoleConsumer))
	})

	t.Run("configured roles win over claims", func(t *testing.T) {
		tok := signed(t, Claims{Roles: []string{RoleHandler}})
		s := New(Static{Token: tok, Roles: []string{"Consumer"}})

		require.NoError(t, s.Load())
		assert.True(t, s.HasRole(RoleConsumer))
		assert.False(t, s.HasRole(RoleHandler))
	})

	t.Run("opaque token", func(t *testing.T) {
		s := New(Static{Token: "opaque-token", Roles: []string{RoleFarmer}})

		require.NoError(t, s.Load())
		got, err := s.Token()
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", got)
		assert.Equal(t, []string{RoleFarmer}, s.Roles())
	})

	t.Run("missing token", func(t *testing.T) {
		s := New(Static{Token: "  "})

		assert.ErrorIs(t, s.Load(), ErrNoToken)
		_, err := s.Token()
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}})
		s := New(Static{Token: tok})
		s.timeNow = func() time.Time { return now }

		assert.ErrorIs(t, s.Load(), ErrTokenExpired)
		_, err := s.Token()
		assert.ErrorIs(t, err, ErrNoToken)
	})

	t.Run("expires while loaded", func(t *testing.T) {
		tok := signed(t, Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}})
		s := New(Static{Token: tok})
		clock := now
		s.timeNow = func() time.Time { return clock }

		require.NoError(t, s.Load())
		clock = now.Add(2 * time.Minute)
		_, err := s.Token()
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("source error", func(t *testing.T) {
		s := New(failingSource{})
		assert.EqualError(t, s.Load(), "keystore locked")
	})
}

func TestSession_Invalidate(t *testing.T) {
	s := New(Static{Token: "abc", Roles: []string{RoleConsumer}})
	require.NoError(t, s.Load())

	s.Invalidate()

	_, err := s.Token()
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, s.Roles())
	assert.False(t, s.HasRole(RoleConsumer))
}
