package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-remote-secret"))
	require.NoError(t, err)
	return token
}

func TestInspect_ReadsClaimsWithoutVerification(t *testing.T) {
	token := signed(t, jwt.MapClaims{"user_id": "u1", "role": "admin", "email": "a@b.c"})

	claims, err := NewInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestStale(t *testing.T) {
	inspector := NewInspector()
	now := time.Now()

	live := signed(t, jwt.MapClaims{"role": "user", "exp": now.Add(time.Hour).Unix()})
	expired := signed(t, jwt.MapClaims{"role": "user", "exp": now.Add(-time.Minute).Unix()})
	noExpiry := signed(t, jwt.MapClaims{"role": "user"})

	assert.False(t, inspector.Stale(live, now))
	assert.True(t, inspector.Stale(expired, now))
	assert.False(t, inspector.Stale(noExpiry, now))
	assert.True(t, inspector.Stale("not-a-token", now))
	assert.True(t, inspector.Stale("", now))
}

func TestRoleOf(t *testing.T) {
	inspector := NewInspector()

	role, err := inspector.RoleOf(signed(t, jwt.MapClaims{"role": "admin"}))
	require.NoError(t, err)
	assert.Equal(t, "admin", role)

	_, err = inspector.RoleOf("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
