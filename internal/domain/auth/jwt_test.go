package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	token, expiresAt, err := svc.GenerateAccessToken(
		"user-1", "acme", "admin@acme.test",
		[]string{"admin"}, []string{"invoice:post"}, true)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	uc, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", uc.UserID)
	assert.Equal(t, "acme", uc.TenantID)
	assert.Equal(t, "admin@acme.test", uc.Email)
	assert.Equal(t, []string{"admin"}, uc.Roles)
	assert.Equal(t, []string{"invoice:post"}, uc.Permissions)
	assert.True(t, uc.IsAdmin)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("secret-a"))
	token, _, err := svc.GenerateAccessToken("user-1", "acme", "a@b.c", nil, nil, false)
	require.NoError(t, err)

	other := NewJWTService(DefaultJWTConfig("secret-b"))
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestUserLockout(t *testing.T) {
	user := NewUser("a@b.c", "hash")

	for i := 0; i < 4; i++ {
		user.RecordFailedLogin(5, 15*time.Minute)
	}
	assert.False(t, user.IsLocked())
	require.NoError(t, user.CanLogin())

	user.RecordFailedLogin(5, 15*time.Minute)
	assert.True(t, user.IsLocked())
	assert.Error(t, user.CanLogin())

	user.RecordSuccessfulLogin()
	assert.False(t, user.IsLocked())
	assert.Zero(t, user.FailedLoginAttempts)
	require.NotNil(t, user.LastLoginAt)
}
