package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := m.GenerateSessionToken()
	require.NoError(t, err)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cms-admin", claims.Subject)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).GenerateSessionToken()
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	m := NewManager("secret", time.Hour)
	token, err := m.GenerateSessionToken()
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
