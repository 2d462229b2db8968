package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestGenerateAndVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "mission-report", TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.GenerateToken("user-1", "editor", "admin")
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "editor", p.Username)
	assert.Equal(t, "admin", p.Role)
	assert.Equal(t, "mission-report", p.Issuer)
	assert.NotEmpty(t, p.ID)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerify_WrongSecret(t *testing.T) {
	a, err := New(Config{SecretKey: testSecret})
	require.NoError(t, err)
	b, err := New(Config{SecretKey: testSecret + "x"})
	require.NoError(t, err)

	token, err := a.GenerateToken("user-1", "editor", "")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.Error(t, err)
}
