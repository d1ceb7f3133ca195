package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "super_admin", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestValidateJWTFailures(t *testing.T) {
	good, err := GenerateJWT(1, "admin", "secret", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT(1, "admin", "secret", -time.Minute)
	require.NoError(t, err)
	noUser, err := GenerateJWT(0, "admin", "secret", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"empty token", "", "secret"},
		{"wrong secret", good, "other"},
		{"expired", expired, "secret"},
		{"missing user", noUser, "secret"},
		{"garbage", "not.a.jwt", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}
