package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "")
	t.Setenv("UPLOAD_MAX_MB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 720*time.Hour, cfg.JWTExpiry())
	assert.Equal(t, int64(50<<20), cfg.UploadMaxBytes())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("DB_NAME", "contest")
	t.Setenv("LOGIN_BURST", "9")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry())
	assert.Equal(t, 9, cfg.Login.Burst)
	assert.Contains(t, cfg.DSN(), "dbname=contest")
}

func TestLoadConfigRejectsBadInteger(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "forever")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "JWT_EXPIRY_HOURS")
}

func TestGormConfigTranslatesErrors(t *testing.T) {
	assert.True(t, GormConfig("production").TranslateError)
}
