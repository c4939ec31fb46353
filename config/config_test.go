package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets every required key to a sane value; individual
// tests unset what they need.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "tianguistore")
	t.Setenv("DB_NAME", "tianguistore")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Static.Dir)
	assert.Equal(t, 100, cfg.API.RateLimit.RequestsPerSecond)
}

func TestLoadPasswordDefaultsToEmpty(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Database.Password)
}

func TestLoadPasswordFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.Database.Password)
}

func TestLoadReportsAllMissingKeys(t *testing.T) {
	t.Setenv("DB_PORT", "3306")

	_, err := Load()
	require.Error(t, err)

	var missing *MissingKeysError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"DB_HOST", "DB_USER", "DB_NAME"}, missing.Keys)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoadSingleMissingKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	_, err := Load()
	var missing *MissingKeysError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"DB_NAME"}, missing.Keys)
}

func TestLoadRejectsInvalidServerPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadProductionMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ORIGIN", "https://tianguistore.mx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "https://tianguistore.mx", cfg.CORS.AllowedOrigin)
}
