package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFilesLayering(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"db_driver":"postgres","rate_limit_max":50,"app_port":"9000"}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nAPP_PORT=\"9100\"\nTOKEN_TTL=30m\nbroken-line\n"), 0o644))

	t.Cleanup(func() { _ = reload("", "") })
	require.NoError(t, reload(jsonPath, envPath))

	assert.Equal(t, "postgres", DatabaseDriver())
	assert.Equal(t, "9100", AppPort())
	assert.Equal(t, 50, RateLimitMax())
	assert.Equal(t, 30*time.Minute, TokenTTL())
}

func TestReloadSurvivesFirstAccessor(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("APP_PORT=7001\n"), 0o644))
	t.Cleanup(func() { _ = reload("", "") })

	_ = AppPort()
	require.NoError(t, reload(filepath.Join(dir, "none.json"), envPath))

	assert.Equal(t, "7001", AppPort())
	assert.Equal(t, "7001", Get("APP_PORT", ""))
}

func TestMissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = reload("", "") })
	require.NoError(t, reload(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.env")))

	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, defaultSQLiteDSN, DatabaseDSN())
	assert.Equal(t, time.Hour, TokenTTL())
	assert.Equal(t, time.Minute, RateLimitWindow())
}

func TestUnknownDriverFallsBack(t *testing.T) {
	t.Cleanup(func() { _ = reload("", "") })
	Set("DB_DRIVER", "oracle")
	assert.Equal(t, "sqlite", DatabaseDriver())
}

func TestBadNumbersFallBack(t *testing.T) {
	t.Cleanup(func() { _ = reload("", "") })
	Set("RATE_LIMIT_MAX", "-3")
	Set("RATE_LIMIT_WINDOW", "soon")
	assert.Equal(t, defaultRateLimitMax, RateLimitMax())
	assert.Equal(t, defaultRateWindow, RateLimitWindow())
}

func TestCORSOriginsSplit(t *testing.T) {
	t.Cleanup(func() { _ = reload("", "") })
	assert.Equal(t, []string{"*"}, CORSOrigins())

	Set("CORS_ORIGINS", " https://a.test, ,https://b.test ")
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, CORSOrigins())
}
