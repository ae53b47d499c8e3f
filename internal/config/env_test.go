package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "./data", env.DataDir)
	assert.Equal(t, "v1", env.APIVersion)
	assert.Equal(t, 20, env.RateLimitBurst)
	assert.Zero(t, env.RateLimitRPS)
	assert.Equal(t, slog.LevelInfo, env.SlogLevel())
}

func TestLoadEnv_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DATA_DIR", "/tmp/records")
	t.Setenv("API_VERSION", "/v2/")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	env, err := LoadEnv("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, "/tmp/records", env.DataDir)
	assert.Equal(t, "v2", env.APIVersion)
	assert.Equal(t, slog.LevelDebug, env.SlogLevel())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSOrigins)
	assert.Equal(t, 2.5, env.RateLimitRPS)
}

func TestLoadEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ./records\ntimezone: Europe/Lisbon\n"), 0o644))

	env, err := LoadEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "./records", env.DataDir)
	loc, err := env.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Lisbon", loc.String())
}

func TestLoadEnv_BadTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus")
	_, err := LoadEnv("")
	assert.Error(t, err)
}
