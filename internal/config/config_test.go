package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")
	dir := writeConfig(t, `
server:
  port: "9090"
database:
  driver: memory
jwt:
  secret: s3cret
  expire_hours: 2
storage:
  type: local
  local_path: `+uploads+`
cors:
  allowed_origins:
    - http://localhost:4200
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
	assert.Equal(t, dir, cfg.Path)
	assert.DirExists(t, uploads)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: memory
storage:
  local_path: `+t.TempDir()+`
`)
	t.Setenv("DATABASE_DRIVER", "mongo")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
storage:
  local_path: `+t.TempDir()+`
`)
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "sqlite")
}

func TestLoadConfigReleaseSecret(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
database:
  driver: memory
jwt:
  secret: short
storage:
  local_path: `+t.TempDir()+`
`)
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "JWT secret is too short")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigRedisChannel(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: memory
storage:
  local_path: `+t.TempDir()+`
`)
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "courseware.progress.events", cfg.Redis.Channel)
	assert.Equal(t, 20, cfg.Redis.PoolSize)

	t.Setenv("REDIS_CHANNEL", "staging.progress.events")
	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "staging.progress.events", cfg.Redis.Channel)
}
