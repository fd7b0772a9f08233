package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	applyDefaults(&c)

	assert.Equal(t, "5000", c.AppPort)
	assert.Equal(t, 72, c.TokenTTLHours)
	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, "uploads", c.UploadDir)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, "blog_db", c.DBName)
	assert.Equal(t, "3306", c.DBPort)
	assert.Equal(t, 6379, c.RedisPort)
	assert.Equal(t, "info", c.LogLevel)
	// Secrets never get defaults.
	assert.Empty(t, c.JWTSecret)
	assert.Empty(t, c.DBPassword)
}

func TestApplyDefaultsKeepsExistingValues(t *testing.T) {
	c := AppConfig{AppPort: "8080", DBName: "otra"}
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "otra", c.DBName)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9001")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_NAME", "env_db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	var c AppConfig
	applyDefaults(&c)
	applyEnvOverrides(&c)

	assert.Equal(t, "9001", c.AppPort)
	assert.Equal(t, "env-secret", c.JWTSecret)
	assert.Equal(t, "env_db", c.DBName)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.Equal(t, 10, c.RateLimitPerMinute)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b ,"))
	assert.Equal(t, []string{}, splitAndTrim(" , "))
}

func TestLoadJSONConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"AppPort": "7000", "JWTSecret": "file-secret", "TokenTTLHours": 24},
		"database": {"DBHost": "db.internal", "DBName": "blog_file"},
		"redis": {"RedisHost": "cache.internal", "RedisPort": 6380},
		"log": {"Level": "debug", "MaxBackups": 5}
	}`), 0o600))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "7000", c.AppPort)
	assert.Equal(t, "file-secret", c.JWTSecret)
	assert.Equal(t, 24, c.TokenTTLHours)
	assert.Equal(t, "db.internal", c.DBHost)
	assert.Equal(t, "blog_file", c.DBName)
	assert.Equal(t, "cache.internal", c.RedisHost)
	assert.Equal(t, 6380, c.RedisPort)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 5, c.LogMaxBackups)
}

func TestLoadJSONConfigMissingFileIgnored(t *testing.T) {
	var c AppConfig
	assert.NoError(t, loadJSONConfig(filepath.Join(t.TempDir(), "nope.json"), &c))
	assert.Equal(t, AppConfig{}, c)
}

func TestLoadJSONConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o600))

	var c AppConfig
	assert.Error(t, loadJSONConfig(path, &c))
}
