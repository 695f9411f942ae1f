package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/bookshelf/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Load(config.New())

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "./books.db", cfg.DBPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, config.DefaultSessionSecret, cfg.SessionSecret)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.EqualValues(t, 1<<20, cfg.MaxBodySize)
	assert.Zero(t, cfg.LoginMaxAttempts)
	assert.Equal(t, 5*time.Minute, cfg.LoginWindow)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "backups/", cfg.Backup.Prefix)
	assert.Equal(t, 7, cfg.Backup.Keep)
	assert.False(t, cfg.IsProduction())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/books")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("BACKUP_BUCKET", "snapshots")
	t.Setenv("AWS_ENDPOINT", "http://localhost:9000")
	t.Setenv("BACKUP_KEEP", "3")
	t.Setenv("TRUST_PROXY", "true")

	cfg := config.Load(config.New())
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "postgres://u:p@localhost/books", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "snapshots", cfg.Backup.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.Backup.Endpoint)
	assert.Equal(t, 3, cfg.Backup.Keep)
	assert.True(t, cfg.TrustProxy)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	// t.Setenv registers a restore of the original value
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	config.LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "debug", config.Load(config.New()).LogLevel)
}
