package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/5w1tchy/bookshelf/internal/config"
	"github.com/5w1tchy/bookshelf/internal/security/password"
)

// Config fails fast on settings the server cannot run with.
func Config(c config.Config) error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT: %d out of range", c.Port)
	}
	if c.DatabaseURL == "" && strings.TrimSpace(c.DBPath) == "" {
		return errors.New("DB_PATH or DATABASE_URL must be set")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.MaxBodySize <= 0 {
		return errors.New("MAX_BODY_SIZE must be positive")
	}
	if c.Backup.Keep < 0 {
		return errors.New("BACKUP_KEEP must not be negative")
	}
	if c.LoginMaxAttempts < 0 {
		return errors.New("LOGIN_MAX_ATTEMPTS must not be negative")
	}
	if c.AdminPasswordHash != "" {
		// a malformed hash reports ErrUnknownFormat or a parse error
		if _, err := password.Verify("", c.AdminPasswordHash); err != nil {
			return fmt.Errorf("ADMIN_PASSWORD_HASH: %w", err)
		}
	}
	if c.Backup.At != "" {
		if _, err := time.Parse("15:04", c.Backup.At); err != nil {
			return fmt.Errorf("BACKUP_AT: want HH:MM, got %q", c.Backup.At)
		}
		if c.Backup.Bucket == "" {
			return errors.New("BACKUP_AT is set but BACKUP_BUCKET is empty")
		}
		if c.DatabaseURL != "" {
			return errors.New("BACKUP_AT needs the sqlite store; unset DATABASE_URL")
		}
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings to log on startup.
func HardeningWarnings(c config.Config) []string {
	var warns []string

	if c.SessionSecret == config.DefaultSessionSecret {
		warns = append(warns, "SESSION_SECRET is the built-in development value; set a private one")
	} else if len(c.SessionSecret) < 32 {
		warns = append(warns, "SESSION_SECRET is shorter than 32 characters")
	}
	if c.SessionTTL > 24*time.Hour {
		warns = append(warns, fmt.Sprintf("SESSION_TTL=%s is > 24h", c.SessionTTL))
	}

	if c.IsProduction() {
		if !c.CookieSecure {
			warns = append(warns, "COOKIE_SECURE is off in production; session cookies travel over plain HTTP")
		}
		if c.AdminPasswordHash == "" {
			warns = append(warns, "ADMIN_PASSWORD_HASH not set; using the built-in admin hash")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
	}
	return warns
}
