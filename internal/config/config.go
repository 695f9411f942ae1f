// Package config loads runtime settings from .env, the environment and CLI flags.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSessionSecret is only fit for local development; validate.HardeningWarnings flags it.
const DefaultSessionSecret = "book-management-secret-key-2025"

type Config struct {
	AppEnv string
	Port   int

	DBPath      string
	DatabaseURL string
	RedisURL    string

	SessionSecret     string
	SessionTTL        time.Duration
	CookieSecure      bool
	AdminPasswordHash string

	MaxBodySize int64

	// LoginMaxAttempts of 0 leaves POST /login unthrottled.
	LoginMaxAttempts int
	LoginWindow      time.Duration
	// TrustProxy reads the login throttle client address from X-Forwarded-For.
	TrustProxy bool

	LogLevel  string
	LogFormat string

	Backup Backup
}

type Backup struct {
	Bucket string
	Prefix string
	// At is the daily "HH:MM" run time for serve; empty disables scheduled backups.
	At string
	TZ string
	// Keep is how many uploaded snapshots to retain; 0 keeps all.
	Keep            int
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("app_env", "development")
	v.SetDefault("port", 3000)
	v.SetDefault("db_path", "./books.db")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("session_secret", DefaultSessionSecret)
	v.SetDefault("session_ttl", time.Hour)
	v.SetDefault("cookie_secure", false)
	v.SetDefault("admin_password_hash", "")
	v.SetDefault("max_body_size", 1<<20)
	v.SetDefault("login_max_attempts", 0)
	v.SetDefault("login_window", 5*time.Minute)
	v.SetDefault("trust_proxy", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("backup_bucket", "")
	v.SetDefault("backup_prefix", "backups/")
	v.SetDefault("backup_at", "")
	v.SetDefault("backup_tz", "UTC")
	v.SetDefault("backup_keep", 7)
	v.SetDefault("aws_region", "auto")
	v.SetDefault("aws_endpoint", "")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv reads .env files if they exist; missing files are fine.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load reads every setting out of v.
func Load(v *viper.Viper) Config {
	return Config{
		AppEnv:            v.GetString("app_env"),
		Port:              v.GetInt("port"),
		DBPath:            v.GetString("db_path"),
		DatabaseURL:       v.GetString("database_url"),
		RedisURL:          v.GetString("redis_url"),
		SessionSecret:     v.GetString("session_secret"),
		SessionTTL:        v.GetDuration("session_ttl"),
		CookieSecure:      v.GetBool("cookie_secure"),
		AdminPasswordHash: v.GetString("admin_password_hash"),
		MaxBodySize:       v.GetInt64("max_body_size"),
		LoginMaxAttempts:  v.GetInt("login_max_attempts"),
		LoginWindow:       v.GetDuration("login_window"),
		TrustProxy:        v.GetBool("trust_proxy"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		Backup: Backup{
			Bucket:          v.GetString("backup_bucket"),
			Prefix:          v.GetString("backup_prefix"),
			At:              v.GetString("backup_at"),
			TZ:              v.GetString("backup_tz"),
			Keep:            v.GetInt("backup_keep"),
			Region:          v.GetString("aws_region"),
			Endpoint:        v.GetString("aws_endpoint"),
			AccessKeyID:     v.GetString("aws_access_key_id"),
			SecretAccessKey: v.GetString("aws_secret_access_key"),
		},
	}
}

func (c Config) IsProduction() bool { return strings.EqualFold(c.AppEnv, "production") }
