package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	mw "github.com/5w1tchy/bookshelf/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf/internal/api/router"
	"github.com/5w1tchy/bookshelf/internal/auth"
	"github.com/5w1tchy/bookshelf/internal/maintenance"
	"github.com/5w1tchy/bookshelf/internal/metrics"
	jwtutil "github.com/5w1tchy/bookshelf/internal/security/jwt"
	"github.com/5w1tchy/bookshelf/internal/session"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/store/schema"
	"github.com/5w1tchy/bookshelf/internal/validate"
	"github.com/5w1tchy/bookshelf/internal/views"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog web server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	for _, w := range validate.HardeningWarnings(a.cfg) {
		a.log.Warn().Str("component", "config").Msg(w)
	}

	db, dialect, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res := schema.New(db, dialect, a.log).Run(ctx)
	if !res.TablesReady {
		a.log.Error().Str("component", "schema").Msg("tables not ready; requests will report store errors")
	}

	rdb, err := a.redisClient(ctx)
	if err != nil {
		return err
	}
	var sessions session.Store = session.NewMemoryStore(10 * time.Minute)
	if rdb != nil {
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
		a.log.Info().Str("component", "session").Msg("using redis session store")
	}
	loginLimit := a.loginLimit(rdb)

	gate := auth.NewGate(auth.Config{
		PasswordHash: a.cfg.AdminPasswordHash,
		TTL:          a.cfg.SessionTTL,
		CookieSecure: a.cfg.CookieSecure,
	}, sessions, jwtutil.NewSigner([]byte(a.cfg.SessionSecret), 30*time.Second))

	tmpl, err := views.Load()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	if a.cfg.Backup.At != "" {
		if err := a.scheduleBackups(ctx, db); err != nil {
			return err
		}
	}

	handler := mw.Chain(
		router.Router(router.Deps{
			Catalog:    catalog.New(db, dialect),
			Views:      tmpl,
			Gate:       gate,
			Metrics:    metrics.New(),
			DB:         db,
			LoginLimit: loginLimit,
		}),
		mw.Logger(a.log),
		mw.RequestID,
		mw.Recovery,
		mw.SecurityHeaders,
		mw.BodySizeLimit(a.cfg.MaxBodySize),
		mw.ResponseTime,
		mw.Compression,
	)

	server := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(a.cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("component", "server").Str("addr", server.Addr).Msg("listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info().Str("component", "server").Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info().Str("component", "server").Msg("stopped")
	return nil
}

// redisClient connects to REDIS_URL; nil without it, and sessions stay in-process.
func (a *app) redisClient(ctx context.Context) (*redis.Client, error) {
	if a.cfg.RedisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(a.cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	if strings.HasPrefix(a.cfg.RedisURL, "rediss://") && opt.TLSConfig == nil {
		opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = time.Second
	opt.WriteTimeout = time.Second
	rdb := redis.NewClient(opt)

	// fail fast if Redis isn't reachable
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}

func (a *app) scheduleBackups(ctx context.Context, db *sql.DB) error {
	job, err := backupJob(ctx, a, db)
	if err != nil {
		return err
	}
	maintenance.StartDailyBackups(ctx, a.log, a.cfg.Backup.At, a.cfg.Backup.TZ, job)
	return nil
}

// loginLimit returns nil unless LOGIN_MAX_ATTEMPTS is positive.
func (a *app) loginLimit(rdb *redis.Client) mw.Middleware {
	if a.cfg.LoginMaxAttempts <= 0 {
		return nil
	}
	var attempts mw.AttemptCounter = mw.NewMemoryAttempts(time.Minute)
	if rdb != nil {
		attempts = mw.NewRedisAttempts(rdb)
	}
	a.log.Info().Str("component", "http").
		Int("max_attempts", a.cfg.LoginMaxAttempts).
		Dur("window", a.cfg.LoginWindow).
		Bool("trust_proxy", a.cfg.TrustProxy).
		Msg("login throttle enabled")
	return mw.LoginRateLimit(mw.LoginLimit{
		Counter:     attempts,
		MaxAttempts: a.cfg.LoginMaxAttempts,
		Window:      a.cfg.LoginWindow,
		TrustProxy:  a.cfg.TrustProxy,
	})
}
