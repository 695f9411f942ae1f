package middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/hlog"
)

// AttemptCounter increments a per-key counter that resets window after its first hit.
type AttemptCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type LoginLimit struct {
	Counter     AttemptCounter
	MaxAttempts int
	Window      time.Duration
	// TrustProxy keys clients by the address the fronting proxy appended to
	// X-Forwarded-For (or X-Real-IP). Off, only the socket address counts.
	TrustProxy bool
}

// LoginRateLimit answers 429 once a client IP exceeds MaxAttempts login posts per Window.
// Counter errors fail open.
func LoginRateLimit(l LoginLimit) Middleware {
	if l.MaxAttempts <= 0 {
		l.MaxAttempts = 10
	}
	if l.Window <= 0 {
		l.Window = 5 * time.Minute
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, l.TrustProxy)
			if ip == "" || l.Counter == nil {
				next.ServeHTTP(w, r)
				return
			}

			n, err := l.Counter.Incr(r.Context(), "rl:login:"+ip, l.Window)
			if err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("login attempt counter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if n > int64(l.MaxAttempts) {
				w.Header().Set("Retry-After", strconv.Itoa(int(l.Window.Seconds())))
				http.Error(w, "too many login attempts", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// the proxy appends the peer it saw; earlier entries come from the client
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if ip := net.ParseIP(strings.TrimSpace(parts[len(parts)-1])); ip != nil {
				return ip.String()
			}
		}
		if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

type RedisAttempts struct{ rdb *redis.Client }

func NewRedisAttempts(rdb *redis.Client) *RedisAttempts { return &RedisAttempts{rdb: rdb} }

func (a *RedisAttempts) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := a.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		_ = a.rdb.Expire(ctx, key, window).Err()
	}
	return n, nil
}

type MemoryAttempts struct{ c *cache.Cache }

func NewMemoryAttempts(cleanupInterval time.Duration) *MemoryAttempts {
	return &MemoryAttempts{c: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (a *MemoryAttempts) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	// Add only succeeds for a fresh key, which pins the window to the first attempt
	_ = a.c.Add(key, int64(0), window)
	return a.c.IncrementInt64(key, 1)
}
