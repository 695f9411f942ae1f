package middlewares

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Logger puts a per-request copy of log into the context and writes one access line per request.
func Logger(log zerolog.Logger) Middleware {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})
	inject := hlog.NewHandler(log)
	return func(next http.Handler) http.Handler {
		return inject(access(next))
	}
}
