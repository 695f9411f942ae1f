package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/5w1tchy/bookshelf/internal/api/httpx"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports whether the store answers within a second.
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
			httpx.WriteText(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		httpx.WriteText(w, http.StatusOK, "ok")
	}
}
