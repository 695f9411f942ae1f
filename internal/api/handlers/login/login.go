// Package login serves the admin sign-in and sign-out routes.
package login

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/api/httpx"
	"github.com/5w1tchy/bookshelf/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf/internal/auth"
	"github.com/5w1tchy/bookshelf/internal/session"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// ErrorMessage never says which half of the pair was wrong.
const ErrorMessage = "Invalid username or password"

type Gate interface {
	Authenticate(ctx context.Context, username, password string) (session.Session, error)
	IssueCookie(w http.ResponseWriter, s session.Session) error
	EndSession(w http.ResponseWriter, r *http.Request) error
}

// LoginObserver counts attempts; nil is allowed.
type LoginObserver interface {
	ObserveLogin(ok bool)
}

type Handler struct {
	Gate    Gate
	Views   views.Renderer
	Metrics LoginObserver
}

// Form renders GET /login, or sends a signed-in admin home.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	if _, ok := middlewares.IdentityFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.render(w, r, "")
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	f, err := httpx.ReadFields(r)
	if err != nil {
		apperr.WriteError(w, r, http.StatusBadRequest, "Bad Request")
		return
	}

	s, err := h.Gate.Authenticate(r.Context(), f.Get("username"), f.Get("password"))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.observe(false)
		hlog.FromRequest(r).Info().Msg("login rejected")
		h.render(w, r, ErrorMessage)
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("login failed")
		apperr.WriteError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := h.Gate.IssueCookie(w, s); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("issue session cookie")
		apperr.WriteError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	h.observe(true)
	hlog.FromRequest(r).Info().Str("user", s.Username).Msg("login")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout. It always lands on the home page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.EndSession(w, r); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("end session")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, msg string) {
	page := handlers.NewPage(r, "Login", views.Login, views.LoginData{Error: msg})
	// the failed attempt is still anonymous
	page.LoggedIn, page.Username = false, ""
	handlers.Render(w, r, h.Views, http.StatusOK, views.Login, page)
}

func (h *Handler) observe(ok bool) {
	if h.Metrics != nil {
		h.Metrics.ObserveLogin(ok)
	}
}
