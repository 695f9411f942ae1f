// Package handlers holds helpers shared by the page handlers.
package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/middlewares"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// NewPage builds the view-model, filling in the session fields from the request.
func NewPage(r *http.Request, title, active string, data any) views.Page {
	p := views.Page{Title: title, Active: active, Data: data}
	if id, ok := middlewares.IdentityFrom(r.Context()); ok {
		p.LoggedIn = true
		p.Username = id.Username
	}
	return p
}

// Render writes a full page with status, or a 500 if the template fails.
func Render(w http.ResponseWriter, r *http.Request, v views.Renderer, status int, name string, p views.Page) {
	var buf bytes.Buffer
	if err := v.Render(&buf, name, p); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("view", name).Msg("render failed")
		apperr.WriteError(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// StoreFailure logs a data access error and answers 500 with a generic body.
func StoreFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	ev := hlog.FromRequest(r).Error().Err(err).Str("kind", apperr.Classify(err))
	var se *catalog.StoreError
	if errors.As(err, &se) {
		ev = ev.Str("op", se.Op)
	}
	ev.Msg(msg)
	apperr.WriteError(w, r, http.StatusInternalServerError, msg)
}

// NotFound answers 404 with the generic book message.
func NotFound(w http.ResponseWriter, r *http.Request) {
	apperr.WriteError(w, r, http.StatusNotFound, apperr.MsgNotFound)
}
