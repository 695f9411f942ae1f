// Package pages serves the static informational views.
package pages

import (
	"net/http"

	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/views"
)

type Handler struct {
	Views views.Renderer
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "Home - Book Management System", views.Home)
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "About", views.About)
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	h.static(w, r, "Contact", views.Contact)
}

func (h *Handler) static(w http.ResponseWriter, r *http.Request, title, name string) {
	handlers.Render(w, r, h.Views, http.StatusOK, name, handlers.NewPage(r, title, name, nil))
}
