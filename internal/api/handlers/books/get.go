package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// Detail renders GET /book/{id}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := catalog.ParseID(r.PathValue("id"))
	if err != nil {
		handlers.NotFound(w, r)
		return
	}

	book, err := h.Store.GetBookDetail(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		handlers.NotFound(w, r)
		return
	}
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}

	page := handlers.NewPage(r, book.Title, views.Detail, views.DetailData{Book: book})
	handlers.Render(w, r, h.Views, http.StatusOK, views.Detail, page)
}
