package books

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// EditForm renders GET /book/{id}/edit from the raw row, so a book with a
// dangling author or genre can still be repaired.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := catalog.ParseID(r.PathValue("id"))
	if err != nil {
		handlers.NotFound(w, r)
		return
	}

	book, err := h.Store.GetBookRaw(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		handlers.NotFound(w, r)
		return
	}
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}

	data, err := h.formData(r, &book)
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}
	handlers.Render(w, r, h.Views, http.StatusOK, views.Edit, handlers.NewPage(r, "Edit Book", views.Edit, data))
}

// Update handles POST /book/{id}/edit. All six fields are overwritten; an
// unknown id updates nothing and still redirects.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	in, ok := readBookInput(w, r)
	if !ok {
		return
	}

	if id, err := catalog.ParseID(raw); err == nil {
		if err := h.Store.UpdateBook(r.Context(), id, in); err != nil {
			handlers.StoreFailure(w, r, err, "Error updating book")
			return
		}
		raw = strconv.FormatInt(id, 10)
	}
	http.Redirect(w, r, "/book/"+url.PathEscape(raw), http.StatusFound)
}
