package books

import (
	"net/http"

	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
)

// Delete handles POST /book/{id}/delete. Missing ids are not an error.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, err := catalog.ParseID(r.PathValue("id")); err == nil {
		if err := h.Store.DeleteBook(r.Context(), id); err != nil {
			handlers.StoreFailure(w, r, err, "Error deleting book")
			return
		}
	}
	http.Redirect(w, r, "/list", http.StatusFound)
}
