package books

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// List renders GET /list?page=N.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r.URL.Query().Get("page"))

	total, err := h.Store.CountBooks(r.Context())
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}
	totalPages := (total + PageSize - 1) / PageSize

	books, err := h.Store.ListBooksPage(r.Context(), PageSize, (page-1)*PageSize)
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}

	data := views.ListData{
		Books:       books,
		CurrentPage: page,
		TotalPages:  totalPages,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
	handlers.Render(w, r, h.Views, http.StatusOK, views.List, handlers.NewPage(r, "Books List", views.List, data))
}

// maxPage keeps the offset arithmetic far from overflow.
const maxPage = math.MaxInt32

// parsePage falls back to 1 for missing, malformed or non-positive values.
func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxPage {
		return maxPage
	}
	return n
}
