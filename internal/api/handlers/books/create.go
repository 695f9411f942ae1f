package books

import (
	"net/http"
	"strconv"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/handlers"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// AddForm renders GET /add.
func (h *Handler) AddForm(w http.ResponseWriter, r *http.Request) {
	data, err := h.formData(r, nil)
	if err != nil {
		handlers.StoreFailure(w, r, err, apperr.MsgStore)
		return
	}
	handlers.Render(w, r, h.Views, http.StatusOK, views.Add, handlers.NewPage(r, "Add New Book", views.Add, data))
}

// Create handles POST /add and redirects to the new book.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := readBookInput(w, r)
	if !ok {
		return
	}
	id, err := h.Store.InsertBook(r.Context(), in)
	if err != nil {
		handlers.StoreFailure(w, r, err, "Error adding book")
		return
	}
	http.Redirect(w, r, "/book/"+strconv.FormatInt(id, 10), http.StatusFound)
}

func (h *Handler) formData(r *http.Request, book *catalog.Book) (views.FormData, error) {
	authors, err := h.Store.ListAuthors(r.Context())
	if err != nil {
		return views.FormData{}, err
	}
	genres, err := h.Store.ListGenres(r.Context())
	if err != nil {
		return views.FormData{}, err
	}

	var authorID, genreID *int64
	if book != nil {
		authorID, genreID = book.AuthorID, book.GenreID
	}
	return views.FormData{
		Book:    book,
		Authors: views.AuthorOptions(authors, authorID),
		Genres:  views.GenreOptions(genres, genreID),
	}, nil
}
