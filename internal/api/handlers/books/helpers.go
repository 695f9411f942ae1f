package books

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/5w1tchy/bookshelf/internal/api/apperr"
	"github.com/5w1tchy/bookshelf/internal/api/httpx"
	"github.com/5w1tchy/bookshelf/internal/store/catalog"
)

// ParseBookInput maps request fields onto a BookInput. Nothing is validated:
// empty or non-numeric numbers become NULL, an empty isbn becomes NULL.
func ParseBookInput(f httpx.Fields) catalog.BookInput {
	return catalog.BookInput{
		Title:           f.Get("title"),
		AuthorID:        optInt(f, "author_id"),
		GenreID:         optInt(f, "genre_id"),
		PublicationYear: optInt(f, "publication_year"),
		ISBN:            optString(f, "isbn"),
		Pages:           optInt(f, "pages"),
	}
}

func optInt(f httpx.Fields, key string) *int64 {
	v, ok := f.Lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func optString(f httpx.Fields, key string) *string {
	v, ok := f.Lookup(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func readBookInput(w http.ResponseWriter, r *http.Request) (catalog.BookInput, bool) {
	f, err := httpx.ReadFields(r)
	if err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("unreadable book form")
		apperr.WriteError(w, r, http.StatusBadRequest, "Bad Request")
		return catalog.BookInput{}, false
	}
	return ParseBookInput(f), true
}
