// Package books serves the catalog pages: listing, detail, add, edit and delete.
package books

import (
	"context"

	"github.com/5w1tchy/bookshelf/internal/store/catalog"
	"github.com/5w1tchy/bookshelf/internal/views"
)

// PageSize is the fixed number of books per listing page.
const PageSize = 3

// Catalog is the slice of the data access layer these pages need.
type Catalog interface {
	ListAuthors(ctx context.Context) ([]catalog.Author, error)
	ListGenres(ctx context.Context) ([]catalog.Genre, error)
	CountBooks(ctx context.Context) (int, error)
	ListBooksPage(ctx context.Context, limit, offset int) ([]catalog.BookListing, error)
	GetBookDetail(ctx context.Context, id int64) (catalog.BookDetail, error)
	GetBookRaw(ctx context.Context, id int64) (catalog.Book, error)
	InsertBook(ctx context.Context, in catalog.BookInput) (int64, error)
	UpdateBook(ctx context.Context, id int64, in catalog.BookInput) error
	DeleteBook(ctx context.Context, id int64) error
}

type Handler struct {
	Store Catalog
	Views views.Renderer
}
