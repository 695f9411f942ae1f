// Package catalog is the data access layer for authors, genres and books.
package catalog

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

type Store struct {
	db dbx.DB
	sq sq.StatementBuilderType
}

func New(db dbx.DB, dialect dbx.Dialect) *Store {
	return &Store{db: db, sq: dialect.Builder()}
}

var bookColumns = []string{
	"b.id", "b.title", "b.author_id", "b.genre_id", "b.publication_year", "b.isbn", "b.pages",
}

// bookScan holds the nullable columns of a books row while scanning.
type bookScan struct {
	id       int64
	title    string
	authorID sql.NullInt64
	genreID  sql.NullInt64
	year     sql.NullInt64
	isbn     sql.NullString
	pages    sql.NullInt64
}

func (s *bookScan) dest() []any {
	return []any{&s.id, &s.title, &s.authorID, &s.genreID, &s.year, &s.isbn, &s.pages}
}

func (s *bookScan) book() Book {
	return Book{
		ID:              s.id,
		Title:           s.title,
		AuthorID:        int64Ptr(s.authorID),
		GenreID:         int64Ptr(s.genreID),
		PublicationYear: int64Ptr(s.year),
		ISBN:            stringPtr(s.isbn),
		Pages:           int64Ptr(s.pages),
	}
}
