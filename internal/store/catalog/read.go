package catalog

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

// GetBookDetail loads a book with its author and genre. A book whose relations
// do not resolve is reported as ErrNotFound.
func (s *Store) GetBookDetail(ctx context.Context, id int64) (BookDetail, error) {
	q := s.sq.Select(append(bookColumns, "a.name", "a.country", "g.name", "g.description")...).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Join("genres g ON g.id = b.genre_id").
		Where(sq.Eq{"b.id": id})

	var (
		bs      bookScan
		d       BookDetail
		country sql.NullString
		desc    sql.NullString
	)
	err := dbx.Get(ctx, s.db, q, append(bs.dest(), &d.AuthorName, &country, &d.GenreName, &desc)...)
	if errors.Is(err, sql.ErrNoRows) {
		return BookDetail{}, ErrNotFound
	}
	if err != nil {
		return BookDetail{}, storeErr("get book detail", err)
	}
	d.Book = bs.book()
	d.AuthorCountry = stringPtr(country)
	d.GenreDescription = stringPtr(desc)
	return d, nil
}

// GetBookRaw loads a books row without joins.
func (s *Store) GetBookRaw(ctx context.Context, id int64) (Book, error) {
	q := s.sq.Select(bookColumns...).From("books b").Where(sq.Eq{"b.id": id})

	var bs bookScan
	err := dbx.Get(ctx, s.db, q, bs.dest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, storeErr("get book", err)
	}
	return bs.book(), nil
}
