package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

var mutableColumns = []string{"title", "author_id", "genre_id", "publication_year", "isbn", "pages"}

func (in BookInput) values() []any {
	return []any{
		in.Title,
		nullable(in.AuthorID),
		nullable(in.GenreID),
		nullable(in.PublicationYear),
		nullable(in.ISBN),
		nullable(in.Pages),
	}
}

// InsertBook creates a book and returns the id the store generated.
func (s *Store) InsertBook(ctx context.Context, in BookInput) (int64, error) {
	q := s.sq.Insert("books").
		Columns(mutableColumns...).
		Values(in.values()...).
		Suffix("RETURNING id")

	var id int64
	if err := dbx.Get(ctx, s.db, q, &id); err != nil {
		return 0, storeErr("insert book", err)
	}
	return id, nil
}

// UpdateBook overwrites all mutable fields. Updating a missing id is not an error.
func (s *Store) UpdateBook(ctx context.Context, id int64, in BookInput) error {
	vals := in.values()
	q := s.sq.Update("books")
	for i, col := range mutableColumns {
		q = q.Set(col, vals[i])
	}
	_, err := dbx.Exec(ctx, s.db, q.Where(sq.Eq{"id": id}))
	return storeErr("update book", err)
}

// DeleteBook removes a book. Deleting a missing id is not an error.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	_, err := dbx.Exec(ctx, s.db, s.sq.Delete("books").Where(sq.Eq{"id": id}))
	return storeErr("delete book", err)
}
