package catalog

import (
	"context"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

// CountBooks counts every books row, including ones whose joins would fail.
func (s *Store) CountBooks(ctx context.Context) (int, error) {
	var total int
	if err := dbx.Get(ctx, s.db, s.sq.Select("COUNT(*)").From("books"), &total); err != nil {
		return 0, storeErr("count books", err)
	}
	return total, nil
}

// ListBooksPage returns one page of books that resolve to both an author and a genre.
func (s *Store) ListBooksPage(ctx context.Context, limit, offset int) ([]BookListing, error) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	q := s.sq.Select(append(bookColumns, "a.name", "g.name")...).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Join("genres g ON g.id = b.genre_id").
		OrderBy("b.id").
		Suffix("LIMIT ? OFFSET ?", limit, offset)

	rows, err := dbx.Query(ctx, s.db, q)
	if err != nil {
		return nil, storeErr("list books", err)
	}
	defer rows.Close()

	out := make([]BookListing, 0, limit)
	for rows.Next() {
		var (
			bs   bookScan
			item BookListing
		)
		if err := rows.Scan(append(bs.dest(), &item.AuthorName, &item.GenreName)...); err != nil {
			return nil, storeErr("list books", err)
		}
		item.Book = bs.book()
		out = append(out, item)
	}
	return out, storeErr("list books", rows.Err())
}
