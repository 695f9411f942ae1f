package catalog

import (
	"context"
	"database/sql"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

// ListAuthors returns every author in insertion order.
func (s *Store) ListAuthors(ctx context.Context) ([]Author, error) {
	rows, err := dbx.Query(ctx, s.db,
		s.sq.Select("id", "name", "birth_year", "country").From("authors").OrderBy("id"))
	if err != nil {
		return nil, storeErr("list authors", err)
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		var (
			a       Author
			year    sql.NullInt64
			country sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &year, &country); err != nil {
			return nil, storeErr("list authors", err)
		}
		a.BirthYear = int64Ptr(year)
		a.Country = stringPtr(country)
		out = append(out, a)
	}
	return out, storeErr("list authors", rows.Err())
}

// ListGenres returns every genre in insertion order.
func (s *Store) ListGenres(ctx context.Context) ([]Genre, error) {
	rows, err := dbx.Query(ctx, s.db,
		s.sq.Select("id", "name", "description").From("genres").OrderBy("id"))
	if err != nil {
		return nil, storeErr("list genres", err)
	}
	defer rows.Close()

	out := []Genre{}
	for rows.Next() {
		var (
			g    Genre
			desc sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Name, &desc); err != nil {
			return nil, storeErr("list genres", err)
		}
		g.Description = stringPtr(desc)
		out = append(out, g)
	}
	return out, storeErr("list genres", rows.Err())
}
