// Package schema creates the catalog tables and seeds them on first start.
package schema

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

// Result summarizes one initializer run.
type Result struct {
	TablesReady   bool
	Seeded        bool
	FailedInserts int
}

type Initializer struct {
	db      dbx.DB
	dialect dbx.Dialect
	sq      sq.StatementBuilderType
	log     zerolog.Logger
}

func New(db dbx.DB, dialect dbx.Dialect, log zerolog.Logger) *Initializer {
	return &Initializer{
		db:      db,
		dialect: dialect,
		sq:      dialect.Builder(),
		log:     log.With().Str("component", "schema").Logger(),
	}
}

// Run creates missing tables and seeds an empty store. Failures are logged, never returned:
// the server keeps starting and individual requests surface store errors instead.
func (i *Initializer) Run(ctx context.Context) Result {
	var res Result

	res.TablesReady = i.createTables(ctx)
	if !res.TablesReady {
		return res
	}

	var count int
	if err := dbx.Get(ctx, i.db, i.sq.Select("COUNT(*)").From("authors"), &count); err != nil {
		i.log.Error().Err(err).Msg("count authors failed; skipping seed")
		return res
	}
	if count > 0 {
		i.log.Debug().Int("authors", count).Msg("store already populated")
		return res
	}

	res.FailedInserts = i.seed(ctx)
	res.Seeded = true
	i.log.Info().Int("failed_inserts", res.FailedInserts).Msg("sample data inserted")
	return res
}

func (i *Initializer) createTables(ctx context.Context) bool {
	ok := true
	for _, t := range tables {
		if _, err := i.db.ExecContext(ctx, t.ddl[i.dialect]); err != nil {
			i.log.Error().Err(err).Str("table", t.name).Msg("create table failed")
			ok = false
		}
	}
	return ok
}

func (i *Initializer) seed(ctx context.Context) int {
	failed := 0

	authorIDs := make([]*int64, len(seedAuthors))
	for n, a := range seedAuthors {
		id, err := i.insert(ctx, i.sq.Insert("authors").
			Columns("name", "birth_year", "country").
			Values(a.name, a.birthYear, a.country))
		if err != nil {
			i.log.Error().Err(err).Str("author", a.name).Msg("seed author failed")
			failed++
			continue
		}
		authorIDs[n] = &id
	}

	genreIDs := make([]*int64, len(seedGenres))
	for n, g := range seedGenres {
		id, err := i.insert(ctx, i.sq.Insert("genres").
			Columns("name", "description").
			Values(g.name, g.description))
		if err != nil {
			i.log.Error().Err(err).Str("genre", g.name).Msg("seed genre failed")
			failed++
			continue
		}
		genreIDs[n] = &id
	}

	for _, b := range seedBooks {
		_, err := i.insert(ctx, i.sq.Insert("books").
			Columns("title", "author_id", "genre_id", "publication_year", "isbn", "pages").
			Values(b.title, ref(authorIDs, b.author), ref(genreIDs, b.genre), b.year, b.isbn, b.pages))
		if err != nil {
			i.log.Error().Err(err).Str("book", b.title).Msg("seed book failed")
			failed++
		}
	}
	return failed
}

func (i *Initializer) insert(ctx context.Context, q sq.InsertBuilder) (int64, error) {
	var id int64
	err := dbx.Get(ctx, i.db, q.Suffix("RETURNING id"), &id)
	return id, err
}

// ref resolves a 1-based seed position to a generated id, or NULL when that insert failed.
func ref(ids []*int64, pos int) any {
	if pos < 1 || pos > len(ids) || ids[pos-1] == nil {
		return nil
	}
	return *ids[pos-1]
}
