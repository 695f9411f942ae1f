// Package storetest opens throwaway sqlite databases for tests.
package storetest

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
	"github.com/5w1tchy/bookshelf/internal/store/schema"
)

// Open returns an empty in-memory database private to the test.
func Open(t testing.TB) *sql.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_busy_timeout=5000"
	db, err := sql.Open(string(dbx.SQLite), dsn)
	require.NoError(t, err)
	// the database lives as long as this one connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Seeded returns a database with the tables created and the sample rows inserted.
func Seeded(t testing.TB) *sql.DB {
	t.Helper()
	db := Open(t)
	res := schema.New(db, dbx.SQLite, zerolog.Nop()).Run(t.Context())
	require.True(t, res.TablesReady)
	require.True(t, res.Seeded)
	require.Zero(t, res.FailedInserts)
	return db
}
