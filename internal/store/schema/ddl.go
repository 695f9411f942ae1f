package schema

import "github.com/5w1tchy/bookshelf/internal/store/dbx"

type table struct {
	name string
	ddl  map[dbx.Dialect]string
}

// Book references are declared but not enforced: sqlite leaves foreign keys off
// unless asked, and the Postgres DDL omits them so both stores accept dangling ids.
var tables = []table{
	{
		name: "authors",
		ddl: map[dbx.Dialect]string{
			dbx.SQLite: `CREATE TABLE IF NOT EXISTS authors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	birth_year INTEGER,
	country TEXT
)`,
			dbx.Postgres: `CREATE TABLE IF NOT EXISTS authors (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	birth_year INTEGER,
	country TEXT
)`,
		},
	},
	{
		name: "genres",
		ddl: map[dbx.Dialect]string{
			dbx.SQLite: `CREATE TABLE IF NOT EXISTS genres (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT
)`,
			dbx.Postgres: `CREATE TABLE IF NOT EXISTS genres (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT
)`,
		},
	},
	{
		name: "books",
		ddl: map[dbx.Dialect]string{
			dbx.SQLite: `CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author_id INTEGER,
	genre_id INTEGER,
	publication_year INTEGER,
	isbn TEXT,
	pages INTEGER,
	FOREIGN KEY (author_id) REFERENCES authors(id),
	FOREIGN KEY (genre_id) REFERENCES genres(id)
)`,
			dbx.Postgres: `CREATE TABLE IF NOT EXISTS books (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	author_id BIGINT,
	genre_id BIGINT,
	publication_year INTEGER,
	isbn TEXT,
	pages INTEGER
)`,
		},
	},
}
