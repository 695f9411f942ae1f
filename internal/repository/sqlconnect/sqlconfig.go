package sqlconnect

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/5w1tchy/bookshelf/internal/store/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type Options struct {
	// DatabaseURL selects Postgres when set; otherwise Path is opened with SQLite.
	DatabaseURL string
	Path        string
}

// ConnectDB opens and pings the configured store.
func ConnectDB(ctx context.Context, opts Options) (*sql.DB, dbx.Dialect, error) {
	if opts.DatabaseURL != "" {
		db, err := open(ctx, string(dbx.Postgres), opts.DatabaseURL)
		if err != nil {
			return nil, "", err
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
		return db, dbx.Postgres, nil
	}

	if opts.Path == "" {
		return nil, "", errors.New("sqlite path not set")
	}
	db, err := open(ctx, string(dbx.SQLite), SQLiteDSN(opts.Path))
	if err != nil {
		return nil, "", err
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY under load
	db.SetMaxOpenConns(1)
	return db, dbx.SQLite, nil
}

// SQLiteDSN builds a file DSN with a busy timeout.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_busy_timeout=5000"
}

func open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
