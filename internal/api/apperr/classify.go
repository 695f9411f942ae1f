package apperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Classify labels a driver error for logs. It never changes the response status:
// every store failure is a 500.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		switch pg.Code {
		case "23505":
			return "unique_violation"
		case "23503":
			return "foreign_key_violation"
		case "23502":
			return "not_null_violation"
		case "22P02":
			return "invalid_text_representation"
		case "40001":
			return "serialization_failure"
		case "40P01":
			return "deadlock_detected"
		case "42P01":
			return "undefined_table"
		default:
			return "postgres_" + pg.Code
		}
	}

	var lite sqlite3.Error
	if errors.As(err, &lite) {
		switch lite.Code {
		case sqlite3.ErrBusy:
			return "sqlite_busy"
		case sqlite3.ErrLocked:
			return "sqlite_locked"
		case sqlite3.ErrConstraint:
			return "sqlite_constraint"
		case sqlite3.ErrReadonly:
			return "sqlite_readonly"
		case sqlite3.ErrCorrupt:
			return "sqlite_corrupt"
		default:
			return "sqlite_error"
		}
	}

	return "unknown"
}
