// Package maintenance takes catalog snapshots and ships them off-host.
package maintenance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var ErrUnsupported = errors.New("snapshots need the sqlite store")

// Uploader is satisfied by *s3.S3Client.
type Uploader interface {
	Upload(ctx context.Context, objectKey string, body io.Reader, size int64) error
}

// Snapshot writes a consistent copy of the sqlite database to dest.
// dest must not exist.
func Snapshot(ctx context.Context, db *sql.DB, dest string) error {
	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return fmt.Errorf("snapshot %s: %w", dest, err)
	}
	return nil
}

// Backup snapshots db into a temp dir and uploads it under key.
func Backup(ctx context.Context, db *sql.DB, up Uploader, key string) (int64, error) {
	dir, err := os.MkdirTemp("", "bookshelf-backup-")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(dir)

	dest := filepath.Join(dir, "books.db")
	if err := Snapshot(ctx, db, dest); err != nil {
		return 0, err
	}

	f, err := os.Open(dest)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if err := up.Upload(ctx, key, f, st.Size()); err != nil {
		return 0, err
	}
	return st.Size(), nil
}

// NextRun returns the next wall-clock occurrence of h:m in loc strictly after now.
func NextRun(now time.Time, h, m int, loc *time.Location) time.Time {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// ParseClock parses "HH:MM"; anything else falls back to 03:00.
func ParseClock(s string) (h, m int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 3, 0
	}
	return t.Hour(), t.Minute()
}

// StartDailyBackups runs job once a day at localTime ("HH:MM") in tzName until ctx is done.
// Call once at startup from serve.
func StartDailyBackups(ctx context.Context, log zerolog.Logger, localTime, tzName string, job func(context.Context) error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		loc = time.Local
	}
	h, m := ParseClock(localTime)
	log = log.With().Str("component", "backup").Logger()

	go func() {
		for {
			timer := time.NewTimer(time.Until(NextRun(time.Now(), h, m, loc)))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				if err := job(ctx); err != nil {
					log.Error().Err(err).Msg("scheduled backup failed")
				} else {
					log.Info().Msg("scheduled backup uploaded")
				}
			}
		}
	}()
}
