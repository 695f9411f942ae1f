package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/spf13/cobra"

	"github.com/5w1tchy/bookshelf/internal/config"
	"github.com/5w1tchy/bookshelf/internal/maintenance"
	"github.com/5w1tchy/bookshelf/internal/storage/s3"
	"github.com/5w1tchy/bookshelf/internal/store/dbx"
)

func backupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the sqlite store and upload it to BACKUP_BUCKET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, dialect, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()
			if dialect != dbx.SQLite {
				return maintenance.ErrUnsupported
			}

			job, err := backupJob(cmd.Context(), a, db)
			if err != nil {
				return err
			}
			return job(cmd.Context())
		},
	}
}

var _ maintenance.SnapshotStore = (*s3.S3Client)(nil)

// backupJob returns a closure that snapshots db, uploads it under a fresh key
// and prunes the bucket down to the newest Backup.Keep snapshots.
func backupJob(ctx context.Context, a *app, db *sql.DB) (func(context.Context) error, error) {
	client, err := newBackupClient(ctx, a.cfg.Backup)
	if err != nil {
		return nil, err
	}
	log := a.log.With().Str("component", "backup").Logger()

	return func(ctx context.Context) error {
		key := s3.SnapshotKey(a.cfg.Backup.Prefix, time.Now())
		size, err := maintenance.Backup(ctx, db, client, key)
		if err != nil {
			return err
		}
		log.Info().Str("bucket", client.Bucket).Str("key", key).Int64("bytes", size).Msg("snapshot uploaded")

		deleted, err := maintenance.Prune(ctx, client, s3.SnapshotPrefix(a.cfg.Backup.Prefix), a.cfg.Backup.Keep)
		if err != nil {
			// the new snapshot is already stored; the next run retries the prune
			log.Warn().Err(err).Strs("deleted", deleted).Msg("snapshot prune failed")
			return nil
		}
		if len(deleted) > 0 {
			log.Info().Int("keep", a.cfg.Backup.Keep).Strs("deleted", deleted).Msg("old snapshots pruned")
		}
		return nil
	}, nil
}

func newBackupClient(ctx context.Context, b config.Backup) (*s3.S3Client, error) {
	return s3.NewClient(ctx, s3.Options{
		Bucket:          b.Bucket,
		Region:          b.Region,
		Endpoint:        b.Endpoint,
		AccessKeyID:     b.AccessKeyID,
		SecretAccessKey: b.SecretAccessKey,
	})
}
