package maintenance

import (
	"context"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// SnapshotStore is satisfied by *s3.S3Client.
type SnapshotStore interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// Prune keeps the newest keepN snapshots under prefix and deletes the rest.
// Snapshot keys embed a UTC timestamp, so lexical order is age order.
// keepN <= 0 keeps everything. Returns the keys deleted before any error.
func Prune(ctx context.Context, store SnapshotStore, prefix string, keepN int) ([]string, error) {
	if keepN <= 0 {
		return nil, nil
	}
	keys, err := store.ListKeys(ctx, prefix)
	if err != nil {
		return nil, err
	}
	keys = lo.Filter(keys, func(k string, _ int) bool { return strings.HasSuffix(k, ".db") })
	if len(keys) <= keepN {
		return nil, nil
	}
	slices.Sort(keys)
	slices.Reverse(keys)

	var deleted []string
	for _, k := range keys[keepN:] {
		if err := store.DeleteObject(ctx, k); err != nil {
			return deleted, err
		}
		deleted = append(deleted, k)
	}
	return deleted, nil
}
