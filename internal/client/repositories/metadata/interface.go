package metadata

import (
	"context"
	"time"
)

// LastSyncKey holds the RFC 3339 time of the last successful catalog sync.
const LastSyncKey = "last_sync"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// LastSync returns the recorded sync time; ok is false when no sync
	// has happened yet.
	LastSync(ctx context.Context) (t time.Time, ok bool, err error)
	SetLastSync(ctx context.Context, t time.Time) error
}
