package storage

import "context"

type SnapshotResult struct {
	Key      string
	Location string
	ETag     string
}

// SnapshotStore publishes schedule documents to a public object store so
// athlete-facing frontends read the published schedule from the CDN
// instead of hitting the API.
type SnapshotStore interface {
	PutJSON(ctx context.Context, key string, payload []byte) (*SnapshotResult, error)

	Delete(ctx context.Context, key string) error

	PublicURL(key string) string
}
