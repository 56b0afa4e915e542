package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the contract the image-upload workflow needs from the
// object store: idempotent bucket creation, an object put, and a
// time-limited retrieval URL.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}
