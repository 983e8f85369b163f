// Package storage defines the interface for object storage operations.
// The MinIO implementation works with any S3-compatible provider
// (AWS S3, MinIO, and the like); swap implementations by changing the
// concrete type injected at startup.
package storage

import (
	"context"
	"io"
)

// Store is the interface for the object storage operations this service needs.
// Buckets are passed per call: the upload API lets the client target any
// bucket on the configured allow-list.
type Store interface {
	// Exists reports whether an object is present at key in bucket.
	Exists(ctx context.Context, bucket, key string) (bool, error)
	// Put streams data to the store under the given key.
	Put(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) error
	// ListDirectories returns the top-level directory-like prefixes in bucket,
	// without trailing delimiters.
	ListDirectories(ctx context.Context, bucket string) ([]string, error)
	// ObjectURL constructs the browser-accessible URL for a given key.
	ObjectURL(bucket, key string) string
}
