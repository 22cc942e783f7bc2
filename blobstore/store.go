// Package blobstore abstracts byte-blob storage for shared vector caches.
//
// A blob store holds small immutable blobs (encoded vectors, serialized
// sketches) keyed by name. Implementations cover the local filesystem and
// S3-compatible object storage so a vector cache can be shared across
// machines.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blobstore: blob not found")

// BlobStore stores immutable byte blobs by name. Put overwrites; because
// blobs are content-derived, racing writers for the same name store the
// same bytes.
type BlobStore interface {
	// Get returns the blob's contents.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes a blob, replacing any existing blob of that name.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all blob names with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
