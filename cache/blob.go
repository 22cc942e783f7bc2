package cache

import (
	"context"
	"crypto/sha1" //nolint:gosec // filename derivation
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/hupe1980/genovec/blobstore"
	"github.com/hupe1980/genovec/codec"
)

// BlobVectorStore persists vectors as codec-encoded blobs in a BlobStore,
// letting a cache be shared across machines via object storage.
//
// Blob names embed the codec name so entries written with an older default
// codec stay readable:
//
//	vectors/<sha1(key)>.<codec>
type BlobVectorStore struct {
	store blobstore.BlobStore
	codec codec.Codec
}

// BlobVectorStoreOption configures a BlobVectorStore.
type BlobVectorStoreOption func(*BlobVectorStore)

// WithBlobCodec overrides the codec used for newly written blobs.
func WithBlobCodec(c codec.Codec) BlobVectorStoreOption {
	return func(s *BlobVectorStore) {
		if c != nil {
			s.codec = c
		}
	}
}

// NewBlobVectorStore creates a BlobVectorStore over the given blob store.
func NewBlobVectorStore(store blobstore.BlobStore, optFns ...BlobVectorStoreOption) *BlobVectorStore {
	s := &BlobVectorStore{
		store: store,
		codec: codec.Default,
	}

	for _, fn := range optFns {
		fn(s)
	}

	return s
}

func blobBase(key Key) string {
	sum := sha1.Sum([]byte(key)) //nolint:gosec
	return "vectors/" + hex.EncodeToString(sum[:])
}

// Load implements VectorStore.
func (s *BlobVectorStore) Load(ctx context.Context, key Key) ([]float64, bool, error) {
	base := blobBase(key)

	// Current codec first; fall back to any codec this build understands.
	for _, name := range []string{s.codec.Name(), "raw", "zstd", "lz4"} {
		c, ok := codec.ByName(name)
		if !ok {
			continue
		}

		data, err := s.store.Get(ctx, base+"."+name)
		if errors.Is(err, blobstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, false, err
		}

		v, err := c.Decode(data)
		if err != nil {
			return nil, false, fmt.Errorf("cache: decode blob %s: %w", base, err)
		}
		return v, true, nil
	}

	return nil, false, nil
}

// Save implements VectorStore. Overwrites are idempotent; the blob content
// is a pure function of the key.
func (s *BlobVectorStore) Save(ctx context.Context, key Key, v []float64) error {
	data, err := s.codec.Encode(v)
	if err != nil {
		return err
	}

	return s.store.Put(ctx, blobBase(key)+"."+s.codec.Name(), data)
}
