package sketch

import (
	"context"
	"crypto/sha1" //nolint:gosec // content addressing, not security
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnknownQuery is returned by resolvers that have no sketch for a query.
var ErrUnknownQuery = errors.New("sketch: unknown query")

// Sketch is a read-only handle to a k-mer sketch: a bounded set of 64-bit
// fingerprints with a pairwise similarity operation.
//
// Implementations must return fingerprints in ascending numeric order. The
// vectorizers rely on this canonical order so that floating-point
// accumulation is bit-identical across processes and platforms.
type Sketch interface {
	// Len returns the number of fingerprints in the sketch.
	Len() int

	// Fingerprints returns the fingerprint set in ascending order.
	// The returned slice must be treated as read-only.
	Fingerprints() []uint64

	// Similarity returns a similarity score against another sketch in [0, 1].
	Similarity(other Sketch) float64
}

// Resolver maps a query identifier (species name, accession, taxon ID) to a
// Sketch. Resolution may involve remote data acquisition and caching; both
// are the resolver's concern. The pipeline treats a resolved Sketch as
// already available and synchronous.
type Resolver interface {
	Resolve(ctx context.Context, query string) (Sketch, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, query string) (Sketch, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, query string) (Sketch, error) {
	return f(ctx, query)
}

// StaticResolver resolves queries from a fixed in-memory map.
type StaticResolver map[string]Sketch

// Resolve implements Resolver.
func (r StaticResolver) Resolve(_ context.Context, query string) (Sketch, error) {
	s, ok := r[query]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, query)
	}
	return s, nil
}

// Digest returns a stable identity token for a sketch: the SHA-1 digest of
// its fingerprints in ascending order. Two sketches with the same
// fingerprint set share a digest, across processes and machines.
func Digest(s Sketch) []byte {
	h := sha1.New() //nolint:gosec

	var buf [8]byte
	for _, fp := range s.Fingerprints() {
		binary.LittleEndian.PutUint64(buf[:], fp)
		h.Write(buf[:])
	}

	return h.Sum(nil)
}
