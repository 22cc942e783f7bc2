// Package landmark implements landmark-similarity vectorization: a query
// sketch is scored against an ordered, curated set of reference genome
// sketches, and each similarity becomes one interpretable vector coordinate.
package landmark

import (
	"context"
	"crypto/sha1" //nolint:gosec // identity token, not security
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/genovec/sketch"
)

// ErrEmptySet indicates a landmark set with no members; the output vector
// length would be undefined.
var ErrEmptySet = errors.New("landmark: empty landmark set")

// ErrUnknownGroup is returned by providers that have no set for a group.
var ErrUnknownGroup = errors.New("landmark: unknown group")

// Set is an ordered, immutable sequence of landmark sketches. Order is
// load-bearing: coordinate k of every landmark vector means "similarity to
// landmark k".
type Set struct {
	group    string
	sketches []sketch.Sketch
	token    string
}

// NewSet creates a Set for the given group. The sketch order is preserved.
func NewSet(group string, sketches []sketch.Sketch) (*Set, error) {
	if len(sketches) == 0 {
		return nil, ErrEmptySet
	}

	// Identity token: digest over the member digests in order, so any
	// change in membership or order changes the token.
	h := sha1.New() //nolint:gosec
	h.Write([]byte(group))
	for _, s := range sketches {
		h.Write(sketch.Digest(s))
	}

	return &Set{
		group:    group,
		sketches: sketches,
		token:    hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// Group returns the group identifier this set was built for.
func (s *Set) Group() string { return s.group }

// Len returns the number of landmarks.
func (s *Set) Len() int { return len(s.sketches) }

// Sketches returns the ordered landmark sketches. Read-only.
func (s *Set) Sketches() []sketch.Sketch { return s.sketches }

// Token returns a stable identity token for cache keying. Equal sets (same
// group, same members, same order) share a token across processes.
func (s *Set) Token() string { return s.token }

// Vectorize scores query against every landmark in order. The output length
// equals set.Len() and every coordinate lies in [0, 1]. No normalization is
// applied; similarity scores are already bounded.
func Vectorize(query sketch.Sketch, set *Set) ([]float64, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrEmptySet
	}

	out := make([]float64, set.Len())
	for i, lm := range set.sketches {
		out[i] = query.Similarity(lm)
	}

	return out, nil
}

// Provider supplies the landmark set for a named group, typically backed by
// remote genome acquisition plus sketching. Implementations must return
// equal sets (same token) for repeated calls with the same group.
type Provider interface {
	Landmarks(ctx context.Context, group string) (*Set, error)
}

// StaticProvider serves fixed, pre-built sets from memory.
type StaticProvider map[string]*Set

// Landmarks implements Provider.
func (p StaticProvider) Landmarks(_ context.Context, group string) (*Set, error) {
	set, ok := p[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return set, nil
}

// MemoizingProvider caches sets per group after the first fetch. Building a
// landmark set can involve sketching dozens of reference genomes, so
// repeated pipeline calls should not pay that twice.
type MemoizingProvider struct {
	inner Provider

	mu   sync.Mutex
	sets map[string]*Set
}

// NewMemoizingProvider wraps a Provider with per-group memoization.
func NewMemoizingProvider(inner Provider) *MemoizingProvider {
	return &MemoizingProvider{
		inner: inner,
		sets:  make(map[string]*Set),
	}
}

// Landmarks implements Provider.
func (p *MemoizingProvider) Landmarks(ctx context.Context, group string) (*Set, error) {
	p.mu.Lock()
	if set, ok := p.sets[group]; ok {
		p.mu.Unlock()
		return set, nil
	}
	p.mu.Unlock()

	set, err := p.inner.Landmarks(ctx, group)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	// First writer wins so concurrent fetchers agree on the set identity.
	if cached, ok := p.sets[group]; ok {
		set = cached
	} else {
		p.sets[group] = set
	}
	p.mu.Unlock()

	return set, nil
}
