package sketch

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// DefaultMaxFingerprints bounds a MinHash sketch to the n smallest
// fingerprint values, mirroring common genome-sketching defaults.
const DefaultMaxFingerprints = 5000

// DefaultKSize is the k-mer length recorded with a sketch. The engine never
// extracts k-mers itself; k only guards against comparing sketches built
// from incompatible k-mer streams.
const DefaultKSize = 51

// ErrKSizeMismatch is returned when comparing sketches built for different
// k-mer lengths.
var ErrKSizeMismatch = errors.New("sketch: k-mer size mismatch")

// minhashFormatVersion is the on-wire version byte of MarshalBinary.
const minhashFormatVersion = 1

// MinHash is a bottom-k sketch: it retains the numerically smallest
// fingerprints seen, up to a fixed bound. Smallest-value retention makes the
// retained set a uniform sample of the underlying k-mer space, so the
// Jaccard similarity of two retained sets estimates the similarity of the
// full sets.
//
// MinHash is not safe for concurrent mutation. Once populated it can be
// shared freely across goroutines for reads.
type MinHash struct {
	ksize int
	max   int
	fps   *roaring64.Bitmap
}

// MinHashOption configures a MinHash.
type MinHashOption func(*MinHash)

// WithKSize sets the recorded k-mer length.
func WithKSize(k int) MinHashOption {
	return func(m *MinHash) {
		m.ksize = k
	}
}

// WithMaxFingerprints bounds the sketch to the n smallest fingerprints.
// n <= 0 means unbounded.
func WithMaxFingerprints(n int) MinHashOption {
	return func(m *MinHash) {
		m.max = n
	}
}

// NewMinHash creates an empty MinHash sketch.
func NewMinHash(optFns ...MinHashOption) *MinHash {
	m := &MinHash{
		ksize: DefaultKSize,
		max:   DefaultMaxFingerprints,
		fps:   roaring64.New(),
	}

	for _, fn := range optFns {
		fn(m)
	}

	return m
}

// FromFingerprints creates a MinHash populated from precomputed fingerprint
// values.
func FromFingerprints(fps []uint64, optFns ...MinHashOption) *MinHash {
	m := NewMinHash(optFns...)
	m.AddMany(fps)
	return m
}

// KSize returns the recorded k-mer length.
func (m *MinHash) KSize() int { return m.ksize }

// MaxFingerprints returns the sketch bound, or 0 if unbounded.
func (m *MinHash) MaxFingerprints() int {
	if m.max <= 0 {
		return 0
	}
	return m.max
}

// Add inserts a fingerprint, evicting the current maximum when the sketch
// is full and the new value is smaller.
func (m *MinHash) Add(fp uint64) {
	if m.max > 0 && m.fps.GetCardinality() >= uint64(m.max) {
		if fp >= m.fps.Maximum() || m.fps.Contains(fp) {
			return
		}
		m.fps.Add(fp)
		m.fps.Remove(m.fps.Maximum())
		return
	}
	m.fps.Add(fp)
}

// AddMany inserts a batch of fingerprints.
func (m *MinHash) AddMany(fps []uint64) {
	for _, fp := range fps {
		m.Add(fp)
	}
}

// Len implements Sketch.
func (m *MinHash) Len() int {
	return int(m.fps.GetCardinality())
}

// Fingerprints implements Sketch. Roaring bitmaps iterate in ascending
// order, which doubles as the canonical accumulation order downstream.
func (m *MinHash) Fingerprints() []uint64 {
	return m.fps.ToArray()
}

// Similarity implements Sketch: the Jaccard similarity of the two
// fingerprint sets. Two empty sketches have similarity 0.
func (m *MinHash) Similarity(other Sketch) float64 {
	var ob *roaring64.Bitmap
	if om, ok := other.(*MinHash); ok {
		ob = om.fps
	} else {
		ob = roaring64.New()
		ob.AddMany(other.Fingerprints())
	}

	inter := roaring64.And(m.fps, ob).GetCardinality()
	union := m.fps.GetCardinality() + ob.GetCardinality() - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// SimilarityChecked is Similarity with a k-mer size compatibility check for
// MinHash counterparts.
func (m *MinHash) SimilarityChecked(other *MinHash) (float64, error) {
	if m.ksize != other.ksize {
		return 0, fmt.Errorf("%w: %d vs %d", ErrKSizeMismatch, m.ksize, other.ksize)
	}
	return m.Similarity(other), nil
}

// MarshalBinary encodes the sketch as a self-contained blob:
// [version u8][ksize u32][max u32][roaring bitmap].
func (m *MinHash) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(minhashFormatVersion)

	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[:4], uint32(m.ksize))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(m.max))
	buf.Write(hdr[:])

	if _, err := m.fps.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("sketch: marshal fingerprints: %w", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary.
func (m *MinHash) UnmarshalBinary(data []byte) error {
	if len(data) < 9 {
		return errors.New("sketch: truncated minhash blob")
	}
	if data[0] != minhashFormatVersion {
		return fmt.Errorf("sketch: unsupported minhash format version %d", data[0])
	}

	m.ksize = int(binary.LittleEndian.Uint32(data[1:5]))
	m.max = int(binary.LittleEndian.Uint32(data[5:9]))
	m.fps = roaring64.New()

	if _, err := m.fps.ReadFrom(bytes.NewReader(data[9:])); err != nil {
		return fmt.Errorf("sketch: unmarshal fingerprints: %w", err)
	}

	return nil
}
