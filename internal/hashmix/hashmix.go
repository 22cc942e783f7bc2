// Package hashmix provides the deterministic hash mixing primitives used by
// the feature-hashing vectorizer: a 64-bit avalanche mixer plus bucket index
// and sign derivation.
//
// All functions are pure and produce identical results across platforms and
// processes. The sign derivation deliberately uses SHA-1 instead of the fast
// mixer so that sign and index assignments for the same input stay
// decorrelated.
package hashmix

import (
	"crypto/sha1" //nolint:gosec // not used for security, only as a stable unbiased bit source
	"encoding/binary"
)

// Multiplicative constants of the murmur-style fmix64 finalizer.
const (
	mixMul1 = 0xff51afd7ed558ccd
	mixMul2 = 0xc4ceb9fe1a85ec53

	// saltMul spreads the per-hash-function salt across all 64 bits
	// before it is XORed into the bucket index derivation.
	saltMul = 0x9E3779B97F4A7C15
)

// Mix avalanches a 64-bit integer into another well-distributed 64-bit
// integer. Mix(0) == 0.
func Mix(x uint64) uint64 {
	x ^= x >> 33
	x *= mixMul1
	x ^= x >> 33
	x *= mixMul2
	x ^= x >> 33

	return x
}

// BucketIndex derives a deterministic bucket index in [0, dim) from a mixed
// hash h and a small salt (0..numHashFns-1).
//
// dim must be positive; the caller validates it.
func BucketIndex(h uint64, dim int, salt int) int {
	y := h ^ (uint64(salt+1) * saltMul)
	return int(y % uint64(dim))
}

// BucketSign derives a deterministic sign (+1 or -1) from a mixed hash h and
// a small salt. The sign is the least-significant bit of
// SHA1(LE64(h) || LE32(salt)).
func BucketSign(h uint64, salt int) int {
	var b [12]byte
	binary.LittleEndian.PutUint64(b[:8], h)
	binary.LittleEndian.PutUint32(b[8:], uint32(salt))

	sum := sha1.Sum(b[:]) //nolint:gosec

	if sum[sha1.Size-1]&1 == 1 {
		return 1
	}
	return -1
}
