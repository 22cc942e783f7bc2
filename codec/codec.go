// Package codec centralizes the byte encoding of cached vector blobs.
//
// Codec selection is a persistence-compatibility boundary: stores record the
// codec name alongside each blob so older entries stay decodable after the
// default changes.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated indicates a blob too short for its declared contents.
var ErrTruncated = errors.New("codec: truncated blob")

// Codec encodes/decodes float64 vectors.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(v []float64) ([]byte, error)
	Decode(data []byte) ([]float64, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
//
// Persistent stores record the codec name with each blob and use ByName when
// reading entries back.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// Raw encodes vectors as little-endian IEEE-754 float64 values with no
// compression.
type Raw struct{}

// Name implements Codec.
func (Raw) Name() string { return "raw" }

// Encode implements Codec.
func (Raw) Encode(v []float64) ([]byte, error) {
	out := make([]byte, 8*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(f))
	}
	return out, nil
}

// Decode implements Codec.
func (Raw) Decode(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of float64s", ErrTruncated, len(data))
	}

	out := make([]float64, len(data)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
	}
	return out, nil
}
