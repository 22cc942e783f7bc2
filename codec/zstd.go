package codec

import (
	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder. EncodeAll/DecodeAll on a shared instance are safe
// for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
}

// Zstd encodes vectors as Raw bytes compressed with zstd. Good default for
// persistent stores: high-dimensional unit vectors are mostly zeros after
// feature hashing and compress well.
type Zstd struct{}

// Name implements Codec.
func (Zstd) Name() string { return "zstd" }

// Encode implements Codec.
func (Zstd) Encode(v []float64) ([]byte, error) {
	raw, err := Raw{}.Encode(v)
	if err != nil {
		return nil, err
	}
	return zstdEncoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// Decode implements Codec.
func (Zstd) Decode(data []byte) ([]float64, error) {
	raw, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}
	return Raw{}.Decode(raw)
}
