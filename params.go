package genovec

// Method selects a vectorization strategy.
type Method string

const (
	// MethodFeatureHashing maps a sketch's fingerprint set into a
	// fixed-length unit vector via CountSketch-style feature hashing.
	MethodFeatureHashing Method = "feature-hashing"

	// MethodLandmark scores a sketch against an ordered set of reference
	// genomes; each coordinate is a similarity to one landmark.
	MethodLandmark Method = "landmark"
)

// Defaults for Params.
const (
	DefaultDim        = 4096
	DefaultNumHashFns = 3
	DefaultSeed       = 42
)

// Params are the vectorization parameters for one Vectorize call. They are
// immutable once the call begins; the With* methods return updated copies,
// so a Params value can be shared and specialized safely.
type Params struct {
	// Method selects the vectorizer.
	Method Method

	// Dim is the feature-hashing output length. Ignored for landmark mode,
	// where the landmark set length determines the output length.
	Dim int

	// NumHashFns is the number of bucket placements per fingerprint.
	NumHashFns int

	// Seed derives the random projection matrix.
	Seed int64

	// ProjectionDim, when positive, reduces the whole batch to this
	// dimensionality after vectorization.
	ProjectionDim int

	// LandmarkGroup names the landmark set for landmark mode.
	LandmarkGroup string
}

// FeatureHashing returns Params for feature-hashing vectorization at the
// given dimension, with defaults for everything else.
//
// Example:
//
//	params := genovec.FeatureHashing(4096).WithNumHashFns(3).WithProjection(256)
func FeatureHashing(dim int) Params {
	return Params{
		Method:     MethodFeatureHashing,
		Dim:        dim,
		NumHashFns: DefaultNumHashFns,
		Seed:       DefaultSeed,
	}
}

// DefaultParams returns feature-hashing Params at the default dimension.
func DefaultParams() Params {
	return FeatureHashing(DefaultDim)
}

// Landmark returns Params for landmark-similarity vectorization against the
// named group.
func Landmark(group string) Params {
	return Params{
		Method:        MethodLandmark,
		Seed:          DefaultSeed,
		LandmarkGroup: group,
	}
}

// WithNumHashFns returns a copy with the given hash function count.
func (p Params) WithNumHashFns(n int) Params {
	p.NumHashFns = n
	return p
}

// WithSeed returns a copy with the given projection seed.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = seed
	return p
}

// WithProjection returns a copy with random projection to dim enabled.
func (p Params) WithProjection(dim int) Params {
	p.ProjectionDim = dim
	return p
}
