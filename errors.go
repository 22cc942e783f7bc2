package genovec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/genovec/countsketch"
	"github.com/hupe1980/genovec/landmark"
	"github.com/hupe1980/genovec/projection"
)

// ErrNoLandmarkProvider is returned when landmark vectorization is requested
// but no provider was configured.
var ErrNoLandmarkProvider = errors.New("no landmark provider configured")

// ErrInvalidParameter indicates a vectorization parameter that fails
// validation (non-positive dimension, non-positive hash function count,
// empty landmark set). It is raised before any sketch is resolved.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidParameter struct {
	Param string
	Value int
	cause error
}

func (e *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("invalid parameter %s: %d", e.Param, e.Value)
}

func (e *ErrInvalidParameter) Unwrap() error { return e.cause }

// ErrUnsupportedMethod indicates an unrecognized vectorization method.
// It is raised before any sketch is resolved.
type ErrUnsupportedMethod struct {
	Method Method
}

func (e *ErrUnsupportedMethod) Error() string {
	return fmt.Sprintf("unsupported vectorization method: %q", string(e.Method))
}

// ErrResolution indicates that a query identifier could not be resolved to
// a sketch. The pipeline does not retry; the whole batch is aborted.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrResolution struct {
	Query string
	cause error
}

func (e *ErrResolution) Error() string {
	return fmt.Sprintf("resolving sketch for %q: %v", e.Query, e.cause)
}

func (e *ErrResolution) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Parameter normalization.
	var id *countsketch.ErrInvalidDimension
	if errors.As(err, &id) {
		return &ErrInvalidParameter{Param: "dim", Value: id.Dimension, cause: err}
	}
	var in *countsketch.ErrInvalidNumHashFns
	if errors.As(err, &in) {
		return &ErrInvalidParameter{Param: "num_hash_fns", Value: in.NumHashFns, cause: err}
	}
	var ip *projection.ErrInvalidProjectionDim
	if errors.As(err, &ip) {
		return &ErrInvalidParameter{Param: "projection_dim", Value: ip.ProjectionDim, cause: err}
	}
	if errors.Is(err, landmark.ErrEmptySet) {
		return &ErrInvalidParameter{Param: "landmarks", Value: 0, cause: err}
	}

	return err
}
