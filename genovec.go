package genovec

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/countsketch"
	"github.com/hupe1980/genovec/landmark"
	"github.com/hupe1980/genovec/projection"
	"github.com/hupe1980/genovec/sketch"
)

// Pipeline turns query identifiers into deterministic vector embeddings. It
// ties together sketch resolution, per-query vectorization, caching, and
// optional batch-level random projection.
//
// A Pipeline is safe for concurrent use.
type Pipeline struct {
	resolver    sketch.Resolver
	landmarks   landmark.Provider
	cache       cache.Cache
	logger      *Logger
	metrics     MetricsCollector
	concurrency int
}

// New creates a Pipeline around the given sketch resolver.
func New(resolver sketch.Resolver, optFns ...Option) *Pipeline {
	opts := Options{
		Logger:      NoopLogger(),
		Metrics:     NoopMetricsCollector{},
		Cache:       cache.Passthrough{},
		Concurrency: runtime.GOMAXPROCS(0),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Pipeline{
		resolver:    resolver,
		landmarks:   opts.Landmarks,
		cache:       opts.Cache,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		concurrency: opts.Concurrency,
	}
}

// CacheStats reports the effectiveness counters of the configured cache.
func (p *Pipeline) CacheStats() cache.Stats { return p.cache.Stats() }

// Vectorize embeds every query under the given parameters. The result has one
// vector per query, in query order. Equal inputs produce bit-identical
// outputs across calls, processes, and machines.
//
// Parameters are validated up front: an invalid dimension, hash function
// count, projection dimension, or method fails the call before any query is
// resolved. Any resolution failure aborts the whole batch.
func (p *Pipeline) Vectorize(ctx context.Context, queries []string, params Params) ([][]float64, error) {
	start := time.Now()

	out, err := p.vectorize(ctx, queries, params)

	p.metrics.RecordBatch(len(queries), time.Since(start), err)
	p.logger.LogVectorize(ctx, params.Method, len(queries), err)

	return out, err
}

func (p *Pipeline) vectorize(ctx context.Context, queries []string, params Params) ([][]float64, error) {
	if params.ProjectionDim < 0 {
		return nil, translateError(&projection.ErrInvalidProjectionDim{ProjectionDim: params.ProjectionDim})
	}

	embed, err := p.embedder(ctx, params)
	if err != nil {
		return nil, translateError(err)
	}

	vectors := make([][]float64, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, query := range queries {
		g.Go(func() error {
			qstart := time.Now()

			v, err := p.vectorizeOne(gctx, query, embed)

			p.metrics.RecordQuery(params.Method, time.Since(qstart), err)

			if err != nil {
				return err
			}
			vectors[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, translateError(err)
	}

	if params.ProjectionDim > 0 {
		pstart := time.Now()

		projected, err := projection.Project(vectors, params.ProjectionDim, params.Seed)
		if err != nil {
			return nil, translateError(err)
		}

		p.metrics.RecordProjection(params.ProjectionDim, time.Since(pstart))
		if len(vectors) > 0 {
			p.logger.LogProjection(ctx, len(vectors[0]), params.ProjectionDim, len(vectors))
		}

		vectors = projected
	}

	return vectors, nil
}

// embedFunc derives the cache key and the deferred embedding computation for
// one resolved sketch. The producer runs only on a cache miss.
type embedFunc func(ctx context.Context, query string, s sketch.Sketch) (cache.Key, cache.Producer)

// embedder binds the per-query embedding for params, validating every
// parameter before any resolution work starts. For the landmark method the
// set is fetched once here; every query in the batch scores against the same
// set, and the set token feeds the cache key.
func (p *Pipeline) embedder(ctx context.Context, params Params) (embedFunc, error) {
	switch params.Method {
	case MethodFeatureHashing:
		vec, err := countsketch.New(params.Dim, params.NumHashFns)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, query string, s sketch.Sketch) (cache.Key, cache.Producer) {
			key := cache.FeatureHashingKey(sketch.Digest(s), params.Dim, params.NumHashFns)
			return key, func(context.Context) ([]float64, error) {
				if s.Len() == 0 {
					p.logger.LogEmptySketch(ctx, query)
				}
				return vec.Vectorize(s), nil
			}
		}, nil

	case MethodLandmark:
		if p.landmarks == nil {
			return nil, ErrNoLandmarkProvider
		}

		set, err := p.landmarks.Landmarks(ctx, params.LandmarkGroup)
		if err != nil {
			return nil, err
		}
		if set == nil || set.Len() == 0 {
			return nil, landmark.ErrEmptySet
		}

		return func(ctx context.Context, query string, s sketch.Sketch) (cache.Key, cache.Producer) {
			key := cache.LandmarkKey(sketch.Digest(s), set.Token())
			return key, func(context.Context) ([]float64, error) {
				if s.Len() == 0 {
					p.logger.LogEmptySketch(ctx, query)
				}
				return landmark.Vectorize(s, set)
			}
		}, nil

	default:
		return nil, &ErrUnsupportedMethod{Method: params.Method}
	}
}

func (p *Pipeline) vectorizeOne(ctx context.Context, query string, embed embedFunc) ([]float64, error) {
	s, err := p.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, &ErrResolution{Query: query, cause: err}
	}

	key, produce := embed(ctx, query, s)

	return p.cache.GetOrCompute(ctx, key, produce)
}
