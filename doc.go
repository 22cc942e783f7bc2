// Package genovec turns genome k-mer sketches into deterministic,
// fixed-length vector embeddings suitable for approximate nearest neighbor
// indexes.
//
// Two vectorization methods are provided. Feature hashing folds a sketch's
// fingerprint set into a unit vector with a CountSketch-style scheme, so
// cosine similarity between vectors approximates sketch similarity. Landmark
// vectorization scores a sketch against an ordered reference set, producing
// small, interpretable vectors where coordinate k means "similarity to
// landmark k". Both methods are pure functions of their inputs: the same
// sketch and parameters give the same bytes on every machine.
//
// The Pipeline type drives batches end to end: resolve each query to a
// sketch, vectorize (consulting a cache keyed by sketch identity plus
// parameters), and optionally reduce the whole batch with a seeded Gaussian
// random projection.
//
//	p := genovec.New(resolver,
//		genovec.WithCache(mem),
//		genovec.WithLogger(genovec.NewTextLogger(slog.LevelInfo)),
//	)
//
//	vectors, err := p.Vectorize(ctx, []string{"s__Escherichia coli"},
//		genovec.FeatureHashing(4096).WithProjection(256))
package genovec
