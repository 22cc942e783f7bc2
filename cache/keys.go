package cache

import "fmt"

// FeatureHashingKey derives the cache key for a feature-hashing vector:
// sketch identity plus every parameter the output depends on.
func FeatureHashingKey(sketchDigest []byte, dim, numHashFns int) Key {
	return Key(fmt.Sprintf("fh:%x:d%d:n%d", sketchDigest, dim, numHashFns))
}

// LandmarkKey derives the cache key for a landmark-similarity vector:
// sketch identity plus the landmark set identity token.
func LandmarkKey(sketchDigest []byte, landmarkToken string) Key {
	return Key(fmt.Sprintf("lm:%x:%s", sketchDigest, landmarkToken))
}
