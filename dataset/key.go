package dataset

import (
	"slices"
	"strings"
)

// KeyFromPath returns the domain key encoded by the slash-separated relative
// path of an institution file: the ".txt" extension is stripped and the path
// segments, which run from the TLD down, are reversed and joined with dots.
// "edu/stanford.txt" encodes "stanford.edu". The result still needs ASCII
// normalization before use as a canonical key.
func KeyFromPath(relPath string) string {
	segments := strings.Split(strings.TrimSuffix(relPath, ".txt"), "/")
	slices.Reverse(segments)
	return strings.Join(segments, ".")
}

// PathFromKey is the inverse of [KeyFromPath]: it returns the slash-separated
// relative path that encodes the given domain key, so
// KeyFromPath(PathFromKey(key)) == key for any canonical key.
func PathFromKey(key string) string {
	labels := strings.Split(key, ".")
	slices.Reverse(labels)
	return strings.Join(labels, "/") + ".txt"
}
