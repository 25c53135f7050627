// Package suffixset implements domain suffix sets and maps whose lookups
// walk a hostname's suffixes from least specific to most specific.
package suffixset

import "slices"

// Set holds canonical domain suffixes.
type Set map[string]struct{}

// NewSet creates a [Set] with the specified initial capacity.
func NewSet(capacity int) Set {
	return make(Set, capacity)
}

// SetFromSlice creates a [Set] from a slice of suffixes.
func SetFromSlice(suffixes []string) Set {
	s := make(Set, len(suffixes))
	for _, suffix := range suffixes {
		s.Insert(suffix)
	}
	return s
}

// Insert adds suffix to the set.
func (s Set) Insert(suffix string) {
	s[suffix] = struct{}{}
}

// Match returns whether any suffix of host is in the set.
// Suffixes are tested from least specific to most specific, the full host
// last, so the broadest registered suffix decides the match.
func (s Set) Match(host string) bool {
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] != '.' {
			continue
		}
		if _, ok := s[host[i+1:]]; ok {
			return true
		}
	}
	_, ok := s[host]
	return ok
}

// Suffixes returns the set's suffixes, sorted.
func (s Set) Suffixes() []string {
	suffixes := make([]string, 0, len(s))
	for suffix := range s {
		suffixes = append(suffixes, suffix)
	}
	slices.Sort(suffixes)
	return suffixes
}

// Map associates canonical domain suffixes with values of type V.
type Map[V any] map[string]V

// NewMap creates a [Map] with the specified initial capacity.
func NewMap[V any](capacity int) Map[V] {
	return make(Map[V], capacity)
}

// Lookup returns the value associated with the least specific suffix of
// host present in the map. Like [Set.Match], suffixes are tested from
// least specific to most specific, the full host last.
func (m Map[V]) Lookup(host string) (value V, ok bool) {
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] != '.' {
			continue
		}
		if value, ok = m[host[i+1:]]; ok {
			return
		}
	}
	value, ok = m[host]
	return
}

// Match returns whether any suffix of host is in the map.
func (m Map[V]) Match(host string) bool {
	_, ok := m.Lookup(host)
	return ok
}

// Keys returns the map's suffix keys, sorted.
func (m Map[V]) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
