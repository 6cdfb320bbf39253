package graph

// Set is a hash set of comparable keys, used for the neighbor sets in the
// adjacency structure. The zero value is not usable - create sets with make.
type Set[T comparable] map[T]struct{}

// Add inserts v into the set. Adding an existing element is a no-op.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Remove deletes v from the set if present.
func (s Set[T]) Remove(v T) { delete(s, v) }

// Has reports whether v is in the set. Safe to call on a nil set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int { return len(s) }

// Values returns the elements as a slice in unspecified order.
// Returns an empty slice for a nil or empty set.
func (s Set[T]) Values() []T {
	vals := make([]T, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	return vals
}
