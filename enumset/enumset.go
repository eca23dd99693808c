// Package enumset provides a bitset-backed set of small integer values,
// typically enum constants with a bounded ordinal range.
package enumset

import "math/bits"

// Element constrains set members to integer-kind types, so any enum defined
// over an integer base type fits without conversion.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Set is a set of values in [0, limit). Membership is one bit per ordinal,
// so storage is limit/8 bytes regardless of how many values are held.
// The zero value is not usable; use New.
type Set[T Element] struct {
	words []uint64
	limit int
	size  int
}

// New allocates an empty set over the ordinal range [0, limit).
// It panics if limit is not positive.
func New[T Element](limit int) *Set[T] {
	if limit <= 0 {
		panic("enumset: limit must be positive")
	}

	return &Set[T]{words: make([]uint64, (limit+63)/64), limit: limit}
}

// Limit returns the exclusive upper bound of storable ordinals.
func (s *Set[T]) Limit() int { return s.limit }

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return s.size }

// Insert adds v to the set. Out-of-range values are ignored.
func (s *Set[T]) Insert(v T) {
	i := int(v)
	if i < 0 || i >= s.limit {
		return
	}
	w, m := i/64, uint64(1)<<(i%64)
	if s.words[w]&m == 0 {
		s.words[w] |= m
		s.size++
	}
}

// Erase removes v from the set. Out-of-range values are ignored.
func (s *Set[T]) Erase(v T) {
	i := int(v)
	if i < 0 || i >= s.limit {
		return
	}
	w, m := i/64, uint64(1)<<(i%64)
	if s.words[w]&m != 0 {
		s.words[w] &^= m
		s.size--
	}
}

// Contains reports whether v is in the set. Out-of-range values are never in.
func (s *Set[T]) Contains(v T) bool {
	i := int(v)
	if i < 0 || i >= s.limit {
		return false
	}

	return s.words[i/64]&(uint64(1)<<(i%64)) != 0
}

// Clear removes all values.
func (s *Set[T]) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
	s.size = 0
}

// ForEach calls fn for every value in the set in ascending ordinal order.
func (s *Set[T]) ForEach(fn func(T)) {
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(T(wi*64 + b))
			w &= w - 1
		}
	}
}

// Values returns the set's contents in ascending ordinal order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.size)
	s.ForEach(func(v T) { out = append(out, v) })

	return out
}
