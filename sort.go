package geomlist

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// SortFunc sorts the sequence in place using compare, which must return
// a negative number when a < b, zero when a == b, and a positive number
// when a > b. The sort is not guaranteed to be stable.
func (s *Sequence[T]) SortFunc(compare func(T, T) int) {
	if compare == nil {
		panic(fmt.Errorf("%w: nil comparison function", ErrInvalidArgument))
	}
	slices.SortFunc(s.buf[:s.n], compare)
	s.gen++
}

// SortRangeFunc sorts the window [start, start+count) in place using
// compare.
func (s *Sequence[T]) SortRangeFunc(start, count int, compare func(T, T) int) {
	if compare == nil {
		panic(fmt.Errorf("%w: nil comparison function", ErrInvalidArgument))
	}
	s.checkWindow(start, count)
	slices.SortFunc(s.buf[start:start+count], compare)
	s.gen++
}

// Sort sorts the sequence in place under the natural ordering of T.
func Sort[T cmp.Ordered](s *Sequence[T]) {
	s.SortFunc(cmp.Compare)
}

// keyedSorter sorts elements and their parallel keys together, ordered by
// the keys.
type keyedSorter[T any, K cmp.Ordered] struct {
	elems []T
	keys  []K
}

func (ks *keyedSorter[T, K]) Len() int { return len(ks.elems) }

func (ks *keyedSorter[T, K]) Less(i, j int) bool { return ks.keys[i] < ks.keys[j] }

func (ks *keyedSorter[T, K]) Swap(i, j int) {
	ks.elems[i], ks.elems[j] = ks.elems[j], ks.elems[i]
	ks.keys[i], ks.keys[j] = ks.keys[j], ks.keys[i]
}

// SortByKeys sorts the sequence's elements by a parallel key slice of
// equal length: after the call, the element that had the smallest key
// comes first. The keys are sorted on a private copy; the caller's slice
// is left unmodified. A length mismatch panics with [ErrInvalidArgument].
// Sorting fewer than two elements is a no-op.
func SortByKeys[T comparable, K cmp.Ordered](s *Sequence[T], keys []K) {
	if len(keys) != s.n {
		panic(fmt.Errorf("%w: %d keys for %d elements", ErrInvalidArgument, len(keys), s.n))
	}
	if s.n < 2 {
		return
	}
	scratch := make([]K, len(keys))
	copy(scratch, keys)
	sort.Stable(&keyedSorter[T, K]{elems: s.buf[:s.n], keys: scratch})
	s.gen++
}

// Reverse reverses the sequence in place.
func (s *Sequence[T]) Reverse() {
	slices.Reverse(s.buf[:s.n])
	s.gen++
}

// ReverseRange reverses the window [start, start+count) in place.
func (s *Sequence[T]) ReverseRange(start, count int) {
	s.checkWindow(start, count)
	slices.Reverse(s.buf[start : start+count])
	s.gen++
}
