package geomlist

import (
	"cmp"
	"fmt"
)

// IndexOf returns the index of the first occurrence of v, or -1 if v is
// not present. For nilable element types a nil v matches exactly the nil
// elements.
func (s *Sequence[T]) IndexOf(v T) int {
	for i := 0; i < s.n; i++ {
		if s.buf[i] == v {
			return i
		}
	}
	return -1
}

// IndexOfRange returns the index of the first occurrence of v within the
// window [start, start+count), or -1 if v is not present there.
func (s *Sequence[T]) IndexOfRange(v T, start, count int) int {
	s.checkWindow(start, count)
	for i := start; i < start+count; i++ {
		if s.buf[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v, or -1 if v
// is not present.
func (s *Sequence[T]) LastIndexOf(v T) int {
	for i := s.n - 1; i >= 0; i-- {
		if s.buf[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexOfRange returns the index of the last occurrence of v within
// the window [start, start+count), or -1 if v is not present there.
func (s *Sequence[T]) LastIndexOfRange(v T, start, count int) int {
	s.checkWindow(start, count)
	for i := start + count - 1; i >= start; i-- {
		if s.buf[i] == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present, short-circuiting on the first
// match.
func (s *Sequence[T]) Contains(v T) bool {
	return s.IndexOf(v) >= 0
}

// Find returns the first element matching pred. The second return value
// reports whether a match was found.
func (s *Sequence[T]) Find(pred func(T) bool) (T, bool) {
	i := s.FindIndex(pred)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.buf[i], true
}

// FindLast returns the last element matching pred. The second return
// value reports whether a match was found.
func (s *Sequence[T]) FindLast(pred func(T) bool) (T, bool) {
	i := s.FindLastIndex(pred)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.buf[i], true
}

// FindIndex returns the index of the first element matching pred, or -1.
func (s *Sequence[T]) FindIndex(pred func(T) bool) int {
	return s.FindIndexRange(pred, 0, s.n)
}

// FindIndexRange returns the index of the first element matching pred
// within the window [start, start+count), or -1.
func (s *Sequence[T]) FindIndexRange(pred func(T) bool, start, count int) int {
	if pred == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}
	s.checkWindow(start, count)
	for i := start; i < start+count; i++ {
		if pred(s.buf[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndex returns the index of the last element matching pred, or
// -1.
func (s *Sequence[T]) FindLastIndex(pred func(T) bool) int {
	return s.FindLastIndexRange(pred, 0, s.n)
}

// FindLastIndexRange returns the index of the last element matching pred
// within the window [start, start+count), or -1.
func (s *Sequence[T]) FindLastIndexRange(pred func(T) bool, start, count int) int {
	if pred == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}
	s.checkWindow(start, count)
	for i := start + count - 1; i >= start; i-- {
		if pred(s.buf[i]) {
			return i
		}
	}
	return -1
}

// FindAll returns a new sequence holding every element matching pred, in
// order.
func (s *Sequence[T]) FindAll(pred func(T) bool) *Sequence[T] {
	if pred == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}
	out := NewSequence[T]()
	for i := 0; i < s.n; i++ {
		if pred(s.buf[i]) {
			out.Add(s.buf[i])
		}
	}
	return out
}

// Exists reports whether any element matches pred.
func (s *Sequence[T]) Exists(pred func(T) bool) bool {
	return s.FindIndex(pred) != -1
}

// TrueForAll reports whether every element matches pred. It is vacuously
// true on an empty sequence.
func (s *Sequence[T]) TrueForAll(pred func(T) bool) bool {
	if pred == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}
	for i := 0; i < s.n; i++ {
		if !pred(s.buf[i]) {
			return false
		}
	}
	return true
}

// BinarySearchFunc searches for v in a sequence sorted ascending under
// compare. If v is present it returns the index of a matching element;
// otherwise it returns the bitwise complement of the index where v would
// be inserted to keep the sequence sorted, which is always negative.
// Recover the insertion point from a negative result r with ^r.
func (s *Sequence[T]) BinarySearchFunc(v T, compare func(T, T) int) int {
	if compare == nil {
		panic(fmt.Errorf("%w: nil comparison function", ErrInvalidArgument))
	}
	lo, hi := 0, s.n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := compare(s.buf[mid], v)
		switch {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return ^lo
}

// BinarySearch searches for v in a sequence sorted ascending under the
// natural ordering of T, with the same result encoding as
// [Sequence.BinarySearchFunc].
func BinarySearch[T cmp.Ordered](s *Sequence[T], v T) int {
	return s.BinarySearchFunc(v, cmp.Compare)
}
