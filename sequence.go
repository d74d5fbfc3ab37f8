package geomlist

import (
	"fmt"
	"iter"
	"reflect"
)

// defaultCapacity is the capacity allocated by the first growth of an
// empty sequence.
const defaultCapacity = 4

// Sequence is a growable contiguous array of T.
//
// The zero value is an empty sequence ready for use, though most callers
// will want [NewSequence] or one of the other constructors. Elements at
// positions [0, Len) are live; the remaining capacity holds zero values
// and is never aliased into results.
//
// All methods that take an index or a range window validate it before any
// mutation takes effect and panic with an error wrapping [ErrOutOfRange]
// or [ErrInvalidArgument] on violation.
type Sequence[T comparable] struct {
	buf []T // len(buf) is the capacity
	n   int // live elements in buf[:n]
	gen uint64
}

// NewSequence returns a new empty sequence.
func NewSequence[T comparable]() *Sequence[T] {
	return &Sequence[T]{}
}

// NewSequenceWithCapacity returns a new empty sequence with at least the
// given capacity preallocated.
func NewSequenceWithCapacity[T comparable](capacity int) *Sequence[T] {
	if capacity < 0 {
		panic(fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity))
	}
	return &Sequence[T]{buf: make([]T, capacity)}
}

// Repeat returns a new sequence holding count copies of v.
func Repeat[T comparable](v T, count int) *Sequence[T] {
	if count < 0 {
		panic(fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count))
	}
	s := &Sequence[T]{buf: make([]T, count), n: count}
	for i := range s.buf {
		s.buf[i] = v
	}
	return s
}

// FromSlice returns a new sequence holding a copy of vs.
func FromSlice[T comparable](vs []T) *Sequence[T] {
	s := &Sequence[T]{buf: make([]T, len(vs)), n: len(vs)}
	copy(s.buf, vs)
	return s
}

// Collect returns a new sequence holding the values produced by seq.
func Collect[T comparable](seq iter.Seq[T]) *Sequence[T] {
	s := &Sequence[T]{}
	for v := range seq {
		s.Add(v)
	}
	return s
}

// Clone returns a shallow copy of the sequence. The copy starts with a
// fresh mutation version and capacity equal to its length.
func (s *Sequence[T]) Clone() *Sequence[T] {
	return FromSlice(s.buf[:s.n])
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int { return s.n }

// Cap returns the current capacity.
func (s *Sequence[T]) Cap() int { return len(s.buf) }

// Grow ensures the capacity is at least min, doubling the current
// capacity (starting from 4) until it suffices. Growing never changes the
// live elements and is not a structural mutation.
func (s *Sequence[T]) Grow(min int) {
	if min <= len(s.buf) {
		return
	}
	newCap := len(s.buf)
	if newCap == 0 {
		newCap = defaultCapacity
	}
	for newCap < min {
		newCap *= 2
	}
	buf := make([]T, newCap)
	copy(buf, s.buf[:s.n])
	s.buf = buf
}

// SetCap sets the capacity exactly. A capacity below the current length
// panics with [ErrOutOfRange]; a capacity of zero releases the buffer
// entirely.
func (s *Sequence[T]) SetCap(capacity int) {
	switch {
	case capacity < s.n:
		panic(fmt.Errorf("%w: capacity %d below length %d", ErrOutOfRange, capacity, s.n))
	case capacity == 0:
		s.buf = nil
	case capacity != len(s.buf):
		buf := make([]T, capacity)
		copy(buf, s.buf[:s.n])
		s.buf = buf
	}
}

// Shrink reduces the capacity to the current length.
func (s *Sequence[T]) Shrink() { s.SetCap(s.n) }

func (s *Sequence[T]) checkIndex(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, s.n))
	}
}

// checkWindow validates a [start, start+count) window over the live
// elements.
func (s *Sequence[T]) checkWindow(start, count int) {
	if start < 0 || start > s.n {
		panic(fmt.Errorf("%w: start %d with length %d", ErrOutOfRange, start, s.n))
	}
	if count < 0 || start+count > s.n {
		panic(fmt.Errorf("%w: count %d at start %d with length %d", ErrOutOfRange, count, start, s.n))
	}
}

// At returns the element at index i.
func (s *Sequence[T]) At(i int) T {
	s.checkIndex(i)
	return s.buf[i]
}

// SetAt replaces the element at index i. Replacing an element changes
// element identity and therefore counts as a structural mutation; writing
// at i == Len is not allowed, use [Sequence.Add] or [Sequence.Insert].
func (s *Sequence[T]) SetAt(i int, v T) {
	s.checkIndex(i)
	s.buf[i] = v
	s.gen++
}

// First returns the first element, or the zero value and false if the
// sequence is empty.
func (s *Sequence[T]) First() (T, bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.buf[0], true
}

// Last returns the last element, or the zero value and false if the
// sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.buf[s.n-1], true
}

// Add appends v. Amortized O(1).
func (s *Sequence[T]) Add(v T) {
	s.Grow(s.n + 1)
	s.buf[s.n] = v
	s.n++
	s.gen++
}

// Insert inserts v at index i, shifting trailing elements right.
// i == Len appends.
func (s *Sequence[T]) Insert(i int, v T) {
	if i < 0 || i > s.n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, s.n))
	}
	s.Grow(s.n + 1)
	copy(s.buf[i+1:s.n+1], s.buf[i:s.n])
	s.buf[i] = v
	s.n++
	s.gen++
}

// RemoveAt removes the element at index i, shifting trailing elements
// left and clearing the vacated slot.
func (s *Sequence[T]) RemoveAt(i int) {
	s.checkIndex(i)
	s.RemoveRange(i, 1)
}

// RemoveRange removes count elements starting at index start.
func (s *Sequence[T]) RemoveRange(start, count int) {
	s.checkWindow(start, count)
	if count == 0 {
		return
	}
	copy(s.buf[start:], s.buf[start+count:s.n])
	var zero T
	for i := s.n - count; i < s.n; i++ {
		s.buf[i] = zero
	}
	s.n -= count
	s.gen++
}

// Remove removes the first occurrence of v, reporting whether one was
// found. Survivors keep their relative order.
func (s *Sequence[T]) Remove(v T) bool {
	i := s.IndexOf(v)
	if i < 0 {
		return false
	}
	s.RemoveRange(i, 1)
	return true
}

// RemoveAll removes every element matching pred and returns the number
// removed. Survivors keep their relative order.
func (s *Sequence[T]) RemoveAll(pred func(T) bool) int {
	if pred == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidArgument))
	}
	kept := 0
	for i := 0; i < s.n; i++ {
		if !pred(s.buf[i]) {
			s.buf[kept] = s.buf[i]
			kept++
		}
	}
	removed := s.n - kept
	if removed == 0 {
		return 0
	}
	var zero T
	for i := kept; i < s.n; i++ {
		s.buf[i] = zero
	}
	s.n = kept
	s.gen++
	return removed
}

// nilable reports whether T is a kind that can hold nil.
func nilable[T comparable]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// RemoveNils removes every nil element and returns the number removed.
// For element types that cannot hold nil this is a no-op returning 0.
func (s *Sequence[T]) RemoveNils() int {
	if !nilable[T]() {
		return 0
	}
	var zero T
	return s.RemoveAll(func(v T) bool { return v == zero })
}

// Clear removes all elements, keeping the capacity. All slots are
// cleared so stale elements cannot keep memory alive.
func (s *Sequence[T]) Clear() {
	var zero T
	for i := 0; i < s.n; i++ {
		s.buf[i] = zero
	}
	s.n = 0
	s.gen++
}

// ToSlice returns a new slice holding a copy of the live elements.
func (s *Sequence[T]) ToSlice() []T {
	out := make([]T, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// GetRange returns a new sequence holding a shallow copy of the window
// [start, start+count).
func (s *Sequence[T]) GetRange(start, count int) *Sequence[T] {
	s.checkWindow(start, count)
	return FromSlice(s.buf[start : start+count])
}

// CopyTo copies the live elements into dst and returns the number of
// elements copied.
func (s *Sequence[T]) CopyTo(dst []T) int {
	return copy(dst, s.buf[:s.n])
}

// Convert maps every element of s through fn into a new sequence,
// preserving order and count.
func Convert[T, U comparable](s *Sequence[T], fn func(T) U) *Sequence[U] {
	if fn == nil {
		panic(fmt.Errorf("%w: nil conversion function", ErrInvalidArgument))
	}
	out := &Sequence[U]{buf: make([]U, s.n), n: s.n}
	for i := 0; i < s.n; i++ {
		out.buf[i] = fn(s.buf[i])
	}
	return out
}
