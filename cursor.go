package geomlist

import (
	"fmt"
	"iter"
)

// Cursor is a stateful iteration handle over a [Sequence]. It records the
// sequence's mutation version when created; any structural mutation of
// the owner invalidates the cursor, and the next call to
// [Cursor.Next] reports a failure through [Cursor.Err] instead of
// returning stale or skipped elements.
//
// The usage pattern follows [bufio.Scanner]:
//
//	c := s.Cursor()
//	for c.Next() {
//		use(c.Value())
//	}
//	if err := c.Err(); err != nil {
//		...
//	}
type Cursor[T comparable] struct {
	s   *Sequence[T]
	gen uint64
	pos int
	cur T
	err error
}

// Cursor returns a new cursor positioned before the first element.
func (s *Sequence[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{s: s, gen: s.gen, pos: -1}
}

// Next advances the cursor and reports whether an element is available.
// It returns false at the end of the sequence and after a failure; the
// two cases are distinguished by [Cursor.Err].
func (c *Cursor[T]) Next() bool {
	if c.err != nil {
		return false
	}
	if c.gen != c.s.gen {
		c.err = fmt.Errorf("%w: version changed during iteration", ErrStaleCursor)
		return false
	}
	if c.pos+1 >= c.s.n {
		c.pos = c.s.n
		return false
	}
	c.pos++
	c.cur = c.s.buf[c.pos]
	return true
}

// Value returns the element the cursor is positioned on. It is only
// valid after a call to Next that returned true.
func (c *Cursor[T]) Value() T { return c.cur }

// Index returns the position of the current element.
func (c *Cursor[T]) Index() int { return c.pos }

// Err returns the first error encountered while advancing, if any.
func (c *Cursor[T]) Err() error { return c.err }

// Values returns an iterator over the elements of the sequence. The
// iterator captures the mutation version when the loop starts; a
// structural mutation of the sequence mid-loop makes the next advance
// panic with [ErrStaleCursor].
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := s.gen
		for i := 0; i < s.n; i++ {
			if s.gen != gen {
				panic(fmt.Errorf("%w: version changed during iteration", ErrStaleCursor))
			}
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// All returns an iterator over index-element pairs, with the same
// staleness detection as [Sequence.Values].
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := s.gen
		for i := 0; i < s.n; i++ {
			if s.gen != gen {
				panic(fmt.Errorf("%w: version changed during iteration", ErrStaleCursor))
			}
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs walking from the
// last element to the first, with the same staleness detection as
// [Sequence.Values].
func (s *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		gen := s.gen
		for i := s.n - 1; i >= 0; i-- {
			if s.gen != gen {
				panic(fmt.Errorf("%w: version changed during iteration", ErrStaleCursor))
			}
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}
