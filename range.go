package geomlist

import (
	"fmt"
	"iter"
)

// AddSlice appends a copy of vs.
func (s *Sequence[T]) AddSlice(vs []T) {
	s.InsertSlice(s.n, vs)
}

// InsertSlice inserts a copy of vs at index i, shifting trailing elements
// right. vs must not alias the sequence's own storage; to insert a
// sequence into itself, use [Sequence.InsertSequence].
func (s *Sequence[T]) InsertSlice(i int, vs []T) {
	if i < 0 || i > s.n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, s.n))
	}
	if len(vs) == 0 {
		return
	}
	k := len(vs)
	s.Grow(s.n + k)
	copy(s.buf[i+k:s.n+k], s.buf[i:s.n])
	copy(s.buf[i:i+k], vs)
	s.n += k
	s.gen++
}

// AddSeq appends the values produced by seq.
func (s *Sequence[T]) AddSeq(seq iter.Seq[T]) {
	for v := range seq {
		s.Add(v)
	}
}

// AddSequence appends a copy of src's live elements. src may be the
// receiver itself.
func (s *Sequence[T]) AddSequence(src *Sequence[T]) {
	s.InsertSequence(s.n, src)
}

// InsertSequence inserts a copy of src's live elements at index i,
// shifting trailing elements right.
//
// src may be the receiver itself. In that case the inserted run equals
// the sequence's contents as they were before the call: the tail is
// shifted out of the way first, then the hole is filled from the
// pre-shift head and the post-shift tail separately, so the copied values
// are never read from the region that was just overwritten.
func (s *Sequence[T]) InsertSequence(i int, src *Sequence[T]) {
	if src == nil {
		panic(fmt.Errorf("%w: nil source sequence", ErrInvalidArgument))
	}
	if i < 0 || i > s.n {
		panic(fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, i, s.n))
	}
	if src != s {
		s.InsertSlice(i, src.buf[:src.n])
		return
	}
	k := s.n
	if k == 0 {
		return
	}
	s.Grow(s.n + k)
	// Shift the tail right. copy has memmove semantics, so the
	// overlapping move is safe.
	copy(s.buf[i+k:s.n+k], s.buf[i:s.n])
	// Fill the hole [i, i+k) with the pre-call elements: positions
	// [0, i) are still in place, positions [i, k) now live k slots to
	// the right.
	h := min(k, i)
	copy(s.buf[i:i+h], s.buf[:h])
	copy(s.buf[i+h:i+k], s.buf[k+h:k+k])
	s.n += k
	s.gen++
}
