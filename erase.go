package geomlist

import (
	"fmt"
	"iter"
	"reflect"
)

// List is the type-erased view of a [Sequence], for callers that need to
// handle sequences of unknown element type uniformly. Read operations
// mirror the generic ones; insertion performs a runtime type check and
// returns an error wrapping [ErrTypeMismatch] on a wrong-kind value
// instead of corrupting the buffer.
type List interface {
	Len() int
	At(i int) any
	SetAt(i int, v any) error
	Add(v any) error
	Insert(i int, v any) error
	CopyTo(dst []any) int
	Values() iter.Seq[any]
}

// Erase returns a type-erased view of s. The view shares storage with s:
// mutations through either are visible to both.
func Erase[T comparable](s *Sequence[T]) List {
	if s == nil {
		panic(fmt.Errorf("%w: nil sequence", ErrInvalidArgument))
	}
	return eraser[T]{s}
}

type eraser[T comparable] struct {
	s *Sequence[T]
}

func (e eraser[T]) Len() int { return e.s.Len() }

func (e eraser[T]) At(i int) any { return e.s.At(i) }

// check asserts that v has the view's element type.
func check[T comparable](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		return t, fmt.Errorf("%w: have %T, want %v", ErrTypeMismatch, v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return t, nil
}

func (e eraser[T]) SetAt(i int, v any) error {
	t, err := check[T](v)
	if err != nil {
		return err
	}
	e.s.SetAt(i, t)
	return nil
}

func (e eraser[T]) Add(v any) error {
	t, err := check[T](v)
	if err != nil {
		return err
	}
	e.s.Add(t)
	return nil
}

func (e eraser[T]) Insert(i int, v any) error {
	t, err := check[T](v)
	if err != nil {
		return err
	}
	e.s.Insert(i, t)
	return nil
}

func (e eraser[T]) CopyTo(dst []any) int {
	n := min(len(dst), e.s.Len())
	for i := 0; i < n; i++ {
		dst[i] = e.s.buf[i]
	}
	return n
}

func (e eraser[T]) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range e.s.Values() {
			if !yield(v) {
				return
			}
		}
	}
}
