package geomlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEraseReads(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	l := Erase(s)

	require.Equal(t, 3, l.Len())
	require.Equal(t, 2, l.At(1))

	var got []any
	for v := range l.Values() {
		got = append(got, v)
	}
	require.Equal(t, []any{1, 2, 3}, got)

	dst := make([]any, 2)
	require.Equal(t, 2, l.CopyTo(dst))
	require.Equal(t, []any{1, 2}, dst)
}

func TestEraseWrites(t *testing.T) {
	s := FromSlice([]int{1, 2})
	l := Erase(s)

	require.NoError(t, l.Add(3))
	require.NoError(t, l.Insert(0, 0))
	require.NoError(t, l.SetAt(1, 11))

	// The view shares storage with the sequence.
	require.Equal(t, []int{0, 11, 2, 3}, s.ToSlice())
}

func TestEraseTypeMismatch(t *testing.T) {
	s := FromSlice([]int{1})
	l := Erase(s)

	require.ErrorIs(t, l.Add("not an int"), ErrTypeMismatch)
	require.ErrorIs(t, l.Insert(0, 1.5), ErrTypeMismatch)
	require.ErrorIs(t, l.SetAt(0, nil), ErrTypeMismatch)

	// A failed insertion must not have touched the buffer.
	require.Equal(t, []int{1}, s.ToSlice())
}

func TestEraseIndexViolation(t *testing.T) {
	l := Erase(FromSlice([]int{1}))
	wantPanic(t, ErrOutOfRange, func() { l.At(1) })
	wantPanic(t, ErrOutOfRange, func() { _ = l.SetAt(5, 2) })
}

func TestEraseNil(t *testing.T) {
	wantPanic(t, ErrInvalidArgument, func() { Erase[int](nil) })
}

func TestErasePointList(t *testing.T) {
	// The erased view composes with the specialized lists through their
	// embedded sequence.
	pl := PointListFromSlice([]Point{Pt(1, 2, 3)})
	l := Erase(&pl.Sequence)

	require.NoError(t, l.Add(Pt(4, 5, 6)))
	require.ErrorIs(t, l.Add(42), ErrTypeMismatch)
	require.Equal(t, 2, pl.Len())
	require.Equal(t, Pt(4, 5, 6), pl.At(1))
}
