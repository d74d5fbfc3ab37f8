package geomlist

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 2})
	require.Equal(t, 1, s.IndexOf(2))
	require.Equal(t, 3, s.LastIndexOf(2))
	require.Equal(t, -1, s.IndexOf(9))
	require.Equal(t, -1, s.LastIndexOf(9))
}

func TestIndexOfNilMatchesNil(t *testing.T) {
	a := 1
	s := FromSlice([]*int{&a, nil})
	require.Equal(t, 1, s.IndexOf(nil))
	require.True(t, s.Contains(nil))
}

func TestIndexOfRange(t *testing.T) {
	s := FromSlice([]int{2, 1, 2, 1, 2})

	require.Equal(t, 2, s.IndexOfRange(2, 1, 3))
	require.Equal(t, -1, s.IndexOfRange(2, 1, 1))
	require.Equal(t, 2, s.LastIndexOfRange(2, 0, 4))
	require.Equal(t, -1, s.LastIndexOfRange(9, 0, 5))

	// Degenerate but valid windows.
	require.Equal(t, -1, s.IndexOfRange(2, 5, 0))
	require.Equal(t, -1, s.IndexOfRange(2, 0, 0))

	// Out-of-range windows fail, they don't clamp.
	wantPanic(t, ErrOutOfRange, func() { s.IndexOfRange(2, 3, 3) })
	wantPanic(t, ErrOutOfRange, func() { s.IndexOfRange(2, -1, 2) })
	wantPanic(t, ErrOutOfRange, func() { s.IndexOfRange(2, 6, 0) })
	wantPanic(t, ErrOutOfRange, func() { s.LastIndexOfRange(2, 0, 6) })
	wantPanic(t, ErrOutOfRange, func() { s.IndexOfRange(2, 0, -1) })
}

func TestContains(t *testing.T) {
	s := FromSlice([]string{"a", "b"})
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("c"))
	require.False(t, NewSequence[string]().Contains("a"))
}

func TestFind(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	even := func(v int) bool { return v%2 == 0 }

	v, ok := s.Find(even)
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = s.FindLast(even)
	require.True(t, ok)
	require.Equal(t, 4, v)

	v, ok = s.Find(func(v int) bool { return v > 9 })
	require.False(t, ok)
	require.Equal(t, 0, v)
}

func TestFindIndex(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	even := func(v int) bool { return v%2 == 0 }

	require.Equal(t, 1, s.FindIndex(even))
	require.Equal(t, 3, s.FindLastIndex(even))
	require.Equal(t, -1, s.FindIndex(func(v int) bool { return v > 9 }))

	require.Equal(t, 3, s.FindIndexRange(even, 2, 2))
	require.Equal(t, 1, s.FindLastIndexRange(even, 0, 3))

	wantPanic(t, ErrOutOfRange, func() { s.FindIndexRange(even, 2, 3) })
	wantPanic(t, ErrInvalidArgument, func() { s.FindIndex(nil) })
}

func TestFindAll(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})
	out := s.FindAll(func(v int) bool { return v%2 == 1 })
	require.Equal(t, []int{1, 3, 5}, out.ToSlice())
	require.Equal(t, 0, s.FindAll(func(int) bool { return false }).Len())
}

func TestExists(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	require.True(t, s.Exists(func(v int) bool { return v == 2 }))
	require.False(t, s.Exists(func(v int) bool { return v == 9 }))
}

func TestTrueForAll(t *testing.T) {
	s := FromSlice([]int{2, 4, 6})
	require.True(t, s.TrueForAll(func(v int) bool { return v%2 == 0 }))
	require.False(t, s.TrueForAll(func(v int) bool { return v < 6 }))
	// Vacuously true on an empty sequence.
	require.True(t, NewSequence[int]().TrueForAll(func(int) bool { return false }))
}

func TestBinarySearchFound(t *testing.T) {
	s := FromSlice([]int{10, 20, 30, 40})
	for i := 0; i < s.Len(); i++ {
		got := BinarySearch(s, s.At(i))
		require.GreaterOrEqual(t, got, 0)
		require.Equal(t, s.At(i), s.At(got))
	}
}

func TestBinarySearchNotFound(t *testing.T) {
	s := FromSlice([]int{10, 20, 30, 40})
	tests := []struct {
		item      int
		insertion int
	}{
		{5, 0},
		{15, 1},
		{25, 2},
		{35, 3},
		{45, 4},
	}
	for _, tt := range tests {
		got := BinarySearch(s, tt.item)
		require.Negative(t, got, "item %d", tt.item)
		// The exact encoding is the bitwise complement of the
		// insertion point: -(insertion+1).
		require.Equal(t, ^tt.insertion, got, "item %d", tt.item)
		require.Equal(t, tt.insertion, ^got, "item %d", tt.item)
	}
}

func TestBinarySearchInsertionPreservesOrder(t *testing.T) {
	s := FromSlice([]int{10, 20, 30, 40})
	for _, item := range []int{5, 15, 25, 35, 45} {
		at := ^BinarySearch(s, item)
		probe := s.Clone()
		probe.Insert(at, item)
		prev := probe.At(0)
		for i := 1; i < probe.Len(); i++ {
			require.LessOrEqual(t, prev, probe.At(i))
			prev = probe.At(i)
		}
	}
}

func TestBinarySearchFunc(t *testing.T) {
	s := FromSlice([]string{"ccc", "bb", "a"})
	byLenDesc := func(a, b string) int { return cmp.Compare(len(b), len(a)) }
	require.Equal(t, 1, s.BinarySearchFunc("bb", byLenDesc))
	require.Equal(t, ^3, s.BinarySearchFunc("", byLenDesc))

	wantPanic(t, ErrInvalidArgument, func() { s.BinarySearchFunc("x", nil) })
}

func TestBinarySearchEmpty(t *testing.T) {
	require.Equal(t, ^0, BinarySearch(NewSequence[int](), 5))
}
