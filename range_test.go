package geomlist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSlice(t *testing.T) {
	s := FromSlice([]int{1})
	s.AddSlice([]int{2, 3})
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())
	s.AddSlice(nil)
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestInsertSlice(t *testing.T) {
	s := FromSlice([]int{1, 4})
	s.InsertSlice(1, []int{2, 3})
	require.Equal(t, []int{1, 2, 3, 4}, s.ToSlice())
	s.InsertSlice(0, []int{0})
	require.Equal(t, []int{0, 1, 2, 3, 4}, s.ToSlice())
	s.InsertSlice(5, []int{5})
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.ToSlice())

	wantPanic(t, ErrOutOfRange, func() { s.InsertSlice(7, []int{9}) })
	wantPanic(t, ErrOutOfRange, func() { s.InsertSlice(-1, []int{9}) })
}

func TestAddSeq(t *testing.T) {
	s := FromSlice([]int{1})
	s.AddSeq(slices.Values([]int{2, 3}))
	require.Equal(t, []int{1, 2, 3}, s.ToSlice())
}

func TestInsertSequenceDistinct(t *testing.T) {
	s := FromSlice([]int{1, 4})
	src := FromSlice([]int{2, 3})
	s.InsertSequence(1, src)
	require.Equal(t, []int{1, 2, 3, 4}, s.ToSlice())
	// Source untouched.
	require.Equal(t, []int{2, 3}, src.ToSlice())

	wantPanic(t, ErrInvalidArgument, func() { s.InsertSequence(0, nil) })
}

// The inserted run must equal the sequence's pre-call contents, read from
// the pre-shift head and the shifted tail separately, never from the
// region the shift just overwrote.
func TestInsertSequenceSelf(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	s.InsertSequence(1, s)
	require.Equal(t, []int{1, 1, 2, 3, 2, 3}, s.ToSlice())
}

func TestInsertSequenceSelfConfigurations(t *testing.T) {
	tests := []struct {
		name  string
		init  []int
		index int
		want  []int
	}{
		{"at start", []int{1, 2, 3}, 0, []int{1, 2, 3, 1, 2, 3}},
		{"inside", []int{1, 2, 3}, 2, []int{1, 2, 1, 2, 3, 3}},
		{"at end", []int{1, 2, 3}, 3, []int{1, 2, 3, 1, 2, 3}},
		{"single", []int{7}, 0, []int{7, 7}},
		{"empty", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromSlice(tt.init)
			want := append(slices.Clone(tt.init[:tt.index]), append(slices.Clone(tt.init), tt.init[tt.index:]...)...)
			require.Equal(t, tt.want, want, "test table is self-consistent")
			s.InsertSequence(tt.index, s)
			require.Equal(t, len(tt.init)*2, s.Len())
			require.Equal(t, tt.want, normalize(s.ToSlice()))
		})
	}
}

// normalize maps an empty slice to nil so tables can use nil wants.
func normalize[T any](vs []T) []T {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

func TestAddSequenceSelf(t *testing.T) {
	s := FromSlice([]int{1, 2})
	s.AddSequence(s)
	require.Equal(t, []int{1, 2, 1, 2}, s.ToSlice())
}

func TestInsertSequenceSelfSpareCapacity(t *testing.T) {
	// Self-insertion when no reallocation happens: the shift and the
	// hole fill operate on the same buffer.
	s := NewSequenceWithCapacity[int](16)
	s.AddSlice([]int{1, 2, 3})
	s.InsertSequence(1, s)
	require.Equal(t, []int{1, 1, 2, 3, 2, 3}, s.ToSlice())
	require.Equal(t, 16, s.Cap())
}
