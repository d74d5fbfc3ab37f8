package geomlist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// wantPanic asserts that fn panics with an error wrapping kind.
func wantPanic(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic wrapping %v, got none", kind)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", r)
		}
		if !errors.Is(err, kind) {
			t.Fatalf("got panic %v, want one wrapping %v", err, kind)
		}
	}()
	fn()
}
