package testutil

import (
	"errors"
	"fmt"
	"testing"
)

type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failed = true
}

func TestAssertions(t *testing.T) {
	errBase := errors.New("base")
	wrapped := fmt.Errorf("context: %w", errBase)

	tests := []struct {
		name   string
		run    func(tb testing.TB)
		failed bool
	}{
		{"equal slices", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{1, 2}) }, false},
		{"different slices", func(tb testing.TB) { AssertEqual(tb, []int{1, 2}, []int{2, 1}) }, true},
		{"no error", func(tb testing.TB) { AssertNoError(tb, nil) }, false},
		{"unexpected error", func(tb testing.TB) { AssertNoError(tb, errBase, "step %d", 1) }, true},
		{"wrapped error matches", func(tb testing.TB) { AssertErrorIs(tb, wrapped, errBase) }, false},
		{"nil error does not match", func(tb testing.TB) { AssertErrorIs(tb, nil, errBase) }, true},
		{"true", func(tb testing.TB) { AssertTrue(tb, true) }, false},
		{"false", func(tb testing.TB) { AssertFalse(tb, true) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.run(r)
			if r.failed != tt.failed {
				t.Errorf("failed = %v, want %v", r.failed, tt.failed)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix(); got != "" {
		t.Errorf("prefix() = %q, want empty", got)
	}
	if got := prefix("move %s", "e4"); got != "move e4: " {
		t.Errorf("prefix(format) = %q, want %q", got, "move e4: ")
	}
	if got := prefix(42, "ignored"); got != "42: " {
		t.Errorf("prefix(non-string) = %q, want %q", got, "42: ")
	}
}
