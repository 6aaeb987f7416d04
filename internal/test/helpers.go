// Package test carries the small assertion helpers shared by the package
// tests, for the checks the external assertion library does not cover
// (notably panic expectations on the fatal protocol-violation paths).
package test

import (
	"errors"
	"strings"
	"testing"
)

// T wraps *testing.T with assertion helpers.
type T struct {
	*testing.T
}

// FromT creates a new test helper from a *testing.T.
func FromT(t *testing.T) *T {
	t.Helper()
	return &T{t}
}

// Assert fails the test if the condition is false.
func (t *T) Assert(condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		return
	}
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok {
			t.Fatalf(format, msgAndArgs[1:]...)
		} else {
			t.Fatal(msgAndArgs...)
		}
	} else {
		t.Fatal("assertion failed")
	}
}

// CheckErr fails the test if err is not nil.
func (t *T) CheckErr(err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ExpectErr fails the test unless err wraps (or is) the expected error.
func (t *T) ExpectErr(err, expected error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error '%v', but got nil", expected)
	}
	if !errors.Is(err, expected) {
		t.Fatalf("expected error '%v', but got '%v'", expected, err)
	}
}

// ShouldPanic fails the test if f does not panic. It returns the
// recovered value for further inspection.
func (t *T) ShouldPanic(f func()) (recovered any) {
	t.Helper()
	defer func() {
		if recovered = recover(); recovered == nil {
			t.Fatal("expected a panic, but did not get one")
		}
	}()
	f()
	return
}

// ShouldPanicWith fails the test unless f panics with a string value
// containing substr.
func (t *T) ShouldPanicWith(substr string, f func()) {
	t.Helper()
	r := t.ShouldPanic(f)
	s, ok := r.(string)
	if !ok || !strings.Contains(s, substr) {
		t.Fatalf("panic value %q does not contain %q", r, substr)
	}
}
