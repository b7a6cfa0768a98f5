// Package testutil holds small test helpers shared across this module's
// test files, adapted from the teacher's internal/testing package.
package testutil

import (
	"reflect"
	"testing"
	"time"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertEventuallyTrue asserts that f eventually returns true, polling
// every 10ms until timeout (default one second).
func AssertEventuallyTrue(t testing.TB, f func() bool, timeout ...time.Duration) {
	t.Helper()

	limit := time.Second
	if timeout != nil {
		limit = timeout[0]
	}

	deadline := time.NewTimer(limit)
	defer deadline.Stop()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline.C:
			t.Fatalf("timeout: expected eventually to be true")

		case <-ticker.C:
			if f() {
				return
			}
		}
	}
}
