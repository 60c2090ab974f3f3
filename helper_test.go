package tradesim

import (
	"testing"
	"time"
)

// USD is a helper for tests to create money from a const.
func USD(v float64) Money { return M(v) }

// fixedClock returns a deterministic clock that starts at a fixed instant
// and advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// newTestAccount creates an account priced by the demo table with a
// deterministic clock.
func newTestAccount(t *testing.T, id string) *Account {
	t.Helper()
	a, err := NewAccount(id, DefaultOracle())
	if err != nil {
		t.Fatalf("NewAccount(%q) failed: %v", id, err)
	}
	a.now = fixedClock()
	return a
}
