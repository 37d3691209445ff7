// Package clock provides the time capability injected everywhere the engine
// reads the current time. Retention boundaries and timestamp bookkeeping are
// deterministic in tests because the clock can be mocked.
package clock

import (
	"sync"
	"time"
)

// A Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type wall struct{}

// New returns a Clock backed by the system wall clock, in UTC.
func New() Clock {
	return wall{}
}

func (wall) Now() time.Time {
	return time.Now().UTC()
}

// A Mock is a manually driven Clock.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex
	t  time.Time
}

// NewMock returns a Mock frozen at the given time.
func NewMock(t time.Time) *Mock {
	return &Mock{t: t.UTC()}
}

// Now returns the mocked time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

// Set freezes the mock at the given time.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = t.UTC()
}

// Advance moves the mock forward by the given duration.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Add(d)
}
