package shared

import (
	"sync"
	"time"
)

// Clock is the time source every advancement reads "now" from
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time in UTC
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

func NewRealClock() Clock {
	return RealClock{}
}

// MockClock is a manually driven clock, safe to move while servers read it
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock starts at the given instant (the current time if zero)
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now().UTC()
	}
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward; a negative duration moves it back
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}
