package clocks

import (
	"sync"
	"time"
)

// Mock is a manually advanced clock
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

var _ Clock = new(Mock)

func NewMock(start time.Time) *Mock {
	return &Mock{
		now: start,
	}
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
