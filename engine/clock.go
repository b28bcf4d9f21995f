package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeProvider is the wall clock source, swapped for a mock in tests
type TimeProvider interface {
	Now() time.Time
}

// SystemTime reads time.Now with its monotonic component
type SystemTime struct{}

// Now returns the current system time
func (SystemTime) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced time source
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider starts the mock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// PausableClock measures play time, excluding every paused interval
type PausableClock struct {
	mu        sync.Mutex
	source    TimeProvider
	start     time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	isPaused  atomic.Bool
}

// NewPausableClock starts a running clock on source, nil uses the system clock
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = SystemTime{}
	}
	return &PausableClock{source: source, start: source.Now()}
}

// Elapsed returns play time since start
// While paused it stays frozen at the pause instant
func (c *PausableClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.source.Now()
	if c.isPaused.Load() {
		now = c.pausedAt
	}
	return now.Sub(c.start) - c.pausedFor
}

// Pause freezes the clock, repeated calls are no-ops
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isPaused.Load() {
		return
	}
	c.pausedAt = c.source.Now()
	c.isPaused.Store(true)
}

// Resume continues from the frozen value without catching up
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isPaused.Load() {
		return
	}
	c.pausedFor += c.source.Now().Sub(c.pausedAt)
	c.isPaused.Store(false)
}

// IsPaused reports the pause state without locking
func (c *PausableClock) IsPaused() bool {
	return c.isPaused.Load()
}

// PausedTotal returns the accumulated pause time, including a pause in progress
func (c *PausableClock) PausedTotal() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.pausedFor
	if c.isPaused.Load() {
		total += c.source.Now().Sub(c.pausedAt)
	}
	return total
}
