package tetris

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
	m.stop = false
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// FixedRand always returns the same number, capped to the requested range.
type FixedRand int

func (r FixedRand) IntN(n int) int { return min(int(r), n-1) }

// NewTestGame creates a game around a specific Tetris and returns it with a manual ticker.
func NewTestGame(t *Tetris) (*Game, *MockTicker) {
	ticker := NewMockTicker()
	return newGame(t, ticker), ticker
}

// NewTestTetris creates a default sized Tetris that only spawns the given
// shape, always at the origin of the grid and in its canonical orientation.
func NewTestTetris(shape Shape) *Tetris {
	id, err := ParseShape(string(shape))
	if err != nil {
		panic(err)
	}
	t, err := New(&Options{
		Selector: FixedSelector(id),
		Rand:     FixedRand(0),
	})
	if err != nil {
		panic(err)
	}
	return t
}
