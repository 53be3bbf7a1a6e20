package tetris

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	MoveLeft     Action = "left"     // Moves the Block one step along -X.
	MoveRight    Action = "right"    // Moves the Block one step along +X.
	MoveForward  Action = "forward"  // Moves the Block one step along -Z.
	MoveBackward Action = "backward" // Moves the Block one step along +Z.
	MoveDown     Action = "down"     // Moves the Block one layer down.
	DropDown     Action = "drop"     // Drops the Block down the grid.
	RotateXCW    Action = "rotatexcw"
	RotateXCCW   Action = "rotatexccw"
	RotateYCW    Action = "rotateycw"
	RotateYCCW   Action = "rotateyccw"
	RotateZCW    Action = "rotatezcw"
	RotateZCCW   Action = "rotatezccw"
	HoldBlock    Action = "hold"
	Pause        Action = "pause"
	Resume       Action = "resume"
	Restart      Action = "restart"
)

var rotations = map[Action]struct {
	axis Axis
	dir  Direction
}{
	RotateXCW:  {AxisX, ClockWise},
	RotateXCCW: {AxisX, CounterClockWise},
	RotateYCW:  {AxisY, ClockWise},
	RotateYCCW: {AxisY, CounterClockWise},
	RotateZCW:  {AxisZ, ClockWise},
	RotateZCCW: {AxisZ, CounterClockWise},
}

// Do applies an action and reports whether it changed the game.
func (t *Tetris) Do(a Action) bool {
	switch a {
	case MoveLeft:
		return t.MoveLeft()
	case MoveRight:
		return t.MoveRight()
	case MoveForward:
		return t.MoveForward()
	case MoveBackward:
		return t.MoveBackward()
	case MoveDown:
		return t.drop(false)
	case DropDown:
		return t.drop(true)
	case HoldBlock:
		return t.Hold()
	case Pause:
		t.Pause()
		return true
	case Resume:
		t.Resume()
		return true
	case Restart:
		if err := t.Restart(); err != nil {
			t.logger.Error("unable to restart game", slog.String("error", err.Error()))
			return false
		}
		return true
	}
	if r, ok := rotations[a]; ok {
		return t.Rotate(r.axis, r.dir)
	}
	return false
}

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game runs a Tetris: gravity ticks and actions are applied from a single
// goroutine and a copy of the state is published after each of them.
type Game struct {
	ID string

	updateCh chan *Tetris
	actionCh chan Action
	doneCh   chan struct{}
	stopOnce sync.Once
	tetris   *Tetris
	ticker   Ticker
	logger   *slog.Logger
}

func NewGame(o *Options) (*Game, error) {
	// the ticker is reset to the level's interval once the game starts.
	return NewConfigurableGame(newWrappedTicker(1*time.Hour), o)
}

func NewConfigurableGame(ticker Ticker, o *Options) (*Game, error) {
	t, err := New(o)
	if err != nil {
		return nil, fmt.Errorf("unable to create game: %w", err)
	}
	return newGame(t, ticker), nil
}

func newGame(t *Tetris, ticker Ticker) *Game {
	id := uuid.New().String()
	return &Game{
		ID:       id,
		updateCh: make(chan *Tetris),
		actionCh: make(chan Action),
		doneCh:   make(chan struct{}),
		tetris:   t,
		ticker:   ticker,
		logger:   t.logger.With(slog.String("game", id)),
	}
}

// Start publishes the initial state and starts listening for ticks and actions.
func (g *Game) Start() {
	g.logger.Info("game started")
	go g.listen()
}

func (g *Game) Stop() {
	g.stopOnce.Do(func() {
		g.ticker.Stop()
		close(g.doneCh)
		g.logger.Info("game stopped")
	})
}

func (g *Game) Action(a Action) {
	select {
	case g.actionCh <- a:
	case <-g.doneCh:
	}
}

// GetUpdate returns the channel the game publishes to. It's closed once the game is stopped.
func (g *Game) GetUpdate() <-chan *Tetris { return g.updateCh }

// Read returns a copy of the current state.
func (g *Game) Read() *Tetris { return g.tetris.Read() }

func (g *Game) listen() {
	defer close(g.updateCh)
	level := g.tetris.Read().Level
	g.ticker.Reset(Interval(level))
	if !g.publish() {
		return
	}
	for {
		select {
		case <-g.ticker.C():
			if !g.tetris.Tick() && g.tetris.IsGameOver() {
				g.ticker.Stop()
			}
		case a := <-g.actionCh:
			g.tetris.Do(a)
			switch {
			case g.tetris.IsGameOver():
				g.ticker.Stop()
			case a == Restart:
				level = 0
			}
		case <-g.doneCh:
			return
		}
		if l := g.tetris.Read().Level; l != level && !g.tetris.IsGameOver() {
			level = l
			g.ticker.Reset(Interval(level))
		}
		if !g.publish() {
			return
		}
	}
}

func (g *Game) publish() bool {
	select {
	case g.updateCh <- g.tetris.Read():
		return true
	case <-g.doneCh:
		return false
	}
}
