// Package tetris contains the simulation of a 3D tetris game: the voxel grid,
// the falling blocks and the rules that move, lock and clear them.
package tetris

import (
	"fmt"
	"log/slog"
	"sync"
)

type State int

const (
	Spawned State = iota
	Falling
	Locking
	RowClearing
	GameOver
)

func (s State) String() string {
	switch s {
	case Spawned:
		return "spawned"
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case RowClearing:
		return "clearing"
	case GameOver:
		return "gameover"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	// Grid dimensions, the defaults are 10x22x10.
	SizeX, SizeY, SizeZ int
	// Selector picks the block IDs. Use a FixedSelector for reproducible games.
	Selector Selector
	// Rand places the spawned blocks. Seed it for reproducible games.
	Rand              Rand
	RandomOrientation bool
	Logger            *slog.Logger
}

// Tetris is the state of a game. The exported fields are meant to be read
// from a copy returned by Read(); the methods are safe for concurrent use.
type Tetris struct {
	Grid   *Grid
	Block  *Block // nil once the game is over.
	Shadow *Block // where Block would lock if dropped, only set by Read().
	Next   *Block
	Held   *Block
	State  State

	Paused      bool
	Level       int
	LinesClear  int
	Score       int
	Placed      int
	LastCleared []int // layers cleared by the last lock.

	queue   *Queue
	canHold bool
	options Options
	logger  *slog.Logger
	mu      sync.RWMutex
}

func New(o *Options) (*Tetris, error) {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.SizeX == 0 && opts.SizeY == 0 && opts.SizeZ == 0 {
		opts.SizeX, opts.SizeY, opts.SizeZ = DefaultSizeX, DefaultSizeY, DefaultSizeZ
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	t := &Tetris{options: opts, logger: opts.Logger}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tetris) init() error {
	g, err := NewGrid(t.options.SizeX, t.options.SizeY, t.options.SizeZ)
	if err != nil {
		return fmt.Errorf("unable to create grid: %w", err)
	}
	t.Grid = g
	t.queue = NewQueue(QueueOptions{
		Selector:          t.options.Selector,
		Rand:              t.options.Rand,
		SizeX:             g.SizeX,
		SizeZ:             g.SizeZ,
		RandomOrientation: t.options.RandomOrientation,
	})
	t.Held = nil
	t.Paused = false
	t.Level = 1
	t.LinesClear = 0
	t.Score = 0
	t.Placed = 0
	t.LastCleared = nil
	t.spawn(t.queue.GetAndUpdateBlock())
	return nil
}

// Restart throws away the grid and the queue and starts over.
func (t *Tetris) Restart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger.Info("restarting game")
	return t.init()
}

// Read returns a copy of the current state that's safe to read concurrently.
func (t *Tetris) Read() *Tetris {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var shadow *Block
	if t.Block != nil {
		shadow = t.ghost()
	}
	return &Tetris{
		Grid:        t.Grid.Copy(),
		Block:       t.Block.CopyBlock(),
		Shadow:      shadow,
		Next:        t.Next.CopyBlock(),
		Held:        t.Held.CopyBlock(),
		State:       t.State,
		Paused:      t.Paused,
		Level:       t.Level,
		LinesClear:  t.LinesClear,
		Score:       t.Score,
		Placed:      t.Placed,
		LastCleared: append([]int(nil), t.LastCleared...),
	}
}

func (t *Tetris) IsGameOver() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.State == GameOver
}

// Fits reports whether every cube of b lands on an empty cell of the grid.
func (t *Tetris) Fits(b *Block) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.fits(b)
}

func (t *Tetris) fits(b *Block) bool {
	for c := range b.TilePositions() {
		if !t.Grid.IsEmpty(c.X, c.Y, c.Z) {
			return false
		}
	}
	return true
}

func (t *Tetris) active() bool {
	return t.State != GameOver && !t.Paused && t.Block != nil
}

// Tick applies gravity: the block moves down one layer or, if it can't,
// locks into the grid. It reports whether the block moved.
func (t *Tetris) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() {
		return false
	}
	return t.down()
}

// SoftDrop moves the block one layer down, same as a gravity tick.
func (t *Tetris) SoftDrop() bool { return t.Tick() }

// HardDrop moves the block down until it can't go further and locks it.
// It returns the number of layers the block fell.
func (t *Tetris) HardDrop() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() {
		return 0
	}
	return t.hardDrop()
}

func (t *Tetris) hardDrop() int {
	var n int
	for t.down() {
		n++
	}
	t.logger.Debug("hard drop", slog.Int("layers", n))
	return n
}

// drop moves the block one layer down, or all the way when hard is set.
// It reports whether the game was active, checked under the same lock as
// the move: the block either moved or locked, both change the game.
func (t *Tetris) drop(hard bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() {
		return false
	}
	if hard {
		t.hardDrop()
	} else {
		t.down()
	}
	return true
}

func (t *Tetris) down() bool {
	t.Block.Move(Down)
	if t.fits(t.Block) {
		t.State = Falling
		return true
	}
	t.Block.Move(Up)
	t.lock()
	return false
}

// Move translates the block by delta if it fits, otherwise nothing changes.
func (t *Tetris) Move(delta Coord) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() {
		return false
	}
	t.Block.Move(delta)
	if t.fits(t.Block) {
		return true
	}
	t.Block.Move(delta.Neg())
	return false
}

func (t *Tetris) MoveLeft() bool     { return t.Move(Left) }
func (t *Tetris) MoveRight() bool    { return t.Move(Right) }
func (t *Tetris) MoveForward() bool  { return t.Move(Forward) }
func (t *Tetris) MoveBackward() bool { return t.Move(Backward) }

// Rotate turns the block about axis. If the result collides the inverse
// rotation is applied so the block ends up exactly as it was.
func (t *Tetris) Rotate(axis Axis, dir Direction) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() {
		return false
	}
	t.Block.Rotate(axis, dir)
	if t.fits(t.Block) {
		return true
	}
	t.Block.Rotate(axis, dir.Inverse())
	return false
}

// Hold swaps the block in play with the one in the hold slot.
// It can be used once per spawned block.
func (t *Tetris) Hold() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active() || !t.canHold {
		return false
	}
	held := t.Block
	t.spawn(t.queue.SaveAndUpdateBlock(held))
	t.Held = t.queue.Held()
	t.canHold = false
	t.logger.Debug("block held", slog.String("shape", string(held.Shape())))
	return true
}

func (t *Tetris) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Paused = true
}

func (t *Tetris) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Paused = false
}

// Ghost returns where the block would lock if it was dropped now.
func (t *Tetris) Ghost() *Block {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.Block == nil {
		return nil
	}
	return t.ghost()
}

func (t *Tetris) ghost() *Block {
	g := t.Block.CopyBlock()
	for {
		g.Move(Down)
		if !t.fits(g) {
			g.Move(Up)
			return g
		}
	}
}

func (t *Tetris) lock() {
	t.State = Locking
	for c := range t.Block.TilePositions() {
		t.Grid.Set(c.X, c.Y, c.Z, t.Block.ID)
	}
	t.Placed++

	t.State = RowClearing
	t.LastCleared = t.Grid.ClearFullRows()
	if n := len(t.LastCleared); n > 0 {
		t.Score += points(n, t.Level)
		t.LinesClear += n
		t.Level = levelFor(t.LinesClear)
		t.logger.Info("layers cleared",
			slog.Any("layers", t.LastCleared),
			slog.Int("lines", t.LinesClear),
			slog.Int("score", t.Score),
		)
	}

	if !t.Grid.IsPlaneEmpty(0) {
		t.gameOver()
		return
	}
	t.spawn(t.queue.GetAndUpdateBlock())
}

// spawn puts b in play. A block that doesn't fit where it spawns ends the game.
func (t *Tetris) spawn(b *Block) {
	t.Block = b
	t.Next = t.queue.Next()
	t.canHold = true
	t.State = Spawned
	if !t.fits(b) {
		t.gameOver()
		return
	}
	t.logger.Debug("block spawned",
		slog.String("shape", string(b.Shape())),
		slog.String("position", b.Position.String()),
	)
}

func (t *Tetris) gameOver() {
	t.State = GameOver
	t.Block = nil
	t.logger.Info("game over",
		slog.Int("score", t.Score),
		slog.Int("lines", t.LinesClear),
		slog.Int("placed", t.Placed),
	)
}
