package tetris_test

import (
	"testing"
	"time"

	"github.com/jcy9503/Tetris3D/tetris"
)

func nextUpdate(t *testing.T, g *tetris.Game) *tetris.Tetris {
	t.Helper()
	select {
	case u := <-g.GetUpdate():
		return u
	case <-time.After(1 * time.Second):
		t.Fatalf("Timed out waiting for update signal")
	}
	return nil
}

func TestGameUpdates(t *testing.T) {
	game, ticker := tetris.NewTestGame(tetris.NewTestTetris(tetris.J))
	defer game.Stop()
	game.Start()

	u := nextUpdate(t, game)
	if u.Block.Position != (tetris.Coord{}) {
		t.Errorf("wanted the block at the origin, got %v", u.Block.Position)
	}
	if !ticker.IsReset() {
		t.Errorf("Expected ticker to be reset")
	}

	ticker.Tick()
	u = nextUpdate(t, game)
	if u.Block.Position != (tetris.Coord{Y: 1}) {
		t.Errorf("wanted a tick to move the block down, got %v", u.Block.Position)
	}

	game.Action(tetris.MoveRight)
	u = nextUpdate(t, game)
	if u.Block.Position != (tetris.Coord{X: 1, Y: 1}) {
		t.Errorf("wanted the block to move right, got %v", u.Block.Position)
	}

	game.Action(tetris.DropDown)
	u = nextUpdate(t, game)
	if u.Placed != 1 {
		t.Errorf("wanted 1 placed block, got %d", u.Placed)
	}
	if u.Block.Position != (tetris.Coord{}) {
		t.Errorf("wanted a new block at the origin, got %v", u.Block.Position)
	}
}

func TestGameOverStopsTicker(t *testing.T) {
	tt := tetris.NewTestTetris(tetris.O)
	tt.Grid.Set(9, 0, 9, tetris.IDI)
	game, ticker := tetris.NewTestGame(tt)
	defer game.Stop()
	game.Start()
	nextUpdate(t, game)

	game.Action(tetris.DropDown)
	u := nextUpdate(t, game)
	if u.State != tetris.GameOver {
		t.Fatalf("wanted %s, got %s", tetris.GameOver, u.State)
	}
	if !ticker.IsStop() {
		t.Errorf("Expected ticker to be stopped")
	}

	game.Action(tetris.Restart)
	u = nextUpdate(t, game)
	if u.State != tetris.Spawned || u.Grid.Count() != 0 {
		t.Errorf("wanted a fresh game, got %s with %d cells", u.State, u.Grid.Count())
	}
	if ticker.IsStop() {
		t.Errorf("Expected ticker to be running again")
	}
}

func TestStartStop(t *testing.T) {
	game, ticker := tetris.NewTestGame(tetris.NewTestTetris(tetris.T))
	if game.ID == "" {
		t.Errorf("wanted the game to have an id")
	}
	game.Start()
	nextUpdate(t, game)
	game.Stop()
	if !ticker.IsStop() {
		t.Errorf("Expected ticker to be stopped")
	}
	// actions after stop don't block.
	game.Action(tetris.MoveLeft)
	game.Stop()
}
