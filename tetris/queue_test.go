package tetris

import (
	"math/rand/v2"
	"testing"
)

func newTestQueue(seed uint64) *Queue {
	return NewQueue(QueueOptions{
		Rand:  rand.New(rand.NewPCG(seed, seed)),
		SizeX: DefaultSizeX,
		SizeZ: DefaultSizeZ,
	})
}

func TestQueueNoRepeat(t *testing.T) {
	q := newTestQueue(42)
	prev := q.GetAndUpdateBlock()
	seen := map[int]bool{prev.ID: true}
	for i := range 1000 {
		b := q.GetAndUpdateBlock()
		if b.ID == prev.ID {
			t.Fatalf("draw %d: wanted a different block than %s, got the same", i, b.Shape())
		}
		if q.Next().ID == b.ID {
			t.Fatalf("draw %d: wanted next block to differ from %s", i, b.Shape())
		}
		seen[b.ID] = true
		prev = b
	}
	if len(seen) != blockTypes {
		t.Errorf("wanted all %d blocks to be drawn, got %d", blockTypes, len(seen))
	}
}

func TestQueueResetsPoppedBlock(t *testing.T) {
	q := newTestQueue(7)
	for range 100 {
		b := q.GetAndUpdateBlock()
		if b.Position.Y != 0 || b.Position.X > DefaultSizeX-b.Size || b.Position.Z > DefaultSizeZ-b.Size {
			t.Fatalf("wanted %s inside the spawn layer, got %v", b.Shape(), b.Position)
		}
	}
}

func TestQueueNextIsACopy(t *testing.T) {
	q := newTestQueue(1)
	n := q.Next()
	n.Move(Coord{5, 5, 5})
	if got := q.GetAndUpdateBlock(); got.Position.Y != 0 {
		t.Errorf("wanted the queued block not to be moved by its copy, got %v", got.Position)
	}
}

func TestQueueSave(t *testing.T) {
	q := newTestQueue(9)
	current := q.GetAndUpdateBlock()
	next := q.Next()

	if q.Held() != nil {
		t.Fatalf("wanted an empty hold slot")
	}

	// first save keeps current and draws a fresh block.
	got := q.SaveAndUpdateBlock(current)
	if got == current {
		t.Errorf("wanted a fresh block, got the saved one")
	}
	if got.ID != next.ID {
		t.Errorf("wanted the next block %s, got %s", next.Shape(), got.Shape())
	}
	if h := q.Held(); h == nil || h.ID != current.ID {
		t.Errorf("wanted %s in the hold slot, got %v", current.Shape(), h)
	}

	// second save gives back the first one.
	second := got
	got = q.SaveAndUpdateBlock(second)
	if got != current {
		t.Errorf("wanted the held block back, got %s", got.Shape())
	}
	if got.Position.Y != 0 {
		t.Errorf("wanted the held block back on the spawn layer, got %v", got.Position)
	}
	if h := q.Held(); h == nil || h.ID != second.ID {
		t.Errorf("wanted %s in the hold slot, got %v", second.Shape(), h)
	}
}

func TestFixedSelector(t *testing.T) {
	q := NewQueue(QueueOptions{Selector: FixedSelector(IDT), Rand: FixedRand(0), SizeX: 10, SizeZ: 10})
	for range 5 {
		if b := q.GetAndUpdateBlock(); b.ID != IDT || b.Position != (Coord{}) {
			t.Errorf("wanted T at the origin, got %s at %v", b.Shape(), b.Position)
		}
	}
}

func TestRandomSelector(t *testing.T) {
	s := NewRandomSelector(rand.New(rand.NewPCG(11, 12)))
	for prev := 0; prev <= blockTypes; prev++ {
		for range 50 {
			id := s.Select(prev)
			if id < 1 || id > blockTypes || id == prev {
				t.Fatalf("wanted an id in [1,%d] other than %d, got %d", blockTypes, prev, id)
			}
		}
	}
}
