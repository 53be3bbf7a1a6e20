package tetris

import (
	"cmp"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

var allAxis = []Axis{AxisX, AxisY, AxisZ}

func sorted(c []Coord) []Coord {
	c = slices.Clone(c)
	slices.SortFunc(c, func(a, b Coord) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y), cmp.Compare(a.Z, b.Z))
	})
	return c
}

func inCube(t *testing.T, b *Block) {
	t.Helper()
	for _, o := range b.Offsets() {
		for _, v := range []int{o.X, o.Y, o.Z} {
			if v < 0 || v >= b.Size {
				t.Errorf("wanted offset %v of %s inside [0,%d)", o, b.Shape(), b.Size)
			}
		}
	}
}

func TestNewBlock(t *testing.T) {
	tests := []struct {
		id    int
		shape Shape
		size  int
		cubes int
	}{
		{IDI, I, 4, 4},
		{IDL, L, 3, 4},
		{IDT, T, 3, 4},
		{IDO, O, 2, 8},
		{IDJ, J, 3, 4},
		{IDZ, Z, 3, 4},
		{IDS, S, 3, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			b := NewBlock(tt.id)
			if b.ID != tt.id {
				t.Errorf("wanted id %d, got %d", tt.id, b.ID)
			}
			if b.Shape() != tt.shape {
				t.Errorf("wanted shape %s, got %s", tt.shape, b.Shape())
			}
			if b.Size != tt.size {
				t.Errorf("wanted size %d, got %d", tt.size, b.Size)
			}
			if len(b.Offsets()) != tt.cubes {
				t.Errorf("wanted %d cubes, got %d", tt.cubes, len(b.Offsets()))
			}
			if b.Position != (Coord{}) {
				t.Errorf("wanted block at the origin, got %v", b.Position)
			}
			inCube(t, b)
		})
	}
}

func TestNewBlockPanics(t *testing.T) {
	for _, id := range []int{0, 8, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("wanted NewBlock(%d) to panic", id)
				}
			}()
			NewBlock(id)
		}()
	}
}

func TestParseShape(t *testing.T) {
	id, err := ParseShape("o")
	if err != nil || id != IDO {
		t.Errorf("wanted %d, got %d (%v)", IDO, id, err)
	}
	if _, err := ParseShape("X"); err == nil {
		t.Errorf("wanted an error for an unknown shape")
	}
}

func TestRotationFormulas(t *testing.T) {
	// a single cube at (0,1,2) inside a size 3 cube.
	tests := []struct {
		axis Axis
		dir  Direction
		want Coord
	}{
		{AxisX, ClockWise, Coord{0, 0, 1}},
		{AxisX, CounterClockWise, Coord{0, 2, 1}},
		{AxisY, ClockWise, Coord{0, 1, 0}},
		{AxisY, CounterClockWise, Coord{2, 1, 2}},
		{AxisZ, ClockWise, Coord{1, 0, 2}},
		{AxisZ, CounterClockWise, Coord{1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			b := newBlockWithOffsets(1, 3, []Coord{{0, 1, 2}})
			b.Rotate(tt.axis, tt.dir)
			if got := b.Offsets()[0]; got != tt.want {
				t.Errorf("wanted %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for id := 1; id <= blockTypes; id++ {
		for _, axis := range allAxis {
			for _, dir := range []Direction{ClockWise, CounterClockWise} {
				b := NewBlock(id)
				want := sorted(b.Offsets())
				b.Rotate(axis, dir)
				inCube(t, b)
				if got := sorted(b.Offsets()); len(slices.Compact(got)) != len(want) {
					t.Errorf("%s %s: wanted rotation to keep %d distinct cubes, got %v", b.Shape(), axis, len(want), got)
				}
				b.Rotate(axis, dir.Inverse())
				if got := sorted(b.Offsets()); !reflect.DeepEqual(got, want) {
					t.Errorf("%s %s: wanted %v, got %v", b.Shape(), axis, want, got)
				}
			}
		}
	}
}

func TestFourRotationsAreIdentity(t *testing.T) {
	for id := 1; id <= blockTypes; id++ {
		for _, axis := range allAxis {
			b := NewBlock(id)
			want := b.Offsets()
			for range 4 {
				b.Rotate(axis, ClockWise)
			}
			if got := b.Offsets(); !reflect.DeepEqual(got, want) {
				t.Errorf("%s %s: wanted %v, got %v", b.Shape(), axis, want, got)
			}
		}
	}
}

func TestRotationsStayInCube(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for id := 1; id <= blockTypes; id++ {
		b := NewBlock(id)
		for range 200 {
			b.Rotate(allAxis[r.IntN(3)], Direction(r.IntN(2)))
		}
		inCube(t, b)
		if len(b.Offsets()) != len(NewBlock(id).Offsets()) {
			t.Errorf("wanted %s to keep its number of cubes", b.Shape())
		}
	}
}

func TestTilePositions(t *testing.T) {
	b := NewBlock(IDT)
	b.Move(Coord{4, 5, 6})
	want := []Coord{{5, 5, 7}, {5, 6, 7}, {5, 6, 8}, {5, 7, 7}}
	if got := b.Tiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}
	// iterating again gives the same result and stopping early is fine.
	var n int
	for range b.TilePositions() {
		n++
		if n == 2 {
			break
		}
	}
	if got := slices.Collect(b.TilePositions()); !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}
	b.Move(Up)
	if got := b.Tiles()[0]; got != (Coord{5, 4, 7}) {
		t.Errorf("wanted tiles to follow the block, got %v", got)
	}
}

func TestCopyBlock(t *testing.T) {
	b := NewBlock(IDL)
	b.Move(Coord{2, 3, 4})
	c := b.CopyBlock()
	if !reflect.DeepEqual(b, c) {
		t.Fatalf("wanted %v, got %v", b, c)
	}
	c.RotateXClockWise()
	c.Move(Down)
	if reflect.DeepEqual(b.Offsets(), c.Offsets()) {
		t.Errorf("wanted rotating the copy not to rotate the original")
	}
	if b.Position != (Coord{2, 3, 4}) {
		t.Errorf("wanted the original to stay at (2,3,4), got %v", b.Position)
	}
	var nilBlock *Block
	if nilBlock.CopyBlock() != nil {
		t.Errorf("wanted copy of nil to be nil")
	}
}

func TestReset(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for id := 1; id <= blockTypes; id++ {
		b := NewBlock(id)
		for range 100 {
			b.Reset(10, 8, r, true)
			if b.Position.Y != 0 {
				t.Errorf("wanted block on the spawn layer, got %v", b.Position)
			}
			if b.Position.X < 0 || b.Position.X > 10-b.Size {
				t.Errorf("wanted X within [0,%d], got %d", 10-b.Size, b.Position.X)
			}
			if b.Position.Z < 0 || b.Position.Z > 8-b.Size {
				t.Errorf("wanted Z within [0,%d], got %d", 8-b.Size, b.Position.Z)
			}
			inCube(t, b)
		}
	}

	t.Run("fixed", func(t *testing.T) {
		b := NewBlock(IDJ)
		want := b.Offsets()
		b.Move(Coord{3, 3, 3})
		b.Reset(10, 10, FixedRand(2), false)
		if b.Position != (Coord{2, 0, 2}) {
			t.Errorf("wanted (2,0,2), got %v", b.Position)
		}
		if !reflect.DeepEqual(b.Offsets(), want) {
			t.Errorf("wanted orientation to be kept, got %v", b.Offsets())
		}
	})
}

func TestCoord(t *testing.T) {
	a, b := Coord{1, 2, 3}, Coord{-4, 5, 0}
	if got := a.Add(b); got != (Coord{-3, 7, 3}) {
		t.Errorf("wanted (-3,7,3), got %v", got)
	}
	if got := a.Sub(b); got != (Coord{5, -3, 3}) {
		t.Errorf("wanted (5,-3,3), got %v", got)
	}
	if got := a.Neg(); got != (Coord{-1, -2, -3}) {
		t.Errorf("wanted (-1,-2,-3), got %v", got)
	}
	if got := Down.Add(Up); got != (Coord{}) {
		t.Errorf("wanted Up to undo Down, got %v", got)
	}
}
