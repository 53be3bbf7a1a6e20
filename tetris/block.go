package tetris

import (
	"iter"
	"slices"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

type Direction int

const (
	ClockWise Direction = iota
	CounterClockWise
)

func (d Direction) Inverse() Direction {
	if d == ClockWise {
		return CounterClockWise
	}
	return ClockWise
}

// Rand is the source of randomness used to place blocks.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Block is a falling piece: a set of unit cubes inside a Size×Size×Size cube
// placed in the grid at Position. The block knows nothing about the grid;
// legality is decided by whoever moves it.
type Block struct {
	ID       int
	Size     int
	Position Coord

	offsets []Coord
}

func newBlockWithOffsets(id, size int, offsets []Coord) *Block {
	return &Block{ID: id, Size: size, offsets: slices.Clone(offsets)}
}

func (b *Block) Shape() Shape { return shapeNames[b.ID] }

// Offsets returns a copy of the cubes relative to the block's origin.
func (b *Block) Offsets() []Coord { return slices.Clone(b.offsets) }

func (b *Block) Move(delta Coord) { b.Position = b.Position.Add(delta) }

// TilePositions yields the grid position of every cube. It's computed on every
// iteration so it always reflects the current position and rotation.
func (b *Block) TilePositions() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, o := range b.offsets {
			if !yield(b.Position.Add(o)) {
				return
			}
		}
	}
}

func (b *Block) Tiles() []Coord { return slices.Collect(b.TilePositions()) }

// CopyBlock returns a deep copy. Rotating or moving the copy never affects b.
func (b *Block) CopyBlock() *Block {
	if b == nil {
		return nil
	}
	return &Block{ID: b.ID, Size: b.Size, Position: b.Position, offsets: slices.Clone(b.offsets)}
}

// Reset places the block on the spawn layer at a random column where its
// cube fits inside a sizeX by sizeZ layer. With randomOrientation it also
// turns the block clockwise 0 to 3 times about each axis.
func (b *Block) Reset(sizeX, sizeZ int, r Rand, randomOrientation bool) {
	b.Position = Coord{
		X: r.IntN(max(sizeX-b.Size, 0) + 1),
		Y: 0,
		Z: r.IntN(max(sizeZ-b.Size, 0) + 1),
	}
	if !randomOrientation {
		return
	}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for range r.IntN(4) {
			b.Rotate(axis, ClockWise)
		}
	}
}

func (b *Block) Rotate(axis Axis, dir Direction) {
	switch axis {
	case AxisX:
		if dir == ClockWise {
			b.RotateXClockWise()
		} else {
			b.RotateXCounterClockWise()
		}
	case AxisY:
		if dir == ClockWise {
			b.RotateYClockWise()
		} else {
			b.RotateYCounterClockWise()
		}
	case AxisZ:
		if dir == ClockWise {
			b.RotateZClockWise()
		} else {
			b.RotateZCounterClockWise()
		}
	}
}

func (b *Block) transform(f func(c Coord, s int) Coord) {
	for i, o := range b.offsets {
		b.offsets[i] = f(o, b.Size)
	}
}

func (b *Block) RotateXClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{c.X, s - 1 - c.Z, c.Y} })
}

func (b *Block) RotateXCounterClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{c.X, c.Z, s - 1 - c.Y} })
}

func (b *Block) RotateYClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{s - 1 - c.Z, c.Y, c.X} })
}

func (b *Block) RotateYCounterClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{c.Z, c.Y, s - 1 - c.X} })
}

func (b *Block) RotateZClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{s - 1 - c.Y, c.X, c.Z} })
}

func (b *Block) RotateZCounterClockWise() {
	b.transform(func(c Coord, s int) Coord { return Coord{c.Y, s - 1 - c.X, c.Z} })
}
