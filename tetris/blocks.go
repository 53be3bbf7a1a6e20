package tetris

import (
	"errors"
	"fmt"
	"strings"
)

type Shape string

const (
	I Shape = "I"
	L Shape = "L"
	T Shape = "T"
	O Shape = "O"
	J Shape = "J"
	Z Shape = "Z"
	S Shape = "S"
)

// Block IDs. The ID is also what gets written into the grid when a block locks.
const (
	IDI = iota + 1
	IDL
	IDT
	IDO
	IDJ
	IDZ
	IDS

	blockTypes = IDS
)

var ErrUnknownShape = errors.New("unknown shape")

var shapeNames = map[int]Shape{
	IDI: I,
	IDL: L,
	IDT: T,
	IDO: O,
	IDJ: J,
	IDZ: Z,
	IDS: S,
}

var blockMap = map[int]func() *Block{
	IDI: newI,
	IDL: newL,
	IDT: newT,
	IDO: newO,
	IDJ: newJ,
	IDZ: newZ,
	IDS: newS,
}

// NewBlock builds the block with the given ID (1 to 7) in its canonical
// orientation at the origin. Any other ID is a programming error and panics.
func NewBlock(id int) *Block {
	f, ok := blockMap[id]
	if !ok {
		panic(fmt.Sprintf("tetris: block id %d out of range [1,%d]", id, blockTypes))
	}
	return f()
}

// ParseShape returns the block ID for a shape letter like "T" or "o".
func ParseShape(s string) (int, error) {
	for id, name := range shapeNames {
		if strings.EqualFold(string(name), s) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// The flat shapes live in the middle X layer of their cube, drawn below as
// Y (rows, top to bottom) by Z (columns).

/*
.	Y\Z	0 1 2 3
.	0	X O X X
.	1	X O X X
.	2	X O X X
.	3	X O X X
*/
func newI() *Block {
	return newBlockWithOffsets(IDI, 4, []Coord{
		{1, 0, 1}, {1, 1, 1}, {1, 2, 1}, {1, 3, 1},
	})
}

/*
.	Y\Z	0 1 2
.	0	X O X
.	1	X O X
.	2	X O O
*/
func newL() *Block {
	return newBlockWithOffsets(IDL, 3, []Coord{
		{1, 0, 1}, {1, 1, 1}, {1, 2, 1}, {1, 2, 2},
	})
}

/*
.	Y\Z	0 1 2
.	0	X O X
.	1	X O O
.	2	X O X
*/
func newT() *Block {
	return newBlockWithOffsets(IDT, 3, []Coord{
		{1, 0, 1}, {1, 1, 1}, {1, 1, 2}, {1, 2, 1},
	})
}

// newO is the only block extruded to full depth: a 2x2x2 cube.
func newO() *Block {
	return newBlockWithOffsets(IDO, 2, []Coord{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	})
}

/*
.	Y\Z	0 1 2
.	0	X O X
.	1	X O X
.	2	O O X
*/
func newJ() *Block {
	return newBlockWithOffsets(IDJ, 3, []Coord{
		{1, 0, 1}, {1, 1, 1}, {1, 2, 0}, {1, 2, 1},
	})
}

/*
.	Y\Z	0 1 2
.	0	X X X
.	1	O O X
.	2	X O O
*/
func newZ() *Block {
	return newBlockWithOffsets(IDZ, 3, []Coord{
		{1, 1, 0}, {1, 1, 1}, {1, 2, 1}, {1, 2, 2},
	})
}

/*
.	Y\Z	0 1 2
.	0	X X X
.	1	X O O
.	2	O O X
*/
func newS() *Block {
	return newBlockWithOffsets(IDS, 3, []Coord{
		{1, 1, 1}, {1, 1, 2}, {1, 2, 0}, {1, 2, 1},
	})
}
