package tetris

import (
	"errors"
	"fmt"
)

const (
	DefaultSizeX = 10
	DefaultSizeY = 22
	DefaultSizeZ = 10
)

var ErrInvalidSize = errors.New("invalid grid size")

// Grid is the playfield. SizeX columns by SizeZ rows per layer, SizeY layers.
//
// Layer 0 is where blocks spawn and layer SizeY-1 is the floor.
// A cell holds 0 when empty, otherwise the ID of the block that was locked there.
type Grid struct {
	SizeX, SizeY, SizeZ int

	cells []int
}

func NewGrid(x, y, z int) (*Grid, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, x, y, z)
	}
	return &Grid{
		SizeX: x,
		SizeY: y,
		SizeZ: z,
		cells: make([]int, x*y*z),
	}, nil
}

// the cells are stored plane by plane so a whole layer is a contiguous range.
func (g *Grid) index(x, y, z int) int { return (y*g.SizeZ+z)*g.SizeX + x }

func (g *Grid) plane(y int) []int {
	n := g.SizeX * g.SizeZ
	return g.cells[y*n : (y+1)*n]
}

// Get panics when the cell is outside the grid.
func (g *Grid) Get(x, y, z int) int { return g.cells[g.mustIndex(x, y, z)] }

// Set panics when the cell is outside the grid.
func (g *Grid) Set(x, y, z, v int) { g.cells[g.mustIndex(x, y, z)] = v }

// mustIndex guards index: out of range x or z would alias a neighbouring cell.
func (g *Grid) mustIndex(x, y, z int) int {
	if !g.IsInside(x, y, z) {
		panic(fmt.Sprintf("tetris: cell (%d,%d,%d) outside %dx%dx%d grid", x, y, z, g.SizeX, g.SizeY, g.SizeZ))
	}
	return g.index(x, y, z)
}

func (g *Grid) IsInside(x, y, z int) bool {
	return x >= 0 && x < g.SizeX && y >= 0 && y < g.SizeY && z >= 0 && z < g.SizeZ
}

// IsEmpty is the collision predicate: a cell is free only if it's inside the
// grid and nothing was locked there.
func (g *Grid) IsEmpty(x, y, z int) bool {
	return g.IsInside(x, y, z) && g.cells[g.index(x, y, z)] == 0
}

func (g *Grid) IsPlaneFull(y int) bool {
	for _, c := range g.plane(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

func (g *Grid) IsPlaneEmpty(y int) bool {
	for _, c := range g.plane(y) {
		if c != 0 {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full layer and lets the layers above fall into
// the gap. It returns the indexes of the removed layers, floor first.
func (g *Grid) ClearFullRows() []int {
	var cleared []int
	// scanning from the floor up means every layer above a cleared one only
	// has to move once, by the number of layers cleared below it so far.
	for y := g.SizeY - 1; y >= 0; y-- {
		if g.IsPlaneFull(y) {
			clear(g.plane(y))
			cleared = append(cleared, y)
		} else if len(cleared) > 0 {
			g.movePlaneDown(y, len(cleared))
		}
	}
	return cleared
}

func (g *Grid) movePlaneDown(y, n int) {
	copy(g.plane(y+n), g.plane(y))
	clear(g.plane(y))
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	var n int
	for _, c := range g.cells {
		if c != 0 {
			n++
		}
	}
	return n
}

// Plane returns a copy of layer y indexed [z][x].
func (g *Grid) Plane(y int) [][]int {
	p := g.plane(y)
	out := make([][]int, g.SizeZ)
	for z := range out {
		out[z] = make([]int, g.SizeX)
		copy(out[z], p[z*g.SizeX:(z+1)*g.SizeX])
	}
	return out
}

func (g *Grid) Copy() *Grid {
	c := &Grid{SizeX: g.SizeX, SizeY: g.SizeY, SizeZ: g.SizeZ, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
