package tetris

import "fmt"

// Coord is a position in grid space or an offset inside a block's cube.
// X runs left to right, Z back to front and Y top to bottom: Y = 0 is the
// spawn layer and Y grows toward the floor.
type Coord struct {
	X, Y, Z int
}

var (
	Left     = Coord{X: -1}
	Right    = Coord{X: 1}
	Forward  = Coord{Z: -1}
	Backward = Coord{Z: 1}
	Down     = Coord{Y: 1}
	Up       = Coord{Y: -1}
)

func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }
func (c Coord) Neg() Coord        { return Coord{-c.X, -c.Y, -c.Z} }
func (c Coord) Sub(o Coord) Coord { return c.Add(o.Neg()) }

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
