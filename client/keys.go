package client

import (
	"github.com/eiannone/keyboard"
	"github.com/jcy9503/Tetris3D/tetris"
)

// ViewAngle is the quadrant the camera looks from, 0 to 3, turning
// clockwise around the vertical axis. Moves and rotations typed on the
// keyboard are relative to the screen so they're remapped to grid axes.
type ViewAngle int

// ViewAngleFromYaw buckets a camera yaw in degrees into a ViewAngle.
func ViewAngleFromYaw(deg float64) ViewAngle {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	switch {
	case deg <= 45 || deg > 315:
		return 0
	case deg <= 135:
		return 1
	case deg <= 225:
		return 2
	default:
		return 3
	}
}

func (v ViewAngle) Turn(n int) ViewAngle {
	return ViewAngle(((int(v)+n)%4 + 4) % 4)
}

// horizontal moves in clockwise order as seen from above.
var moveCycle = []tetris.Action{tetris.MoveLeft, tetris.MoveForward, tetris.MoveRight, tetris.MoveBackward}

var rotationMap = map[tetris.Action][4]tetris.Action{
	tetris.RotateXCW:  {tetris.RotateXCW, tetris.RotateZCCW, tetris.RotateXCCW, tetris.RotateZCW},
	tetris.RotateXCCW: {tetris.RotateXCCW, tetris.RotateZCW, tetris.RotateXCW, tetris.RotateZCCW},
	tetris.RotateZCW:  {tetris.RotateZCW, tetris.RotateXCW, tetris.RotateZCCW, tetris.RotateXCCW},
	tetris.RotateZCCW: {tetris.RotateZCCW, tetris.RotateXCCW, tetris.RotateZCW, tetris.RotateXCW},
}

// Remap converts a screen relative action to the grid action for this view.
// Vertical moves and rotations about Y don't depend on the view.
func (v ViewAngle) Remap(a tetris.Action) tetris.Action {
	for i, m := range moveCycle {
		if m == a {
			return moveCycle[(i+int(v))%len(moveCycle)]
		}
	}
	if r, ok := rotationMap[a]; ok {
		return r[v]
	}
	return a
}

// keyAction maps a key press during play to a screen relative action.
func keyAction(e keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case e.Key == keyboard.KeyArrowLeft || e.Rune == 'a':
		return tetris.MoveLeft, true
	case e.Key == keyboard.KeyArrowRight || e.Rune == 'd':
		return tetris.MoveRight, true
	case e.Key == keyboard.KeyArrowUp || e.Rune == 'w':
		return tetris.MoveForward, true
	case e.Key == keyboard.KeyArrowDown || e.Rune == 's':
		return tetris.MoveBackward, true
	case e.Rune == 'x':
		return tetris.MoveDown, true
	case e.Key == keyboard.KeySpace:
		return tetris.DropDown, true
	case e.Rune == 'o':
		return tetris.RotateXCCW, true
	case e.Rune == 'p':
		return tetris.RotateXCW, true
	case e.Rune == 'k':
		return tetris.RotateYCW, true
	case e.Rune == 'l':
		return tetris.RotateYCCW, true
	case e.Rune == 'm':
		return tetris.RotateZCCW, true
	case e.Rune == ',':
		return tetris.RotateZCW, true
	case e.Rune == 'c':
		return tetris.HoldBlock, true
	case e.Rune == 'r':
		return tetris.Restart, true
	}
	return "", false
}
