package tetris

import (
	"math"
	"time"
)

const (
	linesPerLevel = 10
	maxLevel      = 20
)

// points returns the score for clearing n layers with a single lock.
// Clearing more layers at once is worth more than clearing them one by one.
func points(n, level int) int {
	var p int
	switch {
	case n <= 0:
		return 0
	case n == 1:
		p = 100
	case n == 2:
		p = 300
	case n == 3:
		p = 500
	default:
		p = 800 * (n - 3)
	}
	return p * level
}

func levelFor(lines int) int {
	return min(1+lines/linesPerLevel, maxLevel)
}

// Interval returns the time between gravity ticks for a level.
// Based on https://tetris.wiki/Marathon
//
// Time = (0.8-((Level-1)*0.007))^(Level-1)
func Interval(level int) time.Duration {
	switch {
	case level < 1:
		level = 1
	case level > maxLevel:
		level = maxLevel
	}
	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))

	return time.Duration(seconds * float64(time.Second))
}
