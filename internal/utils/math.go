// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LevelFraction maps level 1..maxLevel onto 0..1. A one-level ladder is always 0.
func LevelFraction(level, maxLevel int) float64 {
	if maxLevel <= 1 {
		return 0
	}
	return float64(level-1) / float64(maxLevel-1)
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
