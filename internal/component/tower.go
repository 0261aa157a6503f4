// component/tower.go
package component

import "go-castle-defense/internal/config"

// Tower is a stationary shooter. Combat stats are not stored here: every
// tower reads the shared upgrade state each frame.
type Tower struct {
	Col, Row     int
	LastShotTime float64 // время последнего выстрела, мс
	HasFired     bool
}

// Center returns the pixel center of the tower's cell.
func (t *Tower) Center() (float64, float64) {
	return float64(t.Col*config.TileSize + config.HalfTile), float64(t.Row*config.TileSize + config.HalfTile)
}

// Ready reports whether the cooldown window has elapsed at time now.
// A tower that has never fired is always ready.
func (t *Tower) Ready(now, cooldown float64) bool {
	return !t.HasFired || now-t.LastShotTime >= cooldown
}
