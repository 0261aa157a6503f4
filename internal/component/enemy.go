package component

import (
	"math"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/utils"
)

// Enemy представляет вражескую сущность, идущую по пути к замку.
type Enemy struct {
	Position
	Path          *Path
	WaypointIndex int
	Tier          defs.Tier
	Level         int     // мировой уровень, не уровень улучшений
	Health        float64 // урон дробный, здоровье тоже
	MaxHealth     float64
	Speed         float64 // px per ms
	Reward        int
	Size          float64
	TotalDistance float64
	Finished      bool
}

// Center returns the point towers and projectiles aim at.
func (e *Enemy) Center() (float64, float64) {
	return e.X + config.HalfTile, e.Y + config.HalfTile
}

// TakeDamage subtracts amount, clamping at zero. It returns true only for
// the call that killed the enemy.
func (e *Enemy) TakeDamage(amount float64) bool {
	if e.Finished {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Finished = true
		return true
	}
	return false
}

// HealthPoints returns health rounded up, as shown to the player. A
// living enemy never shows 0.
func (e *Enemy) HealthPoints() int {
	return int(math.Ceil(e.Health))
}

// Leaked is true for an enemy that finished by reaching the castle alive.
func (e *Enemy) Leaked() bool {
	return e.Finished && e.Health > 0
}

// Killed is true for an enemy that finished by losing all health.
func (e *Enemy) Killed() bool {
	return e.Finished && e.Health <= 0
}

// AtLastWaypoint reports whether the enemy has no segment left to walk.
func (e *Enemy) AtLastWaypoint() bool {
	return e.WaypointIndex >= e.Path.Len()-1
}

// DistanceToFinish returns the path length left between the enemy and the
// last waypoint: the rest of the current segment plus every later segment.
func (e *Enemy) DistanceToFinish() float64 {
	if e.AtLastWaypoint() {
		return 0
	}
	next := e.Path.Waypoints[e.WaypointIndex+1]
	return utils.Distance(e.X, e.Y, next.X, next.Y) + e.Path.RemainingAfter(e.WaypointIndex+1)
}

// TraveledFraction returns how much of the whole path is behind the enemy.
func (e *Enemy) TraveledFraction() float64 {
	if e.TotalDistance <= 0 {
		return 0
	}
	return (e.TotalDistance - e.DistanceToFinish()) / e.TotalDistance
}
