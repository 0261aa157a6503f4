// internal/system/movement.go
package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/utils"
)

// MovementSystem ведёт врагов по пути.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		MoveEnemy(e, deltaTime)
	})
}

// MoveEnemy advances one enemy by deltaTime ms. An enemy standing on the
// last waypoint finishes instead of moving; if it still has health that
// counts as a leak.
func MoveEnemy(e *component.Enemy, deltaTime float64) {
	if e.Finished {
		return
	}
	if e.AtLastWaypoint() {
		e.Finished = true
		return
	}

	target := e.Path.Waypoints[e.WaypointIndex+1]
	dx := target.X - e.X
	dy := target.Y - e.Y
	dist := utils.Distance(e.X, e.Y, target.X, target.Y)
	moveDistance := e.Speed * deltaTime

	// Прилипаем к точке, чтобы не проскочить её и не дрожать вокруг
	if dist < config.WaypointSnapRadius || dist <= moveDistance {
		e.X = target.X
		e.Y = target.Y
		e.WaypointIndex++
		return
	}
	e.X += (dx / dist) * moveDistance
	e.Y += (dy / dist) * moveDistance
}
