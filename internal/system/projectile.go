// internal/system/projectile.go
package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.ecs.Projectiles.Each(func(_ types.EntityID, proj *component.Projectile) {
		s.updateProjectile(proj, deltaTime)
	})
}

func (s *ProjectileSystem) updateProjectile(proj *component.Projectile, deltaTime float64) {
	if proj.Finished {
		return
	}
	// Цель пропала или уже закончила путь: снаряд просто исчезает
	target, ok := s.ecs.Enemies.Get(proj.TargetID)
	if !ok || target.Finished {
		proj.Finished = true
		return
	}

	tx, ty := target.Center()
	dx := tx - proj.X
	dy := ty - proj.Y
	dist := utils.Distance(proj.X, proj.Y, tx, ty)
	moveDistance := proj.Speed * deltaTime

	if dist < config.ProjectileHitRadius || moveDistance >= dist {
		s.hitTarget(proj, target)
		return
	}
	proj.X += (dx / dist) * moveDistance
	proj.Y += (dy / dist) * moveDistance
}

// hitTarget applies the damage and retires the projectile in one step, so
// a projectile can never deal damage twice.
func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) {
	proj.Finished = true
	target.TakeDamage(proj.Damage)
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyHit,
			Data: event.EnemyInfo{ID: proj.TargetID, Tier: target.Tier},
		})
	}
}
