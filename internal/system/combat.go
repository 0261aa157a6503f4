package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update lets every tower shoot at most once. cooldown (ms), damage and
// rangeRadius (px) come from the shared upgrade state, so all towers use
// the same values. It returns the number of shots fired.
func (s *CombatSystem) Update(now, cooldown, damage, rangeRadius float64) int {
	shots := 0
	s.ecs.Towers.Each(func(_ types.EntityID, tower *component.Tower) {
		if s.updateTower(tower, now, cooldown, damage, rangeRadius) {
			shots++
		}
	})
	return shots
}

func (s *CombatSystem) updateTower(tower *component.Tower, now, cooldown, damage, rangeRadius float64) bool {
	if !tower.Ready(now, cooldown) {
		return false
	}
	// Без цели кулдаун не сбрасывается: попробуем снова в следующем кадре
	enemyID, ok := FindTarget(s.ecs, tower, rangeRadius)
	if !ok {
		return false
	}
	s.createProjectile(tower, enemyID, damage)
	tower.LastShotTime = now
	tower.HasFired = true
	return true
}

func (s *CombatSystem) createProjectile(tower *component.Tower, enemyID types.EntityID, damage float64) {
	x, y := tower.Center()
	s.ecs.Projectiles.Add(s.ecs.NewEntity(), &component.Projectile{
		Position: component.Position{X: x, Y: y},
		TargetID: enemyID,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
	})
}
