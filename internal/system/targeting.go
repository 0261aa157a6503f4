package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/utils"
)

// candidate is an enemy in range with the figures the comparator ranks on.
type candidate struct {
	id             types.EntityID
	distFromTower  float64
	health         float64
	distToFinish   float64
	escapePriority bool
}

// better reports whether a outranks b. Rules, in order:
// escape priority first, then lower health, then closer to the castle,
// then farther from the tower.
func better(a, b candidate) bool {
	if a.escapePriority != b.escapePriority {
		return a.escapePriority
	}
	if a.health != b.health {
		return a.health < b.health
	}
	if a.distToFinish != b.distToFinish {
		return a.distToFinish < b.distToFinish
	}
	return a.distFromTower > b.distFromTower
}

// hasEscapePriority is true for big and huge enemies past the escape share
// of their path.
func hasEscapePriority(e *component.Enemy) bool {
	return e.Tier.IsLarge() && e.TraveledFraction() > config.EscapePriorityTraveled
}

// FindTarget picks the best enemy within rangeRadius of the tower. Full
// ties go to the enemy that spawned first.
func FindTarget(ecs *entity.ECS, tower *component.Tower, rangeRadius float64) (types.EntityID, bool) {
	tx, ty := tower.Center()
	var best candidate
	found := false

	ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		if e.Finished {
			return
		}
		ex, ey := e.Center()
		dist := utils.Distance(tx, ty, ex, ey)
		if dist > rangeRadius {
			return
		}
		c := candidate{
			id:             id,
			distFromTower:  dist,
			health:         e.Health,
			distToFinish:   e.DistanceToFinish(),
			escapePriority: hasEscapePriority(e),
		}
		if !found || better(c, best) {
			best = c
			found = true
		}
	})
	return best.id, found
}
