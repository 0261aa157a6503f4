package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
)

// NewEnemy builds an enemy of a tier at a world level, standing on the
// first waypoint. Level-dependent health and reward are fixed here for the
// enemy's whole life. Unknown tiers fall back to basic stats.
func NewEnemy(path *component.Path, tier defs.Tier, level int) *component.Enemy {
	def, ok := defs.EnemyLibrary[tier]
	if !ok {
		def = defs.EnemyLibrary[defs.TierBasic]
	}
	if level < 1 {
		level = 1
	}
	hp := def.HealthForLevel(level)
	var start component.Position
	if path.Len() > 0 {
		start = path.Waypoints[0]
	}
	return &component.Enemy{
		Position:      start,
		Path:          path,
		Tier:          tier,
		Level:         level,
		Health:        float64(hp),
		MaxHealth:     float64(hp),
		Speed:         def.Speed,
		Reward:        def.RewardForLevel(level),
		Size:          def.Size,
		TotalDistance: path.Length(),
	}
}
