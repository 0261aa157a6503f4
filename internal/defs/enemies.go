// internal/defs/enemies.go
package defs

import (
	"math"
	"sort"
)

// RewardPerLevel is the extra gold every kill is worth per world level above 1.
const RewardPerLevel = 5

// EnemyDefinition holds all the static data for one enemy tier.
type EnemyDefinition struct {
	Tier   Tier    `yaml:"tier"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // px per ms
	Reward int     `yaml:"reward"`
	Size   float64 `yaml:"size"`
	// LevelHealth overrides Health for specific world levels. Levels past the
	// highest entry scale that entry by LevelScaling per level.
	LevelHealth  map[int]int `yaml:"level_health"`
	LevelScaling float64     `yaml:"level_scaling"`
}

// HealthForLevel returns the starting (and max) health of this tier at a world level.
func (d EnemyDefinition) HealthForLevel(level int) int {
	if hp, ok := d.LevelHealth[level]; ok {
		return hp
	}
	top := d.topTableLevel()
	if top == 0 || level < top {
		return d.Health
	}
	base := float64(d.LevelHealth[top])
	return int(math.Round(base * math.Pow(d.LevelScaling, float64(level-top))))
}

// RewardForLevel returns the gold granted for killing this tier at a world level.
func (d EnemyDefinition) RewardForLevel(level int) int {
	return d.Reward + RewardPerLevel*(level-1)
}

func (d EnemyDefinition) topTableLevel() int {
	levels := make([]int, 0, len(d.LevelHealth))
	for l := range d.LevelHealth {
		levels = append(levels, l)
	}
	if len(levels) == 0 {
		return 0
	}
	sort.Ints(levels)
	return levels[len(levels)-1]
}

// EnemyLibrary is the library of all enemy definitions, keyed by tier.
var EnemyLibrary = DefaultEnemyLibrary()

// DefaultEnemyLibrary returns the built-in tier table.
func DefaultEnemyLibrary() map[Tier]EnemyDefinition {
	return map[Tier]EnemyDefinition{
		TierBasic: {
			Tier: TierBasic, Health: 30, Speed: 0.1, Reward: 10, Size: 32,
			LevelHealth: map[int]int{2: 35, 3: 40}, LevelScaling: 1.3,
		},
		TierBig: {
			Tier: TierBig, Health: 50, Speed: 0.12, Reward: 15, Size: 40,
			LevelHealth: map[int]int{2: 75, 3: 90}, LevelScaling: 1.3,
		},
		TierHuge: {
			Tier: TierHuge, Health: 100, Speed: 0.14, Reward: 20, Size: 50,
			LevelHealth: map[int]int{2: 150, 3: 180}, LevelScaling: 1.3,
		},
	}
}
