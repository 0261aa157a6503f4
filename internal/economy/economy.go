// Package economy holds the global upgrade ladders shared by every tower
// and the gold prices of upgrades and towers. Everything here is a pure
// function of levels and counts.
package economy

import (
	"math"

	"go-castle-defense/internal/utils"
)

const (
	BaseCooldown     = 2000.0 // ms at fire-rate level 1
	TargetCooldown   = 500.0  // ms at the max fire-rate level
	MaxFireRateLevel = 15

	BaseDamage          = 10.0
	MaxDamageMultiplier = 2.0
	MaxDamageLevel      = 10

	BaseRange     = 150.0 // px
	RangeStep     = 0.1   // +10% per level above 1
	MaxRangeLevel = 3
	RangeCostUnit = 1000

	BaseUpgradeCost      = 50
	UpgradeCostIncrement = 25
	UpgradeCostCap       = 200

	TowerBaseCost      = 50
	FlatPricedTowers   = 5
	TowerCostIncrement = 5
)

// TrackID names one of the upgrade ladders.
type TrackID int

const (
	FireRate TrackID = iota
	Damage
	Range
	trackCount
)

// Tracks lists every ladder in display order.
var Tracks = []TrackID{FireRate, Damage, Range}

func (id TrackID) String() string {
	switch id {
	case FireRate:
		return "fire-rate"
	case Damage:
		return "damage"
	case Range:
		return "range"
	}
	return "unknown"
}

// MaxLevel returns the top level of the ladder.
func (id TrackID) MaxLevel() int {
	switch id {
	case FireRate:
		return MaxFireRateLevel
	case Damage:
		return MaxDamageLevel
	case Range:
		return MaxRangeLevel
	}
	return 1
}

// ValueAt returns the ladder's effect at a level: cooldown in ms for
// fire-rate, projectile damage for damage, radius in px for range.
func (id TrackID) ValueAt(level int) float64 {
	switch id {
	case FireRate:
		// Кулдаун линейно убывает от базового к целевому, округляется до мс
		t := utils.LevelFraction(level, MaxFireRateLevel)
		return math.Round(utils.Lerp(BaseCooldown, TargetCooldown, t))
	case Damage:
		t := utils.LevelFraction(level, MaxDamageLevel)
		return BaseDamage * utils.Lerp(1.0, MaxDamageMultiplier, t)
	case Range:
		return BaseRange * (1 + RangeStep*float64(level-1))
	}
	return 0
}

// CostAt returns the gold needed to go from level to level+1.
func (id TrackID) CostAt(level int) int {
	if id == Range {
		return level * RangeCostUnit
	}
	return min(BaseUpgradeCost+(level-1)*UpgradeCostIncrement, UpgradeCostCap)
}

// CostToMax sums the step costs from level up to the max level.
func (id TrackID) CostToMax(level int) int {
	total := 0
	for l := level; l < id.MaxLevel(); l++ {
		total += id.CostAt(l)
	}
	return total
}

// TowerCost returns the price of the next tower given how many are built.
func TowerCost(built int) int {
	if built < FlatPricedTowers {
		return TowerBaseCost
	}
	return TowerBaseCost + (built-FlatPricedTowers+1)*TowerCostIncrement
}
