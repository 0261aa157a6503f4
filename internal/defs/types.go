// internal/defs/types.go
package defs

// Tier is the size/strength class of an enemy.
type Tier string

const (
	TierBasic Tier = "basic"
	TierBig   Tier = "big"
	TierHuge  Tier = "huge"
)

// Tiers lists every tier in ascending strength.
var Tiers = []Tier{TierBasic, TierBig, TierHuge}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierBig, TierHuge:
		return true
	}
	return false
}

// IsLarge is true for the tiers that can earn escape priority when targeted.
func (t Tier) IsLarge() bool {
	return t == TierBig || t == TierHuge
}
