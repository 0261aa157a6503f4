package economy

// Upgrades is the single upgrade state read by every tower, so towers can
// never diverge from one another.
type Upgrades struct {
	levels [trackCount]int
}

func NewUpgrades() *Upgrades {
	u := &Upgrades{}
	u.Reset()
	return u
}

// Reset puts every ladder back to level 1.
func (u *Upgrades) Reset() {
	for i := range u.levels {
		u.levels[i] = 1
	}
}

func (u *Upgrades) Level(id TrackID) int {
	return u.levels[id]
}

// SetLevel forces a ladder level, clamped to 1..max.
func (u *Upgrades) SetLevel(id TrackID, level int) {
	u.levels[id] = max(1, min(level, id.MaxLevel()))
}

func (u *Upgrades) AtMax(id TrackID) bool {
	return u.levels[id] >= id.MaxLevel()
}

// Cooldown returns the current shot cooldown in ms.
func (u *Upgrades) Cooldown() float64 {
	return FireRate.ValueAt(u.levels[FireRate])
}

// Damage returns the current projectile damage.
func (u *Upgrades) Damage() float64 {
	return Damage.ValueAt(u.levels[Damage])
}

// Range returns the current targeting radius in px.
func (u *Upgrades) Range() float64 {
	return Range.ValueAt(u.levels[Range])
}

// NextCost returns the price of the next step of a ladder.
func (u *Upgrades) NextCost(id TrackID) int {
	return id.CostAt(u.levels[id])
}

// CostToMax returns the total price of buying every remaining step.
func (u *Upgrades) CostToMax(id TrackID) int {
	return id.CostToMax(u.levels[id])
}

// CanUpgrade reports whether one step is affordable and not past the max.
func (u *Upgrades) CanUpgrade(id TrackID, gold int) bool {
	return !u.AtMax(id) && gold >= u.NextCost(id)
}

// Upgrade buys one step, deducting the price from gold. It is a no-op
// returning false when the ladder is maxed or the step is unaffordable.
func (u *Upgrades) Upgrade(id TrackID, gold *int) bool {
	if !u.CanUpgrade(id, *gold) {
		return false
	}
	*gold -= u.NextCost(id)
	u.levels[id]++
	return true
}

// UpgradeToMax repeats Upgrade while it succeeds, pricing every step at
// the level reached so far. It returns the number of steps and gold spent.
func (u *Upgrades) UpgradeToMax(id TrackID, gold *int) (steps, spent int) {
	for {
		cost := u.NextCost(id)
		if !u.Upgrade(id, gold) {
			return steps, spent
		}
		steps++
		spent += cost
	}
}
