package economy

import (
	"math"
	"testing"
)

func TestFireRateCostSequence(t *testing.T) {
	want := map[int]int{1: 50, 2: 75, 3: 100, 7: 200, 8: 200, 14: 200}
	for level, cost := range want {
		if got := FireRate.CostAt(level); got != cost {
			t.Errorf("fire-rate level %d: expected cost %d, got %d", level, cost, got)
		}
	}
	for level := 1; level < MaxFireRateLevel; level++ {
		if c := FireRate.CostAt(level); c > UpgradeCostCap {
			t.Errorf("level %d cost %d exceeds the cap", level, c)
		}
	}
}

func TestRangeCost(t *testing.T) {
	if Range.CostAt(1) != 1000 || Range.CostAt(2) != 2000 {
		t.Errorf("unexpected range costs %d, %d", Range.CostAt(1), Range.CostAt(2))
	}
	if got := Range.CostToMax(1); got != 3000 {
		t.Errorf("Expected 3000 to max range, got %d", got)
	}
}

func TestLadderValues(t *testing.T) {
	tests := []struct {
		id    TrackID
		level int
		want  float64
	}{
		{FireRate, 1, 2000},
		{FireRate, 2, 1893},
		{FireRate, 15, 500},
		{Damage, 1, 10},
		{Damage, 10, 20},
		{Range, 1, 150},
		{Range, 3, 180},
	}
	for _, tt := range tests {
		if got := tt.id.ValueAt(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s level %d: expected %v, got %v", tt.id, tt.level, tt.want, got)
		}
	}
	if got := Damage.ValueAt(2); math.Abs(got-100.0/9.0) > 1e-9 {
		t.Errorf("Expected damage %.4f at level 2, got %.4f", 100.0/9.0, got)
	}
}

func TestTowerCost(t *testing.T) {
	tests := map[int]int{0: 50, 4: 50, 5: 55, 6: 60, 10: 80}
	for built, want := range tests {
		if got := TowerCost(built); got != want {
			t.Errorf("built %d: expected %d, got %d", built, want, got)
		}
	}
}

func TestUpgradeIsNoOpWhenUnaffordable(t *testing.T) {
	u := NewUpgrades()
	gold := 49
	if u.Upgrade(FireRate, &gold) {
		t.Error("upgrade should fail with 49 gold")
	}
	if gold != 49 || u.Level(FireRate) != 1 {
		t.Errorf("state changed on a rejected upgrade: gold %d level %d", gold, u.Level(FireRate))
	}
}

func TestUpgradeIsNoOpAtMax(t *testing.T) {
	u := NewUpgrades()
	u.SetLevel(Range, MaxRangeLevel)
	gold := 1_000_000
	if u.Upgrade(Range, &gold) {
		t.Error("upgrade past max should fail")
	}
	if gold != 1_000_000 {
		t.Errorf("gold changed on a rejected upgrade: %d", gold)
	}
}

func TestUpgradeToMaxSpendsIterativeSum(t *testing.T) {
	for _, id := range Tracks {
		u := NewUpgrades()
		expected := id.CostToMax(1)
		gold := expected + 17
		steps, spent := u.UpgradeToMax(id, &gold)

		if spent != expected {
			t.Errorf("%s: expected to spend %d, spent %d", id, expected, spent)
		}
		if gold != 17 {
			t.Errorf("%s: expected 17 gold left, got %d", id, gold)
		}
		if steps != id.MaxLevel()-1 || !u.AtMax(id) {
			t.Errorf("%s: expected max level after %d steps, got level %d", id, steps, u.Level(id))
		}
	}
}

func TestUpgradeToMaxStopsWhenGoldRunsOut(t *testing.T) {
	u := NewUpgrades()
	gold := 50 + 75 + 99 // third step costs 100
	steps, spent := u.UpgradeToMax(Damage, &gold)
	if steps != 2 || spent != 125 {
		t.Errorf("Expected 2 steps for 125 gold, got %d steps for %d", steps, spent)
	}
	if u.Level(Damage) != 3 || gold != 99 {
		t.Errorf("Expected level 3 with 99 gold, got level %d with %d", u.Level(Damage), gold)
	}
}

func TestSharedStateReadsCurrentLevels(t *testing.T) {
	u := NewUpgrades()
	u.SetLevel(FireRate, 15)
	u.SetLevel(Damage, 10)
	u.SetLevel(Range, 2)
	if u.Cooldown() != 500 || u.Damage() != 20 || math.Abs(u.Range()-165) > 1e-9 {
		t.Errorf("unexpected values: %v %v %v", u.Cooldown(), u.Damage(), u.Range())
	}
	u.Reset()
	for _, id := range Tracks {
		if u.Level(id) != 1 {
			t.Errorf("%s not reset", id)
		}
	}
}
