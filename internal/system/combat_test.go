package system

import (
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/economy"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
)

// Tower at (3,1): center (112,48).
func addTower(ecs *entity.ECS, col, row int) *component.Tower {
	tw := &component.Tower{Col: col, Row: row}
	ecs.Towers.Add(ecs.NewEntity(), tw)
	return tw
}

func TestFindTargetPrefersLowerHealth(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	addEnemy(ecs, path, defs.TierBasic, 100, 0, 0, 30)
	weak := addEnemy(ecs, path, defs.TierBasic, 60, 0, 0, 10)

	id, ok := FindTarget(ecs, tw, 150)
	if !ok || id != weak {
		t.Errorf("Expected weakest enemy %d, got %d (%v)", weak, id, ok)
	}
}

func TestFindTargetPrefersCloserToFinishOnEqualHealth(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	addEnemy(ecs, path, defs.TierBasic, 60, 0, 0, 30)
	ahead := addEnemy(ecs, path, defs.TierBasic, 120, 0, 0, 30)

	id, ok := FindTarget(ecs, tw, 150)
	if !ok || id != ahead {
		t.Errorf("Expected leading enemy %d, got %d", ahead, id)
	}
}

func TestFindTargetEscapePriorityBeatsHealth(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 9, 1) // center (304,48)
	addEnemy(ecs, path, defs.TierBasic, 250, 0, 0, 1)
	// 360 of 640 px traveled: past the escape share
	runner := addEnemy(ecs, path, defs.TierBig, 320, 40, 1, 50)

	id, ok := FindTarget(ecs, tw, 150)
	if !ok || id != runner {
		t.Errorf("Expected escaping big enemy %d, got %d", runner, id)
	}

	// Basic enemies never get escape priority.
	ecs2 := entity.NewECS()
	tw2 := addTower(ecs2, 9, 1)
	weak := addEnemy(ecs2, path, defs.TierBasic, 250, 0, 0, 1)
	addEnemy(ecs2, path, defs.TierBasic, 320, 40, 1, 50)
	if id, _ := FindTarget(ecs2, tw2, 150); id != weak {
		t.Errorf("Expected weakest basic enemy %d, got %d", weak, id)
	}
}

func TestFindTargetFullTieGoesToFirstSpawned(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	first := addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 30)
	addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 30)

	for i := 0; i < 5; i++ {
		if id, _ := FindTarget(ecs, tw, 150); id != first {
			t.Fatalf("Expected %d on every call, got %d", first, id)
		}
	}
}

func TestFindTargetRangeIsInclusive(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	// Enemy center (262,48): exactly 150 px from the tower center.
	edge := addEnemy(ecs, path, defs.TierBasic, 246, 32, 0, 30)

	if id, ok := FindTarget(ecs, tw, 150); !ok || id != edge {
		t.Errorf("Expected enemy on the range edge to be targeted")
	}
	if _, ok := FindTarget(ecs, tw, 149.9); ok {
		t.Error("Expected no target just outside range")
	}
}

func TestFindTargetSkipsFinishedEnemies(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	id := addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 1)
	e, _ := ecs.Enemies.Get(id)
	e.Finished = true

	if _, ok := FindTarget(ecs, tw, 150); ok {
		t.Error("finished enemy was targeted")
	}
}

func TestCombatCooldownGate(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	tw := addTower(ecs, 3, 1)
	addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 30)
	combat := NewCombatSystem(ecs)

	if shots := combat.Update(0, 1000, 10, 150); shots != 1 {
		t.Fatalf("Expected a fresh tower to fire at once, got %d shots", shots)
	}
	if shots := combat.Update(999, 1000, 10, 150); shots != 0 {
		t.Errorf("Expected no shot inside the cooldown, got %d", shots)
	}
	if shots := combat.Update(1000, 1000, 10, 150); shots != 1 {
		t.Errorf("Expected a shot when the cooldown elapses, got %d", shots)
	}
	if ecs.Projectiles.Len() != 2 {
		t.Errorf("Expected 2 projectiles, got %d", ecs.Projectiles.Len())
	}

	// Без цели время выстрела не меняется.
	ecs.Enemies.Clear()
	combat.Update(5000, 1000, 10, 150)
	if tw.LastShotTime != 1000 {
		t.Errorf("Expected last shot time to stay 1000, got %v", tw.LastShotTime)
	}
}

func TestProjectileSpawnsAtTowerCenterWithExactDamage(t *testing.T) {
	ecs := entity.NewECS()
	path := testPath()
	addTower(ecs, 3, 1)
	target := addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 30)

	NewCombatSystem(ecs).Update(0, 2000, 12.5, 150)

	var proj *component.Projectile
	ecs.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) { proj = p })
	if proj == nil {
		t.Fatal("no projectile created")
	}
	if proj.X != 112 || proj.Y != 48 {
		t.Errorf("Expected projectile at (112,48), got (%v,%v)", proj.X, proj.Y)
	}
	if proj.Damage != 12.5 {
		t.Errorf("Expected damage 12.5, got %v", proj.Damage)
	}
	if proj.TargetID != target {
		t.Errorf("Expected target %d, got %d", target, proj.TargetID)
	}
}

// Урон 8-го уровня дробный (17.78): огромному врагу 3-го уровня (180 hp)
// нужно 11 попаданий, а не 10, как при округлении до 18.
func TestFractionalDamageKeepsHitsToKill(t *testing.T) {
	u := economy.NewUpgrades()
	u.SetLevel(economy.Damage, 8)

	ecs := entity.NewECS()
	path := testPath()
	addTower(ecs, 3, 1)
	addEnemy(ecs, path, defs.TierBasic, 80, 0, 0, 30)
	if shots := NewCombatSystem(ecs).Update(0, u.Cooldown(), u.Damage(), u.Range()); shots != 1 {
		t.Fatalf("Expected one shot, got %d", shots)
	}
	var proj *component.Projectile
	ecs.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) { proj = p })
	if proj.Damage != u.Damage() {
		t.Fatalf("Expected damage %v, got %v", u.Damage(), proj.Damage)
	}

	huge := NewEnemy(path, defs.TierHuge, 3)
	hits := 0
	for !huge.Finished && hits < 100 {
		huge.TakeDamage(proj.Damage)
		hits++
	}
	if hits != 11 {
		t.Errorf("Expected 11 hits to kill 180 hp at %v damage, got %d", proj.Damage, hits)
	}
}
