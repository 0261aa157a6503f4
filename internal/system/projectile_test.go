package system

import (
	"testing"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"
)

func addProjectile(ecs *entity.ECS, x, y float64, target types.EntityID, damage float64) *component.Projectile {
	p := &component.Projectile{
		Position: component.Position{X: x, Y: y},
		TargetID: target,
		Speed:    0.4,
		Damage:   damage,
	}
	ecs.Projectiles.Add(ecs.NewEntity(), p)
	return p
}

func TestProjectileMovesTowardTarget(t *testing.T) {
	ecs := entity.NewECS()
	target := addEnemy(ecs, testPath(), defs.TierBasic, 200, 0, 0, 30)
	p := addProjectile(ecs, 16, 16, target, 10)

	NewProjectileSystem(ecs, nil).Update(100) // 40 px
	if p.X != 56 || p.Y != 16 {
		t.Errorf("Expected (56,16), got (%v,%v)", p.X, p.Y)
	}
	if p.Finished {
		t.Error("projectile finished before reaching the target")
	}
}

func TestProjectileHitsWhenStepCoversDistance(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d)
	target := addEnemy(ecs, testPath(), defs.TierBasic, 100, 0, 0, 30)
	p := addProjectile(ecs, 76, 16, target, 10) // 40 px from the enemy center

	NewProjectileSystem(ecs, d).Update(100)
	e, _ := ecs.Enemies.Get(target)
	if !p.Finished || e.Health != 20 {
		t.Errorf("Expected a hit for 10, finished=%v health=%v", p.Finished, e.Health)
	}
	if rec.count(event.EnemyHit) != 1 {
		t.Errorf("Expected 1 hit event, got %d", rec.count(event.EnemyHit))
	}
}

func TestTwoProjectilesOnOneEnemySameFrame(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d)
	target := addEnemy(ecs, testPath(), defs.TierBasic, 100, 0, 0, 10)
	first := addProjectile(ecs, 116, 16, target, 10)
	second := addProjectile(ecs, 116, 16, target, 10)

	NewProjectileSystem(ecs, d).Update(16)

	e, _ := ecs.Enemies.Get(target)
	if e.Health != 0 || !e.Finished {
		t.Errorf("Expected killed enemy, health=%v finished=%v", e.Health, e.Finished)
	}
	if !first.Finished || !second.Finished {
		t.Error("Expected both projectiles finished")
	}
	if rec.count(event.EnemyHit) != 1 {
		t.Errorf("Expected exactly one hit, got %d", rec.count(event.EnemyHit))
	}
}

func TestProjectileExpiresWhenTargetGone(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := newRecorder(d)
	p := addProjectile(ecs, 0, 0, 999, 10)

	NewProjectileSystem(ecs, d).Update(16)
	if !p.Finished {
		t.Error("Expected projectile with a missing target to expire")
	}
	if len(rec.events) != 0 {
		t.Errorf("Expected no events, got %d", len(rec.events))
	}
}
