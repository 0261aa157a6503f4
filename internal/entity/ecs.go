// internal/entity/ecs.go
package entity

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/types"
)

// ECS owns every shared collection of the simulation. Systems receive it
// by reference for the frame being stepped.
type ECS struct {
	GameTime    float64 // мс симуляции с начала запуска
	NextID      types.EntityID
	Enemies     *Store[component.Enemy]
	Towers      *Store[component.Tower]
	Projectiles *Store[component.Projectile]
	Wave        *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     NewStore[component.Enemy](),
		Towers:      NewStore[component.Tower](),
		Projectiles: NewStore[component.Projectile](),
		Wave: &component.Wave{
			Level:  1,
			Number: 1,
			Phase:  component.WaveIdle,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Now implements interfaces.Clock with simulation time.
func (ecs *ECS) Now() float64 {
	return ecs.GameTime
}

// LiveEnemies counts enemies that have not finished yet.
func (ecs *ECS) LiveEnemies() int {
	n := 0
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if !e.Finished {
			n++
		}
	})
	return n
}

// TowerAt returns the tower occupying a grid cell, if any.
func (ecs *ECS) TowerAt(col, row int) (types.EntityID, bool) {
	var found types.EntityID
	ecs.Towers.Each(func(id types.EntityID, t *component.Tower) {
		if found == 0 && t.Col == col && t.Row == row {
			found = id
		}
	})
	return found, found != 0
}

// ClearField removes enemies, projectiles and towers.
func (ecs *ECS) ClearField() {
	ecs.Enemies.Clear()
	ecs.Projectiles.Clear()
	ecs.Towers.Clear()
}
