package system

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/types"
)

// testPath: 320 px east, then 320 px south.
func testPath() *component.Path {
	return component.NewPath([]component.Position{{X: 0, Y: 0}, {X: 320, Y: 0}, {X: 320, Y: 320}})
}

func addEnemy(ecs *entity.ECS, path *component.Path, tier defs.Tier, x, y float64, waypoint, health int) types.EntityID {
	e := NewEnemy(path, tier, 1)
	e.X, e.Y = x, y
	e.WaypointIndex = waypoint
	e.Health = float64(health)
	id := ecs.NewEntity()
	ecs.Enemies.Add(id, e)
	return id
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecorder(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.SubscribeAll(r,
		event.WaveStarted, event.WaveEnded, event.LevelComplete,
		event.EnemyHit, event.EnemyKilled, event.EnemyLeaked,
	)
	return r
}
