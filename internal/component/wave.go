package component

import "go-castle-defense/internal/defs"

// WavePhase is the explicit state of the wave manager.
type WavePhase int

const (
	WaveIdle     WavePhase = iota // no wave in progress
	WaveSpawning                  // queue non-empty, emitting on a timer
	WaveDraining                  // queue empty, waiting for the field to clear
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	}
	return "unknown"
}

// Wave хранит состояние менеджера волн.
type Wave struct {
	Level         int // мировой уровень
	Number        int // номер волны внутри уровня, 1..WavesPerLevel
	Phase         WavePhase
	Queue         []defs.Tier // очередь появления, старшие первыми
	SpawnInterval float64     // мс
	SpawnTimer    float64     // мс до следующего появления
	Spawned       int
}

// InProgress is true while a wave is spawning or draining.
func (w *Wave) InProgress() bool {
	return w.Phase != WaveIdle
}
