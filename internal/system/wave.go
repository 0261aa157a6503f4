// internal/system/wave.go
package system

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/utils"
)

const (
	// Составы волн по номеру
	firstMixedWave    = 5
	lastMixedWave     = 6
	bigSurgeWave      = 7
	bigSurgeInserts   = 5
	firstLateWave     = 8
	mixedBigInserts   = 3
	mixedHugeChance   = 0.5
	lateBasicPercent  = 50.0
	lateBigPercent    = 30.0
	latePercentStep   = 7.5
	lateMinBasicShare = 20.0
)

// WaveSystem owns the wave state machine: idle, spawning, draining.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *component.Path
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewWaveSystem(ecs *entity.ECS, path *component.Path, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *zap.Logger) *WaveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaveSystem{
		ecs:             ecs,
		path:            path,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger.Named("wave"),
	}
}

// StartWave builds the queue for the current wave number and starts
// spawning. It does nothing and returns false while a wave is in progress.
func (s *WaveSystem) StartWave() bool {
	wave := s.ecs.Wave
	if wave.InProgress() {
		return false
	}
	waveDef := defs.WaveFor(wave.Number)

	wave.Queue = s.BuildQueue(wave.Number, waveDef.Count)
	wave.SpawnInterval = float64(waveDef.SpawnInterval.Milliseconds())
	wave.SpawnTimer = 0 // первый враг появляется сразу
	wave.Spawned = 0
	wave.Phase = component.WaveSpawning

	s.logger.Info("wave started",
		zap.Int("level", wave.Level),
		zap.Int("wave", wave.Number),
		zap.Int("enemies", len(wave.Queue)),
		zap.Float64("interval_ms", wave.SpawnInterval),
	)
	s.dispatch(event.WaveStarted, event.WaveInfo{Level: wave.Level, Wave: wave.Number, QueueSize: len(wave.Queue)})
	return true
}

// BuildQueue composes the spawn queue of a wave with total enemies.
func (s *WaveSystem) BuildQueue(waveNumber, total int) []defs.Tier {
	switch {
	case waveNumber < firstMixedWave:
		return repeatTier(defs.TierBasic, total)

	case waveNumber <= lastMixedWave:
		queue := repeatTier(defs.TierBasic, total)
		for i := 0; i < mixedBigInserts; i++ {
			queue = s.insertRandom(queue, defs.TierBig)
		}
		if s.rng.Chance(mixedHugeChance) {
			queue = s.insertRandom(queue, defs.TierHuge)
		}
		return queue

	case waveNumber == bigSurgeWave:
		queue := repeatTier(defs.TierBasic, total)
		for i := 0; i < bigSurgeInserts; i++ {
			queue = s.insertRandom(queue, defs.TierBig)
		}
		return queue
	}

	// С 8-й волны доля базовых врагов падает на 7.5% за волну
	shift := float64(max(0, waveNumber-firstLateWave)) * latePercentStep
	basicPct := math.Max(lateMinBasicShare, lateBasicPercent-shift)

	// Огромные забирают остаток после округления
	basic := int(math.Floor(float64(total) * (basicPct / 100)))
	big := int(math.Floor(float64(total) * (lateBigPercent / 100)))
	huge := total - basic - big

	queue := make([]defs.Tier, 0, total)
	queue = append(queue, repeatTier(defs.TierBasic, basic)...)
	queue = append(queue, repeatTier(defs.TierBig, big)...)
	queue = append(queue, repeatTier(defs.TierHuge, huge)...)
	s.rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	return queue
}

func (s *WaveSystem) insertRandom(queue []defs.Tier, tier defs.Tier) []defs.Tier {
	idx := 0
	if len(queue) > 0 {
		idx = s.rng.Intn(len(queue))
	}
	return slices.Insert(queue, idx, tier)
}

func repeatTier(tier defs.Tier, n int) []defs.Tier {
	if n <= 0 {
		return []defs.Tier{}
	}
	queue := make([]defs.Tier, n)
	for i := range queue {
		queue[i] = tier
	}
	return queue
}

// Update advances the wave by deltaTime ms.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	switch wave.Phase {
	case component.WaveSpawning:
		wave.SpawnTimer -= deltaTime
		if wave.SpawnTimer <= 0 {
			s.spawnEnemy(wave)
			wave.SpawnTimer = wave.SpawnInterval
		}
		if len(wave.Queue) == 0 {
			wave.Phase = component.WaveDraining
		}
	case component.WaveDraining:
		if s.ecs.LiveEnemies() == 0 {
			s.completeWave(wave)
		}
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	if len(wave.Queue) == 0 {
		return
	}
	tier := wave.Queue[0]
	wave.Queue = wave.Queue[1:]

	id := s.ecs.NewEntity()
	s.ecs.Enemies.Add(id, NewEnemy(s.path, tier, wave.Level))
	wave.Spawned++
	s.logger.Debug("enemy spawned",
		zap.Uint64("id", uint64(id)),
		zap.String("tier", string(tier)),
		zap.Int("left", len(wave.Queue)),
	)
}

func (s *WaveSystem) completeWave(wave *component.Wave) {
	finished := event.WaveInfo{Level: wave.Level, Wave: wave.Number}
	wave.Phase = component.WaveIdle
	wave.Queue = nil

	levelDone := wave.Number >= defs.WavesPerLevel
	if levelDone {
		wave.Level++
		wave.Number = 1
	} else {
		wave.Number++
	}

	s.logger.Info("wave ended", zap.Int("level", finished.Level), zap.Int("wave", finished.Wave))
	s.dispatch(event.WaveEnded, finished)
	if levelDone {
		s.logger.Info("level complete", zap.Int("next_level", wave.Level))
		s.dispatch(event.LevelComplete, event.LevelInfo{Level: wave.Level})
	}
}

// SetWave jumps to a wave number of the current level and cancels any
// wave in progress. Enemies already on the field stay.
func (s *WaveSystem) SetWave(number int) {
	number = min(max(number, 1), defs.WavesPerLevel)
	wave := s.ecs.Wave
	wave.Number = number
	wave.Phase = component.WaveIdle
	wave.Queue = nil
	wave.SpawnTimer = 0
	wave.Spawned = 0
}

// Reset puts the manager on wave 1 of level, idle.
func (s *WaveSystem) Reset(level int) {
	s.ecs.Wave.Level = max(level, 1)
	s.SetWave(1)
}

// SpawnNow puts one enemy of tier on the path start at the current level,
// outside the wave queue.
func (s *WaveSystem) SpawnNow(tier defs.Tier) {
	id := s.ecs.NewEntity()
	s.ecs.Enemies.Add(id, NewEnemy(s.path, tier, s.ecs.Wave.Level))
	s.logger.Debug("enemy spawned out of wave", zap.String("tier", string(tier)))
}

func (s *WaveSystem) dispatch(t event.EventType, data interface{}) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
