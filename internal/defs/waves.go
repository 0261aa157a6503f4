package defs

import "time"

const (
	// WavesPerLevel is how many waves a level runs before the level advances.
	WavesPerLevel = 12
	// MaxWaveSize caps the number of enemies in any single wave.
	MaxWaveSize = 50

	fallbackBaseCount     = 40
	fallbackCountPerWave  = 5
	fallbackSpawnInterval = 400 * time.Millisecond
)

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Count         int           // Количество врагов в волне (до ограничения MaxWaveSize)
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// WavePatterns holds the explicit wave table, keyed by wave number.
var WavePatterns = DefaultWavePatterns()

// DefaultWavePatterns returns the built-in wave table.
func DefaultWavePatterns() map[int]WaveDefinition {
	return map[int]WaveDefinition{
		1: {Count: 5, SpawnInterval: 1500 * time.Millisecond},
		2: {Count: 10, SpawnInterval: 1200 * time.Millisecond},
		3: {Count: 15, SpawnInterval: 1000 * time.Millisecond},
		4: {Count: 25, SpawnInterval: 800 * time.Millisecond},
		5: {Count: 50, SpawnInterval: 500 * time.Millisecond},
	}
}

// WaveFor returns the wave definition for a wave number. Waves without an
// explicit entry use the derived formula. The count is capped at MaxWaveSize.
func WaveFor(waveNumber int) WaveDefinition {
	def, ok := WavePatterns[waveNumber]
	if !ok {
		def = WaveDefinition{
			Count:         fallbackBaseCount + fallbackCountPerWave*waveNumber,
			SpawnInterval: fallbackSpawnInterval,
		}
	}
	if def.Count > MaxWaveSize {
		def.Count = MaxWaveSize
	}
	return def
}
