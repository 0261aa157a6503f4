package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the runtime settings read from a TOML file.
type Config struct {
	Game    GameConfig    `toml:"game"`
	Economy EconomyConfig `toml:"economy"`
	Host    HostConfig    `toml:"host"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	StartLevel int   `toml:"start_level"`
	FinalLevel int   `toml:"final_level"` // 0 = endless
	Seed       int64 `toml:"seed"`        // 0 = seed from the clock
}

type EconomyConfig struct {
	StartingLives      int `toml:"starting_lives"`
	BaseMaxTowers      int `toml:"base_max_towers"`
	MaxTowersPerLevel  int `toml:"max_towers_per_level"`
	GoldLevel1         int `toml:"gold_level1"`
	GoldLevel2         int `toml:"gold_level2"`
	GoldLevel3         int `toml:"gold_level3"`
	GoldPerLevelAfter3 int `toml:"gold_per_level_after3"`
}

type HostConfig struct {
	MaxFrameMS float64 `toml:"max_frame_ms"`
	DefsDir    string  `toml:"defs_dir"`
	Audio      bool    `toml:"audio"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

// StartingGold returns the gold a run has at the start of a world level.
func (e EconomyConfig) StartingGold(level int) int {
	switch {
	case level >= 4:
		return e.GoldLevel3 + (level-3)*e.GoldPerLevelAfter3
	case level == 3:
		return e.GoldLevel3
	case level == 2:
		return e.GoldLevel2
	default:
		return e.GoldLevel1
	}
}

// MaxTowers returns the tower cap for a world level.
func (e EconomyConfig) MaxTowers(level int) int {
	return e.BaseMaxTowers + (level-1)*e.MaxTowersPerLevel
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.StartLevel < 1 {
		return nil, fmt.Errorf("parse config %s: start_level must be >= 1", path)
	}
	return cfg, nil
}

// Defaults returns the built-in settings.
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			StartLevel: 1,
		},
		Economy: EconomyConfig{
			StartingLives:      20,
			BaseMaxTowers:      15,
			MaxTowersPerLevel:  2,
			GoldLevel1:         150,
			GoldLevel2:         250,
			GoldLevel3:         350,
			GoldPerLevelAfter3: 50,
		},
		Host: HostConfig{
			MaxFrameMS: 100,
			DefsDir:    "assets/defs",
			Audio:      true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
