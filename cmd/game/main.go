// cmd/game/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"go-castle-defense/internal/audio"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/logging"
	"go-castle-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxFrameMS     float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	// Ограничиваем шаг, чтобы после сворачивания окна не было рывка
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	if deltaTime > a.maxFrameMS {
		deltaTime = a.maxFrameMS
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", envOr("CASTLE_TD_CONFIG", "config.toml"), "path to the TOML config")
	level := flag.Int("level", 0, "start directly on a level, skipping level select")
	flag.Parse()

	if err := run(*configPath, *level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, level int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	enemies, waves, err := defs.LoadDir(cfg.Host.DefsDir)
	if err != nil {
		return err
	}
	logger.Info("definitions loaded",
		zap.String("dir", cfg.Host.DefsDir),
		zap.Int("enemy_overrides", enemies),
		zap.Int("wave_entries", waves),
	)

	env := &state.Env{
		Config: cfg,
		Logger: logger,
		Face:   basicfont.Face7x13,
	}
	if cfg.Host.Audio {
		player := audio.NewCuePlayer()
		if err := player.Initialize(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			env.Audio = player
			defer player.Cleanup()
		}
	}

	sm := state.NewStateMachine(env)
	if level > 0 {
		sm.SetState(state.NewGameState(sm, level))
	} else {
		sm.SetState(state.NewLevelSelectState(sm))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxFrameMS:     cfg.Host.MaxFrameMS,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Castle Defense")
	return ebiten.RunGame(app)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
