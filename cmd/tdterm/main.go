// Command tdterm runs the castle defense game in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	game "go-castle-defense/internal/app"
	"go-castle-defense/internal/audio"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/hud"
	"go-castle-defense/internal/logging"
	"go-castle-defense/pkg/tilemap"
)

const frameInterval = 33 * time.Millisecond

func main() {
	configPath := flag.String("config", envOr("CASTLE_TD_CONFIG", "config.toml"), "path to the TOML config")
	level := flag.Int("level", 0, "start on this world level instead of start_level")
	logFile := flag.String("log", "tdterm.log", "log file (the terminal is busy drawing)")
	flag.Parse()

	if err := run(*configPath, *level, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, level int, logFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, level, logFile)
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	enemies, waves, err := defs.LoadDir(cfg.Host.DefsDir)
	if err != nil {
		return err
	}
	logger.Info("definitions loaded", zap.Int("enemy_overrides", enemies), zap.Int("wave_entries", waves))

	var cues *audio.CuePlayer
	if cfg.Host.Audio {
		cues = audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			// без звука играть можно
			logger.Warn("audio disabled", zap.Error(err))
			cues = nil
		} else {
			defer cues.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	tileMap := tilemap.NewTileMap()
	newGame := func() *game.Game {
		g := game.NewGame(cfg, tileMap.Path(), tileMap, logger)
		if cues != nil {
			cues.Listen(g.EventDispatcher)
		}
		return g
	}
	s := newSession(tileMap, newGame)
	v := newView(tileMap, hud.NewFormatter(language.English))
	loop(screen, s, v, cfg.Host.MaxFrameMS)
	return nil
}

// applyFlags lays command-line values over the loaded config. Zero values
// keep what the config says.
func applyFlags(cfg *config.Config, level int, logFile string) {
	if level > 0 {
		cfg.Game.StartLevel = level
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = logFile
	}
}

// loop drives the session until the player quits.
func loop(screen tcell.Screen, s *session, v *view, maxFrameMS float64) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		case now := <-ticker.C:
			dt := float64(now.Sub(last).Microseconds()) / 1000
			if dt > maxFrameMS {
				dt = maxFrameMS
			}
			last = now
			s.step(dt)
			v.draw(screen, s)
			screen.Show()
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
