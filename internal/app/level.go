package app

import (
	"go.uber.org/zap"

	"go-castle-defense/internal/event"
)

// InitLevel starts a fresh run on level n. Any state of a previous run is
// discarded and no LevelComplete is emitted.
func (g *Game) InitLevel(level int) {
	if level < 1 {
		level = 1
	}
	g.resetForLevel(level)
	g.gameOver = false
	g.complete = false
	g.running = true
	g.logger.Info("level started",
		zap.Int("level", level),
		zap.Int("gold", g.Gold),
		zap.Int("tower_cap", g.TowerCap),
	)
}

// onLevelComplete runs after the last wave of a level. The wave manager
// has already moved to newLevel.
func (g *Game) onLevelComplete(newLevel int) {
	if g.finalLevel > 0 && newLevel > g.finalLevel {
		g.complete = true
		g.running = false
		g.logger.Info("game complete", zap.Int("final_level", g.finalLevel), zap.Int("gold", g.Gold))
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameComplete,
			Data: event.LevelInfo{Level: g.finalLevel},
		})
		return
	}
	g.resetForLevel(newLevel)
	g.logger.Info("level transition",
		zap.Int("level", newLevel),
		zap.Int("gold", g.Gold),
		zap.Int("tower_cap", g.TowerCap),
	)
}

// resetForLevel clears the field (towers included) and restores the
// per-level economy.
func (g *Game) resetForLevel(level int) {
	g.ECS.ClearField()
	g.WaveSystem.Reset(level)
	g.Upgrades.Reset()
	g.Gold = g.economy.StartingGold(level)
	g.Lives = g.economy.StartingLives
	g.TowerCap = g.economy.MaxTowers(level)
	g.castleFlash = nil
	g.flashValue = 0
}
