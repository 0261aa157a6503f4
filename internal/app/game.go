// internal/app/game.go
package app

import (
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/economy"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/event"
	"go-castle-defense/internal/interfaces"
	"go-castle-defense/internal/system"
	"go-castle-defense/internal/types"
	"go-castle-defense/internal/utils"
)

// Game holds the whole simulation state and drives one frame at a time.
type Game struct {
	ECS              *entity.ECS
	Path             *component.Path
	Site             interfaces.BuildSite
	Upgrades         *economy.Upgrades
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Session          string

	Gold     int
	Lives    int
	TowerCap int

	economy    config.EconomyConfig
	finalLevel int
	clock      interfaces.Clock
	logger     *zap.Logger

	castleFlash *gween.Tween
	flashValue  float64

	running  bool
	gameOver bool
	complete bool
}

var _ interfaces.Game = (*Game)(nil)

// NewGame creates a run on level cfg.Game.StartLevel. path is the shared
// enemy route and site decides where towers may stand.
func NewGame(cfg *config.Config, path *component.Path, site interfaces.BuildSite, logger *zap.Logger) *Game {
	if path == nil || path.Len() < 2 {
		panic("path needs at least two waypoints")
	}
	if cfg == nil {
		cfg = config.Defaults()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	session := uuid.New().String()
	logger = logger.With(zap.String("session", session))

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Game.Seed)

	g := &Game{
		ECS:              ecs,
		Path:             path,
		Site:             site,
		Upgrades:         economy.NewUpgrades(),
		MovementSystem:   system.NewMovementSystem(ecs),
		CombatSystem:     system.NewCombatSystem(ecs),
		ProjectileSystem: system.NewProjectileSystem(ecs, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(ecs, path, rng, eventDispatcher, logger),
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Session:          session,
		economy:          cfg.Economy,
		finalLevel:       cfg.Game.FinalLevel,
		clock:            ecs,
		logger:           logger,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelComplete, listener)

	g.InitLevel(cfg.Game.StartLevel)
	logger.Info("game created", zap.Int64("seed", rng.Seed()), zap.Int("final_level", g.finalLevel))
	return g
}

// SetClock replaces the cooldown time source. The default is the
// simulation clock.
func (g *Game) SetClock(clock interfaces.Clock) {
	if clock != nil {
		g.clock = clock
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelComplete:
		if info, ok := e.Data.(event.LevelInfo); ok {
			l.game.onLevelComplete(info.Level)
		}
	}
}

// Step advances the simulation by deltaTime ms: waves, towers,
// projectiles, enemies, then rewards, penalties and cleanup.
func (g *Game) Step(deltaTime float64) {
	if !g.running || deltaTime < 0 {
		return
	}
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	if !g.running {
		return
	}
	g.CombatSystem.Update(g.clock.Now(), g.Upgrades.Cooldown(), g.Upgrades.Damage(), g.Upgrades.Range())
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)

	g.reconcile()
	g.cleanupDestroyedEntities()
	g.updateCastleFlash(deltaTime)
}

// reconcile pays out every killed enemy and charges a life for every
// leaked one. It runs once per finished enemy because finished enemies are
// removed right after.
func (g *Game) reconcile() {
	g.ECS.Enemies.Each(func(id types.EntityID, e *component.Enemy) {
		switch {
		case e.Killed():
			g.Gold += e.Reward
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyInfo{ID: id, Tier: e.Tier, Reward: e.Reward},
			})
		case e.Leaked():
			g.Lives--
			g.startCastleFlash()
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyLeaked,
				Data: event.EnemyInfo{ID: id, Tier: e.Tier},
			})
			if g.Lives <= 0 && !g.gameOver {
				g.endGame()
			}
		}
	})
}

func (g *Game) cleanupDestroyedEntities() {
	g.ECS.Enemies.RemoveIf(func(_ types.EntityID, e *component.Enemy) bool { return e.Finished })
	g.ECS.Projectiles.RemoveIf(func(_ types.EntityID, p *component.Projectile) bool { return p.Finished })
}

func (g *Game) endGame() {
	g.gameOver = true
	g.running = false
	g.logger.Info("game over",
		zap.Int("level", g.ECS.Wave.Level),
		zap.Int("wave", g.ECS.Wave.Number),
		zap.Int("gold", g.Gold),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.LevelInfo{Level: g.ECS.Wave.Level},
	})
}

func (g *Game) startCastleFlash() {
	g.castleFlash = gween.New(1, 0, config.CastleFlashMillis, ease.Linear)
	g.flashValue = 1
}

func (g *Game) updateCastleFlash(deltaTime float64) {
	if g.castleFlash == nil {
		return
	}
	current, finished := g.castleFlash.Update(float32(deltaTime))
	g.flashValue = float64(current)
	if finished {
		g.castleFlash = nil
		g.flashValue = 0
	}
}

// CastleFlash returns the castle damage highlight in [0,1].
func (g *Game) CastleFlash() float64 {
	return g.flashValue
}

func (g *Game) Level() int { return g.ECS.Wave.Level }
func (g *Game) WaveNumber() int { return g.ECS.Wave.Number }
func (g *Game) WaveInProgress() bool { return g.ECS.Wave.InProgress() }
func (g *Game) Running() bool { return g.running }
func (g *Game) IsGameOver() bool { return g.gameOver }
func (g *Game) IsComplete() bool { return g.complete }
func (g *Game) GameTime() float64 { return g.ECS.GameTime }
func (g *Game) FinalLevel() int { return g.finalLevel }

// EnemiesLeft counts enemies still queued plus those on the field.
func (g *Game) EnemiesLeft() int {
	return len(g.ECS.Wave.Queue) + g.ECS.LiveEnemies()
}

// Logger returns the session logger.
func (g *Game) Logger() *zap.Logger {
	return g.logger
}
