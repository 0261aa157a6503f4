// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/language"

	game "go-castle-defense/internal/app"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/economy"
	"go-castle-defense/internal/hud"
	"go-castle-defense/internal/ui"
	"go-castle-defense/pkg/render"
	"go-castle-defense/pkg/tilemap"
)

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	tileMap   *tilemap.TileMap
	renderer  *render.MapRenderer
	panel     *ui.SidePanel
	formatter *hud.Formatter
	placing   bool
	debug     bool
}

func NewGameState(sm *StateMachine, level int) *GameState {
	tileMap := tilemap.NewTileMap()
	cfg := *sm.Env.Config
	cfg.Game.StartLevel = level
	gameLogic := game.NewGame(&cfg, tileMap.Path(), tileMap, sm.Env.Logger)
	if sm.Env.Audio != nil {
		sm.Env.Audio.Listen(gameLogic.EventDispatcher)
	}

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		tileMap:   tileMap,
		renderer:  render.NewMapRenderer(tileMap),
		panel:     ui.NewSidePanel(sm.Env.Face),
		formatter: hud.NewFormatter(language.English),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if !g.game.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.sm.SetState(NewLevelSelectState(g.sm))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= config.MapWidth {
			if g.handlePanelClick(x, y) {
				return
			}
		} else {
			g.handleMapClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.placing = false
	}

	g.game.Step(deltaTime * g.panel.Speed.Multiplier())
}

func (g *GameState) handleKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for i, key := range upgradeKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if shift {
			g.game.UpgradeToMax(economy.Tracks[i])
		} else {
			g.game.Upgrade(economy.Tracks[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.placing = !g.placing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.panel.Speed.ToggleState()
	}

	// Отладка: F3 включает, затем F5-F7 спавнят врагов, F8 добавляет золото,
	// F9 поднимает все улучшения до максимума
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if !g.debug {
		return
	}
	debugTiers := map[ebiten.Key]defs.Tier{
		ebiten.KeyF5: defs.TierBasic,
		ebiten.KeyF6: defs.TierBig,
		ebiten.KeyF7: defs.TierHuge,
	}
	for key, tier := range debugTiers {
		if inpututil.IsKeyJustPressed(key) {
			g.game.DebugSpawn(tier)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		g.game.DebugAddGold(1000)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		for _, track := range economy.Tracks {
			g.game.DebugSetUpgrade(track, track.MaxLevel())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.game.DebugSetWave(g.game.WaveNumber() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.game.DebugSetWave(g.game.WaveNumber() - 1)
	}
}

// handlePanelClick returns true when the click left this state.
func (g *GameState) handlePanelClick(x, y int) bool {
	hit := g.panel.HitTest(x, y)
	switch hit.Action {
	case ui.ActionStartWave:
		g.game.StartWave()
	case ui.ActionToggleBuild:
		g.placing = !g.placing
	case ui.ActionUpgrade:
		g.game.Upgrade(hit.Track)
	case ui.ActionUpgradeMax:
		g.game.UpgradeToMax(hit.Track)
	case ui.ActionSpeed:
		g.panel.Speed.ToggleState()
	case ui.ActionPause:
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	}
	return false
}

func (g *GameState) handleMapClick(x, y int) {
	if !g.placing {
		return
	}
	col, row := x/config.TileSize, y/config.TileSize
	if g.game.BuildTower(col, row) && (!g.game.CanBuildMore() || g.game.Gold < g.game.TowerCost()) {
		g.placing = false
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.DrawMap(screen)
	if g.placing {
		g.renderer.DrawBuildGrid(screen, g.game.IsValidBuildLocation)
	}
	g.renderer.DrawEntities(screen, g.game.ECS, g.game.Upgrades.Range(), g.placing)
	g.renderer.DrawCastleFlash(screen, g.game.CastleFlash())

	status := g.formatter.StatusLines(hud.Status{
		Gold:     g.game.Gold,
		Lives:    g.game.Lives,
		Level:    g.game.Level(),
		Wave:     g.game.WaveNumber(),
		Towers:   g.game.ECS.Towers.Len(),
		TowerCap: g.game.TowerCap,
	}, g.game.WaveInProgress(), g.game.EnemiesLeft(), g.game.TowerCost())
	canBuild := g.game.CanBuildMore() && g.game.Gold >= g.game.TowerCost()
	g.panel.Draw(screen, status, hud.Tracks(g.game.Upgrades), g.formatter, g.game.Gold,
		!g.game.WaveInProgress(), canBuild, g.placing)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, "DEBUG: F5-F7 spawn, F8 gold, F9 max upgrades, PgUp/PgDn wave", 4, config.ScreenHeight-16)
	}
	if !g.game.Running() {
		g.drawEndScreen(screen)
	}
}

func (g *GameState) drawEndScreen(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 200}, false)
	msg := "GAME OVER"
	if g.game.IsComplete() {
		msg = "VICTORY!"
	}
	face := g.sm.Env.Face
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
	hint := "Press Enter"
	bounds = text.BoundString(face, hint)
	text.Draw(screen, hint, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2+24, config.TextLightColor)
}

func (g *GameState) Exit() {}
