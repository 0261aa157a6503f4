package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	game "go-castle-defense/internal/app"
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/hud"
	"go-castle-defense/internal/types"
	"go-castle-defense/pkg/tilemap"
)

// Каждая клетка карты занимает две колонки терминала
const (
	cellWidth = 2
	hudLeft   = config.MapCols*cellWidth + 2
)

var (
	styleGrass      = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	stylePath       = tcell.StyleDefault.Background(tcell.ColorOlive)
	styleTree       = styleGrass.Foreground(tcell.ColorGreen)
	styleRock       = styleGrass.Foreground(tcell.ColorSilver)
	styleCastle     = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite)
	styleCastleHit  = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	styleTower      = styleGrass.Foreground(tcell.ColorAqua).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHint       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCursorOK   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleCursorBad  = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite)
)

var tierGlyphs = map[defs.Tier]rune{
	defs.TierBasic: 'o',
	defs.TierBig:   'O',
	defs.TierHuge:  '@',
}

var hintLines = []string{
	"space start wave   b build   arrows move   enter place",
	"1/2/3 upgrade   !/@/# upgrade to max   f speed   p pause   q quit",
}

type view struct {
	tileMap   *tilemap.TileMap
	formatter *hud.Formatter
}

func newView(tileMap *tilemap.TileMap, formatter *hud.Formatter) *view {
	return &view{tileMap: tileMap, formatter: formatter}
}

// draw renders one frame of s onto screen. It does not call Show.
func (v *view) draw(screen tcell.Screen, s *session) {
	screen.Clear()
	v.drawMap(screen, s.game.CastleFlash())
	v.drawEntities(screen, s.game)
	if s.placing {
		style := styleCursorBad
		if s.game.IsValidBuildLocation(s.cursor.Col, s.cursor.Row) {
			style = styleCursorOK
		}
		setCell(screen, s.cursor.Col, s.cursor.Row, '[', ']', style)
	}
	v.drawHUD(screen, s)
}

func (v *view) drawMap(screen tcell.Screen, flash float64) {
	m := v.tileMap
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			style := styleGrass
			if m.Tiles[row][col] == tilemap.PathTile {
				style = stylePath
			}
			setCell(screen, col, row, ' ', ' ', style)
		}
	}
	for _, d := range m.Decorations {
		glyph, style := '♣', styleTree
		if d.Kind == tilemap.Rock {
			glyph, style = '▲', styleRock
		}
		for dr := 0; dr < d.Size(); dr++ {
			for dc := 0; dc < d.Size(); dc++ {
				setCell(screen, d.Col+dc, d.Row+dr, glyph, ' ', style)
			}
		}
	}
	castle := styleCastle
	if flash > 0 {
		castle = styleCastleHit
	}
	for dr := 0; dr < 2; dr++ {
		for dc := 0; dc < 2; dc++ {
			setCell(screen, m.Castle.Col+dc, m.Castle.Row+dr, '█', '█', castle)
		}
	}
}

func (v *view) drawEntities(screen tcell.Screen, g *game.Game) {
	g.ECS.Towers.Each(func(_ types.EntityID, t *component.Tower) {
		setCell(screen, t.Col, t.Row, '╬', '╬', styleTower)
	})
	g.ECS.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if e.Finished {
			return
		}
		x, y := e.Center()
		col, row := pixelCell(x, y)
		glyph, ok := tierGlyphs[e.Tier]
		if !ok {
			glyph = 'o'
		}
		screen.SetContent(col*cellWidth, row, glyph, nil, healthStyle(e))
	})
	g.ECS.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		col, row := pixelCell(p.X, p.Y)
		screen.SetContent(col*cellWidth+1, row, '*', nil, styleProjectile)
	})
}

func (v *view) drawHUD(screen tcell.Screen, s *session) {
	g := s.game
	lines := v.formatter.StatusLines(hud.Status{
		Gold:     g.Gold,
		Lives:    g.Lives,
		Level:    g.Level(),
		Wave:     g.WaveNumber(),
		Towers:   g.ECS.Towers.Len(),
		TowerCap: g.TowerCap,
	}, g.WaveInProgress(), g.EnemiesLeft(), g.TowerCost())
	lines = append(lines, "")
	for i, t := range hud.Tracks(g.Upgrades) {
		lines = append(lines, string(rune('1'+i))+") "+v.formatter.TrackText(t))
	}
	if lead, ok := leadEnemy(g); ok {
		lines = append(lines, fmt.Sprintf("Lead: %s %d/%d", lead.Tier, lead.HealthPoints(), int(lead.MaxHealth)))
	}
	lines = append(lines, "", speedLabel(s.speed))
	switch {
	case g.IsComplete():
		lines = append(lines, "VICTORY! r restart, q quit")
	case g.IsGameOver():
		lines = append(lines, "GAME OVER. r restart, q quit")
	case s.paused:
		lines = append(lines, "PAUSED")
	case s.placing:
		lines = append(lines, "BUILD MODE")
	}
	for i, line := range lines {
		drawText(screen, hudLeft, i, line, styleHUD)
	}
	for i, line := range hintLines {
		drawText(screen, 0, v.tileMap.Rows+1+i, line, styleHint)
	}
}

// leadEnemy returns the live enemy closest to the castle.
func leadEnemy(g *game.Game) (*component.Enemy, bool) {
	var lead *component.Enemy
	g.ECS.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		if e.Finished {
			return
		}
		if lead == nil || e.DistanceToFinish() < lead.DistanceToFinish() {
			lead = e
		}
	})
	return lead, lead != nil
}

func speedLabel(speed int) string {
	return "Speed: x" + string(rune('0'+speed))
}

// healthStyle окрашивает врага по остатку здоровья
func healthStyle(e *component.Enemy) tcell.Style {
	base := stylePath.Bold(true)
	if e.MaxHealth <= 0 {
		return base.Foreground(tcell.ColorWhite)
	}
	frac := e.Health / e.MaxHealth
	switch {
	case frac > 0.6:
		return base.Foreground(tcell.ColorWhite)
	case frac > 0.3:
		return base.Foreground(tcell.ColorYellow)
	default:
		return base.Foreground(tcell.ColorRed)
	}
}

func pixelCell(x, y float64) (int, int) {
	return int(x) / config.TileSize, int(y) / config.TileSize
}

func setCell(screen tcell.Screen, col, row int, left, right rune, style tcell.Style) {
	screen.SetContent(col*cellWidth, row, left, nil, style)
	screen.SetContent(col*cellWidth+1, row, right, nil, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
