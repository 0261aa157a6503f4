// pkg/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
	"go-castle-defense/internal/entity"
	"go-castle-defense/internal/types"
	"go-castle-defense/pkg/tilemap"
)

// MapRenderer draws the battlefield and everything on it.
type MapRenderer struct {
	tileMap  *tilemap.TileMap
	mapImage *ebiten.Image // статичный фон, рисуется один раз
}

func NewMapRenderer(tileMap *tilemap.TileMap) *MapRenderer {
	return &MapRenderer{tileMap: tileMap}
}

// DrawMap draws the cached static background.
func (r *MapRenderer) DrawMap(screen *ebiten.Image) {
	if r.mapImage == nil {
		r.renderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)
}

func (r *MapRenderer) renderMapImage() {
	m := r.tileMap
	img := ebiten.NewImage(config.MapWidth, config.MapHeight)
	ts := float32(config.TileSize)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			clr := config.GrassColor
			if m.IsPath(col, row) {
				clr = config.PathColor
			}
			vector.DrawFilledRect(img, float32(col)*ts, float32(row)*ts, ts, ts, clr, false)
		}
	}

	for _, d := range m.Decorations {
		x, y := float32(d.Col)*ts, float32(d.Row)*ts
		size := float32(d.Size()) * ts
		switch d.Kind {
		case tilemap.Tree:
			vector.DrawFilledCircle(img, x+size/2, y+size/2, size/2-2, config.TreeColor, true)
			vector.StrokeCircle(img, x+size/2, y+size/2, size/2-2, 2, DarkenColor(config.TreeColor, 0.6), true)
		case tilemap.Rock:
			vector.DrawFilledCircle(img, x+size/2, y+size/2, size/2-3, config.RockColor, true)
		}
	}

	cx, cy := float32(m.Castle.Col)*ts, float32(m.Castle.Row)*ts
	castleSize := float32(config.CastleSize) * ts
	vector.DrawFilledRect(img, cx, cy, castleSize, castleSize, config.CastleColor, false)
	vector.StrokeRect(img, cx, cy, castleSize, castleSize, 2, DarkenColor(config.CastleColor, 0.5), false)

	r.mapImage = img
}

// DrawBuildGrid highlights every cell where valid reports a tower may go.
func (r *MapRenderer) DrawBuildGrid(screen *ebiten.Image, valid func(col, row int) bool) {
	ts := float32(config.TileSize)
	for row := 0; row < r.tileMap.Rows; row++ {
		for col := 0; col < r.tileMap.Cols; col++ {
			if !valid(col, row) {
				continue
			}
			x, y := float32(col)*ts, float32(row)*ts
			vector.DrawFilledRect(screen, x, y, ts, ts, config.BuildableColor, false)
			vector.StrokeRect(screen, x, y, ts, ts, 1, config.BuildableColor, false)
		}
	}
}

// DrawCastleFlash tints the castle red with strength in [0,1].
func (r *MapRenderer) DrawCastleFlash(screen *ebiten.Image, strength float64) {
	if strength <= 0 {
		return
	}
	ts := float32(config.TileSize)
	size := float32(config.CastleSize) * ts
	clr := WithAlpha(config.CastleFlashColor, strength*0.5)
	vector.DrawFilledRect(screen, float32(r.tileMap.Castle.Col)*ts, float32(r.tileMap.Castle.Row)*ts, size, size, clr, false)
}

// DrawEntities draws towers, enemies, projectiles and then health bars on
// top, so bars stay visible over the build grid.
func (r *MapRenderer) DrawEntities(screen *ebiten.Image, ecs *entity.ECS, rangeRadius float64, showRange bool) {
	ecs.Towers.Each(func(_ types.EntityID, t *component.Tower) {
		drawTower(screen, t, rangeRadius, showRange)
	})
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		drawEnemyBody(screen, e)
	})
	ecs.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, config.ProjectileColor, true)
	})
	ecs.Enemies.Each(func(_ types.EntityID, e *component.Enemy) {
		drawHealthBar(screen, e)
	})
}

func drawTower(screen *ebiten.Image, t *component.Tower, rangeRadius float64, showRange bool) {
	x, y := t.Center()
	cx, cy := float32(x), float32(y)
	if showRange {
		vector.DrawFilledCircle(screen, cx, cy, float32(rangeRadius), config.RangeColor, true)
	}
	// Башня рисуется крупнее клетки
	radius := float32(config.TowerDrawSize) / 3
	vector.DrawFilledCircle(screen, cx, cy, radius, config.TowerColor, true)
	vector.StrokeCircle(screen, cx, cy, radius, 1.5, config.TowerStrokeColor, true)
	vector.DrawFilledRect(screen, cx-3, cy-radius, 6, radius, DarkenColor(config.TowerColor, 0.6), true)
}

func enemyColor(e *component.Enemy) color.RGBA {
	if c, ok := config.EnemyColors[string(e.Tier)]; ok {
		return c
	}
	return config.EnemyColors["basic"]
}

func drawEnemyBody(screen *ebiten.Image, e *component.Enemy) {
	x, y := e.Center()
	radius := float32(e.Size) / 2
	clr := enemyColor(e)
	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, clr, true)
	vector.StrokeCircle(screen, float32(x), float32(y), radius, 1.5, DarkenColor(clr, 0.5), true)
}

func drawHealthBar(screen *ebiten.Image, e *component.Enemy) {
	if e.MaxHealth <= 0 {
		return
	}
	x, y := e.Center()
	width := float32(e.Size)
	left := float32(x) - width/2
	top := float32(y) - float32(e.Size)/2 - config.HealthBarOffset
	fill := width * float32(e.Health) / float32(e.MaxHealth)

	vector.DrawFilledRect(screen, left, top, width, config.HealthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, left, top, fill, config.HealthBarHeight, config.HealthFillColor, false)
}
