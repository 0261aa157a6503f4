// internal/config/config.go
package config

import "image/color"

const (
	TileSize      = 32
	HalfTile      = TileSize / 2
	MapCols       = 25
	MapRows       = 18
	MapWidth      = MapCols * TileSize
	MapHeight     = MapRows * TileSize
	HUDWidth      = 240
	ScreenWidth   = MapWidth + HUDWidth
	ScreenHeight  = MapHeight
	TowerDrawSize = 48

	ProjectileSpeed     = 0.4  // px per ms
	ProjectileHitRadius = 10.0 // px
	ProjectileRadius    = 4.0
	WaypointSnapRadius  = 2.0 // px

	// EscapePriorityTraveled is the share of the path a big/huge enemy must
	// have covered before towers prioritise it.
	EscapePriorityTraveled = 0.55

	CastleCol         = 24
	CastleRow         = 6
	CastleSize        = 2 // tiles
	CastleFlashMillis = 500

	HealthBarHeight = 5
	HealthBarOffset = 10
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GrassColor       = color.RGBA{70, 120, 70, 255}
	PathColor        = color.RGBA{170, 140, 90, 255}
	TreeColor        = color.RGBA{30, 80, 40, 255}
	RockColor        = color.RGBA{110, 110, 110, 255}
	CastleColor      = color.RGBA{150, 150, 170, 255}
	CastleFlashColor = color.RGBA{231, 76, 60, 255}
	BuildableColor   = color.RGBA{46, 204, 113, 80}
	RangeColor       = color.RGBA{46, 204, 113, 40}
	TowerColor       = color.RGBA{60, 100, 200, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{241, 196, 15, 255}
	HealthBackColor  = color.RGBA{200, 30, 30, 255}
	HealthFillColor  = color.RGBA{30, 200, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{30, 30, 45, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonOffColor   = color.RGBA{80, 80, 80, 220}
	EnemyColors      = map[string]color.RGBA{
		"basic": {90, 200, 90, 255},
		"big":   {220, 140, 40, 255},
		"huge":  {160, 40, 200, 255},
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
