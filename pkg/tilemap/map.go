// pkg/tilemap/map.go
package tilemap

import (
	"go-castle-defense/internal/component"
	"go-castle-defense/internal/config"
)

type TileKind uint8

const (
	Grass TileKind = iota
	PathTile
)

// Cell — координаты клетки сетки
type Cell struct {
	Col, Row int
}

type DecorationKind uint8

const (
	Tree DecorationKind = iota
	Rock
)

// Decoration is a blocking scenery object; Col/Row is its top-left cell.
type Decoration struct {
	Kind     DecorationKind
	Col, Row int
}

// Size returns the side of the decoration's square footprint in tiles.
func (d Decoration) Size() int {
	if d.Kind == Tree {
		return 3
	}
	return 1
}

func (d Decoration) covers(col, row int) bool {
	s := d.Size()
	return col >= d.Col && col < d.Col+s && row >= d.Row && row < d.Row+s
}

// TileMap is the fixed battlefield: a grass grid with a hardcoded path,
// scenery and the castle at the path's end.
type TileMap struct {
	Cols, Rows  int
	Tiles       [][]TileKind // [row][col]
	Castle      Cell
	Decorations []Decoration
	// startGuard lists path cells whose side neighbours may not be built on
	startGuard []Cell
	waypoints  []component.Position
}

var pathCells = []Cell{
	{0, 5}, {1, 5}, {2, 5}, {3, 5}, {4, 5},
	{5, 5}, {5, 6}, {5, 7}, {5, 8}, {5, 9},
	{6, 9}, {7, 9}, {8, 9}, {9, 9}, {10, 9},
	{11, 9}, {12, 9}, {12, 8}, {12, 7}, {12, 6},
	{12, 5}, {12, 4}, {12, 3}, {13, 3}, {14, 3},
	{15, 3}, {16, 3}, {17, 3}, {18, 3}, {19, 3},
	{20, 3}, {20, 4}, {20, 5}, {20, 6}, {20, 7},
	{21, 7}, {22, 7}, {23, 7}, {24, 7},
}

// Точки поворота пути в клетках; последняя точка смещена к центру замка
var waypointCells = []Cell{
	{0, 5}, {5, 5}, {5, 9}, {12, 9}, {12, 3}, {20, 3}, {20, 7},
}

func NewTileMap() *TileMap {
	tiles := make([][]TileKind, config.MapRows)
	for row := range tiles {
		tiles[row] = make([]TileKind, config.MapCols)
	}
	for _, c := range pathCells {
		if c.Col < config.MapCols && c.Row < config.MapRows {
			tiles[c.Row][c.Col] = PathTile
		}
	}

	waypoints := make([]component.Position, 0, len(waypointCells)+1)
	for _, c := range waypointCells {
		waypoints = append(waypoints, component.Position{
			X: float64(c.Col * config.TileSize),
			Y: float64(c.Row * config.TileSize),
		})
	}
	waypoints = append(waypoints, component.Position{
		X: float64(config.CastleCol*config.TileSize + config.HalfTile),
		Y: float64(7 * config.TileSize),
	})

	return &TileMap{
		Cols:   config.MapCols,
		Rows:   config.MapRows,
		Tiles:  tiles,
		Castle: Cell{config.CastleCol, config.CastleRow},
		Decorations: []Decoration{
			{Tree, 1, 1}, {Tree, 7, 1}, {Tree, 16, 0},
			{Tree, 2, 11}, {Tree, 10, 11}, {Tree, 17, 11},
			{Rock, 7, 5}, {Rock, 14, 8}, {Rock, 22, 11}, {Rock, 4, 15},
		},
		startGuard: []Cell{{0, 5}, {1, 5}},
		waypoints:  waypoints,
	}
}

// Waypoints returns a copy of the enemy route in pixels.
func (m *TileMap) Waypoints() []component.Position {
	return append([]component.Position(nil), m.waypoints...)
}

// Path builds the shared enemy path from the waypoints.
func (m *TileMap) Path() *component.Path {
	return component.NewPath(m.waypoints)
}

func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

func (m *TileMap) IsPath(col, row int) bool {
	return m.InBounds(col, row) && m.Tiles[row][col] == PathTile
}

// IsBlocked is true out of bounds and on path, castle, tree or rock cells.
func (m *TileMap) IsBlocked(col, row int) bool {
	if !m.InBounds(col, row) {
		return true
	}
	if m.Tiles[row][col] == PathTile {
		return true
	}
	if col >= m.Castle.Col && col < m.Castle.Col+config.CastleSize &&
		row >= m.Castle.Row && row < m.Castle.Row+config.CastleSize {
		return true
	}
	for _, d := range m.Decorations {
		if d.covers(col, row) {
			return true
		}
	}
	return false
}

// CanBuild reports whether a tower may go on a cell. occupied tells which
// cells already hold a tower. The cell must be free grass, touch the path
// on a side, keep clear of the path entrance and have no tower on a side.
func (m *TileMap) CanBuild(col, row int, occupied func(col, row int) bool) bool {
	if m.IsBlocked(col, row) || occupied(col, row) {
		return false
	}
	for _, g := range m.startGuard {
		if abs(col-g.Col)+abs(row-g.Row) == 1 {
			return false
		}
	}

	nearPath, nearTower := false, false
	for _, n := range sideNeighbors(col, row) {
		if m.IsPath(n.Col, n.Row) {
			nearPath = true
		}
		if occupied(n.Col, n.Row) {
			nearTower = true
		}
	}
	return nearPath && !nearTower
}

func sideNeighbors(col, row int) [4]Cell {
	return [4]Cell{{col + 1, row}, {col - 1, row}, {col, row + 1}, {col, row - 1}}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
