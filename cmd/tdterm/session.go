package main

import (
	"github.com/gdamore/tcell/v2"

	game "go-castle-defense/internal/app"
	"go-castle-defense/internal/economy"
	"go-castle-defense/pkg/tilemap"
)

var speeds = []int{1, 2, 4}

// session is the terminal player's view of one run: the engine plus the
// build cursor and host-side pause and speed.
type session struct {
	game    *game.Game
	newGame func() *game.Game
	tileMap *tilemap.TileMap
	cursor  tilemap.Cell
	placing bool
	paused  bool
	speed   int
}

func newSession(tileMap *tilemap.TileMap, newGame func() *game.Game) *session {
	return &session{
		game:    newGame(),
		newGame: newGame,
		tileMap: tileMap,
		cursor:  tilemap.Cell{Col: tileMap.Cols / 2, Row: tileMap.Rows / 2},
		speed:   1,
	}
}

// step advances the run by dt real milliseconds.
func (s *session) step(dt float64) {
	if s.paused {
		return
	}
	s.game.Step(dt * float64(s.speed))
}

// handleKey applies one key press. It returns false when the player quits.
func (s *session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if s.placing {
			s.placing = false
			return true
		}
		return false
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.moveCursor(0, -1)
	case tcell.KeyDown:
		s.moveCursor(0, 1)
	case tcell.KeyLeft:
		s.moveCursor(-1, 0)
	case tcell.KeyRight:
		s.moveCursor(1, 0)
	case tcell.KeyEnter:
		s.placeTower()
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *session) handleRune(r rune) bool {
	if r == 'q' {
		return false
	}
	if !s.game.Running() {
		if r == 'r' {
			s.game = s.newGame()
			s.placing = false
			s.paused = false
		}
		return true
	}
	switch r {
	case 'p':
		s.paused = !s.paused
	case ' ':
		s.game.StartWave()
	case 'b':
		s.placing = !s.placing
	case 'f':
		s.cycleSpeed()
	case '1', '2', '3':
		s.game.Upgrade(economy.Tracks[r-'1'])
	case '!':
		s.game.UpgradeToMax(economy.FireRate)
	case '@':
		s.game.UpgradeToMax(economy.Damage)
	case '#':
		s.game.UpgradeToMax(economy.Range)
	}
	return true
}

func (s *session) moveCursor(dc, dr int) {
	col, row := s.cursor.Col+dc, s.cursor.Row+dr
	if s.tileMap.InBounds(col, row) {
		s.cursor = tilemap.Cell{Col: col, Row: row}
	}
}

// placeTower builds at the cursor and leaves build mode once nothing more
// can be afforded or placed.
func (s *session) placeTower() {
	if !s.placing || s.paused {
		return
	}
	g := s.game
	if g.BuildTower(s.cursor.Col, s.cursor.Row) && (!g.CanBuildMore() || g.Gold < g.TowerCost()) {
		s.placing = false
	}
}

func (s *session) cycleSpeed() {
	for i, v := range speeds {
		if v == s.speed {
			s.speed = speeds[(i+1)%len(speeds)]
			return
		}
	}
	s.speed = speeds[0]
}
