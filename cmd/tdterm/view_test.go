package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/hud"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(120, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, x, y, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(runeAt(screen, x+i, y))
	}
	return b.String()
}

func drawSession(t *testing.T, s *session) tcell.SimulationScreen {
	t.Helper()
	screen := newTestScreen(t)
	v := newView(s.tileMap, hud.NewFormatter(language.English))
	v.draw(screen, s)
	return screen
}

func TestDrawCastleAndHUD(t *testing.T) {
	s := newTestSession(t)
	screen := drawSession(t, s)

	if r := runeAt(screen, config.CastleCol*cellWidth, config.CastleRow); r != '█' {
		t.Errorf("castle cell = %q, want █", r)
	}
	if got := rowText(screen, hudLeft, 0, 14); got != "Level 1  Wave " {
		t.Errorf("hud first line = %q", got)
	}
	if got := rowText(screen, hudLeft, 1, 9); got != "Gold: 150" {
		t.Errorf("hud gold line = %q", got)
	}
}

func TestDrawEntities(t *testing.T) {
	s := newTestSession(t)
	cell := firstBuildable(t, s)
	s.game.DebugAddGold(100)
	if !s.game.BuildTower(cell.Col, cell.Row) {
		t.Fatal("build failed")
	}
	s.game.DebugSpawn(defs.TierHuge)

	screen := drawSession(t, s)
	if r := runeAt(screen, cell.Col*cellWidth, cell.Row); r != '╬' {
		t.Errorf("tower glyph = %q, want ╬", r)
	}

	// enemies start on the first path cell, (0,5)
	if r := runeAt(screen, 0, 5); r != '@' {
		t.Errorf("huge enemy glyph = %q, want @", r)
	}
	found := false
	for y := 0; y < 30; y++ {
		if rowText(screen, hudLeft, y, 18) == "Lead: huge 100/100" {
			found = true
		}
	}
	if !found {
		t.Error("lead enemy line not drawn")
	}
}

func TestDrawBuildCursor(t *testing.T) {
	s := newTestSession(t)
	s.placing = true
	s.cursor = firstBuildable(t, s)
	screen := drawSession(t, s)

	x := s.cursor.Col * cellWidth
	if runeAt(screen, x, s.cursor.Row) != '[' || runeAt(screen, x+1, s.cursor.Row) != ']' {
		t.Fatal("build cursor not drawn")
	}
	_, _, style, _ := screen.GetContent(x, s.cursor.Row)
	if style != styleCursorOK {
		t.Error("cursor over a legal cell should use the ok style")
	}

	// клетка пути всегда запрещена
	s.cursor.Col, s.cursor.Row = 0, 5
	screen = drawSession(t, s)
	_, _, style, _ = screen.GetContent(0, 5)
	if style != styleCursorBad {
		t.Error("cursor over the path should use the blocked style")
	}
}

func TestDrawEndMessage(t *testing.T) {
	s := newTestSession(t)
	s.game.Lives = 1
	s.game.StartWave()
	for i := 0; i < 2000 && s.game.Running(); i++ {
		s.step(50)
	}
	screen := drawSession(t, s)
	found := false
	for y := 0; y < 30; y++ {
		if strings.HasPrefix(rowText(screen, hudLeft, y, 9), "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Error("game over message not drawn")
	}
}
