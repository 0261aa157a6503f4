// internal/state/level_select_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/ui"
)

const selectableLevels = 4

var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// LevelSelectState — стартовый экран с выбором уровня
type LevelSelectState struct {
	sm      *StateMachine
	buttons []*ui.Button
}

func NewLevelSelectState(sm *StateMachine) *LevelSelectState {
	s := &LevelSelectState{sm: sm}
	w, h := 200, 36
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 - (selectableLevels*(h+10))/2
	for i := 0; i < selectableLevels; i++ {
		rect := image.Rect(x, y+i*(h+10), x+w, y+i*(h+10)+h)
		s.buttons = append(s.buttons, ui.NewButton(rect, fmt.Sprintf("Level %d [%d]", i+1, i+1)))
	}
	return s
}

func (s *LevelSelectState) Enter() {}

func (s *LevelSelectState) Update(deltaTime float64) {
	for i, key := range levelKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.start(i + 1)
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range s.buttons {
			if b.Contains(x, y) {
				s.start(i + 1)
				return
			}
		}
	}
}

func (s *LevelSelectState) start(level int) {
	s.sm.SetState(NewGameState(s.sm, level))
}

func (s *LevelSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "CASTLE DEFENSE"
	bounds := text.BoundString(s.sm.Env.Face, title)
	text.Draw(screen, title, s.sm.Env.Face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/4, config.TextLightColor)
	for _, b := range s.buttons {
		b.Draw(screen, s.sm.Env.Face)
	}
}

func (s *LevelSelectState) Exit() {}
