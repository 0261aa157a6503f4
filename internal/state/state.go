// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"go-castle-defense/internal/audio"
	"go-castle-defense/internal/config"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) // мс реального времени
	Draw(screen *ebiten.Image)
	Exit()
}

// Env is what every state shares: settings, logger, font and the optional
// cue player.
type Env struct {
	Config *config.Config
	Logger *zap.Logger
	Face   font.Face
	Audio  *audio.CuePlayer // nil when sound is off
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Env     *Env
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(env *Env) *StateMachine {
	return &StateMachine{Env: env}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
