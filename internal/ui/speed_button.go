// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-castle-defense/internal/config"
)

// SpeedButton cycles the host time multiplier through config.SpeedMultipliers.
type SpeedButton struct {
	Rect          image.Rectangle
	LastClickTime time.Time
	CurrentState  int
}

func NewSpeedButton(rect image.Rectangle) *SpeedButton {
	return &SpeedButton{Rect: rect}
}

func (b *SpeedButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Multiplier returns the current time scale.
func (b *SpeedButton) Multiplier() float64 {
	return config.SpeedMultipliers[b.CurrentState]
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(config.SpeedMultipliers)
	b.LastClickTime = time.Now()
}

func (b *SpeedButton) Draw(screen *ebiten.Image, face font.Face) {
	// Короткая «пульсация» после клика
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)

	w := float32(b.Rect.Dx()) * float32(scale)
	h := float32(b.Rect.Dy()) * float32(scale)
	cx := float32(b.Rect.Min.X) + float32(b.Rect.Dx())/2
	cy := float32(b.Rect.Min.Y) + float32(b.Rect.Dy())/2
	vector.DrawFilledRect(screen, cx-w/2, cy-h/2, w, h, config.ButtonColor, true)

	label := fmt.Sprintf("x%.0f", b.Multiplier())
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, config.TextLightColor)
}
