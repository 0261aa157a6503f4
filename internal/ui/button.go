// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-castle-defense/internal/config"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Enabled bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label, Enabled: true}
}

// Contains reports whether a screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := config.ButtonColor
	if !b.Enabled {
		bg = config.ButtonOffColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, true)

	textBounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, config.TextLightColor)
}
