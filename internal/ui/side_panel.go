// internal/ui/side_panel.go
package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-castle-defense/internal/config"
	"go-castle-defense/internal/economy"
	"go-castle-defense/internal/hud"
)

const (
	panelPadding  = 10
	lineHeight    = 16
	buttonHeight  = 24
	buttonSpacing = 6
	statusLines   = 6
)

// Action is what a click on the side panel asks for.
type Action int

const (
	ActionNone Action = iota
	ActionStartWave
	ActionToggleBuild
	ActionUpgrade
	ActionUpgradeMax
	ActionSpeed
	ActionPause
)

// PanelHit is the result of a click on the panel.
type PanelHit struct {
	Action Action
	Track  economy.TrackID
}

type trackButtons struct {
	track economy.TrackID
	one   *Button
	max   *Button
}

// SidePanel is the HUD column right of the map.
type SidePanel struct {
	face      font.Face
	left      int
	StartWave *Button
	Build     *Button
	Pause     *Button
	Speed     *SpeedButton
	tracks    []trackButtons
	trackY    []int
}

func NewSidePanel(face font.Face) *SidePanel {
	left := config.MapWidth + panelPadding
	width := config.HUDWidth - 2*panelPadding
	y := panelPadding + statusLines*lineHeight + panelPadding

	row := func(h int) image.Rectangle {
		r := image.Rect(left, y, left+width, y+h)
		y += h + buttonSpacing
		return r
	}

	p := &SidePanel{face: face, left: left}
	p.StartWave = NewButton(row(buttonHeight), "Start Wave [Space]")
	p.Build = NewButton(row(buttonHeight), "Build Tower [B]")

	y += panelPadding
	half := (width - buttonSpacing) / 2
	for _, id := range economy.Tracks {
		p.trackY = append(p.trackY, y)
		y += lineHeight
		r := row(buttonHeight)
		p.tracks = append(p.tracks, trackButtons{
			track: id,
			one:   NewButton(image.Rect(r.Min.X, r.Min.Y, r.Min.X+half, r.Max.Y), "+1"),
			max:   NewButton(image.Rect(r.Max.X-half, r.Min.Y, r.Max.X, r.Max.Y), "Max"),
		})
	}

	y += panelPadding
	r := row(buttonHeight)
	p.Speed = NewSpeedButton(image.Rect(r.Min.X, r.Min.Y, r.Min.X+half, r.Max.Y))
	p.Pause = NewButton(image.Rect(r.Max.X-half, r.Min.Y, r.Max.X, r.Max.Y), "Pause [P]")
	return p
}

// HitTest maps a click to a panel action.
func (p *SidePanel) HitTest(x, y int) PanelHit {
	switch {
	case p.StartWave.Contains(x, y):
		return PanelHit{Action: ActionStartWave}
	case p.Build.Contains(x, y):
		return PanelHit{Action: ActionToggleBuild}
	case p.Speed.Contains(x, y):
		return PanelHit{Action: ActionSpeed}
	case p.Pause.Contains(x, y):
		return PanelHit{Action: ActionPause}
	}
	for _, tb := range p.tracks {
		if tb.one.Contains(x, y) {
			return PanelHit{Action: ActionUpgrade, Track: tb.track}
		}
		if tb.max.Contains(x, y) {
			return PanelHit{Action: ActionUpgradeMax, Track: tb.track}
		}
	}
	return PanelHit{Action: ActionNone}
}

// Draw renders the status block, the buttons and one line per upgrade
// track. gold enables or greys out the buttons.
func (p *SidePanel) Draw(screen *ebiten.Image, status []string, tracks []hud.TrackLine, f *hud.Formatter, gold int, canStart, canBuild, placing bool) {
	vector.DrawFilledRect(screen, float32(config.MapWidth), 0, float32(config.HUDWidth), float32(config.ScreenHeight), config.PanelColor, false)

	for i, line := range status {
		text.Draw(screen, line, p.face, p.left, panelPadding+(i+1)*lineHeight-4, config.TextLightColor)
	}

	p.StartWave.Enabled = canStart
	p.StartWave.Draw(screen, p.face)
	p.Build.Enabled = canBuild
	if placing {
		p.Build.Text = "Cancel [B]"
	} else {
		p.Build.Text = "Build Tower [B]"
	}
	p.Build.Draw(screen, p.face)

	for i, tb := range p.tracks {
		if i >= len(tracks) {
			break
		}
		t := tracks[i]
		text.Draw(screen, hud.TrackTitle(t), p.face, p.left, p.trackY[i]+lineHeight-4, config.TextLightColor)
		tb.one.Enabled = !t.AtMax && gold >= t.NextCost
		tb.max.Enabled = tb.one.Enabled
		if t.AtMax {
			tb.one.Text, tb.max.Text = "MAX", "MAX"
		} else {
			tb.one.Text = "+1 (" + f.Int(t.NextCost) + "g)"
			tb.max.Text = "Max (" + f.Int(t.CostToMax) + "g)"
		}
		tb.one.Draw(screen, p.face)
		tb.max.Draw(screen, p.face)
	}

	p.Speed.Draw(screen, p.face)
	p.Pause.Draw(screen, p.face)
}
