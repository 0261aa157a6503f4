// Package hud builds the text shown by every host: status line and the
// upgrade panel.
package hud

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-castle-defense/internal/economy"
)

// Status is a snapshot of the counters the HUD shows.
type Status struct {
	Gold, Lives      int
	Level, Wave      int
	Towers, TowerCap int
}

// TrackLine describes one upgrade ladder for display.
type TrackLine struct {
	Track     economy.TrackID
	Level     int
	MaxLevel  int
	Value     float64
	NextValue float64
	NextCost  int
	CostToMax int
	AtMax     bool
}

// Formatter renders numbers with thousands separators.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Int formats n with grouping, e.g. 12,450.
func (f *Formatter) Int(n int) string {
	return f.p.Sprintf("%d", n)
}

// StatusLines returns the top HUD block.
func (f *Formatter) StatusLines(s Status, inProgress bool, enemiesLeft, towerCost int) []string {
	lines := []string{
		fmt.Sprintf("Level %d  Wave %d", s.Level, s.Wave),
		"Gold: " + f.Int(s.Gold),
		fmt.Sprintf("Lives: %d", s.Lives),
		fmt.Sprintf("Towers: %d/%d", s.Towers, s.TowerCap),
		"Tower cost: " + f.Int(towerCost),
	}
	if inProgress {
		lines = append(lines, fmt.Sprintf("Enemies left: %d", enemiesLeft))
	} else {
		lines = append(lines, "Press Start Wave")
	}
	return lines
}

// Tracks collects the upgrade panel rows in display order.
func Tracks(u *economy.Upgrades) []TrackLine {
	lines := make([]TrackLine, 0, len(economy.Tracks))
	for _, id := range economy.Tracks {
		level := u.Level(id)
		line := TrackLine{
			Track:     id,
			Level:     level,
			MaxLevel:  id.MaxLevel(),
			Value:     id.ValueAt(level),
			AtMax:     u.AtMax(id),
			CostToMax: u.CostToMax(id),
		}
		if !line.AtMax {
			line.NextValue = id.ValueAt(level + 1)
			line.NextCost = u.NextCost(id)
		}
		lines = append(lines, line)
	}
	return lines
}

// TrackTitle renders the short head of a row, e.g. "damage 3/10: 12".
func TrackTitle(t TrackLine) string {
	return fmt.Sprintf("%s %d/%d: %s", t.Track, t.Level, t.MaxLevel, formatValue(t.Track, t.Value))
}

// TrackText renders one panel row, e.g.
// "damage 3/10: 12 -> 13 (50g, max 650g)".
func (f *Formatter) TrackText(t TrackLine) string {
	head := TrackTitle(t)
	if t.AtMax {
		return head + " (MAX)"
	}
	return fmt.Sprintf("%s -> %s (%sg, max %sg)",
		head, formatValue(t.Track, t.NextValue), f.Int(t.NextCost), f.Int(t.CostToMax))
}

func formatValue(id economy.TrackID, v float64) string {
	switch id {
	case economy.FireRate:
		return fmt.Sprintf("%.0fms", v)
	case economy.Range:
		return fmt.Sprintf("%.0fpx", v)
	}
	return fmt.Sprintf("%.0f", v)
}
