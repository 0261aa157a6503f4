package interfaces

import "go-castle-defense/internal/economy"

// Game is the command surface hosts and UI widgets drive.
type Game interface {
	StartWave() bool
	BuildTower(col, row int) bool
	Upgrade(track economy.TrackID) bool
	UpgradeToMax(track economy.TrackID) bool
	IsValidBuildLocation(col, row int) bool
}
