// internal/event/types.go
package event

import (
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/types"
)

const (
	WaveStarted      EventType = "WaveStarted"   // Волна началась
	WaveEnded        EventType = "WaveEnded"     // Волна закончилась
	LevelComplete    EventType = "LevelComplete" // Пройдены все волны уровня
	GameComplete     EventType = "GameComplete"
	GameOver         EventType = "GameOver"
	EnemyHit         EventType = "EnemyHit"
	EnemyKilled      EventType = "EnemyKilled" // Враг уничтожен, награда начислена
	EnemyLeaked      EventType = "EnemyLeaked" // Враг дошёл до замка
	TowerPlaced      EventType = "TowerPlaced"
	UpgradePurchased EventType = "UpgradePurchased"
)

// WaveInfo is the payload of WaveStarted and WaveEnded.
type WaveInfo struct {
	Level, Wave int
	QueueSize   int
}

// LevelInfo is the payload of LevelComplete and GameComplete.
type LevelInfo struct {
	Level int
}

// EnemyInfo is the payload of EnemyHit, EnemyKilled and EnemyLeaked.
type EnemyInfo struct {
	ID     types.EntityID
	Tier   defs.Tier
	Reward int
}

// TowerInfo is the payload of TowerPlaced.
type TowerInfo struct {
	ID       types.EntityID
	Col, Row int
	Cost     int
}

// UpgradeInfo is the payload of UpgradePurchased.
type UpgradeInfo struct {
	Track string
	Level int
	Spent int
}
