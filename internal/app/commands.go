// internal/app/commands.go
package app

import (
	"go.uber.org/zap"

	"go-castle-defense/internal/component"
	"go-castle-defense/internal/defs"
	"go-castle-defense/internal/economy"
	"go-castle-defense/internal/event"
)

// StartWave starts the current wave. It is refused while a wave is in
// progress or the run has ended.
func (g *Game) StartWave() bool {
	if !g.running {
		return false
	}
	return g.WaveSystem.StartWave()
}

// TowerCost returns the price of the next tower.
func (g *Game) TowerCost() int {
	return economy.TowerCost(g.ECS.Towers.Len())
}

// CanBuildMore reports whether the tower cap leaves room for another tower.
func (g *Game) CanBuildMore() bool {
	return g.ECS.Towers.Len() < g.TowerCap
}

// IsValidBuildLocation asks the map whether a tower may stand on a cell.
func (g *Game) IsValidBuildLocation(col, row int) bool {
	if g.Site == nil {
		return false
	}
	return g.Site.CanBuild(col, row, g.hasTowerAt)
}

func (g *Game) hasTowerAt(col, row int) bool {
	_, ok := g.ECS.TowerAt(col, row)
	return ok
}

// BuildTower places a tower on a cell. It is a no-op returning false when
// the cap is reached, the cell is not legal or gold is short.
func (g *Game) BuildTower(col, row int) bool {
	if !g.running || !g.CanBuildMore() || !g.IsValidBuildLocation(col, row) {
		g.logger.Debug("build rejected", zap.Int("col", col), zap.Int("row", row))
		return false
	}
	cost := g.TowerCost()
	if g.Gold < cost {
		g.logger.Debug("build rejected: gold", zap.Int("cost", cost), zap.Int("gold", g.Gold))
		return false
	}
	g.Gold -= cost

	id := g.ECS.NewEntity()
	g.ECS.Towers.Add(id, &component.Tower{Col: col, Row: row})
	g.logger.Info("tower built",
		zap.Int("col", col),
		zap.Int("row", row),
		zap.Int("cost", cost),
		zap.Int("towers", g.ECS.Towers.Len()),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerInfo{ID: id, Col: col, Row: row, Cost: cost},
	})
	return true
}

// Upgrade buys one level of a track for every tower.
func (g *Game) Upgrade(track economy.TrackID) bool {
	if !g.running || !g.Upgrades.Upgrade(track, &g.Gold) {
		return false
	}
	g.upgraded(track, track.CostAt(g.Upgrades.Level(track)-1))
	return true
}

// UpgradeToMax buys every remaining level of a track it can afford.
func (g *Game) UpgradeToMax(track economy.TrackID) bool {
	if !g.running {
		return false
	}
	steps, spent := g.Upgrades.UpgradeToMax(track, &g.Gold)
	if steps == 0 {
		return false
	}
	g.upgraded(track, spent)
	return true
}

func (g *Game) upgraded(track economy.TrackID, spent int) {
	level := g.Upgrades.Level(track)
	g.logger.Info("upgrade purchased",
		zap.Stringer("track", track),
		zap.Int("level", level),
		zap.Int("spent", spent),
		zap.Int("gold", g.Gold),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.UpgradePurchased,
		Data: event.UpgradeInfo{Track: track.String(), Level: level, Spent: spent},
	})
}

func (g *Game) UpgradeFireRate() bool { return g.Upgrade(economy.FireRate) }
func (g *Game) UpgradeDamage() bool { return g.Upgrade(economy.Damage) }
func (g *Game) UpgradeRange() bool { return g.Upgrade(economy.Range) }
func (g *Game) UpgradeFireRateToMax() bool { return g.UpgradeToMax(economy.FireRate) }
func (g *Game) UpgradeDamageToMax() bool { return g.UpgradeToMax(economy.Damage) }
func (g *Game) UpgradeRangeToMax() bool { return g.UpgradeToMax(economy.Range) }

// DebugSetWave jumps to a wave of the current level, ending any wave in
// progress.
func (g *Game) DebugSetWave(number int) {
	g.WaveSystem.SetWave(number)
	g.logger.Debug("debug: wave set", zap.Int("wave", g.ECS.Wave.Number))
}

// DebugSpawn puts one enemy of a tier at the path start.
func (g *Game) DebugSpawn(tier defs.Tier) {
	if !tier.Valid() {
		return
	}
	g.WaveSystem.SpawnNow(tier)
}

// DebugSetUpgrade forces a track to a level, clamped to its ladder. No
// gold is spent.
func (g *Game) DebugSetUpgrade(track economy.TrackID, level int) {
	g.Upgrades.SetLevel(track, level)
	g.logger.Debug("debug: upgrade set", zap.Stringer("track", track), zap.Int("level", g.Upgrades.Level(track)))
}

// DebugAddGold adds gold to the balance.
func (g *Game) DebugAddGold(amount int) {
	g.Gold += amount
	g.logger.Debug("debug: gold added", zap.Int("amount", amount), zap.Int("gold", g.Gold))
}
