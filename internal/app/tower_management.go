// internal/app/tower_management.go
package app

import (
	"math"
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

const (
	msgNoMoneyTower   = "Not enough money for tower!"
	msgNoMoneyUpgrade = "Not enough money for upgrade!"
	msgBlocksPath     = "Cannot block the path! Enemies need a route."
	msgUpgradeMaxed   = "This upgrade is already at its maximum!"
)

// PlaceResult says what became of a placement attempt.
type PlaceResult int

const (
	Placed PlaceResult = iota
	RejectedOutOfBounds
	RejectedOccupied
	RejectedFunds
	RejectedProtected
	RejectedBlocksRoute
)

func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case RejectedOutOfBounds:
		return "out of bounds"
	case RejectedOccupied:
		return "occupied"
	case RejectedFunds:
		return "insufficient funds"
	case RejectedProtected:
		return "protected cell"
	case RejectedBlocksRoute:
		return "blocks the route"
	default:
		return "unknown"
	}
}

// PlaceTower attempts to build a tower on cell. A rejected placement changes
// nothing except, for some reasons, the advisory message.
func (g *Game) PlaceTower(cell gridmap.Cell) PlaceResult {
	if r := g.canPlaceTower(cell); r != Placed {
		switch r {
		case RejectedFunds:
			g.StateSystem.Advise(msgNoMoneyTower)
		case RejectedProtected, RejectedBlocksRoute:
			g.StateSystem.Advise(msgBlocksPath)
		}
		return r
	}
	g.StateSystem.Spend(g.Rules.Tower.Cost)
	g.addTower(cell)
	return Placed
}

func (g *Game) canPlaceTower(cell gridmap.Cell) PlaceResult {
	if !g.Grid.InBounds(cell) {
		return RejectedOutOfBounds
	}
	if _, _, ok := g.ECS.TowerAt(cell); ok || g.Grid.IsBlocked(cell) {
		return RejectedOccupied
	}
	if !g.StateSystem.CanAfford(g.Rules.Tower.Cost) {
		return RejectedFunds
	}
	if g.Grid.IsProtected(cell) {
		return RejectedProtected
	}
	if g.Rules.Grid.RequireOpenRoute && !g.Grid.HasRouteWithout(cell, g.Rules.Grid.Spawn, g.Rules.Grid.Goal) {
		return RejectedBlocksRoute
	}
	return Placed
}

// addTower builds the tower without charging for it, blocks its cell and
// re-plans the enemies that are still walking.
func (g *Game) addTower(cell gridmap.Cell) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Towers.Insert(id, component.NewTower(g.Rules.Tower, cell, g.Rules.Grid.CellSize))
	g.Grid.Block(cell)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID:   id,
		Cell: cell,
		Cost: g.Rules.Tower.Cost,
	}})
	g.MovementSystem.RecomputePaths()
	return id
}

// placeDemoTowers builds the starting towers and charges for all of them in
// one deduction. Nothing is built if the player cannot afford the set.
func (g *Game) placeDemoTowers() {
	cells := g.Rules.Economy.DemoTowers
	total := g.Rules.Tower.Cost * len(cells)
	if len(cells) == 0 || !g.StateSystem.CanAfford(total) {
		return
	}
	for _, c := range cells {
		if g.canPlaceTowerFree(c) {
			g.addTower(c)
		}
	}
	g.StateSystem.Spend(total)
}

func (g *Game) canPlaceTowerFree(cell gridmap.Cell) bool {
	if !g.Grid.InBounds(cell) || g.Grid.IsBlocked(cell) || g.Grid.IsProtected(cell) {
		return false
	}
	return !g.Rules.Grid.RequireOpenRoute || g.Grid.HasRouteWithout(cell, g.Rules.Grid.Spawn, g.Rules.Grid.Goal)
}

// SelectTower makes id the selected tower; zero or an unknown id clears the
// selection. Selecting the selected tower again deselects it.
func (g *Game) SelectTower(id types.EntityID) {
	gs := g.ECS.GameState
	if id != 0 && id == gs.SelectedTower {
		id = 0
	}
	if prev, ok := g.ECS.Towers.Get(gs.SelectedTower); ok {
		prev.Selected = false
	}
	gs.SelectedTower = 0
	if t, ok := g.ECS.Towers.Get(id); ok {
		t.Selected = true
		gs.SelectedTower = id
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSelected, Data: event.TowerData{ID: gs.SelectedTower}})
}

// UpgradeTower buys the next level of track for tower id. Insufficient money
// is a no-op with an advisory.
func (g *Game) UpgradeTower(id types.EntityID, track defs.UpgradeTrack) bool {
	tower, ok := g.ECS.Towers.Get(id)
	if !ok || !track.Valid() {
		return false
	}
	up, ok := g.Rules.Tower.Upgrades[track]
	if !ok {
		return false
	}
	if upgradeMaxed(tower, g.Rules.Tower, track, up) {
		g.StateSystem.Advise(msgUpgradeMaxed)
		return false
	}
	cost := tower.UpgradeCost(g.Rules.Tower, track)
	if !g.StateSystem.Spend(cost) {
		g.StateSystem.Advise(msgNoMoneyUpgrade)
		return false
	}
	tower.Levels[track]++
	applyUpgrade(tower, g.Rules.Tower, track, up)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID:    id,
		Cell:  tower.Cell,
		Track: track,
		Level: tower.Levels[track],
		Cost:  cost,
	}})
	return true
}

// UpgradeSelected upgrades the selected tower.
func (g *Game) UpgradeSelected(track defs.UpgradeTrack) bool {
	id, _, ok := g.SelectedTower()
	if !ok {
		return false
	}
	return g.UpgradeTower(id, track)
}

// statEpsilon absorbs float drift when a derived stat is compared with its cap.
const statEpsilon = 1e-9

// upgradeMaxed reports whether the stat of track already sits at its cap.
// Stats are derived from the level so repeated float steps never drift.
func upgradeMaxed(t *component.Tower, def defs.TowerDefinition, track defs.UpgradeTrack, up defs.UpgradeDefinition) bool {
	if up.Limit <= 0 {
		return false
	}
	level := float64(t.Levels[track])
	switch track {
	case defs.UpgradeRange:
		return def.Range+level*up.Delta >= up.Limit-statEpsilon
	case defs.UpgradeAccuracy:
		return level*up.Delta >= up.Limit-statEpsilon
	case defs.UpgradeFireRate:
		return t.FireInterval <= time.Duration(up.Limit)*time.Millisecond
	}
	return false
}

// applyUpgrade recomputes the stat of track for the tower's current level.
func applyUpgrade(t *component.Tower, def defs.TowerDefinition, track defs.UpgradeTrack, up defs.UpgradeDefinition) {
	level := t.Levels[track]
	switch track {
	case defs.UpgradeRange:
		t.Range = def.Range + float64(level)*up.Delta
		if up.Limit > 0 {
			t.Range = math.Min(t.Range, up.Limit)
		}
	case defs.UpgradePower:
		t.Damage = def.Damage + level*int(up.Delta)
	case defs.UpgradeAccuracy:
		t.CritChance = float64(level) * up.Delta
		if up.Limit > 0 {
			t.CritChance = math.Min(t.CritChance, up.Limit)
		}
	case defs.UpgradeFireRate:
		t.FireInterval = def.FireInterval - time.Duration(level)*time.Duration(up.Delta)*time.Millisecond
		if floor := time.Duration(up.Limit) * time.Millisecond; t.FireInterval < floor {
			t.FireInterval = floor
		}
	}
}
