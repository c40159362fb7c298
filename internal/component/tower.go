// component/tower.go
package component

import (
	"math"
	"time"

	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

type Tower struct {
	Position
	Cell         gridmap.Cell // Клетка, на которой стоит башня
	Cost         int
	Range        float64 // pixels
	Damage       int
	FireInterval time.Duration
	CritChance   float64
	LastFiredAt  time.Duration
	// TargetID is looked up in the enemy registry every tick; zero means no target.
	TargetID types.EntityID
	Levels   map[defs.UpgradeTrack]int
	Angle    float64 // facing, radians
	Selected bool
}

// NewTower builds a tower with the base stats of def standing on cell.
func NewTower(def defs.TowerDefinition, cell gridmap.Cell, cellSize float64) *Tower {
	x, y := cell.ToPixel(cellSize)
	return &Tower{
		Position:     Position{X: x, Y: y},
		Cell:         cell,
		Cost:         def.Cost,
		Range:        def.Range,
		Damage:       def.Damage,
		FireInterval: def.FireInterval,
		Levels:       make(map[defs.UpgradeTrack]int, len(defs.AllTracks)),
		Angle:        -math.Pi / 2, // facing up
	}
}

// UpgradeCost returns the price of the next level on track.
func (t *Tower) UpgradeCost(def defs.TowerDefinition, track defs.UpgradeTrack) int {
	return def.Upgrades[track].CostAt(t.Levels[track])
}

// CanFire applies the fire-rate gate; equality allows the shot.
func (t *Tower) CanFire(now time.Duration) bool {
	return now-t.LastFiredAt >= t.FireInterval
}
