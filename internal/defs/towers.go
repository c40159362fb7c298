// internal/defs/towers.go
package defs

import "time"

// TowerDefinition holds the base stats every newly placed tower starts with.
type TowerDefinition struct {
	Cost         int                                `yaml:"cost"`
	Range        float64                            `yaml:"range"` // pixels
	Damage       int                                `yaml:"damage"`
	FireInterval time.Duration                      `yaml:"fire_interval"`
	CritMultiple float64                            `yaml:"crit_multiple"` // damage multiplier of a critical shot
	Upgrades     map[UpgradeTrack]UpgradeDefinition `yaml:"upgrades"`
}

// UpgradeDefinition describes one upgrade track: what a level costs and what
// it changes. Cost of going from level L to L+1 is BaseCost + L*CostStep.
type UpgradeDefinition struct {
	BaseCost int     `yaml:"base_cost"`
	CostStep int     `yaml:"cost_step"`
	Delta    float64 `yaml:"delta"`
	// Limit caps the derived stat: a maximum for range/crit chance, a minimum
	// for the fire interval (in milliseconds). Zero means no limit.
	Limit float64 `yaml:"limit"`
}

// CostAt returns the price of the next level for a tower currently at level.
func (u UpgradeDefinition) CostAt(level int) int {
	return u.BaseCost + level*u.CostStep
}

// DefaultTower returns the archer tower of the original game.
func DefaultTower() TowerDefinition {
	return TowerDefinition{
		Cost:         100,
		Range:        150,
		Damage:       25,
		FireInterval: 1000 * time.Millisecond,
		CritMultiple: 2,
		Upgrades: map[UpgradeTrack]UpgradeDefinition{
			UpgradeRange:    {BaseCost: 50, CostStep: 25, Delta: 25},
			UpgradePower:    {BaseCost: 75, CostStep: 50, Delta: 10},
			UpgradeAccuracy: {BaseCost: 60, CostStep: 40, Delta: 0.05, Limit: 0.5},
			UpgradeFireRate: {BaseCost: 80, CostStep: 60, Delta: 100, Limit: 250},
		},
	}
}
