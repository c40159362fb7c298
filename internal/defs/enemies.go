// internal/defs/enemies.go
package defs

import "math"

// EnemyDefinition holds the stats of the single enemy archetype. Health is
// derived from the tower's base damage so that a wave-1 enemy always takes
// BaseShotsToKill base shots.
type EnemyDefinition struct {
	Speed           float64 `yaml:"speed"` // pixels per second
	BaseDamage      float64 `yaml:"base_damage"`
	BaseShotsToKill float64 `yaml:"base_shots_to_kill"`
	GrowthPerWave   float64 `yaml:"growth_per_wave"` // health multiplier added per wave
	Reward          Reward  `yaml:"reward"`
}

// Reward is the kill bounty formula:
// Base + floor(shotsToKill*PerShot) + (wave-1)*PerWave.
type Reward struct {
	Base    int     `yaml:"base"`
	PerShot float64 `yaml:"per_shot"`
	PerWave int     `yaml:"per_wave"`
}

// DefaultEnemy returns the foot soldier of the original game.
func DefaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		Speed:           60,
		BaseDamage:      25,
		BaseShotsToKill: 3,
		GrowthPerWave:   0.5,
		Reward:          Reward{Base: 15, PerShot: 5, PerWave: 3},
	}
}

// WaveMultiplier is 1 + GrowthPerWave*(wave-1).
func (d EnemyDefinition) WaveMultiplier(wave int) float64 {
	return 1 + d.GrowthPerWave*float64(wave-1)
}

// HealthFor returns the spawn health of an enemy in the given wave.
func (d EnemyDefinition) HealthFor(wave int) float64 {
	return d.BaseDamage * d.BaseShotsToKill * d.WaveMultiplier(wave)
}

// ShotsToKillFor returns the difficulty value frozen into an enemy at spawn.
func (d EnemyDefinition) ShotsToKillFor(wave int) float64 {
	return d.BaseShotsToKill * d.WaveMultiplier(wave)
}

// RewardFor applies the bounty formula.
func (d EnemyDefinition) RewardFor(shotsToKill float64, wave int) int {
	return d.Reward.Base + int(math.Floor(shotsToKill*d.Reward.PerShot)) + (wave-1)*d.Reward.PerWave
}
