package defs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PaliBr/gamejam/pkg/gridmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyHealthPerWave(t *testing.T) {
	e := DefaultEnemy()
	for wave, want := range map[int]float64{1: 75, 2: 112.5, 3: 150} {
		assert.Equal(t, want, e.HealthFor(wave), "wave %d", wave)
		assert.Equal(t, e.BaseDamage*e.BaseShotsToKill*(1+0.5*float64(wave-1)), e.HealthFor(wave))
	}
}

func TestRewardFormula(t *testing.T) {
	e := DefaultEnemy()
	assert.Equal(t, 30, e.RewardFor(3, 1))
	assert.Equal(t, 30, e.RewardFor(e.ShotsToKillFor(1), 1))
	// 15 + floor(4.5*5) + 3
	assert.Equal(t, 40, e.RewardFor(e.ShotsToKillFor(2), 2))
}

func TestWaveEnemyCount(t *testing.T) {
	w := DefaultWaves()
	assert.Equal(t, 7, w.EnemyCount(1))
	assert.Equal(t, 9, w.EnemyCount(2))
	assert.Equal(t, 25, w.EnemyCount(10))
}

func TestUpgradeCostSchedule(t *testing.T) {
	for _, track := range AllTracks {
		u := DefaultTower().Upgrades[track]
		prev := -1
		for level := 0; level < 5; level++ {
			cost := u.CostAt(level)
			assert.Greater(t, cost, prev, "%s level %d", track, level)
			prev = cost
		}
	}
	assert.True(t, UpgradePower.Valid())
	assert.False(t, UpgradeTrack("armor").Valid())
	assert.Equal(t, "Speed", UpgradeFireRate.Label())
}

func TestDefaultRulesAreValid(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())
}

func TestParseRulesOverlaysDefaults(t *testing.T) {
	data := []byte(`
seed: 42
economy:
  starting_money: 900
  demo_towers: []
waves:
  next_delay: 5s
tower:
  fire_interval: 800ms
grid:
  spawn: {x: 1, y: 0}
`)
	rules, err := ParseRules(data)
	require.NoError(t, err)
	assert.Equal(t, int64(42), rules.Seed)
	assert.Equal(t, 900, rules.Economy.StartingMoney)
	assert.Equal(t, 20, rules.Economy.StartingHealth)
	assert.Empty(t, rules.Economy.DemoTowers)
	assert.Equal(t, 5*time.Second, rules.Waves.NextDelay)
	assert.Equal(t, time.Second, rules.Waves.SpawnInterval)
	assert.Equal(t, 800*time.Millisecond, rules.Tower.FireInterval)
	assert.Equal(t, gridmap.Cell{X: 1, Y: 0}, rules.Grid.Spawn)
	assert.Len(t, rules.Tower.Upgrades, 4)
}

func TestParseRulesRejectsInvalid(t *testing.T) {
	_, err := ParseRules([]byte("grid: {width: 0}\n"))
	assert.Error(t, err)

	_, err = ParseRules([]byte("economy: {starting_health: -1}\n"))
	assert.ErrorContains(t, err, "starting_health")

	_, err = ParseRules([]byte("::not yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsFractionalWholeDeltas(t *testing.T) {
	r := DefaultRules()
	up := r.Tower.Upgrades[UpgradePower]
	up.Delta = 2.5
	r.Tower.Upgrades[UpgradePower] = up
	assert.ErrorContains(t, r.Validate(), `"power" delta 2.5`)

	r = DefaultRules()
	up = r.Tower.Upgrades[UpgradeAccuracy]
	up.Delta = 0.07
	r.Tower.Upgrades[UpgradeAccuracy] = up
	assert.NoError(t, r.Validate(), "accuracy steps are fractional")
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("economy:\n  starting_money: 1234\n"), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, rules.Economy.StartingMoney)

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read rules file")
}
