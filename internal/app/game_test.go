package app

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

const frame = 10 * time.Millisecond

func run(g *Game, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		g.Update(frame)
	}
}

// runUntil steps the game until cond holds or limit game time has passed.
func runUntil(g *Game, limit time.Duration, cond func() bool) bool {
	for elapsed := time.Duration(0); elapsed < limit; elapsed += frame {
		if cond() {
			return true
		}
		g.Update(frame)
	}
	return cond()
}

// quietRules has no demo towers and no waves within any test's horizon.
func quietRules() defs.Rules {
	r := defs.DefaultRules()
	r.Economy.DemoTowers = nil
	r.Waves.FirstDelay = time.Hour
	return r
}

func TestScenarioA_DemoTowersChargedOnce(t *testing.T) {
	g := NewGame(defs.DefaultRules())
	gs := g.State()

	assert.Equal(t, 300, gs.Money)
	assert.Equal(t, 2, g.ECS.Towers.Len())
	assert.True(t, g.Grid.IsBlocked(gridmap.Cell{X: 2, Y: 2}))
	assert.True(t, g.Grid.IsBlocked(gridmap.Cell{X: 7, Y: 2}))

	run(g, 1900*time.Millisecond)
	assert.Equal(t, component.BuildState, gs.Phase, "wave 1 has not started yet")
	assert.Equal(t, 300, gs.Money)
	assert.Equal(t, 20, gs.Health)
	assert.Equal(t, 1, gs.Wave)
}

func TestScenarioB_WaveProgression(t *testing.T) {
	rules := defs.DefaultRules()
	rules.Economy.DemoTowers = nil
	rules.Economy.StartingHealth = 1000
	g := NewGame(rules)
	gs := g.State()

	run(g, 2*time.Second)
	require.Equal(t, component.WaveState, gs.Phase)
	assert.Equal(t, 7, gs.WaveEnemiesTotal)
	assert.Equal(t, 1, gs.WaveEnemiesSpawned)
	assert.Equal(t, "Wave 1 starting! 7 enemies", gs.Message)

	run(g, 3*time.Second)
	assert.Equal(t, 4, gs.WaveEnemiesSpawned, "one spawn per second")
	run(g, 4*time.Second)
	assert.Equal(t, 7, gs.WaveEnemiesSpawned)

	require.True(t, runUntil(g, 60*time.Second, func() bool { return gs.Wave == 2 }))
	assert.Equal(t, component.BuildState, gs.Phase)
	assert.Equal(t, 7, gs.WaveEnemiesResolved)
	assert.Equal(t, 7, gs.Arrivals)

	run(g, 9900*time.Millisecond)
	assert.Equal(t, component.BuildState, gs.Phase)
	run(g, 200*time.Millisecond)
	assert.Equal(t, component.WaveState, gs.Phase)
	assert.Equal(t, 9, gs.WaveEnemiesTotal)
	assert.Equal(t, 2, gs.Wave)
}

func TestScenarioC_KillReward(t *testing.T) {
	g := NewGame(quietRules())
	gs := g.State()

	id := g.ECS.NewEntity()
	e := &component.Enemy{
		Position:    component.Position{X: 100, Y: 100},
		Health:      75,
		MaxHealth:   75,
		Speed:       60,
		WaveNumber:  1,
		ShotsToKill: 3,
	}
	g.ECS.Enemies.Insert(id, e)
	g.ProjectileSystem.KillEnemy(id, e)

	assert.Equal(t, 530, gs.Money)
	assert.Equal(t, 1, gs.Kills)
}

func TestScenarioC_EconomyStaysConsistentUnderFire(t *testing.T) {
	rules := defs.DefaultRules()
	rules.Economy.StartingHealth = 1000
	g := NewGame(rules)
	gs := g.State()

	bounty, kills := 0, 0
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(e event.Event) {
		bounty += e.Data.(event.EnemyData).Reward
		kills++
	}))

	run(g, 25*time.Second)
	assert.Equal(t, 300+bounty, gs.Money)
	assert.Equal(t, kills, gs.Kills)
	assert.LessOrEqual(t, gs.WaveEnemiesResolved, gs.WaveEnemiesSpawned)
	assert.GreaterOrEqual(t, gs.Money, 0)
}

func TestScenarioD_PlacementReplansOnlyWalkingEnemies(t *testing.T) {
	g := NewGame(quietRules())

	add := func(cell gridmap.Cell, path []gridmap.Cell, arrived bool) (types.EntityID, *component.Enemy) {
		x, y := cell.ToPixel(g.Rules.Grid.CellSize)
		e := &component.Enemy{Position: component.Position{X: x, Y: y}, Health: 75, MaxHealth: 75, Speed: 60, ReachedTarget: arrived}
		e.Path.Replace(path)
		id := g.ECS.NewEntity()
		g.ECS.Enemies.Insert(id, e)
		return id, e
	}
	_, walking := add(gridmap.Cell{X: 3, Y: 3}, []gridmap.Cell{{X: 4, Y: 4}, {X: 5, Y: 5}}, false)
	arrivedPath := []gridmap.Cell{{X: 14, Y: 10}}
	_, arrived := add(gridmap.Cell{X: 14, Y: 9}, arrivedPath, true)
	_, pathless := add(gridmap.Cell{X: 1, Y: 5}, nil, false)

	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 4, Y: 4}))
	assert.Equal(t, 1, g.Planner.Pending())

	g.Update(0)
	require.NotEmpty(t, walking.Path.Cells)
	assert.NotContains(t, walking.Path.Cells, gridmap.Cell{X: 4, Y: 4}, "new route avoids the tower")
	assert.Equal(t, gridmap.Cell{X: 14, Y: 10}, walking.Path.Cells[len(walking.Path.Cells)-1])
	assert.Equal(t, arrivedPath, arrived.Path.Cells)
	assert.Empty(t, pathless.Path.Cells)
}

func TestPlaceTower_Rejections(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 150
	g := NewGame(rules)
	gs := g.State()

	for _, c := range []gridmap.Cell{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 15, Y: 9}} {
		assert.Equal(t, RejectedProtected, g.PlaceTower(c), "%v", c)
		assert.False(t, g.Grid.IsBlocked(c))
	}
	assert.Equal(t, "Cannot block the path! Enemies need a route.", gs.Message)
	assert.Equal(t, RejectedOutOfBounds, g.PlaceTower(gridmap.Cell{X: 16, Y: 0}))

	assert.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	assert.Equal(t, 50, gs.Money)
	assert.Equal(t, RejectedOccupied, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))

	assert.Equal(t, RejectedFunds, g.PlaceTower(gridmap.Cell{X: 6, Y: 6}))
	assert.Equal(t, 50, gs.Money, "money never goes negative")
	assert.Equal(t, "Not enough money for tower!", gs.Message)
	assert.Equal(t, 1, g.ECS.Towers.Len())

	run(g, 2100*time.Millisecond)
	assert.Equal(t, "Click to place towers ($100)", gs.Message)
}

func TestPlaceTower_ProtectedFailsEvenWithMoney(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 1_000_000
	rules.Grid.RequireOpenRoute = false
	g := NewGame(rules)
	for _, c := range []gridmap.Cell{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 15, Y: 9}} {
		assert.Equal(t, RejectedProtected, g.PlaceTower(c))
	}
	assert.Equal(t, 1_000_000, g.State().Money)
}

func TestPlaceTower_KeepsRouteOpen(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 5000
	g := NewGame(rules)

	for y := 0; y < 10; y++ {
		require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 1, Y: y}), "y=%d", y)
	}
	money := g.State().Money
	assert.Equal(t, RejectedBlocksRoute, g.PlaceTower(gridmap.Cell{X: 1, Y: 10}))
	assert.Equal(t, money, g.State().Money)
	assert.NotNil(t, gridmap.AStar(rules.Grid.Spawn, rules.Grid.Goal, g.Grid))
}

func TestHandleClick_SelectsAndPlaces(t *testing.T) {
	g := NewGame(quietRules())
	gs := g.State()

	g.HandleClick(5*64+10, 5*64+10)
	id, tower, ok := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})
	require.True(t, ok)
	assert.Equal(t, 400, gs.Money)
	assert.False(t, tower.Selected)

	g.HandleClick(5*64+40, 5*64+40)
	assert.Equal(t, id, gs.SelectedTower)
	assert.True(t, tower.Selected)
	assert.Equal(t, 400, gs.Money, "clicking a tower does not build")

	g.HandleClick(5*64+40, 5*64+40)
	assert.Zero(t, gs.SelectedTower, "second click deselects")
	assert.False(t, tower.Selected)

	g.HandleClick(-5, 10)
	assert.Equal(t, 1, g.ECS.Towers.Len())
}

func TestUpgradeTower(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 1000
	g := NewGame(rules)
	gs := g.State()
	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	id, tower, _ := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})
	assert.Equal(t, -math.Pi/2, tower.Angle, "a new tower faces up")

	require.True(t, g.UpgradeTower(id, defs.UpgradeRange))
	assert.Equal(t, 175.0, tower.Range)
	assert.Equal(t, 850, gs.Money)
	require.True(t, g.UpgradeTower(id, defs.UpgradeRange))
	assert.Equal(t, 775, gs.Money, "second level costs base + step")

	require.True(t, g.UpgradeTower(id, defs.UpgradePower))
	assert.Equal(t, 35, tower.Damage)

	require.True(t, g.UpgradeTower(id, defs.UpgradeAccuracy))
	assert.InDelta(t, 0.05, tower.CritChance, 1e-9)

	require.True(t, g.UpgradeTower(id, defs.UpgradeFireRate))
	assert.Equal(t, 900*time.Millisecond, tower.FireInterval)
	assert.Equal(t, 1, tower.Levels[defs.UpgradeFireRate])

	assert.False(t, g.UpgradeTower(id, defs.UpgradeTrack("laser")))
	assert.False(t, g.UpgradeTower(999, defs.UpgradeRange))
}

func TestUpgradeTower_InsufficientFundsIsNoOp(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 150
	g := NewGame(rules)
	gs := g.State()
	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	id, tower, _ := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})

	assert.False(t, g.UpgradeTower(id, defs.UpgradePower))
	assert.Equal(t, 50, gs.Money)
	assert.Equal(t, 25, tower.Damage)
	assert.Zero(t, tower.Levels[defs.UpgradePower])
	assert.Equal(t, "Not enough money for upgrade!", gs.Message)
}

func TestUpgradeTower_AccuracyCap(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 100_000
	g := NewGame(rules)
	gs := g.State()
	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	id, tower, _ := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})

	for i := 0; i < 10; i++ {
		require.True(t, g.UpgradeTower(id, defs.UpgradeAccuracy), "level %d", i+1)
	}
	assert.Equal(t, 0.5, tower.CritChance)

	money := gs.Money
	assert.False(t, g.UpgradeTower(id, defs.UpgradeAccuracy))
	assert.Equal(t, money, gs.Money, "a maxed track charges nothing")
	assert.Equal(t, 10, tower.Levels[defs.UpgradeAccuracy])
	assert.Equal(t, "This upgrade is already at its maximum!", gs.Message)
}

func TestUpgradeTower_RangeCap(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 100_000
	up := rules.Tower.Upgrades[defs.UpgradeRange]
	up.Limit = 200
	rules.Tower.Upgrades[defs.UpgradeRange] = up
	g := NewGame(rules)
	gs := g.State()
	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	id, tower, _ := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})

	require.True(t, g.UpgradeTower(id, defs.UpgradeRange))
	require.True(t, g.UpgradeTower(id, defs.UpgradeRange))
	assert.Equal(t, 200.0, tower.Range)

	money := gs.Money
	assert.False(t, g.UpgradeTower(id, defs.UpgradeRange))
	assert.Equal(t, money, gs.Money)
	assert.Equal(t, "This upgrade is already at its maximum!", gs.Message)
}

func TestUpgradeTower_FireRateFloor(t *testing.T) {
	rules := quietRules()
	rules.Economy.StartingMoney = 100_000
	g := NewGame(rules)
	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 5, Y: 5}))
	id, tower, _ := g.ECS.TowerAt(gridmap.Cell{X: 5, Y: 5})
	g.SelectTower(id)

	for i := 0; i < 8; i++ {
		require.True(t, g.UpgradeSelected(defs.UpgradeFireRate))
	}
	assert.Equal(t, 250*time.Millisecond, tower.FireInterval)
	money := g.State().Money
	assert.False(t, g.UpgradeSelected(defs.UpgradeFireRate))
	assert.Equal(t, money, g.State().Money)
}

func TestArrivedEnemyIsNeverAlsoAKill(t *testing.T) {
	g := NewGame(quietRules())
	gs := g.State()
	gs.Phase = component.WaveState
	gs.WaveEnemiesTotal = 3

	kills := 0
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))

	x, y := gridmap.Cell{X: 14, Y: 10}.ToPixel(g.Rules.Grid.CellSize)
	id := g.ECS.NewEntity()
	e := &component.Enemy{Position: component.Position{X: x, Y: y}, Health: 75, MaxHealth: 75, WaveNumber: 1, ShotsToKill: 3}
	g.ECS.Enemies.Insert(id, e)

	run(g, 3*time.Second)
	assert.Equal(t, 17, gs.Health, "three checks, one point each")
	assert.Equal(t, 1, gs.Arrivals)
	assert.Equal(t, 1, gs.WaveEnemiesResolved)

	g.ProjectileSystem.KillEnemy(id, e)
	g.ProjectileSystem.KillEnemy(id, e)
	assert.Zero(t, g.ECS.Enemies.Len())
	assert.Equal(t, 1, gs.WaveEnemiesResolved)
	assert.Equal(t, 0, gs.Kills)
	assert.Equal(t, 0, kills)
	assert.Equal(t, 500, gs.Money, "no bounty for an enemy that already arrived")

	run(g, 2*time.Second)
	assert.Equal(t, 17, gs.Health, "a removed enemy no longer hurts the castle")
}

func TestDefeatResetsSession(t *testing.T) {
	rules := defs.DefaultRules()
	rules.Economy.DemoTowers = nil
	rules.Economy.StartingHealth = 1
	g := NewGame(rules)
	gs := g.State()

	require.Equal(t, Placed, g.PlaceTower(gridmap.Cell{X: 15, Y: 0}))
	resets := 0
	g.EventDispatcher.Subscribe(event.SessionReset, event.ListenerFunc(func(event.Event) { resets++ }))

	require.True(t, runUntil(g, 60*time.Second, func() bool { return gs.Phase == component.DefeatState }))
	assert.Equal(t, 0, gs.Health)

	run(g, 500*time.Millisecond)
	assert.Equal(t, component.DefeatState, gs.Phase)
	assert.Equal(t, 0, gs.Health, "no damage while defeated")

	run(g, 600*time.Millisecond)
	assert.Equal(t, 1, g.Resets())
	assert.Equal(t, 1, resets)
	assert.Equal(t, component.BuildState, gs.Phase)
	assert.Equal(t, 1, gs.Health)
	assert.Equal(t, 500, gs.Money)
	assert.Equal(t, 1, gs.Wave)
	assert.Zero(t, g.ECS.Enemies.Len())
	assert.Zero(t, g.ECS.Projectiles.Len())
	assert.Zero(t, g.ECS.Towers.Len())
	assert.Empty(t, g.Grid.BlockedCells())
	assert.Equal(t, g.Grid.MaxWear(), g.Grid.Wear(gridmap.Cell{X: 1, Y: 1}))

	// The fresh session runs its own first wave.
	require.True(t, runUntil(g, 3*time.Second, func() bool { return gs.Phase == component.WaveState }))
}

func TestSnapshotAndReport(t *testing.T) {
	g := NewGame(defs.DefaultRules())
	run(g, 3*time.Second)

	snap := g.Snapshot()
	assert.Equal(t, "wave", snap.Phase)
	assert.Equal(t, 300, snap.Money)
	assert.Len(t, snap.Towers, 2)
	assert.NotEmpty(t, snap.Enemies)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"money":300`)

	report := g.Report()
	assert.Contains(t, report, "money 300")
	assert.Contains(t, report, "tower")
}

func TestDeterministicReplay(t *testing.T) {
	a := NewGame(defs.DefaultRules())
	b := NewGame(defs.DefaultRules())
	run(a, 30*time.Second)
	run(b, 30*time.Second)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
