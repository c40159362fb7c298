// internal/defs/rules.go
package defs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/PaliBr/gamejam/pkg/gridmap"
)

// GridDefinition describes the play field.
type GridDefinition struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	CellSize float64        `yaml:"cell_size"`
	Diagonal bool           `yaml:"diagonal"`
	MaxWear  int            `yaml:"max_wear"`
	Spawn    gridmap.Cell   `yaml:"spawn"`
	Target   gridmap.Cell   `yaml:"target"` // the castle
	Goal     gridmap.Cell   `yaml:"goal"`   // where enemy paths end, next to the castle
	Protect  []gridmap.Cell `yaml:"protect"`
	// RequireOpenRoute rejects placements that would cut Spawn off from Goal.
	RequireOpenRoute bool `yaml:"require_open_route"`
}

// EconomyDefinition holds the starting state of a session.
type EconomyDefinition struct {
	StartingHealth int            `yaml:"starting_health"`
	StartingMoney  int            `yaml:"starting_money"`
	DemoTowers     []gridmap.Cell `yaml:"demo_towers"`
}

// ProjectileDefinition holds the fixed arrow parameters.
type ProjectileDefinition struct {
	Speed     float64       `yaml:"speed"` // pixels per second
	Lifetime  time.Duration `yaml:"lifetime"`
	HitRadius float64       `yaml:"hit_radius"`
}

// TimingDefinition holds the fixed cadences of the session timers.
type TimingDefinition struct {
	PathPoll     time.Duration `yaml:"path_poll"`
	TargetCheck  time.Duration `yaml:"target_check"`
	RestartDelay time.Duration `yaml:"restart_delay"`
	Advisory     time.Duration `yaml:"advisory"`
	HitFlash     time.Duration `yaml:"hit_flash"`
	CastleFlash  time.Duration `yaml:"castle_flash"`
}

// Rules is the complete tuning of a session.
type Rules struct {
	Seed       int64                `yaml:"seed"` // 0 = time based
	Grid       GridDefinition       `yaml:"grid"`
	Economy    EconomyDefinition    `yaml:"economy"`
	Tower      TowerDefinition      `yaml:"tower"`
	Enemy      EnemyDefinition      `yaml:"enemy"`
	Waves      WaveDefinition       `yaml:"waves"`
	Projectile ProjectileDefinition `yaml:"projectile"`
	Timing     TimingDefinition     `yaml:"timing"`
}

// DefaultRules returns the tuning of the original game.
func DefaultRules() Rules {
	return Rules{
		Seed: 1,
		Grid: GridDefinition{
			Width:    16,
			Height:   11,
			CellSize: 64,
			Diagonal: true,
			MaxWear:  20,
			Spawn:    gridmap.Cell{X: 0, Y: 0},
			Target:   gridmap.Cell{X: 15, Y: 10},
			Goal:     gridmap.Cell{X: 14, Y: 10},
			Protect: []gridmap.Cell{
				{X: 15, Y: 10},
				{X: 14, Y: 10},
				{X: 15, Y: 9},
			},
			RequireOpenRoute: true,
		},
		Economy: EconomyDefinition{
			StartingHealth: 20,
			StartingMoney:  500,
			DemoTowers:     []gridmap.Cell{{X: 2, Y: 2}, {X: 7, Y: 2}},
		},
		Tower: DefaultTower(),
		Enemy: DefaultEnemy(),
		Waves: DefaultWaves(),
		Projectile: ProjectileDefinition{
			Speed:     250,
			Lifetime:  2 * time.Second,
			HitRadius: 15,
		},
		Timing: TimingDefinition{
			PathPoll:     500 * time.Millisecond,
			TargetCheck:  time.Second,
			RestartDelay: time.Second,
			Advisory:     2 * time.Second,
			HitFlash:     100 * time.Millisecond,
			CastleFlash:  200 * time.Millisecond,
		},
	}
}

// Validate rejects rule sets the simulation cannot run with.
func (r Rules) Validate() error {
	var errs []error
	g := r.Grid
	if g.Width <= 0 || g.Height <= 0 || g.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid: invalid size %dx%d cell %.1f", g.Width, g.Height, g.CellSize))
	}
	inside := func(c gridmap.Cell) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
	}
	for name, c := range map[string]gridmap.Cell{"spawn": g.Spawn, "target": g.Target, "goal": g.Goal} {
		if !inside(c) {
			errs = append(errs, fmt.Errorf("grid: %s %v outside the grid", name, c))
		}
	}
	if r.Economy.StartingHealth <= 0 {
		errs = append(errs, errors.New("economy: starting_health must be positive"))
	}
	if r.Economy.StartingMoney < 0 {
		errs = append(errs, errors.New("economy: starting_money must not be negative"))
	}
	if r.Tower.Cost < 0 || r.Tower.Damage <= 0 || r.Tower.FireInterval <= 0 || r.Tower.Range <= 0 {
		errs = append(errs, errors.New("tower: cost, damage, fire_interval and range must be positive"))
	}
	for _, track := range AllTracks {
		u, ok := r.Tower.Upgrades[track]
		if !ok {
			errs = append(errs, fmt.Errorf("tower: missing upgrade track %q", track))
			continue
		}
		if u.BaseCost < 0 || u.CostStep < 0 {
			errs = append(errs, fmt.Errorf("tower: upgrade %q has a negative cost", track))
		}
		if (track == UpgradePower || track == UpgradeFireRate) && u.Delta != math.Trunc(u.Delta) {
			errs = append(errs, fmt.Errorf("tower: upgrade %q delta %v must be a whole number", track, u.Delta))
		}
	}
	if r.Enemy.Speed <= 0 || r.Enemy.BaseDamage <= 0 || r.Enemy.BaseShotsToKill <= 0 {
		errs = append(errs, errors.New("enemy: speed, base_damage and base_shots_to_kill must be positive"))
	}
	if r.Waves.SpawnInterval <= 0 || r.Waves.EnemyCount(1) <= 0 {
		errs = append(errs, errors.New("waves: spawn_interval and wave size must be positive"))
	}
	if r.Projectile.Speed <= 0 || r.Projectile.Lifetime <= 0 || r.Projectile.HitRadius <= 0 {
		errs = append(errs, errors.New("projectile: speed, lifetime and hit_radius must be positive"))
	}
	t := r.Timing
	if t.PathPoll <= 0 || t.TargetCheck <= 0 {
		errs = append(errs, errors.New("timing: path_poll and target_check must be positive"))
	}
	return errors.Join(errs...)
}
