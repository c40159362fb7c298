package app

import (
	"fmt"
	"strings"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/types"
)

// Snapshot is a read-only, JSON-friendly copy of the session state.
type Snapshot struct {
	TimeMs      int64                `json:"time_ms"`
	Phase       string               `json:"phase"`
	Health      int                  `json:"health"`
	Money       int                  `json:"money"`
	Wave        int                  `json:"wave"`
	WaveTotal   int                  `json:"wave_total"`
	WaveSpawned int                  `json:"wave_spawned"`
	Resolved    int                  `json:"wave_resolved"`
	Kills       int                  `json:"kills"`
	Arrivals    int                  `json:"arrivals"`
	Resets      int                  `json:"resets"`
	Message     string               `json:"message"`
	Enemies     []EnemySnapshot      `json:"enemies"`
	Towers      []TowerSnapshot      `json:"towers"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
}

type EnemySnapshot struct {
	ID        types.EntityID `json:"id"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    float64        `json:"health"`
	MaxHealth float64        `json:"max_health"`
	State     string         `json:"state"`
	Wave      int            `json:"wave"`
	Arrived   bool           `json:"arrived"`
}

type TowerSnapshot struct {
	ID       types.EntityID `json:"id"`
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Range    float64        `json:"range"`
	Damage   int            `json:"damage"`
	FireMs   int64          `json:"fire_interval_ms"`
	Crit     float64        `json:"crit_chance"`
	Levels   map[string]int `json:"levels"`
	Target   types.EntityID `json:"target,omitempty"`
	Selected bool           `json:"selected,omitempty"`
}

type ProjectileSnapshot struct {
	ID    types.EntityID `json:"id"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Angle float64        `json:"angle"`
}

// Snapshot copies the current state of the session.
func (g *Game) Snapshot() Snapshot {
	gs := g.ECS.GameState
	snap := Snapshot{
		TimeMs:      g.Now().Milliseconds(),
		Phase:       gs.Phase.String(),
		Health:      gs.Health,
		Money:       gs.Money,
		Wave:        gs.Wave,
		WaveTotal:   gs.WaveEnemiesTotal,
		WaveSpawned: gs.WaveEnemiesSpawned,
		Resolved:    gs.WaveEnemiesResolved,
		Kills:       gs.Kills,
		Arrivals:    gs.Arrivals,
		Resets:      g.resets,
		Message:     gs.Message,
		Enemies:     make([]EnemySnapshot, 0, g.ECS.Enemies.Len()),
		Towers:      make([]TowerSnapshot, 0, g.ECS.Towers.Len()),
		Projectiles: make([]ProjectileSnapshot, 0, g.ECS.Projectiles.Len()),
	}
	g.ECS.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		snap.Enemies = append(snap.Enemies, EnemySnapshot{
			ID:        id,
			X:         e.X,
			Y:         e.Y,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			State:     e.State.String(),
			Wave:      e.WaveNumber,
			Arrived:   e.ReachedTarget,
		})
		return true
	})
	g.ECS.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		levels := make(map[string]int, len(t.Levels))
		for track, lvl := range t.Levels {
			levels[string(track)] = lvl
		}
		snap.Towers = append(snap.Towers, TowerSnapshot{
			ID:       id,
			X:        t.Cell.X,
			Y:        t.Cell.Y,
			Range:    t.Range,
			Damage:   t.Damage,
			FireMs:   t.FireInterval.Milliseconds(),
			Crit:     t.CritChance,
			Levels:   levels,
			Target:   t.TargetID,
			Selected: t.Selected,
		})
		return true
	})
	g.ECS.Projectiles.Each(func(id types.EntityID, p *component.Projectile) bool {
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{ID: id, X: p.X, Y: p.Y, Angle: p.Angle})
		return true
	})
	return snap
}

// Report renders a short plain-text summary of the session.
func (g *Game) Report() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "time %.1fs  phase %s  resets %d\n", float64(s.TimeMs)/1000, s.Phase, s.Resets)
	fmt.Fprintf(&b, "health %d  money %d  wave %d (%d/%d resolved, %d spawned)\n",
		s.Health, s.Money, s.Wave, s.Resolved, s.WaveTotal, s.WaveSpawned)
	fmt.Fprintf(&b, "kills %d  arrivals %d  enemies alive %d  arrows in flight %d\n",
		s.Kills, s.Arrivals, len(s.Enemies), len(s.Projectiles))
	for _, t := range s.Towers {
		fmt.Fprintf(&b, "tower %d at (%d,%d): range %.0f damage %d interval %dms crit %.0f%% %s\n",
			t.ID, t.X, t.Y, t.Range, t.Damage, t.FireMs, t.Crit*100, formatLevels(t.Levels))
	}
	return b.String()
}

func formatLevels(levels map[string]int) string {
	if len(levels) == 0 {
		return "[no upgrades]"
	}
	parts := make([]string, 0, len(levels))
	for _, track := range defs.AllTracks {
		if lvl := levels[string(track)]; lvl > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", track.Label(), lvl))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
