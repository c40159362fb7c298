// internal/system/combat.go
package system

import (
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/internal/utils"
)

// CombatSystem управляет атакой башен: every tick each tower picks the nearest
// enemy in range and fires when its cooldown allows.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tower           defs.TowerDefinition
	projectile      defs.ProjectileDefinition
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tower defs.TowerDefinition, projectile defs.ProjectileDefinition) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		tower:           tower,
		projectile:      projectile,
	}
}

func (s *CombatSystem) Update(now time.Duration) {
	s.ecs.Towers.Each(func(id types.EntityID, tower *component.Tower) bool {
		target, enemy := s.findNearestEnemyInRange(tower)
		tower.TargetID = target
		if enemy == nil {
			return true
		}
		tower.Angle = utils.AngleBetween(tower.X, tower.Y, enemy.X, enemy.Y)
		if tower.CanFire(now) {
			s.fire(id, tower, target, enemy, now)
		}
		return true
	})
}

// findNearestEnemyInRange returns the closest live enemy strictly inside the
// tower's range. On equal distance the first one in registry order wins.
func (s *CombatSystem) findNearestEnemyInRange(tower *component.Tower) (types.EntityID, *component.Enemy) {
	var (
		bestID   types.EntityID
		best     *component.Enemy
		bestDist float64
	)
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if !e.Alive() {
			return true
		}
		d := utils.Distance(tower.X, tower.Y, e.X, e.Y)
		if d >= tower.Range {
			return true
		}
		if best == nil || d < bestDist {
			bestID, best, bestDist = id, e, d
		}
		return true
	})
	return bestID, best
}

// fire spawns one arrow aimed at where the target stands right now.
func (s *CombatSystem) fire(towerID types.EntityID, tower *component.Tower, targetID types.EntityID, target *component.Enemy, now time.Duration) {
	tower.LastFiredAt = now
	damage := float64(tower.Damage)
	critical := s.rng.Chance(tower.CritChance)
	if critical {
		damage *= s.tower.CritMultiple
	}

	id := s.ecs.NewEntity()
	s.ecs.Projectiles.Insert(id, &component.Projectile{
		Position:  tower.Position,
		OriginX:   tower.X,
		OriginY:   tower.Y,
		Angle:     utils.AngleBetween(tower.X, tower.Y, target.X, target.Y),
		Speed:     s.projectile.Speed,
		Damage:    damage,
		Critical:  critical,
		SpawnedAt: now,
		Lifetime:  s.projectile.Lifetime,
		Source:    towerID,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{
		ID:       id,
		Tower:    towerID,
		Target:   targetID,
		Critical: critical,
	}})
}
