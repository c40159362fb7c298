// internal/system/projectile.go
package system

import (
	"math"
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	movement        *MovementSystem
	state           *StateSystem
	rules           defs.ProjectileDefinition
	hitFlash        time.Duration
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, movement *MovementSystem, state *StateSystem, rules defs.ProjectileDefinition, hitFlash time.Duration) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		movement:        movement,
		state:           state,
		rules:           rules,
		hitFlash:        hitFlash,
	}
}

// Update moves every arrow along its heading, then tests it against the
// enemies. An arrow hits the first enemy closer than the hit radius and is
// gone; an arrow that outlives its lifetime is dropped without effect.
func (s *ProjectileSystem) Update(dt, now time.Duration) {
	step := dt.Seconds()
	s.ecs.Projectiles.Each(func(id types.EntityID, p *component.Projectile) bool {
		if p.Expired(now) {
			s.ecs.Projectiles.Remove(id)
			return true
		}
		p.X += math.Cos(p.Angle) * p.Speed * step
		p.Y += math.Sin(p.Angle) * p.Speed * step

		if targetID, enemy := s.findHit(p); enemy != nil {
			s.ecs.Projectiles.Remove(id)
			s.hitTarget(targetID, enemy, p.Damage, now)
		}
		return true
	})
}

func (s *ProjectileSystem) findHit(p *component.Projectile) (types.EntityID, *component.Enemy) {
	var (
		hitID types.EntityID
		hit   *component.Enemy
	)
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if e.Alive() && utils.Distance(p.X, p.Y, e.X, e.Y) < s.rules.HitRadius {
			hitID, hit = id, e
			return false
		}
		return true
	})
	return hitID, hit
}

func (s *ProjectileSystem) hitTarget(id types.EntityID, enemy *component.Enemy, damage float64, now time.Duration) {
	if !ApplyDamage(enemy, damage, now, s.hitFlash) {
		return
	}
	s.KillEnemy(id, enemy)
}

// KillEnemy removes a dead enemy and pays its bounty. Only the call that
// actually removes the enemy from the registry has any effect.
func (s *ProjectileSystem) KillEnemy(id types.EntityID, enemy *component.Enemy) {
	if !s.ecs.Enemies.Remove(id) {
		return
	}
	enemy.State = component.Dead
	s.movement.Stop(id)
	if enemy.ReachedTarget {
		// Already resolved as an arrival.
		return
	}
	reward := s.state.ResolveKill(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		ID:     id,
		Wave:   enemy.WaveNumber,
		Reward: reward,
	}})
}

// Clear drops every arrow in flight.
func (s *ProjectileSystem) Clear() {
	s.ecs.Projectiles.Clear()
}
