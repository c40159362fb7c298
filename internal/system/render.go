// internal/system/render.go
package system

import (
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/types"
)

// RenderSystem собирает состояние для отрисовки. It only reads entities;
// nothing the renderer does flows back into the simulation.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// States collects the render state of every entity: towers first, then
// enemies, then arrows, so later entries are drawn on top.
func (s *RenderSystem) States(now time.Duration) []component.RenderState {
	states := make([]component.RenderState, 0, s.ecs.Towers.Len()+s.ecs.Enemies.Len()+s.ecs.Projectiles.Len())
	s.ecs.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		states = append(states, t.RenderState(id, now))
		return true
	})
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		states = append(states, e.RenderState(id, now))
		return true
	})
	s.ecs.Projectiles.Each(func(id types.EntityID, p *component.Projectile) bool {
		states = append(states, p.RenderState(id, now))
		return true
	})
	return states
}
