// internal/system/movement.go
package system

import (
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/tween"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/internal/utils"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

const walkPhaseStep = 0.15

// MovementSystem ведёт врагов по их маршрутам: one cell-to-cell hop at a time,
// each hop a tween. Path answers from the planner are applied here.
type MovementSystem struct {
	ecs     *entity.ECS
	grid    *gridmap.Grid
	planner *gridmap.Planner
	tweener *tween.Tweener
	rules   defs.GridDefinition
}

func NewMovementSystem(ecs *entity.ECS, grid *gridmap.Grid, planner *gridmap.Planner, tweener *tween.Tweener, rules defs.GridDefinition) *MovementSystem {
	return &MovementSystem{
		ecs:     ecs,
		grid:    grid,
		planner: planner,
		tweener: tweener,
		rules:   rules,
	}
}

// RequestPath asks the planner for a route from the enemy's anchor cell to
// the path goal. The answer is applied on a later tick, if the enemy is still
// around to take it.
func (s *MovementSystem) RequestPath(id types.EntityID) {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok || !e.Alive() || e.ReachedTarget {
		return
	}
	from := e.AnchorCell(s.rules.CellSize)
	s.planner.Request(from, s.rules.Goal, func(path []gridmap.Cell, found bool) {
		s.applyPath(id, path, found)
	})
}

func (s *MovementSystem) applyPath(id types.EntityID, path []gridmap.Cell, found bool) {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok || !e.Alive() || e.ReachedTarget {
		return
	}
	if !found {
		// Keep walking the old route; the poll retries.
		e.NeedsPath = true
		return
	}
	e.NeedsPath = false
	if e.State == component.Moving {
		e.PendingPath = path
		e.HasPending = true
		return
	}
	e.Path.Replace(path)
}

// RecomputePaths re-plans every enemy not yet counted as arrived that either
// holds a non-empty route or is still waiting for one. Called after a tower
// is placed.
func (s *MovementSystem) RecomputePaths() int {
	n := 0
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if e.Alive() && !e.ReachedTarget && (e.Path.Remaining() > 0 || e.NeedsPath) {
			s.RequestPath(id)
			n++
		}
		return true
	})
	return n
}

// Poll runs on the path poll interval: enemies without a usable route ask
// again, idle enemies with cells left resume walking.
func (s *MovementSystem) Poll() {
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if !e.Alive() || e.ReachedTarget {
			return true
		}
		if e.NeedsPath {
			s.RequestPath(id)
		}
		if e.State == component.Idle {
			s.startHop(id, e)
		}
		return true
	})
}

// Update starts the next hop of every idle enemy that still has cells to walk.
func (s *MovementSystem) Update() {
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if e.State == component.Idle && !e.ReachedTarget {
			s.startHop(id, e)
		}
		return true
	})
}

// Stop cancels the running hop of an enemy that leaves the simulation.
func (s *MovementSystem) Stop(id types.EntityID) {
	s.tweener.CancelOwner(id)
}

func (s *MovementSystem) startHop(id types.EntityID, e *component.Enemy) {
	next, ok := e.Path.Next()
	if !ok {
		return
	}
	if !s.grid.IsWalkable(next) {
		// A tower went up on the route since it was planned.
		e.NeedsPath = true
		return
	}
	e.Path.Cursor++
	e.State = component.Moving
	e.HopTo = next
	s.grid.WearDown(next)

	tx, ty := next.ToPixel(s.rules.CellSize)
	dist := utils.Distance(e.X, e.Y, tx, ty)
	duration := time.Duration(dist / e.Speed * float64(time.Second))

	s.tweener.Add(tween.Move{
		Owner:    id,
		FromX:    e.X,
		FromY:    e.Y,
		ToX:      tx,
		ToY:      ty,
		Duration: duration,
		OnUpdate: func(x, y float64) {
			if e, ok := s.ecs.Enemies.Get(id); ok && e.Alive() {
				e.X, e.Y = x, y
				e.WalkPhase += walkPhaseStep
			}
		},
		OnComplete: func() {
			s.completeHop(id)
		},
	})
}

func (s *MovementSystem) completeHop(id types.EntityID) {
	e, ok := s.ecs.Enemies.Get(id)
	if !ok || !e.Alive() {
		return
	}
	if e.HasPending {
		e.Path.Replace(e.PendingPath)
		e.PendingPath = nil
		e.HasPending = false
	}
	if e.ReachedTarget {
		e.State = component.Arrived
		return
	}
	e.State = component.Idle
}
