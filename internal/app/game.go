// internal/app/game.go
package app

import (
	"log"
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/system"
	"github.com/PaliBr/gamejam/internal/timer"
	"github.com/PaliBr/gamejam/internal/tween"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/internal/utils"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

// Game holds the main game state and logic: it owns every entity collection,
// the grid, the timers and the systems, and drives them one tick at a time.
// Everything runs on the caller's goroutine.
type Game struct {
	Rules           defs.Rules
	Grid            *gridmap.Grid
	Planner         *gridmap.Planner
	Scheduler       *timer.Scheduler
	Tweener         *tween.Tweener
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem   *system.MovementSystem
	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem

	resets int
}

// NewGame builds a session from rules and starts it. The first wave begins
// Rules.Waves.FirstDelay of game time later.
func NewGame(rules defs.Rules) *Game {
	grid := gridmap.NewGrid(rules.Grid.Width, rules.Grid.Height, rules.Grid.MaxWear)
	grid.Diagonal = rules.Grid.Diagonal
	grid.Protect(rules.Grid.Protect...)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Rules:           rules,
		Grid:            grid,
		Planner:         gridmap.NewPlanner(grid),
		Scheduler:       timer.NewScheduler(),
		Tweener:         tween.NewTweener(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(rules.Seed),
	}
	g.MovementSystem = system.NewMovementSystem(ecs, grid, g.Planner, g.Tweener, rules.Grid)
	g.StateSystem = system.NewStateSystem(ecs, g.Scheduler, eventDispatcher, rules, g.Reset)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Scheduler, eventDispatcher, g.MovementSystem, rules)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.Rng, rules.Tower, rules.Projectile)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.MovementSystem, g.StateSystem, rules.Projectile, rules.Timing.HitFlash)
	g.RenderSystem = system.NewRenderSystem(ecs)

	g.start()
	return g
}

func (g *Game) start() {
	g.StateSystem.Start()
	g.placeDemoTowers()
	g.Scheduler.Every(g.Rules.Timing.PathPoll, g.MovementSystem.Poll)
	g.Scheduler.Every(g.Rules.Timing.TargetCheck, g.StateSystem.CheckTargetZone)
	g.WaveSystem.Start()
}

// Update progresses the game state by dt of game time.
func (g *Game) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	g.Scheduler.Advance(dt)
	g.Planner.Calculate()
	g.Tweener.Update(dt)
	g.MovementSystem.Update()
	now := g.Scheduler.Now()
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update(dt, now)
}

// Reset throws the whole session away and starts a fresh one with the same
// rules and seed. Pending timers, tweens and path answers are dropped without
// running.
func (g *Game) Reset() {
	g.resets++
	log.Printf("Session reset (#%d)", g.resets)
	g.Scheduler.Reset()
	g.Tweener.Reset()
	g.Planner.Reset()
	g.ECS.Clear()
	g.Grid.Reset()
	g.Rng.Reseed(g.Rules.Seed)
	g.start()
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionReset, Data: g.resets})
}

// HandleClick reacts to a pointer-down at world pixel coordinates: a click on
// a tower selects it, a click on free ground clears the selection and tries to
// build there.
func (g *Game) HandleClick(x, y float64) {
	cell := gridmap.PixelToCell(x, y, g.Rules.Grid.CellSize)
	if !g.Grid.InBounds(cell) {
		return
	}
	if id, _, ok := g.ECS.TowerAt(cell); ok {
		g.SelectTower(id)
		return
	}
	g.SelectTower(0)
	g.PlaceTower(cell)
}

// --- Public Accessors ---

func (g *Game) Now() time.Duration {
	return g.Scheduler.Now()
}

func (g *Game) State() *component.GameState {
	return g.ECS.GameState
}

func (g *Game) Resets() int {
	return g.resets
}

func (g *Game) Enemy(id types.EntityID) (*component.Enemy, bool) {
	return g.ECS.Enemies.Get(id)
}

func (g *Game) Tower(id types.EntityID) (*component.Tower, bool) {
	return g.ECS.Towers.Get(id)
}

// SelectedTower returns the selected tower, if any.
func (g *Game) SelectedTower() (types.EntityID, *component.Tower, bool) {
	id := g.ECS.GameState.SelectedTower
	if id == 0 {
		return 0, nil, false
	}
	t, ok := g.ECS.Towers.Get(id)
	return id, t, ok
}

// RenderStates returns what the renderer needs to draw the current frame.
func (g *Game) RenderStates() []component.RenderState {
	return g.RenderSystem.States(g.Now())
}
