// internal/system/wave.go
package system

import (
	"log"
	"time"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/timer"
	"github.com/PaliBr/gamejam/internal/types"
)

// WaveSystem запускает волны: spawns the enemies of a wave on a fixed stagger,
// notices when every one of them is resolved and schedules the next wave.
// Waves never run out.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *timer.Scheduler
	movement        *MovementSystem
	rules           defs.Rules
}

func NewWaveSystem(ecs *entity.ECS, scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, movement *MovementSystem, rules defs.Rules) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		movement:        movement,
		rules:           rules,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyArrived, ws)
	return ws
}

// Start schedules the first wave.
func (s *WaveSystem) Start() {
	s.scheduler.After(s.rules.Waves.FirstDelay, s.StartWave)
}

// StartWave begins the wave whose number is currently stored in the game
// state and schedules all of its spawns.
func (s *WaveSystem) StartWave() {
	gs := s.ecs.GameState
	if gs.Phase != component.BuildState {
		return
	}
	n := gs.Wave
	total := s.rules.Waves.EnemyCount(n)
	gs.Phase = component.WaveState
	gs.WaveEnemiesTotal = total
	gs.WaveEnemiesSpawned = 0
	gs.WaveEnemiesResolved = 0

	log.Printf("Wave %d started: %d enemies", n, total)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: n, Enemies: total}})

	for i := 0; i < total; i++ {
		delay := s.rules.Waves.SpawnInterval * time.Duration(i)
		s.scheduler.After(delay, func() { s.spawnEnemy(n) })
	}
}

func (s *WaveSystem) spawnEnemy(wave int) {
	gs := s.ecs.GameState
	if gs.Phase == component.DefeatState {
		return
	}
	def := s.rules.Enemy
	health := def.HealthFor(wave)
	x, y := s.rules.Grid.Spawn.ToPixel(s.rules.Grid.CellSize)

	id := s.ecs.NewEntity()
	s.ecs.Enemies.Insert(id, &component.Enemy{
		Position:    component.Position{X: x, Y: y},
		Health:      health,
		MaxHealth:   health,
		Speed:       def.Speed,
		State:       component.Idle,
		NeedsPath:   true,
		WaveNumber:  wave,
		ShotsToKill: def.ShotsToKillFor(wave),
	})
	gs.WaveEnemiesSpawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{ID: id, Wave: wave}})
	s.movement.RequestPath(id)
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled || e.Type == event.EnemyArrived {
		s.checkComplete()
	}
}

func (s *WaveSystem) checkComplete() {
	gs := s.ecs.GameState
	if !gs.WaveComplete() {
		return
	}
	finished := gs.Wave
	gs.Phase = component.BuildState
	gs.Wave++
	log.Printf("Wave %d complete: %d kills, %d arrivals so far", finished, gs.Kills, gs.Arrivals)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: finished, Enemies: gs.WaveEnemiesTotal}})
	s.scheduler.After(s.rules.Waves.NextDelay, s.StartWave)
}

// Enemies returns the ids of the live enemies of the given wave.
func (s *WaveSystem) Enemies(wave int) []types.EntityID {
	var ids []types.EntityID
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if e.WaveNumber == wave {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}
