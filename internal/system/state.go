// internal/system/state.go
package system

import (
	"fmt"
	"log"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/entity"
	"github.com/PaliBr/gamejam/internal/event"
	"github.com/PaliBr/gamejam/internal/timer"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

// StateSystem владеет экономикой сессии: health, money, the target-zone
// check, advisory messages and the defeat/restart transition.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *timer.Scheduler
	rules           defs.Rules
	restart         func()

	advisoryTimer timer.Handle
}

// NewStateSystem wires the system; restart is invoked once, RestartDelay after
// health reaches zero.
func NewStateSystem(ecs *entity.ECS, scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, rules defs.Rules, restart func()) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		rules:           rules,
		restart:         restart,
	}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

// Start puts the economy into its initial state.
func (s *StateSystem) Start() {
	*s.ecs.GameState = component.GameState{
		Phase:   component.BuildState,
		Health:  s.rules.Economy.StartingHealth,
		Money:   s.rules.Economy.StartingMoney,
		Wave:    1,
		Message: config.DefaultMessage,
	}
	s.advisoryTimer = 0
}

func (s *StateSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.WaveData)
	if !ok {
		return
	}
	switch e.Type {
	case event.WaveStarted:
		s.Advise(fmt.Sprintf("Wave %d starting! %d enemies", data.Number, data.Enemies))
	case event.WaveEnded:
		s.Advise(fmt.Sprintf("Wave %d complete! Next wave in %d seconds...", data.Number, int(s.rules.Waves.NextDelay.Seconds())))
	}
}

// Spend deducts cost if the player can afford it. Money never goes negative.
func (s *StateSystem) Spend(cost int) bool {
	gs := s.ecs.GameState
	if cost < 0 || gs.Money < cost {
		return false
	}
	gs.Money -= cost
	return true
}

// CanAfford reports whether cost fits into the current money.
func (s *StateSystem) CanAfford(cost int) bool {
	return cost >= 0 && s.ecs.GameState.Money >= cost
}

// Advise shows a transient message that falls back to the default text.
func (s *StateSystem) Advise(msg string) {
	s.ecs.GameState.Message = msg
	s.scheduler.Cancel(s.advisoryTimer)
	s.advisoryTimer = s.scheduler.After(s.rules.Timing.Advisory, func() {
		s.ecs.GameState.Message = config.DefaultMessage
		s.advisoryTimer = 0
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.Advisory, Data: msg})
}

// ResolveKill books the bounty of a killed enemy and returns it. An enemy
// already counted as arrived earns nothing and is not counted again.
func (s *StateSystem) ResolveKill(e *component.Enemy) int {
	if e.ReachedTarget {
		return 0
	}
	gs := s.ecs.GameState
	reward := s.rules.Enemy.RewardFor(e.ShotsToKill, e.WaveNumber)
	gs.Money += reward
	gs.Kills++
	gs.WaveEnemiesResolved++
	return reward
}

// InTargetZone reports whether c is the target cell or one of its eight
// neighbours.
func (s *StateSystem) InTargetZone(c gridmap.Cell) bool {
	t := s.rules.Grid.Target
	dx, dy := c.X-t.X, c.Y-t.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// CheckTargetZone runs on the target check interval. Every enemy standing in
// the zone costs one health point on every check; the first check that finds
// an enemy there also counts it as resolved, once.
func (s *StateSystem) CheckTargetZone() {
	gs := s.ecs.GameState
	if gs.Phase == component.DefeatState || gs.Health <= 0 {
		return
	}
	cellSize := s.rules.Grid.CellSize
	attackers := 0
	var arrived []types.EntityID
	s.ecs.Enemies.Each(func(id types.EntityID, e *component.Enemy) bool {
		if !e.Alive() || !s.InTargetZone(gridmap.PixelToCell(e.X, e.Y, cellSize)) {
			return true
		}
		attackers++
		if !e.ReachedTarget {
			e.ReachedTarget = true
			if e.State == component.Idle {
				e.State = component.Arrived
			}
			gs.Arrivals++
			gs.WaveEnemiesResolved++
			arrived = append(arrived, id)
		}
		return true
	})
	for _, id := range arrived {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyArrived, Data: event.EnemyData{ID: id, Wave: gs.Wave}})
	}
	if attackers == 0 {
		return
	}

	gs.Health -= attackers
	if gs.Health < 0 {
		gs.Health = 0
	}
	s.flashCastle()
	s.eventDispatcher.Dispatch(event.Event{Type: event.BaseDamaged, Data: event.DamageData{
		Amount:    attackers,
		Health:    gs.Health,
		Attackers: attackers,
	}})
	if gs.Health <= 0 {
		s.defeat()
	}
}

func (s *StateSystem) flashCastle() {
	gs := s.ecs.GameState
	gs.CastleFlashUntil = s.scheduler.Now() + s.rules.Timing.CastleFlash
}

func (s *StateSystem) defeat() {
	gs := s.ecs.GameState
	gs.Phase = component.DefeatState
	log.Printf("Game over on wave %d: %d kills, %d arrivals", gs.Wave, gs.Kills, gs.Arrivals)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Number: gs.Wave}})
	if s.restart != nil {
		s.scheduler.After(s.rules.Timing.RestartDelay, s.restart)
	}
}

// Current returns the phase of the session.
func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
