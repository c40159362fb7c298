// internal/entity/ecs.go
package entity

import (
	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

const (
	enemyCapacity      = 64
	towerCapacity      = 32
	projectileCapacity = 64
)

// ECS owns every entity collection of a session. Ids are never reused within
// a session, so a stale id can only miss, never alias a newer entity.
type ECS struct {
	NextID      types.EntityID
	Enemies     *Registry[component.Enemy]
	Towers      *Registry[component.Tower]
	Projectiles *Registry[component.Projectile]
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     NewRegistry[component.Enemy](enemyCapacity),
		Towers:      NewRegistry[component.Tower](towerCapacity),
		Projectiles: NewRegistry[component.Projectile](projectileCapacity),
		GameState: &component.GameState{
			Phase: component.BuildState,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Clear drops every entity and resets the id counter and game state.
func (ecs *ECS) Clear() {
	ecs.NextID = 1
	ecs.Enemies.Clear()
	ecs.Towers.Clear()
	ecs.Projectiles.Clear()
	*ecs.GameState = component.GameState{Phase: component.BuildState}
}

// TowerAt returns the tower standing on the given cell.
func (ecs *ECS) TowerAt(cell gridmap.Cell) (types.EntityID, *component.Tower, bool) {
	var (
		foundID types.EntityID
		found   *component.Tower
	)
	ecs.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		if t.Cell == cell {
			foundID, found = id, t
			return false
		}
		return true
	})
	return foundID, found, found != nil
}
