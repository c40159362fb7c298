// internal/event/types.go
package event

import (
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/types"
	"github.com/PaliBr/gamejam/pkg/gridmap"
)

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	EnemyArrived    EventType = "EnemyArrived"    // Враг дошёл до замка
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	TowerUpgraded   EventType = "TowerUpgraded"   // Башня улучшена
	TowerSelected   EventType = "TowerSelected"   // zero ID = selection cleared
	ProjectileFired EventType = "ProjectileFired" // Выстрел
	WaveStarted     EventType = "WaveStarted"     // Волна началась
	WaveEnded       EventType = "WaveEnded"       // Волна закончилась
	BaseDamaged     EventType = "BaseDamaged"     // Замок получил урон
	GameOver        EventType = "GameOver"
	SessionReset    EventType = "SessionReset"
	Advisory        EventType = "Advisory" // transient message for the player
)

// EnemyData is carried by EnemySpawned, EnemyKilled and EnemyArrived.
type EnemyData struct {
	ID     types.EntityID
	Wave   int
	Reward int // EnemyKilled only
}

// TowerData is carried by TowerPlaced, TowerUpgraded and TowerSelected.
type TowerData struct {
	ID    types.EntityID
	Cell  gridmap.Cell
	Track defs.UpgradeTrack // TowerUpgraded only
	Level int               // TowerUpgraded only
	Cost  int
}

// ProjectileData is carried by ProjectileFired.
type ProjectileData struct {
	ID       types.EntityID
	Tower    types.EntityID
	Target   types.EntityID
	Critical bool
}

// WaveData is carried by WaveStarted and WaveEnded.
type WaveData struct {
	Number  int
	Enemies int
}

// DamageData is carried by BaseDamaged.
type DamageData struct {
	Amount    int
	Health    int
	Attackers int
}
