package component

import (
	"time"

	"github.com/PaliBr/gamejam/pkg/gridmap"
)

// MovementState is the position of an enemy in its movement state machine:
// Idle -> Moving -> (Idle | Arrived | Dead).
type MovementState int

const (
	Idle MovementState = iota
	Moving
	Arrived
	Dead
)

func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Arrived:
		return "arrived"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy представляет вражескую сущность.
type Enemy struct {
	Position
	Health    float64
	MaxHealth float64
	Speed     float64 // pixels per second
	Path      Path
	State     MovementState

	// HopTo is the cell the current hop ends in, valid while Moving.
	HopTo gridmap.Cell
	// PendingPath is a route that arrived mid-hop; it replaces Path when the
	// hop completes.
	PendingPath []gridmap.Cell
	HasPending  bool
	// NeedsPath is set while the enemy has no usable answer from the planner;
	// the path poll retries it.
	NeedsPath bool

	// ReachedTarget marks an enemy counted as arrived. It is set once and
	// never cleared.
	ReachedTarget bool

	WaveNumber  int
	ShotsToKill float64 // frozen at spawn, drives the kill reward

	WalkPhase  float64
	FlashUntil time.Duration
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e.State != Dead
}

// AnchorCell is the cell new paths are planned from: the end of the current
// hop while moving, the occupied cell otherwise.
func (e *Enemy) AnchorCell(cellSize float64) gridmap.Cell {
	if e.State == Moving {
		return e.HopTo
	}
	return gridmap.PixelToCell(e.X, e.Y, cellSize)
}
