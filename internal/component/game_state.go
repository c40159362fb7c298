package component

import (
	"time"

	"github.com/PaliBr/gamejam/internal/types"
)

// Phase is the coarse state of a session.
type Phase int

const (
	// BuildState is the pause before a wave starts.
	BuildState Phase = iota
	WaveState
	// DefeatState freezes base damage until the session resets.
	DefeatState
)

func (p Phase) String() string {
	switch p {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case DefeatState:
		return "defeat"
	default:
		return "unknown"
	}
}

// GameState — компонент для хранения состояния игры: economy and wave
// counters of the running session.
type GameState struct {
	Phase  Phase
	Health int
	Money  int
	Wave   int

	WaveEnemiesTotal    int
	WaveEnemiesSpawned  int
	WaveEnemiesResolved int // kills + counted arrivals

	Kills    int
	Arrivals int

	SelectedTower    types.EntityID
	Message          string
	CastleFlashUntil time.Duration
}

// WaveComplete reports whether every enemy of the active wave is resolved.
func (s *GameState) WaveComplete() bool {
	return s.Phase == WaveState && s.WaveEnemiesResolved >= s.WaveEnemiesTotal
}
