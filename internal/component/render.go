// component/render.go
package component

import (
	"image/color"
	"time"

	"github.com/PaliBr/gamejam/internal/types"
)

// Kind tags the entity type of a render state.
type Kind int

const (
	KindTower Kind = iota
	KindEnemy
	KindProjectile
)

// RenderState is everything the renderer gets to know about an entity. The
// simulation never reads anything back from the renderer.
type RenderState struct {
	ID       types.EntityID
	Kind     Kind
	X, Y     float64
	Angle    float64
	Tint     color.RGBA
	Selected bool
	Phase    float64 // walk cycle for enemies
	Health   float64 // remaining health fraction for enemies
}

// Renderable is implemented by every entity the renderer draws.
type Renderable interface {
	RenderState(id types.EntityID, now time.Duration) RenderState
}
