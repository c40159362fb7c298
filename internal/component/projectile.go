// internal/component/projectile.go
package component

import (
	"time"

	"github.com/PaliBr/gamejam/internal/types"
)

// Projectile представляет летящую стрелу. It flies straight along Angle from
// its origin and is discarded after Lifetime.
type Projectile struct {
	Position
	OriginX, OriginY float64
	Angle            float64
	Speed            float64
	Damage           float64
	Critical         bool
	SpawnedAt        time.Duration
	Lifetime         time.Duration
	Source           types.EntityID // tower that fired it
}

// Expired reports whether the projectile outlived its lifetime at now.
func (p *Projectile) Expired(now time.Duration) bool {
	return now-p.SpawnedAt >= p.Lifetime
}
