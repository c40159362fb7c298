package component

import (
	"image/color"
	"time"

	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/types"
)

// RenderState of an enemy: the body darkens as health drops and flashes
// while a hit is fresh.
func (e *Enemy) RenderState(id types.EntityID, now time.Duration) RenderState {
	frac := 1.0
	if e.MaxHealth > 0 {
		frac = e.Health / e.MaxHealth
	}
	tint := blend(config.EnemyDeadColor, config.EnemyColor, frac)
	if now < e.FlashUntil {
		tint = config.EnemyHitColor
	}
	return RenderState{
		ID:     id,
		Kind:   KindEnemy,
		X:      e.X,
		Y:      e.Y,
		Tint:   tint,
		Phase:  e.WalkPhase,
		Health: frac,
	}
}

func (t *Tower) RenderState(id types.EntityID, _ time.Duration) RenderState {
	return RenderState{
		ID:       id,
		Kind:     KindTower,
		X:        t.X,
		Y:        t.Y,
		Angle:    t.Angle,
		Tint:     config.TowerColor,
		Selected: t.Selected,
	}
}

func (p *Projectile) RenderState(id types.EntityID, _ time.Duration) RenderState {
	tint := config.ProjectileColor
	if p.Critical {
		tint = config.CritColor
	}
	return RenderState{
		ID:    id,
		Kind:  KindProjectile,
		X:     p.X,
		Y:     p.Y,
		Angle: p.Angle,
		Tint:  tint,
	}
}

// blend mixes from -> to by t in [0, 1].
func blend(from, to color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
