// internal/system/utils.go
package system

import (
	"time"

	"github.com/PaliBr/gamejam/internal/component"
)

// ApplyDamage наносит урон врагу and starts the hit flash. It reports whether
// this hit was the killing one; an enemy already dead is never killed twice.
func ApplyDamage(enemy *component.Enemy, damage float64, now, flash time.Duration) bool {
	if enemy == nil || !enemy.Alive() || damage <= 0 {
		return false
	}
	enemy.Health -= damage
	enemy.FlashUntil = now + flash
	if enemy.Health > 0 {
		return false
	}
	enemy.Health = 0
	enemy.State = component.Dead
	return true
}
