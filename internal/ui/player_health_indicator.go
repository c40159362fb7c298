// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/PaliBr/gamejam/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthRows          = 2
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает здоровье замка.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует индикатор здоровья в виде сетки кружков. A circle stands for
// one health point, or for several when maxHealth exceeds the grid.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	slots := HealthRows * HealthCols
	perSlot := int(math.Ceil(float64(maxHealth) / float64(slots)))
	circles := (maxHealth + perSlot - 1) / perSlot
	filled := (health + perSlot - 1) / perSlot
	half := circles / 2

	for j := 0; j < circles; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		y := i.Y + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius

		var c color.RGBA
		switch {
		case j >= filled:
			c = config.HealthEmptyColor
		case filled <= half:
			c = config.HealthLowColor
		case j < filled-half:
			// "избыток" синий, остальное красное
			c = config.HealthFullColor
		default:
			c = config.HealthLowColor
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return HealthRows * (HealthCircleRadius*2 + HealthCircleSpacing)
}
