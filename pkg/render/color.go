// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor  color.RGBA
	GridLineColor    color.RGBA
	BlockedColor     color.RGBA
	CastleColor      color.RGBA
	CastleFlashColor color.RGBA
	// GrassColors is ordered from untouched to worn out.
	GrassColors []color.RGBA
	StrokeWidth float32
}

// EntityColors holds the fixed colors of dynamic entities. Per-entity tints
// come with the render state.
type EntityColors struct {
	TowerStroke     color.RGBA
	SelectionColor  color.RGBA
	HealthBarBack   color.RGBA
	HealthBarFront  color.RGBA
	ProjectileColor color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WearColor picks the grass tint for a cell with wear left out of maxWear.
func WearColor(wear, maxWear int, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	if maxWear <= 0 {
		return palette[0]
	}
	ratio := float64(wear) / float64(maxWear)
	idx := int((1 - ratio) * float64(len(palette)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}
