// pkg/render/grid_renderer.go
package render

import (
	"math"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	bowLength       = 26.0
	healthBarWidth  = 20.0
	healthBarHeight = 3.0
	castleInset     = 6.0
)

// GridRenderer draws the play field and everything on it. The terrain is
// pre-rendered into mapImage and only redrawn when a cell changes.
type GridRenderer struct {
	grid        *gridmap.Grid
	cellSize    float64
	offsetY     float64
	target      gridmap.Cell
	colors      *MapColors
	entity      *EntityColors
	mapImage    *ebiten.Image // Поле для предрендеренной карты
	fingerprint uint64
}

func NewGridRenderer(grid *gridmap.Grid, cellSize, offsetY float64, target gridmap.Cell, colors *MapColors, entity *EntityColors) *GridRenderer {
	w := int(float64(grid.Width) * cellSize)
	h := int(float64(grid.Height) * cellSize)
	r := &GridRenderer{
		grid:     grid,
		cellSize: cellSize,
		offsetY:  offsetY,
		target:   target,
		colors:   colors,
		entity:   entity,
		mapImage: ebiten.NewImage(w, h),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	cs := float32(r.cellSize)
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			c := gridmap.Cell{X: x, Y: y}
			fill := WearColor(r.grid.Wear(c), r.grid.MaxWear(), r.colors.GrassColors)
			if r.grid.IsBlocked(c) {
				fill = r.colors.BlockedColor
			}
			px, py := float32(x)*cs, float32(y)*cs
			vector.DrawFilledRect(r.mapImage, px, py, cs, cs, fill, false)
			vector.StrokeRect(r.mapImage, px, py, cs, cs, r.colors.StrokeWidth, r.colors.GridLineColor, false)
		}
	}
	r.fingerprint = r.currentFingerprint()
}

// currentFingerprint folds wear and blocking of every cell into one number.
func (r *GridRenderer) currentFingerprint() uint64 {
	var h uint64 = 1469598103934665603
	for y := 0; y < r.grid.Height; y++ {
		for x := 0; x < r.grid.Width; x++ {
			c := gridmap.Cell{X: x, Y: y}
			v := uint64(r.grid.Wear(c)) << 1
			if r.grid.IsBlocked(c) {
				v |= 1
			}
			h = (h ^ v) * 1099511628211
		}
	}
	return h
}

// Draw renders the terrain, the castle and the entities of one frame.
func (r *GridRenderer) Draw(screen *ebiten.Image, states []component.RenderState, castleFlash bool) {
	if r.currentFingerprint() != r.fingerprint {
		r.RenderMapImage()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, r.offsetY)
	screen.DrawImage(r.mapImage, op)

	r.drawCastle(screen, castleFlash)
	r.DrawEntities(screen, states)
}

func (r *GridRenderer) drawCastle(screen *ebiten.Image, flash bool) {
	fill := r.colors.CastleColor
	if flash {
		fill = r.colors.CastleFlashColor
	}
	cs := float32(r.cellSize)
	x := float32(r.target.X)*cs + castleInset
	y := float32(r.target.Y)*cs + castleInset + float32(r.offsetY)
	size := cs - 2*castleInset
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)

	// Зубцы
	merlon := size / 5
	dark := DarkenColor(fill)
	for i := 0; i < 5; i += 2 {
		vector.DrawFilledRect(screen, x+float32(i)*merlon, y-merlon/2, merlon, merlon, dark, false)
	}
	vector.StrokeRect(screen, x, y, size, size, 2, dark, false)
}

// DrawEntities draws towers, enemies and arrows in the order given.
func (r *GridRenderer) DrawEntities(screen *ebiten.Image, states []component.RenderState) {
	for _, s := range states {
		x, y := float32(s.X), float32(s.Y+r.offsetY)
		switch s.Kind {
		case component.KindTower:
			r.drawTower(screen, s, x, y)
		case component.KindEnemy:
			r.drawEnemy(screen, s, x, y)
		case component.KindProjectile:
			dx := float32(math.Cos(s.Angle) * config.ProjectileLength / 2)
			dy := float32(math.Sin(s.Angle) * config.ProjectileLength / 2)
			vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 2, s.Tint, true)
		}
	}
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, s component.RenderState, x, y float32) {
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, s.Tint, true)
	vector.StrokeCircle(screen, x, y, config.TowerRadius, 3, r.entity.TowerStroke, true)
	bx := x + float32(math.Cos(s.Angle)*bowLength)
	by := y + float32(math.Sin(s.Angle)*bowLength)
	vector.StrokeLine(screen, x, y, bx, by, 3, r.entity.ProjectileColor, true)
	if s.Selected {
		vector.StrokeCircle(screen, x, y, config.SelectionRadius, 2, r.entity.SelectionColor, true)
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, s component.RenderState, x, y float32) {
	bob := float32(math.Sin(s.Phase) * 2)
	vector.DrawFilledCircle(screen, x, y+bob, config.EnemyRadius, s.Tint, true)
	vector.StrokeCircle(screen, x, y+bob, config.EnemyRadius, 1, DarkenColor(s.Tint), true)

	if s.Health >= 1 {
		return
	}
	bx := x - healthBarWidth/2
	by := y - config.EnemyRadius - 6
	vector.DrawFilledRect(screen, bx, by, healthBarWidth, healthBarHeight, r.entity.HealthBarBack, false)
	vector.DrawFilledRect(screen, bx, by, float32(healthBarWidth*s.Health), healthBarHeight, r.entity.HealthBarFront, false)
}
