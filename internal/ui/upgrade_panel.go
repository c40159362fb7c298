// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// UpgradePanel shows the four upgrade buttons of the selected tower in the
// top bar.
type UpgradePanel struct {
	IsVisible bool
	face      font.Face
	buttons   map[defs.UpgradeTrack]*Button
}

func NewUpgradePanel(face font.Face) *UpgradePanel {
	p := &UpgradePanel{
		face:    face,
		buttons: make(map[defs.UpgradeTrack]*Button, len(defs.AllTracks)),
	}
	top := (config.UIBarHeight - config.UpgradeIconSize) / 2
	for i, track := range defs.AllTracks {
		x := config.UpgradeMenuX + i*config.UpgradeIconSpacing
		rect := image.Rect(x, top, x+config.UpgradeIconSpacing-10, top+config.UpgradeIconSize)
		p.buttons[track] = NewButton(rect, face, track.Label())
	}
	return p
}

// Sync refreshes the captions from the selected tower; a nil tower hides the
// panel.
func (p *UpgradePanel) Sync(tower *component.Tower, def defs.TowerDefinition, money int) {
	p.IsVisible = tower != nil
	if tower == nil {
		return
	}
	for _, track := range defs.AllTracks {
		b := p.buttons[track]
		cost := tower.UpgradeCost(def, track)
		b.Lines = []string{
			fmt.Sprintf("%s %d", track.Label(), tower.Levels[track]),
			fmt.Sprintf("$%d", cost),
		}
		b.Disabled = money < cost
	}
}

// TrackAt returns the track whose button contains the point.
func (p *UpgradePanel) TrackAt(x, y int) (defs.UpgradeTrack, bool) {
	if !p.IsVisible {
		return "", false
	}
	for _, track := range defs.AllTracks {
		if p.buttons[track].Contains(x, y) {
			return track, true
		}
	}
	return "", false
}

func (p *UpgradePanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible {
		return
	}
	cx, cy := ebiten.CursorPosition()
	for _, track := range defs.AllTracks {
		p.buttons[track].Draw(screen, cx, cy)
	}
}
