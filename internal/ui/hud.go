// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD рисует верхнюю панель: money, wave progress and the advisory line.
// The message gives way to the upgrade panel while a tower is selected.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, gs *component.GameState, upgradesShown bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.UIBarHeight, config.UIBarColor, false)
	vector.StrokeLine(screen, 0, config.UIBarHeight, config.ScreenWidth, config.UIBarHeight, 2, config.UIBorderColor, false)

	baseline := config.HUDTextY + h.face.Metrics().Ascent.Ceil()
	text.Draw(screen, fmt.Sprintf("Health: %d", gs.Health), h.face, config.HUDTextX, baseline, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Money: $%d", gs.Money), h.face, config.HUDTextX, baseline+config.HUDLineSpacing, config.MoneyTextColor)

	if upgradesShown {
		return
	}
	text.Draw(screen, gs.Message, h.face, config.UpgradeMenuX, baseline, config.InfoTextColor)
	text.Draw(screen, waveLine(gs), h.face, config.UpgradeMenuX, baseline+config.HUDLineSpacing, config.WaveTextColor)
}

func waveLine(gs *component.GameState) string {
	switch gs.Phase {
	case component.WaveState:
		return fmt.Sprintf("Wave %d: %d/%d enemies resolved", gs.Wave, gs.WaveEnemiesResolved, gs.WaveEnemiesTotal)
	case component.DefeatState:
		return fmt.Sprintf("The castle fell on wave %d", gs.Wave)
	default:
		return fmt.Sprintf("Wave %d incoming", gs.Wave)
	}
}
