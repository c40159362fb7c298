// internal/state/menu_state.go
package state

import (
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	rules defs.Rules
}

func NewMenuState(sm *StateMachine, rules defs.Rules) *MenuState {
	return &MenuState{sm: sm, rules: rules}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.rules))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, basicfont.Face7x13, "Castle Defense", config.ScreenHeight/2-20, config.GoldColor)
	drawCentered(screen, basicfont.Face7x13, "Press SPACE to start", config.ScreenHeight/2+10, config.TextLightColor)
}

func (m *MenuState) Exit() {}
