// internal/state/game_state.go
package state

import (
	"log"
	"time"

	"github.com/PaliBr/gamejam/internal/app"
	"github.com/PaliBr/gamejam/internal/component"
	"github.com/PaliBr/gamejam/internal/config"
	"github.com/PaliBr/gamejam/internal/defs"
	"github.com/PaliBr/gamejam/internal/ui"
	"github.com/PaliBr/gamejam/internal/utils"
	"github.com/PaliBr/gamejam/pkg/render"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	face            font.Face
	renderer        *render.GridRenderer
	hud             *ui.HUD
	indicator       *ui.StateIndicator
	healthIndicator *ui.PlayerHealthIndicator
	waveIndicator   *ui.WaveIndicator
	upgradePanel    *ui.UpgradePanel
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
}

func NewGameState(sm *StateMachine, rules defs.Rules) *GameState {
	gameLogic := app.NewGame(rules)
	face := basicfont.Face7x13

	mapColors := &render.MapColors{
		BackgroundColor:  config.BackgroundColor,
		GridLineColor:    config.GridLineColor,
		BlockedColor:     config.BlockedColor,
		CastleColor:      config.CastleColor,
		CastleFlashColor: config.CastleFlashColor,
		GrassColors:      config.GrassColors,
		StrokeWidth:      1,
	}
	entityColors := &render.EntityColors{
		TowerStroke:     config.TowerStroke,
		SelectionColor:  config.SelectionColor,
		HealthBarBack:   config.HealthBarBack,
		HealthBarFront:  config.HealthBarFront,
		ProjectileColor: config.ProjectileColor,
	}
	renderer := render.NewGridRenderer(gameLogic.Grid, rules.Grid.CellSize, config.UIBarHeight, rules.Grid.Target, mapColors, entityColors)

	return &GameState{
		sm:              sm,
		game:            gameLogic,
		face:            face,
		renderer:        renderer,
		hud:             ui.NewHUD(face),
		indicator:       ui.NewStateIndicator(config.IndicatorX, config.ButtonY, config.IndicatorRadius),
		healthIndicator: ui.NewPlayerHealthIndicator(config.HealthIndicatorX, config.ButtonY-13),
		waveIndicator:   ui.NewWaveIndicator(config.WaveIndicatorX, config.ButtonY, face),
		upgradePanel:    ui.NewUpgradePanel(face),
		speedButton:     ui.NewSpeedButton(config.SpeedButtonX, config.ButtonY, config.ButtonSize, config.SpeedColors, config.SpeedMultipliers),
		pauseButton:     ui.NewPauseButton(config.PauseButtonX, config.ButtonY, config.ButtonSize, config.PauseColor, config.PlayColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			g.game.UpgradeSelected(defs.AllTracks[i])
		}
	}

	dt := time.Duration(deltaTime * g.speedButton.Multiplier() * float64(time.Second))
	g.game.Update(dt)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if y < config.UIBarHeight {
			g.handleUIClick(x, y)
		} else {
			wx, wy := utils.ScreenToWorld(x, y, config.UIBarHeight)
			g.game.HandleClick(wx, wy)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SelectTower(0)
	}

	_, tower, _ := g.game.SelectedTower()
	g.upgradePanel.Sync(tower, g.game.Rules.Tower, g.game.State().Money)
}

// handleUIClick обрабатывает клики по верхней панели
func (g *GameState) handleUIClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.Contains(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.speedButton.ToggleState()
		}
	case g.pauseButton.Contains(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.pause()
		}
	default:
		if track, ok := g.upgradePanel.TrackAt(x, y); ok {
			g.game.UpgradeSelected(track)
		}
	}
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) copyReport() {
	if err := clipboard.WriteAll(g.game.Report()); err != nil {
		log.Printf("Failed to copy session report: %v", err)
		return
	}
	log.Println("Session report copied to clipboard")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	gs := g.game.State()
	flash := g.game.Now() < gs.CastleFlashUntil
	g.renderer.Draw(screen, g.game.RenderStates(), flash)

	g.hud.Draw(screen, gs, g.upgradePanel.IsVisible)
	g.upgradePanel.Draw(screen)
	g.healthIndicator.Draw(screen, gs.Health, g.game.Rules.Economy.StartingHealth)
	g.waveIndicator.Draw(screen, gs.Wave)

	stateColor := config.BuildStateColor
	switch gs.Phase {
	case component.WaveState:
		stateColor = config.WaveStateColor
	case component.DefeatState:
		stateColor = config.DefeatStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if gs.Phase == component.DefeatState {
		drawOverlay(screen, g.face, "GAME OVER")
	}
}

func (g *GameState) Exit() {}
