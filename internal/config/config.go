// internal/config/config.go
package config

import "image/color"

const (
	CellSize     = 64
	GridWidth    = 16
	GridHeight   = 11
	UIBarHeight  = 64
	ScreenWidth  = GridWidth * CellSize
	ScreenHeight = GridHeight*CellSize + UIBarHeight
	MaxDeltaTime = 0.06

	EnemyRadius      = 8.0
	TowerRadius      = 22.0
	ProjectileLength = 14.0
	SelectionRadius  = 35.0

	HUDTextX       = 10
	HUDTextY       = 10
	HUDLineSpacing = 25

	UpgradeIconSize    = 45
	UpgradeIconSpacing = 100
	UpgradeMenuX       = 130

	// Правая часть панели
	HealthIndicatorX = ScreenWidth - 330
	WaveIndicatorX   = ScreenWidth - 150
	IndicatorX       = ScreenWidth - 105
	SpeedButtonX     = ScreenWidth - 65
	PauseButtonX     = ScreenWidth - 25
	ButtonY          = UIBarHeight / 2
	IndicatorRadius  = 10
	ButtonSize       = 10
	ClickCooldown    = 150 // ms

	DefaultMessage = "Click to place towers ($100)"

	// SpectatorAddr is where the headless runner serves its websocket feed.
	SpectatorAddr = "localhost:8089"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{0x2d, 0x5a, 0x2d, 77}
	UIBarColor      = color.RGBA{0x5d, 0x4e, 0x37, 255}
	UIBorderColor   = color.RGBA{0x8b, 0x73, 0x55, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	MoneyTextColor  = color.RGBA{255, 255, 0, 255}
	WaveTextColor   = color.RGBA{0, 255, 0, 255}
	InfoTextColor   = color.RGBA{170, 170, 170, 255}
	GoldColor       = color.RGBA{0xff, 0xd7, 0x00, 255}

	// Terrain tint by remaining wear: deep grass, healthy, dry, dead.
	GrassColors = []color.RGBA{
		{0x3d, 0x7a, 0x2f, 255},
		{0x5d, 0x8a, 0x3f, 255},
		{0x8a, 0x8a, 0x3f, 255},
		{0x7a, 0x5a, 0x2f, 255},
	}
	BlockedColor = color.RGBA{0x6b, 0x53, 0x45, 255}

	CastleColor      = color.RGBA{0x88, 0x88, 0x88, 255}
	CastleFlashColor = color.RGBA{0xff, 0x00, 0x00, 255}

	EnemyColor      = color.RGBA{0xff, 0x44, 0x44, 255}
	EnemyHitColor   = color.RGBA{0xff, 0x88, 0x88, 255}
	EnemyDeadColor  = color.RGBA{0x55, 0x22, 0x22, 255}
	TowerColor      = color.RGBA{0x8b, 0x73, 0x55, 255}
	TowerStroke     = color.RGBA{0x6b, 0x53, 0x45, 255}
	SelectionColor  = color.RGBA{0xff, 0xff, 0x00, 255}
	ProjectileColor = color.RGBA{0x8b, 0x45, 0x13, 255}
	CritColor       = color.RGBA{0xff, 0xaa, 0x00, 255}
	HealthBarBack   = color.RGBA{0, 0, 0, 160}
	HealthBarFront  = color.RGBA{50, 205, 50, 255}

	BuildStateColor  = color.RGBA{0, 200, 255, 255}
	WaveStateColor   = color.RGBA{255, 100, 0, 255}
	DefeatStateColor = color.RGBA{120, 0, 0, 255}
	PauseColor       = color.RGBA{220, 220, 220, 255}
	PlayColor        = color.RGBA{0, 200, 120, 255}
	SpeedColors      = []color.RGBA{
		{0, 200, 120, 255},
		{255, 200, 0, 255},
		{255, 80, 80, 255},
	}
	ButtonColor      = color.RGBA{0x4a, 0x3d, 0x2b, 255}
	ButtonHoverColor = color.RGBA{0x6d, 0x5a, 0x40, 255}
	ButtonMutedColor = color.RGBA{0x3a, 0x32, 0x2a, 255}
	HealthFullColor  = color.RGBA{60, 120, 255, 255}
	HealthLowColor   = color.RGBA{230, 40, 40, 255}
	HealthEmptyColor = color.RGBA{0, 0, 0, 255}
	BossWaveColor    = color.RGBA{255, 0, 0, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
)

// SpeedMultipliers are the game speeds the speed button cycles through.
var SpeedMultipliers = []float64{1, 2, 4}
