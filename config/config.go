package config

import "image/color"

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 // Horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // How fast look-ahead offset changes (0.0-1.0)
	VerticalDeadzone   float64 // Pixels of vertical travel before the camera moves
}

// ParticleConfig contains jump dust and death burst tuning
type ParticleConfig struct {
	DustLifetimeFrames  int     // frames before a dust particle expires
	DustSpread          float64 // initial horizontal velocity range
	DustRise            float64 // initial upward velocity
	BurstLifetimeFrames int     // frames before a death burst particle expires
	BurstCount          int     // particles in a death burst
	BurstSpeed          float64 // initial radial velocity
	Gravity             float64 // per-frame particle gravity
	Size                float64 // particle square size in pixels
}

// RespawnConfig contains attempt restart tuning
type RespawnConfig struct {
	DelayFrames          int     // frames between death and restart
	ScreenShakeIntensity float64 // pixels
	ScreenShakeDuration  int     // frames
}

// TrailConfig contains player trail rendering tuning
type TrailConfig struct {
	Width     float64 // trail segment thickness in pixels
	AlphaHead float64 // opacity of the newest sample
	AlphaTail float64 // opacity of the oldest sample
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin        float64
	ProgressBarW  float64
	ProgressBarH  float64
	BarBgColor    color.RGBA
	BarFgColor    color.RGBA
	TextColor     color.RGBA
	BestTextColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	ContinueHint string
}

// WorldConfig contains level rendering configuration
type WorldConfig struct {
	BackgroundColor color.RGBA
	BlockColor      color.RGBA
	BlockLineColor  color.RGBA
	SpikeColor      color.RGBA
	OrbColor        color.RGBA
	PadColor        color.RGBA
	PortalColors    map[string]color.RGBA
	PlayerColor     color.RGBA
	PlayerMiniScale float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and go directly to game
	LevelName string // Level to start on when skipping the menu
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Particle ParticleConfig
var Respawn RespawnConfig
var Trail TrailConfig
var HUD HUDConfig
var Menu MenuConfig
var LevelComplete LevelCompleteConfig
var World WorldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.12,
		LookAheadDistanceX: 90.0, // player sits left of center, course scrolls in
		LookAheadSmoothing: 0.05,
		VerticalDeadzone:   48.0,
	}

	Particle = ParticleConfig{
		DustLifetimeFrames:  20,
		DustSpread:          1.5,
		DustRise:            1.0,
		BurstLifetimeFrames: 40,
		BurstCount:          24,
		BurstSpeed:          4.0,
		Gravity:             0.15,
		Size:                3.0,
	}

	Respawn = RespawnConfig{
		DelayFrames:          45, // ~0.75s at 60fps
		ScreenShakeIntensity: 6.0,
		ScreenShakeDuration:  12,
	}

	Trail = TrailConfig{
		Width:     4.0,
		AlphaHead: 0.8,
		AlphaTail: 0.0,
	}

	HUD = HUDConfig{
		Margin:        8,
		ProgressBarW:  200,
		ProgressBarH:  6,
		BarBgColor:    color.RGBA{R: 40, G: 40, B: 60, A: 255},
		BarFgColor:    Green,
		TextColor:     White,
		BestTextColor: color.RGBA{R: 180, G: 180, B: 180, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		Title:           "JUMPDASH",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Green,
		TextColor:    White,
		Title:        "Level Complete!",
		ContinueHint: "Press ENTER for menu",
	}

	World = WorldConfig{
		BackgroundColor: color.RGBA{R: 18, G: 18, B: 40, A: 255},
		BlockColor:      color.RGBA{R: 50, G: 60, B: 110, A: 255},
		BlockLineColor:  color.RGBA{R: 90, G: 110, B: 180, A: 255},
		SpikeColor:      color.RGBA{R: 220, G: 60, B: 60, A: 255},
		OrbColor:        Yellow,
		PadColor:        Yellow,
		PortalColors: map[string]color.RGBA{
			"cube":   Green,
			"ship":   Magenta,
			"ball":   Orange,
			"ufo":    Cyan,
			"wave":   Cyan,
			"robot":  White,
			"spider": Purple,
			"swing":  Yellow,
		},
		PlayerColor:     Cyan,
		PlayerMiniScale: 0.5,
	}

	Debug = DebugConfig{
		SkipMenu:  false,
		LevelName: "",
	}
}
