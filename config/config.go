package config

import "image/color"

// MovementConfig contains the scroll and animation tunables
type MovementConfig struct {
	Speed         float64 // background scroll speed in pixels per second
	FrameInterval float64 // seconds each animation frame stays on screen
}

// SheetConfig describes how the character sheet is sliced
type SheetConfig struct {
	Columns  int
	Rows     int
	RowOrder []Direction // direction played by each row, top to bottom
}

// AssetConfig contains the texture paths loaded at startup
type AssetConfig struct {
	SpriteSheet string
	Background  string
}

// JoystickConfig contains virtual joystick overlay configuration
type JoystickConfig struct {
	ShowOverlay    bool
	HighlightAlpha float64 // overlay alpha while a region is held
	FadeSeconds    float64 // fade out time after release
	OverlayColor   color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // draw region outlines and state text
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Sheet SheetConfig
var Assets AssetConfig
var Joystick JoystickConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	ClearColor  = color.RGBA{R: 38, G: 38, B: 51, A: 255} // 0.15, 0.15, 0.2
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	TextShadow  = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DebugTextBg = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "scrollwalk",
	}

	Movement = MovementConfig{
		Speed:         200,
		FrameInterval: 0.1,
	}

	// Rows 0 and 1 are swapped relative to enum order
	Sheet = SheetConfig{
		Columns:  4,
		Rows:     4,
		RowOrder: []Direction{Down, Up, Left, Right},
	}

	Assets = AssetConfig{
		SpriteSheet: "Sprite.png",
		Background:  "fondo.jpg",
	}

	Joystick = JoystickConfig{
		ShowOverlay:    true,
		HighlightAlpha: 0.25,
		FadeSeconds:    0.3,
		OverlayColor:   LightBlue,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
