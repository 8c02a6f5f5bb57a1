package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the tunable parts of the global configuration as stored on disk.
// Fields missing from a YAML document keep the value they had before decoding.
type File struct {
	Window   WindowSpec   `yaml:"window"`
	Movement MovementSpec `yaml:"movement"`
	Sheet    SheetSpec    `yaml:"sheet"`
	Assets   AssetSpec    `yaml:"assets"`
	Input    InputSpec    `yaml:"input"`
	Joystick JoystickSpec `yaml:"joystick"`
	Debug    DebugSpec    `yaml:"debug"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MovementSpec struct {
	Speed         float64 `yaml:"speed"`
	FrameInterval float64 `yaml:"frame_interval"`
}

type SheetSpec struct {
	Columns  int      `yaml:"columns"`
	Rows     int      `yaml:"rows"`
	RowOrder []string `yaml:"row_order"`
}

type AssetSpec struct {
	SpriteSheet string `yaml:"sprite_sheet"`
	Background  string `yaml:"background"`
}

type InputSpec struct {
	MaxPointers    int  `yaml:"max_pointers"`
	MouseAsPointer bool `yaml:"mouse_as_pointer"`
}

type JoystickSpec struct {
	ShowOverlay    bool    `yaml:"show_overlay"`
	HighlightAlpha float64 `yaml:"highlight_alpha"`
	FadeSeconds    float64 `yaml:"fade_seconds"`
}

type DebugSpec struct {
	Overlay bool `yaml:"overlay"`
}

// Current snapshots the global configuration.
func Current() File {
	order := make([]string, len(Sheet.RowOrder))
	for i, d := range Sheet.RowOrder {
		order[i] = d.String()
	}
	return File{
		Window:   WindowSpec{Width: C.Width, Height: C.Height, Title: C.Title},
		Movement: MovementSpec{Speed: Movement.Speed, FrameInterval: Movement.FrameInterval},
		Sheet:    SheetSpec{Columns: Sheet.Columns, Rows: Sheet.Rows, RowOrder: order},
		Assets:   AssetSpec{SpriteSheet: Assets.SpriteSheet, Background: Assets.Background},
		Input:    InputSpec{MaxPointers: Input.MaxPointers, MouseAsPointer: Input.MouseAsPointer},
		Joystick: JoystickSpec{
			ShowOverlay:    Joystick.ShowOverlay,
			HighlightAlpha: Joystick.HighlightAlpha,
			FadeSeconds:    Joystick.FadeSeconds,
		},
		Debug: DebugSpec{Overlay: Debug.Overlay},
	}
}

// Parse decodes a YAML document on top of base and validates the result.
func Parse(data []byte, base File) (File, error) {
	f := base
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("config: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return base, err
	}
	return f, nil
}

// Validate reports every invalid value in f.
func (f File) Validate() error {
	var errs []error
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height))
	}
	if f.Movement.Speed < 0 {
		errs = append(errs, fmt.Errorf("movement.speed %v must not be negative", f.Movement.Speed))
	}
	if f.Movement.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("movement.frame_interval %v must be positive", f.Movement.FrameInterval))
	}
	if f.Sheet.Columns <= 0 || f.Sheet.Rows <= 0 {
		errs = append(errs, fmt.Errorf("sheet grid %dx%d must be positive", f.Sheet.Columns, f.Sheet.Rows))
	}
	if len(f.Sheet.RowOrder) != f.Sheet.Rows {
		errs = append(errs, fmt.Errorf("sheet.row_order has %d entries, want %d", len(f.Sheet.RowOrder), f.Sheet.Rows))
	}
	for _, name := range f.Sheet.RowOrder {
		if ParseDirection(name) == Idle {
			errs = append(errs, fmt.Errorf("sheet.row_order: unknown direction %q", name))
		}
	}
	if f.Input.MaxPointers < 0 {
		errs = append(errs, fmt.Errorf("input.max_pointers %d must not be negative", f.Input.MaxPointers))
	}
	if f.Joystick.HighlightAlpha < 0 || f.Joystick.HighlightAlpha > 1 {
		errs = append(errs, fmt.Errorf("joystick.highlight_alpha %v must be within [0, 1]", f.Joystick.HighlightAlpha))
	}
	if f.Joystick.FadeSeconds < 0 {
		errs = append(errs, fmt.Errorf("joystick.fade_seconds %v must not be negative", f.Joystick.FadeSeconds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Apply copies every value of f into the global configuration.
func Apply(f File) {
	C.Width, C.Height, C.Title = f.Window.Width, f.Window.Height, f.Window.Title

	order := make([]Direction, len(f.Sheet.RowOrder))
	for i, name := range f.Sheet.RowOrder {
		order[i] = ParseDirection(name)
	}
	Sheet = SheetConfig{Columns: f.Sheet.Columns, Rows: f.Sheet.Rows, RowOrder: order}
	Assets = AssetConfig{SpriteSheet: f.Assets.SpriteSheet, Background: f.Assets.Background}
	Input.MaxPointers = f.Input.MaxPointers
	Input.MouseAsPointer = f.Input.MouseAsPointer
	Debug.Overlay = f.Debug.Overlay
	ApplyTunables(f)
}

// ApplyTunables copies only the values that are safe to change while running.
func ApplyTunables(f File) {
	Movement = MovementConfig{Speed: f.Movement.Speed, FrameInterval: f.Movement.FrameInterval}
	Joystick.ShowOverlay = f.Joystick.ShowOverlay
	Joystick.HighlightAlpha = f.Joystick.HighlightAlpha
	Joystick.FadeSeconds = f.Joystick.FadeSeconds
}

// ReadFile reads and parses path on top of the current configuration.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, Current())
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadFile reads path and applies it to the global configuration.
func LoadFile(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}
	Apply(f)
	return nil
}
