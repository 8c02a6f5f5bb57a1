package systems

import (
	"image/color"

	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJoystick advances the region highlight fades.
func UpdateJoystick(ecs *ecs.ECS) {
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	joystick := components.Joystick.Get(entry)
	input := getOrCreateInput(ecs)

	joystick.Update(input.Motion.Touch, DeltaTime(), cfg.Joystick.HighlightAlpha, cfg.Joystick.FadeSeconds)
}

// DrawJoystick shades the touched region and any region still fading out.
func DrawJoystick(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Joystick.ShowOverlay {
		return
	}
	entry, ok := components.Joystick.First(ecs.World)
	if !ok {
		return
	}
	joystick := components.Joystick.Get(entry)

	for _, r := range joystick.Regions {
		alpha := joystick.Alpha[r.Direction]
		if alpha <= 0 {
			continue
		}
		b := r.Bounds
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
			scaleAlpha(cfg.Joystick.OverlayColor, alpha), false)
	}
}

// scaleAlpha returns c premultiplied by alpha.
func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
