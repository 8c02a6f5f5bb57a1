package components

import (
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/motion"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// JoystickData holds the virtual joystick regions and their overlay state.
type JoystickData struct {
	Regions []motion.Region // priority order
	Held    cfg.Direction   // region touched this tick
	Alpha   [cfg.DirectionCount]float32
	Fades   [cfg.DirectionCount]*gween.Tween
}

// Update advances the overlay highlights by dt seconds. The held region sits
// at peak alpha; a region that was just released fades to zero over fade seconds.
func (j *JoystickData) Update(held cfg.Direction, dt, peak, fade float64) {
	if j.Held != held && j.Held != cfg.Idle {
		released := j.Held
		if fade > 0 {
			j.Fades[released] = gween.New(j.Alpha[released], 0, float32(fade), ease.OutQuad)
		} else {
			j.Alpha[released] = 0
		}
	}
	j.Held = held

	for _, d := range cfg.Movable {
		if d == held {
			j.Fades[d] = nil
			j.Alpha[d] = float32(peak)
			continue
		}
		tw := j.Fades[d]
		if tw == nil {
			continue
		}
		v, done := tw.Update(float32(dt))
		j.Alpha[d] = v
		if done {
			j.Alpha[d] = 0
			j.Fades[d] = nil
		}
	}
}

var Joystick = donburi.NewComponentType[JoystickData]()
