// Package motion holds the per-tick movement rules: input resolution, scroll
// integration and animation frame selection. Nothing here touches the GPU.
package motion

import (
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/yohamta/donburi/features/math"
)

// Input is the union of everything read from the host for one tick.
type Input struct {
	Keys  [cfg.DirectionCount]bool // pressed directional keys, indexed by Direction
	Touch cfg.Direction            // virtual joystick result, Idle when untouched
}

// Active reports whether d is requested by a key or by the joystick.
func (in Input) Active(d cfg.Direction) bool {
	if d == cfg.Idle {
		return false
	}
	return in.Keys[d] || in.Touch == d
}

// Any reports whether any direction is requested.
func (in Input) Any() bool {
	for _, d := range cfg.Movable {
		if in.Active(d) {
			return true
		}
	}
	return false
}

// State is the long-lived movement context mutated once per tick.
type State struct {
	Offset        math.Vec2     // scroll offset into the background
	Clock         float64       // seconds of uninterrupted movement
	LastDirection cfg.Direction // facing used while idle
}

// NewState returns the startup state: no offset, facing down.
func NewState() State {
	return State{LastDirection: cfg.Down}
}

// Step advances s by dt seconds. Every active direction applies its own
// offset, so opposite keys cancel and perpendicular keys move diagonally.
// The last applied direction becomes the facing. With no input the clock is
// reset so the idle pose is the first frame, and the facing is kept.
func Step(s *State, in Input, dt, speed float64) (moving bool) {
	s.Clock += dt

	for _, d := range cfg.Movable {
		if !in.Active(d) {
			continue
		}
		dx, dy := d.Delta()
		s.Offset.X += dx * speed * dt
		s.Offset.Y += dy * speed * dt
		s.LastDirection = d
		moving = true
	}

	if !moving {
		s.Clock = 0
	}
	return moving
}

// Select returns the direction whose animation should be shown and the clock
// to sample it at. While moving, the first direction in Movable order that is
// either held on the keyboard or the current facing wins, so Up+Right shows
// the Up walk. Idle shows the facing at its first frame.
func Select(s State, in Input) (cfg.Direction, float64) {
	if in.Any() {
		for _, d := range cfg.Movable {
			if in.Keys[d] || s.LastDirection == d {
				return d, s.Clock
			}
		}
	}
	dir := s.LastDirection
	if dir == cfg.Idle {
		dir = cfg.Down
	}
	return dir, 0
}
