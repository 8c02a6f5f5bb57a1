package motion

import (
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Region is one virtual joystick zone in screen space.
type Region struct {
	Direction cfg.Direction
	Bounds    *resolv.Object
}

// Contains reports whether (x, y) lies inside the region. Edges are inclusive.
func (r Region) Contains(x, y float64) bool {
	b := r.Bounds
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// NewRegions splits a width x height viewport into the four joystick zones,
// returned in priority order. The zones overlap in the corners; priority
// decides which one a point belongs to. Vertical thirds are measured from the
// bottom edge, so when height is not a multiple of 3 the spare rows sit at
// the top of the screen.
func NewRegions(width, height int) []Region {
	w, h := width, height
	rect := func(d cfg.Direction, x, y, rw, rh int) Region {
		return Region{
			Direction: d,
			Bounds:    resolv.NewObject(float64(x), float64(y), float64(rw), float64(rh), d.String()),
		}
	}
	return []Region{
		rect(cfg.Up, 0, h-h*2/3-h/3, w, h/3),
		rect(cfg.Down, 0, h-h/3, w, h/3),
		rect(cfg.Left, 0, 0, w/3, h),
		rect(cfg.Right, w*2/3, 0, w/3, h),
	}
}

// ResolveTouch returns the direction of the first region containing the
// first pointer that hits any region. Pointers are scanned in order.
func ResolveTouch(regions []Region, pointers []math.Vec2) cfg.Direction {
	for _, p := range pointers {
		for _, r := range regions {
			if r.Contains(p.X, p.Y) {
				return r.Direction
			}
		}
	}
	return cfg.Idle
}
