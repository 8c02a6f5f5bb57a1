package animations

import (
	"fmt"

	cfg "github.com/automoto/scrollwalk/config"
)

// Loop is a frame sequence played at a fixed interval, repeating forever.
type Loop[T any] struct {
	Frames        []T
	FrameDuration float64 // seconds per frame
}

func NewLoop[T any](frameDuration float64, frames ...T) *Loop[T] {
	if frameDuration <= 0 {
		panic(fmt.Sprintf("animations: frame duration %v must be positive", frameDuration))
	}
	return &Loop[T]{
		Frames:        frames,
		FrameDuration: frameDuration,
	}
}

// Index returns the frame number shown stateTime seconds into the loop.
func (l *Loop[T]) Index(stateTime float64) int {
	n := len(l.Frames)
	if n <= 1 || stateTime <= 0 {
		return 0
	}
	return int(stateTime/l.FrameDuration) % n
}

// KeyFrame returns the frame shown stateTime seconds into the loop.
func (l *Loop[T]) KeyFrame(stateTime float64) T {
	var zero T
	if len(l.Frames) == 0 {
		return zero
	}
	return l.Frames[l.Index(stateTime)]
}

// Set maps each direction to the loop played while facing it.
type Set[T any] map[cfg.Direction]*Loop[T]

// KeyFrame looks up the frame for dir at stateTime. Directions without a loop
// fall back to Down.
func (s Set[T]) KeyFrame(dir cfg.Direction, stateTime float64) T {
	l, ok := s[dir]
	if !ok {
		l, ok = s[cfg.Down]
	}
	if !ok {
		var zero T
		return zero
	}
	return l.KeyFrame(stateTime)
}

// SetInterval changes the frame duration of every loop in the set.
func (s Set[T]) SetInterval(frameDuration float64) {
	if frameDuration <= 0 {
		return
	}
	for _, l := range s {
		l.FrameDuration = frameDuration
	}
}
