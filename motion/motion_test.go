package motion

import (
	gomath "math"
	"testing"

	cfg "github.com/automoto/scrollwalk/config"
)

const speed = 200.0

func keys(ds ...cfg.Direction) Input {
	var in Input
	for _, d := range ds {
		in.Keys[d] = true
	}
	return in
}

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func TestStepAppliesEachKey(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		dx, dy float64
		facing cfg.Direction
	}{
		{"up", keys(cfg.Up), 0, -20, cfg.Up},
		{"down", keys(cfg.Down), 0, 20, cfg.Down},
		{"left", keys(cfg.Left), -20, 0, cfg.Left},
		{"right", keys(cfg.Right), 20, 0, cfg.Right},
		{"up right", keys(cfg.Up, cfg.Right), 20, -20, cfg.Right},
		{"down left", keys(cfg.Down, cfg.Left), -20, 20, cfg.Left},
		{"all four", keys(cfg.Up, cfg.Down, cfg.Left, cfg.Right), 0, 0, cfg.Right},
		{"touch left", Input{Touch: cfg.Left}, -20, 0, cfg.Left},
		{"touch and key", Input{Keys: keys(cfg.Down).Keys, Touch: cfg.Right}, 20, 20, cfg.Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if !Step(&s, tt.in, 0.1, speed) {
				t.Fatal("expected movement")
			}
			if !near(s.Offset.X, tt.dx) || !near(s.Offset.Y, tt.dy) {
				t.Errorf("offset = (%v, %v), want (%v, %v)", s.Offset.X, s.Offset.Y, tt.dx, tt.dy)
			}
			if s.LastDirection != tt.facing {
				t.Errorf("facing = %v, want %v", s.LastDirection, tt.facing)
			}
		})
	}
}

func TestStepAllKeysIsSumOfAxisDeltas(t *testing.T) {
	all := keys(cfg.Up, cfg.Down, cfg.Left, cfg.Right)
	var sumX, sumY float64
	for _, d := range cfg.Movable {
		s := NewState()
		Step(&s, keys(d), 0.05, speed)
		sumX += s.Offset.X
		sumY += s.Offset.Y
	}

	s := NewState()
	s.Offset.X, s.Offset.Y = 3, 4
	Step(&s, all, 0.05, speed)
	if !near(s.Offset.X, 3+sumX) || !near(s.Offset.Y, 4+sumY) {
		t.Errorf("offset = (%v, %v), want (%v, %v)", s.Offset.X, s.Offset.Y, 3+sumX, 4+sumY)
	}
}

func TestStepZeroElapsedKeepsOffset(t *testing.T) {
	for _, in := range []Input{keys(cfg.Up), keys(cfg.Left, cfg.Down), {Touch: cfg.Right}, {}} {
		s := NewState()
		s.Offset.X, s.Offset.Y = 12.5, -7
		Step(&s, in, 0, speed)
		if s.Offset.X != 12.5 || s.Offset.Y != -7 {
			t.Errorf("input %+v moved offset to (%v, %v)", in, s.Offset.X, s.Offset.Y)
		}
	}
}

func TestStepIdleResetsClockKeepsFacing(t *testing.T) {
	s := NewState()
	for i := 0; i < 7; i++ {
		Step(&s, keys(cfg.Up), 1.0/60, speed)
	}
	if s.Clock <= 0 {
		t.Fatalf("clock = %v after movement", s.Clock)
	}

	if Step(&s, Input{}, 1.0/60, speed) {
		t.Fatal("idle tick reported movement")
	}
	if s.Clock != 0 {
		t.Errorf("clock = %v, want 0", s.Clock)
	}
	if s.LastDirection != cfg.Up {
		t.Errorf("facing = %v, want up", s.LastDirection)
	}

	for i := 0; i < 30; i++ {
		Step(&s, Input{}, 1.0/60, speed)
	}
	if s.LastDirection != cfg.Up {
		t.Errorf("facing after idling = %v, want up", s.LastDirection)
	}

	Step(&s, keys(cfg.Left), 1.0/60, speed)
	if s.LastDirection != cfg.Left {
		t.Errorf("facing = %v, want left", s.LastDirection)
	}
}

func TestStepAccumulatesClock(t *testing.T) {
	s := NewState()
	Step(&s, keys(cfg.Right), 0.25, speed)
	Step(&s, keys(cfg.Right), 0.25, speed)
	if !near(s.Clock, 0.5) {
		t.Errorf("clock = %v, want 0.5", s.Clock)
	}
}

func TestSelect(t *testing.T) {
	s := State{Clock: 0.35, LastDirection: cfg.Left}
	if d, c := Select(s, keys(cfg.Left)); d != cfg.Left || c != 0.35 {
		t.Errorf("moving: got (%v, %v)", d, c)
	}
	if d, c := Select(s, Input{}); d != cfg.Left || c != 0 {
		t.Errorf("idle: got (%v, %v)", d, c)
	}
	if d, c := Select(State{Clock: 1}, Input{}); d != cfg.Down || c != 0 {
		t.Errorf("unset facing: got (%v, %v)", d, c)
	}
}

func TestSelectSeveralActive(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want cfg.Direction
	}{
		{"up and right", keys(cfg.Up, cfg.Right), cfg.Up},
		{"all four", keys(cfg.Up, cfg.Down, cfg.Left, cfg.Right), cfg.Up},
		{"down key with right touch", Input{Keys: keys(cfg.Down).Keys, Touch: cfg.Right}, cfg.Down},
		{"left and right", keys(cfg.Left, cfg.Right), cfg.Left},
		{"touch only", Input{Touch: cfg.Left}, cfg.Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			Step(&s, tt.in, 0.1, 200)
			d, c := Select(s, tt.in)
			if d != tt.want {
				t.Errorf("direction = %v, want %v", d, tt.want)
			}
			if c != 0.1 {
				t.Errorf("clock = %v, want 0.1", c)
			}
		})
	}
}

func TestInputActiveIgnoresIdle(t *testing.T) {
	in := Input{Touch: cfg.Idle}
	if in.Active(cfg.Idle) || in.Any() {
		t.Error("idle input reported active")
	}
}
