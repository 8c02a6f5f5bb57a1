package animations

import (
	"testing"

	cfg "github.com/automoto/scrollwalk/config"
)

func TestLoopIndex(t *testing.T) {
	l := NewLoop(0.1, "a", "b", "c", "d")
	tests := []struct {
		t    float64
		want int
	}{
		{0, 0},
		{0.05, 0},
		{0.1, 1},
		{0.25, 2},
		{0.39, 3},
		{0.41, 0},
		{1.05, 2},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := l.Index(tt.t); got != tt.want {
			t.Errorf("Index(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestLoopKeyFrameIsPure(t *testing.T) {
	l := NewLoop(0.1, 10, 11, 12, 13)
	first := l.KeyFrame(0.27)
	for i := 0; i < 5; i++ {
		if got := l.KeyFrame(0.27); got != first {
			t.Fatalf("KeyFrame changed between calls: %d then %d", first, got)
		}
	}
	if first != 12 {
		t.Errorf("KeyFrame(0.27) = %d, want 12", first)
	}
}

func TestEmptyLoop(t *testing.T) {
	l := NewLoop[string](0.1)
	if got := l.KeyFrame(3); got != "" {
		t.Errorf("empty loop returned %q", got)
	}
}

func TestSetKeyFrame(t *testing.T) {
	s := Set[string]{
		cfg.Down: NewLoop(0.1, "d0", "d1"),
		cfg.Up:   NewLoop(0.1, "u0", "u1"),
	}
	if got := s.KeyFrame(cfg.Up, 0.15); got != "u1" {
		t.Errorf("up = %q, want u1", got)
	}
	if got := s.KeyFrame(cfg.Left, 0); got != "d0" {
		t.Errorf("missing direction = %q, want d0", got)
	}
	if got := s.KeyFrame(cfg.Idle, 0.15); got != "d1" {
		t.Errorf("idle = %q, want d1", got)
	}

	s.SetInterval(0.2)
	if got := s.KeyFrame(cfg.Up, 0.15); got != "u0" {
		t.Errorf("after SetInterval up = %q, want u0", got)
	}
}

func TestNewLoopRejectsZeroDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewLoop(0, 1, 2)
}
