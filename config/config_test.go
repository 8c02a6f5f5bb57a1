package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// restore puts the global configuration back after a test mutates it.
func restore(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })
}

func TestDefaults(t *testing.T) {
	if Movement.Speed != 200 {
		t.Errorf("speed = %v, want 200", Movement.Speed)
	}
	if Movement.FrameInterval != 0.1 {
		t.Errorf("frame interval = %v, want 0.1", Movement.FrameInterval)
	}
	want := []Direction{Down, Up, Left, Right}
	if len(Sheet.RowOrder) != len(want) {
		t.Fatalf("row order = %v", Sheet.RowOrder)
	}
	for i, d := range want {
		if Sheet.RowOrder[i] != d {
			t.Errorf("row %d = %v, want %v", i, Sheet.RowOrder[i], d)
		}
	}
	if err := Current().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParsePartialKeepsBase(t *testing.T) {
	base := Current()
	f, err := Parse([]byte("movement:\n  speed: 350\n"), base)
	if err != nil {
		t.Fatal(err)
	}
	if f.Movement.Speed != 350 {
		t.Errorf("speed = %v, want 350", f.Movement.Speed)
	}
	if f.Movement.FrameInterval != base.Movement.FrameInterval {
		t.Errorf("frame interval = %v, want %v", f.Movement.FrameInterval, base.Movement.FrameInterval)
	}
	if f.Assets != base.Assets || f.Window != base.Window {
		t.Errorf("untouched sections changed: %+v", f)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative speed", "movement:\n  speed: -1\n", "movement.speed"},
		{"zero interval", "movement:\n  frame_interval: 0\n", "frame_interval"},
		{"bad direction", "sheet:\n  row_order: [down, up, left, sideways]\n", "sideways"},
		{"short row order", "sheet:\n  row_order: [down, up]\n", "row_order has 2"},
		{"alpha range", "joystick:\n  highlight_alpha: 2\n", "highlight_alpha"},
		{"window", "window:\n  width: 0\n", "window size"},
		{"syntax", "movement: [", "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Current()
			f, err := Parse([]byte(tt.yaml), base)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if f.Movement != base.Movement {
				t.Errorf("failed parse returned modified file")
			}
		})
	}
}

func TestParseRowOrder(t *testing.T) {
	restore(t)

	f, err := Parse([]byte("sheet:\n  row_order: [up, down, right, left]\n"), Current())
	if err != nil {
		t.Fatal(err)
	}
	Apply(f)

	want := []Direction{Up, Down, Right, Left}
	for i, d := range want {
		if Sheet.RowOrder[i] != d {
			t.Errorf("row %d = %v, want %v", i, Sheet.RowOrder[i], d)
		}
	}
}

func TestApplyTunablesLeavesWindow(t *testing.T) {
	restore(t)

	f := Current()
	f.Window.Width = 1
	f.Movement.Speed = 10
	f.Joystick.FadeSeconds = 0
	ApplyTunables(f)

	if Movement.Speed != 10 || Joystick.FadeSeconds != 0 {
		t.Errorf("tunables not applied: %+v %+v", Movement, Joystick)
	}
	if C.Width == 1 {
		t.Errorf("window width changed by ApplyTunables")
	}
}

func TestLoadFile(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "walk.yaml")
	data := "assets:\n  sprite_sheet: hero.png\ndebug:\n  overlay: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if Assets.SpriteSheet != "hero.png" || !Debug.Overlay {
		t.Errorf("assets = %+v, debug = %+v", Assets, Debug)
	}
	if Assets.Background != "fondo.jpg" {
		t.Errorf("background = %q, want default", Assets.Background)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDirectionParseRoundTrip(t *testing.T) {
	for _, d := range Movable {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), got)
		}
	}
	if got := ParseDirection("north"); got != Idle {
		t.Errorf("unknown name = %v, want idle", got)
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk.yaml")
	if err := os.WriteFile(path, []byte("movement:\n  speed: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("movement:\n  speed: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "walk.yaml" {
			t.Errorf("event for %q", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()
	if _, ok := <-w.Events; ok {
		t.Error("events channel still open after Close")
	}
}
