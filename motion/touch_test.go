package motion

import (
	"testing"

	cfg "github.com/automoto/scrollwalk/config"
	"github.com/yohamta/donburi/features/math"
)

func TestResolveTouchRegions(t *testing.T) {
	regions := NewRegions(640, 480)

	tests := []struct {
		name string
		x, y float64
		want cfg.Direction
	}{
		{"top middle", 320, 50, cfg.Up},
		{"bottom middle", 320, 400, cfg.Down},
		{"left middle", 50, 240, cfg.Left},
		{"right middle", 600, 240, cfg.Right},
		{"centre", 320, 240, cfg.Idle},
		{"top edge of up", 320, 0, cfg.Up},
		{"bottom edge of up", 320, 160, cfg.Up},
		{"just below up", 320, 160.5, cfg.Idle},
		{"top edge of down", 320, 320, cfg.Down},
		{"top left corner", 0, 0, cfg.Up},
		{"bottom right corner", 639, 479, cfg.Down},
		{"left region edge", 213, 240, cfg.Left},
		{"right region edge", 426, 240, cfg.Right},
		{"between left and centre", 213.5, 240, cfg.Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTouch(regions, []math.Vec2{math.NewVec2(tt.x, tt.y)})
			if got != tt.want {
				t.Errorf("(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestResolveTouchUnevenHeight(t *testing.T) {
	// thirds are measured from the bottom edge, leaving row 0 outside Up
	regions := NewRegions(300, 100)

	tests := []struct {
		y    float64
		want cfg.Direction
	}{
		{0, cfg.Idle},
		{1, cfg.Up},
		{34, cfg.Up},
		{35, cfg.Idle},
		{66, cfg.Idle},
		{67, cfg.Down},
		{100, cfg.Down},
	}
	for _, tt := range tests {
		got := ResolveTouch(regions, []math.Vec2{math.NewVec2(150, tt.y)})
		if got != tt.want {
			t.Errorf("y=%v: got %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestResolveTouchEveryPixelHasOneAnswer(t *testing.T) {
	const w, h = 90, 60
	regions := NewRegions(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			got := ResolveTouch(regions, []math.Vec2{math.NewVec2(float64(x), float64(y))})
			var want cfg.Direction
			for _, r := range regions {
				if r.Contains(float64(x), float64(y)) {
					want = r.Direction
					break
				}
			}
			if got != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResolveTouchFirstPointerWins(t *testing.T) {
	regions := NewRegions(640, 480)
	pointers := []math.Vec2{
		math.NewVec2(320, 240), // centre, no region
		math.NewVec2(600, 240), // right
		math.NewVec2(320, 10),  // up
	}
	if got := ResolveTouch(regions, pointers); got != cfg.Right {
		t.Errorf("got %v, want right", got)
	}
	if got := ResolveTouch(regions, nil); got != cfg.Idle {
		t.Errorf("no pointers: got %v, want idle", got)
	}
}

func TestRegionsAreTagged(t *testing.T) {
	for _, r := range NewRegions(300, 300) {
		if !r.Bounds.HasTags(r.Direction.String()) {
			t.Errorf("region %v missing tag", r.Direction)
		}
	}
}
