package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/fonts"
	"github.com/automoto/scrollwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

const debugMargin = 6

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	// Region outlines
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := outlineColor(obj)
			vector.StrokeRect(screen, float32(obj.X)+0.5, float32(obj.Y)+0.5, float32(obj.W)-1, float32(obj.H)-1, 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Mono) {
		return
	}
	player := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	input := getOrCreateInput(ecs)

	lines := []string{
		fmt.Sprintf("touch %-5s  pointers %d", input.Motion.Touch, len(input.Pointers)),
		fmt.Sprintf("facing %-5s  frame %s@%.2fs  moving %t", player.LastDirection, anim.Direction, anim.Clock, player.Moving),
		fmt.Sprintf("offset %.1f, %.1f", player.Offset.X, player.Offset.Y),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}

	face := fonts.Mono.Get()
	lineHeight := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 0, 0, 320, float32(len(lines)*lineHeight+debugMargin*2), cfg.DebugTextBg, false)
	for i, line := range lines {
		y := debugMargin + (i+1)*lineHeight - 2
		text.Draw(screen, line, face, debugMargin+1, y+1, cfg.TextShadow)
		text.Draw(screen, line, face, debugMargin, y, cfg.White)
	}
}

// outlineColor picks the debug colour for a space object from its direction tag.
// Untagged objects are drawn in cyan.
func outlineColor(obj *resolv.Object) color.RGBA {
	for _, d := range cfg.Movable {
		if obj.HasTags(d.String()) {
			return regionColor(d)
		}
	}
	return cfg.Cyan
}

func regionColor(d cfg.Direction) color.RGBA {
	switch d {
	case cfg.Up:
		return color.RGBA{0, 255, 0, 255}
	case cfg.Down:
		return color.RGBA{255, 0, 0, 255}
	case cfg.Left:
		return color.RGBA{0, 0, 255, 255}
	default:
		return color.RGBA{255, 255, 0, 255}
	}
}
