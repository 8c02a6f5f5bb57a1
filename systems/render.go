package systems

import (
	"image"

	"github.com/automoto/scrollwalk/components"
	"github.com/automoto/scrollwalk/motion"
	"github.com/automoto/scrollwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the screen with the background window at the camera
// position. The mirror tile repeats plainly, which mirrors the background at
// every edge.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bgEntry, ok := tags.Background.First(ecs.World)
	if !ok {
		return
	}
	bg := components.Background.Get(bgEntry)
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	tileW, tileH := bg.Mirror.Bounds().Dx(), bg.Mirror.Bounds().Dy()

	spansX := motion.WrapSpans(int(camera.Position.X), width, tileW)
	spansY := motion.WrapSpans(int(camera.Position.Y), height, tileH)

	for _, sy := range spansY {
		for _, sx := range spansX {
			src := image.Rect(sx.Src, sy.Src, sx.Src+sx.Len, sy.Src+sy.Len)
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(float64(sx.Dst), float64(sy.Dst))
			screen.DrawImage(bg.Mirror.SubImage(src).(*ebiten.Image), drawOp)
		}
	}
}

// DrawCharacter draws the selected animation frame centred on screen.
func DrawCharacter(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	anim := components.Animation.Get(playerEntry)

	img := anim.Frame()
	if img == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	x, y := motion.Centered(width, height, anim.FrameWidth, anim.FrameHeight)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, drawOp)
}
