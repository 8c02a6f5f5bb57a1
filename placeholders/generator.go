// Package placeholders draws stand-in art so the demo runs without shipped assets.
package placeholders

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"

	cfg "github.com/automoto/scrollwalk/config"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FrameWidth and FrameHeight are the size of one generated character frame
const (
	FrameWidth  = 32
	FrameHeight = 48
)

// ColorPalette defines the colors used by the generated art
var ColorPalette = struct {
	Body    color.RGBA
	Head    color.RGBA
	Arrow   color.RGBA
	Label   color.RGBA
	Grass1  color.RGBA
	Grass2  color.RGBA
	Path    color.RGBA
	Outline color.RGBA
}{
	Body:    color.RGBA{60, 120, 220, 255},  // Blue tunic
	Head:    color.RGBA{240, 200, 160, 255}, // Skin
	Arrow:   color.RGBA{255, 215, 0, 255},   // Gold
	Label:   color.RGBA{255, 255, 255, 255},
	Grass1:  color.RGBA{70, 140, 60, 255},
	Grass2:  color.RGBA{50, 110, 45, 255},
	Path:    color.RGBA{170, 140, 90, 255},
	Outline: color.RGBA{20, 20, 30, 255},
}

// CreateSpriteSheet draws a columns x len(order) sheet, one row per direction.
// Each frame shifts the legs so the walk cycle is visible.
func CreateSpriteSheet(order []cfg.Direction, columns int) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, columns*FrameWidth, len(order)*FrameHeight))
	for row, dir := range order {
		for col := 0; col < columns; col++ {
			origin := image.Pt(col*FrameWidth, row*FrameHeight)
			drawCharacter(sheet, origin, dir, col)
		}
	}
	return sheet
}

func drawCharacter(dst *image.RGBA, origin image.Point, dir cfg.Direction, step int) {
	fill := func(r image.Rectangle, c color.RGBA) {
		draw.Draw(dst, r.Add(origin), &image.Uniform{c}, image.Point{}, draw.Src)
	}

	// legs alternate every other frame
	stride := []int{0, 3, 0, -3}[step%4]
	fill(image.Rect(10, 34+max(stride, 0), 15, 46), ColorPalette.Outline)
	fill(image.Rect(17, 34+max(-stride, 0), 22, 46), ColorPalette.Outline)

	fill(image.Rect(8, 16, 24, 36), ColorPalette.Body)
	fill(image.Rect(10, 4, 22, 16), ColorPalette.Head)

	// a dot marks the facing side of the head
	dx, dy := dir.Delta()
	cx, cy := 16+int(dx*5), 10+int(dy*4)
	fill(image.Rect(cx-1, cy-1, cx+2, cy+2), ColorPalette.Arrow)

	d := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{ColorPalette.Label},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X+12, origin.Y+31),
	}
	d.DrawString(dir.String()[:1])
}

// CreateBackground draws a width x height field with a mirrored-looking path
// so scrolling and the edge mirroring are both easy to see.
func CreateBackground(width, height int) *image.RGBA {
	// a coarse checkerboard scaled up with bilinear filtering
	const cells = 16
	small := image.NewRGBA(image.Rect(0, 0, cells, cells))
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			c := ColorPalette.Grass1
			if (x+y)%2 == 1 {
				c = ColorPalette.Grass2
			}
			if x == cells/4 || y == cells/3 {
				c = ColorPalette.Path
			}
			small.SetRGBA(x, y, c)
		}
	}

	bg := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(bg, bg.Bounds(), small, small.Bounds(), draw.Src, nil)
	return bg
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveJPEG saves an image to a JPEG file
func SaveJPEG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}

// GenerateAndSave writes the sprite sheet and background to the configured paths.
func GenerateAndSave(a cfg.AssetConfig, s cfg.SheetConfig, bgWidth, bgHeight int) error {
	if err := SavePNG(CreateSpriteSheet(s.RowOrder, s.Columns), a.SpriteSheet); err != nil {
		return err
	}
	return SaveJPEG(CreateBackground(bgWidth, bgHeight), a.Background)
}
