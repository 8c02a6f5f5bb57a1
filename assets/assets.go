package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"github.com/automoto/scrollwalk/assets/animations"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Textures owns every GPU image created at startup.
type Textures struct {
	SpriteSheet *ebiten.Image
	Background  *ebiten.Image
	// Mirror is the background tiled 2x2 with flipped copies, so a plain
	// repeat of it looks like a mirrored repeat of the background.
	// Built by the scene once the game loop is running.
	Mirror *ebiten.Image

	once sync.Once
}

// LoadTextures loads the character sheet and background from disk.
func LoadTextures(a cfg.AssetConfig) (*Textures, error) {
	sheet, err := LoadImage(a.SpriteSheet)
	if err != nil {
		return nil, err
	}
	bg, err := LoadImage(a.Background)
	if err != nil {
		sheet.Deallocate()
		return nil, err
	}
	return &Textures{
		SpriteSheet: sheet,
		Background:  bg,
	}, nil
}

// Dispose releases the textures. Calls after the first are no-ops.
func (t *Textures) Dispose() {
	t.once.Do(func() {
		for _, img := range []*ebiten.Image{t.SpriteSheet, t.Background, t.Mirror} {
			if img != nil {
				img.Deallocate()
			}
		}
	})
}

// LoadImage decodes a PNG or JPEG file into a GPU image.
func LoadImage(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	return img, nil
}

// GridRects splits a width x height sheet into rows of equally sized cells.
// Leftover pixels on the right and bottom edges are ignored.
func GridRects(width, height, columns, rows int) [][]image.Rectangle {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("assets: invalid grid %dx%d", columns, rows))
	}
	fw, fh := width/columns, height/rows

	grid := make([][]image.Rectangle, rows)
	for r := range grid {
		grid[r] = make([]image.Rectangle, columns)
		for c := range grid[r] {
			x, y := c*fw, r*fh
			grid[r][c] = image.Rect(x, y, x+fw, y+fh)
		}
	}
	return grid
}

// SplitSheet slices sheet into sub-images, one slice per row.
func SplitSheet(sheet *ebiten.Image, columns, rows int) [][]*ebiten.Image {
	b := sheet.Bounds()
	rects := GridRects(b.Dx(), b.Dy(), columns, rows)

	frames := make([][]*ebiten.Image, len(rects))
	for r, row := range rects {
		frames[r] = make([]*ebiten.Image, len(row))
		for c, rect := range row {
			frames[r][c] = sheet.SubImage(rect.Add(b.Min)).(*ebiten.Image)
		}
	}
	return frames
}

// BuildAnimations pairs each sheet row with the direction it animates.
func BuildAnimations[T any](rows [][]T, order []cfg.Direction, frameDuration float64) animations.Set[T] {
	set := animations.Set[T]{}
	for i, dir := range order {
		if i >= len(rows) {
			break
		}
		set[dir] = animations.NewLoop(frameDuration, rows[i]...)
	}
	return set
}

// CharacterAnimations slices the character sheet using the sheet config.
func CharacterAnimations(sheet *ebiten.Image, s cfg.SheetConfig, frameDuration float64) animations.Set[*ebiten.Image] {
	return BuildAnimations(SplitSheet(sheet, s.Columns, s.Rows), s.RowOrder, frameDuration)
}

// FrameSize returns the size of one cell of the character sheet.
func FrameSize(sheet *ebiten.Image, s cfg.SheetConfig) (int, int) {
	b := sheet.Bounds()
	return b.Dx() / s.Columns, b.Dy() / s.Rows
}

// MirrorTile draws img and its three flipped copies into one 2w x 2h image.
func MirrorTile(img *ebiten.Image) *ebiten.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tile := ebiten.NewImage(w*2, h*2)

	op := &ebiten.DrawImageOptions{}
	for _, q := range MirrorQuadrants(w, h) {
		op.GeoM.Reset()
		op.GeoM.Scale(q.ScaleX, q.ScaleY)
		op.GeoM.Translate(q.X, q.Y)
		tile.DrawImage(img, op)
	}
	return tile
}

// Quadrant places one copy of the background inside the mirror tile.
type Quadrant struct {
	ScaleX, ScaleY float64
	X, Y           float64 // translation applied after scaling
}

// MirrorQuadrants returns the transforms that fill a 2w x 2h tile with the
// original image at the top left and mirrored copies beside and below it.
func MirrorQuadrants(w, h int) [4]Quadrant {
	fw, fh := float64(w), float64(h)
	return [4]Quadrant{
		{ScaleX: 1, ScaleY: 1, X: 0, Y: 0},
		{ScaleX: -1, ScaleY: 1, X: 2 * fw, Y: 0},
		{ScaleX: 1, ScaleY: -1, X: 0, Y: 2 * fh},
		{ScaleX: -1, ScaleY: -1, X: 2 * fw, Y: 2 * fh},
	}
}
