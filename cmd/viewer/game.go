package main

import (
	"math"

	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/logging"
	"cuboid-renderer/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tick is the camera rotation applied on every update.
var tick = [3]float64{0, 0, math.Pi / 180}

type game struct {
	display *display.Display
	fb      *raster.FrameBuffer
	scene   display.Drawable
	img     *ebiten.Image
	pix     []byte
	paused  bool
}

func newGame(d *display.Display, fb *raster.FrameBuffer, sc display.Drawable) *game {
	return &game{display: d, fb: fb, scene: sc}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.display.Advance(tick)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := g.display.Update(g.scene); err != nil {
		logging.Logger().Warn("viewer: frame drawn with errors", "err", err)
	}
	if g.img == nil || g.img.Bounds().Dx() != g.fb.Width || g.img.Bounds().Dy() != g.fb.Height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(g.fb.Width, g.fb.Height)
	}
	// ebiten expects premultiplied alpha; the frame buffer stores straight alpha.
	g.pix = g.fb.Premultiplied(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.fb.Width || outsideHeight != g.fb.Height {
		if err := g.display.Resize(outsideWidth, outsideHeight); err != nil {
			logging.Logger().Warn("viewer: resize", "err", err)
		}
	}
	return g.fb.Width, g.fb.Height
}
