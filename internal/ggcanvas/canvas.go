// Package ggcanvas adapts a gogpu/gg drawing context to display.Canvas,
// giving anti-aliased output in place of the CPU framebuffer.
package ggcanvas

import (
	"image"
	"image/color"

	"cuboid-renderer/internal/logging"

	"github.com/gogpu/gg"
)

// Canvas draws into a gg.Context. It is not safe for concurrent use.
type Canvas struct {
	dc        *gg.Context
	lineWidth float64
}

// New returns a canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height), lineWidth: 1}
}

// SetLineWidth sets the stroke width used by DrawLine.
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

// Context exposes the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Clear fills the whole context with col.
func (c *Canvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// centre maps an integer pixel to its centre in gg's continuous space, so
// lines and fills land on the same pixels the framebuffer would touch.
func centre(p image.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

// DrawLine strokes p1–p2 between pixel centres.
func (c *Canvas) DrawLine(p1, p2 image.Point, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.lineWidth)
	x1, y1 := centre(p1)
	x2, y2 := centre(p2)
	c.dc.DrawLine(x1, y1, x2, y2)
	if err := c.dc.Stroke(); err != nil {
		logging.Logger().Warn("ggcanvas: stroke failed", "err", err)
	}
}

// FillPolygon fills the closed loop points with col. Vertices are pixel
// centres, as in DrawLine.
func (c *Canvas) FillPolygon(points []image.Point, col color.Color) {
	if len(points) < 3 {
		return
	}
	c.dc.SetColor(col)
	c.dc.MoveTo(centre(points[0]))
	for _, p := range points[1:] {
		c.dc.LineTo(centre(p))
	}
	c.dc.ClosePath()
	if err := c.dc.Fill(); err != nil {
		logging.Logger().Warn("ggcanvas: fill failed", "err", err)
	}
}

// Resize follows window size changes.
func (c *Canvas) Resize(width, height int) error {
	return c.dc.Resize(width, height)
}

// Image returns the rendered pixels as NRGBA.
func (c *Canvas) Image() *image.NRGBA {
	if err := c.dc.FlushGPU(); err != nil {
		logging.Logger().Warn("ggcanvas: flush failed", "err", err)
	}
	src := c.dc.Image()
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return dst
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
