package raster

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// FillPolygon fills the closed vertex loop with c using an even-odd
// scanline fill sampled at pixel centres. Fewer than three points draw
// nothing.
func (fb *FrameBuffer) FillPolygon(points []image.Point, c color.Color) {
	n := len(points)
	if n < 3 {
		return
	}
	r, g, b, a := nrgba(c)

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}

	xs := make([]float64, 0, n)
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			p0, p1 := points[i], points[(i+1)%n]
			y0, y1 := float64(p0.Y), float64(p1.Y)
			if (y0 <= sy) == (y1 <= sy) {
				continue
			}
			t := (sy - y0) / (y1 - y0)
			xs = append(xs, float64(p0.X)+t*float64(p1.X-p0.X))
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k] - 0.5))
			x1 := int(math.Ceil(xs[k+1]-0.5)) - 1
			if x0 < 0 {
				x0 = 0
			}
			if x1 > fb.Width-1 {
				x1 = fb.Width - 1
			}
			row := y * fb.Width
			for x := x0; x <= x1; x++ {
				i := (row + x) * 4
				fb.Color[i] = r
				fb.Color[i+1] = g
				fb.Color[i+2] = b
				fb.Color[i+3] = a
			}
		}
	}
}
