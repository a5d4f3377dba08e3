package raster

import (
	"image"
	"image/color"
)

// maxSteps bounds the DDA walk so far off-screen endpoints (which the near
// plane clip can produce) do not stall a frame.
const maxSteps = 1 << 16

// DrawLine draws p1–p2 with a DDA walk, skipping pixels outside the buffer.
func (fb *FrameBuffer) DrawLine(p1, p2 image.Point, c color.Color) {
	p1, p2, ok := clipSegment(p1, p2, fb.Width, fb.Height)
	if !ok {
		return
	}
	r, g, b, a := nrgba(c)

	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	steps := abs(p2.X - p1.X)
	if s := abs(p2.Y - p1.Y); s > steps {
		steps = s
	}
	if steps == 0 {
		fb.Set(p1.X, p1.Y, r, g, b, a)
		return
	}
	if steps > maxSteps {
		steps = maxSteps
	}
	xInc := dx / float64(steps)
	yInc := dy / float64(steps)

	x, y := float64(p1.X)+0.5, float64(p1.Y)+0.5
	for i := 0; i <= steps; i++ {
		fb.Set(int(x), int(y), r, g, b, a)
		x += xInc
		y += yInc
	}
}

// clipSegment trims the segment to the buffer rectangle (Liang-Barsky).
func clipSegment(p1, p2 image.Point, w, h int) (image.Point, image.Point, bool) {
	x0, y0 := float64(p1.X), float64(p1.Y)
	dx, dy := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, float64(w-1) - x0},
		{-dy, y0},
		{dy, float64(h-1) - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return p1, p2, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return p1, p2, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	a := image.Point{X: int(x0 + t0*dx + 0.5), Y: int(y0 + t0*dy + 0.5)}
	b := image.Point{X: int(x0 + t1*dx + 0.5), Y: int(y0 + t1*dy + 0.5)}
	return a, b, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
