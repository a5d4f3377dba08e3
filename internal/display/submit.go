package display

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cuboid-renderer/internal/camera"
	"cuboid-renderer/internal/mathutil"
)

// SubmitLine draws the segment p1–p2, clipped against the near plane.
// A segment entirely behind the near plane is dropped without error.
func (d *Display) SubmitLine(p1, p2 *mathutil.Matrix, c color.Color) error {
	if p1 == nil || p2 == nil || c == nil {
		return fmt.Errorf("%w: line endpoints and colour are required", ErrNilArgument)
	}
	near := d.camera.Near()
	proj1, err := d.camera.Project(p1)
	if err != nil {
		return err
	}
	proj2, err := d.camera.Project(p2)
	if err != nil {
		return err
	}

	if proj1.Depth < near && proj2.Depth < near {
		d.stats.Dropped++
		return nil
	}
	if proj1.Depth >= near && proj2.Depth >= near {
		d.canvas.DrawLine(d.toScreen(proj1), d.toScreen(proj2), c)
		d.stats.Lines++
		return nil
	}

	stationary, stationary3D := proj1, p1
	clipping, clipping3D := proj2, p2
	if clipping.Depth > stationary.Depth {
		stationary, clipping = clipping, stationary
		stationary3D, clipping3D = clipping3D, stationary3D
	}
	clipped, err := d.clip(stationary3D, stationary.Depth, clipping3D, clipping.Depth)
	if err != nil {
		return err
	}
	d.canvas.DrawLine(d.toScreen(stationary), d.toScreen(clipped), c)
	d.stats.Lines++
	d.stats.Clipped++
	return nil
}

// SubmitPolygon fills the vertex loop points, clipped against the near plane.
//
// The loop is walked edge by edge (i → i+1, wrapping). A vertex in front of
// the near plane is kept. An edge that crosses the plane contributes its
// intersection with it, whether it leaves or re-enters the visible side.
// An edge with both ends behind the plane contributes nothing, so a hidden
// vertex never yields an extrapolated point. The output therefore does not
// hold one point per edge: a quad with one hidden corner becomes a pentagon
// and a quad with two adjacent hidden corners stays a quad.
func (d *Display) SubmitPolygon(points []*mathutil.Matrix, c color.Color) error {
	if len(points) == 0 || c == nil {
		return fmt.Errorf("%w: polygon vertices and colour are required", ErrNilArgument)
	}
	near := d.camera.Near()
	proj := make([]camera.Projected, len(points))
	visible := false
	for i, p := range points {
		if p == nil {
			return fmt.Errorf("%w: polygon vertex %d", ErrNilArgument, i)
		}
		pr, err := d.camera.Project(p)
		if err != nil {
			return err
		}
		proj[i] = pr
		if pr.Depth >= near {
			visible = true
		}
	}
	if !visible {
		d.stats.Dropped++
		return nil
	}

	n := len(points)
	out := make([]image.Point, 0, n)
	clipped := false
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		inI, inJ := proj[i].Depth >= near, proj[j].Depth >= near
		if inI != inJ {
			front, back := i, j
			if inJ {
				front, back = j, i
			}
			pr, err := d.clip(points[front], proj[front].Depth, points[back], proj[back].Depth)
			if err != nil {
				return err
			}
			out = append(out, d.toScreen(pr))
			clipped = true
		}
		if inJ {
			out = append(out, d.toScreen(proj[j]))
		}
	}

	d.canvas.FillPolygon(out, c)
	d.stats.Polygons++
	if clipped {
		d.stats.Clipped++
	}
	return nil
}

// clip returns the projection of the point on stationary→clipping whose
// depth equals the near plane. Depth is affine in the world-space point,
// so t = (ws − near)/(ws − wc) along stationary + t·(clipping − stationary)
// lands exactly on it.
func (d *Display) clip(stationary *mathutil.Matrix, ws float64, clipping *mathutil.Matrix, wc float64) (camera.Projected, error) {
	t := (ws - d.camera.Near()) / (ws - wc)
	p, err := mathutil.Lerp(stationary, clipping, t)
	if err != nil {
		return camera.Projected{}, fmt.Errorf("display: clip: %w", err)
	}
	return d.camera.Project(p)
}

// screenLimit keeps degenerate projections (w near zero) inside int range.
const screenLimit = 1 << 30

// toScreen maps a projected point to integer pixel coordinates, truncating.
// The camera's eye offset adds the NDC depth to x and y, which puts the
// view centre near (1, 1) for all but the closest points; y grows upward.
func (d *Display) toScreen(p camera.Projected) image.Point {
	w, h := d.camera.Dimensions()
	return image.Point{
		X: int(clampScreen(p.X * w / 2)),
		Y: int(clampScreen((2 - p.Y) * h / 2)),
	}
}

func clampScreen(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > screenLimit:
		return screenLimit
	case v < -screenLimit:
		return -screenLimit
	}
	return v
}
