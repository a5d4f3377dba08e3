// Package shape holds polygonal solids: a shared vertex/edge/surface
// topology plus a per-kind canonical corner set that is re-posed whenever
// position or rotation changes.
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"cuboid-renderer/internal/display"
	"cuboid-renderer/internal/mathutil"
)

// ErrArityMismatch is returned when a palette does not have one colour per surface.
var ErrArityMismatch = errors.New("shape: colour count does not match surface count")

// Kind identifies how a Solid generates its canonical corners.
type Kind int

const (
	KindBox Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Style selects what Draw submits.
type Style int

const (
	// StyleUniform fills every surface with Color in declaration order.
	StyleUniform Style = iota
	// StylePalette fills surfaces back to front with per-surface colours.
	StylePalette
	// StyleWireframe draws every edge with Color.
	StyleWireframe
)

// DefaultColor is used when no colour has been set.
var DefaultColor color.Color = color.NRGBA{R: 255, A: 255}

// Solid is a polygonal object. Vertices are homogeneous 4×1 points,
// recomputed from the canonical pose on every position or rotation change.
type Solid struct {
	kind     Kind
	position [3]float64
	rotation [3]float64
	extents  [3]float64

	vertices []*mathutil.Matrix
	edges    [][2]int
	surfaces [][]int

	style   Style
	color   color.Color
	palette []color.Color
}

// Kind returns the solid's kind.
func (s *Solid) Kind() Kind { return s.kind }

// Position returns the anchor point before rotation.
func (s *Solid) Position() [3]float64 { return s.position }

// Rotation returns the accumulated Euler angles in radians.
func (s *Solid) Rotation() [3]float64 { return s.rotation }

// Extents returns the per-axis size.
func (s *Solid) Extents() [3]float64 { return s.extents }

// Vertices returns copies of the current posed vertices.
func (s *Solid) Vertices() []*mathutil.Matrix {
	out := make([]*mathutil.Matrix, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = v.Clone()
	}
	return out
}

// Edges returns the vertex index pairs used for wireframe drawing.
func (s *Solid) Edges() [][2]int {
	return append([][2]int(nil), s.edges...)
}

// Surfaces returns the vertex index loops, one per face.
func (s *Solid) Surfaces() [][]int {
	out := make([][]int, len(s.surfaces))
	for i, f := range s.surfaces {
		out[i] = append([]int(nil), f...)
	}
	return out
}

// Centre returns the centre of the solid's bounding box, which is the
// pivot for rotation. It has w = 0 so it can be added to and subtracted
// from points.
func (s *Solid) Centre() *mathutil.Matrix {
	return mathutil.Vector(
		s.position[0]+s.extents[0]/2,
		s.position[1]+s.extents[1]/2,
		s.position[2]+s.extents[2]/2,
	)
}

// SetPosition moves the solid and re-poses its vertices.
func (s *Solid) SetPosition(p [3]float64) {
	s.position = p
	s.SetRotation(s.rotation)
}

// SetRotation replaces the accumulated rotation and re-poses the vertices
// from the canonical corner set, rotating about Centre.
func (s *Solid) SetRotation(r [3]float64) {
	centre := s.Centre()
	rot := mathutil.TaitBryan(r)
	corners := s.canonical()
	for i, c := range corners {
		corners[i] = rot.MustMul(c.MustSub(centre)).MustAdd(centre)
	}
	s.vertices = corners
	s.rotation = r
}

// Rotate adds delta to the accumulated rotation.
func (s *Solid) Rotate(delta [3]float64) {
	s.SetRotation([3]float64{
		s.rotation[0] + delta[0],
		s.rotation[1] + delta[1],
		s.rotation[2] + delta[2],
	})
}

func (s *Solid) canonical() []*mathutil.Matrix {
	switch s.kind {
	case KindBox:
		return boxCorners(s.position, s.extents)
	}
	return nil
}

// SetColor sets the uniform colour and selects StyleUniform.
func (s *Solid) SetColor(c color.Color) {
	s.color = c
	s.style = StyleUniform
}

// SetWireframe sets the edge colour and selects StyleWireframe.
func (s *Solid) SetWireframe(c color.Color) {
	s.color = c
	s.style = StyleWireframe
}

// SetPalette sets per-surface colours and selects StylePalette.
func (s *Solid) SetPalette(colors []color.Color) error {
	if len(colors) != len(s.surfaces) {
		return fmt.Errorf("%w: %d colours for %d surfaces", ErrArityMismatch, len(colors), len(s.surfaces))
	}
	s.palette = append([]color.Color(nil), colors...)
	s.style = StylePalette
	return nil
}

// Style returns the current draw style.
func (s *Solid) Style() Style { return s.style }

func (s *Solid) currentColor() color.Color {
	if s.color == nil {
		return DefaultColor
	}
	return s.color
}

// Draw submits the solid using its configured style.
func (s *Solid) Draw(d display.Submitter) error {
	if s == nil {
		return fmt.Errorf("%w: nil solid", display.ErrNilArgument)
	}
	if d == nil {
		return fmt.Errorf("%w: nil submitter", display.ErrNilArgument)
	}
	switch s.style {
	case StylePalette:
		return s.DrawColored(d, s.palette)
	case StyleWireframe:
		return s.DrawWireframe(d, s.currentColor())
	}
	return s.DrawUniform(d, s.currentColor())
}

// DrawUniform fills every surface with c in declaration order, without
// depth sorting.
func (s *Solid) DrawUniform(d display.Submitter, c color.Color) error {
	if d == nil {
		return fmt.Errorf("%w: nil submitter", display.ErrNilArgument)
	}
	for _, f := range s.surfaces {
		if err := d.SubmitPolygon(s.loop(f), c); err != nil {
			return err
		}
	}
	return nil
}

// DrawColored fills surfaces back to front, each with its own colour.
// Surfaces are ordered by the descending sum of the distances from the
// camera to their vertices; equal sums keep declaration order. This is a
// per-face approximation of the painter's algorithm and does not resolve
// mutually overlapping faces.
func (s *Solid) DrawColored(d display.Submitter, colors []color.Color) error {
	if d == nil {
		return fmt.Errorf("%w: nil submitter", display.ErrNilArgument)
	}
	if len(colors) != len(s.surfaces) {
		return fmt.Errorf("%w: %d colours for %d surfaces", ErrArityMismatch, len(colors), len(s.surfaces))
	}
	for _, i := range s.BackToFront(d.CameraPosition()) {
		if err := d.SubmitPolygon(s.loop(s.surfaces[i]), colors[i]); err != nil {
			return err
		}
	}
	return nil
}

// BackToFront returns surface indices ordered farthest first from eye.
func (s *Solid) BackToFront(eye *mathutil.Matrix) []int {
	dist := make([]float64, len(s.surfaces))
	order := make([]int, len(s.surfaces))
	for i, f := range s.surfaces {
		order[i] = i
		for _, vi := range f {
			dist[i] += mathutil.Distance(eye, s.vertices[vi])
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dist[order[a]] > dist[order[b]]
	})
	return order
}

// DrawWireframe submits every edge as a line.
func (s *Solid) DrawWireframe(d display.Submitter, c color.Color) error {
	if d == nil {
		return fmt.Errorf("%w: nil submitter", display.ErrNilArgument)
	}
	for _, e := range s.edges {
		if err := d.SubmitLine(s.vertices[e[0]], s.vertices[e[1]], c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Solid) loop(face []int) []*mathutil.Matrix {
	pts := make([]*mathutil.Matrix, len(face))
	for i, vi := range face {
		pts[i] = s.vertices[vi]
	}
	return pts
}
