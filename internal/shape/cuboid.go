package shape

import "cuboid-renderer/internal/mathutil"

// Corner layout: 0 is the anchor, 4/5/6/7 sit on the +x side.
var (
	boxEdges = [][2]int{
		{0, 1}, {0, 3}, {0, 5},
		{1, 2}, {1, 6},
		{2, 3}, {2, 7},
		{3, 4},
		{4, 5}, {4, 7},
		{5, 6},
		{6, 7},
	}
	boxSurfaces = [][]int{
		{0, 1, 6, 5}, // z
		{0, 1, 2, 3}, // x
		{0, 3, 4, 5}, // y
		{1, 2, 7, 6}, // y+dy
		{2, 3, 4, 7}, // z+dz
		{5, 6, 7, 4}, // x+dx
	}
)

// NewCuboid returns a box spanning position to position+extents, rotated
// by rotation about its centre.
func NewCuboid(position, rotation, extents [3]float64) *Solid {
	s := &Solid{
		kind:     KindBox,
		position: position,
		extents:  extents,
		edges:    append([][2]int(nil), boxEdges...),
		surfaces: make([][]int, len(boxSurfaces)),
	}
	for i, f := range boxSurfaces {
		s.surfaces[i] = append([]int(nil), f...)
	}
	s.SetRotation(rotation)
	return s
}

func boxCorners(p, e [3]float64) []*mathutil.Matrix {
	x, y, z := p[0], p[1], p[2]
	dx, dy, dz := e[0], e[1], e[2]
	return []*mathutil.Matrix{
		mathutil.Point(x, y, z),
		mathutil.Point(x, y+dy, z),
		mathutil.Point(x, y+dy, z+dz),
		mathutil.Point(x, y, z+dz),
		mathutil.Point(x+dx, y, z+dz),
		mathutil.Point(x+dx, y, z),
		mathutil.Point(x+dx, y+dy, z),
		mathutil.Point(x+dx, y+dy, z+dz),
	}
}
