package mathutil

import "math"

// Point returns the homogeneous column (x, y, z, 1).
func Point(x, y, z float64) *Matrix {
	return Column(x, y, z, 1)
}

// Vector returns the homogeneous column (x, y, z, 0). Subtracting a vector
// from a point keeps w = 1.
func Vector(x, y, z float64) *Matrix {
	return Column(x, y, z, 0)
}

// XYZ returns the first three components of a column of length ≥ 3.
func XYZ(p *Matrix) (x, y, z float64) {
	return p.At(0, 0), p.At(1, 0), p.At(2, 0)
}

// Distance returns the Euclidean distance between the x, y, z parts of a and b.
func Distance(a, b *Matrix) float64 {
	ax, ay, az := XYZ(a)
	bx, by, bz := XYZ(b)
	dx, dy, dz := ax-bx, ay-by, az-bz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp returns a + t·(b − a) element-wise. a and b must share a shape.
func Lerp(a, b *Matrix, t float64) (*Matrix, error) {
	d, err := b.Sub(a)
	if err != nil {
		return nil, err
	}
	return a.Add(d.Scale(t))
}
