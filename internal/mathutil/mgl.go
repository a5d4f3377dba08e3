package mathutil

import "github.com/go-gl/mathgl/mgl64"

// FromMat4 converts a column-major mathgl matrix into a 4×4 Matrix.
func FromMat4(src mgl64.Mat4) *Matrix {
	m := mustNew(4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.data[r*4+c] = src.At(r, c)
		}
	}
	return m
}

// ToMat4 converts a 4×4 Matrix to mathgl's representation.
// It returns ErrShapeMismatch for any other shape.
func ToMat4(m *Matrix) (mgl64.Mat4, error) {
	var out mgl64.Mat4
	if m.rows != 4 || m.cols != 4 {
		return out, ErrShapeMismatch
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Set(r, c, m.data[r*4+c])
		}
	}
	return out, nil
}
