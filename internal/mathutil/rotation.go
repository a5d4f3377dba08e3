package mathutil

import "math"

// RotX returns the 4×4 homogeneous rotation about the X axis used for
// view transforms. Angle in radians; the sine terms are arranged so that
// RotX(a) equals the conventional active rotation by -a.
func RotX(a float64) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return &Matrix{rows: 4, cols: 4, data: []float64{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}}
}

// RotY returns the 4×4 homogeneous rotation about the Y axis.
func RotY(a float64) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return &Matrix{rows: 4, cols: 4, data: []float64{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}}
}

// RotZ returns the 4×4 homogeneous rotation about the Z axis.
func RotZ(a float64) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return &Matrix{rows: 4, cols: 4, data: []float64{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// TaitBryan returns RotX(angles[0]) · RotY(angles[1]) · RotZ(angles[2]),
// so a column vector is turned about Z first, then Y, then X.
func TaitBryan(angles [3]float64) *Matrix {
	return RotX(angles[0]).MustMul(RotY(angles[1])).MustMul(RotZ(angles[2]))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
