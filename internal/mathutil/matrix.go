package mathutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
	// ErrLengthMismatch is returned when flat data does not fill rows×cols.
	ErrLengthMismatch = errors.New("matrix: length mismatch")
	// ErrNotSquare is returned by Det and Inverse on non-square input.
	ErrNotSquare = errors.New("matrix: not square")
	// ErrNotInvertible is returned by Inverse when the determinant is zero.
	ErrNotInvertible = errors.New("matrix: not invertible")
	// ErrInvalidShape is returned when a dimension is below 1.
	ErrInvalidShape = errors.New("matrix: dimensions must be at least 1")
	// ErrNilArgument is returned when a required operand is nil.
	ErrNilArgument = errors.New("matrix: nil argument")
)

// Matrix is a dense rows×cols matrix stored row-major.
// Operations never modify their operands; each returns a fresh Matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zero matrix of the given shape.
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice builds a matrix from values given in row-major order.
func FromSlice(rows, cols int, values []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %d×%d", ErrLengthMismatch, len(values), rows, cols)
	}
	copy(m.data, values)
	return m, nil
}

// Identity returns the n×n identity matrix. n below 1 is treated as 1.
func Identity(n int) *Matrix {
	if n < 1 {
		n = 1
	}
	m := &Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Column returns an n×1 column vector holding values.
func Column(values ...float64) *Matrix {
	if len(values) == 0 {
		values = []float64{0}
	}
	m := &Matrix{rows: len(values), cols: 1, data: make([]float64, len(values))}
	copy(m.data, values)
	return m
}

// mustNew is used for shapes that are known valid at the call site.
func mustNew(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// At returns the element at (r, c). Indices are 0-based; out of range panics.
func (m *Matrix) At(r, c int) float64 {
	m.check(r, c)
	return m.data[r*m.cols+c]
}

// Set stores v at (r, c).
func (m *Matrix) Set(r, c int, v float64) {
	m.check(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) check(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %d×%d", r, c, m.rows, m.cols))
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := mustNew(m.rows, m.cols)
	copy(out.data, m.data)
	return out
}

// Mul returns m × b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if b == nil {
		return nil, ErrNilArgument
	}
	if m.cols != b.rows {
		return nil, fmt.Errorf("%w: cannot multiply %d×%d by %d×%d", ErrShapeMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	out := mustNew(m.rows, b.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * b.data[k*b.cols+c]
			}
			out.data[r*out.cols+c] = sum
		}
	}
	return out, nil
}

// Scale returns every element of m multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	out := mustNew(m.rows, m.cols)
	for i, v := range m.data {
		out.data[i] = v * s
	}
	return out
}

// Add returns m + b.
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	return m.elementwise(b, "add", func(x, y float64) float64 { return x + y })
}

// Sub returns m − b.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	return m.elementwise(b, "subtract", func(x, y float64) float64 { return x - y })
}

func (m *Matrix) elementwise(b *Matrix, op string, f func(x, y float64) float64) (*Matrix, error) {
	if b == nil {
		return nil, ErrNilArgument
	}
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("%w: cannot %s %d×%d and %d×%d", ErrShapeMismatch, op, m.rows, m.cols, b.rows, b.cols)
	}
	out := mustNew(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = f(m.data[i], b.data[i])
	}
	return out, nil
}

// MustMul is Mul for operands whose shapes are fixed by construction.
// It panics on a shape mismatch.
func (m *Matrix) MustMul(b *Matrix) *Matrix {
	out, err := m.Mul(b)
	if err != nil {
		panic(err)
	}
	return out
}

// MustAdd is Add that panics on a shape mismatch.
func (m *Matrix) MustAdd(b *Matrix) *Matrix {
	out, err := m.Add(b)
	if err != nil {
		panic(err)
	}
	return out
}

// MustSub is Sub that panics on a shape mismatch.
func (m *Matrix) MustSub(b *Matrix) *Matrix {
	out, err := m.Sub(b)
	if err != nil {
		panic(err)
	}
	return out
}

// Transpose returns the cols×rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := mustNew(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.data[c*out.cols+r] = m.data[r*m.cols+c]
		}
	}
	return out
}

// Minor returns m with row r and column c removed.
// m must be at least 2×2.
func (m *Matrix) Minor(r, c int) *Matrix {
	m.check(r, c)
	out := mustNew(m.rows-1, m.cols-1)
	i := 0
	for rr := 0; rr < m.rows; rr++ {
		if rr == r {
			continue
		}
		for cc := 0; cc < m.cols; cc++ {
			if cc == c {
				continue
			}
			out.data[i] = m.data[rr*m.cols+cc]
			i++
		}
	}
	return out
}

// Det returns the determinant by cofactor expansion along the first row.
func (m *Matrix) Det() (float64, error) {
	if m.rows != m.cols {
		return 0, fmt.Errorf("%w: %d×%d", ErrNotSquare, m.rows, m.cols)
	}
	return m.det(), nil
}

func (m *Matrix) det() float64 {
	switch m.rows {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var sum float64
	sign := 1.0
	for c := 0; c < m.cols; c++ {
		if a := m.data[c]; a != 0 {
			sum += sign * a * m.Minor(0, c).det()
		}
		sign = -sign
	}
	return sum
}

// Inverse returns the adjugate of m divided by its determinant.
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("%w: %w: %d×%d", ErrNotInvertible, ErrNotSquare, m.rows, m.cols)
	}
	d := m.det()
	if d == 0 {
		return nil, ErrNotInvertible
	}
	n := m.rows
	if n == 1 {
		return Column(1 / d), nil
	}

	// Cofactor matrix, checkerboard sign starting at + for (0,0).
	cof := mustNew(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var minor float64
			if n == 2 {
				minor = m.data[(1-r)*n+(1-c)]
			} else {
				minor = m.Minor(r, c).det()
			}
			if (r+c)%2 == 1 {
				minor = -minor
			}
			cof.data[r*n+c] = minor
		}
	}
	return cof.Transpose().Scale(1 / d), nil
}

// Equal reports whether m and b have the same shape and every element
// differs by at most tol.
func (m *Matrix) Equal(b *Matrix, tol float64) bool {
	if b == nil || m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}

// Values returns a copy of the row-major backing data.
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[r*m.cols+c])
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
