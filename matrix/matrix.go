// Package matrix implements the dense float32 matrices the genetic
// algorithm breeds on: plain algebra plus the crossover and mutation
// operators that act on network weights.
package matrix

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrDimensionMismatch is returned when an operation is attempted on
// matrices with incompatible shapes.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// mutationScale divides the standard-normal draw applied by Mutate.
const mutationScale = 5.0

// Matrix is a rectangular grid of float32 values stored row-major.
// Shapes are checked at runtime; Mul and Add signal ErrDimensionMismatch
// before touching any data.
type Matrix struct {
	rows, cols int
	data       []float32
}

// New creates a rows x cols matrix with all cells zero.
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

// WithValue creates a rows x cols matrix with every cell set to val.
func WithValue(rows, cols int, val float32) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = val
	}
	return m
}

// WithRandom creates a rows x cols matrix with every cell drawn
// independently and uniformly from [low, high).
func WithRandom(rng *rand.Rand, rows, cols int, low, high float32) *Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = low + rng.Float32()*(high-low)
	}
	return m
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float32) *Matrix {
	if len(rows) == 0 {
		return New(0, 0)
	}
	m := New(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(m.data[r*m.cols:(r+1)*m.cols], row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the cell at row r, column c.
func (m *Matrix) At(r, c int) float32 {
	return m.data[r*m.cols+c]
}

// Set writes the cell at row r, column c.
func (m *Matrix) Set(r, c int, v float32) {
	m.data[r*m.cols+c] = v
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Apply replaces every cell with f(cell).
func (m *Matrix) Apply(f func(float32) float32) {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
}

// Scale multiplies every cell by s.
func (m *Matrix) Scale(s float32) {
	m.Apply(func(v float32) float32 { return v * s })
}

// MulMatrix returns the standard matrix product m x o. The receiver's
// column count must equal o's row count.
func (m *Matrix) MulMatrix(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}

	res := New(m.rows, o.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < o.cols; c++ {
			var sum float32
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * o.data[k*o.cols+c]
			}
			res.data[r*o.cols+c] = sum
		}
	}
	return res, nil
}

// AddMatrix adds o to m elementwise, in place. Shapes must match exactly.
func (m *Matrix) AddMatrix(o *Matrix) error {
	if m.rows != o.rows || m.cols != o.cols {
		return fmt.Errorf("%w: cannot add %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	for i := range m.data {
		m.data[i] += o.data[i]
	}
	return nil
}

// Crossover combines m and o into a child matrix. A random row cut pr
// and column cut pc are drawn; the child starts as a copy of m and every
// cell with row >= pr and column >= pc is overwritten with o's value.
// The cut region is a rectangle anchored at the bottom-right corner, so
// Crossover(a, b) and Crossover(b, a) generally differ.
func (m *Matrix) Crossover(rng *rand.Rand, o *Matrix) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%w: cannot cross %dx%d with %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, o.rows, o.cols)
	}

	pr := rng.Intn(m.rows)
	pc := rng.Intn(m.cols)

	res := m.Clone()
	for r := pr; r < m.rows; r++ {
		for c := pc; c < m.cols; c++ {
			res.data[r*m.cols+c] = o.data[r*m.cols+c]
		}
	}
	return res, nil
}

// Mutate perturbs each cell independently with probability p by adding a
// standard-normal draw scaled down by 1/5, clamping the result to
// [-1, 1]. Cells not selected are left untouched.
func (m *Matrix) Mutate(rng *rand.Rand, p float32) {
	for i, v := range m.data {
		if rng.Float32() >= p {
			continue
		}
		v += float32(rng.NormFloat64()) / mutationScale
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		m.data[i] = v
	}
}

// Equal reports whether m and o have the same shape and all cells are
// within eps of each other.
func (m *Matrix) Equal(o *Matrix, eps float32) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		d := m.data[i] - o.data[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}
