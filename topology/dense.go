// dense.go adapts the teacher's matrix.Dense (matrix/dense.go in the
// katalvlaran/lvlath pack) to this package: a row-major float64 matrix
// with bounds-checked accessors. The probability matrix p (spec.md §3)
// is stored this way instead of [][]float64 so that every access goes
// through the same indexOf bounds check the teacher's Dense uses.
package topology

import "fmt"

// Dense is a row-major, square, float64 matrix.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n Dense matrix initialized to zero.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix's dimension.
func (m *Dense) N() int { return m.n }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// String renders the matrix for the "--qnv" topology banner.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.n; i++ {
		s += "["
		for j := 0; j < m.n; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.n+j])
			if j < m.n-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
