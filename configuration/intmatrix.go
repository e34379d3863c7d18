// intmatrix.go specializes the teacher's matrix.Dense row-major layout
// (matrix/dense.go) to non-negative int64 entanglement counts: the `ent`
// matrix of spec.md §3. Kept as its own small type, rather than reused
// from the topology package's float64 Dense, because spec.md §4.2
// requires integer arithmetic (increment/decrement) with no floating
// point involved in entanglement bookkeeping.
package configuration

import "fmt"

// IntMatrix is a row-major, square, int64 matrix.
type IntMatrix struct {
	n    int
	data []int64
}

// NewIntMatrix allocates an n×n IntMatrix initialized to zero.
func NewIntMatrix(n int) *IntMatrix {
	return &IntMatrix{n: n, data: make([]int64, n*n)}
}

// N returns the matrix's dimension.
func (m *IntMatrix) N() int { return m.n }

func (m *IntMatrix) indexOf(row, col int) int {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(fmt.Sprintf("configuration: IntMatrix index (%d,%d) out of range for n=%d", row, col, m.n))
	}
	return row*m.n + col
}

// At retrieves the element at (row, col). Indices are 0-based and must
// already have been validated by the caller (cr/sw/de validate 1-based
// node arguments before converting); an out-of-range index is a
// programmer error, not a user-triggered one, so this panics rather than
// returning an error (the same split builder/options.go draws between
// validated constructors and internal algorithms).
func (m *IntMatrix) At(row, col int) int64 {
	return m.data[m.indexOf(row, col)]
}

// Set assigns value v at (row, col).
func (m *IntMatrix) Set(row, col int, v int64) {
	m.data[m.indexOf(row, col)] = v
}

// Inc adds delta to the element at (row, col) and returns the new value.
func (m *IntMatrix) Inc(row, col int, delta int64) int64 {
	idx := m.indexOf(row, col)
	m.data[idx] += delta
	return m.data[idx]
}

// Clone returns a deep copy, the int64-matrix half of DConfiguration's
// copy-on-fork discipline (spec.md §3 "Ownership").
func (m *IntMatrix) Clone() *IntMatrix {
	data := make([]int64, len(m.data))
	copy(data, m.data)
	return &IntMatrix{n: m.n, data: data}
}

// Equal reports whether m and o have identical dimension and contents.
// google/go-cmp calls this automatically in place of field-by-field
// comparison whenever it encounters a type with an Equal method of this
// shape, which is how the forget-merge equality check in pconf.go
// compares two `ent` matrices without exporting the backing slice.
func (m *IntMatrix) Equal(o *IntMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the matrix, one bracketed row per line, matching
// spec.md §6's "ent matrix ... on separate lines" output requirement.
func (m *IntMatrix) String() string {
	s := ""
	for i := 0; i < m.n; i++ {
		s += "["
		for j := 0; j < m.n; j++ {
			if j > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%d", m.data[i*m.n+j])
		}
		s += "]"
		if i < m.n-1 {
			s += "\n"
		}
	}
	return s
}
