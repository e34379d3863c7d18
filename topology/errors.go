package topology

import "errors"

// Sentinel errors for topology parsing and validation. Callers branch
// with errors.Is; context is attached at the call site with fmt.Errorf's
// %w, never baked into the sentinel string (matrix/errors.go's policy).
var (
	// ErrBadShape indicates a non-positive node count or a negative edge count.
	ErrBadShape = errors.New("topology: invalid shape")

	// ErrOutOfRange indicates a row/column index outside [0,n).
	ErrOutOfRange = errors.New("topology: index out of range")

	// ErrMalformed indicates the input stream does not match the
	// whitespace-delimited format of spec.md §6.
	ErrMalformed = errors.New("topology: malformed input")

	// ErrProbabilityRange indicates a probability value outside [0,1].
	ErrProbabilityRange = errors.New("topology: probability out of [0,1]")

	// ErrAsymmetry indicates p[i][j] and p[j][i] disagree after loading
	// (spec.md §3 invariant: "p is symmetric with zero diagonal").
	ErrAsymmetry = errors.New("topology: edge-generation matrix is not symmetric")
)
