package configuration

import "errors"

// Sentinel errors for configuration operations. As in matrix/errors.go,
// these are never wrapped with formatted text at the definition site;
// callers attach context with fmt.Errorf's %w.
var (
	// ErrNodeOutOfRange indicates a 1-indexed node argument to cr/sw/de
	// falls outside [1, n] for the topology in use.
	ErrNodeOutOfRange = errors.New("configuration: node index out of range")

	// ErrLengthMismatch indicates a lifted PConfiguration operation was
	// called with an argument vector whose length disagrees with the
	// current DConfiguration count.
	ErrLengthMismatch = errors.New("configuration: argument vector length mismatch")
)
