package interp

import "errors"

// ErrLoopDivergence is returned when a while loop's body executes more
// than 1000 times without every DConfiguration exiting (spec.md §4.5
// "While": "If k > 1000, abort the program with a fatal diagnostic").
// The original Python frontend printed the message and called exit();
// here the interpreter returns a typed error so driver/cmd/qnv decide
// the process exit code (spec.md §7).
var ErrLoopDivergence = errors.New("interp: too many loop iterations")
