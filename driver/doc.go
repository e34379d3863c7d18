// Package driver builds the initial PConfiguration from a Topology and
// drives an ast.Program through the statement interpreter (spec.md §4.6).
//
// This is the one layer that logs: library packages (topology,
// configuration, eval, interp) stay logging-free, matching the teacher's
// convention that only the outermost orchestration layer speaks to the
// operator. Each Run is stamped with a run_id (github.com/google/uuid)
// carried on every structured logrus field, so repeated CLI invocations
// are distinguishable in aggregated logs (SPEC_FULL.md §1).
package driver
