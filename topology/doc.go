// Package topology holds the immutable description of a quantum network:
// node count, per-link entanglement-success probabilities, per-node
// swap-success probabilities, and optional per-node saturation caps
// (spec.md §3 "Topology (immutable)").
//
// A Topology is built once via Load and is safe to share, read-only,
// across any number of configurations (spec.md §4.1).
package topology
