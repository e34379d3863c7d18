// Package configuration implements the probabilistic configuration
// interpreter's data structures (spec.md §2 "The core"): DConfiguration
// (one deterministic possible world: classical memory + entanglement
// matrix + probability weight) and PConfiguration (an ordered,
// probability-weighted multiset of DConfigurations).
//
// Every operation that forks a DConfiguration follows copy-on-fork
// discipline adapted from core/methods_clone.go's Clone/CloneEmpty: the
// sibling created by a probabilistic step always receives an explicit
// deep copy of mem and ent, never a shallow alias, so that two
// DConfigurations in the same PConfiguration never share mutable state
// (spec.md §3 "Ownership").
package configuration
