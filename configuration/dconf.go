package configuration

import (
	"fmt"

	"github.com/katalvlaran/qnv/topology"
)

// DConfiguration is one deterministic possible world: classical memory,
// an entanglement matrix, and the probability weight of this world
// (spec.md §3 "Deterministic Configuration (DC)").
type DConfiguration struct {
	mem  map[string]int64
	ent  *IntMatrix
	prob float64
}

// NewDConfiguration returns the initial DConfiguration for an n-node
// topology: empty memory, zero entanglement, probability 1 (spec.md §4.6).
func NewDConfiguration(n int) *DConfiguration {
	return &DConfiguration{mem: make(map[string]int64), ent: NewIntMatrix(n), prob: 1}
}

// Get returns the value bound to name and whether it is present. A
// well-formed program never observes a false ok (spec.md §3 DC
// invariant: "every variable referenced by a successor statement must
// be in mem"); eval.Eval surfaces a diagnostic when it is not.
func (dc *DConfiguration) Get(name string) (int64, bool) {
	v, ok := dc.mem[name]
	return v, ok
}

// Mem exposes the memory mapping for read-only inspection (printing,
// forget-merge equality). Callers must not mutate the returned map.
func (dc *DConfiguration) Mem() map[string]int64 { return dc.mem }

// Ent exposes the entanglement matrix for read-only inspection.
func (dc *DConfiguration) Ent() *IntMatrix { return dc.ent }

// Prob returns this world's probability weight.
func (dc *DConfiguration) Prob() float64 { return dc.prob }

// clone returns a deep copy of dc: a fresh mem map and a fresh ent
// matrix, never sharing backing storage with dc (spec.md §3
// "Ownership", §9 "Copy-on-fork"). This is the int64/map analogue of
// core/methods_clone.go's Clone — a deep copy is performed explicitly,
// never assumed from a language-level shallow copy.
func (dc *DConfiguration) clone() *DConfiguration {
	mem := make(map[string]int64, len(dc.mem))
	for k, v := range dc.mem {
		mem[k] = v
	}
	return &DConfiguration{mem: mem, ent: dc.ent.Clone(), prob: dc.prob}
}

func validateNode(n, x int) error {
	if x < 1 || x > n {
		return fmt.Errorf("configuration: node %d: %w", x, ErrNodeOutOfRange)
	}
	return nil
}

// Assign sets mem[name] = v. Total (spec.md §4.2 "assign").
func (dc *DConfiguration) Assign(name string, v int64) {
	dc.mem[name] = v
}

// Cr performs entanglement creation between nodes x and y (1-indexed),
// spec.md §4.2 "cr". On success it forks: a deep-copied sibling
// receiving the success outcome is appended to pc, while dc itself
// becomes the failure-world in place. The two resulting probabilities
// always sum to dc's probability before the call (spec.md §8 property 2).
func (dc *DConfiguration) Cr(name string, x, y int, topo *topology.Topology, pc *PConfiguration) error {
	if err := validateNode(topo.N, x); err != nil {
		return err
	}
	if err := validateNode(topo.N, y); err != nil {
		return err
	}

	pi, _ := topo.P.At(x-1, y-1)
	existing := dc.ent.At(x-1, y-1)
	if pi < topology.Epsilon || existing == topo.S[x-1] || existing == topo.S[y-1] {
		dc.mem[name] = 0
		return nil
	}

	sibling := dc.clone()
	sibling.mem[name] = 1
	sibling.ent.Inc(x-1, y-1, 1)
	sibling.ent.Inc(y-1, x-1, 1)
	sibling.prob = dc.prob * pi
	pc.dcs = append(pc.dcs, sibling)

	dc.prob = dc.prob * (1 - pi)
	dc.mem[name] = 0
	return nil
}

// Sw performs an entanglement swap at intermediate node z, consuming one
// unit each on links x-z and y-z unconditionally and producing one unit
// on x-y with probability topo.Q[z-1] (spec.md §4.2 "sw"). The two input
// links are decremented regardless of swap success — spec.md §9's first
// Open Question, preserved as specified, not treated as a bug.
func (dc *DConfiguration) Sw(name string, x, y, z int, topo *topology.Topology, pc *PConfiguration) error {
	if err := validateNode(topo.N, x); err != nil {
		return err
	}
	if err := validateNode(topo.N, y); err != nil {
		return err
	}
	if err := validateNode(topo.N, z); err != nil {
		return err
	}

	if dc.ent.At(x-1, z-1) == 0 || dc.ent.At(y-1, z-1) == 0 {
		dc.mem[name] = 0
		return nil
	}

	dc.ent.Inc(x-1, z-1, -1)
	dc.ent.Inc(z-1, x-1, -1)
	dc.ent.Inc(y-1, z-1, -1)
	dc.ent.Inc(z-1, y-1, -1)

	pi := topo.Q[z-1]
	sibling := dc.clone()
	sibling.mem[name] = 1
	sibling.ent.Inc(x-1, y-1, 1)
	sibling.ent.Inc(y-1, x-1, 1)
	sibling.prob = dc.prob * pi
	pc.dcs = append(pc.dcs, sibling)

	dc.prob = dc.prob * (1 - pi)
	dc.mem[name] = 0
	return nil
}

// De deterministically discards one entanglement unit between x and y
// if any is present; no fork, no probability change (spec.md §4.2 "de").
func (dc *DConfiguration) De(x, y int, topo *topology.Topology) error {
	if err := validateNode(topo.N, x); err != nil {
		return err
	}
	if err := validateNode(topo.N, y); err != nil {
		return err
	}
	if dc.ent.At(x-1, y-1) == 0 {
		return nil
	}
	dc.ent.Inc(x-1, y-1, -1)
	dc.ent.Inc(y-1, x-1, -1)
	return nil
}
