package configuration

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/qnv/topology"
)

// PConfiguration is an ordered, probability-weighted multiset of
// DConfigurations (spec.md §3 "Probabilistic Configuration (PC)"). Order
// only matters as a pairing mechanism with expression-result vectors;
// semantically it is a multiset.
type PConfiguration struct {
	dcs []*DConfiguration
}

// NewInitial builds the initial PConfiguration for an n-node topology:
// one DConfiguration, empty memory, zero entanglement, probability 1
// (spec.md §4.6 "Driver").
func NewInitial(n int) *PConfiguration {
	return &PConfiguration{dcs: []*DConfiguration{NewDConfiguration(n)}}
}

// New wraps an existing slice of DConfigurations, taking ownership of it.
func New(dcs []*DConfiguration) *PConfiguration {
	return &PConfiguration{dcs: dcs}
}

// Len returns the number of live DConfigurations.
func (pc *PConfiguration) Len() int { return len(pc.dcs) }

// At returns the i-th DConfiguration.
func (pc *PConfiguration) At(i int) *DConfiguration { return pc.dcs[i] }

// DCs exposes the backing slice for read-only iteration. Callers that
// need to replace the population (if/while/forget) use SetDCs.
func (pc *PConfiguration) DCs() []*DConfiguration { return pc.dcs }

// SetDCs replaces the live DConfiguration list.
func (pc *PConfiguration) SetDCs(dcs []*DConfiguration) { pc.dcs = dcs }

// TotalProb sums probability weight across all live DConfigurations
// (spec.md §8 property 3, "sub-probability").
func (pc *PConfiguration) TotalProb() float64 {
	var total float64
	for _, dc := range pc.dcs {
		total += dc.prob
	}
	return total
}

func checkLen(pc *PConfiguration, got int) error {
	if got != len(pc.dcs) {
		return fmt.Errorf("configuration: expected %d values, got %d: %w", len(pc.dcs), got, ErrLengthMismatch)
	}
	return nil
}

// Assign lifts DConfiguration.Assign pointwise across the population
// (spec.md §4.3).
func (pc *PConfiguration) Assign(name string, values []int64) error {
	if err := checkLen(pc, len(values)); err != nil {
		return err
	}
	for i, dc := range pc.dcs {
		dc.Assign(name, values[i])
	}
	return nil
}

// snapshotLen returns the DConfiguration count to iterate over for a
// lifted fork-capable operation: the count present *before* the
// operation began. Sibling DConfigurations appended mid-loop by cr/sw
// are never visited again within the same lifted step (spec.md §4.3,
// "Critical iteration rule").
func (pc *PConfiguration) snapshotLen() int { return len(pc.dcs) }

// Cr lifts DConfiguration.Cr pointwise (spec.md §4.3). xs[i]/ys[i] pair
// with pc.At(i) for i in the pre-call snapshot only.
func (pc *PConfiguration) Cr(name string, xs, ys []int64, topo *topology.Topology) error {
	if err := checkLen(pc, len(xs)); err != nil {
		return err
	}
	if err := checkLen(pc, len(ys)); err != nil {
		return err
	}
	n := pc.snapshotLen()
	for i := 0; i < n; i++ {
		if err := pc.dcs[i].Cr(name, int(xs[i]), int(ys[i]), topo, pc); err != nil {
			return err
		}
	}
	return nil
}

// Sw lifts DConfiguration.Sw pointwise (spec.md §4.3).
func (pc *PConfiguration) Sw(name string, xs, ys, zs []int64, topo *topology.Topology) error {
	if err := checkLen(pc, len(xs)); err != nil {
		return err
	}
	if err := checkLen(pc, len(ys)); err != nil {
		return err
	}
	if err := checkLen(pc, len(zs)); err != nil {
		return err
	}
	n := pc.snapshotLen()
	for i := 0; i < n; i++ {
		if err := pc.dcs[i].Sw(name, int(xs[i]), int(ys[i]), int(zs[i]), topo, pc); err != nil {
			return err
		}
	}
	return nil
}

// De lifts DConfiguration.De pointwise (spec.md §4.3). de never forks,
// so no snapshot discipline is needed here.
func (pc *PConfiguration) De(xs, ys []int64, topo *topology.Topology) error {
	if err := checkLen(pc, len(xs)); err != nil {
		return err
	}
	if err := checkLen(pc, len(ys)); err != nil {
		return err
	}
	for i, dc := range pc.dcs {
		if err := dc.De(int(xs[i]), int(ys[i]), topo); err != nil {
			return err
		}
	}
	return nil
}

// Forget deletes the named variables from every DConfiguration's memory,
// then merges any DConfigurations whose (mem, ent) pair has become
// equal, summing their probability into the first occurrence (stable)
// and discarding the duplicate (spec.md §4.5 "Forget", §9 "DC equality
// in forget"). This is the sole merge point in the whole interpreter.
//
// Equality is delegated to google/go-cmp: IntMatrix implements an Equal
// method, so cmp.Equal compares ent without reflecting into its
// unexported backing slice, and mem is an ordinary comparable map.
func (pc *PConfiguration) Forget(names []string) {
	for _, dc := range pc.dcs {
		for _, name := range names {
			delete(dc.mem, name)
		}
	}

	merged := make([]*DConfiguration, 0, len(pc.dcs))
	for _, dc := range pc.dcs {
		found := false
		for _, m := range merged {
			if cmp.Equal(dc.mem, m.mem) && cmp.Equal(dc.ent, m.ent) {
				m.prob += dc.prob
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, dc)
		}
	}
	pc.dcs = merged
}

// Partition splits pc into (kept, dropped) by the pointwise truthiness
// of results, preserving relative order in both halves — the shared
// primitive behind If's branch split and Assert's prune (spec.md §4.5,
// §9 "Ordered PC vs multiset": "preserve the relative order of survivors").
func (pc *PConfiguration) Partition(results []int64) (kept, dropped []*DConfiguration, err error) {
	if err := checkLen(pc, len(results)); err != nil {
		return nil, nil, err
	}
	for i, dc := range pc.dcs {
		if results[i] != 0 {
			kept = append(kept, dc)
		} else {
			dropped = append(dropped, dc)
		}
	}
	return kept, dropped, nil
}
