package driver

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qnv/configuration"
)

// Result is a render-friendly snapshot of a final PConfiguration: one
// entry per surviving DConfiguration, in order.
type Result struct {
	DConfigurations []DCResult `yaml:"dconfigurations"`
}

// DCResult is one DConfiguration's prob/mem/ent rendered for output.
type DCResult struct {
	Prob float64          `yaml:"prob"`
	Mem  map[string]int64 `yaml:"mem"`
	Ent  [][]int64        `yaml:"ent"`
}

// BuildResult snapshots pc into a Result, the shape both the plain-text
// and YAML renderers consume.
func BuildResult(pc *configuration.PConfiguration) *Result {
	r := &Result{DConfigurations: make([]DCResult, 0, pc.Len())}
	for i := 0; i < pc.Len(); i++ {
		dc := pc.At(i)
		ent := dc.Ent()
		n := ent.N()
		rows := make([][]int64, n)
		for row := 0; row < n; row++ {
			rows[row] = make([]int64, n)
			for col := 0; col < n; col++ {
				rows[row][col] = ent.At(row, col)
			}
		}
		mem := make(map[string]int64, len(dc.Mem()))
		for k, v := range dc.Mem() {
			mem[k] = v
		}
		r.DConfigurations = append(r.DConfigurations, DCResult{Prob: dc.Prob(), Mem: mem, Ent: rows})
	}
	return r
}

// WriteText renders the result the way spec.md §6 "Output" mandates:
// each DConfiguration emits its prob, its mem mapping, and its ent
// matrix on separate lines, with a blank line between DConfigurations.
func (r *Result) WriteText(w io.Writer) error {
	for i, dc := range r.DConfigurations {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, dc.Prob)
		fmt.Fprintln(w, dc.Mem)
		for _, row := range dc.Ent {
			fmt.Fprintln(w, row)
		}
	}
	return nil
}

// WriteYAML renders the result as YAML, the supplemental structured
// output mode named in SPEC_FULL.md §1 ("--format yaml").
func (r *Result) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(r)
}
