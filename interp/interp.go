// Package interp implements the statement interpreter (spec.md §4.5):
// a visitor over ast.Stmt that mutates a configuration.PConfiguration in
// place. Dispatch is a Go type switch over the closed ast.Stmt interface
// rather than the original's double-dispatch Visitor protocol
// (original_source/frontend/ast/visitor.py) — the "tagged variants
// dispatched by pattern match" re-architecture spec.md §9 calls for.
package interp

import (
	"fmt"

	"github.com/katalvlaran/qnv/ast"
	"github.com/katalvlaran/qnv/configuration"
	"github.com/katalvlaran/qnv/eval"
	"github.com/katalvlaran/qnv/topology"
)

// MaxLoopIterations is the hard bound on while-body iterations (spec.md
// §4.5, §5: "No sound verification against infinite loops: divergence is
// bounded by a fixed iteration limit").
const MaxLoopIterations = 1000

// Interp walks an ast.Program against a PConfiguration for one fixed
// Topology. It carries no other state: spec.md §5 is explicit that the
// interpreter owns no shared mutable state beyond the PC it is handed.
type Interp struct {
	topo *topology.Topology
}

// New returns an Interp bound to topo.
func New(topo *topology.Topology) *Interp {
	return &Interp{topo: topo}
}

// Run executes prog's statements in order against pc (spec.md §4.5
// "Program").
func (it *Interp) Run(prog *ast.Program, pc *configuration.PConfiguration) error {
	for _, s := range prog.Stmts {
		if err := it.Exec(s, pc); err != nil {
			return err
		}
	}
	return nil
}

// Exec dispatches a single statement by its concrete type and mutates pc
// in place. Exported so driver can log at statement boundaries without
// re-implementing the switch.
func (it *Interp) Exec(s ast.Stmt, pc *configuration.PConfiguration) error {
	switch n := s.(type) {
	case *ast.Assign:
		return it.execAssign(n, pc)
	case *ast.AssignCr:
		return it.execAssignCr(n, pc)
	case *ast.AssignSw:
		return it.execAssignSw(n, pc)
	case *ast.De:
		return it.execDe(n, pc)
	case *ast.Assert:
		return it.execAssert(n, pc)
	case *ast.Pass:
		return nil
	case *ast.Forget:
		pc.Forget(n.Names)
		return nil
	case *ast.If:
		return it.execIf(n, pc)
	case *ast.While:
		return it.execWhile(n, pc)
	default:
		return fmt.Errorf("interp: unknown statement type %T", s)
	}
}

func (it *Interp) execAssign(n *ast.Assign, pc *configuration.PConfiguration) error {
	vals, err := eval.Eval(n.Expr, pc)
	if err != nil {
		return err
	}
	return pc.Assign(n.Name, vals)
}

func (it *Interp) execAssignCr(n *ast.AssignCr, pc *configuration.PConfiguration) error {
	xs, err := eval.Eval(n.X, pc)
	if err != nil {
		return err
	}
	ys, err := eval.Eval(n.Y, pc)
	if err != nil {
		return err
	}
	return pc.Cr(n.Name, xs, ys, it.topo)
}

func (it *Interp) execAssignSw(n *ast.AssignSw, pc *configuration.PConfiguration) error {
	xs, err := eval.Eval(n.X, pc)
	if err != nil {
		return err
	}
	ys, err := eval.Eval(n.Y, pc)
	if err != nil {
		return err
	}
	zs, err := eval.Eval(n.Z, pc)
	if err != nil {
		return err
	}
	return pc.Sw(n.Name, xs, ys, zs, it.topo)
}

func (it *Interp) execDe(n *ast.De, pc *configuration.PConfiguration) error {
	xs, err := eval.Eval(n.X, pc)
	if err != nil {
		return err
	}
	ys, err := eval.Eval(n.Y, pc)
	if err != nil {
		return err
	}
	return pc.De(xs, ys, it.topo)
}

// execAssert retains only the DConfigurations whose test result is
// nonzero; the probability mass of the rest is lost (spec.md §4.5
// "Assertion", §8 property 3 "sub-probability").
func (it *Interp) execAssert(n *ast.Assert, pc *configuration.PConfiguration) error {
	results, err := eval.Eval(n.Test, pc)
	if err != nil {
		return err
	}
	kept, _, err := pc.Partition(results)
	if err != nil {
		return err
	}
	pc.SetDCs(kept)
	return nil
}

// execIf partitions the live population by the test's truthiness,
// recursively interprets Then against the nonzero partition and Else
// against the zero partition, then replaces the enclosing PC's
// DConfiguration list with the concatenation of both *after* both
// recursive calls complete (spec.md §4.5 "If").
func (it *Interp) execIf(n *ast.If, pc *configuration.PConfiguration) error {
	results, err := eval.Eval(n.Test, pc)
	if err != nil {
		return err
	}
	thenDCs, elseDCs, err := pc.Partition(results)
	if err != nil {
		return err
	}

	thenPC := configuration.New(thenDCs)
	elsePC := configuration.New(elseDCs)
	if err := it.Run(n.Then, thenPC); err != nil {
		return err
	}
	if err := it.Run(n.Else, elsePC); err != nil {
		return err
	}

	merged := make([]*configuration.DConfiguration, 0, thenPC.Len()+elsePC.Len())
	merged = append(merged, thenPC.DCs()...)
	merged = append(merged, elsePC.DCs()...)
	pc.SetDCs(merged)
	return nil
}

// execWhile implements the branching-while semantics of spec.md §4.5:
// each round, DConfigurations whose test is false permanently exit the
// loop (accumulated, in order, into `exited`); the rest run Body once
// more. The loop terminates when the active set is empty or when the
// body has executed more than MaxLoopIterations times.
func (it *Interp) execWhile(n *ast.While, pc *configuration.PConfiguration) error {
	var exited []*configuration.DConfiguration
	iterations := 0

	for {
		results, err := eval.Eval(n.Test, pc)
		if err != nil {
			return err
		}
		active, done, err := pc.Partition(results)
		if err != nil {
			return err
		}
		exited = append(exited, done...)
		if len(active) == 0 {
			break
		}

		pc.SetDCs(active)
		if err := it.Run(n.Body, pc); err != nil {
			return err
		}
		iterations++
		if iterations > MaxLoopIterations {
			return ErrLoopDivergence
		}
	}

	pc.SetDCs(exited)
	return nil
}
