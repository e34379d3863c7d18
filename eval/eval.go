// Package eval implements the expression evaluator (spec.md §4.4): pure,
// side-effect-free evaluation of an ast.Expr against a PConfiguration of
// length k, producing a length-k int64 vector position-aligned with the
// PConfiguration's DConfigurations.
package eval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qnv/ast"
	"github.com/katalvlaran/qnv/configuration"
)

// NullMarker is the Div-by-zero sentinel of spec.md §4.4: "an explicit
// null-marker ... distinct from any integer". math.MinInt64 is never
// produced by a literal or by ordinary arithmetic on values a quantum
// network program manipulates (node indices, entanglement counts,
// booleans), so it is safe to reserve as the one distinguished value.
const NullMarker int64 = -1 << 63

// ErrNullObserved is returned when a NullMarker value produced by a
// division by zero is used by a later operation (spec.md §9's Open
// Question on Div: "A conservative implementation should treat any PC
// position whose evaluation produced a null-marker as an error at its
// first use").
var ErrNullObserved = errors.New("eval: division-by-zero result observed downstream")

// ErrMissingVariable is returned when an Ident names a variable absent
// from some DConfiguration's mem (spec.md §4.4 precondition; spec.md §7
// calls for "diagnose with the offending name" rather than silent UB).
var ErrMissingVariable = errors.New("eval: variable not bound in every configuration")

// Eval evaluates expr against pc, returning one int64 per live
// DConfiguration, aligned by index.
func Eval(expr ast.Expr, pc *configuration.PConfiguration) ([]int64, error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return evalIntLit(n, pc), nil
	case *ast.Ident:
		return evalIdent(n, pc)
	case *ast.Unary:
		return evalUnary(n, pc)
	case *ast.Binary:
		return evalBinary(n, pc)
	default:
		return nil, fmt.Errorf("eval: unknown expression type %T", expr)
	}
}

func evalIntLit(n *ast.IntLit, pc *configuration.PConfiguration) []int64 {
	k := pc.Len()
	out := make([]int64, k)
	for i := range out {
		out[i] = n.Value
	}
	return out
}

func evalIdent(n *ast.Ident, pc *configuration.PConfiguration) ([]int64, error) {
	k := pc.Len()
	out := make([]int64, k)
	for i := 0; i < k; i++ {
		v, ok := pc.At(i).Get(n.Name)
		if !ok {
			return nil, fmt.Errorf("eval: identifier %q: %w", n.Name, ErrMissingVariable)
		}
		if v == NullMarker {
			return nil, fmt.Errorf("eval: identifier %q: %w", n.Name, ErrNullObserved)
		}
		out[i] = v
	}
	return out, nil
}

func evalUnary(n *ast.Unary, pc *configuration.PConfiguration) ([]int64, error) {
	operand, err := Eval(n.Operand, pc)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(operand))
	for i, v := range operand {
		if v == NullMarker {
			return nil, fmt.Errorf("eval: unary %s: %w", n.Op, ErrNullObserved)
		}
		switch n.Op {
		case ast.Neg:
			out[i] = -v
		case ast.LogicNot:
			out[i] = boolToInt(v == 0)
		default:
			return nil, fmt.Errorf("eval: unknown unary operator %v", n.Op)
		}
	}
	return out, nil
}

func evalBinary(n *ast.Binary, pc *configuration.PConfiguration) ([]int64, error) {
	// Both operands are always evaluated, deliberately no short-circuit,
	// to keep vector lengths aligned across DConfigurations (spec.md §4.4,
	// "LogicOr,LogicAnd: ... no short-circuit; this is intentional").
	l, err := Eval(n.Lhs, pc)
	if err != nil {
		return nil, err
	}
	r, err := Eval(n.Rhs, pc)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(l))
	for i := range l {
		v, err := applyBinary(n.Op, l[i], r[i])
		if err != nil {
			return nil, fmt.Errorf("eval: binary %s: %w", n.Op, err)
		}
		out[i] = v
	}
	return out, nil
}

func applyBinary(op ast.BinaryOp, l, r int64) (int64, error) {
	if l == NullMarker || r == NullMarker {
		return 0, ErrNullObserved
	}
	if op == ast.Div {
		if r == 0 {
			return NullMarker, nil
		}
		return floorDiv(l, r), nil
	}
	switch op {
	case ast.Add:
		return l + r, nil
	case ast.Sub:
		return l - r, nil
	case ast.Mul:
		return l * r, nil
	case ast.EQ:
		return boolToInt(l == r), nil
	case ast.NE:
		return boolToInt(l != r), nil
	case ast.LT:
		return boolToInt(l < r), nil
	case ast.LE:
		return boolToInt(l <= r), nil
	case ast.GT:
		return boolToInt(l > r), nil
	case ast.GE:
		return boolToInt(l >= r), nil
	case ast.LogicOr:
		return boolToInt(l != 0 || r != 0), nil
	case ast.LogicAnd:
		return boolToInt(l != 0 && r != 0), nil
	default:
		return 0, fmt.Errorf("unknown binary operator %v", op)
	}
}

// floorDiv implements spec.md §4.4's "integer floor division", which
// differs from Go's truncating / for mixed-sign operands.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
