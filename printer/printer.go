// Package printer renders an ast.Program as an indented tree, the Go
// counterpart of the original utils.printtree.TreePrinter consumed by
// `main.py`'s --parse path (spec.md §6 names a tree pretty-printer as an
// external collaborator without prescribing its output).
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qnv/ast"
)

// IndentLen is the number of spaces per nesting level, matching the
// original TreePrinter's default (indentLen=2).
const IndentLen = 2

// Print writes an indented rendering of prog to w.
func Print(w io.Writer, prog *ast.Program) {
	p := &printer{w: w}
	p.program(prog, 0)
}

type printer struct {
	w io.Writer
}

func (p *printer) line(depth int, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", depth*IndentLen), fmt.Sprintf(format, args...))
}

func (p *printer) program(prog *ast.Program, depth int) {
	p.line(depth, "program")
	for _, s := range prog.Stmts {
		p.stmt(s, depth+1)
	}
}

func (p *printer) stmt(s ast.Stmt, depth int) {
	switch n := s.(type) {
	case *ast.Assign:
		p.line(depth, "assignment %s", n.Name)
		p.expr(n.Expr, depth+1)
	case *ast.AssignCr:
		p.line(depth, "assignment_cr %s", n.Name)
		p.expr(n.X, depth+1)
		p.expr(n.Y, depth+1)
	case *ast.AssignSw:
		p.line(depth, "assignment_sw %s", n.Name)
		p.expr(n.X, depth+1)
		p.expr(n.Y, depth+1)
		p.expr(n.Z, depth+1)
	case *ast.De:
		p.line(depth, "de")
		p.expr(n.X, depth+1)
		p.expr(n.Y, depth+1)
	case *ast.Assert:
		p.line(depth, "assertion")
		p.expr(n.Test, depth+1)
	case *ast.Pass:
		p.line(depth, "pass")
	case *ast.Forget:
		p.line(depth, "forget(%s)", strings.Join(n.Names, ", "))
	case *ast.If:
		p.line(depth, "if")
		p.expr(n.Test, depth+1)
		p.program(n.Then, depth+1)
		p.program(n.Else, depth+1)
	case *ast.While:
		p.line(depth, "while")
		p.expr(n.Test, depth+1)
		p.program(n.Body, depth+1)
	default:
		p.line(depth, "unknown statement %T", s)
	}
}

func (p *printer) expr(e ast.Expr, depth int) {
	switch n := e.(type) {
	case *ast.IntLit:
		p.line(depth, "int(%d)", n.Value)
	case *ast.Ident:
		p.line(depth, "identifier(%s)", n.Name)
	case *ast.Unary:
		p.line(depth, "unary(%s)", n.Op)
		p.expr(n.Operand, depth+1)
	case *ast.Binary:
		p.line(depth, "binary(%s)", n.Op)
		p.expr(n.Lhs, depth+1)
		p.expr(n.Rhs, depth+1)
	default:
		p.line(depth, "unknown expression %T", e)
	}
}
