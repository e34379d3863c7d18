package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/ast"
	"github.com/katalvlaran/qnv/parser"
)

func TestParsePlainAssign(t *testing.T) {
	prog, err := parser.Parse("x := 1 + 2 * 3;")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)

	assign, ok := prog.Stmts[0].(*ast.Assign)
	require.True(t, ok)
	require.Equal(t, "x", assign.Name)

	bin, ok := assign.Expr.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Add, bin.Op)
	rhs, ok := bin.Rhs.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.Mul, rhs.Op)
}

func TestParseCrAndSw(t *testing.T) {
	prog, err := parser.Parse("a := cr(1, 2); b := sw(1, 2 @ 3);")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 2)

	cr, ok := prog.Stmts[0].(*ast.AssignCr)
	require.True(t, ok)
	require.Equal(t, "a", cr.Name)

	sw, ok := prog.Stmts[1].(*ast.AssignSw)
	require.True(t, ok)
	require.Equal(t, "b", sw.Name)
}

func TestParseDe(t *testing.T) {
	prog, err := parser.Parse("de(1, 2);")
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 1)
	_, ok := prog.Stmts[0].(*ast.De)
	require.True(t, ok)
}

func TestParseIfWhileAssertForgetPass(t *testing.T) {
	src := `
		if (x == 1) { pass; } else { assert(x); }
		while (x < 10) { x := x + 1; }
		forget(x, y);
	`
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Stmts, 3)

	ifs, ok := prog.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifs.Then.Stmts, 1)
	require.Len(t, ifs.Else.Stmts, 1)

	whiles, ok := prog.Stmts[1].(*ast.While)
	require.True(t, ok)
	require.Len(t, whiles.Body.Stmts, 1)

	forget, ok := prog.Stmts[2].(*ast.Forget)
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, forget.Names)
}

func TestOperatorPrecedence(t *testing.T) {
	prog, err := parser.Parse("x := 1 || 2 && 3 == 4 + 5 * 6;")
	require.NoError(t, err)
	assign := prog.Stmts[0].(*ast.Assign)
	top, ok := assign.Expr.(*ast.Binary)
	require.True(t, ok)
	require.Equal(t, ast.LogicOr, top.Op)
}

func TestUnaryPrefix(t *testing.T) {
	prog, err := parser.Parse("x := -1; y := !x;")
	require.NoError(t, err)
	a := prog.Stmts[0].(*ast.Assign)
	u, ok := a.Expr.(*ast.Unary)
	require.True(t, ok)
	require.Equal(t, ast.Neg, u.Op)

	b := prog.Stmts[1].(*ast.Assign)
	u2, ok := b.Expr.(*ast.Unary)
	require.True(t, ok)
	require.Equal(t, ast.LogicNot, u2.Op)
}

func TestSyntaxErrorsAggregate(t *testing.T) {
	_, err := parser.Parse("x := ; y := ;")
	require.Error(t, err)
	var errs parser.ErrorList
	require.ErrorAs(t, err, &errs)
	require.GreaterOrEqual(t, len(errs), 2)
}
