// Package parser builds an ast.Program from a token stream.
//
// The grammar is a direct translation of the yacc rules in
// original_source/frontend/parser/ply_parser.py (operator precedence:
// logical_or < logical_and < relational < additive < multiplicative <
// unary < primary) into a hand-written recursive-descent parser, the
// idiomatic Go replacement for a ply-generated one. Errors are collected
// rather than raised on the first bad token (spec.md §7: "collected,
// printed to standard error, exit code 1"), matching the original's
// error_stack/p_error recovery behavior.
package parser

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qnv/ast"
	"github.com/katalvlaran/qnv/lexer"
)

// SyntaxError is one parse failure at a specific line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: line %d: %s", e.Line, e.Msg)
}

// ErrorList aggregates every SyntaxError encountered during a Parse call,
// mirroring the original parser's error_stack.
type ErrorList []*SyntaxError

func (el ErrorList) Error() string {
	lines := make([]string, len(el))
	for i, e := range el {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Parse tokenizes and parses src into an ast.Program. If any syntax errors
// are encountered, it returns a nil program and a non-nil ErrorList holding
// every error collected.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.All(src)
	if err != nil {
		return nil, ErrorList{{Line: err.(*lexer.Error).Line, Msg: err.Error()}}
	}
	p := &parser{toks: toks}
	prog := p.parseProgram()
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return prog, nil
}

type parser struct {
	toks []lexer.Token
	pos  int
	errs ErrorList
}

func (p *parser) cur() lexer.Token  { return p.toks[p.pos] }
func (p *parser) line() int         { return p.cur().Line }
func (p *parser) atEnd() bool       { return p.cur().Kind == lexer.EOF }
func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errf(format string, args ...interface{}) {
	p.errs = append(p.errs, &SyntaxError{Line: p.line(), Msg: fmt.Sprintf(format, args...)})
}

// expect consumes a token of the given kind or records an error and
// consumes the mismatched token in its place. Statement-level
// resynchronization happens in parseProgram.
func (p *parser) expect(k lexer.Kind) lexer.Token {
	if p.cur().Kind == k {
		return p.advance()
	}
	p.errf("expected %q, found %q", tokenName(k), p.cur())
	return p.advance()
}

func tokenName(k lexer.Kind) string {
	return lexer.Token{Kind: k}.String()
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() && p.cur().Kind != lexer.RBrace {
		if s := p.parseStatement(); s != nil {
			prog.Stmts = append(prog.Stmts, s)
		} else {
			// resynchronize: skip to next ';' or '}' to avoid cascading errors
			for !p.atEnd() && p.cur().Kind != lexer.Semi && p.cur().Kind != lexer.RBrace {
				p.advance()
			}
			if p.cur().Kind == lexer.Semi {
				p.advance()
			}
		}
	}
	return prog
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.cur().Kind {
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwAssert:
		return p.parseAssert()
	case lexer.KwPass:
		p.advance()
		p.expect(lexer.Semi)
		return &ast.Pass{}
	case lexer.KwForget:
		return p.parseForget()
	case lexer.KwDe:
		return p.parseDe()
	case lexer.Ident:
		return p.parseAssignLike()
	default:
		p.errf("unexpected token %q at start of statement", p.cur())
		return nil
	}
}

func (p *parser) parseBlock() *ast.Program {
	p.expect(lexer.LBrace)
	prog := p.parseProgram()
	p.expect(lexer.RBrace)
	return prog
}

func (p *parser) parseIf() ast.Stmt {
	p.advance() // if
	p.expect(lexer.LParen)
	test := p.parseExpr()
	p.expect(lexer.RParen)
	then := p.parseBlock()
	var els *ast.Program
	if p.cur().Kind == lexer.KwElse {
		p.advance()
		els = p.parseBlock()
	} else {
		els = &ast.Program{}
	}
	return &ast.If{Test: test, Then: then, Else: els}
}

func (p *parser) parseWhile() ast.Stmt {
	p.advance() // while
	p.expect(lexer.LParen)
	test := p.parseExpr()
	p.expect(lexer.RParen)
	body := p.parseBlock()
	return &ast.While{Test: test, Body: body}
}

func (p *parser) parseAssert() ast.Stmt {
	p.advance() // assert
	p.expect(lexer.LParen)
	test := p.parseExpr()
	p.expect(lexer.RParen)
	p.expect(lexer.Semi)
	return &ast.Assert{Test: test}
}

func (p *parser) parseForget() ast.Stmt {
	p.advance() // forget
	p.expect(lexer.LParen)
	var names []string
	if p.cur().Kind == lexer.Ident {
		names = append(names, p.advance().Text)
		for p.cur().Kind == lexer.Comma {
			p.advance()
			names = append(names, p.expect(lexer.Ident).Text)
		}
	}
	p.expect(lexer.RParen)
	p.expect(lexer.Semi)
	return &ast.Forget{Names: names}
}

func (p *parser) parseDe() ast.Stmt {
	p.advance() // de
	p.expect(lexer.LParen)
	x := p.parseExpr()
	p.expect(lexer.Comma)
	y := p.parseExpr()
	p.expect(lexer.RParen)
	p.expect(lexer.Semi)
	return &ast.De{X: x, Y: y}
}

// parseAssignLike handles the three statement forms that start with
// `Identifier Assign`: plain assignment, cr(...), and sw(...).
func (p *parser) parseAssignLike() ast.Stmt {
	name := p.advance().Text
	p.expect(lexer.Assign)

	if p.cur().Kind == lexer.KwCr {
		p.advance()
		p.expect(lexer.LParen)
		x := p.parseExpr()
		p.expect(lexer.Comma)
		y := p.parseExpr()
		p.expect(lexer.RParen)
		p.expect(lexer.Semi)
		return &ast.AssignCr{Name: name, X: x, Y: y}
	}
	if p.cur().Kind == lexer.KwSw {
		p.advance()
		p.expect(lexer.LParen)
		x := p.parseExpr()
		p.expect(lexer.Comma)
		y := p.parseExpr()
		p.expect(lexer.At)
		z := p.parseExpr()
		p.expect(lexer.RParen)
		p.expect(lexer.Semi)
		return &ast.AssignSw{Name: name, X: x, Y: y, Z: z}
	}

	e := p.parseExpr()
	p.expect(lexer.Semi)
	return &ast.Assign{Name: name, Expr: e}
}

// Expression grammar, precedence low to high:
//
//	expr    := logicOr
//	logicOr := logicAnd ('||' logicAnd)*
//	logicAnd:= relational ('&&' relational)*
//	relational := additive (relOp additive)?
//	additive := multiplicative (('+'|'-') multiplicative)*
//	multiplicative := unary (('*'|'/') unary)*
//	unary   := '-' unary | '!' unary | primary
//	primary := Int | Ident | '(' expr ')'
func (p *parser) parseExpr() ast.Expr { return p.parseLogicOr() }

func (p *parser) parseLogicOr() ast.Expr {
	e := p.parseLogicAnd()
	for p.cur().Kind == lexer.Or {
		p.advance()
		e = &ast.Binary{Op: ast.LogicOr, Lhs: e, Rhs: p.parseLogicAnd()}
	}
	return e
}

func (p *parser) parseLogicAnd() ast.Expr {
	e := p.parseRelational()
	for p.cur().Kind == lexer.And {
		p.advance()
		e = &ast.Binary{Op: ast.LogicAnd, Lhs: e, Rhs: p.parseRelational()}
	}
	return e
}

var relOps = map[lexer.Kind]ast.BinaryOp{
	lexer.Eq: ast.EQ, lexer.Ne: ast.NE, lexer.Lt: ast.LT,
	lexer.Le: ast.LE, lexer.Gt: ast.GT, lexer.Ge: ast.GE,
}

func (p *parser) parseRelational() ast.Expr {
	e := p.parseAdditive()
	if op, ok := relOps[p.cur().Kind]; ok {
		p.advance()
		e = &ast.Binary{Op: op, Lhs: e, Rhs: p.parseAdditive()}
	}
	return e
}

func (p *parser) parseAdditive() ast.Expr {
	e := p.parseMultiplicative()
	for p.cur().Kind == lexer.Plus || p.cur().Kind == lexer.Minus {
		op := ast.Add
		if p.cur().Kind == lexer.Minus {
			op = ast.Sub
		}
		p.advance()
		e = &ast.Binary{Op: op, Lhs: e, Rhs: p.parseMultiplicative()}
	}
	return e
}

func (p *parser) parseMultiplicative() ast.Expr {
	e := p.parseUnary()
	for p.cur().Kind == lexer.Star || p.cur().Kind == lexer.Slash {
		op := ast.Mul
		if p.cur().Kind == lexer.Slash {
			op = ast.Div
		}
		p.advance()
		e = &ast.Binary{Op: op, Lhs: e, Rhs: p.parseUnary()}
	}
	return e
}

func (p *parser) parseUnary() ast.Expr {
	switch p.cur().Kind {
	case lexer.Minus:
		p.advance()
		return &ast.Unary{Op: ast.Neg, Operand: p.parseUnary()}
	case lexer.Not:
		p.advance()
		return &ast.Unary{Op: ast.LogicNot, Operand: p.parseUnary()}
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() ast.Expr {
	switch p.cur().Kind {
	case lexer.Int:
		t := p.advance()
		return &ast.IntLit{Value: t.IntV}
	case lexer.Ident:
		t := p.advance()
		return &ast.Ident{Name: t.Text}
	case lexer.LParen:
		p.advance()
		e := p.parseExpr()
		p.expect(lexer.RParen)
		return e
	default:
		p.errf("expected expression, found %q", p.cur())
		p.advance()
		return &ast.IntLit{Value: 0}
	}
}
