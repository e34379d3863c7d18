package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/lexer"
)

func kinds(t []lexer.Token) []lexer.Kind {
	ks := make([]lexer.Kind, len(t))
	for i, tok := range t {
		ks[i] = tok.Kind
	}
	return ks
}

func TestAllKeywordsAndPunctuation(t *testing.T) {
	src := `x := cr(a, b); y := sw(a, b @ c); de(a, b); if (x) { assert(y); } else { pass; } forget(x, y); while (x) { pass; }`
	toks, err := lexer.All(src)
	require.NoError(t, err)
	require.Equal(t, lexer.EOF, toks[len(toks)-1].Kind)

	ks := kinds(toks)
	require.Contains(t, ks, lexer.KwCr)
	require.Contains(t, ks, lexer.KwSw)
	require.Contains(t, ks, lexer.KwDe)
	require.Contains(t, ks, lexer.KwIf)
	require.Contains(t, ks, lexer.KwElse)
	require.Contains(t, ks, lexer.KwAssert)
	require.Contains(t, ks, lexer.KwPass)
	require.Contains(t, ks, lexer.KwForget)
	require.Contains(t, ks, lexer.KwWhile)
	require.Contains(t, ks, lexer.Assign)
	require.Contains(t, ks, lexer.At)
}

func TestTwoCharOperators(t *testing.T) {
	toks, err := lexer.All("a == b != c <= d >= e && f || g < h > i")
	require.NoError(t, err)
	ks := kinds(toks)
	require.Contains(t, ks, lexer.Eq)
	require.Contains(t, ks, lexer.Ne)
	require.Contains(t, ks, lexer.Le)
	require.Contains(t, ks, lexer.Ge)
	require.Contains(t, ks, lexer.And)
	require.Contains(t, ks, lexer.Or)
	require.Contains(t, ks, lexer.Lt)
	require.Contains(t, ks, lexer.Gt)
}

func TestIntLiteral(t *testing.T) {
	toks, err := lexer.All("12345")
	require.NoError(t, err)
	require.Equal(t, int64(12345), toks[0].IntV)
	require.Equal(t, lexer.Int, toks[0].Kind)
}

func TestCommentsSkipped(t *testing.T) {
	toks, err := lexer.All("x := 1; # trailing comment\n// another\ny := 2;")
	require.NoError(t, err)
	ks := kinds(toks)
	require.NotContains(t, ks, lexer.Kind(-1))
	require.Equal(t, lexer.Ident, toks[0].Kind)
}

func TestBareColonIsError(t *testing.T) {
	_, err := lexer.All("x : 1")
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := lexer.All("x := $")
	require.Error(t, err)
}

func TestLineTracking(t *testing.T) {
	toks, err := lexer.All("x := 1;\ny := 2;")
	require.NoError(t, err)
	require.Equal(t, 1, toks[0].Line)
	var yLine int
	for _, tok := range toks {
		if tok.Kind == lexer.Ident && tok.Text == "y" {
			yLine = tok.Line
		}
	}
	require.Equal(t, 2, yLine)
}
