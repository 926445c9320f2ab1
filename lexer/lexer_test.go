/*
File    : C-Like/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carb0ned0/C-Like/clikeerr"
	"github.com/carb0ned0/C-Like/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestLexerOperatorsAndPunctuation(t *testing.T) {
	toks := allTokens(t, `a = b + c * (d - e) / f; g[0] = 1;`)
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []token.Kind{
		token.ID, token.ASSIGN, token.ID, token.PLUS, token.ID, token.STAR,
		token.LPAREN, token.ID, token.MINUS, token.ID, token.RPAREN,
		token.SLASH, token.ID, token.SEMI,
		token.ID, token.LBRACK, token.INTEGER_CONST, token.RBRACK, token.ASSIGN,
		token.INTEGER_CONST, token.SEMI,
	}, kinds)
}

func TestLexerMultiCharOperatorsPreferLongestMatch(t *testing.T) {
	toks := allTokens(t, `== != <= >= && ||`)
	require.Len(t, toks, 6)
	require.Equal(t, token.EQ, toks[0].Kind)
	require.Equal(t, token.NEQ, toks[1].Kind)
	require.Equal(t, token.LEQ, toks[2].Kind)
	require.Equal(t, token.GEQ, toks[3].Kind)
	require.Equal(t, token.AND, toks[4].Kind)
	require.Equal(t, token.OR, toks[5].Kind)
}

func TestLexerKeywordsVsIdentifiers(t *testing.T) {
	toks := allTokens(t, `int ifx if while2 while`)
	require.Equal(t, token.INT_KW, toks[0].Kind)
	require.Equal(t, token.ID, toks[1].Kind) // "ifx" is not a keyword
	require.Equal(t, token.IF, toks[2].Kind)
	require.Equal(t, token.ID, toks[3].Kind) // "while2" is not a keyword
	require.Equal(t, token.WHILE, toks[4].Kind)
}

func TestLexerNumericLiterals(t *testing.T) {
	toks := allTokens(t, `42 3.14 0 0.5`)
	require.Equal(t, token.INTEGER_CONST, toks[0].Kind)
	require.Equal(t, int64(42), toks[0].Value)
	require.Equal(t, token.FLOAT_CONST, toks[1].Kind)
	require.Equal(t, 3.14, toks[1].Value)
	require.Equal(t, token.INTEGER_CONST, toks[2].Kind)
	require.Equal(t, token.FLOAT_CONST, toks[3].Kind)
}

func TestLexerStringAndCharLiterals(t *testing.T) {
	toks := allTokens(t, `"hello, clike" 'x'`)
	require.Equal(t, token.STRING_CONST, toks[0].Kind)
	require.Equal(t, "hello, clike", toks[0].Value)
	require.Equal(t, token.CHAR_CONST, toks[1].Kind)
	require.Equal(t, byte('x'), toks[1].Value)
}

func TestLexerUnterminatedStringFails(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.Next()
	require.Error(t, err)
	ce, ok := err.(*clikeerr.Error)
	require.True(t, ok)
	require.Equal(t, clikeerr.LexUnterminatedString, ce.Kind)
}

func TestLexerBadCharLiteralFails(t *testing.T) {
	l := New(`'ab'`)
	_, err := l.Next()
	require.Error(t, err)
	ce, ok := err.(*clikeerr.Error)
	require.True(t, ok)
	require.Equal(t, clikeerr.LexBadChar, ce.Kind)
}

func TestLexerUnexpectedCharacterFails(t *testing.T) {
	l := New(`a @ b`)
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Next()
	require.Error(t, err)
	ce, ok := err.(*clikeerr.Error)
	require.True(t, ok)
	require.Equal(t, clikeerr.LexUnexpectedChar, ce.Kind)
}

func TestLexerLineCommentsAreSkipped(t *testing.T) {
	toks := allTokens(t, "int x; // this is a comment\nint y;")
	require.Len(t, toks, 6)
	require.Equal(t, 2, toks[4].Pos.Line)
}

func TestLexerIncludeDirective(t *testing.T) {
	toks := allTokens(t, `#include "utils.clike"
int main() {}`)
	require.Equal(t, token.INCLUDE, toks[0].Kind)
	require.Equal(t, "utils.clike", toks[0].Value)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := New(`int x`)
	p1, err := l.Peek()
	require.NoError(t, err)
	p2, err := l.Peek()
	require.NoError(t, err)
	require.Equal(t, p1, p2)
	n, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, p1, n)
}

func TestLexerLineAndColumnTracking(t *testing.T) {
	l := New("int\nx = 1;")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.Position{Line: 1, Column: 1}, tok.Pos)

	tok, err = l.Next() // x on line 2
	require.NoError(t, err)
	require.Equal(t, token.Position{Line: 2, Column: 1}, tok.Pos)
}
