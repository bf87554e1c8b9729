/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqltool/internal/token"
)

func mustLex(t *testing.T, src string) []token.Token {
	t.Helper()
	tokens, err := Lex(&token.SourceFile{Filepath: "test", Buffer: src})
	require.NoError(t, err)
	return tokens
}

func kinds(tokens []token.Token) []token.Kind {
	ks := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		ks[i] = tok.Type
	}
	return ks
}

func TestSimplePunctuationAndNames(t *testing.T) {
	tokens := mustLex(t, "type Query { hello: String }")

	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.IDENTIFIER, token.LEFT_BRACE,
		token.IDENTIFIER, token.COLON, token.IDENTIFIER, token.RIGHT_BRACE,
		token.EOF,
	}, kinds(tokens))

	assert.Equal(t, "type", tokens[0].Lexeme)
	assert.Equal(t, "Query", tokens[1].Lexeme)
	assert.Equal(t, "hello", tokens[3].Lexeme)
	assert.Equal(t, "String", tokens[5].Lexeme)
}

func TestNumbers(t *testing.T) {
	tokens := mustLex(t, "1 -23 1.5 3e10 -1.2e-3")
	var lexemes []string
	for _, tok := range tokens {
		if tok.Type == token.NUMBER {
			lexemes = append(lexemes, tok.Lexeme)
		}
	}
	assert.Equal(t, []string{"1", "-23", "1.5", "3e10", "-1.2e-3"}, lexemes)
}

func TestSpreadAndInvalidSpread(t *testing.T) {
	tokens := mustLex(t, "...")
	require.Len(t, tokens, 2)
	assert.Equal(t, token.SPREAD, tokens[0].Type)

	_, err := Lex(&token.SourceFile{Filepath: "test", Buffer: ".."})
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, InvalidSpread, lexErr.Kind)
}

func TestStringLiteral(t *testing.T) {
	tokens := mustLex(t, `"hello \"world\"\n"`)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
}

func TestBlockString(t *testing.T) {
	tokens := mustLex(t, `"""
	block string
	"""`)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Type)
}

func TestUnterminatedString(t *testing.T) {
	_, err := Lex(&token.SourceFile{Filepath: "test", Buffer: "\"abc\ndef\""})
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnterminatedString, lexErr.Kind)
}

func TestInvalidNumber(t *testing.T) {
	_, err := Lex(&token.SourceFile{Filepath: "test", Buffer: "1."})
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, InvalidNumber, lexErr.Kind)
}

func TestCommentsSkipped(t *testing.T) {
	tokens := mustLex(t, "# a comment\ntype Query")
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.IDENTIFIER, token.EOF}, kinds(tokens))
}

// TestLocationRoundTrip verifies Testable Property 1: for every emitted
// token, the recorded column span reproduces the exact source lexeme on
// its line.
func TestLocationRoundTrip(t *testing.T) {
	src := "type Q {\n  x: Int!\n}"
	sf := &token.SourceFile{Filepath: "test", Buffer: src}
	tokens, err := Lex(sf)
	require.NoError(t, err)

	lines := []string{"type Q {", "  x: Int!", "}"}
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		line := lines[tok.Loc.Line-1]
		got := line[tok.Loc.StartCol-1 : tok.Loc.EndCol-1]
		assert.Equal(t, tok.Lexeme, got)
	}
}

func TestCommaIsItsOwnToken(t *testing.T) {
	tokens := mustLex(t, "a, b")
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.COMMA, token.IDENTIFIER, token.EOF,
	}, kinds(tokens))
}
