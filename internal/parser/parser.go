/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package parser implements the recursive-descent File Parser (spec.md
§4.3). Two modes share this grammar core: ParseServer for type/input/
interface/union/enum/scalar/directive/schema/extend definitions, and
ParseClient for query/mutation/subscription/fragment operations.

Unlike the teacher's Pratt parser (top-down operator precedence, suited
to expression grammars), this grammar is a fixed recursive descent: each
production is a plain method that consumes tokens and returns a node,
grounded on original_source's parsers/server/parser.cpp which parses the
same grammar the same way.
*/
package parser

import (
	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/token"
)

/*
serverKeywords are reserved in server mode (spec.md §4.3).
*/
var serverKeywords = map[string]bool{
	"type": true, "input": true, "interface": true, "union": true,
	"enum": true, "scalar": true, "directive": true, "schema": true,
	"extend": true, "implements": true, "repeatable": true, "on": true,
	"true": true, "false": true, "null": true,
}

/*
clientKeywords are reserved in client mode.
*/
var clientKeywords = map[string]bool{
	"query": true, "mutation": true, "subscription": true,
	"fragment": true, "on": true, "true": true, "false": true, "null": true,
}

/*
parser walks a fixed token slice with a single-token lookahead.
*/
type parser struct {
	tokens   []token.Token
	pos      int
	source   *token.SourceFile
	keywords map[string]bool
}

func newParser(tokens []token.Token, source *token.SourceFile, keywords map[string]bool) *parser {
	// Commas are insignificant separators (§4.1 tie-break on trailing
	// commas); drop them up front so every production can ignore them.
	filtered := make([]token.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type != token.COMMA {
			filtered = append(filtered, t)
		}
	}
	return &parser{tokens: filtered, source: source, keywords: keywords}
}

/*
peek returns the current lookahead token without advancing.
*/
func (p *parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[p.pos]
}

/*
peekAt returns the token n positions ahead of the lookahead.
*/
func (p *parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

/*
advance consumes and returns the current lookahead token.
*/
func (p *parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

/*
atEOF reports whether the lookahead token is EOF.
*/
func (p *parser) atEOF() bool {
	return p.peek().Type == token.EOF
}

/*
errAt builds a parser Error anchored at the given token.
*/
func (p *parser) errAt(kind ErrorKind, tok token.Token, msg string) error {
	return &Error{Kind: kind, Token: tok, Source: p.source, Message: msg}
}

/*
consume advances past a token of the expected type, or fails with
WrongTokenType (or UnexpectedEOF at end of input).
*/
func (p *parser) consume(kind token.Kind) (token.Token, error) {
	tok := p.peek()
	if tok.Type == token.EOF && kind != token.EOF {
		return tok, p.errAt(UnexpectedEOF, tok, "unexpected end of input")
	}
	if tok.Type != kind {
		return tok, p.errAt(WrongTokenType, tok, "expected "+kind.String()+", got "+tok.Type.String())
	}
	return p.advance(), nil
}

/*
consumeLexeme advances past an IDENTIFIER token whose lexeme matches
exactly, or fails with WrongLexeme.
*/
func (p *parser) consumeLexeme(lexeme string) (token.Token, error) {
	tok := p.peek()
	if tok.Type == token.EOF {
		return tok, p.errAt(UnexpectedEOF, tok, "unexpected end of input")
	}
	if tok.Lexeme != lexeme {
		return tok, p.errAt(WrongLexeme, tok, "expected \""+lexeme+"\", got \""+tok.Lexeme+"\"")
	}
	return p.advance(), nil
}

/*
atLexeme reports whether the lookahead token's lexeme matches, without
consuming it.
*/
func (p *parser) atLexeme(lexeme string) bool {
	return p.peek().Lexeme == lexeme
}

/*
parseName consumes an IDENTIFIER. Reserved keywords are accepted here;
parseDefinitionName is the variant that rejects them.
*/
func (p *parser) parseName() (ast.NameNode, error) {
	tok, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return ast.NameNode{}, err
	}
	return ast.NameNode{Loc: p.span(tok, tok), Name: tok.Lexeme}, nil
}

/*
parseDefinitionName consumes an IDENTIFIER destined to be a definition's
own name and rejects it if it collides with a reserved keyword.
*/
func (p *parser) parseDefinitionName() (ast.NameNode, error) {
	tok := p.peek()
	if p.keywords[tok.Lexeme] {
		return ast.NameNode{}, p.errAt(IdentifierIsKeyword, tok, tok.Lexeme+" is a reserved keyword")
	}
	return p.parseName()
}

/*
span builds a NodeLocation from the first to the last token consumed by
a production.
*/
func (p *parser) span(start, end token.Token) ast.NodeLocation {
	return ast.NodeLocation{StartToken: start, EndToken: end, Source: p.source}
}

/*
lastConsumed returns the token immediately behind the lookahead - the
token most recently consumed - for spanning a production's NodeLocation.
*/
func (p *parser) lastConsumed() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}
