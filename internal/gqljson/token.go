/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package gqljson converts between the in-memory token/AST/schema graphs
and the wire JSON forms the CLI reads and writes (spec.md §6).
*/
package gqljson

import (
	"encoding/json"

	"github.com/tidwall/sjson"

	"github.com/krotik/gqltool/internal/token"
)

/*
wireLocation is the `{line, start, end}` shape of a token's location.
*/
type wireLocation struct {
	Line  int `json:"line"`
	Start int `json:"start"`
	End   int `json:"end"`
}

/*
wireToken is the `{type, lexeme, location}` shape of one token entry.
*/
type wireToken struct {
	Type     string       `json:"type"`
	Lexeme   string       `json:"lexeme"`
	Location wireLocation `json:"location"`
}

/*
EncodeTokens renders a token stream as the JSON array form written by
`internal lexer parse`. Each entry's `type`/`lexeme` fields are set with
encoding/json the usual way; `location` is patched in with sjson after
the fact rather than carried as a field on an intermediate struct -
there is exactly one place in this codebase a token's source position
is attached to an otherwise-finished value, and sjson's byte-level Set
avoids a throwaway struct purely for that one append.
*/
func EncodeTokens(tokens []token.Token) ([]byte, error) {
	entries := make([]json.RawMessage, len(tokens))
	for i, t := range tokens {
		base, err := json.Marshal(map[string]string{"type": t.Type.String(), "lexeme": t.Lexeme})
		if err != nil {
			return nil, err
		}
		withLoc, err := sjson.SetBytes(base, "location", wireLocation{
			Line: t.Loc.Line, Start: t.Loc.StartCol, End: t.Loc.EndCol,
		})
		if err != nil {
			return nil, err
		}
		entries[i] = withLoc
	}
	return json.Marshal(entries)
}

var tokenKindsByName = buildTokenKindsByName()

func buildTokenKindsByName() map[string]token.Kind {
	out := map[string]token.Kind{}
	for _, k := range []token.Kind{
		token.EOF, token.EQUAL, token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE,
		token.RIGHT_BRACE, token.LEFT_BRACKET, token.RIGHT_BRACKET, token.BANG, token.COLON,
		token.SEMICOLON, token.COMMA, token.VSLASH, token.AT, token.DOLLAR, token.AMP,
		token.DOT, token.SPREAD, token.IDENTIFIER, token.STRING, token.NUMBER,
	} {
		out[k.String()] = k
	}
	return out
}

/*
DecodeTokens parses a token JSON array back into a token stream, bound
to the given SourceFile for any further processing.
*/
func DecodeTokens(data []byte, src *token.SourceFile) ([]token.Token, error) {
	var wire []wireToken
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	out := make([]token.Token, len(wire))
	for i, w := range wire {
		kind, ok := tokenKindsByName[w.Type]
		if !ok {
			kind = token.IDENTIFIER
		}
		out[i] = token.Token{
			Type: kind, Lexeme: w.Lexeme,
			Loc: token.Location{Source: src, Line: w.Location.Line, StartCol: w.Location.Start, EndCol: w.Location.End},
		}
	}
	return out, nil
}
