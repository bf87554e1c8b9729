/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package parser

import (
	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/token"
)

/*
ParseClient consumes a token slice in client mode and produces the
file-level client AST: operations and fragment definitions (spec.md
§4.3). A bare top-level selection set with no leading `query` keyword is
accepted as the query shorthand, exactly one per file, mirroring the
teacher's own ErrMultipleShorthand handling.
*/
func ParseClient(tokens []token.Token, source *token.SourceFile) ([]ast.ClientDefinition, error) {
	p := newParser(tokens, source, clientKeywords)

	var defs []ast.ClientDefinition
	sawShorthand := false

	for !p.atEOF() {
		tok := p.peek()

		switch {
		case tok.Type == token.LEFT_BRACE:
			if sawShorthand || len(defs) > 0 {
				return nil, p.errAt(DuplicateDefinition, tok, "query shorthand only allowed for one query operation")
			}
			sawShorthand = true
			start := tok
			sel, err := p.parseSelectionSet()
			if err != nil {
				return nil, err
			}
			defs = append(defs, ast.OperationDefinition{
				Loc: p.span(start, p.lastConsumed()), OpType: ast.Query, SelectionSet: sel,
			})

		case tok.Lexeme == "query" || tok.Lexeme == "mutation" || tok.Lexeme == "subscription":
			def, err := p.parseOperationDefinition()
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)

		case tok.Lexeme == "fragment":
			def, err := p.parseFragmentDefinition()
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)

		default:
			return nil, p.errAt(UnexpectedIdentifier, tok, "expected an operation or fragment definition")
		}
	}

	return defs, nil
}

func (p *parser) parseOperationDefinition() (ast.OperationDefinition, error) {
	start := p.peek()
	opTok := p.advance()

	var opType ast.OperationType
	switch opTok.Lexeme {
	case "query":
		opType = ast.Query
	case "mutation":
		opType = ast.Mutation
	case "subscription":
		opType = ast.Subscription
	}

	name := ""
	if p.peek().Type == token.IDENTIFIER {
		n, err := p.parseName()
		if err != nil {
			return ast.OperationDefinition{}, err
		}
		name = n.Name
	}

	variables, err := p.parseVariableDefinitions()
	if err != nil {
		return ast.OperationDefinition{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.OperationDefinition{}, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return ast.OperationDefinition{}, err
	}

	return ast.OperationDefinition{
		Loc: p.span(start, p.lastConsumed()), OpType: opType, Name: name,
		Variables: variables, Directives: directives, SelectionSet: sel,
	}, nil
}

func (p *parser) parseFragmentDefinition() (ast.FragmentDefinition, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("fragment"); err != nil {
		return ast.FragmentDefinition{}, err
	}
	name, err := p.parseName()
	if err != nil {
		return ast.FragmentDefinition{}, err
	}
	if _, err := p.consumeLexeme("on"); err != nil {
		return ast.FragmentDefinition{}, err
	}
	typeCond, err := p.parseName()
	if err != nil {
		return ast.FragmentDefinition{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.FragmentDefinition{}, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return ast.FragmentDefinition{}, err
	}
	return ast.FragmentDefinition{
		Loc: p.span(start, p.lastConsumed()), Name: name.Name,
		TypeCondition: typeCond, Directives: directives, SelectionSet: sel,
	}, nil
}

/*
parseVariableDefinitions parses an optional `($name: Type = default?, ...)`
list declared on an operation.
*/
func (p *parser) parseVariableDefinitions() ([]ast.InputValueDefinition, error) {
	if p.peek().Type != token.LEFT_PAREN {
		return nil, nil
	}
	p.advance()
	var defs []ast.InputValueDefinition
	for p.peek().Type != token.RIGHT_PAREN {
		start := p.peek()
		if _, err := p.consume(token.DOLLAR); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		var def ast.Literal
		if p.peek().Type == token.EQUAL {
			p.advance()
			def, err = p.parseValue()
			if err != nil {
				return nil, err
			}
		}
		defs = append(defs, ast.InputValueDefinition{
			Loc: p.span(start, p.lastConsumed()), Name: name, Type: typ, Default: def,
		})
	}
	p.advance()
	return defs, nil
}

/*
parseSelectionSet parses `'{' Selection+ '}'` (spec.md §4.3 "Selection
sets").
*/
func (p *parser) parseSelectionSet() ([]ast.Selection, error) {
	if _, err := p.consume(token.LEFT_BRACE); err != nil {
		return nil, err
	}
	var sels []ast.Selection
	for p.peek().Type != token.RIGHT_BRACE {
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	p.advance()
	if len(sels) == 0 {
		return nil, p.errAt(UnexpectedEOF, p.lastConsumed(), "selection set must not be empty")
	}
	return sels, nil
}

/*
parseSelection dispatches on lookahead: `...` introduces a spread
(followed by `on Name` for an inline fragment with a condition, a bare
Name for a named spread, or `{` for an unconditioned inline fragment).
Otherwise a field selection.
*/
func (p *parser) parseSelection() (ast.Selection, error) {
	start := p.peek()

	if start.Type == token.SPREAD {
		p.advance()

		if p.atLexeme("on") {
			p.advance()
			cond, err := p.parseName()
			if err != nil {
				return nil, err
			}
			directives, err := p.parseDirectives()
			if err != nil {
				return nil, err
			}
			sel, err := p.parseSelectionSet()
			if err != nil {
				return nil, err
			}
			return ast.InlineFragment{
				Loc: p.span(start, p.lastConsumed()), TypeCondition: &cond,
				Directives: directives, SelectionSet: sel,
			}, nil
		}

		if p.peek().Type == token.IDENTIFIER {
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			directives, err := p.parseDirectives()
			if err != nil {
				return nil, err
			}
			return ast.FragmentSpread{
				Loc: p.span(start, p.lastConsumed()), FragmentName: name.Name, Directives: directives,
			}, nil
		}

		directives, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		sel, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return ast.InlineFragment{
			Loc: p.span(start, p.lastConsumed()), Directives: directives, SelectionSet: sel,
		}, nil
	}

	return p.parseFieldSelection()
}

/*
parseFieldSelection parses `(alias:)? name (args)? directive* selectionSet?`.
*/
func (p *parser) parseFieldSelection() (ast.FieldSelection, error) {
	start := p.peek()

	first, err := p.parseName()
	if err != nil {
		return ast.FieldSelection{}, err
	}

	alias := ""
	name := first
	if p.peek().Type == token.COLON {
		p.advance()
		alias = first.Name
		name, err = p.parseName()
		if err != nil {
			return ast.FieldSelection{}, err
		}
	}

	args, argOrder, err := p.parseArgumentValues()
	if err != nil {
		return ast.FieldSelection{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.FieldSelection{}, err
	}

	var sel []ast.Selection
	if p.peek().Type == token.LEFT_BRACE {
		sel, err = p.parseSelectionSet()
		if err != nil {
			return ast.FieldSelection{}, err
		}
	}

	return ast.FieldSelection{
		Loc: p.span(start, p.lastConsumed()), Alias: alias, Name: name,
		Arguments: args, ArgOrder: argOrder, Directives: directives, SelectionSet: sel,
	}, nil
}
