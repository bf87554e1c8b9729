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
	"strconv"
	"strings"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/token"
)

/*
parseTypeRef parses TypeRef := NamedType | '[' TypeRef ']', each
optionally followed by '!' (spec.md §4.3 "Type references").
*/
func (p *parser) parseTypeRef() (ast.TypeRef, error) {
	start := p.peek()

	if p.peek().Type == token.LEFT_BRACKET {
		p.advance()
		inner, err := p.parseTypeRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		nullable := true
		if p.peek().Type == token.BANG {
			p.advance()
			nullable = false
		}
		return ast.NewListTypeRef(p.span(start, p.lastConsumed()), inner, nullable), nil
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	nullable := true
	if p.peek().Type == token.BANG {
		p.advance()
		nullable = false
	}
	return ast.NewNamedTypeRef(p.span(start, p.lastConsumed()), name, nullable), nil
}

/*
parseValue parses a single literal value: Int, Float, String, Bool
(true/false), Null, EnumValue (a bare identifier that is not true/false/
null), a variable reference, a list literal, or an object literal
(spec.md §4.3 "Literals").
*/
func (p *parser) parseValue() (ast.Literal, error) {
	start := p.peek()

	switch start.Type {
	case token.DOLLAR:
		p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return ast.VariableRefLiteral{Loc: p.span(start, p.lastConsumed()), Name: name.Name}, nil

	case token.NUMBER:
		p.advance()
		loc := p.span(start, start)
		if strings.ContainsAny(start.Lexeme, ".eE") {
			f, err := strconv.ParseFloat(start.Lexeme, 64)
			if err != nil {
				return nil, p.errAt(WrongTokenType, start, "invalid float literal")
			}
			return ast.FloatLiteral{Loc: loc, Value: f}, nil
		}
		i, err := strconv.ParseInt(start.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errAt(WrongTokenType, start, "invalid int literal")
		}
		return ast.IntLiteral{Loc: loc, Value: i}, nil

	case token.STRING:
		p.advance()
		return ast.StringLiteral{Loc: p.span(start, start), Value: start.Lexeme}, nil

	case token.LEFT_BRACKET:
		p.advance()
		var values []ast.Literal
		for p.peek().Type != token.RIGHT_BRACKET {
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		p.advance() // ']'
		return ast.ListLiteral{Loc: p.span(start, p.lastConsumed()), Values: values}, nil

	case token.LEFT_BRACE:
		p.advance()
		fields := map[string]ast.Literal{}
		var order []string
		for p.peek().Type != token.RIGHT_BRACE {
			key, err := p.parseName()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.COLON); err != nil {
				return nil, err
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			fields[key.Name] = v
			order = append(order, key.Name)
		}
		p.advance() // '}'
		return ast.ObjectLiteral{Loc: p.span(start, p.lastConsumed()), Fields: fields, Order: order}, nil

	case token.IDENTIFIER:
		p.advance()
		loc := p.span(start, start)
		switch start.Lexeme {
		case "true":
			return ast.BoolLiteral{Loc: loc, Value: true}, nil
		case "false":
			return ast.BoolLiteral{Loc: loc, Value: false}, nil
		case "null":
			return ast.NullLiteral{Loc: loc}, nil
		}
		return ast.EnumValueLiteral{Loc: loc, Value: start.Lexeme}, nil
	}

	return nil, p.errAt(UnexpectedIdentifier, start, "expected a value")
}

/*
parseDirectives parses directive*: zero or more `@Name(args)?` forms,
parsed wherever the grammar permits (spec.md §4.3 "Directives").
*/
func (p *parser) parseDirectives() ([]ast.DirectiveApplication, error) {
	var directives []ast.DirectiveApplication
	for p.peek().Type == token.AT {
		start := p.advance()
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		args, order, err := p.parseArgumentValues()
		if err != nil {
			return nil, err
		}
		directives = append(directives, ast.DirectiveApplication{
			Loc:       p.span(start, p.lastConsumed()),
			Name:      name,
			Arguments: args,
			ArgOrder:  order,
		})
	}
	return directives, nil
}

/*
parseArgumentValues parses an optional parenthesized, comma-separated
list of `name: value` pairs. Returns nil maps if '(' is not present;
empty '()' is rejected as a syntax error (spec.md §4.3 "Field
definitions" tie-break, generalized to argument lists).
*/
func (p *parser) parseArgumentValues() (map[string]ast.Literal, []string, error) {
	if p.peek().Type != token.LEFT_PAREN {
		return nil, nil, nil
	}
	p.advance() // '('
	if p.peek().Type == token.RIGHT_PAREN {
		return nil, nil, p.errAt(UnexpectedIdentifier, p.peek(), "empty argument list")
	}

	args := map[string]ast.Literal{}
	var order []string
	for p.peek().Type != token.RIGHT_PAREN {
		name, err := p.parseName()
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, nil, err
		}
		args[name.Name] = v
		order = append(order, name.Name)
	}
	if _, err := p.consume(token.RIGHT_PAREN); err != nil {
		return nil, nil, err
	}
	return args, order, nil
}

/*
parseInputValueDefinitions parses an optional parenthesized,
comma-separated list of `name: Type = default?` argument definitions.
Empty '()' is a syntax error (spec.md §4.3).
*/
func (p *parser) parseInputValueDefinitions() (map[string]ast.InputValueDefinition, []string, error) {
	if p.peek().Type != token.LEFT_PAREN {
		return nil, nil, nil
	}
	p.advance()
	if p.peek().Type == token.RIGHT_PAREN {
		return nil, nil, p.errAt(UnexpectedIdentifier, p.peek(), "empty argument list")
	}

	defs := map[string]ast.InputValueDefinition{}
	var order []string
	for p.peek().Type != token.RIGHT_PAREN {
		def, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, nil, err
		}
		defs[def.Name.Name] = def
		order = append(order, def.Name.Name)
	}
	if _, err := p.consume(token.RIGHT_PAREN); err != nil {
		return nil, nil, err
	}
	return defs, order, nil
}

/*
parseInputValueDefinition parses one `name: Type = default?` definition.
*/
func (p *parser) parseInputValueDefinition() (ast.InputValueDefinition, error) {
	start := p.peek()
	desc := p.parseOptionalDescription()
	name, err := p.parseName()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}
	if _, err := p.consume(token.COLON); err != nil {
		return ast.InputValueDefinition{}, err
	}
	typ, err := p.parseTypeRef()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}

	var def ast.Literal
	if p.peek().Type == token.EQUAL {
		p.advance()
		def, err = p.parseValue()
		if err != nil {
			return ast.InputValueDefinition{}, err
		}
	}

	directives, err := p.parseDirectives()
	if err != nil {
		return ast.InputValueDefinition{}, err
	}

	return ast.InputValueDefinition{
		Loc:         p.span(start, p.lastConsumed()),
		Description: desc,
		Name:        name,
		Type:        typ,
		Default:     def,
		Directives:  directives,
	}, nil
}

/*
parseOptionalDescription consumes a leading STRING token as a
description if one is present immediately before a definition (spec.md
§4.3 "Descriptions"). The surrounding quotes (or triple quotes) are
stripped; escape sequences inside are kept as written.
*/
func (p *parser) parseOptionalDescription() string {
	if p.peek().Type == token.STRING {
		tok := p.advance()
		if strings.HasPrefix(tok.Lexeme, `"""`) {
			return tok.Lexeme[3 : len(tok.Lexeme)-3]
		}
		return tok.Lexeme[1 : len(tok.Lexeme)-1]
	}
	return ""
}
