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
ParseServer consumes a token slice in server mode and produces the
file-level server AST: type, input, interface, union, enum, scalar,
directive, schema and extend declarations (spec.md §4.3).
*/
func ParseServer(tokens []token.Token, source *token.SourceFile) (*ast.FileNodes, error) {
	p := newParser(tokens, source, serverKeywords)

	out := &ast.FileNodes{Source: source}
	sawSchema := false

	for !p.atEOF() {
		desc := p.parseOptionalDescription()

		tok := p.peek()
		if tok.Type != token.IDENTIFIER {
			return nil, p.errAt(UnexpectedIdentifier, tok, "expected a top-level definition")
		}

		switch tok.Lexeme {
		case "type":
			def, err := p.parseObjectType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "interface":
			def, err := p.parseInterfaceType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "input":
			def, err := p.parseInputType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "union":
			def, err := p.parseUnionType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "enum":
			def, err := p.parseEnumType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "scalar":
			def, err := p.parseScalarType(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "directive":
			def, err := p.parseDirectiveDefinition(desc)
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "schema":
			if sawSchema {
				return nil, p.errAt(DuplicateDefinition, tok, "duplicate schema definition")
			}
			sawSchema = true
			def, err := p.parseSchemaDefinition()
			if err != nil {
				return nil, err
			}
			out.Definitions = append(out.Definitions, def)

		case "extend":
			ext, err := p.parseExtension()
			if err != nil {
				return nil, err
			}
			out.Extensions = append(out.Extensions, *ext)

		default:
			return nil, p.errAt(UnexpectedIdentifier, tok, "unknown top-level keyword \""+tok.Lexeme+"\"")
		}
	}

	return out, nil
}

func (p *parser) parseObjectType(desc string) (ast.ObjectType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("type"); err != nil {
		return ast.ObjectType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.ObjectType{}, err
	}
	implements, err := p.parseImplements()
	if err != nil {
		return ast.ObjectType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.ObjectType{}, err
	}
	fields, order, err := p.parseFieldDefs()
	if err != nil {
		return ast.ObjectType{}, err
	}
	return ast.ObjectType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Implements: implements, Fields: fields, FieldOrder: order, Directives: directives,
	}, nil
}

func (p *parser) parseInterfaceType(desc string) (ast.InterfaceType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("interface"); err != nil {
		return ast.InterfaceType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.InterfaceType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.InterfaceType{}, err
	}
	fields, order, err := p.parseFieldDefs()
	if err != nil {
		return ast.InterfaceType{}, err
	}
	return ast.InterfaceType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Fields: fields, FieldOrder: order, Directives: directives,
	}, nil
}

func (p *parser) parseInputType(desc string) (ast.InputType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("input"); err != nil {
		return ast.InputType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.InputType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.InputType{}, err
	}
	fields := map[string]ast.InputValueDefinition{}
	var order []string
	if p.peek().Type == token.LEFT_BRACE {
		p.advance()
		for p.peek().Type != token.RIGHT_BRACE {
			def, err := p.parseInputValueDefinition()
			if err != nil {
				return ast.InputType{}, err
			}
			fields[def.Name.Name] = def
			order = append(order, def.Name.Name)
		}
		p.advance()
	}
	return ast.InputType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Fields: fields, FieldOrder: order, Directives: directives,
	}, nil
}

func (p *parser) parseUnionType(desc string) (ast.UnionType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("union"); err != nil {
		return ast.UnionType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.UnionType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.UnionType{}, err
	}
	var members []ast.NameNode
	if p.peek().Type == token.EQUAL {
		p.advance()
		if p.peek().Type == token.VSLASH {
			p.advance() // leading '|' permitted
		}
		for {
			m, err := p.parseName()
			if err != nil {
				return ast.UnionType{}, err
			}
			members = append(members, m)
			if p.peek().Type != token.VSLASH {
				break
			}
			p.advance()
		}
	}
	return ast.UnionType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Members: members, Directives: directives,
	}, nil
}

func (p *parser) parseEnumType(desc string) (ast.EnumType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("enum"); err != nil {
		return ast.EnumType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.EnumType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.EnumType{}, err
	}
	var values []ast.EnumValueDef
	if p.peek().Type == token.LEFT_BRACE {
		p.advance()
		for p.peek().Type != token.RIGHT_BRACE {
			vstart := p.peek()
			vdesc := p.parseOptionalDescription()
			vname, err := p.parseName()
			if err != nil {
				return ast.EnumType{}, err
			}
			vdirectives, err := p.parseDirectives()
			if err != nil {
				return ast.EnumType{}, err
			}
			values = append(values, ast.EnumValueDef{
				Loc: p.span(vstart, p.lastConsumed()), Description: vdesc,
				Name: vname, Directives: vdirectives,
			})
		}
		p.advance()
	}
	return ast.EnumType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Values: values, Directives: directives,
	}, nil
}

func (p *parser) parseScalarType(desc string) (ast.ScalarType, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("scalar"); err != nil {
		return ast.ScalarType{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.ScalarType{}, err
	}
	directives, err := p.parseDirectives()
	if err != nil {
		return ast.ScalarType{}, err
	}
	return ast.ScalarType{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name, Directives: directives,
	}, nil
}

func (p *parser) parseDirectiveDefinition(desc string) (ast.DirectiveDefinition, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("directive"); err != nil {
		return ast.DirectiveDefinition{}, err
	}
	if _, err := p.consume(token.AT); err != nil {
		return ast.DirectiveDefinition{}, err
	}
	name, err := p.parseDefinitionName()
	if err != nil {
		return ast.DirectiveDefinition{}, err
	}
	args, argOrder, err := p.parseInputValueDefinitions()
	if err != nil {
		return ast.DirectiveDefinition{}, err
	}
	repeatable := false
	if p.atLexeme("repeatable") {
		p.advance()
		repeatable = true
	}
	if _, err := p.consumeLexeme("on"); err != nil {
		return ast.DirectiveDefinition{}, err
	}
	if p.peek().Type == token.VSLASH {
		p.advance()
	}
	var locations []ast.DirectiveLocation
	for {
		loc, err := p.parseName()
		if err != nil {
			return ast.DirectiveDefinition{}, err
		}
		locations = append(locations, ast.DirectiveLocation(loc.Name))
		if p.peek().Type != token.VSLASH {
			break
		}
		p.advance()
	}
	return ast.DirectiveDefinition{
		Loc: p.span(start, p.lastConsumed()), Description: desc, Name: name,
		Arguments: args, ArgOrder: argOrder, Locations: locations, Repeatable: repeatable,
	}, nil
}

func (p *parser) parseSchemaDefinition() (ast.SchemaDefinition, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("schema"); err != nil {
		return ast.SchemaDefinition{}, err
	}
	roots, err := p.parseRootOperationTypes()
	if err != nil {
		return ast.SchemaDefinition{}, err
	}
	return ast.SchemaDefinition{Loc: p.span(start, p.lastConsumed()), RootTypes: roots}, nil
}

func (p *parser) parseRootOperationTypes() (ast.RootOperationTypes, error) {
	var roots ast.RootOperationTypes
	if _, err := p.consume(token.LEFT_BRACE); err != nil {
		return roots, err
	}
	for p.peek().Type != token.RIGHT_BRACE {
		opTok := p.peek()
		if opTok.Type != token.IDENTIFIER {
			return roots, p.errAt(UnexpectedIdentifier, opTok, "expected query/mutation/subscription")
		}
		p.advance()
		if _, err := p.consume(token.COLON); err != nil {
			return roots, err
		}
		name, err := p.parseName()
		if err != nil {
			return roots, err
		}
		switch opTok.Lexeme {
		case "query":
			roots.Query = &name
		case "mutation":
			roots.Mutation = &name
		case "subscription":
			roots.Subscription = &name
		default:
			return roots, p.errAt(UnexpectedIdentifier, opTok, "unknown root operation type \""+opTok.Lexeme+"\"")
		}
	}
	p.advance()
	return roots, nil
}

func (p *parser) parseImplements() ([]ast.NameNode, error) {
	if !p.atLexeme("implements") {
		return nil, nil
	}
	p.advance()
	if p.peek().Type == token.AMP {
		p.advance()
	}
	var names []ast.NameNode
	for {
		n, err := p.parseName()
		if err != nil {
			return nil, err
		}
		names = append(names, n)
		if p.peek().Type != token.AMP {
			break
		}
		p.advance()
	}
	return names, nil
}

/*
parseFieldDefs parses an optional `{ FieldDef+ }` block. A missing block
yields an empty field map (used for bodyless type/interface declarations,
e.g. ahead of an extend).
*/
func (p *parser) parseFieldDefs() (map[string]ast.FieldDef, []string, error) {
	fields := map[string]ast.FieldDef{}
	var order []string
	if p.peek().Type != token.LEFT_BRACE {
		return fields, order, nil
	}
	p.advance()
	for p.peek().Type != token.RIGHT_BRACE {
		fstart := p.peek()
		fdesc := p.parseOptionalDescription()
		fname, err := p.parseName()
		if err != nil {
			return nil, nil, err
		}
		args, argOrder, err := p.parseInputValueDefinitions()
		if err != nil {
			return nil, nil, err
		}
		if _, err := p.consume(token.COLON); err != nil {
			return nil, nil, err
		}
		typ, err := p.parseTypeRef()
		if err != nil {
			return nil, nil, err
		}
		directives, err := p.parseDirectives()
		if err != nil {
			return nil, nil, err
		}
		fields[fname.Name] = ast.FieldDef{
			Loc: p.span(fstart, p.lastConsumed()), Description: fdesc, Name: fname,
			Type: typ, Arguments: args, ArgOrder: argOrder, Directives: directives,
		}
		order = append(order, fname.Name)
	}
	p.advance()
	return fields, order, nil
}

/*
parseExtension parses `extend <kind> <name> ...`: the same body shape as
a definition, but at least one body element is required (spec.md §4.3
"Extend").
*/
func (p *parser) parseExtension() (*ast.Extension, error) {
	start := p.peek()
	if _, err := p.consumeLexeme("extend"); err != nil {
		return nil, err
	}
	kindTok := p.peek()
	if kindTok.Type != token.IDENTIFIER {
		return nil, p.errAt(UnexpectedIdentifier, kindTok, "expected a definition kind after extend")
	}

	ext := &ast.Extension{}

	switch kindTok.Lexeme {
	case "type":
		def, err := p.parseObjectType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "OBJECT", def.Name.Name
		ext.Fields, ext.FieldOrder, ext.Implements, ext.Directives = def.Fields, def.FieldOrder, def.Implements, def.Directives

	case "interface":
		def, err := p.parseInterfaceType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "INTERFACE", def.Name.Name
		ext.Fields, ext.FieldOrder, ext.Directives = def.Fields, def.FieldOrder, def.Directives

	case "input":
		def, err := p.parseInputType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "INPUT_OBJECT", def.Name.Name
		ext.InputFields, ext.InputFieldOrder, ext.Directives = def.Fields, def.FieldOrder, def.Directives

	case "union":
		def, err := p.parseUnionType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "UNION", def.Name.Name
		ext.Members, ext.Directives = def.Members, def.Directives

	case "enum":
		def, err := p.parseEnumType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "ENUM", def.Name.Name
		ext.Values, ext.Directives = def.Values, def.Directives

	case "scalar":
		def, err := p.parseScalarType("")
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "SCALAR", def.Name.Name
		ext.Directives = def.Directives

	case "schema":
		p.advance()
		roots, err := p.parseRootOperationTypes()
		if err != nil {
			return nil, err
		}
		ext.TargetKind, ext.TargetName = "SCHEMA", "schema"
		ext.RootTypes = roots

	default:
		return nil, p.errAt(UnexpectedIdentifier, kindTok, "unknown extend kind \""+kindTok.Lexeme+"\"")
	}

	if len(ext.Fields) == 0 && len(ext.InputFields) == 0 && len(ext.Implements) == 0 && len(ext.Members) == 0 &&
		len(ext.Values) == 0 && len(ext.Directives) == 0 && ext.RootTypes == (ast.RootOperationTypes{}) {
		return nil, p.errAt(UnexpectedEOF, p.peek(), "extend "+kindTok.Lexeme+" requires at least one body element")
	}

	ext.Loc = p.span(start, p.lastConsumed())
	return ext, nil
}
