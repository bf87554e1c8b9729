/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package gqljson

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/token"
)

/*
introspectionSource tags every synthesized node built from one
introspection response, so resolver errors still print a recognizable
provenance even though there is no real source text behind them.
*/
var introspectionSource = &token.SourceFile{Filepath: "<introspection>"}

func synthName(s string) ast.NameNode {
	return ast.NameNode{Name: s}
}

/*
DecodeIntrospection turns a standard GraphQL introspection response
(`{data: {__schema: {...}}}`) into the same server-mode AST the parser
produces, so it can be handed to schema.Resolve unmodified - the fixed
introspection query this reads is defined in internal/introspection.
*/
func DecodeIntrospection(data []byte) (*ast.FileNodes, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("introspection response is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	s := root.Get("data.__schema")
	if !s.Exists() {
		return nil, errors.New("introspection response has no data.__schema")
	}

	file := &ast.FileNodes{Source: introspectionSource}

	var rootTypes ast.RootOperationTypes
	if name := s.Get("queryType.name").String(); name != "" {
		n := synthName(name)
		rootTypes.Query = &n
	}
	if name := s.Get("mutationType.name").String(); name != "" {
		n := synthName(name)
		rootTypes.Mutation = &n
	}
	if name := s.Get("subscriptionType.name").String(); name != "" {
		n := synthName(name)
		rootTypes.Subscription = &n
	}
	file.Definitions = append(file.Definitions, ast.SchemaDefinition{RootTypes: rootTypes})

	for _, t := range s.Get("types").Array() {
		def := decodeIntrospectionType(t)
		if def != nil {
			file.Definitions = append(file.Definitions, def)
		}
	}

	for _, d := range s.Get("directives").Array() {
		file.Definitions = append(file.Definitions, decodeIntrospectionDirective(d))
	}

	return file, nil
}

func decodeIntrospectionType(t gjson.Result) ast.ServerDefinition {
	name := t.Get("name").String()
	description := t.Get("description").String()

	switch t.Get("kind").String() {
	case "OBJECT":
		var implements []ast.NameNode
		for _, i := range t.Get("interfaces").Array() {
			implements = append(implements, synthName(i.Get("name").String()))
		}
		fields, order := decodeIntrospectionFields(t.Get("fields"))
		return ast.ObjectType{
			Name: synthName(name), Description: description, Implements: implements,
			Fields: fields, FieldOrder: order,
		}

	case "INTERFACE":
		fields, order := decodeIntrospectionFields(t.Get("fields"))
		return ast.InterfaceType{Name: synthName(name), Description: description, Fields: fields, FieldOrder: order}

	case "INPUT_OBJECT":
		fields := map[string]ast.InputValueDefinition{}
		var order []string
		for _, f := range t.Get("inputFields").Array() {
			fname := f.Get("name").String()
			order = append(order, fname)
			fields[fname] = decodeIntrospectionInputValue(f)
		}
		return ast.InputType{Name: synthName(name), Description: description, Fields: fields, FieldOrder: order}

	case "UNION":
		var members []ast.NameNode
		for _, m := range t.Get("possibleTypes").Array() {
			members = append(members, synthName(m.Get("name").String()))
		}
		return ast.UnionType{Name: synthName(name), Description: description, Members: members}

	case "ENUM":
		var values []ast.EnumValueDef
		for _, v := range t.Get("enumValues").Array() {
			values = append(values, ast.EnumValueDef{
				Name: synthName(v.Get("name").String()), Description: v.Get("description").String(),
			})
		}
		return ast.EnumType{Name: synthName(name), Description: description, Values: values}

	case "SCALAR":
		// Built-in scalars are already seeded by the resolver; re-declaring
		// them would trip DuplicateType, so only custom scalars pass through.
		if isBuiltinScalarName(name) {
			return nil
		}
		return ast.ScalarType{Name: synthName(name), Description: description}
	}
	return nil
}

func isBuiltinScalarName(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}

func decodeIntrospectionFields(fs gjson.Result) (map[string]ast.FieldDef, []string) {
	fields := map[string]ast.FieldDef{}
	var order []string
	for _, f := range fs.Array() {
		fname := f.Get("name").String()
		order = append(order, fname)
		args := map[string]ast.InputValueDefinition{}
		var argOrder []string
		for _, a := range f.Get("args").Array() {
			aname := a.Get("name").String()
			argOrder = append(argOrder, aname)
			args[aname] = decodeIntrospectionInputValue(a)
		}
		fields[fname] = ast.FieldDef{
			Name: synthName(fname), Description: f.Get("description").String(),
			Type: decodeIntrospectionTypeRef(f.Get("type")), Arguments: args, ArgOrder: argOrder,
		}
	}
	return fields, order
}

func decodeIntrospectionInputValue(v gjson.Result) ast.InputValueDefinition {
	return ast.InputValueDefinition{
		Name: synthName(v.Get("name").String()), Type: decodeIntrospectionTypeRef(v.Get("type")),
	}
}

/*
decodeIntrospectionTypeRef unwraps introspection's NON_NULL/LIST wrapper
chain (`{kind, name, ofType}`) into a TypeRef tree. Both forms are
nullable by default, but introspection marks non-null with a separate
NON_NULL wrapper where the AST carries a flag on the node itself, so
NON_NULL is absorbed into the wrapped node's nullability rather than
becoming its own TypeRef layer.
*/
func decodeIntrospectionTypeRef(t gjson.Result) ast.TypeRef {
	if t.Get("kind").String() == "NON_NULL" {
		return withNonNull(decodeIntrospectionTypeRefNullable(t.Get("ofType")))
	}
	return decodeIntrospectionTypeRefNullable(t)
}

func decodeIntrospectionTypeRefNullable(t gjson.Result) ast.TypeRef {
	switch t.Get("kind").String() {
	case "LIST":
		return ast.NewListTypeRef(ast.NodeLocation{}, decodeIntrospectionTypeRef(t.Get("ofType")), true)
	case "NON_NULL":
		return withNonNull(decodeIntrospectionTypeRefNullable(t.Get("ofType")))
	default:
		return ast.NewNamedTypeRef(ast.NodeLocation{}, synthName(t.Get("name").String()), true)
	}
}

func withNonNull(t ast.TypeRef) ast.TypeRef {
	switch v := t.(type) {
	case ast.NamedTypeRef:
		return ast.NewNamedTypeRef(v.Loc, v.Name, false)
	case ast.ListTypeRef:
		return ast.NewListTypeRef(v.Loc, v.Inner, false)
	}
	return t
}

func decodeIntrospectionDirective(d gjson.Result) ast.DirectiveDefinition {
	args := map[string]ast.InputValueDefinition{}
	var argOrder []string
	for _, a := range d.Get("args").Array() {
		aname := a.Get("name").String()
		argOrder = append(argOrder, aname)
		args[aname] = decodeIntrospectionInputValue(a)
	}
	var locs []ast.DirectiveLocation
	for _, l := range d.Get("locations").Array() {
		locs = append(locs, ast.DirectiveLocation(l.String()))
	}
	return ast.DirectiveDefinition{
		Name: synthName(d.Get("name").String()), Description: d.Get("description").String(),
		Arguments: args, ArgOrder: argOrder, Locations: locs, Repeatable: d.Get("isRepeatable").Bool(),
	}
}
