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
	"encoding/json"

	"github.com/krotik/gqltool/internal/ast"
)

/*
EncodeServerAST renders a parsed server-mode file as the `_type`-tagged
JSON form `internal parser parse --mode server` writes to stdout.
*/
func EncodeServerAST(file *ast.FileNodes) ([]byte, error) {
	defs := make([]any, len(file.Definitions))
	for i, d := range file.Definitions {
		defs[i] = encodeServerDefinition(d)
	}
	exts := make([]any, len(file.Extensions))
	for i, e := range file.Extensions {
		exts[i] = encodeExtension(e)
	}
	return json.Marshal(map[string]any{"definitions": defs, "extensions": exts})
}

/*
EncodeClientAST renders a parsed client-mode file the same way, for
`internal parser parse --mode client`.
*/
func EncodeClientAST(defs []ast.ClientDefinition) ([]byte, error) {
	out := make([]any, len(defs))
	for i, d := range defs {
		out[i] = encodeClientDefinition(d)
	}
	return json.Marshal(out)
}

func locJSON(loc ast.NodeLocation) map[string]any {
	return map[string]any{
		"line":  loc.StartToken.Loc.Line,
		"start": loc.StartToken.Loc.StartCol,
		"end":   loc.EndToken.Loc.EndCol,
	}
}

func encodeName(n ast.NameNode) map[string]any {
	return map[string]any{"_type": "Name", "value": n.Name, "location": locJSON(n.Loc)}
}

func encodeLiteral(l ast.Literal) map[string]any {
	base := map[string]any{"location": locJSON(l.Location())}
	switch v := l.(type) {
	case ast.IntLiteral:
		base["_type"], base["value"] = "IntValue", v.Value
	case ast.FloatLiteral:
		base["_type"], base["value"] = "FloatValue", v.Value
	case ast.StringLiteral:
		base["_type"], base["value"] = "StringValue", v.Value
	case ast.BoolLiteral:
		base["_type"], base["value"] = "BooleanValue", v.Value
	case ast.EnumValueLiteral:
		base["_type"], base["value"] = "EnumValue", v.Value
	case ast.NullLiteral:
		base["_type"] = "NullValue"
	case ast.VariableRefLiteral:
		base["_type"], base["name"] = "Variable", v.Name
	case ast.ListLiteral:
		values := make([]any, len(v.Values))
		for i, item := range v.Values {
			values[i] = encodeLiteral(item)
		}
		base["_type"], base["values"] = "ListValue", values
	case ast.ObjectLiteral:
		fields := make(map[string]any, len(v.Fields))
		for name, val := range v.Fields {
			fields[name] = encodeLiteral(val)
		}
		base["_type"], base["fields"], base["order"] = "ObjectValue", fields, v.Order
	}
	return base
}

func encodeTypeRef(t ast.TypeRef) map[string]any {
	base := map[string]any{"location": locJSON(t.Location()), "nullable": t.Nullable()}
	switch v := t.(type) {
	case ast.NamedTypeRef:
		base["_type"], base["name"] = "NamedType", v.Name.Name
	case ast.ListTypeRef:
		base["_type"], base["inner"] = "ListType", encodeTypeRef(v.Inner)
	}
	return base
}

func encodeInputValueDefinition(d ast.InputValueDefinition) map[string]any {
	out := map[string]any{
		"_type": "InputValueDefinition", "name": d.Name.Name,
		"type": encodeTypeRef(d.Type), "location": locJSON(d.Loc),
	}
	if d.Default != nil {
		out["default"] = encodeLiteral(d.Default)
	}
	return out
}

func encodeDirectiveApplication(d ast.DirectiveApplication) map[string]any {
	args := make(map[string]any, len(d.Arguments))
	for name, val := range d.Arguments {
		args[name] = encodeLiteral(val)
	}
	return map[string]any{
		"_type": "Directive", "name": d.Name.Name, "arguments": args,
		"argumentOrder": d.ArgOrder, "location": locJSON(d.Loc),
	}
}

func encodeDirectives(ds []ast.DirectiveApplication) []any {
	out := make([]any, len(ds))
	for i, d := range ds {
		out[i] = encodeDirectiveApplication(d)
	}
	return out
}

func encodeFieldDef(f ast.FieldDef) map[string]any {
	args := make(map[string]any, len(f.Arguments))
	for name, a := range f.Arguments {
		args[name] = encodeInputValueDefinition(a)
	}
	return map[string]any{
		"_type": "FieldDefinition", "name": f.Name.Name, "description": f.Description,
		"type": encodeTypeRef(f.Type), "arguments": args, "argumentOrder": f.ArgOrder,
		"directives": encodeDirectives(f.Directives), "location": locJSON(f.Loc),
	}
}

func encodeFieldMap(fields map[string]ast.FieldDef, order []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, name := range order {
		out[name] = encodeFieldDef(fields[name])
	}
	return out
}

func encodeInputValueMap(fields map[string]ast.InputValueDefinition, order []string) map[string]any {
	out := make(map[string]any, len(fields))
	for _, name := range order {
		out[name] = encodeInputValueDefinition(fields[name])
	}
	return out
}

func encodeNames(ns []ast.NameNode) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = n.Name
	}
	return out
}

func encodeRootTypes(r ast.RootOperationTypes) map[string]any {
	out := map[string]any{}
	if r.Query != nil {
		out["query"] = r.Query.Name
	}
	if r.Mutation != nil {
		out["mutation"] = r.Mutation.Name
	}
	if r.Subscription != nil {
		out["subscription"] = r.Subscription.Name
	}
	return out
}

func encodeServerDefinition(def ast.ServerDefinition) map[string]any {
	switch d := def.(type) {
	case ast.ObjectType:
		return map[string]any{
			"_type": "ObjectTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"implements": encodeNames(d.Implements), "fields": encodeFieldMap(d.Fields, d.FieldOrder),
			"fieldOrder": d.FieldOrder, "directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.InterfaceType:
		return map[string]any{
			"_type": "InterfaceTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"fields": encodeFieldMap(d.Fields, d.FieldOrder), "fieldOrder": d.FieldOrder,
			"directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.InputType:
		return map[string]any{
			"_type": "InputObjectTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"fields": encodeInputValueMap(d.Fields, d.FieldOrder), "fieldOrder": d.FieldOrder,
			"directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.UnionType:
		return map[string]any{
			"_type": "UnionTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"members": encodeNames(d.Members), "directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.EnumType:
		values := make([]any, len(d.Values))
		for i, v := range d.Values {
			values[i] = map[string]any{
				"_type": "EnumValueDefinition", "name": v.Name.Name, "description": v.Description,
				"directives": encodeDirectives(v.Directives), "location": locJSON(v.Loc),
			}
		}
		return map[string]any{
			"_type": "EnumTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"values": values, "directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.ScalarType:
		return map[string]any{
			"_type": "ScalarTypeDefinition", "name": d.Name.Name, "description": d.Description,
			"directives": encodeDirectives(d.Directives), "location": locJSON(d.Loc),
		}
	case ast.DirectiveDefinition:
		locs := make([]any, len(d.Locations))
		for i, l := range d.Locations {
			locs[i] = string(l)
		}
		return map[string]any{
			"_type": "DirectiveDefinition", "name": d.Name.Name, "description": d.Description,
			"arguments": encodeInputValueMap(d.Arguments, d.ArgOrder), "argumentOrder": d.ArgOrder,
			"locations": locs, "repeatable": d.Repeatable, "location": locJSON(d.Loc),
		}
	case ast.SchemaDefinition:
		return map[string]any{
			"_type": "SchemaDefinition", "rootTypes": encodeRootTypes(d.RootTypes), "location": locJSON(d.Loc),
		}
	}
	return nil
}

func encodeExtension(e ast.Extension) map[string]any {
	values := make([]any, len(e.Values))
	for i, v := range e.Values {
		values[i] = v.Name.Name
	}
	return map[string]any{
		"_type": "TypeExtension", "targetKind": e.TargetKind, "targetName": e.TargetName,
		"fields": encodeFieldMap(e.Fields, e.FieldOrder), "fieldOrder": e.FieldOrder,
		"inputFields": encodeInputValueMap(e.InputFields, e.InputFieldOrder), "inputFieldOrder": e.InputFieldOrder,
		"implements": encodeNames(e.Implements), "members": encodeNames(e.Members), "values": values,
		"rootTypes": encodeRootTypes(e.RootTypes), "directives": encodeDirectives(e.Directives), "location": locJSON(e.Loc),
	}
}

func encodeSelectionSet(sels []ast.Selection) []any {
	out := make([]any, len(sels))
	for i, s := range sels {
		out[i] = encodeSelection(s)
	}
	return out
}

func encodeSelection(s ast.Selection) map[string]any {
	switch v := s.(type) {
	case ast.FieldSelection:
		args := make(map[string]any, len(v.Arguments))
		for name, val := range v.Arguments {
			args[name] = encodeLiteral(val)
		}
		out := map[string]any{
			"_type": "Field", "alias": v.Alias, "name": v.Name.Name, "arguments": args,
			"argumentOrder": v.ArgOrder, "directives": encodeDirectives(v.Directives), "location": locJSON(v.Loc),
		}
		if v.SelectionSet != nil {
			out["selectionSet"] = encodeSelectionSet(v.SelectionSet)
		}
		return out
	case ast.FragmentSpread:
		return map[string]any{
			"_type": "FragmentSpread", "name": v.FragmentName,
			"directives": encodeDirectives(v.Directives), "location": locJSON(v.Loc),
		}
	case ast.InlineFragment:
		out := map[string]any{
			"_type": "InlineFragment", "selectionSet": encodeSelectionSet(v.SelectionSet),
			"directives": encodeDirectives(v.Directives), "location": locJSON(v.Loc),
		}
		if v.TypeCondition != nil {
			out["typeCondition"] = v.TypeCondition.Name
		}
		return out
	}
	return nil
}

func encodeClientDefinition(def ast.ClientDefinition) map[string]any {
	switch d := def.(type) {
	case ast.OperationDefinition:
		vars := make([]any, len(d.Variables))
		for i, v := range d.Variables {
			vars[i] = encodeInputValueDefinition(v)
		}
		return map[string]any{
			"_type": "OperationDefinition", "operation": string(d.OpType), "name": d.Name,
			"variables": vars, "directives": encodeDirectives(d.Directives),
			"selectionSet": encodeSelectionSet(d.SelectionSet), "location": locJSON(d.Loc),
		}
	case ast.FragmentDefinition:
		return map[string]any{
			"_type": "FragmentDefinition", "name": d.Name, "typeCondition": d.TypeCondition.Name,
			"directives": encodeDirectives(d.Directives), "selectionSet": encodeSelectionSet(d.SelectionSet),
			"location": locJSON(d.Loc),
		}
	}
	return nil
}
