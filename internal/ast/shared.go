/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package ast holds the tagged-union node types produced by the parser:
leaf nodes shared by both grammars (shared.go), the server-mode
definitions (server.go) and the client-mode definitions (client.go).

Node kinds are modeled as Go interfaces with an unexported marker method
rather than a class hierarchy - visiting is exhaustive case analysis via a
type switch, and adding a kind is a compile-time-checked change (spec.md
§9).
*/
package ast

import "github.com/krotik/gqltool/internal/token"

/*
NodeLocation spans the first to the last token consumed while parsing a
node.
*/
type NodeLocation struct {
	StartToken token.Token
	EndToken   token.Token
	Source     *token.SourceFile
}

/*
NameNode is an identifier occurrence, e.g. a type name or field name.
*/
type NameNode struct {
	Loc  NodeLocation
	Name string
}

/*
Literal is the sum type over value literals: Int, Float, String, Bool,
EnumValue, Null, List and Object (spec.md §3.3).
*/
type Literal interface {
	isLiteral()
	Location() NodeLocation
}

type IntLiteral struct {
	Loc   NodeLocation
	Value int64
}

type FloatLiteral struct {
	Loc   NodeLocation
	Value float64
}

type StringLiteral struct {
	Loc   NodeLocation
	Value string
}

type BoolLiteral struct {
	Loc   NodeLocation
	Value bool
}

type EnumValueLiteral struct {
	Loc   NodeLocation
	Value string
}

type NullLiteral struct {
	Loc NodeLocation
}

type ListLiteral struct {
	Loc    NodeLocation
	Values []Literal
}

type ObjectLiteral struct {
	Loc    NodeLocation
	Fields map[string]Literal
	// Order preserves the source order of fields, since Go maps do not.
	Order []string
}

/*
VariableRefLiteral is a `$name` value reference inside an argument or
default value. This is an additive completion of spec.md §3.3's literal
set: without it, a client-mode field argument could never reference an
operation variable declared in variables:[InputValueDefinition], which
would make parameterized operations unparseable.
*/
type VariableRefLiteral struct {
	Loc  NodeLocation
	Name string
}

func (VariableRefLiteral) isLiteral()              {}
func (n VariableRefLiteral) Location() NodeLocation { return n.Loc }

func (IntLiteral) isLiteral()       {}
func (FloatLiteral) isLiteral()     {}
func (StringLiteral) isLiteral()    {}
func (BoolLiteral) isLiteral()      {}
func (EnumValueLiteral) isLiteral() {}
func (NullLiteral) isLiteral()      {}
func (ListLiteral) isLiteral()      {}
func (ObjectLiteral) isLiteral()    {}

func (n IntLiteral) Location() NodeLocation       { return n.Loc }
func (n FloatLiteral) Location() NodeLocation     { return n.Loc }
func (n StringLiteral) Location() NodeLocation    { return n.Loc }
func (n BoolLiteral) Location() NodeLocation      { return n.Loc }
func (n EnumValueLiteral) Location() NodeLocation { return n.Loc }
func (n NullLiteral) Location() NodeLocation      { return n.Loc }
func (n ListLiteral) Location() NodeLocation      { return n.Loc }
func (n ObjectLiteral) Location() NodeLocation    { return n.Loc }

/*
TypeRef is the sum type over type references: a named type (optionally
nullable) or a list type wrapping an inner TypeRef. List items carry
their own nullability independent of the list itself (spec.md §3.3).
*/
type TypeRef interface {
	isTypeRef()
	Location() NodeLocation
	Nullable() bool
}

/*
NamedTypeRef references a type by name. Nullable defaults to true; a
trailing '!' in source sets it false.
*/
type NamedTypeRef struct {
	Loc      NodeLocation
	Name     NameNode
	nullable bool
}

/*
NewNamedTypeRef builds a NamedTypeRef node.
*/
func NewNamedTypeRef(loc NodeLocation, name NameNode, nullable bool) NamedTypeRef {
	return NamedTypeRef{Loc: loc, Name: name, nullable: nullable}
}

func (n NamedTypeRef) isTypeRef()             {}
func (n NamedTypeRef) Location() NodeLocation { return n.Loc }
func (n NamedTypeRef) Nullable() bool         { return n.nullable }

/*
ListTypeRef wraps an inner TypeRef in a list. Nullable governs the list
itself, not its elements.
*/
type ListTypeRef struct {
	Loc      NodeLocation
	Inner    TypeRef
	nullable bool
}

/*
NewListTypeRef builds a ListTypeRef node.
*/
func NewListTypeRef(loc NodeLocation, inner TypeRef, nullable bool) ListTypeRef {
	return ListTypeRef{Loc: loc, Inner: inner, nullable: nullable}
}

func (n ListTypeRef) isTypeRef()             {}
func (n ListTypeRef) Location() NodeLocation { return n.Loc }
func (n ListTypeRef) Nullable() bool         { return n.nullable }

/*
InputValueDefinition is an argument or input-field declaration: a typed
name with an optional default value.
*/
type InputValueDefinition struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Type        TypeRef
	Default     Literal // nil if absent
	Directives  []DirectiveApplication
}

/*
DirectiveApplication is one `@name(args)` occurrence.
*/
type DirectiveApplication struct {
	Loc       NodeLocation
	Name      NameNode
	Arguments map[string]Literal
	ArgOrder  []string
}
