/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package ast

import "github.com/krotik/gqltool/internal/token"

/*
ServerDefinition is the sum type over top-level server-mode definitions
(spec.md §3.4).
*/
type ServerDefinition interface {
	isServerDefinition()
	Location() NodeLocation
	DefName() string
	Kind() string
}

/*
FieldDef is one field of an object or interface type.
*/
type FieldDef struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Type        TypeRef
	Arguments   map[string]InputValueDefinition
	ArgOrder    []string
	Directives  []DirectiveApplication
}

type ObjectType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Implements  []NameNode
	Fields      map[string]FieldDef
	FieldOrder  []string
	Directives  []DirectiveApplication
}

type InterfaceType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Fields      map[string]FieldDef
	FieldOrder  []string
	Directives  []DirectiveApplication
}

type InputType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Fields      map[string]InputValueDefinition
	FieldOrder  []string
	Directives  []DirectiveApplication
}

type UnionType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Members     []NameNode
	Directives  []DirectiveApplication
}

/*
EnumValueDef is one member of an enum declaration.
*/
type EnumValueDef struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Directives  []DirectiveApplication
}

type EnumType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Values      []EnumValueDef
	Directives  []DirectiveApplication
}

type ScalarType struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Directives  []DirectiveApplication
}

/*
DirectiveLocation names a place a directive application is permitted.
*/
type DirectiveLocation string

type DirectiveDefinition struct {
	Loc         NodeLocation
	Description string
	Name        NameNode
	Arguments   map[string]InputValueDefinition
	ArgOrder    []string
	Locations   []DirectiveLocation
	Repeatable  bool
}

/*
RootOperationTypes names the object types bound to query/mutation/
subscription by a `schema { ... }` block.
*/
type RootOperationTypes struct {
	Query        *NameNode
	Mutation     *NameNode
	Subscription *NameNode
}

type SchemaDefinition struct {
	Loc       NodeLocation
	RootTypes RootOperationTypes
}

func (ObjectType) isServerDefinition()          {}
func (InterfaceType) isServerDefinition()       {}
func (InputType) isServerDefinition()           {}
func (UnionType) isServerDefinition()           {}
func (EnumType) isServerDefinition()            {}
func (ScalarType) isServerDefinition()          {}
func (DirectiveDefinition) isServerDefinition() {}
func (SchemaDefinition) isServerDefinition()    {}

func (n ObjectType) Location() NodeLocation          { return n.Loc }
func (n InterfaceType) Location() NodeLocation       { return n.Loc }
func (n InputType) Location() NodeLocation           { return n.Loc }
func (n UnionType) Location() NodeLocation           { return n.Loc }
func (n EnumType) Location() NodeLocation            { return n.Loc }
func (n ScalarType) Location() NodeLocation          { return n.Loc }
func (n DirectiveDefinition) Location() NodeLocation { return n.Loc }
func (n SchemaDefinition) Location() NodeLocation    { return n.Loc }

func (n ObjectType) DefName() string          { return n.Name.Name }
func (n InterfaceType) DefName() string       { return n.Name.Name }
func (n InputType) DefName() string           { return n.Name.Name }
func (n UnionType) DefName() string           { return n.Name.Name }
func (n EnumType) DefName() string            { return n.Name.Name }
func (n ScalarType) DefName() string          { return n.Name.Name }
func (n DirectiveDefinition) DefName() string { return n.Name.Name }
func (n SchemaDefinition) DefName() string    { return "schema" }

/*
Kind returns the entity-kind tag used for directive-location matching
and JSON discriminators (spec.md §4.4 "Directive validation", §6).
*/
func (n ObjectType) Kind() string          { return "OBJECT" }
func (n InterfaceType) Kind() string       { return "INTERFACE" }
func (n InputType) Kind() string           { return "INPUT_OBJECT" }
func (n UnionType) Kind() string           { return "UNION" }
func (n EnumType) Kind() string            { return "ENUM" }
func (n ScalarType) Kind() string          { return "SCALAR" }
func (n DirectiveDefinition) Kind() string { return "DIRECTIVE_DEFINITION" }
func (n SchemaDefinition) Kind() string     { return "SCHEMA" }

/*
Extension mirrors a definition's shape but is stored separately; it is
merged during resolution (spec.md §3.4).
*/
type Extension struct {
	Loc NodeLocation
	// TargetKind is the kind of the base definition being extended
	// (OBJECT, INTERFACE, INPUT_OBJECT, UNION, ENUM, SCALAR or SCHEMA).
	TargetKind string
	TargetName string

	// Exactly the subset of fields relevant to TargetKind are populated.
	Fields          map[string]FieldDef
	FieldOrder      []string
	InputFields     map[string]InputValueDefinition
	InputFieldOrder []string
	Implements      []NameNode
	Members         []NameNode
	Values          []EnumValueDef
	RootTypes       RootOperationTypes
	Directives      []DirectiveApplication
}

/*
FileNodes is the server-mode parse result for one file: every top-level
definition and extension in source order.
*/
type FileNodes struct {
	Source      *token.SourceFile
	Definitions []ServerDefinition
	Extensions  []Extension
}
