/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Package schema lowers the file-level server and client ASTs into a single
semantically validated Schema graph (spec.md §3.6, §4.4).

Resolved entities live in per-kind maps keyed by name. Cross-references
between them are plain Go pointers (*ObjectType, *InterfaceType, ...),
and those pointers form cycles (an object points at its interfaces and
each interface lists its implementers); Go's garbage collector handles
such cycles without reference counting. The wire form in internal/gqljson
replaces these pointers with `{_type, name}` stubs.
*/
package schema

import "github.com/krotik/gqltool/internal/ast"

/*
ResolvedDirective is a directive application bound to its DirectiveType.
*/
type ResolvedDirective struct {
	Directive *DirectiveType
	Arguments map[string]ast.Literal
	ArgOrder  []string
}

/*
ScalarType is a resolved leaf type. Int, Float, String, Boolean and ID
are pre-seeded as built-ins (spec.md §4.4 "Pass 1").
*/
type ScalarType struct {
	Name        string
	Description string
	Builtin     bool
	Loc         ast.NodeLocation
	Directives  []ResolvedDirective
}

type EnumValue struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Directives  []ResolvedDirective
}

type EnumType struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Values      []EnumValue
	Directives  []ResolvedDirective
}

/*
UnionType's Members resolve to ObjectType only (invariant 2).
*/
type UnionType struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Members     []*ObjectType
	Directives  []ResolvedDirective
}

/*
InputTypeSpec is a handle to the scalar, enum or input type backing an
input field or argument (spec.md §3.6).
*/
type InputTypeSpec interface {
	isInputTypeSpec()
	TypeName() string
}

func (*ScalarType) isInputTypeSpec() {}
func (*EnumType) isInputTypeSpec()   {}
func (*InputType) isInputTypeSpec()  {}

func (t *ScalarType) TypeName() string { return t.Name }
func (t *EnumType) TypeName() string   { return t.Name }
func (t *InputType) TypeName() string  { return t.Name }

/*
ObjectTypeSpec is a handle to the scalar, enum, object, interface or
union type backing an object/interface field (spec.md §3.6).
*/
type ObjectTypeSpec interface {
	isObjectTypeSpec()
	TypeName() string
}

func (*ScalarType) isObjectTypeSpec()    {}
func (*EnumType) isObjectTypeSpec()      {}
func (*ObjectType) isObjectTypeSpec()    {}
func (*InterfaceType) isObjectTypeSpec() {}
func (*UnionType) isObjectTypeSpec()     {}

/*
InputFieldSpec is the sum type over a Literal or Array-of-Literal input
field/argument shape (spec.md §3.6 "InputFieldSpec"). Array is
self-recursive so that nested list types (e.g. [[Int!]]) lower correctly
(spec.md §4.4 "Lowering rules").
*/
type InputFieldSpec interface {
	isInputFieldSpec()
	Nullable() bool
}

type InputLiteralSpec struct {
	Type       InputTypeSpec
	nullable   bool
	Default    ast.Literal
	HasDefault bool
}

type InputArraySpec struct {
	Inner      InputFieldSpec
	nullable   bool
	Default    ast.Literal
	HasDefault bool
}

func (InputLiteralSpec) isInputFieldSpec() {}
func (InputArraySpec) isInputFieldSpec()   {}
func (s InputLiteralSpec) Nullable() bool  { return s.nullable }
func (s InputArraySpec) Nullable() bool    { return s.nullable }

/*
NewInputLiteralSpec and NewInputArraySpec build their respective specs
from outside the package (e.g. internal/gqljson rehydrating a schema
JSON document), since Nullable is intentionally not settable directly.
*/
func NewInputLiteralSpec(t InputTypeSpec, nullable bool) InputLiteralSpec {
	return InputLiteralSpec{Type: t, nullable: nullable}
}

func NewInputArraySpec(inner InputFieldSpec, nullable bool) InputArraySpec {
	return InputArraySpec{Inner: inner, nullable: nullable}
}

/*
InputFieldDefinition pairs an input field/argument's name with its
lowered spec.
*/
type InputFieldDefinition struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Spec        InputFieldSpec
	Directives  []ResolvedDirective
}

/*
NonCallableObjectFieldSpec is the Literal/Array half of ObjectFieldSpec,
i.e. ObjectFieldSpec minus Callable - also the declared return type shape
of a Callable field (spec.md §3.6).
*/
type NonCallableObjectFieldSpec interface {
	isNonCallableObjectFieldSpec()
	Nullable() bool
}

type ObjectLiteralSpec struct {
	Type     ObjectTypeSpec
	nullable bool
}

type ObjectArraySpec struct {
	Inner    NonCallableObjectFieldSpec
	nullable bool
}

func (ObjectLiteralSpec) isNonCallableObjectFieldSpec() {}
func (ObjectArraySpec) isNonCallableObjectFieldSpec()   {}
func (s ObjectLiteralSpec) Nullable() bool              { return s.nullable }
func (s ObjectArraySpec) Nullable() bool                { return s.nullable }

/*
NewObjectLiteralSpec and NewObjectArraySpec build their respective specs
from outside the package, mirroring NewInputLiteralSpec/NewInputArraySpec.
*/
func NewObjectLiteralSpec(t ObjectTypeSpec, nullable bool) ObjectLiteralSpec {
	return ObjectLiteralSpec{Type: t, nullable: nullable}
}

func NewObjectArraySpec(inner NonCallableObjectFieldSpec, nullable bool) ObjectArraySpec {
	return ObjectArraySpec{Inner: inner, nullable: nullable}
}

/*
ObjectFieldSpec is the sum type over Literal, Array (both non-callable)
and Callable (spec.md §3.6).
*/
type ObjectFieldSpec interface {
	isObjectFieldSpec()
}

type ObjectCallableSpec struct {
	Return    NonCallableObjectFieldSpec
	Arguments map[string]InputFieldDefinition
	ArgOrder  []string
}

func (ObjectLiteralSpec) isObjectFieldSpec()  {}
func (ObjectArraySpec) isObjectFieldSpec()    {}
func (ObjectCallableSpec) isObjectFieldSpec() {}

/*
ObjectField pairs a field's name with its lowered spec and directives.
*/
type ObjectField struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Spec        ObjectFieldSpec
	Directives  []ResolvedDirective
}

type ObjectType struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Fields      map[string]*ObjectField
	FieldOrder  []string
	Implements  []*InterfaceType
	Directives  []ResolvedDirective
}

/*
InterfaceType's Implementers is a non-owning back-reference collection -
the schema's sole ownership of each ObjectType remains its Objects
dictionary (spec.md §3.6).
*/
type InterfaceType struct {
	Name         string
	Description  string
	Loc          ast.NodeLocation
	Fields       map[string]*ObjectField
	FieldOrder   []string
	Implementers []*ObjectType
	Directives   []ResolvedDirective
}

type InputType struct {
	Name        string
	Description string
	Loc         ast.NodeLocation
	Fields      map[string]InputFieldDefinition
	FieldOrder  []string
	Directives  []ResolvedDirective
}

type DirectiveType struct {
	Name       string
	Loc        ast.NodeLocation
	Arguments  map[string]InputFieldDefinition
	ArgOrder   []string
	Locations  []string
	Repeatable bool
}

/*
ServerSchema holds the per-kind dictionaries of a resolved schema.
*/
type ServerSchema struct {
	Scalars      map[string]*ScalarType
	Enums        map[string]*EnumType
	Unions       map[string]*UnionType
	Interfaces   map[string]*InterfaceType
	Objects      map[string]*ObjectType
	Inputs       map[string]*InputType
	Directives   map[string]*DirectiveType
	Query        *ObjectType
	Mutation     *ObjectType
	Subscription *ObjectType
}

/*
ResolvedOperation and ResolvedFragment record a client-mode definition
(spec.md §4.4). ResolvedOperation holds only the definition;
ResolvedFragment also binds its type condition into the server schema.
Fragment spreads and field targets are not bound.
*/
type ResolvedOperation struct {
	Def *ast.OperationDefinition
}

type ResolvedFragment struct {
	Def           *ast.FragmentDefinition
	TypeCondition ObjectTypeSpec
}

/*
ClientSchema is keyed by operation/fragment name.
*/
type ClientSchema struct {
	Operations map[string]*ResolvedOperation
	Fragments  map[string]*ResolvedFragment
}

/*
Schema is the fully cross-linked output of resolution (spec.md §3.6).
*/
type Schema struct {
	Server ServerSchema
	Client ClientSchema
}
