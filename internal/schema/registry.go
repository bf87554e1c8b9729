/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package schema

import "github.com/krotik/gqltool/internal/ast"

/*
builtinScalars are seeded per-call from a constant table (spec.md §9
"Global state. None.").
*/
var builtinScalars = []string{"Int", "Float", "String", "Boolean", "ID"}

/*
typeRegistry is scoped to one resolve() call and discarded once the
Schema is built (spec.md §4.4 "Output").
*/
type typeRegistry struct {
	scalars    map[string]*ScalarType
	enums      map[string]*EnumType
	unions     map[string]*UnionType
	interfaces map[string]*InterfaceType
	objects    map[string]*ObjectType
	inputs     map[string]*InputType
	directives map[string]*DirectiveType

	// kindOf records which dictionary a name was seeded into, so Pass 2
	// can reject a reference whose kind does not match its expected
	// dictionary with a precise UnknownType rather than a silent miss.
	kindOf map[string]string
}

func newTypeRegistry() *typeRegistry {
	r := &typeRegistry{
		scalars:    map[string]*ScalarType{},
		enums:      map[string]*EnumType{},
		unions:     map[string]*UnionType{},
		interfaces: map[string]*InterfaceType{},
		objects:    map[string]*ObjectType{},
		inputs:     map[string]*InputType{},
		directives: map[string]*DirectiveType{},
		kindOf:     map[string]string{},
	}
	for _, name := range builtinScalars {
		r.scalars[name] = &ScalarType{Name: name, Builtin: true}
		r.kindOf[name] = "SCALAR"
	}
	return r
}

/*
seed allocates an empty resolved entity for one top-level definition and
installs its handle under (kind, name) (spec.md §4.4 "Pass 1").
*/
func (r *typeRegistry) seed(def ast.ServerDefinition) error {
	name := def.DefName()

	if def.Kind() == "SCHEMA" {
		return nil // schema blocks are not named entities
	}

	if existing, ok := r.kindOf[name]; ok {
		return &Error{Kind: DuplicateType, Location: def.Location().StartToken.Loc,
			Message: "duplicate type \"" + name + "\" (already declared as " + existing + ")"}
	}
	r.kindOf[name] = def.Kind()

	switch d := def.(type) {
	case ast.ObjectType:
		r.objects[name] = &ObjectType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.InterfaceType:
		r.interfaces[name] = &InterfaceType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.InputType:
		r.inputs[name] = &InputType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.UnionType:
		r.unions[name] = &UnionType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.EnumType:
		r.enums[name] = &EnumType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.ScalarType:
		r.scalars[name] = &ScalarType{Name: name, Description: d.Description, Loc: d.Loc}
	case ast.DirectiveDefinition:
		r.directives[name] = &DirectiveType{Name: name, Loc: d.Loc}
	}
	return nil
}

/*
lookupInputType resolves a name to the InputTypeSpec handle (scalar,
enum, or input), or fails with UnknownType / InvalidInputType.
*/
func (r *typeRegistry) lookupInputType(name ast.NameNode) (InputTypeSpec, error) {
	kind, ok := r.kindOf[name.Name]
	if !ok {
		return nil, &Error{Kind: UnknownType, Location: name.Loc.StartToken.Loc,
			Message: "unknown type \"" + name.Name + "\""}
	}
	switch kind {
	case "SCALAR":
		return r.scalars[name.Name], nil
	case "ENUM":
		return r.enums[name.Name], nil
	case "INPUT_OBJECT":
		return r.inputs[name.Name], nil
	}
	return nil, &Error{Kind: InvalidInputType, Location: name.Loc.StartToken.Loc,
		Message: "\"" + name.Name + "\" (" + kind + ") cannot be used as an input type"}
}

/*
lookupObjectType resolves a name to the ObjectTypeSpec handle (scalar,
enum, object, interface, or union). It fails with UnknownType for an
undeclared name and with InvalidInputType for a name of any other kind
(an input type).
*/
func (r *typeRegistry) lookupObjectType(name ast.NameNode) (ObjectTypeSpec, error) {
	kind, ok := r.kindOf[name.Name]
	if !ok {
		return nil, &Error{Kind: UnknownType, Location: name.Loc.StartToken.Loc,
			Message: "unknown type \"" + name.Name + "\""}
	}
	switch kind {
	case "SCALAR":
		return r.scalars[name.Name], nil
	case "ENUM":
		return r.enums[name.Name], nil
	case "OBJECT":
		return r.objects[name.Name], nil
	case "INTERFACE":
		return r.interfaces[name.Name], nil
	case "UNION":
		return r.unions[name.Name], nil
	}
	return nil, &Error{Kind: InvalidInputType, Location: name.Loc.StartToken.Loc,
		Message: "\"" + name.Name + "\" (" + kind + ") cannot be used as an output type"}
}

func (r *typeRegistry) lookupInterface(name ast.NameNode) (*InterfaceType, error) {
	kind, ok := r.kindOf[name.Name]
	if !ok || kind != "INTERFACE" {
		return nil, &Error{Kind: UnknownType, Location: name.Loc.StartToken.Loc,
			Message: "\"" + name.Name + "\" does not resolve to an interface type"}
	}
	return r.interfaces[name.Name], nil
}

func (r *typeRegistry) lookupObject(name ast.NameNode) (*ObjectType, error) {
	kind, ok := r.kindOf[name.Name]
	if !ok || kind != "OBJECT" {
		return nil, &Error{Kind: UnknownType, Location: name.Loc.StartToken.Loc,
			Message: "\"" + name.Name + "\" does not resolve to an object type"}
	}
	return r.objects[name.Name], nil
}

func (r *typeRegistry) lookupDirective(name ast.NameNode) (*DirectiveType, error) {
	d, ok := r.directives[name.Name]
	if !ok {
		return nil, &Error{Kind: UnknownType, Location: name.Loc.StartToken.Loc,
			Message: "unknown directive \"@" + name.Name + "\""}
	}
	return d, nil
}
