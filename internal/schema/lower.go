/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package schema

import (
	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/stringutil"
)

/*
lowerInputTypeRef lowers a TypeRefNode into an InputFieldSpec (spec.md
§4.4 "Lowering rules"). Input-field type references may only point to
scalar, enum or input types (enforced by lookupInputType).
*/
func lowerInputTypeRef(t ast.TypeRef, reg *typeRegistry) (InputFieldSpec, error) {
	switch v := t.(type) {
	case ast.NamedTypeRef:
		target, err := reg.lookupInputType(v.Name)
		if err != nil {
			return nil, err
		}
		return InputLiteralSpec{Type: target, nullable: v.Nullable()}, nil
	case ast.ListTypeRef:
		inner, err := lowerInputTypeRef(v.Inner, reg)
		if err != nil {
			return nil, err
		}
		return InputArraySpec{Inner: inner, nullable: v.Nullable()}, nil
	}
	panic("unreachable: unknown ast.TypeRef implementation")
}

/*
withInputDefault attaches a default value to the outermost InputFieldSpec
built for one field/argument.
*/
func withInputDefault(spec InputFieldSpec, def ast.Literal) InputFieldSpec {
	if def == nil {
		return spec
	}
	switch s := spec.(type) {
	case InputLiteralSpec:
		s.Default, s.HasDefault = def, true
		return s
	case InputArraySpec:
		s.Default, s.HasDefault = def, true
		return s
	}
	return spec
}

/*
lowerInputValueDefinition lowers one argument or input-field declaration.
targetKind selects which directive locations apply to its directives:
locArgDefinition for field/directive arguments, locInputFieldDef for
input-object fields (spec.md §4.4 "Directive validation").
*/
func lowerInputValueDefinition(def ast.InputValueDefinition, reg *typeRegistry, targetKind string) (InputFieldDefinition, error) {
	spec, err := lowerInputTypeRef(def.Type, reg)
	if err != nil {
		return InputFieldDefinition{}, err
	}
	spec = withInputDefault(spec, def.Default)

	directives, err := lowerDirectiveApplications(def.Directives, reg, targetKind)
	if err != nil {
		return InputFieldDefinition{}, err
	}

	return InputFieldDefinition{
		Name: def.Name.Name, Description: def.Description, Loc: def.Loc,
		Spec: spec, Directives: directives,
	}, nil
}

/*
lowerInputValueDefinitions lowers a whole argument/input-field map,
preserving declaration order.
*/
func lowerInputValueDefinitions(
	defs map[string]ast.InputValueDefinition, order []string, reg *typeRegistry, targetKind string,
) (map[string]InputFieldDefinition, []string, error) {
	out := make(map[string]InputFieldDefinition, len(defs))
	for _, name := range order {
		lowered, err := lowerInputValueDefinition(defs[name], reg, targetKind)
		if err != nil {
			return nil, nil, err
		}
		out[name] = lowered
	}
	return out, order, nil
}

/*
lowerObjectTypeRef lowers a TypeRefNode into a NonCallableObjectFieldSpec.
Object/interface field references may only point to scalar, enum,
object, interface or union types (enforced by lookupObjectType).
*/
func lowerObjectTypeRef(t ast.TypeRef, reg *typeRegistry) (NonCallableObjectFieldSpec, error) {
	switch v := t.(type) {
	case ast.NamedTypeRef:
		target, err := reg.lookupObjectType(v.Name)
		if err != nil {
			return nil, err
		}
		return ObjectLiteralSpec{Type: target, nullable: v.Nullable()}, nil
	case ast.ListTypeRef:
		inner, err := lowerObjectTypeRef(v.Inner, reg)
		if err != nil {
			return nil, err
		}
		return ObjectArraySpec{Inner: inner, nullable: v.Nullable()}, nil
	}
	panic("unreachable: unknown ast.TypeRef implementation")
}

/*
lowerFieldDef lowers one object/interface field, including its argument
list (which promotes the field to Callable per spec.md §4.4 "A FieldDef
with a non-empty arguments map lowers to Callable").
*/
func lowerFieldDef(f ast.FieldDef, reg *typeRegistry, targetKind string) (*ObjectField, error) {
	nc, err := lowerObjectTypeRef(f.Type, reg)
	if err != nil {
		return nil, err
	}

	var spec ObjectFieldSpec = nc
	if len(f.Arguments) > 0 {
		args, argOrder, err := lowerInputValueDefinitions(f.Arguments, f.ArgOrder, reg, locArgDefinition)
		if err != nil {
			return nil, err
		}
		spec = ObjectCallableSpec{Return: nc, Arguments: args, ArgOrder: argOrder}
	}

	directives, err := lowerDirectiveApplications(f.Directives, reg, locFieldDefinition)
	if err != nil {
		return nil, err
	}

	return &ObjectField{
		Name: f.Name.Name, Description: f.Description, Loc: f.Loc, Spec: spec, Directives: directives,
	}, nil
}

/*
lowerDirectiveApplications resolves and validates every directive
application against one target. Directive applications target entities
whose kind is in the directive's locations (invariant 4); non-repeatable
directives may appear at most once per target (spec.md §4.4).
*/
func lowerDirectiveApplications(apps []ast.DirectiveApplication, reg *typeRegistry, targetKind string) ([]ResolvedDirective, error) {
	if len(apps) == 0 {
		return nil, nil
	}
	seen := map[string]bool{}
	out := make([]ResolvedDirective, 0, len(apps))
	for _, app := range apps {
		dir, err := reg.lookupDirective(app.Name)
		if err != nil {
			return nil, err
		}

		if stringutil.IndexOf(targetKind, dir.Locations) == -1 {
			return nil, &Error{Kind: DirectiveTargetMismatch, Location: app.Name.Loc.StartToken.Loc,
				Message: "directive \"@" + dir.Name + "\" is not permitted on " + targetKind}
		}

		if !dir.Repeatable {
			if seen[dir.Name] {
				return nil, &Error{Kind: NonRepeatableDirectiveRepeated, Location: app.Name.Loc.StartToken.Loc,
					Message: "non-repeatable directive \"@" + dir.Name + "\" applied more than once"}
			}
			seen[dir.Name] = true
		}

		out = append(out, ResolvedDirective{Directive: dir, Arguments: app.Arguments, ArgOrder: app.ArgOrder})
	}
	return out, nil
}
