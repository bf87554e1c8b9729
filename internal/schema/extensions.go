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
mergeExtension folds one `extend` block into the already-resolved base
entity it targets. Extensions that add disjoint fields to the same base
commute (Testable Property 6); extensions that redeclare an existing
field name are rejected with DuplicateField regardless of order.
*/
func mergeExtension(ext ast.Extension, reg *typeRegistry) error {
	kind, ok := reg.kindOf[ext.TargetName]
	if !ok || kind != ext.TargetKind {
		return &Error{Kind: UnknownType, Location: ext.Loc.StartToken.Loc,
			Message: "extend " + ext.TargetKind + " \"" + ext.TargetName + "\": base type not found"}
	}

	switch ext.TargetKind {
	case "OBJECT":
		entity := reg.objects[ext.TargetName]
		for _, iName := range ext.Implements {
			iface, err := reg.lookupInterface(iName)
			if err != nil {
				return err
			}
			entity.Implements = append(entity.Implements, iface)
			iface.Implementers = append(iface.Implementers, entity)
		}
		if err := mergeFields(entity.Fields, &entity.FieldOrder, ext.Fields, ext.FieldOrder, reg); err != nil {
			return err
		}
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locObject)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)

	case "INTERFACE":
		entity := reg.interfaces[ext.TargetName]
		if err := mergeFields(entity.Fields, &entity.FieldOrder, ext.Fields, ext.FieldOrder, reg); err != nil {
			return err
		}
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locInterface)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)

	case "INPUT_OBJECT":
		entity := reg.inputs[ext.TargetName]
		lowered, _, err := lowerInputValueDefinitions(ext.InputFields, ext.InputFieldOrder, reg, locInputFieldDef)
		if err != nil {
			return err
		}
		for _, name := range ext.InputFieldOrder {
			if _, dup := entity.Fields[name]; dup {
				return &Error{Kind: DuplicateField, Location: ext.Loc.StartToken.Loc,
					Message: "duplicate input field \"" + name + "\" on \"" + ext.TargetName + "\""}
			}
			entity.Fields[name] = lowered[name]
			entity.FieldOrder = append(entity.FieldOrder, name)
		}
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locInputObject)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)

	case "UNION":
		entity := reg.unions[ext.TargetName]
		for _, mName := range ext.Members {
			obj, err := reg.lookupObject(mName)
			if err != nil {
				return err
			}
			entity.Members = append(entity.Members, obj)
		}
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locUnion)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)

	case "ENUM":
		entity := reg.enums[ext.TargetName]
		existing := map[string]bool{}
		for _, v := range entity.Values {
			existing[v.Name] = true
		}
		for _, v := range ext.Values {
			if existing[v.Name.Name] {
				return &Error{Kind: DuplicateField, Location: v.Loc.StartToken.Loc,
					Message: "duplicate enum value \"" + v.Name.Name + "\" on \"" + ext.TargetName + "\""}
			}
			vDirectives, err := lowerDirectiveApplications(v.Directives, reg, locEnumValue)
			if err != nil {
				return err
			}
			entity.Values = append(entity.Values, EnumValue{
				Name: v.Name.Name, Description: v.Description, Loc: v.Loc, Directives: vDirectives,
			})
		}
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locEnum)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)

	case "SCALAR":
		entity := reg.scalars[ext.TargetName]
		dirs, err := lowerDirectiveApplications(ext.Directives, reg, locScalar)
		if err != nil {
			return err
		}
		entity.Directives = append(entity.Directives, dirs...)
	}
	return nil
}

/*
mergeFields appends field definitions from an extension into an
already-resolved field map, rejecting any name collision with the base
definition or a previously merged extension (spec.md §3.6 invariant
"extension field names are disjoint from the base type").
*/
func mergeFields(
	into map[string]*ObjectField, order *[]string,
	ext map[string]ast.FieldDef, extOrder []string, reg *typeRegistry,
) error {
	for _, name := range extOrder {
		if _, dup := into[name]; dup {
			return &Error{Kind: DuplicateField, Location: ext[name].Loc.StartToken.Loc,
				Message: "duplicate field \"" + name + "\""}
		}
		field, err := lowerFieldDef(ext[name], reg, locFieldDefinition)
		if err != nil {
			return err
		}
		into[name] = field
		*order = append(*order, name)
	}
	return nil
}

/*
mergeSchemaExtension folds an `extend schema { ... }` block into the
running SchemaDefinition, synthesizing one if none preceded it.
*/
func mergeSchemaExtension(ext ast.Extension, schemaDef **ast.SchemaDefinition) {
	if *schemaDef == nil {
		*schemaDef = &ast.SchemaDefinition{Loc: ext.Loc}
	}
	if ext.RootTypes.Query != nil {
		(*schemaDef).RootTypes.Query = ext.RootTypes.Query
	}
	if ext.RootTypes.Mutation != nil {
		(*schemaDef).RootTypes.Mutation = ext.RootTypes.Mutation
	}
	if ext.RootTypes.Subscription != nil {
		(*schemaDef).RootTypes.Subscription = ext.RootTypes.Subscription
	}
}
