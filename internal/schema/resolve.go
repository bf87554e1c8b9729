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
	"github.com/krotik/gqltool/internal/token"
)

/*
Resolve merges one or more server-mode FileNodes (and, optionally, the
client-mode definitions that reference them) into one cross-linked
Schema (spec.md §4.4). Resolution runs in two passes: registry seeding,
then body resolution; extensions are merged last, in the order their
files are presented and in source order within a file.
*/
func Resolve(serverFiles []*ast.FileNodes, clientFiles [][]ast.ClientDefinition) (*Schema, error) {
	reg := newTypeRegistry()

	// Pass 1 - registry seeding.
	for _, file := range serverFiles {
		for _, def := range file.Definitions {
			if err := reg.seed(def); err != nil {
				return nil, err
			}
		}
	}

	// Pass 2 - body resolution.
	var schemaDef *ast.SchemaDefinition
	for _, file := range serverFiles {
		for _, def := range file.Definitions {
			if sd, ok := def.(ast.SchemaDefinition); ok {
				schemaDef = &sd
				continue
			}
			if err := resolveDefinitionBody(def, reg); err != nil {
				return nil, err
			}
		}
	}

	// Extensions merge in file-presentation order, source order within
	// a file (spec.md §5 "Ordering guarantees").
	for _, file := range serverFiles {
		for _, ext := range file.Extensions {
			if ext.TargetKind == "SCHEMA" {
				mergeSchemaExtension(ext, &schemaDef)
				continue
			}
			if err := mergeExtension(ext, reg); err != nil {
				return nil, err
			}
		}
	}

	server := ServerSchema{
		Scalars: reg.scalars, Enums: reg.enums, Unions: reg.unions,
		Interfaces: reg.interfaces, Objects: reg.objects, Inputs: reg.inputs,
		Directives: reg.directives,
	}

	if err := resolveRootOperationTypes(&server, reg, schemaDef); err != nil {
		return nil, err
	}
	if err := checkInterfaceConformance(&server); err != nil {
		return nil, err
	}
	if err := checkInputAcyclicity(&server); err != nil {
		return nil, err
	}

	sch := &Schema{Server: server}
	if clientFiles != nil {
		client, err := resolveClient(clientFiles, reg)
		if err != nil {
			return nil, err
		}
		sch.Client = *client
	}
	return sch, nil
}

/*
resolveDefinitionBody fills in the body of one already-seeded registry
entry (spec.md §4.4 "Pass 2").
*/
func resolveDefinitionBody(def ast.ServerDefinition, reg *typeRegistry) error {
	switch d := def.(type) {
	case ast.ObjectType:
		entity := reg.objects[d.Name.Name]
		for _, iName := range d.Implements {
			iface, err := reg.lookupInterface(iName)
			if err != nil {
				return err
			}
			entity.Implements = append(entity.Implements, iface)
			iface.Implementers = append(iface.Implementers, entity)
		}
		fields, order, err := lowerFields(d.Fields, d.FieldOrder, reg)
		if err != nil {
			return err
		}
		entity.Fields, entity.FieldOrder = fields, order
		directives, err := lowerDirectiveApplications(d.Directives, reg, locObject)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.InterfaceType:
		entity := reg.interfaces[d.Name.Name]
		fields, order, err := lowerFields(d.Fields, d.FieldOrder, reg)
		if err != nil {
			return err
		}
		entity.Fields, entity.FieldOrder = fields, order
		directives, err := lowerDirectiveApplications(d.Directives, reg, locInterface)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.InputType:
		entity := reg.inputs[d.Name.Name]
		fields, order, err := lowerInputValueDefinitions(d.Fields, d.FieldOrder, reg, locInputFieldDef)
		if err != nil {
			return err
		}
		entity.Fields, entity.FieldOrder = fields, order
		directives, err := lowerDirectiveApplications(d.Directives, reg, locInputObject)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.UnionType:
		entity := reg.unions[d.Name.Name]
		for _, mName := range d.Members {
			obj, err := reg.lookupObject(mName)
			if err != nil {
				return err
			}
			entity.Members = append(entity.Members, obj)
		}
		directives, err := lowerDirectiveApplications(d.Directives, reg, locUnion)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.EnumType:
		entity := reg.enums[d.Name.Name]
		for _, v := range d.Values {
			vDirectives, err := lowerDirectiveApplications(v.Directives, reg, locEnumValue)
			if err != nil {
				return err
			}
			entity.Values = append(entity.Values, EnumValue{
				Name: v.Name.Name, Description: v.Description, Loc: v.Loc, Directives: vDirectives,
			})
		}
		directives, err := lowerDirectiveApplications(d.Directives, reg, locEnum)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.ScalarType:
		entity := reg.scalars[d.Name.Name]
		directives, err := lowerDirectiveApplications(d.Directives, reg, locScalar)
		if err != nil {
			return err
		}
		entity.Directives = directives

	case ast.DirectiveDefinition:
		entity := reg.directives[d.Name.Name]
		args, order, err := lowerInputValueDefinitions(d.Arguments, d.ArgOrder, reg, locArgDefinition)
		if err != nil {
			return err
		}
		entity.Arguments, entity.ArgOrder = args, order
		entity.Repeatable = d.Repeatable
		for _, loc := range d.Locations {
			entity.Locations = append(entity.Locations, string(loc))
		}
	}
	return nil
}

/*
lowerFields lowers a FieldDef map, including each field's own argument
directives' ARGUMENT_DEFINITION target kind.
*/
func lowerFields(defs map[string]ast.FieldDef, order []string, reg *typeRegistry) (map[string]*ObjectField, []string, error) {
	out := make(map[string]*ObjectField, len(defs))
	for _, name := range order {
		field, err := lowerFieldDef(defs[name], reg, locFieldDefinition)
		if err != nil {
			return nil, nil, err
		}
		out[name] = field
	}
	return out, order, nil
}

/*
resolveRootOperationTypes binds Query/Mutation/Subscription to their
object types. Default names Query/Mutation/Subscription apply when no
SchemaDefinition is present (invariant 5).
*/
func resolveRootOperationTypes(server *ServerSchema, reg *typeRegistry, schemaDef *ast.SchemaDefinition) error {
	queryName, mutationName, subName := "Query", "Mutation", "Subscription"

	if schemaDef != nil {
		if schemaDef.RootTypes.Query != nil {
			queryName = schemaDef.RootTypes.Query.Name
		}
		if schemaDef.RootTypes.Mutation != nil {
			mutationName = schemaDef.RootTypes.Mutation.Name
		} else {
			mutationName = ""
		}
		if schemaDef.RootTypes.Subscription != nil {
			subName = schemaDef.RootTypes.Subscription.Name
		} else {
			subName = ""
		}
	}

	bind := func(name string, required bool) (*ObjectType, error) {
		if name == "" {
			return nil, nil
		}
		obj, ok := server.Objects[name]
		if !ok {
			if !required {
				return nil, nil
			}
			var loc token.Location
			if schemaDef != nil {
				loc = schemaDef.Loc.StartToken.Loc
			}
			return nil, &Error{Kind: RootOperationNotObject, Location: loc,
				Message: "root operation type \"" + name + "\" does not resolve to an object type"}
		}
		return obj, nil
	}

	// A root operation type is only required - and a missing/wrong-kind
	// name is only an error - when a schema{} block names it explicitly.
	// Otherwise the default name is an optional convenience: bind it if
	// an object of that name happens to exist, stay nil if it doesn't.
	// That fallback applies to every operation when there is no schema{}
	// block; when the block omits query the default "Query" still binds,
	// but an omitted mutation or subscription stays nil.
	query, err := bind(queryName, schemaDef != nil && schemaDef.RootTypes.Query != nil)
	if err != nil {
		return err
	}
	mutation, err := bind(mutationName, schemaDef != nil && schemaDef.RootTypes.Mutation != nil)
	if err != nil {
		return err
	}
	sub, err := bind(subName, schemaDef != nil && schemaDef.RootTypes.Subscription != nil)
	if err != nil {
		return err
	}

	server.Query, server.Mutation, server.Subscription = query, mutation, sub
	return nil
}
