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
resolveClient binds operations and fragments from every client-mode file
against the server registry. Resolution here is intentionally shallow:
it establishes the fragment/operation name tables and resolves a
fragment's type condition through lookupObjectType (so a scalar or enum
name is accepted as well as an object, interface or union), without
walking every selection against its parent field's return type - none
of spec.md §3.6's invariants are phrased in terms of selection-level
validation, so the deeper checks are left for a future validate pass
(SPEC_FULL.md §D.9).
*/
func resolveClient(clientFiles [][]ast.ClientDefinition, reg *typeRegistry) (*ClientSchema, error) {
	out := &ClientSchema{
		Operations: map[string]*ResolvedOperation{},
		Fragments:  map[string]*ResolvedFragment{},
	}

	for _, defs := range clientFiles {
		for _, def := range defs {
			switch d := def.(type) {
			case ast.OperationDefinition:
				op := d
				key := op.Name
				if key == "" {
					key = "(shorthand)"
				}
				out.Operations[key] = &ResolvedOperation{Def: &op}

			case ast.FragmentDefinition:
				fd := d
				target, err := reg.lookupObjectType(fd.TypeCondition)
				if err != nil {
					return nil, err
				}
				out.Fragments[fd.Name] = &ResolvedFragment{Def: &fd, TypeCondition: target}
			}
		}
	}
	return out, nil
}
