/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package schema

/*
Directive target-kind tags used for the directive-location match in
spec.md §4.4 "Directive validation". Server-side tags mirror
ast.ServerDefinition.Kind(); the field/argument/value-level tags below
have no AST-node Kind() counterpart since they apply below the
top-level definition. Client-side selections are resolved shallowly
(no per-selection directive-location validation - see DESIGN.md), so
no client-side tags are declared here.
*/
const (
	locScalar          = "SCALAR"
	locObject          = "OBJECT"
	locFieldDefinition = "FIELD_DEFINITION"
	locArgDefinition   = "ARGUMENT_DEFINITION"
	locInterface       = "INTERFACE"
	locUnion           = "UNION"
	locEnum            = "ENUM"
	locEnumValue       = "ENUM_VALUE"
	locInputObject     = "INPUT_OBJECT"
	locInputFieldDef   = "INPUT_FIELD_DEFINITION"
)
