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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/lexer"
	"github.com/krotik/gqltool/internal/parser"
	"github.com/krotik/gqltool/internal/token"
)

func mustResolveServer(t *testing.T, srcs ...string) *Schema {
	t.Helper()
	var files []*ast.FileNodes
	for i, src := range srcs {
		sf := &token.SourceFile{Filepath: "test", Buffer: src}
		tokens, err := lexer.Lex(sf)
		require.NoError(t, err)
		file, err := parser.ParseServer(tokens, sf)
		require.NoErrorf(t, err, "file %d", i)
		files = append(files, file)
	}
	sch, err := Resolve(files, nil)
	require.NoError(t, err)
	return sch
}

func resolveServerErr(t *testing.T, srcs ...string) error {
	t.Helper()
	var files []*ast.FileNodes
	for _, src := range srcs {
		sf := &token.SourceFile{Filepath: "test", Buffer: src}
		tokens, err := lexer.Lex(sf)
		require.NoError(t, err)
		file, err := parser.ParseServer(tokens, sf)
		require.NoError(t, err)
		files = append(files, file)
	}
	_, err := Resolve(files, nil)
	return err
}

func TestResolveMinimalSchema(t *testing.T) {
	sch := mustResolveServer(t, `type Query { hello: String }`)
	require.NotNil(t, sch.Server.Query)
	assert.Equal(t, "Query", sch.Server.Query.Name)
	require.Contains(t, sch.Server.Query.Fields, "hello")
}

func TestResolveUnknownType(t *testing.T) {
	err := resolveServerErr(t, `type Query { hello: Ghost }`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnknownType, serr.Kind)
}

func TestResolveDuplicateType(t *testing.T) {
	err := resolveServerErr(t, `
		type Query { hello: String }
		type Query { world: String }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateType, serr.Kind)
}

func TestResolveDuplicateFieldViaExtension(t *testing.T) {
	err := resolveServerErr(t, `
		type Query { hello: String }
		extend type Query { hello: Int }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateField, serr.Kind)
}

func TestResolveExtensionCommutativity(t *testing.T) {
	// Testable Property 6: two extensions adding disjoint fields to the
	// same base type yield the same schema regardless of file order.
	a := `type Query { hello: String }`
	b := `extend type Query { foo: Int }`
	c := `extend type Query { bar: Int }`

	sch1 := mustResolveServer(t, a, b, c)
	sch2 := mustResolveServer(t, a, c, b)

	opts := cmp.Options{
		cmp.AllowUnexported(ObjectLiteralSpec{}, ObjectArraySpec{}, InputLiteralSpec{}, InputArraySpec{}),
		cmpopts.IgnoreFields(ObjectType{}, "Implements"),
		cmp.Comparer(func(a, b ast.NodeLocation) bool { return true }),
		cmpopts.SortSlices(func(a, b string) bool { return a < b }),
		cmpopts.EquateEmpty(),
	}
	diff := cmp.Diff(sch1.Server.Objects["Query"].Fields, sch2.Server.Objects["Query"].Fields, opts)
	assert.Empty(t, diff)
}

func TestResolveInterfaceNotSatisfiedMissingField(t *testing.T) {
	err := resolveServerErr(t, `
		interface Node { id: ID! }
		type User implements Node { name: String }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InterfaceNotSatisfied, serr.Kind)
}

func TestResolveInterfaceSatisfiedCovariant(t *testing.T) {
	sch := mustResolveServer(t, `
		interface Node { id: ID! }
		type User implements Node { id: ID! name: String }
		type Query { node: Node }
	`)
	require.NotNil(t, sch.Server.Objects["User"])
	assert.Len(t, sch.Server.Interfaces["Node"].Implementers, 1)
}

func TestResolveInputCycle(t *testing.T) {
	err := resolveServerErr(t, `
		input A { b: B! }
		input B { a: A! }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InputCycle, serr.Kind)
}

func TestResolveInputSelfReferenceThroughListIsFine(t *testing.T) {
	sch := mustResolveServer(t, `
		input Tree { children: [Tree!] }
		type Query { hello: String }
	`)
	require.Contains(t, sch.Server.Inputs, "Tree")
}

func TestResolveInputSelfReferenceThroughNullableIsFine(t *testing.T) {
	sch := mustResolveServer(t, `
		input Node { parent: Node }
		type Query { hello: String }
	`)
	require.Contains(t, sch.Server.Inputs, "Node")
}

func TestResolveIdempotence(t *testing.T) {
	// Testable Property 4: resolving the same source twice yields
	// structurally identical schemas.
	src := `
		type Query { user(id: ID!): User }
		type User { id: ID! name: String friends: [User!]! }
	`
	sch1 := mustResolveServer(t, src)
	sch2 := mustResolveServer(t, src)

	opts := cmp.Options{
		cmp.AllowUnexported(ObjectLiteralSpec{}, ObjectArraySpec{}, InputLiteralSpec{}, InputArraySpec{}),
		cmp.Comparer(func(a, b ast.NodeLocation) bool { return true }),
		cmpopts.IgnoreFields(InterfaceType{}, "Implementers"),
		cmpopts.EquateEmpty(),
	}
	diff := cmp.Diff(sch1.Server.Objects, sch2.Server.Objects, opts)
	assert.Empty(t, diff)
}

func TestResolveDirectiveTargetMismatch(t *testing.T) {
	err := resolveServerErr(t, `
		directive @onField on FIELD_DEFINITION
		type Query @onField { hello: String }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DirectiveTargetMismatch, serr.Kind)
}

func TestResolveNonRepeatableDirectiveRepeated(t *testing.T) {
	err := resolveServerErr(t, `
		directive @once on FIELD_DEFINITION
		type Query { hello: String @once @once }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, NonRepeatableDirectiveRepeated, serr.Kind)
}

func TestResolveRepeatableDirectiveAllowed(t *testing.T) {
	sch := mustResolveServer(t, `
		directive @tag(name: String!) repeatable on FIELD_DEFINITION
		type Query { hello: String @tag(name: "a") @tag(name: "b") }
	`)
	assert.Len(t, sch.Server.Objects["Query"].Fields["hello"].Directives, 2)
}

func TestResolveArgumentDirectiveAllowed(t *testing.T) {
	sch := mustResolveServer(t, `
		directive @deprecated(reason: String) on ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION
		input Filter { legacyId: ID @deprecated(reason: "use id") }
		type Query { user(id: ID! legacyId: ID @deprecated(reason: "use id")): String }
	`)
	assert.Len(t, sch.Server.Inputs["Filter"].Fields["legacyId"].Directives, 1)
	args := sch.Server.Objects["Query"].Fields["user"].Spec.(ObjectCallableSpec).Arguments
	assert.Len(t, args["legacyId"].Directives, 1)
}

func TestResolveArgumentDirectiveTargetMismatch(t *testing.T) {
	err := resolveServerErr(t, `
		directive @onField on FIELD_DEFINITION
		type Query { user(id: ID! @onField): String }
	`)
	require.Error(t, err)
	serr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DirectiveTargetMismatch, serr.Kind)
}

func TestResolveExplicitSchemaBlock(t *testing.T) {
	sch := mustResolveServer(t, `
		schema { query: RootQuery mutation: RootMutation }
		type RootQuery { hello: String }
		type RootMutation { setHello(value: String!): String }
	`)
	require.NotNil(t, sch.Server.Query)
	assert.Equal(t, "RootQuery", sch.Server.Query.Name)
	require.NotNil(t, sch.Server.Mutation)
	assert.Equal(t, "RootMutation", sch.Server.Mutation.Name)
	assert.Nil(t, sch.Server.Subscription)
}

func TestResolveReferenceClosure(t *testing.T) {
	// Testable Property 5: every type reachable from a root operation
	// type resolves to an entry in the registry's dictionaries.
	sch := mustResolveServer(t, `
		type Query { pet: Pet }
		interface Pet { name: String! }
		type Dog implements Pet { name: String! breed: String }
	`)
	petField := sch.Server.Objects["Query"].Fields["pet"]
	spec, ok := petField.Spec.(ObjectLiteralSpec)
	require.True(t, ok)
	iface, ok := spec.Type.(*InterfaceType)
	require.True(t, ok)
	assert.Equal(t, "Pet", iface.Name)
	assert.Contains(t, sch.Server.Interfaces, "Pet")
	assert.Contains(t, sch.Server.Objects, "Dog")
}
