/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/lexer"
	"github.com/krotik/gqltool/internal/token"
)

func parseServerSrc(t *testing.T, src string) (*ast.FileNodes, error) {
	t.Helper()
	sf := &token.SourceFile{Filepath: "test", Buffer: src}
	tokens, err := lexer.Lex(sf)
	require.NoError(t, err)
	return ParseServer(tokens, sf)
}

func TestMinimalObject(t *testing.T) {
	file, err := parseServerSrc(t, `type Query { hello: String }`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 1)

	obj, ok := file.Definitions[0].(ast.ObjectType)
	require.True(t, ok)
	assert.Equal(t, "Query", obj.Name.Name)
	require.Contains(t, obj.Fields, "hello")

	named, ok := obj.Fields["hello"].Type.(ast.NamedTypeRef)
	require.True(t, ok)
	assert.Equal(t, "String", named.Name.Name)
	assert.True(t, named.Nullable())
}

func TestNonNullList(t *testing.T) {
	file, err := parseServerSrc(t, `type Q { xs: [Int!]! }`)
	require.NoError(t, err)

	obj := file.Definitions[0].(ast.ObjectType)
	list, ok := obj.Fields["xs"].Type.(ast.ListTypeRef)
	require.True(t, ok)
	assert.False(t, list.Nullable())

	inner, ok := list.Inner.(ast.NamedTypeRef)
	require.True(t, ok)
	assert.Equal(t, "Int", inner.Name.Name)
	assert.False(t, inner.Nullable())
}

func TestInterfaceUnionEnumScalar(t *testing.T) {
	file, err := parseServerSrc(t, `
		interface Node { id: ID! }
		union Media = Photo | Video
		enum Status { ACTIVE INACTIVE }
		scalar DateTime
	`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 4)

	iface := file.Definitions[0].(ast.InterfaceType)
	assert.Equal(t, "Node", iface.Name.Name)

	union := file.Definitions[1].(ast.UnionType)
	require.Len(t, union.Members, 2)
	assert.Equal(t, "Photo", union.Members[0].Name)
	assert.Equal(t, "Video", union.Members[1].Name)

	enum := file.Definitions[2].(ast.EnumType)
	require.Len(t, enum.Values, 2)
	assert.Equal(t, "ACTIVE", enum.Values[0].Name.Name)

	scalar := file.Definitions[3].(ast.ScalarType)
	assert.Equal(t, "DateTime", scalar.Name.Name)
}

func TestDirectiveDefinitionAndSchema(t *testing.T) {
	file, err := parseServerSrc(t, `
		directive @deprecated(reason: String = "unused") repeatable on FIELD_DEFINITION | ENUM_VALUE
		schema { query: Query mutation: Mutation }
	`)
	require.NoError(t, err)
	require.Len(t, file.Definitions, 2)

	dd := file.Definitions[0].(ast.DirectiveDefinition)
	assert.True(t, dd.Repeatable)
	require.Len(t, dd.Locations, 2)
	assert.Contains(t, dd.Arguments, "reason")

	sd := file.Definitions[1].(ast.SchemaDefinition)
	require.NotNil(t, sd.RootTypes.Query)
	assert.Equal(t, "Query", sd.RootTypes.Query.Name)
	require.NotNil(t, sd.RootTypes.Mutation)
}

func TestExtendRequiresBody(t *testing.T) {
	_, err := parseServerSrc(t, `type Q { a: Int } extend type Q`)
	require.Error(t, err)
}

func TestExtendAddsFields(t *testing.T) {
	file, err := parseServerSrc(t, `type Q { a: Int } extend type Q { b: String }`)
	require.NoError(t, err)
	require.Len(t, file.Extensions, 1)
	assert.Equal(t, "Q", file.Extensions[0].TargetName)
	assert.Contains(t, file.Extensions[0].Fields, "b")
}

func TestDuplicateSchemaDefinitionRejected(t *testing.T) {
	_, err := parseServerSrc(t, `
		schema { query: Query }
		schema { query: Query }
	`)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, DuplicateDefinition, perr.Kind)
}

func TestKeywordAsDefinitionNameRejected(t *testing.T) {
	_, err := parseServerSrc(t, `type type { a: Int }`)
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, IdentifierIsKeyword, perr.Kind)
}

func TestEmptyArgumentListIsSyntaxError(t *testing.T) {
	_, err := parseServerSrc(t, `type Q { a(): Int }`)
	require.Error(t, err)
}

func TestDescriptionAttachesToDefinition(t *testing.T) {
	file, err := parseServerSrc(t, `"A query root" type Query { hello: String }`)
	require.NoError(t, err)
	obj := file.Definitions[0].(ast.ObjectType)
	assert.Equal(t, "A query root", obj.Description)
}

func TestTrailingCommasPermitted(t *testing.T) {
	file, err := parseServerSrc(t, `type Q { a(x: Int, y: Int,): String, }`)
	require.NoError(t, err)
	obj := file.Definitions[0].(ast.ObjectType)
	require.Contains(t, obj.Fields, "a")
	assert.Len(t, obj.Fields["a"].Arguments, 2)
}
