/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krotik/gqltool/internal/ast"
	"github.com/krotik/gqltool/internal/lexer"
	"github.com/krotik/gqltool/internal/parser"
	"github.com/krotik/gqltool/internal/schema"
	"github.com/krotik/gqltool/internal/token"
)

func mustResolve(t *testing.T, src string) *schema.Schema {
	t.Helper()
	sf := &token.SourceFile{Filepath: "test", Buffer: src}
	tokens, err := lexer.Lex(sf)
	require.NoError(t, err)
	file, err := parser.ParseServer(tokens, sf)
	require.NoError(t, err)
	sch, err := schema.Resolve([]*ast.FileNodes{file}, nil)
	require.NoError(t, err)
	return sch
}

func TestDiffIdenticalSchemasEmpty(t *testing.T) {
	src := `type Query { hello: String }`
	a := mustResolve(t, src)
	b := mustResolve(t, src)
	r := Diff(&a.Server, &b.Server)
	assert.True(t, r.Empty())
}

func TestDiffAddedField(t *testing.T) {
	a := mustResolve(t, `type Query { hello: String }`)
	b := mustResolve(t, `type Query { hello: String world: String }`)
	r := Diff(&a.Server, &b.Server)
	require.NotEmpty(t, r.Entries)

	var found bool
	for _, e := range r.Entries {
		if e.Path == "Objects.Query.Fields.world" && e.Kind == Added {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDiffRemovedType(t *testing.T) {
	a := mustResolve(t, `type Query { hello: String } type Extra { x: Int }`)
	b := mustResolve(t, `type Query { hello: String }`)
	r := Diff(&a.Server, &b.Server)

	var found bool
	for _, e := range r.Entries {
		if e.Path == "Objects.Extra" && e.Kind == Removed {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDiffChangedFieldType(t *testing.T) {
	a := mustResolve(t, `type Query { hello: String }`)
	b := mustResolve(t, `type Query { hello: Int }`)
	r := Diff(&a.Server, &b.Server)

	require.Len(t, r.Entries, 1)
	assert.Equal(t, "Objects.Query.Fields.hello", r.Entries[0].Path)
	assert.Equal(t, Changed, r.Entries[0].Kind)

	before, after := r.Entries[0].Pretty()
	assert.NotEmpty(t, before)
	assert.NotEmpty(t, after)
}

func TestDiffRunIDIsUnique(t *testing.T) {
	a := mustResolve(t, `type Query { hello: String }`)
	r1 := Diff(&a.Server, &a.Server)
	r2 := Diff(&a.Server, &a.Server)
	assert.NotEqual(t, r1.RunID, r2.RunID)
}
