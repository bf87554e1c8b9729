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

func parseClientSrc(t *testing.T, src string) ([]ast.ClientDefinition, error) {
	t.Helper()
	sf := &token.SourceFile{Filepath: "test", Buffer: src}
	tokens, err := lexer.Lex(sf)
	require.NoError(t, err)
	return ParseClient(tokens, sf)
}

func TestSimpleQuery(t *testing.T) {
	defs, err := parseClientSrc(t, `
		query GetHero($id: ID!) {
			hero(id: $id) {
				name
				friends { name }
			}
		}
	`)
	require.NoError(t, err)
	require.Len(t, defs, 1)

	op := defs[0].(ast.OperationDefinition)
	assert.Equal(t, ast.Query, op.OpType)
	assert.Equal(t, "GetHero", op.Name)
	require.Len(t, op.Variables, 1)
	assert.Equal(t, "id", op.Variables[0].Name.Name)

	require.Len(t, op.SelectionSet, 1)
	hero := op.SelectionSet[0].(ast.FieldSelection)
	assert.Equal(t, "hero", hero.Name.Name)
	varRef, ok := hero.Arguments["id"].(ast.VariableRefLiteral)
	require.True(t, ok)
	assert.Equal(t, "id", varRef.Name)
	require.Len(t, hero.SelectionSet, 2)
}

func TestQueryShorthand(t *testing.T) {
	defs, err := parseClientSrc(t, `{ hello }`)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	op := defs[0].(ast.OperationDefinition)
	assert.Equal(t, ast.Query, op.OpType)
	assert.Equal(t, "", op.Name)
}

func TestMultipleShorthandRejected(t *testing.T) {
	_, err := parseClientSrc(t, `{ hello } { world }`)
	require.Error(t, err)
}

func TestFragmentAndSpreads(t *testing.T) {
	defs, err := parseClientSrc(t, `
		fragment HeroFields on Character {
			name
			... on Droid { primaryFunction }
			... { appearsIn }
		}
		query {
			hero { ...HeroFields }
		}
	`)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	frag := defs[0].(ast.FragmentDefinition)
	assert.Equal(t, "HeroFields", frag.Name)
	assert.Equal(t, "Character", frag.TypeCondition.Name)
	require.Len(t, frag.SelectionSet, 3)

	inlineWithCond := frag.SelectionSet[1].(ast.InlineFragment)
	require.NotNil(t, inlineWithCond.TypeCondition)
	assert.Equal(t, "Droid", inlineWithCond.TypeCondition.Name)

	inlineNoCond := frag.SelectionSet[2].(ast.InlineFragment)
	assert.Nil(t, inlineNoCond.TypeCondition)

	op := defs[1].(ast.OperationDefinition)
	hero := op.SelectionSet[0].(ast.FieldSelection)
	spread := hero.SelectionSet[0].(ast.FragmentSpread)
	assert.Equal(t, "HeroFields", spread.FragmentName)
}

func TestAliasedField(t *testing.T) {
	defs, err := parseClientSrc(t, `{ aliasName: realName }`)
	require.NoError(t, err)
	op := defs[0].(ast.OperationDefinition)
	f := op.SelectionSet[0].(ast.FieldSelection)
	assert.Equal(t, "aliasName", f.Alias)
	assert.Equal(t, "realName", f.Name.Name)
	assert.Equal(t, "aliasName", f.ResponseKey())
}

func TestEmptySelectionSetRejected(t *testing.T) {
	_, err := parseClientSrc(t, `{ }`)
	require.Error(t, err)
}
