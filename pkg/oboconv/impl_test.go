/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboconv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

func TestTagProperties(t *testing.T) {
	require := require.New(t)

	for tag, p := range tagProperties {
		back, ok := PropertyTag(p)
		require.True(ok, tag)
		require.Equal(tag, back)
	}

	p, ok := TagProperty(obodoc.Tag_Def)
	require.True(ok)
	require.Equal(owl.IAODefinition, p)

	_, ok = TagProperty(obodoc.Tag_IsA)
	require.False(ok)
}

func TestSynonyms(t *testing.T) {
	require := require.New(t)

	for _, scope := range []string{obodoc.ScopeExact, obodoc.ScopeNarrow, obodoc.ScopeBroad, obodoc.ScopeRelated} {
		s, ok := SynonymScope(SynonymProperty(scope))
		require.True(ok)
		require.Equal(scope, s)
	}
	require.Equal(owl.OboInOwlHasRelatedSynonym, SynonymProperty(""))

	_, ok := SynonymScope(owl.RDFSLabel)
	require.False(ok)
}

func TestCharacteristics(t *testing.T) {
	require := require.New(t)

	c, ok := TagCharacteristic(obodoc.Tag_IsTransitive)
	require.True(ok)
	require.Equal(owl.Characteristic_Transitive, c)

	tag, ok := CharacteristicTag(owl.Characteristic_InverseFunctional)
	require.True(ok)
	require.Equal(obodoc.Tag_IsInverseFunctional, tag)

	_, ok = CharacteristicTag(owl.Characteristic_Asymmetric)
	require.False(ok)
}

func TestGeneric(t *testing.T) {
	require := require.New(t)

	p := GenericProperty("my-tag")
	require.Equal(owl.IRI("http://www.geneontology.org/formats/oboInOwl#my-tag"), p)
	name, ok := GenericName(p)
	require.True(ok)
	require.Equal("my-tag", name)

	_, ok = GenericName(owl.RDFSLabel)
	require.False(ok)
}

func TestDiagnostic(t *testing.T) {
	require := require.New(t)

	d := Diagnostic{Kind: DiagnosticKind_Duplicate, FrameID: "X:1", Tag: "name", Message: "twice"}
	require.Equal("duplicate [X:1] name: twice", d.String())
	require.Equal("untranslatable: axiom", Diagnostic{Kind: DiagnosticKind_Untranslatable, Message: "axiom"}.String())

	called := false
	var h DuplicateHandler = DuplicateHandlerFunc(func(*obodoc.Frame, *obodoc.Clause) bool {
		called = true
		return false
	})
	require.False(h.HandleDuplicateClause(nil, nil))
	require.True(called)
}
