/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	tests := []struct {
		id  string
		iri string
	}{
		{"GO:001", "http://purl.obolibrary.org/obo/GO_001"},
		{"My_Ont:FOO_002", "http://purl.obolibrary.org/obo/My_Ont#_FOO_002"},
		{"My_Ont:002", "http://purl.obolibrary.org/obo/My_Ont_002"},
		{"003", "http://purl.obolibrary.org/obo/test#003"},
		{"part_of", "http://purl.obolibrary.org/obo/test#part_of"},
		{"OBO_REL:part_of", "http://purl.obolibrary.org/obo/OBO_REL#_part_of"},
		{"http://purl.obolibrary.org/testont", "http://purl.obolibrary.org/testont"},
		{"MGI:MGI:1", "http://purl.obolibrary.org/obo/MGI_MGI%3A1"},
		{"owl:Thing", "http://www.w3.org/2002/07/owl#Thing"},
		{"rdfs:label", "http://www.w3.org/2000/01/rdf-schema#label"},
	}
	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			require := require.New(t)
			require.Equal(test.iri, OboIDToIRI(test.id, "test"))
			require.Equal(test.id, IRIToOboID(test.iri))
		})
	}

	t.Run("full IRI to compact id", func(t *testing.T) {
		require.Equal(t, "BFO:0000050", IRIToOboID("http://purl.obolibrary.org/obo/BFO_0000050"))
		require.Equal(t, "http://purl.obolibrary.org/obo/BFO_0000050", OboIDToIRI("http://purl.obolibrary.org/obo/BFO_0000050", "test"))
	})

	t.Run("arbitrary URL fragment", func(t *testing.T) {
		require.Equal(t, "abcdef", IRIToOboID("http://purl.obolibrary.org/obo/alternate#abcdef"))
		require.Equal(t, "http://example.org/", IRIToOboID("http://example.org/"))
	})
}

func TestIDSpaces(t *testing.T) {
	require := require.New(t)

	m := NewMapper("test", map[string]string{
		"Wiki":  "http://en.wikipedia.org/wiki/",
		"WikiX": "http://en.wikipedia.org/wiki/X_",
	})
	require.Equal("http://en.wikipedia.org/wiki/Cell", m.IRI("Wiki:Cell"))
	require.Equal("Wiki:Cell", m.ID("http://en.wikipedia.org/wiki/Cell"))
	require.Equal("WikiX:Cell", m.ID("http://en.wikipedia.org/wiki/X_Cell"), "longest idspace wins")
	require.Equal("GO:1", m.ID("http://purl.obolibrary.org/obo/GO_1"))
	require.Equal("test", m.Ontology())
}

func TestOntologyIRIs(t *testing.T) {
	require := require.New(t)

	require.Equal("http://purl.obolibrary.org/obo/go.owl", OntologyIRI("go"))
	require.Equal("http://purl.obolibrary.org/obo/go.owl", OntologyIRI("go.owl"))
	require.Equal("http://example.org/x", OntologyIRI("http://example.org/x"))
	require.Equal("go", OntologyIDFromIRI("http://purl.obolibrary.org/obo/go.owl"))
	require.Equal("http://example.org/x", OntologyIDFromIRI("http://example.org/x"))

	v := VersionIRI("go", "2024-01-01")
	require.Equal("http://purl.obolibrary.org/obo/go/2024-01-01/go.owl", v)
	require.Equal("2024-01-01", VersionFromIRI("go", v))
	require.Equal("http://example.org/v1", VersionFromIRI("go", "http://example.org/v1"))
}
