/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package macroexp

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/obo2owl"
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/oboparser"
	"github.com/voedger/oboformat/pkg/owl"
)

//go:embed testdata/macros.obo
var macrosObo string

const (
	test2       = owl.Class(owl.NsObo + "TEST_2")
	test3       = owl.Class(owl.NsObo + "TEST_3")
	test4       = owl.Class(owl.NsObo + "TEST_4")
	test5       = owl.Class(owl.NsObo + "TEST_5")
	membrane    = owl.Class(owl.NsObo + "GO_0005886")
	human       = owl.Class(owl.NsObo + "NCBITaxon_9606")
	hasPart     = owl.ObjectProperty(owl.NsObo + "BFO_0000051")
	overlaps    = owl.ObjectProperty(owl.NsObo + "RO_0002104")
	neverIn     = owl.ObjectProperty(owl.NsObo + "RO_0002161")
	onlyInTaxon = owl.ObjectProperty(owl.NsObo + "RO_0002162")
)

func load(t *testing.T, text string) *owl.Ontology {
	doc, err := oboparser.ParseString(text)
	require.NoError(t, err)
	res, err := obo2owl.Convert(doc, obo2owl.Options{})
	require.NoError(t, err)
	return res.Ontology
}

// overlapping returns the expansion of `overlaps_plasma_membrane some y`
func overlapping(y owl.ClassExpression) owl.ClassExpression {
	return owl.Some(hasPart, owl.NewIntersectionOf(membrane, owl.Some(hasPart, y)))
}

func TestExpandAll(t *testing.T) {
	req := require.New(t)

	o := load(t, macrosObo)
	before := o.AxiomCount()
	res := ExpandAll(o, Options{})
	req.Same(o, res.Ontology)
	req.Empty(res.Diagnostics)

	t.Run("expression templates", func(t *testing.T) {
		r := require.New(t)
		expanded := owl.NewSubClassOf(test3, overlapping(test4))
		r.True(o.ContainsAxiom(expanded), o.String())
		r.Equal("SubClassOf(<http://purl.obolibrary.org/obo/TEST_3> "+
			"ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/BFO_0000051> "+
			"ObjectIntersectionOf(<http://purl.obolibrary.org/obo/GO_0005886> "+
			"ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/BFO_0000051> <http://purl.obolibrary.org/obo/TEST_4>))))",
			expanded.String())
		r.True(o.ContainsAxiom(owl.NewSubClassOf(test4, overlapping(test2))))
		r.True(o.ContainsAxiom(owl.NewEquivalentClasses([]owl.ClassExpression{
			test5,
			owl.NewIntersectionOf(membrane, overlapping(test4)),
		})))

		for _, ax := range res.Removed {
			r.False(o.ContainsAxiom(ax), "%s must be removed", ax)
		}
		r.Len(res.Removed, 3)
		r.Len(res.Added, 4)
		r.Equal(before+1, o.AxiomCount())
	})

	t.Run("assertion templates", func(t *testing.T) {
		r := require.New(t)
		disjoint := owl.NewDisjointClasses([]owl.ClassExpression{test2, owl.Some(onlyInTaxon, human)})
		r.True(o.ContainsAxiom(disjoint), o.String())
		r.Contains(res.Added, owl.Axiom(disjoint))
		source := owl.NewAnnotation(owl.OboInOwlSource, owl.StringLiteral("PMID:1"))
		r.True(o.ContainsAxiom(owl.NewSubClassOf(test2, owl.Some(neverIn, human), source)), "source axiom is kept")
		r.False(o.ContainsAxiom(owl.NewSubClassOf(test2, owl.Some(neverIn, human))))
	})
}

func TestExpandWithAnnotations(t *testing.T) {
	require := require.New(t)

	o := load(t, macrosObo)
	res := ExpandAll(o, Options{PreserveAnnotations: true, AddExpansionMarker: true})
	require.Empty(res.Diagnostics)

	source := owl.NewAnnotation(owl.OboInOwlSource, owl.StringLiteral("PMID:1"))
	disjoint := owl.NewDisjointClasses([]owl.ClassExpression{test2, owl.Some(onlyInTaxon, human)}, source, ExpansionMarker)
	require.True(o.ContainsAxiom(disjoint), o.String())
	require.Len(disjoint.Annotations(), 2)

	expanded := owl.NewSubClassOf(test4, overlapping(test2), ExpansionMarker)
	require.True(o.ContainsAxiom(expanded), o.String())
}

func TestCreateGCIOntology(t *testing.T) {
	require := require.New(t)

	o := load(t, macrosObo)
	before := o.AxiomCount()
	res := CreateGCIOntology(o, Options{})
	require.Empty(res.Diagnostics)
	require.Equal(before, o.AxiomCount(), "source ontology must be intact")

	gci := res.Ontology
	require.NotSame(o, gci)
	require.True(gci.IsAnonymous())
	require.Equal(3, gci.AxiomCount(), gci.String())
	require.Len(res.Added, 3)
	require.Empty(res.Removed)

	require.True(gci.ContainsAxiom(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Some(overlaps, test4), overlapping(test4)})))
	require.True(gci.ContainsAxiom(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Some(overlaps, test2), overlapping(test2)})))
	require.True(gci.ContainsAxiom(owl.NewDisjointClasses([]owl.ClassExpression{test2, owl.Some(onlyInTaxon, human)})))
}

func TestExpandNothing(t *testing.T) {
	require := require.New(t)

	o := load(t, `ontology: test

[Term]
id: TEST:1
is_a: TEST:2
`)
	before := o.String()
	res := ExpandAll(o, Options{})
	require.Empty(res.Added)
	require.Empty(res.Removed)
	require.Empty(res.Diagnostics)
	require.Equal(before, o.String())
}

func TestInvalidTemplates(t *testing.T) {
	require := require.New(t)

	o := load(t, `ontology: test

[Term]
id: TEST:1
relationship: broken TEST:2
relationship: unknown TEST:2

[Typedef]
id: broken
xref: RO:0000001
expand_expression_to: "BFO_0000051 some (" []

[Typedef]
id: unknown
xref: RO:0000002
expand_assertion_to: "Class: ?X SubClassOf: BFO_0000051 some ?Z" []
`)
	res := ExpandAll(o, Options{})
	require.Len(res.Diagnostics, 2)
	for _, d := range res.Diagnostics {
		require.Equal(oboconv.DiagnosticKind_Invalid, d.Kind)
	}
	require.Equal("RO:0000001", res.Diagnostics[0].FrameID)
	require.Equal("expand_expression_to", res.Diagnostics[0].Tag)
	require.Equal("RO:0000002", res.Diagnostics[1].FrameID)
	require.Equal("expand_assertion_to", res.Diagnostics[1].Tag)
	require.Empty(res.Added)
}
