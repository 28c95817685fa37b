/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboparser"
	"github.com/voedger/oboformat/pkg/owl"
)

//go:embed testdata/simple.obo
var simpleObo string

const (
	x1      = owl.IRI("http://purl.obolibrary.org/obo/X_0000001")
	x2      = owl.IRI("http://purl.obolibrary.org/obo/X_0000002")
	x3      = owl.IRI("http://purl.obolibrary.org/obo/X_0000003")
	x4      = owl.IRI("http://purl.obolibrary.org/obo/X_0000004")
	x5      = owl.IRI("http://purl.obolibrary.org/obo/X_0000005")
	partOf  = owl.IRI("http://purl.obolibrary.org/obo/BFO_0000050")
	hasPart = owl.IRI("http://purl.obolibrary.org/obo/simple#has_part")
)

func TestConvert(t *testing.T) {
	require := require.New(t)

	doc, err := oboparser.ParseString(simpleObo)
	require.NoError(err)
	res, err := Convert(doc, Options{})
	require.NoError(err)
	o := res.Ontology
	po := owl.ObjectProperty(partOf)

	requireAxioms := func(aa ...owl.Axiom) {
		for _, a := range aa {
			require.True(o.ContainsAxiom(a), "missing %s\n%s", a, o)
		}
	}

	t.Run("header", func(t *testing.T) {
		id := o.ID()
		require.Equal(owl.IRI("http://purl.obolibrary.org/obo/simple.owl"), id.IRI)
		require.Equal(owl.IRI("http://purl.obolibrary.org/obo/simple/2024-01-01/simple.owl"), id.VersionIRI)
		require.Equal([]owl.IRI{"http://purl.obolibrary.org/obo/common", "http://example.com/other.owl"}, o.Imports())
		require.Contains(o.Annotations(), owl.NewAnnotation(owl.OboInOwlHasOBOFormatVersion, owl.StringLiteral("1.2")))
		require.Contains(o.Annotations(), owl.NewAnnotation(owl.RDFSComment, owl.StringLiteral("fixture")))
		require.Contains(o.Annotations(), owl.NewAnnotation(oboconv.GenericProperty("default-namespace"), owl.StringLiteral("simple_ns")))

		slim := owl.IRI("http://purl.obolibrary.org/obo/simple#slim")
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_AnnotationProperty, slim),
			owl.NewSubAnnotationPropertyOf(slim, owl.OboInOwlSubsetProperty),
			owl.NewAnnotationAssertion(owl.RDFSComment, slim, owl.StringLiteral("A slim")),
			owl.NewDisjointClasses([]owl.ClassExpression{owl.Class(x1), owl.Class(x4)}),
		)
	})

	t.Run("annotations", func(t *testing.T) {
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_Class, x1),
			owl.NewAnnotationAssertion(owl.OboInOwlID, x1, owl.StringLiteral("X:0000001")),
			owl.NewAnnotationAssertion(owl.RDFSLabel, x1, owl.StringLiteral("one")),
			owl.NewAnnotationAssertion(owl.IAODefinition, x1, owl.StringLiteral("First."),
				owl.NewAnnotation(owl.OboInOwlHasDbXref, owl.StringLiteral("PMID:1"),
					owl.NewAnnotation(owl.RDFSLabel, owl.StringLiteral("a paper")))),
			owl.NewAnnotationAssertion(owl.RDFSComment, x1, owl.StringLiteral("a note"),
				owl.NewAnnotation(owl.OboInOwlSource, owl.StringLiteral("PMID:2"))),
			owl.NewAnnotationAssertion(owl.OboInOwlHasExactSynonym, x1, owl.StringLiteral("uno")),
			owl.NewAnnotationAssertion(owl.OboInOwlInSubset, x1, owl.IRI("http://purl.obolibrary.org/obo/simple#slim")),
			owl.NewAnnotationAssertion(owl.IRI("http://purl.obolibrary.org/obo/IAO_0000589"), x1, owl.StringLiteral("literal")),
			owl.NewAnnotationAssertion(owl.IRI("http://purl.obolibrary.org/obo/simple#seeAlso"), x1, x2),
			owl.NewAnnotationAssertion(oboconv.GenericProperty("my_tag"), x1, owl.StringLiteral("free text")),
			owl.NewAnnotationAssertion(owl.Deprecated, x3, owl.BoolLiteral(true)),
			owl.NewAnnotationAssertion(owl.IAOReplacedBy, x3, x1),
		)
		_, obsolete := o.AnnotationValue(x2, owl.Deprecated)
		require.False(obsolete)
	})

	t.Run("alt_id", func(t *testing.T) {
		alt := owl.IRI("http://purl.obolibrary.org/obo/X_0000099")
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_Class, alt),
			owl.NewAnnotationAssertion(owl.Deprecated, alt, owl.BoolLiteral(true)),
			owl.NewAnnotationAssertion(owl.IAOReplacedBy, alt, x1),
			owl.NewAnnotationAssertion(owl.IAOObsolescenceReason, alt, owl.IAOTermMerged),
		)
	})

	t.Run("class axioms", func(t *testing.T) {
		requireAxioms(
			owl.NewSubClassOf(owl.Class(x1), owl.Class(x2),
				owl.NewAnnotation(oboconv.GenericProperty("is_inferred"), owl.StringLiteral("true"))),
			owl.NewSubClassOf(owl.Class(x1), owl.Some(po, owl.Class(x2))),
			owl.NewSubClassOf(owl.Class(x1), owl.NewIntersectionOf(
				owl.Cardinality(owl.CardinalityKind_Min, 1, po, owl.Class(x3)),
				owl.Cardinality(owl.CardinalityKind_Max, 2, po, owl.Class(x3)),
			)),
			owl.NewSubClassOf(owl.Class(x1), owl.Only(po, owl.Class(x4))),
			owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(x2),
				owl.NewIntersectionOf(owl.Class(x1), owl.Some(po, owl.Class(x3)))}),
			owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(x4), owl.NewUnionOf(owl.Class(x1), owl.Class(x2))}),
			owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(x4), owl.Class(x5)}),
			owl.NewDisjointClasses([]owl.ClassExpression{owl.Class(x4), owl.Class(x2)}),
		)
	})

	t.Run("typedefs", func(t *testing.T) {
		hp := owl.ObjectProperty(hasPart)
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_ObjectProperty, partOf),
			owl.NewAnnotationAssertion(owl.OboInOwlShorthand, partOf, owl.StringLiteral("part_of")),
			owl.NewCharacteristic(owl.Characteristic_Transitive, po),
			owl.NewSubPropertyChainOf([]owl.PropertyExpression{po, po}, po),
			owl.NewSubPropertyChainOf([]owl.PropertyExpression{hp, po}, po),
			owl.NewObjectPropertyDomain(po, owl.Class(x1)),
			owl.NewObjectPropertyRange(po, owl.Class(x2)),
			owl.NewInverseObjectProperties(po, hp),
			owl.NewDeclaration(owl.EntityType_ObjectProperty, hasPart),
			owl.NewAnnotationAssertion(partOf, hasPart, x1),
		)
		require.False(o.ContainsAxiom(owl.NewAnnotationAssertion(owl.OboInOwlShorthand, hasPart, owl.StringLiteral("has_part"))))

		note := owl.IRI("http://purl.obolibrary.org/obo/simple#editor_note")
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_AnnotationProperty, note),
			owl.NewSubAnnotationPropertyOf(note, owl.IRI("http://purl.obolibrary.org/obo/X_0000009")),
		)
	})

	t.Run("instances", func(t *testing.T) {
		i1 := owl.IRI("http://purl.obolibrary.org/obo/I_1")
		requireAxioms(
			owl.NewDeclaration(owl.EntityType_NamedIndividual, i1),
			owl.NewClassAssertion(owl.Class(x1), i1),
			owl.NewObjectPropertyAssertion(po, i1, owl.IRI("http://purl.obolibrary.org/obo/I_2")),
		)
	})

	require.Empty(res.Diagnostics)
}

func TestGCI(t *testing.T) {
	require := require.New(t)

	doc, err := oboparser.ParseString(`ontology: gci

[Term]
id: X:0000001
relationship: part_of X:0000002 {gci_relation="part_of", gci_filler="X:0000003", source="PMID:1"}
relationship: part_of X:0000004 {gci_relation="part_of"}
relationship: part_of X:0000005 {cardinality="x"}
intersection_of: X:0000002
`)
	require.NoError(err)
	res, err := Convert(doc, Options{})
	require.NoError(err)

	po := owl.ObjectProperty("http://purl.obolibrary.org/obo/gci#part_of")
	sub := owl.NewIntersectionOf(owl.Class(x1), owl.Some(po, owl.Class(x3)))
	require.True(res.Ontology.ContainsAxiom(owl.NewSubClassOf(sub, owl.Some(po, owl.Class(x2)),
		owl.NewAnnotation(owl.OboInOwlSource, owl.StringLiteral("PMID:1")))))
	require.True(res.Ontology.ContainsAxiom(owl.NewSubClassOf(owl.Class(x1), owl.Some(po, owl.Class(x4)),
		owl.NewAnnotation(oboconv.GenericProperty("gci_relation"), owl.StringLiteral("part_of")))))

	require.Len(res.Diagnostics, 3)
	for _, d := range res.Diagnostics {
		require.Equal(oboconv.DiagnosticKind_Invalid, d.Kind)
		require.Equal("X:0000001", d.FrameID)
	}
}

func TestOntologyID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		require := require.New(t)
		doc, err := oboparser.ParseString("[Term]\nid: X:1\n")
		require.NoError(err)
		_, err = Convert(doc, Options{})
		require.ErrorIs(err, ErrMissingOntologyID)
	})
	t.Run("default", func(t *testing.T) {
		require := require.New(t)
		doc, err := oboparser.ParseString("[Term]\nid: X:1\n")
		require.NoError(err)
		res, err := Convert(doc, Options{DefaultOntologyID: "dflt"})
		require.NoError(err)
		require.Equal(owl.IRI("http://purl.obolibrary.org/obo/dflt.owl"), res.Ontology.ID().IRI)
	})
}

func TestImportedShorthands(t *testing.T) {
	require := require.New(t)

	ro, err := oboparser.ParseString("ontology: ro\n\n[Typedef]\nid: part_of\nxref: BFO:0000050\n")
	require.NoError(err)
	doc, err := oboparser.ParseString("ontology: x\nimport: ro\n\n[Term]\nid: X:0000001\nrelationship: part_of X:0000002\n")
	require.NoError(err)

	res, err := Convert(doc, Options{Imports: []*obodoc.OBODoc{ro}})
	require.NoError(err)
	require.True(res.Ontology.ContainsAxiom(owl.NewSubClassOf(owl.Class(x1), owl.Some(owl.ObjectProperty(partOf), owl.Class(x2)))))
}

func TestDuplicates(t *testing.T) {
	const src = "ontology: x\n\n[Term]\nid: X:0000001\nname: one\nname: two\nis_a: X:0000002\nis_a: X:0000002\n"

	t.Run("converted by default", func(t *testing.T) {
		require := require.New(t)
		doc, err := oboparser.ParseString(src)
		require.NoError(err)
		res, err := Convert(doc, Options{})
		require.NoError(err)
		require.True(res.Ontology.ContainsAxiom(owl.NewAnnotationAssertion(owl.RDFSLabel, x1, owl.StringLiteral("two"))))
		require.Len(res.Diagnostics, 2)
		require.Equal(oboconv.DiagnosticKind_Duplicate, res.Diagnostics[0].Kind)
	})

	t.Run("vetoed by handler", func(t *testing.T) {
		require := require.New(t)
		doc, err := oboparser.ParseString(src)
		require.NoError(err)

		h := &mockDuplicateHandler{}
		h.On("HandleDuplicateClause", mock.AnythingOfType("*obodoc.Frame"), mock.AnythingOfType("*obodoc.Clause")).Return(false).Twice()

		res, err := Convert(doc, Options{Duplicates: h})
		require.NoError(err)
		require.False(res.Ontology.ContainsAxiom(owl.NewAnnotationAssertion(owl.RDFSLabel, x1, owl.StringLiteral("two"))))
		require.True(res.Ontology.ContainsAxiom(owl.NewAnnotationAssertion(owl.RDFSLabel, x1, owl.StringLiteral("one"))))
		h.AssertExpectations(t)
	})
}

func TestMismatchedClauseValues(t *testing.T) {
	require := require.New(t)

	doc := obodoc.New()
	doc.Header().AddClause(obodoc.NewClause(obodoc.Tag_Subsetdef, obodoc.Text("slim")))
	f := obodoc.NewFrame(obodoc.FrameType_Term, "X:0000001")
	f.AddClause(obodoc.NewClause(obodoc.Tag_Name, obodoc.Text("one")))
	f.AddClause(obodoc.NewClause(obodoc.Tag_Relationship, obodoc.Text("part_of X:0000002")))
	f.AddClause(obodoc.NewClause(obodoc.Tag_Synonym, obodoc.Ref("X:0000003")))
	f.AddClause(obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Ref("X:0000004")))
	f.AddClause(obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref("X:0000002")))
	require.NoError(doc.AddFrame(f))

	var res *Result
	require.NotPanics(func() {
		var err error
		res, err = Convert(doc, Options{DefaultOntologyID: "x"})
		require.NoError(err)
	})

	require.Len(res.Diagnostics, 4)
	for _, d := range res.Diagnostics {
		require.Equal(oboconv.DiagnosticKind_Invalid, d.Kind)
	}
	require.Equal("subsetdef", res.Diagnostics[0].Tag)
	require.Equal("relationship", res.Diagnostics[1].Tag)
	require.Equal("X:0000001", res.Diagnostics[1].FrameID)

	require.True(res.Ontology.ContainsAxiom(owl.NewSubClassOf(owl.Class(x1), owl.Class(x2))))
	require.True(res.Ontology.ContainsAxiom(owl.NewAnnotationAssertion(owl.RDFSLabel, x1, owl.StringLiteral("one"))))
	require.Empty(res.Ontology.AxiomsOfKind(owl.AxiomKind_EquivalentClasses))
}

type mockDuplicateHandler struct {
	mock.Mock
}

func (h *mockDuplicateHandler) HandleDuplicateClause(frame *obodoc.Frame, clause *obodoc.Clause) bool {
	return h.Called(frame, clause).Bool(0)
}
