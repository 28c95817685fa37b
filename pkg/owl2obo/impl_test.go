/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	_ "embed"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/obo2owl"
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodiff"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboparser"
	"github.com/voedger/oboformat/pkg/owl"
)

//go:embed testdata/roundtrip.obo
var roundtripObo string

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	src, err := oboparser.ParseString(roundtripObo)
	require.NoError(err)
	fwd, err := obo2owl.Convert(src, obo2owl.Options{})
	require.NoError(err)

	res, err := Convert(fwd.Ontology, Options{})
	require.NoError(err)
	require.Empty(res.Untranslatable)
	doc := res.Doc

	requireSameClauses := func(t *testing.T, ft obodoc.FrameType, id string) {
		want := src.Frame(ft, id)
		got := doc.Frame(ft, id)
		require.NotNil(got, "%v %s", ft, id)
		for _, cl := range want.Clauses() {
			if cl.Tag == obodoc.Tag_IsObsolete && !cl.BoolValue() {
				continue
			}
			require.True(got.ContainsClause(cl), "%s: missing «%s»", id, cl.Key())
		}
	}

	t.Run("header", func(t *testing.T) {
		require.Equal("rt", doc.OntologyID())
		h := doc.Header()
		v, _ := h.TagValue(obodoc.Tag_FormatVersion)
		require.Equal("1.2", v)
		remark, _ := h.TagValue(obodoc.Tag_Remark)
		require.Equal("round trip fixture", remark)
		require.Equal(obodoc.SubsetDef{ID: "goslim_generic", Description: "Generic slim"}, h.Clause(obodoc.Tag_Subsetdef).Value)
		require.Equal(obodoc.SynonymTypeDef{ID: "systematic_synonym", Description: "Systematic synonym", Scope: "EXACT"},
			h.Clause(obodoc.Tag_Synonymtypedef).Value)
		require.Equal(map[string]string{"Wiki": "http://en.wikipedia.org/wiki/"}, doc.IDSpaces())
		require.Nil(h.Clause(obodoc.Tag_OwlAxioms))
	})

	t.Run("terms", func(t *testing.T) {
		for _, id := range []string{"GO:0000001", "GO:0000002", "GO:0000003", "GO:0000005"} {
			requireSameClauses(t, obodoc.FrameType_Term, id)
		}
		require.NotNil(doc.TermFrame("GO:0000004"))
		require.Nil(doc.TermFrame("GO:0000099"), "merged term must become alt_id")
		require.Nil(doc.TermFrame("GO:0000003").Clause(obodoc.Tag_IsObsolete))
	})

	t.Run("typedef keeps shorthand id", func(t *testing.T) {
		requireSameClauses(t, obodoc.FrameType_Typedef, "part_of")
		require.Nil(doc.TypedefFrame("BFO:0000050"))
	})

	t.Run("instance", func(t *testing.T) {
		requireSameClauses(t, obodoc.FrameType_Instance, "I:1")
	})

	t.Run("diff", func(t *testing.T) {
		diffs := obodiff.Compare(src, doc, obodiff.Options{})
		require.Len(diffs, 1, "%v", diffs)
		// is_obsolete: false has no OWL form
		require.Equal(obodiff.DiffKind_Removed, diffs[0].Kind)
		require.Equal(obodoc.Tag_IsObsolete, diffs[0].Old.Tag)
	})
}

func TestUntranslatable(t *testing.T) {
	const (
		a = owl.IRI("http://purl.obolibrary.org/obo/X_1")
		b = owl.IRI("http://purl.obolibrary.org/obo/X_2")
	)
	newOntology := func() (*owl.Ontology, owl.Axiom) {
		o := owl.NewOntology("http://purl.obolibrary.org/obo/x.owl", "")
		complement := owl.NewSubClassOf(owl.Class(a), owl.ObjectComplementOf{Operand: owl.Class(b)})
		o.AddAxioms(
			owl.NewDeclaration(owl.EntityType_Class, a),
			owl.NewDeclaration(owl.EntityType_Class, b),
			complement,
		)
		return o, complement
	}

	t.Run("default policy keeps axioms in owl-axioms header", func(t *testing.T) {
		require := require.New(t)
		o, ax := newOntology()
		res, err := Convert(o, Options{})
		require.NoError(err)
		require.Equal([]owl.Axiom{ax}, res.Untranslatable)
		v, ok := res.Doc.Header().TagValue(obodoc.Tag_OwlAxioms)
		require.True(ok)
		require.Equal(ax.String(), v)
		require.Len(res.Diagnostics, 1)
		require.Equal(oboconv.DiagnosticKind_Untranslatable, res.Diagnostics[0].Kind)

		t.Run("owl-axioms header converts back", func(t *testing.T) {
			back, err := obo2owl.Convert(res.Doc, obo2owl.Options{})
			require.NoError(err)
			require.True(back.Ontology.ContainsAxiom(ax))
		})
	})

	t.Run("mute", func(t *testing.T) {
		require := require.New(t)
		o, ax := newOntology()
		res, err := Convert(o, Options{Policy: StrictnessPolicy{MuteUntranslatable: true}})
		require.NoError(err)
		require.Equal([]owl.Axiom{ax}, res.Untranslatable)
		require.Nil(res.Doc.Header().Clause(obodoc.Tag_OwlAxioms))
	})

	t.Run("strict", func(t *testing.T) {
		require := require.New(t)
		o, ax := newOntology()
		res, err := Convert(o, Options{Policy: StrictnessPolicy{Strict: true}})
		require.Nil(res)
		require.ErrorIs(err, ErrTranslationError)
		var te *TranslationError
		require.True(errors.As(err, &te))
		require.Equal(ax.String(), te.Axiom.String())
	})

	t.Run("annotation of undeclared entity", func(t *testing.T) {
		require := require.New(t)
		o := owl.NewOntology("http://purl.obolibrary.org/obo/x.owl", "")
		o.AddAxiom(owl.NewAnnotationAssertion(owl.RDFSLabel, a, owl.StringLiteral("a")))
		res, err := Convert(o, Options{Policy: StrictnessPolicy{MuteUntranslatable: true}})
		require.NoError(err)
		require.Len(res.Untranslatable, 1)
	})
}

func TestRestrictions(t *testing.T) {
	const (
		x    = owl.IRI("http://purl.obolibrary.org/obo/X_1")
		y    = owl.IRI("http://purl.obolibrary.org/obo/X_2")
		rel  = owl.IRI("http://purl.obolibrary.org/obo/RO_0000001")
		rel2 = owl.IRI("http://purl.obolibrary.org/obo/RO_0000002")
	)
	p := owl.ObjectProperty(rel)

	tests := []struct {
		name  string
		super owl.ClassExpression
		tag   obodoc.Tag
		value obodoc.ClauseValue
		quals []obodoc.QualifierValue
	}{
		{"named", owl.Class(y), obodoc.Tag_IsA, obodoc.Ref("X:2"), nil},
		{"some", owl.Some(p, owl.Class(y)), obodoc.Tag_Relationship, obodoc.Relation{Rel: "RO:0000001", Target: "X:2"}, nil},
		{"only", owl.Only(p, owl.Class(y)), obodoc.Tag_Relationship, obodoc.Relation{Rel: "RO:0000001", Target: "X:2"},
			[]obodoc.QualifierValue{{Qualifier: "all_only", Value: "true"}}},
		{"exact", owl.Cardinality(owl.CardinalityKind_Exact, 2, p, owl.Class(y)), obodoc.Tag_Relationship,
			obodoc.Relation{Rel: "RO:0000001", Target: "X:2"}, []obodoc.QualifierValue{{Qualifier: "cardinality", Value: "2"}}},
		{"min max", owl.NewIntersectionOf(
			owl.Cardinality(owl.CardinalityKind_Min, 1, p, owl.Class(y)),
			owl.Cardinality(owl.CardinalityKind_Max, 3, p, owl.Class(y)),
		), obodoc.Tag_Relationship, obodoc.Relation{Rel: "RO:0000001", Target: "X:2"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			o := owl.NewOntology("http://purl.obolibrary.org/obo/x.owl", "")
			o.AddAxioms(
				owl.NewDeclaration(owl.EntityType_Class, x),
				owl.NewDeclaration(owl.EntityType_Class, y),
				owl.NewDeclaration(owl.EntityType_ObjectProperty, rel),
				owl.NewSubClassOf(owl.Class(x), tt.super),
			)
			res, err := Convert(o, Options{Policy: StrictnessPolicy{Strict: true}})
			require.NoError(err)
			cl := res.Doc.TermFrame("X:1").Clause(tt.tag)
			require.NotNil(cl)
			require.Equal(tt.value, cl.Value)
			if tt.quals != nil {
				require.Equal(tt.quals, cl.Qualifiers)
			}
			if tt.name == "min max" {
				min, _ := cl.Qualifier("minCardinality")
				max, _ := cl.Qualifier("maxCardinality")
				require.Equal("1", min)
				require.Equal("3", max)
			}
		})
	}

	t.Run("property chains", func(t *testing.T) {
		require := require.New(t)
		o := owl.NewOntology("http://purl.obolibrary.org/obo/x.owl", "")
		p2 := owl.ObjectProperty(rel2)
		o.AddAxioms(
			owl.NewDeclaration(owl.EntityType_ObjectProperty, rel),
			owl.NewDeclaration(owl.EntityType_ObjectProperty, rel2),
			owl.NewSubPropertyChainOf([]owl.PropertyExpression{p, p2}, p),
			owl.NewSubPropertyChainOf([]owl.PropertyExpression{p2, p2}, p),
			owl.NewSubPropertyChainOf([]owl.PropertyExpression{p2, p}, p2,
				owl.NewAnnotation(oboconv.EquivalentToChain, owl.BoolLiteral(true))),
		)
		res, err := Convert(o, Options{Policy: StrictnessPolicy{Strict: true}})
		require.NoError(err)

		f := res.Doc.TypedefFrame("RO:0000001")
		require.Equal(obodoc.Ref("RO:0000002"), f.Clause(obodoc.Tag_TransitiveOver).Value)
		require.Equal(obodoc.Chain{Rel1: "RO:0000002", Rel2: "RO:0000002"}, f.Clause(obodoc.Tag_HoldsOverChain).Value)

		eq := res.Doc.TypedefFrame("RO:0000002").Clause(obodoc.Tag_EquivalentToChain)
		require.Equal(obodoc.Chain{Rel1: "RO:0000002", Rel2: "RO:0000001"}, eq.Value)
		require.Empty(eq.Qualifiers)
	})
}

func TestDuplicates(t *testing.T) {
	const x = owl.IRI("http://purl.obolibrary.org/obo/X_1")
	newOntology := func() *owl.Ontology {
		o := owl.NewOntology("http://purl.obolibrary.org/obo/x.owl", "")
		o.AddAxioms(
			owl.NewDeclaration(owl.EntityType_Class, x),
			owl.NewAnnotationAssertion(owl.RDFSLabel, x, owl.StringLiteral("one")),
			owl.NewAnnotationAssertion(owl.RDFSLabel, x, owl.StringLiteral("two")),
		)
		return o
	}

	t.Run("dropped by default", func(t *testing.T) {
		require := require.New(t)
		res, err := Convert(newOntology(), Options{})
		require.NoError(err)
		require.Equal([]string{"one"}, res.Doc.TermFrame("X:1").TagValues(obodoc.Tag_Name))
		require.Len(res.Diagnostics, 1)
		require.Equal(oboconv.DiagnosticKind_Duplicate, res.Diagnostics[0].Kind)
		require.Equal("X:1", res.Diagnostics[0].FrameID)
	})

	t.Run("handler keeps duplicates", func(t *testing.T) {
		require := require.New(t)
		h := &mockDuplicateHandler{}
		h.On("HandleDuplicateClause", mock.AnythingOfType("*obodoc.Frame"), mock.AnythingOfType("*obodoc.Clause")).Return(true).Once()

		res, err := Convert(newOntology(), Options{Duplicates: h})
		require.NoError(err)
		require.Equal([]string{"one", "two"}, res.Doc.TermFrame("X:1").TagValues(obodoc.Tag_Name))
		h.AssertExpectations(t)
	})
}

func TestAnnotations(t *testing.T) {
	require := require.New(t)

	const (
		x   = owl.IRI("http://purl.obolibrary.org/obo/X_1")
		src = owl.IRI("http://purl.obolibrary.org/obo/IAO_0000589")
	)
	o := owl.NewOntology("", "")
	o.AddAnnotation(owl.NewAnnotation(owl.RDFSSeeAlso, owl.IRI("http://example.com")))
	o.AddAxioms(
		owl.NewDeclaration(owl.EntityType_Class, x),
		owl.NewAnnotationAssertion(src, x, owl.StringLiteral("literal")),
		owl.NewAnnotationAssertion(owl.RDFSComment, x, owl.StringLiteral("a comment"),
			owl.NewAnnotation(owl.OboInOwlSource, owl.StringLiteral("PMID:1"))),
		owl.NewAnnotationAssertion(owl.Deprecated, x, owl.BoolLiteral(true)),
		owl.NewAnnotationAssertion(oboconv.GenericProperty("my_tag"), x, owl.StringLiteral("some value")),
	)
	res, err := Convert(o, Options{DefaultOntologyID: "anon", Policy: StrictnessPolicy{Strict: true}})
	require.NoError(err)
	require.Equal("anon", res.Doc.OntologyID())

	pv := res.Doc.Header().Clause(obodoc.Tag_PropertyValue)
	require.Equal(obodoc.PropertyValue{Property: "rdfs:seeAlso", Value: "http://example.com"}, pv.Value)

	f := res.Doc.TermFrame("X:1")
	require.Equal(obodoc.PropertyValue{Property: "IAO:0000589", Value: "literal", Datatype: "xsd:string", Quoted: true},
		f.Clause(obodoc.Tag_PropertyValue).Value)

	comment := f.Clause(obodoc.Tag_Comment)
	require.Equal(obodoc.Text("a comment"), comment.Value)
	require.Equal([]obodoc.QualifierValue{{Qualifier: "source", Value: "PMID:1"}}, comment.Qualifiers)

	require.True(f.IsTrue(obodoc.Tag_IsObsolete))

	var generic *obodoc.Clause
	for _, cl := range f.Clauses() {
		if cl.TagName() == "my_tag" {
			generic = cl
		}
	}
	require.NotNil(generic)
	require.Equal("some value", generic.Text())
	require.True(strings.HasPrefix(res.Doc.Header().Clause(obodoc.Tag_FormatVersion).Text(), "1."))
}

type mockDuplicateHandler struct {
	mock.Mock
}

func (h *mockDuplicateHandler) HandleDuplicateClause(frame *obodoc.Frame, clause *obodoc.Clause) bool {
	return h.Called(frame, clause).Bool(0)
}
