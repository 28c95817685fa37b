/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

const (
	partOf = owl.ObjectProperty(owl.NsObo + "BFO_0000050")
	cell   = owl.Class(owl.NsObo + "CL_0000000")
	nucl   = owl.Class(owl.NsObo + "GO_0005634")
)

func testResolver() *OntologyResolver {
	o := owl.NewOntology(owl.NsObo+"test.owl", "")
	o.AddAxioms(
		owl.NewDeclaration(owl.EntityType_Class, owl.IRI(cell)),
		owl.NewAnnotationAssertion(owl.RDFSLabel, owl.IRI(cell), owl.StringLiteral("cell")),
		owl.NewDeclaration(owl.EntityType_ObjectProperty, owl.IRI(partOf)),
		owl.NewAnnotationAssertion(owl.RDFSLabel, owl.IRI(partOf), owl.StringLiteral("part of")),
	)
	return NewOntologyResolver(o, oboids.NewMapper("test", nil))
}

func TestExpressions(t *testing.T) {
	r := testResolver()
	vars := Bindings{"Y": owl.IRI(nucl)}

	tests := []struct {
		text string
		want owl.ClassExpression
	}{
		{"'cell'", cell},
		{"<http://purl.obolibrary.org/obo/CL_0000000>", cell},
		{"CL:0000000", cell},
		{"CL_0000000", cell},
		{"?Y", nucl},
		{"BFO_0000050 some ?Y", owl.Some(partOf, nucl)},
		{"'part of' only 'cell'", owl.Only(partOf, cell)},
		{"inverse(BFO_0000050) some cell", owl.Some(owl.ObjectInverseOf{Property: partOf}, cell)},
		{"'cell' and BFO_0000050 some ?Y", owl.NewIntersectionOf(cell, owl.Some(partOf, nucl))},
		{"cell or not ?Y", owl.NewUnionOf(cell, owl.ObjectComplementOf{Operand: nucl})},
		{"BFO_0000050 exactly 1 ?Y", owl.Cardinality(owl.CardinalityKind_Exact, 1, partOf, nucl)},
		{"BFO_0000050 max 2", owl.Cardinality(owl.CardinalityKind_Max, 2, partOf, nil)},
		{"(cell or ?Y) and BFO_0000050 some (BFO_0000050 some cell)",
			owl.NewIntersectionOf(owl.NewUnionOf(cell, nucl), owl.Some(partOf, owl.Some(partOf, cell)))},
		{"part_of some cell", owl.Some(owl.ObjectProperty(owl.NsObo+"test#part_of"), cell)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require := require.New(t)
			x, err := ParseExpression(tt.text)
			require.NoError(err)
			require.Equal(tt.text, x.String())
			ce, err := x.Eval(r, vars)
			require.NoError(err)
			require.Equal(tt.want.String(), ce.String())
		})
	}
}

func TestFrames(t *testing.T) {
	require := require.New(t)

	f, err := ParseFrame("Class: ?X EquivalentTo: BFO_0000050 some ?Y SubClassOf: 'cell', BFO_0000050 some 'cell' DisjointWith: ?Y")
	require.NoError(err)

	x := owl.IRI(owl.NsObo + "X_1")
	axioms, err := f.Axioms(testResolver(), Bindings{"X": x, "Y": owl.IRI(nucl)})
	require.NoError(err)
	require.Len(axioms, 4)
	require.Equal(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(x), owl.Some(partOf, nucl)}).String(), axioms[0].String())
	require.Equal(owl.NewSubClassOf(owl.Class(x), cell).String(), axioms[1].String())
	require.Equal(owl.NewSubClassOf(owl.Class(x), owl.Some(partOf, cell)).String(), axioms[2].String())
	require.Equal(owl.NewDisjointClasses([]owl.ClassExpression{owl.Class(x), nucl}).String(), axioms[3].String())
}

func TestErrors(t *testing.T) {
	require := require.New(t)
	r := testResolver()

	_, err := ParseExpression("cell and")
	require.ErrorIs(err, ErrSyntaxError)

	_, err = ParseExpression("BFO_0000050 some (cell")
	require.ErrorIs(err, ErrSyntaxError)

	_, err = ParseFrame("SubClassOf: cell")
	require.ErrorIs(err, ErrSyntaxError)

	x, err := ParseExpression("BFO_0000050 some ?Z")
	require.NoError(err)
	_, err = x.Eval(r, Bindings{"Y": owl.IRI(nucl)})
	require.ErrorIs(err, ErrUnboundVariableError)

	x, err = ParseExpression("'no such label'")
	require.NoError(err)
	_, err = x.Eval(r, nil)
	require.ErrorIs(err, ErrUnresolvedError)
}
