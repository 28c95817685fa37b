/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

// ParseExpression parses a class expression such as "part_of some ?Y and not 'cell'"
func ParseExpression(text string) (*Expression, error) {
	ast, err := expressionParser.ParseString("", text)
	if err != nil {
		return nil, ErrSyntax(err)
	}
	return &Expression{text: text, ast: ast}, nil
}

func (x *Expression) String() string { return x.text }

// Eval resolves names and variables and returns the class expression
func (x *Expression) Eval(r Resolver, vars Bindings) (owl.ClassExpression, error) {
	e := evaluator{r: r, vars: vars}
	return e.expression(x.ast)
}

// ParseFrame parses a frame such as "Class: ?X EquivalentTo: part_of some ?Y"
func ParseFrame(text string) (*Frame, error) {
	ast, err := frameParser.ParseString("", text)
	if err != nil {
		return nil, ErrSyntax(err)
	}
	return &Frame{text: text, ast: ast}, nil
}

func (f *Frame) String() string { return f.text }

// Axioms resolves names and variables and returns one axiom per section operand
func (f *Frame) Axioms(r Resolver, vars Bindings) ([]owl.Axiom, error) {
	e := evaluator{r: r, vars: vars}
	return e.frame(f.ast)
}

// NewOntologyResolver returns a resolver over the ontology signature.
// Mapper may be nil, then unprefixed names resolve without an ontology namespace
func NewOntologyResolver(o *owl.Ontology, ids *oboids.Mapper) *OntologyResolver {
	if ids == nil {
		ids = oboids.NewMapper("", nil)
	}
	return &OntologyResolver{Ontology: o, IDs: ids}
}

// Resolve returns the IRI for a label, an OBO id (P:L) or an IRI short form (P_L)
func (r *OntologyResolver) Resolve(name string, quoted bool) (owl.IRI, error) {
	if quoted {
		if iri, ok := r.Ontology.FindByLabel(name); ok {
			return iri, nil
		}
		return "", ErrUnresolved(name)
	}
	if isShortForm(name) {
		return owl.IRI(owl.NsObo + name), nil
	}
	if iri, ok := r.Ontology.FindByLabel(name); ok {
		return iri, nil
	}
	return owl.IRI(r.IDs.IRI(name)), nil
}
