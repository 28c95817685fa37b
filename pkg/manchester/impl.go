/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"strings"

	"github.com/voedger/oboformat/pkg/owl"
)

type evaluator struct {
	r    Resolver
	vars Bindings
}

func (e *evaluator) name(n *name) (owl.IRI, error) {
	switch {
	case n.IRI != "":
		return owl.IRI(strings.Trim(n.IRI, "<>")), nil
	case n.Var != "":
		v := strings.TrimPrefix(n.Var, "?")
		iri, ok := e.vars[v]
		if !ok {
			return "", ErrUnboundVariable(v)
		}
		return iri, nil
	case n.Label != "":
		return e.r.Resolve(unquote(n.Label), true)
	}
	return e.r.Resolve(n.Symbol, false)
}

func (e *evaluator) expression(x *expression) (owl.ClassExpression, error) {
	ops := make([]owl.ClassExpression, 0, len(x.Or))
	for _, c := range x.Or {
		ce, err := e.conjunction(c)
		if err != nil {
			return nil, err
		}
		ops = append(ops, ce)
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return owl.NewUnionOf(ops...), nil
}

func (e *evaluator) conjunction(c *conjunction) (owl.ClassExpression, error) {
	ops := make([]owl.ClassExpression, 0, len(c.And))
	for _, u := range c.And {
		ce, err := e.unary(u)
		if err != nil {
			return nil, err
		}
		ops = append(ops, ce)
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return owl.NewIntersectionOf(ops...), nil
}

func (e *evaluator) unary(u *unary) (owl.ClassExpression, error) {
	switch {
	case u.Not != nil:
		op, err := e.unary(u.Not)
		if err != nil {
			return nil, err
		}
		return owl.ObjectComplementOf{Operand: op}, nil
	case u.Restriction != nil:
		return e.restriction(u.Restriction)
	}
	return e.primary(u.Primary)
}

func (e *evaluator) primary(p *primary) (owl.ClassExpression, error) {
	if p.Sub != nil {
		return e.expression(p.Sub)
	}
	iri, err := e.name(p.Name)
	return owl.Class(iri), err
}

func (e *evaluator) property(p *property) (owl.PropertyExpression, error) {
	if p.Inverse != nil {
		iri, err := e.name(p.Inverse)
		return owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}, err
	}
	iri, err := e.name(p.Name)
	return owl.ObjectProperty(iri), err
}

func (e *evaluator) restriction(r *restriction) (owl.ClassExpression, error) {
	p, err := e.property(r.Property)
	if err != nil {
		return nil, err
	}
	switch r.Quantifier {
	case "some", "only":
		f, err := e.unary(r.Filler)
		if err != nil {
			return nil, err
		}
		if r.Quantifier == "some" {
			return owl.Some(p, f), nil
		}
		return owl.Only(p, f), nil
	}

	var f owl.ClassExpression
	if r.Qualified != nil {
		if f, err = e.primary(r.Qualified); err != nil {
			return nil, err
		}
	}
	kind := map[string]owl.CardinalityKind{
		"exactly": owl.CardinalityKind_Exact,
		"min":     owl.CardinalityKind_Min,
		"max":     owl.CardinalityKind_Max,
	}[r.Cardinality]
	return owl.Cardinality(kind, r.N, p, f), nil
}

func (e *evaluator) frame(f *frame) ([]owl.Axiom, error) {
	subject, err := e.name(f.Subject)
	if err != nil {
		return nil, err
	}
	var res []owl.Axiom
	for _, s := range f.Sections {
		for _, x := range s.Exprs {
			ce, err := e.expression(x)
			if err != nil {
				return nil, err
			}
			switch s.Kind {
			case "SubClassOf:":
				res = append(res, owl.NewSubClassOf(owl.Class(subject), ce))
			case "EquivalentTo:":
				res = append(res, owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(subject), ce}))
			case "DisjointWith:":
				res = append(res, owl.NewDisjointClasses([]owl.ClassExpression{owl.Class(subject), ce}))
			}
		}
	}
	return res, nil
}

func unquote(s string) string {
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}
	b := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
