/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	"strconv"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

// convertIntersection translates genus and differentia clauses into one equivalence axiom
func (c *converter) convertIntersection(f *obodoc.Frame, subject owl.IRI, clauses []*obodoc.Clause) {
	ops := make([]owl.ClassExpression, 0, len(clauses))
	var anns []owl.Annotation
	for _, cl := range clauses {
		v := cl.Value.(obodoc.Relation)
		target := owl.Class(c.iri(v.Target))
		if v.IsGenus() {
			ops = append(ops, target)
		} else {
			ops = append(ops, owl.Some(owl.ObjectProperty(c.iri(v.Rel)), target))
		}
		anns = append(anns, c.qualifierAnnotations(cl.Qualifiers)...)
	}
	if len(clauses) == 1 {
		c.diag(oboconv.DiagnosticKind_Invalid, f, clauses[0], "single intersection_of clause")
	}
	c.add(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(subject), owl.NewIntersectionOf(ops...)}, dedupAnnotations(anns)...))
}

func (c *converter) convertRelationship(f *obodoc.Frame, subject owl.IRI, cl *obodoc.Clause) {
	v := cl.Value.(obodoc.Relation)
	rel := c.iri(v.Rel)
	target := c.iri(v.Target)

	switch f.Type {
	case obodoc.FrameType_Instance:
		c.add(owl.NewObjectPropertyAssertion(owl.ObjectProperty(rel), subject, target, c.qualifierAnnotations(cl.Qualifiers)...))
		return
	case obodoc.FrameType_Typedef:
		c.add(owl.NewAnnotationAssertion(rel, subject, target, c.qualifierAnnotations(cl.Qualifiers)...))
		return
	}

	q := c.relationQualifiers(f, cl)
	p := owl.ObjectProperty(rel)
	filler := owl.Class(target)

	var super owl.ClassExpression
	switch {
	case q.exact != nil:
		super = owl.Cardinality(owl.CardinalityKind_Exact, *q.exact, p, filler)
	case q.min != nil && q.max != nil:
		super = owl.NewIntersectionOf(
			owl.Cardinality(owl.CardinalityKind_Min, *q.min, p, filler),
			owl.Cardinality(owl.CardinalityKind_Max, *q.max, p, filler),
		)
	case q.min != nil:
		super = owl.Cardinality(owl.CardinalityKind_Min, *q.min, p, filler)
	case q.max != nil:
		super = owl.Cardinality(owl.CardinalityKind_Max, *q.max, p, filler)
	case q.allOnly:
		super = owl.Only(p, filler)
	default:
		super = owl.Some(p, filler)
	}

	var sub owl.ClassExpression = owl.Class(subject)
	if q.gciRelation != "" && q.gciFiller != "" {
		sub = owl.NewIntersectionOf(owl.Class(subject), owl.Some(owl.ObjectProperty(c.iri(q.gciRelation)), owl.Class(c.iri(q.gciFiller))))
	}
	c.add(owl.NewSubClassOf(sub, super, c.qualifierAnnotations(q.rest)...))
}

// relationQualifiers splits the qualifiers which shape the restriction from annotation ones
func (c *converter) relationQualifiers(f *obodoc.Frame, cl *obodoc.Clause) (q relationQualifiers) {
	card := func(qv obodoc.QualifierValue) *int {
		n, err := strconv.Atoi(qv.Value)
		if err != nil || n < 0 {
			c.diag(oboconv.DiagnosticKind_Invalid, f, cl, "%s qualifier is not a non-negative number: «%s»", qv.Qualifier, qv.Value)
			return nil
		}
		return &n
	}
	_, hasCard := cl.Qualifier(obodoc.QualifierCardinality)
	_, hasMin := cl.Qualifier(obodoc.QualifierMinCardinality)
	_, hasMax := cl.Qualifier(obodoc.QualifierMaxCardinality)
	restricted := hasCard || hasMin || hasMax

	for _, qv := range cl.Qualifiers {
		switch qv.Qualifier {
		case obodoc.QualifierCardinality:
			if q.exact = card(qv); q.exact != nil {
				continue
			}
		case obodoc.QualifierMinCardinality:
			if q.min = card(qv); q.min != nil {
				continue
			}
		case obodoc.QualifierMaxCardinality:
			if q.max = card(qv); q.max != nil {
				continue
			}
		case obodoc.QualifierAllOnly:
			if qv.Value == obodoc.TrueValue && !restricted {
				q.allOnly = true
				continue
			}
		case obodoc.QualifierGciRelation:
			q.gciRelation = qv.Value
			continue
		case obodoc.QualifierGciFiller:
			q.gciFiller = qv.Value
			continue
		}
		q.rest = append(q.rest, qv)
	}
	if (q.gciRelation == "") != (q.gciFiller == "") {
		c.diag(oboconv.DiagnosticKind_Invalid, f, cl, "gci_relation and gci_filler must be used together")
		if q.gciRelation != "" {
			q.rest = append(q.rest, obodoc.QualifierValue{Qualifier: obodoc.QualifierGciRelation, Value: q.gciRelation})
		} else {
			q.rest = append(q.rest, obodoc.QualifierValue{Qualifier: obodoc.QualifierGciFiller, Value: q.gciFiller})
		}
	}
	return q
}

func dedupAnnotations(anns []owl.Annotation) []owl.Annotation {
	seen := map[string]bool{}
	res := anns[:0]
	for _, a := range anns {
		if k := a.String(); !seen[k] {
			seen[k] = true
			res = append(res, a)
		}
	}
	return res
}
