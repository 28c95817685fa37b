/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"strconv"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

// convertLogical translates a logical axiom into frame clauses or reports it as untranslatable
func (c *converter) convertLogical(ax owl.Axiom) {
	var ok bool
	switch a := ax.(type) {
	case owl.SubClassOf:
		ok = c.convertSubClassOf(a)
	case owl.EquivalentClasses:
		ok = c.convertEquivalentClasses(a)
	case owl.DisjointClasses:
		ok = c.convertPair(a.Classes, obodoc.FrameType_Term, obodoc.Tag_DisjointFrom, a.Annotations())
	case owl.SubObjectPropertyOf:
		ok = c.convertPropertyRef(a.Sub, a.Super, obodoc.Tag_IsA, a.Annotations())
	case owl.EquivalentObjectProperties:
		ok = c.convertPropertyPair(a.Properties, obodoc.Tag_EquivalentTo, a.Annotations())
	case owl.DisjointObjectProperties:
		ok = c.convertPropertyPair(a.Properties, obodoc.Tag_DisjointFrom, a.Annotations())
	case owl.InverseObjectProperties:
		ok = c.convertPropertyRef(a.First, a.Second, obodoc.Tag_InverseOf, a.Annotations()) ||
			c.convertPropertyRef(a.Second, a.First, obodoc.Tag_InverseOf, a.Annotations())
	case owl.ObjectPropertyDomain:
		ok = c.convertPropertyClass(a.Property, a.Domain, obodoc.Tag_Domain, a.Annotations())
	case owl.ObjectPropertyRange:
		ok = c.convertPropertyClass(a.Property, a.Range, obodoc.Tag_Range, a.Annotations())
	case owl.ObjectPropertyCharacteristic:
		ok = c.convertCharacteristic(a)
	case owl.SubPropertyChainOf:
		ok = c.convertChain(a)
	case owl.SubAnnotationPropertyOf:
		ok = c.convertSubAnnotationPropertyOf(a)
	case owl.ClassAssertion:
		ok = c.convertClassAssertion(a)
	case owl.ObjectPropertyAssertion:
		ok = c.convertPropertyAssertion(a)
	}
	if !ok {
		c.untranslatable(ax, "no OBO form for %T", ax)
	}
}

func (c *converter) convertSubClassOf(a owl.SubClassOf) bool {
	subject, gci, ok := c.subClass(a.Sub)
	if !ok {
		return false
	}
	f := c.frameOf(subject, obodoc.FrameType_Term)
	if f == nil {
		return false
	}
	quals := c.qualifiers(a.Annotations())

	if super, ok := a.Super.(owl.Class); ok {
		if gci != nil {
			return false
		}
		cl := obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref(c.id(owl.IRI(super))))
		cl.Qualifiers = quals
		c.addClause(f, cl)
		return true
	}

	rel, restriction, ok := c.restriction(a.Super)
	if !ok {
		return false
	}
	cl := obodoc.NewClause(obodoc.Tag_Relationship, rel)
	cl.Qualifiers = append(append(restriction, gci...), quals...)
	c.addClause(f, cl)
	return true
}

// subClass returns the named class of a subclass expression. Class and some-values-from
// intersection is a general class inclusion and gives gci qualifiers
func (c *converter) subClass(ce owl.ClassExpression) (owl.IRI, []obodoc.QualifierValue, bool) {
	switch x := ce.(type) {
	case owl.Class:
		return owl.IRI(x), nil, true
	case owl.ObjectIntersectionOf:
		if len(x.Operands) != 2 {
			break
		}
		named, ok1 := x.Operands[0].(owl.Class)
		some, ok2 := x.Operands[1].(owl.ObjectSomeValuesFrom)
		if !ok1 || !ok2 {
			break
		}
		p, okP := some.Property.(owl.ObjectProperty)
		filler, okF := some.Filler.(owl.Class)
		if !okP || !okF {
			break
		}
		return owl.IRI(named), []obodoc.QualifierValue{
			{Qualifier: obodoc.QualifierGciRelation, Value: c.id(owl.IRI(p))},
			{Qualifier: obodoc.QualifierGciFiller, Value: c.id(owl.IRI(filler))},
		}, true
	}
	return "", nil, false
}

// restriction returns the relationship value and the qualifiers which shape the restriction
func (c *converter) restriction(ce owl.ClassExpression) (obodoc.Relation, []obodoc.QualifierValue, bool) {
	relation := func(pe owl.PropertyExpression, filler owl.ClassExpression) (obodoc.Relation, bool) {
		p, okP := pe.(owl.ObjectProperty)
		f, okF := filler.(owl.Class)
		if !okP || !okF {
			return obodoc.Relation{}, false
		}
		return obodoc.Relation{Rel: c.id(owl.IRI(p)), Target: c.id(owl.IRI(f))}, true
	}

	switch x := ce.(type) {
	case owl.ObjectSomeValuesFrom:
		rel, ok := relation(x.Property, x.Filler)
		return rel, nil, ok
	case owl.ObjectAllValuesFrom:
		rel, ok := relation(x.Property, x.Filler)
		return rel, []obodoc.QualifierValue{{Qualifier: obodoc.QualifierAllOnly, Value: obodoc.TrueValue}}, ok
	case owl.ObjectCardinality:
		rel, ok := relation(x.Property, x.Filler)
		return rel, []obodoc.QualifierValue{cardinality(x)}, ok
	case owl.ObjectIntersectionOf:
		if len(x.Operands) != 2 {
			break
		}
		c1, ok1 := x.Operands[0].(owl.ObjectCardinality)
		c2, ok2 := x.Operands[1].(owl.ObjectCardinality)
		if !ok1 || !ok2 || c1.Kind == c2.Kind || c1.Kind == owl.CardinalityKind_Exact || c2.Kind == owl.CardinalityKind_Exact {
			break
		}
		rel1, ok1 := relation(c1.Property, c1.Filler)
		rel2, ok2 := relation(c2.Property, c2.Filler)
		if !ok1 || !ok2 || rel1 != rel2 {
			break
		}
		return rel1, []obodoc.QualifierValue{cardinality(c1), cardinality(c2)}, true
	}
	return obodoc.Relation{}, nil, false
}

func cardinality(x owl.ObjectCardinality) obodoc.QualifierValue {
	q := obodoc.QualifierValue{Value: strconv.Itoa(x.N)}
	switch x.Kind {
	case owl.CardinalityKind_Min:
		q.Qualifier = obodoc.QualifierMinCardinality
	case owl.CardinalityKind_Max:
		q.Qualifier = obodoc.QualifierMaxCardinality
	default:
		q.Qualifier = obodoc.QualifierCardinality
	}
	return q
}

func (c *converter) convertEquivalentClasses(a owl.EquivalentClasses) bool {
	if len(a.Classes) != 2 {
		return false
	}
	named, ok := a.Classes[0].(owl.Class)
	if !ok {
		return false
	}
	if _, ok := a.Classes[1].(owl.Class); ok {
		return c.convertPair(a.Classes, obodoc.FrameType_Term, obodoc.Tag_EquivalentTo, a.Annotations())
	}
	f := c.frameOf(owl.IRI(named), obodoc.FrameType_Term)
	if f == nil {
		return false
	}

	var clauses []*obodoc.Clause
	switch x := a.Classes[1].(type) {
	case owl.ObjectIntersectionOf:
		for _, op := range x.Operands {
			var rel obodoc.Relation
			switch y := op.(type) {
			case owl.Class:
				rel.Target = c.id(owl.IRI(y))
			case owl.ObjectSomeValuesFrom:
				r, quals, ok := c.restriction(y)
				if !ok || len(quals) > 0 {
					return false
				}
				rel = r
			default:
				return false
			}
			clauses = append(clauses, obodoc.NewClause(obodoc.Tag_IntersectionOf, rel))
		}
	case owl.ObjectUnionOf:
		for _, op := range x.Operands {
			y, ok := op.(owl.Class)
			if !ok {
				return false
			}
			clauses = append(clauses, obodoc.NewClause(obodoc.Tag_UnionOf, obodoc.Ref(c.id(owl.IRI(y)))))
		}
	default:
		return false
	}

	quals := c.qualifiers(a.Annotations())
	for _, cl := range clauses {
		cl.Qualifiers = append(cl.Qualifiers, quals...)
		c.addClause(f, cl)
	}
	return true
}

// convertPair writes a symmetric statement about two named classes to the first one which has a frame
func (c *converter) convertPair(cc []owl.ClassExpression, ft obodoc.FrameType, tag obodoc.Tag, anns []owl.Annotation) bool {
	if len(cc) != 2 {
		return false
	}
	a, ok1 := cc[0].(owl.Class)
	b, ok2 := cc[1].(owl.Class)
	if !ok1 || !ok2 {
		return false
	}
	return c.symmetric(owl.IRI(a), owl.IRI(b), ft, tag, anns)
}

func (c *converter) convertPropertyPair(pp []owl.PropertyExpression, tag obodoc.Tag, anns []owl.Annotation) bool {
	if len(pp) != 2 {
		return false
	}
	a, ok1 := pp[0].(owl.ObjectProperty)
	b, ok2 := pp[1].(owl.ObjectProperty)
	if !ok1 || !ok2 {
		return false
	}
	return c.symmetric(owl.IRI(a), owl.IRI(b), obodoc.FrameType_Typedef, tag, anns)
}

func (c *converter) symmetric(a, b owl.IRI, ft obodoc.FrameType, tag obodoc.Tag, anns []owl.Annotation) bool {
	subject, target := a, b
	f := c.frameOf(subject, ft)
	if f == nil {
		subject, target = b, a
		if f = c.frameOf(subject, ft); f == nil {
			return false
		}
	}
	cl := obodoc.NewClause(tag, obodoc.Ref(c.id(target)))
	cl.Qualifiers = c.qualifiers(anns)
	c.addClause(f, cl)
	return true
}

// convertPropertyRef writes a reference from the typedef of the first property to the second one
func (c *converter) convertPropertyRef(subject, target owl.PropertyExpression, tag obodoc.Tag, anns []owl.Annotation) bool {
	s, ok1 := subject.(owl.ObjectProperty)
	t, ok2 := target.(owl.ObjectProperty)
	if !ok1 || !ok2 {
		return false
	}
	f := c.frameOf(owl.IRI(s), obodoc.FrameType_Typedef)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(tag, obodoc.Ref(c.id(owl.IRI(t))))
	cl.Qualifiers = c.qualifiers(anns)
	c.addClause(f, cl)
	return true
}

func (c *converter) convertPropertyClass(pe owl.PropertyExpression, ce owl.ClassExpression, tag obodoc.Tag, anns []owl.Annotation) bool {
	p, ok1 := pe.(owl.ObjectProperty)
	cls, ok2 := ce.(owl.Class)
	if !ok1 || !ok2 {
		return false
	}
	f := c.frameOf(owl.IRI(p), obodoc.FrameType_Typedef)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(tag, obodoc.Ref(c.id(owl.IRI(cls))))
	cl.Qualifiers = c.qualifiers(anns)
	c.addClause(f, cl)
	return true
}

func (c *converter) convertCharacteristic(a owl.ObjectPropertyCharacteristic) bool {
	tag, ok := oboconv.CharacteristicTag(a.Characteristic)
	if !ok {
		return false
	}
	p, ok := a.Property.(owl.ObjectProperty)
	if !ok {
		return false
	}
	f := c.frameOf(owl.IRI(p), obodoc.FrameType_Typedef)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(tag, obodoc.Bool(true))
	cl.Qualifiers = c.qualifiers(a.Annotations())
	c.addClause(f, cl)
	return true
}

// convertChain recognizes transitive_over, holds_over_chain and equivalent_to_chain
func (c *converter) convertChain(a owl.SubPropertyChainOf) bool {
	if len(a.Chain) != 2 {
		return false
	}
	super, ok := a.Super.(owl.ObjectProperty)
	if !ok {
		return false
	}
	rels := make([]owl.IRI, 2)
	for i, pe := range a.Chain {
		p, ok := pe.(owl.ObjectProperty)
		if !ok {
			return false
		}
		rels[i] = owl.IRI(p)
	}
	f := c.frameOf(owl.IRI(super), obodoc.FrameType_Typedef)
	if f == nil {
		return false
	}

	tag := obodoc.Tag_HoldsOverChain
	var anns []owl.Annotation
	for _, ann := range a.Annotations() {
		if ann.Property == oboconv.EquivalentToChain {
			tag = obodoc.Tag_EquivalentToChain
			continue
		}
		anns = append(anns, ann)
	}

	var cl *obodoc.Clause
	if tag == obodoc.Tag_HoldsOverChain && rels[0] == owl.IRI(super) {
		cl = obodoc.NewClause(obodoc.Tag_TransitiveOver, obodoc.Ref(c.id(rels[1])))
	} else {
		cl = obodoc.NewClause(tag, obodoc.Chain{Rel1: c.id(rels[0]), Rel2: c.id(rels[1])})
	}
	cl.Qualifiers = c.qualifiers(anns)
	c.addClause(f, cl)
	return true
}

func (c *converter) convertSubAnnotationPropertyOf(a owl.SubAnnotationPropertyOf) bool {
	if c.headerProps[a.Sub] {
		return true
	}
	f := c.frameOf(a.Sub, obodoc.FrameType_Typedef)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref(c.id(a.Super)))
	cl.Qualifiers = c.qualifiers(a.Annotations())
	c.addClause(f, cl)
	return true
}

func (c *converter) convertClassAssertion(a owl.ClassAssertion) bool {
	cls, ok := a.Class.(owl.Class)
	if !ok {
		return false
	}
	f := c.frameOf(a.Individual, obodoc.FrameType_Instance)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(obodoc.Tag_InstanceOf, obodoc.Ref(c.id(owl.IRI(cls))))
	cl.Qualifiers = c.qualifiers(a.Annotations())
	c.addClause(f, cl)
	return true
}

func (c *converter) convertPropertyAssertion(a owl.ObjectPropertyAssertion) bool {
	p, ok := a.Property.(owl.ObjectProperty)
	if !ok {
		return false
	}
	f := c.frameOf(a.Subject, obodoc.FrameType_Instance)
	if f == nil {
		return false
	}
	cl := obodoc.NewClause(obodoc.Tag_Relationship, obodoc.Relation{Rel: c.id(owl.IRI(p)), Target: c.id(a.Object)})
	cl.Qualifiers = c.qualifiers(a.Annotations())
	c.addClause(f, cl)
	return true
}
