/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import (
	"sort"
	"strconv"
)

// StringLiteral returns an xsd:string literal
func StringLiteral(v string) Literal {
	return Literal{Value: v, Datatype: XSDString}
}

// BoolLiteral returns an xsd:boolean literal
func BoolLiteral(v bool) Literal {
	return Literal{Value: strconv.FormatBool(v), Datatype: XSDBoolean}
}

func NewAnnotation(property IRI, value AnnotationValue, anns ...Annotation) Annotation {
	return Annotation{Property: property, Value: value, Annotations: anns}
}

func NewDeclaration(t EntityType, iri IRI, anns ...Annotation) Declaration {
	return Declaration{Entity: Entity{Type: t, IRI: iri}, Annotated: Annotated{anns}}
}

func NewSubClassOf(sub, super ClassExpression, anns ...Annotation) SubClassOf {
	return SubClassOf{Sub: sub, Super: super, Annotated: Annotated{anns}}
}

// NewEquivalentClasses returns the axiom with operands in canonical order
func NewEquivalentClasses(cc []ClassExpression, anns ...Annotation) EquivalentClasses {
	return EquivalentClasses{Classes: SortExpressions(cc), Annotated: Annotated{anns}}
}

// NewDisjointClasses returns the axiom with operands in canonical order
func NewDisjointClasses(cc []ClassExpression, anns ...Annotation) DisjointClasses {
	return DisjointClasses{Classes: SortExpressions(cc), Annotated: Annotated{anns}}
}

func NewSubObjectPropertyOf(sub, super PropertyExpression, anns ...Annotation) SubObjectPropertyOf {
	return SubObjectPropertyOf{Sub: sub, Super: super, Annotated: Annotated{anns}}
}

func NewSubPropertyChainOf(chain []PropertyExpression, super PropertyExpression, anns ...Annotation) SubPropertyChainOf {
	return SubPropertyChainOf{Chain: chain, Super: super, Annotated: Annotated{anns}}
}

func NewEquivalentObjectProperties(pp []PropertyExpression, anns ...Annotation) EquivalentObjectProperties {
	return EquivalentObjectProperties{Properties: sortProperties(pp), Annotated: Annotated{anns}}
}

func NewDisjointObjectProperties(pp []PropertyExpression, anns ...Annotation) DisjointObjectProperties {
	return DisjointObjectProperties{Properties: sortProperties(pp), Annotated: Annotated{anns}}
}

func NewInverseObjectProperties(first, second PropertyExpression, anns ...Annotation) InverseObjectProperties {
	return InverseObjectProperties{First: first, Second: second, Annotated: Annotated{anns}}
}

func NewObjectPropertyDomain(p PropertyExpression, domain ClassExpression, anns ...Annotation) ObjectPropertyDomain {
	return ObjectPropertyDomain{Property: p, Domain: domain, Annotated: Annotated{anns}}
}

func NewObjectPropertyRange(p PropertyExpression, rng ClassExpression, anns ...Annotation) ObjectPropertyRange {
	return ObjectPropertyRange{Property: p, Range: rng, Annotated: Annotated{anns}}
}

func NewCharacteristic(c Characteristic, p PropertyExpression, anns ...Annotation) ObjectPropertyCharacteristic {
	return ObjectPropertyCharacteristic{Characteristic: c, Property: p, Annotated: Annotated{anns}}
}

func NewAnnotationAssertion(property, subject IRI, value AnnotationValue, anns ...Annotation) AnnotationAssertion {
	return AnnotationAssertion{Property: property, Subject: subject, Value: value, Annotated: Annotated{anns}}
}

func NewSubAnnotationPropertyOf(sub, super IRI, anns ...Annotation) SubAnnotationPropertyOf {
	return SubAnnotationPropertyOf{Sub: sub, Super: super, Annotated: Annotated{anns}}
}

func NewClassAssertion(c ClassExpression, individual IRI, anns ...Annotation) ClassAssertion {
	return ClassAssertion{Class: c, Individual: individual, Annotated: Annotated{anns}}
}

func NewObjectPropertyAssertion(p PropertyExpression, subject, object IRI, anns ...Annotation) ObjectPropertyAssertion {
	return ObjectPropertyAssertion{Property: p, Subject: subject, Object: object, Annotated: Annotated{anns}}
}

// NewIntersectionOf returns the intersection with operands in canonical order
func NewIntersectionOf(cc ...ClassExpression) ObjectIntersectionOf {
	return ObjectIntersectionOf{Operands: SortExpressions(cc)}
}

// NewUnionOf returns the union with operands in canonical order
func NewUnionOf(cc ...ClassExpression) ObjectUnionOf {
	return ObjectUnionOf{Operands: SortExpressions(cc)}
}

func Some(p PropertyExpression, filler ClassExpression) ObjectSomeValuesFrom {
	return ObjectSomeValuesFrom{Property: p, Filler: filler}
}

func Only(p PropertyExpression, filler ClassExpression) ObjectAllValuesFrom {
	return ObjectAllValuesFrom{Property: p, Filler: filler}
}

func Cardinality(kind CardinalityKind, n int, p PropertyExpression, filler ClassExpression) ObjectCardinality {
	return ObjectCardinality{Kind: kind, N: n, Property: p, Filler: filler}
}

// SortExpressions returns a copy of class expressions with named classes first, then by rendering
func SortExpressions(cc []ClassExpression) []ClassExpression {
	res := make([]ClassExpression, len(cc))
	copy(res, cc)
	sort.SliceStable(res, func(i, j int) bool {
		_, ni := res[i].(Class)
		_, nj := res[j].(Class)
		if ni != nj {
			return ni
		}
		return res[i].String() < res[j].String()
	})
	return res
}

func sortProperties(pp []PropertyExpression) []PropertyExpression {
	res := make([]PropertyExpression, len(pp))
	copy(res, pp)
	sort.SliceStable(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}
