/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import "sync"

// IRI is an absolute internationalized resource identifier
type IRI string

// EntityType is the kind of a named OWL entity
type EntityType uint8

const (
	EntityType_null EntityType = iota
	EntityType_Class
	EntityType_ObjectProperty
	EntityType_AnnotationProperty
	EntityType_NamedIndividual
	EntityType_Datatype
	EntityType_Count
)

// Entity is a typed IRI
type Entity struct {
	Type EntityType
	IRI  IRI
}

// ClassExpression is a named class or a class constructor
type ClassExpression interface {
	String() string
	isClassExpression()
}

// PropertyExpression is a named object property or its inverse
type PropertyExpression interface {
	String() string
	isPropertyExpression()
}

// Class is a named class
type Class IRI

// ObjectProperty is a named object property
type ObjectProperty IRI

type ObjectInverseOf struct {
	Property ObjectProperty
}

type ObjectSomeValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

type ObjectAllValuesFrom struct {
	Property PropertyExpression
	Filler   ClassExpression
}

// CardinalityKind distinguishes exact, min and max cardinality restrictions
type CardinalityKind uint8

const (
	CardinalityKind_null CardinalityKind = iota
	CardinalityKind_Exact
	CardinalityKind_Min
	CardinalityKind_Max
)

// ObjectCardinality is a qualified cardinality restriction. Filler may be nil
type ObjectCardinality struct {
	Kind     CardinalityKind
	N        int
	Property PropertyExpression
	Filler   ClassExpression
}

// ObjectIntersectionOf operands are kept sorted, see NewIntersectionOf
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// ObjectUnionOf operands are kept sorted, see NewUnionOf
type ObjectUnionOf struct {
	Operands []ClassExpression
}

type ObjectComplementOf struct {
	Operand ClassExpression
}

// AnnotationValue is an IRI or a literal
type AnnotationValue interface {
	String() string
	isAnnotationValue()
}

// Literal is a typed or language tagged string
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

// Annotation is a property-value pair, optionally annotated itself
type Annotation struct {
	Property    IRI
	Value       AnnotationValue
	Annotations []Annotation
}

// OntologyID is the ontology IRI and the optional version IRI
type OntologyID struct {
	IRI        IRI
	VersionIRI IRI
}

// Ontology is a set of axioms with ontology level annotations and imports.
//
// Axioms are unique by their functional syntax rendering and kept in insertion order.
// Ontology is safe for concurrent use
type Ontology struct {
	mu          sync.RWMutex
	id          OntologyID
	anonymous   bool
	annotations []Annotation
	imports     []IRI
	axioms      map[string]Axiom
	order       []string
	bySubject   map[IRI][]string
	declared    map[IRI][]EntityType
}
