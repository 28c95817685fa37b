/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

// AxiomKind is the kind of an axiom
type AxiomKind uint8

const (
	AxiomKind_null AxiomKind = iota
	AxiomKind_Declaration
	AxiomKind_SubClassOf
	AxiomKind_EquivalentClasses
	AxiomKind_DisjointClasses
	AxiomKind_SubObjectPropertyOf
	AxiomKind_SubPropertyChainOf
	AxiomKind_EquivalentObjectProperties
	AxiomKind_DisjointObjectProperties
	AxiomKind_InverseObjectProperties
	AxiomKind_ObjectPropertyDomain
	AxiomKind_ObjectPropertyRange
	AxiomKind_ObjectPropertyCharacteristic
	AxiomKind_AnnotationAssertion
	AxiomKind_SubAnnotationPropertyOf
	AxiomKind_ClassAssertion
	AxiomKind_ObjectPropertyAssertion
	AxiomKind_Count
)

// Axiom is a logical or annotation statement. The set of implementations is closed
type Axiom interface {
	// String returns the functional syntax rendering, which is the axiom identity
	String() string
	Kind() AxiomKind
	Annotations() []Annotation
	withAnnotations([]Annotation) Axiom
}

// Annotated holds axiom annotations
type Annotated struct {
	AxiomAnnotations []Annotation
}

func (a Annotated) Annotations() []Annotation { return a.AxiomAnnotations }

type Declaration struct {
	Annotated
	Entity Entity
}

type SubClassOf struct {
	Annotated
	Sub   ClassExpression
	Super ClassExpression
}

type EquivalentClasses struct {
	Annotated
	Classes []ClassExpression
}

type DisjointClasses struct {
	Annotated
	Classes []ClassExpression
}

type SubObjectPropertyOf struct {
	Annotated
	Sub   PropertyExpression
	Super PropertyExpression
}

// SubPropertyChainOf states that the chain of properties implies the super property
type SubPropertyChainOf struct {
	Annotated
	Chain []PropertyExpression
	Super PropertyExpression
}

type EquivalentObjectProperties struct {
	Annotated
	Properties []PropertyExpression
}

type DisjointObjectProperties struct {
	Annotated
	Properties []PropertyExpression
}

type InverseObjectProperties struct {
	Annotated
	First  PropertyExpression
	Second PropertyExpression
}

type ObjectPropertyDomain struct {
	Annotated
	Property PropertyExpression
	Domain   ClassExpression
}

type ObjectPropertyRange struct {
	Annotated
	Property PropertyExpression
	Range    ClassExpression
}

// Characteristic is a property characteristic
type Characteristic uint8

const (
	Characteristic_null Characteristic = iota
	Characteristic_Transitive
	Characteristic_Symmetric
	Characteristic_Asymmetric
	Characteristic_Reflexive
	Characteristic_Irreflexive
	Characteristic_Functional
	Characteristic_InverseFunctional
	Characteristic_Count
)

var characteristicNames = map[Characteristic]string{
	Characteristic_Transitive:        "TransitiveObjectProperty",
	Characteristic_Symmetric:         "SymmetricObjectProperty",
	Characteristic_Asymmetric:        "AsymmetricObjectProperty",
	Characteristic_Reflexive:         "ReflexiveObjectProperty",
	Characteristic_Irreflexive:       "IrreflexiveObjectProperty",
	Characteristic_Functional:        "FunctionalObjectProperty",
	Characteristic_InverseFunctional: "InverseFunctionalObjectProperty",
}

type ObjectPropertyCharacteristic struct {
	Annotated
	Characteristic Characteristic
	Property       PropertyExpression
}

type AnnotationAssertion struct {
	Annotated
	Property IRI
	Subject  IRI
	Value    AnnotationValue
}

type SubAnnotationPropertyOf struct {
	Annotated
	Sub   IRI
	Super IRI
}

type ClassAssertion struct {
	Annotated
	Class      ClassExpression
	Individual IRI
}

type ObjectPropertyAssertion struct {
	Annotated
	Property PropertyExpression
	Subject  IRI
	Object   IRI
}

func (Declaration) Kind() AxiomKind                  { return AxiomKind_Declaration }
func (SubClassOf) Kind() AxiomKind                   { return AxiomKind_SubClassOf }
func (EquivalentClasses) Kind() AxiomKind            { return AxiomKind_EquivalentClasses }
func (DisjointClasses) Kind() AxiomKind              { return AxiomKind_DisjointClasses }
func (SubObjectPropertyOf) Kind() AxiomKind          { return AxiomKind_SubObjectPropertyOf }
func (SubPropertyChainOf) Kind() AxiomKind           { return AxiomKind_SubPropertyChainOf }
func (EquivalentObjectProperties) Kind() AxiomKind   { return AxiomKind_EquivalentObjectProperties }
func (DisjointObjectProperties) Kind() AxiomKind     { return AxiomKind_DisjointObjectProperties }
func (InverseObjectProperties) Kind() AxiomKind      { return AxiomKind_InverseObjectProperties }
func (ObjectPropertyDomain) Kind() AxiomKind         { return AxiomKind_ObjectPropertyDomain }
func (ObjectPropertyRange) Kind() AxiomKind          { return AxiomKind_ObjectPropertyRange }
func (ObjectPropertyCharacteristic) Kind() AxiomKind { return AxiomKind_ObjectPropertyCharacteristic }
func (AnnotationAssertion) Kind() AxiomKind          { return AxiomKind_AnnotationAssertion }
func (SubAnnotationPropertyOf) Kind() AxiomKind      { return AxiomKind_SubAnnotationPropertyOf }
func (ClassAssertion) Kind() AxiomKind               { return AxiomKind_ClassAssertion }
func (ObjectPropertyAssertion) Kind() AxiomKind      { return AxiomKind_ObjectPropertyAssertion }

func (a Declaration) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a SubClassOf) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a EquivalentClasses) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a DisjointClasses) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a SubObjectPropertyOf) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a SubPropertyChainOf) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a EquivalentObjectProperties) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a DisjointObjectProperties) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a InverseObjectProperties) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a ObjectPropertyDomain) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a ObjectPropertyRange) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a ObjectPropertyCharacteristic) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a AnnotationAssertion) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a SubAnnotationPropertyOf) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a ClassAssertion) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

func (a ObjectPropertyAssertion) withAnnotations(aa []Annotation) Axiom {
	a.AxiomAnnotations = aa
	return a
}

// WithAnnotations returns a copy of the axiom with the annotations replaced
func WithAnnotations(ax Axiom, anns []Annotation) Axiom {
	return ax.withAnnotations(anns)
}

// WithoutAnnotations returns a copy of the axiom without annotations
func WithoutAnnotations(ax Axiom) Axiom {
	return ax.withAnnotations(nil)
}
