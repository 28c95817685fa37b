/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import (
	"sort"
	"strconv"
	"strings"
)

func (i IRI) String() string    { return "<" + string(i) + ">" }
func (IRI) isAnnotationValue()   {}
func (c Class) String() string  { return IRI(c).String() }
func (Class) isClassExpression() {}

func (p ObjectProperty) String() string  { return IRI(p).String() }
func (ObjectProperty) isPropertyExpression() {}

func (p ObjectInverseOf) String() string   { return "ObjectInverseOf(" + p.Property.String() + ")" }
func (ObjectInverseOf) isPropertyExpression() {}

func (r ObjectSomeValuesFrom) String() string {
	return "ObjectSomeValuesFrom(" + r.Property.String() + " " + r.Filler.String() + ")"
}
func (ObjectSomeValuesFrom) isClassExpression() {}

func (r ObjectAllValuesFrom) String() string {
	return "ObjectAllValuesFrom(" + r.Property.String() + " " + r.Filler.String() + ")"
}
func (ObjectAllValuesFrom) isClassExpression() {}

var cardinalityNames = map[CardinalityKind]string{
	CardinalityKind_Exact: "ObjectExactCardinality",
	CardinalityKind_Min:   "ObjectMinCardinality",
	CardinalityKind_Max:   "ObjectMaxCardinality",
}

func (r ObjectCardinality) String() string {
	s := cardinalityNames[r.Kind] + "(" + strconv.Itoa(r.N) + " " + r.Property.String()
	if r.Filler != nil {
		s += " " + r.Filler.String()
	}
	return s + ")"
}
func (ObjectCardinality) isClassExpression() {}

func (x ObjectIntersectionOf) String() string {
	return "ObjectIntersectionOf(" + joinExpressions(x.Operands) + ")"
}
func (ObjectIntersectionOf) isClassExpression() {}

func (x ObjectUnionOf) String() string {
	return "ObjectUnionOf(" + joinExpressions(x.Operands) + ")"
}
func (ObjectUnionOf) isClassExpression() {}

func (x ObjectComplementOf) String() string {
	return "ObjectComplementOf(" + x.Operand.String() + ")"
}
func (ObjectComplementOf) isClassExpression() {}

func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Value) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "":
		return s + "^^" + abbreviate(l.Datatype)
	}
	return s
}
func (Literal) isAnnotationValue() {}

func (a Annotation) String() string {
	return "Annotation(" + annotationsPrefix(a.Annotations) + a.Property.String() + " " + a.Value.String() + ")"
}

func (e Entity) String() string {
	return entityTypeNames[e.Type] + "(" + e.IRI.String() + ")"
}

var entityTypeNames = map[EntityType]string{
	EntityType_Class:              "Class",
	EntityType_ObjectProperty:     "ObjectProperty",
	EntityType_AnnotationProperty: "AnnotationProperty",
	EntityType_NamedIndividual:    "NamedIndividual",
	EntityType_Datatype:           "Datatype",
}

func (a Declaration) String() string {
	return "Declaration(" + annotationsPrefix(a.AxiomAnnotations) + a.Entity.String() + ")"
}

func (a SubClassOf) String() string {
	return "SubClassOf(" + annotationsPrefix(a.AxiomAnnotations) + a.Sub.String() + " " + a.Super.String() + ")"
}

func (a EquivalentClasses) String() string {
	return "EquivalentClasses(" + annotationsPrefix(a.AxiomAnnotations) + joinExpressions(a.Classes) + ")"
}

func (a DisjointClasses) String() string {
	return "DisjointClasses(" + annotationsPrefix(a.AxiomAnnotations) + joinExpressions(a.Classes) + ")"
}

func (a SubObjectPropertyOf) String() string {
	return "SubObjectPropertyOf(" + annotationsPrefix(a.AxiomAnnotations) + a.Sub.String() + " " + a.Super.String() + ")"
}

func (a SubPropertyChainOf) String() string {
	return "SubObjectPropertyOf(" + annotationsPrefix(a.AxiomAnnotations) +
		"ObjectPropertyChain(" + joinProperties(a.Chain) + ") " + a.Super.String() + ")"
}

func (a EquivalentObjectProperties) String() string {
	return "EquivalentObjectProperties(" + annotationsPrefix(a.AxiomAnnotations) + joinProperties(a.Properties) + ")"
}

func (a DisjointObjectProperties) String() string {
	return "DisjointObjectProperties(" + annotationsPrefix(a.AxiomAnnotations) + joinProperties(a.Properties) + ")"
}

func (a InverseObjectProperties) String() string {
	return "InverseObjectProperties(" + annotationsPrefix(a.AxiomAnnotations) + a.First.String() + " " + a.Second.String() + ")"
}

func (a ObjectPropertyDomain) String() string {
	return "ObjectPropertyDomain(" + annotationsPrefix(a.AxiomAnnotations) + a.Property.String() + " " + a.Domain.String() + ")"
}

func (a ObjectPropertyRange) String() string {
	return "ObjectPropertyRange(" + annotationsPrefix(a.AxiomAnnotations) + a.Property.String() + " " + a.Range.String() + ")"
}

func (a ObjectPropertyCharacteristic) String() string {
	return characteristicNames[a.Characteristic] + "(" + annotationsPrefix(a.AxiomAnnotations) + a.Property.String() + ")"
}

func (a AnnotationAssertion) String() string {
	return "AnnotationAssertion(" + annotationsPrefix(a.AxiomAnnotations) +
		a.Property.String() + " " + a.Subject.String() + " " + a.Value.String() + ")"
}

func (a SubAnnotationPropertyOf) String() string {
	return "SubAnnotationPropertyOf(" + annotationsPrefix(a.AxiomAnnotations) + a.Sub.String() + " " + a.Super.String() + ")"
}

func (a ClassAssertion) String() string {
	return "ClassAssertion(" + annotationsPrefix(a.AxiomAnnotations) + a.Class.String() + " " + a.Individual.String() + ")"
}

func (a ObjectPropertyAssertion) String() string {
	return "ObjectPropertyAssertion(" + annotationsPrefix(a.AxiomAnnotations) +
		a.Property.String() + " " + a.Subject.String() + " " + a.Object.String() + ")"
}

func annotationsPrefix(anns []Annotation) string {
	if len(anns) == 0 {
		return ""
	}
	ss := make([]string, len(anns))
	for i, a := range anns {
		ss[i] = a.String()
	}
	sort.Strings(ss)
	return strings.Join(ss, " ") + " "
}

func joinExpressions(cc []ClassExpression) string {
	ss := make([]string, len(cc))
	for i, c := range cc {
		ss[i] = c.String()
	}
	return strings.Join(ss, " ")
}

func joinProperties(pp []PropertyExpression) string {
	ss := make([]string, len(pp))
	for i, p := range pp {
		ss[i] = p.String()
	}
	return strings.Join(ss, " ")
}

func escapeLiteral(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func unescapeLiteral(s string) string {
	b := strings.Builder{}
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// abbreviate renders the IRI with a known prefix or in angle brackets
func abbreviate(iri IRI) string {
	for p, ns := range Prefixes {
		if p == "obo" {
			continue
		}
		if local, ok := strings.CutPrefix(string(iri), ns); ok && isLocalName(local) {
			return p + ":" + local
		}
	}
	return iri.String()
}

func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r == '-' || r == '.' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
