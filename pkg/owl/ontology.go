/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// NewOntology returns an empty ontology. Ontology without IRI gets a unique urn:uuid IRI
func NewOntology(iri, versionIRI IRI) *Ontology {
	o := &Ontology{
		id:        OntologyID{IRI: iri, VersionIRI: versionIRI},
		axioms:    map[string]Axiom{},
		bySubject: map[IRI][]string{},
		declared:  map[IRI][]EntityType{},
	}
	if iri == "" {
		o.id.IRI = IRI(anonymousIRIPrefix + uuid.NewString())
		o.anonymous = true
	}
	return o
}

func (o *Ontology) ID() OntologyID {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.id
}

// IsAnonymous returns true if the ontology IRI was generated
func (o *Ontology) IsAnonymous() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.anonymous
}

func (o *Ontology) SetID(id OntologyID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.id = id
	o.anonymous = false
}

func (o *Ontology) AddAnnotation(a Annotation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, exists := range o.annotations {
		if exists.String() == a.String() {
			return
		}
	}
	o.annotations = append(o.annotations, a)
}

// Annotations returns ontology annotations in insertion order
func (o *Ontology) Annotations() []Annotation {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.annotations)
}

func (o *Ontology) AddImport(iri IRI) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !slices.Contains(o.imports, iri) {
		o.imports = append(o.imports, iri)
	}
}

// Imports returns imported ontology IRIs in insertion order
func (o *Ontology) Imports() []IRI {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.imports)
}

// AddAxiom adds the axiom. Returns false if an equal axiom is already present
func (o *Ontology) AddAxiom(ax Axiom) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.addAxiom(ax)
}

func (o *Ontology) addAxiom(ax Axiom) bool {
	key := ax.String()
	if _, ok := o.axioms[key]; ok {
		return false
	}
	o.axioms[key] = ax
	o.order = append(o.order, key)
	switch a := ax.(type) {
	case AnnotationAssertion:
		o.bySubject[a.Subject] = append(o.bySubject[a.Subject], key)
	case Declaration:
		if !slices.Contains(o.declared[a.Entity.IRI], a.Entity.Type) {
			o.declared[a.Entity.IRI] = append(o.declared[a.Entity.IRI], a.Entity.Type)
		}
	}
	return true
}

// AddAxioms adds axioms and returns the number of added ones
func (o *Ontology) AddAxioms(aa ...Axiom) (added int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ax := range aa {
		if o.addAxiom(ax) {
			added++
		}
	}
	return added
}

// RemoveAxiom removes the axiom. Returns false if the axiom is absent
func (o *Ontology) RemoveAxiom(ax Axiom) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	key := ax.String()
	if _, ok := o.axioms[key]; !ok {
		return false
	}
	delete(o.axioms, key)
	o.order = removeString(o.order, key)
	switch a := ax.(type) {
	case AnnotationAssertion:
		o.bySubject[a.Subject] = removeString(o.bySubject[a.Subject], key)
	case Declaration:
		o.declared[a.Entity.IRI] = nil
		for _, k := range o.order {
			if d, ok := o.axioms[k].(Declaration); ok && d.Entity.IRI == a.Entity.IRI {
				o.declared[a.Entity.IRI] = append(o.declared[a.Entity.IRI], d.Entity.Type)
			}
		}
	}
	return true
}

// ContainsAxiom returns true if the equal axiom, annotations included, is present
func (o *Ontology) ContainsAxiom(ax Axiom) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.axioms[ax.String()]
	return ok
}

// Axioms returns all axioms in insertion order
func (o *Ontology) Axioms() []Axiom {
	o.mu.RLock()
	defer o.mu.RUnlock()
	res := make([]Axiom, len(o.order))
	for i, k := range o.order {
		res[i] = o.axioms[k]
	}
	return res
}

// AxiomsOfKind returns axioms of the kind in insertion order
func (o *Ontology) AxiomsOfKind(kind AxiomKind) (res []Axiom) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, k := range o.order {
		if ax := o.axioms[k]; ax.Kind() == kind {
			res = append(res, ax)
		}
	}
	return res
}

// AxiomCount returns the number of axioms
func (o *Ontology) AxiomCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.order)
}

// AnnotationAssertions returns annotation assertions about the subject in insertion order
func (o *Ontology) AnnotationAssertions(subject IRI) []AnnotationAssertion {
	o.mu.RLock()
	defer o.mu.RUnlock()
	res := make([]AnnotationAssertion, 0, len(o.bySubject[subject]))
	for _, k := range o.bySubject[subject] {
		res = append(res, o.axioms[k].(AnnotationAssertion))
	}
	return res
}

// AnnotationValue returns the first value of the annotation property asserted about the subject
func (o *Ontology) AnnotationValue(subject, property IRI) (AnnotationValue, bool) {
	for _, a := range o.AnnotationAssertions(subject) {
		if a.Property == property {
			return a.Value, true
		}
	}
	return nil, false
}

// Label returns the rdfs:label of the entity
func (o *Ontology) Label(iri IRI) (string, bool) {
	if v, ok := o.AnnotationValue(iri, RDFSLabel); ok {
		if l, ok := v.(Literal); ok {
			return l.Value, true
		}
	}
	return "", false
}

// EntityTypes returns the declared types of the IRI
func (o *Ontology) EntityTypes(iri IRI) []EntityType {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.declared[iri])
}

// IsDeclared returns true if the IRI is declared with the type
func (o *Ontology) IsDeclared(iri IRI, t EntityType) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Contains(o.declared[iri], t)
}

// Entities returns IRIs declared with the type in declaration order
func (o *Ontology) Entities(t EntityType) (res []IRI) {
	for _, ax := range o.AxiomsOfKind(AxiomKind_Declaration) {
		if d := ax.(Declaration); d.Entity.Type == t {
			res = append(res, d.Entity.IRI)
		}
	}
	return res
}

// FindByLabel returns the entity IRI with the label
func (o *Ontology) FindByLabel(label string) (IRI, bool) {
	for _, ax := range o.AxiomsOfKind(AxiomKind_AnnotationAssertion) {
		a := ax.(AnnotationAssertion)
		if a.Property != RDFSLabel {
			continue
		}
		if l, ok := a.Value.(Literal); ok && l.Value == label {
			return a.Subject, true
		}
	}
	return "", false
}

// String renders the ontology document in functional syntax
func (o *Ontology) String() string {
	id := o.ID()
	b := strings.Builder{}
	b.WriteString("Ontology(" + id.IRI.String())
	if id.VersionIRI != "" {
		b.WriteString(" " + id.VersionIRI.String())
	}
	b.WriteString("\n")
	for _, i := range o.Imports() {
		b.WriteString("Import(" + i.String() + ")\n")
	}
	for _, a := range o.Annotations() {
		b.WriteString(a.String() + "\n")
	}
	for _, ax := range o.Axioms() {
		b.WriteString(ax.String() + "\n")
	}
	b.WriteString(")\n")
	return b.String()
}

func removeString(ss []string, s string) []string {
	if i := slices.Index(ss, s); i >= 0 {
		return slices.Delete(ss, i, i+1)
	}
	return ss
}
