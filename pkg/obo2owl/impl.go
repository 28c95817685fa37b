/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/obowriter"
	"github.com/voedger/oboformat/pkg/owl"
)

func newConverter(doc *obodoc.OBODoc, ontologyID string, opts Options) *converter {
	c := &converter{
		opts:       opts,
		doc:        doc,
		ids:        oboids.NewMapper(ontologyID, doc.IDSpaces()),
		shorthands: map[string]owl.IRI{},
		res:        &Result{},
	}
	var version owl.IRI
	if v, ok := doc.Header().TagValue(obodoc.Tag_DataVersion); ok {
		version = owl.IRI(oboids.VersionIRI(ontologyID, v))
	}
	c.o = owl.NewOntology(owl.IRI(oboids.OntologyIRI(ontologyID)), version)
	c.res.Ontology = c.o

	for _, d := range append(slices.Clone(opts.Imports), doc) {
		for _, f := range d.TypedefFrames() {
			if iri, ok := c.shorthand(f); ok {
				c.shorthands[f.ID] = iri
			}
		}
	}
	return c
}

// shorthand returns the IRI of a typedef with a colon-free id and a prefixed xref
func (c *converter) shorthand(f *obodoc.Frame) (owl.IRI, bool) {
	if strings.Contains(f.ID, ":") || oboids.IsURL(f.ID) {
		return "", false
	}
	for _, x := range f.ClausesOf(obodoc.Tag_Xref) {
		id := x.Text()
		prefix, _, ok := strings.Cut(id, ":")
		if !ok || oboids.IsURL(id) || slices.Contains(legacyRelationPrefixes, prefix) {
			continue
		}
		return owl.IRI(c.ids.IRI(id)), true
	}
	return "", false
}

func (c *converter) iri(id string) owl.IRI {
	if iri, ok := c.shorthands[id]; ok {
		return iri
	}
	return owl.IRI(c.ids.IRI(id))
}

func (c *converter) diag(kind oboconv.DiagnosticKind, f *obodoc.Frame, cl *obodoc.Clause, msg string, args ...any) {
	d := oboconv.Diagnostic{Kind: kind, Message: fmt.Sprintf(msg, args...)}
	if f != nil {
		d.FrameID = f.ID
	}
	if cl != nil {
		d.Tag = cl.TagName()
	}
	if logger.IsVerbose() {
		logger.Verbose(d.String())
	}
	c.res.Diagnostics = append(c.res.Diagnostics, d)
}

func (c *converter) add(aa ...owl.Axiom) {
	c.o.AddAxioms(aa...)
}

func (c *converter) convert() {
	c.convertHeader(c.doc.Header())
	for t := obodoc.FrameType_Term; t < obodoc.FrameType_Count; t++ {
		for _, f := range c.doc.Frames(t) {
			c.convertFrame(f)
		}
	}
}

func (c *converter) convertHeader(h *obodoc.Frame) {
	for _, cl := range h.Clauses() {
		if !c.checkShape(h, cl) {
			continue
		}
		switch cl.Tag {
		case obodoc.Tag_Ontology, obodoc.Tag_DataVersion:
		case obodoc.Tag_FormatVersion:
			c.o.AddAnnotation(owl.NewAnnotation(oboconv.FormatVersionProperty, owl.StringLiteral(cl.Text())))
		case obodoc.Tag_Remark:
			c.o.AddAnnotation(owl.NewAnnotation(oboconv.RemarkProperty, owl.StringLiteral(cl.Text())))
		case obodoc.Tag_Import:
			c.o.AddImport(importIRI(cl.Text()))
		case obodoc.Tag_Subsetdef:
			v := cl.Value.(obodoc.SubsetDef)
			p := c.iri(v.ID)
			c.add(
				owl.NewDeclaration(owl.EntityType_AnnotationProperty, p),
				owl.NewSubAnnotationPropertyOf(p, owl.OboInOwlSubsetProperty),
				owl.NewAnnotationAssertion(owl.RDFSComment, p, owl.StringLiteral(v.Description)),
			)
		case obodoc.Tag_Synonymtypedef:
			v := cl.Value.(obodoc.SynonymTypeDef)
			p := c.iri(v.ID)
			c.add(
				owl.NewDeclaration(owl.EntityType_AnnotationProperty, p),
				owl.NewSubAnnotationPropertyOf(p, owl.OboInOwlSynonymTypeProperty),
				owl.NewAnnotationAssertion(owl.RDFSLabel, p, owl.StringLiteral(v.Description)),
			)
			if v.Scope != "" {
				c.add(owl.NewAnnotationAssertion(owl.OboInOwlHasScope, p, owl.StringLiteral(v.Scope)))
			}
		case obodoc.Tag_OwlAxioms:
			axioms, err := owl.ParseAxioms(cl.Text())
			if err != nil {
				c.diag(oboconv.DiagnosticKind_Invalid, h, cl, "%v", err)
			}
			c.add(axioms...)
		case obodoc.Tag_PropertyValue:
			v := cl.Value.(obodoc.PropertyValue)
			c.o.AddAnnotation(owl.NewAnnotation(c.iri(v.Property), c.propertyValue(v), c.qualifierAnnotations(cl.Qualifiers)...))
		default:
			c.o.AddAnnotation(owl.NewAnnotation(oboconv.GenericProperty(cl.TagName()), owl.StringLiteral(headerValue(cl))))
		}
	}
}

// headerValue renders the clause value as written, without tag and comment
func headerValue(cl *obodoc.Clause) string {
	n := cl.Clone()
	n.Comment = ""
	return strings.TrimPrefix(obowriter.ClauseString(n, nil), cl.TagName()+": ")
}

// importIRI keeps URLs and places other import keys under the OBO PURL
func importIRI(key string) owl.IRI {
	if oboids.IsURL(key) {
		return owl.IRI(key)
	}
	return owl.IRI(oboids.OboPrefix + key)
}

func (c *converter) entityType(f *obodoc.Frame) owl.EntityType {
	switch f.Type {
	case obodoc.FrameType_Typedef:
		if f.IsTrue(obodoc.Tag_IsMetadataTag) {
			return owl.EntityType_AnnotationProperty
		}
		return owl.EntityType_ObjectProperty
	case obodoc.FrameType_Instance:
		return owl.EntityType_NamedIndividual
	}
	return owl.EntityType_Class
}

func (c *converter) convertFrame(f *obodoc.Frame) {
	subject := c.iri(f.ID)
	et := c.entityType(f)
	c.add(
		owl.NewDeclaration(et, subject),
		owl.NewAnnotationAssertion(owl.OboInOwlID, subject, owl.StringLiteral(f.ID)),
	)
	if _, ok := c.shorthands[f.ID]; ok && f.Type == obodoc.FrameType_Typedef {
		c.add(owl.NewAnnotationAssertion(owl.OboInOwlShorthand, subject, owl.StringLiteral(f.ID)))
	}

	var (
		intersections []*obodoc.Clause
		unions        []*obodoc.Clause
		seen          = map[string]bool{}
		singles       = map[obodoc.Tag]bool{}
	)
	for _, cl := range f.Clauses() {
		if !c.checkShape(f, cl) || !c.checkDuplicate(f, cl, seen, singles) {
			continue
		}
		switch cl.Tag {
		case obodoc.Tag_ID:
		case obodoc.Tag_IntersectionOf:
			intersections = append(intersections, cl)
		case obodoc.Tag_UnionOf:
			unions = append(unions, cl)
		default:
			c.convertClause(f, subject, et, cl)
		}
	}

	if len(intersections) > 0 {
		c.convertIntersection(f, subject, intersections)
	}
	if len(unions) > 0 {
		ops := make([]owl.ClassExpression, 0, len(unions))
		var anns []owl.Annotation
		for _, cl := range unions {
			ops = append(ops, owl.Class(c.iri(cl.Text())))
			anns = append(anns, c.qualifierAnnotations(cl.Qualifiers)...)
		}
		c.add(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(subject), owl.NewUnionOf(ops...)}, anns...))
	}
}

// checkShape returns false if the clause value does not fit the tag
func (c *converter) checkShape(f *obodoc.Frame, cl *obodoc.Clause) bool {
	if cl.HasValidShape() {
		return true
	}
	c.diag(oboconv.DiagnosticKind_Invalid, f, cl, "«%s» does not accept %T value", cl.TagName(), cl.Value)
	return false
}

// checkDuplicate returns false if the clause must be skipped
func (c *converter) checkDuplicate(f *obodoc.Frame, cl *obodoc.Clause, seen map[string]bool, singles map[obodoc.Tag]bool) bool {
	key := cl.Key()
	dup := seen[key] || (cl.Tag.IsSingleValued() && singles[cl.Tag])
	seen[key] = true
	if cl.Tag.IsSingleValued() {
		singles[cl.Tag] = true
	}
	if !dup {
		return true
	}
	c.diag(oboconv.DiagnosticKind_Duplicate, f, cl, "duplicate clause «%s»", strings.Join(cl.Tuple(), " "))
	if c.opts.Duplicates != nil {
		return c.opts.Duplicates.HandleDuplicateClause(f, cl)
	}
	return true
}

func (c *converter) convertClause(f *obodoc.Frame, subject owl.IRI, et owl.EntityType, cl *obodoc.Clause) {
	if p, ok := oboconv.TagProperty(cl.Tag); ok {
		if cl.Tag == obodoc.Tag_IsObsolete && !cl.BoolValue() {
			return
		}
		c.add(owl.NewAnnotationAssertion(p, subject, c.annotationValue(cl), c.clauseAnnotations(cl)...))
		return
	}
	if ch, ok := oboconv.TagCharacteristic(cl.Tag); ok {
		if cl.BoolValue() {
			c.add(owl.NewCharacteristic(ch, owl.ObjectProperty(subject), c.qualifierAnnotations(cl.Qualifiers)...))
		}
		return
	}

	anns := c.qualifierAnnotations(cl.Qualifiers)
	prop := owl.ObjectProperty(subject)
	switch cl.Tag {
	case obodoc.Tag_AltID:
		alt := c.iri(cl.Text())
		c.add(
			owl.NewDeclaration(et, alt),
			owl.NewAnnotationAssertion(owl.Deprecated, alt, owl.BoolLiteral(true)),
			owl.NewAnnotationAssertion(owl.IAOReplacedBy, alt, subject),
			owl.NewAnnotationAssertion(owl.IAOObsolescenceReason, alt, owl.IAOTermMerged),
		)

	case obodoc.Tag_Synonym:
		v := cl.Value.(obodoc.Synonym)
		anns := c.clauseAnnotations(cl)
		if v.Type != "" {
			anns = append(anns, owl.NewAnnotation(owl.OboInOwlHasSynonymType, c.iri(v.Type)))
		}
		c.add(owl.NewAnnotationAssertion(oboconv.SynonymProperty(v.Scope), subject, owl.StringLiteral(v.Text), anns...))

	case obodoc.Tag_PropertyValue:
		v := cl.Value.(obodoc.PropertyValue)
		c.add(owl.NewAnnotationAssertion(c.iri(v.Property), subject, c.propertyValue(v), anns...))

	case obodoc.Tag_IsA:
		target := c.iri(cl.Text())
		switch et {
		case owl.EntityType_Class:
			c.add(owl.NewSubClassOf(owl.Class(subject), owl.Class(target), anns...))
		case owl.EntityType_ObjectProperty:
			c.add(owl.NewSubObjectPropertyOf(prop, owl.ObjectProperty(target), anns...))
		case owl.EntityType_AnnotationProperty:
			c.add(owl.NewSubAnnotationPropertyOf(subject, target, anns...))
		default:
			c.diag(oboconv.DiagnosticKind_Invalid, f, cl, "is_a is not allowed in %v frames", f.Type)
		}

	case obodoc.Tag_InstanceOf:
		c.add(owl.NewClassAssertion(owl.Class(c.iri(cl.Text())), subject, anns...))

	case obodoc.Tag_Relationship:
		c.convertRelationship(f, subject, cl)

	case obodoc.Tag_EquivalentTo:
		target := c.iri(cl.Text())
		if f.Type == obodoc.FrameType_Typedef {
			c.add(owl.NewEquivalentObjectProperties([]owl.PropertyExpression{prop, owl.ObjectProperty(target)}, anns...))
		} else {
			c.add(owl.NewEquivalentClasses([]owl.ClassExpression{owl.Class(subject), owl.Class(target)}, anns...))
		}

	case obodoc.Tag_DisjointFrom:
		target := c.iri(cl.Text())
		if f.Type == obodoc.FrameType_Typedef {
			c.add(owl.NewDisjointObjectProperties([]owl.PropertyExpression{prop, owl.ObjectProperty(target)}, anns...))
		} else {
			c.add(owl.NewDisjointClasses([]owl.ClassExpression{owl.Class(subject), owl.Class(target)}, anns...))
		}

	case obodoc.Tag_Domain:
		c.add(owl.NewObjectPropertyDomain(prop, owl.Class(c.iri(cl.Text())), anns...))

	case obodoc.Tag_Range:
		c.add(owl.NewObjectPropertyRange(prop, owl.Class(c.iri(cl.Text())), anns...))

	case obodoc.Tag_InverseOf:
		c.add(owl.NewInverseObjectProperties(prop, owl.ObjectProperty(c.iri(cl.Text())), anns...))

	case obodoc.Tag_TransitiveOver:
		chain := []owl.PropertyExpression{prop, owl.ObjectProperty(c.iri(cl.Text()))}
		c.add(owl.NewSubPropertyChainOf(chain, prop, anns...))

	case obodoc.Tag_HoldsOverChain, obodoc.Tag_EquivalentToChain:
		v := cl.Value.(obodoc.Chain)
		chain := []owl.PropertyExpression{owl.ObjectProperty(c.iri(v.Rel1)), owl.ObjectProperty(c.iri(v.Rel2))}
		if cl.Tag == obodoc.Tag_EquivalentToChain {
			anns = append(anns, owl.NewAnnotation(oboconv.EquivalentToChain, owl.BoolLiteral(true)))
		}
		c.add(owl.NewSubPropertyChainOf(chain, prop, anns...))

	default:
		c.add(owl.NewAnnotationAssertion(oboconv.GenericProperty(cl.TagName()), subject, owl.StringLiteral(headerValue(cl))))
	}
}

func (c *converter) annotationValue(cl *obodoc.Clause) owl.AnnotationValue {
	switch v := cl.Value.(type) {
	case obodoc.Bool:
		return owl.BoolLiteral(bool(v))
	case obodoc.Ref:
		return c.iri(string(v))
	case obodoc.XrefValue:
		return owl.StringLiteral(v.IDRef)
	}
	return owl.StringLiteral(cl.Text())
}

func (c *converter) propertyValue(v obodoc.PropertyValue) owl.AnnotationValue {
	if !v.IsLiteral() {
		return c.iri(v.Value)
	}
	l := owl.StringLiteral(v.Value)
	if v.Datatype != "" {
		l.Datatype = owl.IRI(c.ids.IRI(v.Datatype))
	}
	return l
}

// clauseAnnotations returns axiom annotations for xrefs, xref descriptions and qualifiers
func (c *converter) clauseAnnotations(cl *obodoc.Clause) []owl.Annotation {
	var anns []owl.Annotation
	for _, x := range cl.Xrefs {
		anns = append(anns, xrefAnnotation(x))
	}
	if v, ok := cl.Value.(obodoc.XrefValue); ok && v.Annotation != "" {
		anns = append(anns, owl.NewAnnotation(owl.RDFSLabel, owl.StringLiteral(v.Annotation)))
	}
	return append(anns, c.qualifierAnnotations(cl.Qualifiers)...)
}

func xrefAnnotation(x obodoc.Xref) owl.Annotation {
	var nested []owl.Annotation
	if x.Annotation != "" {
		nested = append(nested, owl.NewAnnotation(owl.RDFSLabel, owl.StringLiteral(x.Annotation)))
	}
	return owl.NewAnnotation(owl.OboInOwlHasDbXref, owl.StringLiteral(x.IDRef), nested...)
}

func (c *converter) qualifierAnnotations(qq []obodoc.QualifierValue) []owl.Annotation {
	anns := make([]owl.Annotation, 0, len(qq))
	for _, q := range qq {
		anns = append(anns, owl.NewAnnotation(oboconv.GenericProperty(q.Qualifier), owl.StringLiteral(q.Value)))
	}
	return anns
}
