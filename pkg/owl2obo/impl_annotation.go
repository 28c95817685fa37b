/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

func (c *converter) convertAnnotationAssertion(a owl.AnnotationAssertion) {
	if _, ok := c.altIDs[a.Subject]; ok || c.headerProps[a.Subject] {
		return
	}
	switch a.Property {
	case owl.OboInOwlID, owl.OboInOwlShorthand:
		return
	}
	f, ok := c.frames[a.Subject]
	if !ok {
		c.untranslatable(a, "subject is not a declared class, property or individual")
		return
	}

	if scope, ok := oboconv.SynonymScope(a.Property); ok {
		c.convertSynonym(f, a, scope)
		return
	}
	if tag, ok := oboconv.PropertyTag(a.Property); ok {
		c.convertTagAnnotation(f, a, tag)
		return
	}
	if target, ok := a.Value.(owl.IRI); ok && f.Type == obodoc.FrameType_Typedef && c.o.IsDeclared(a.Property, owl.EntityType_ObjectProperty) {
		cl := obodoc.NewClause(obodoc.Tag_Relationship, obodoc.Relation{Rel: c.id(a.Property), Target: c.id(target)})
		cl.Qualifiers = c.qualifiers(a.Annotations())
		c.addClause(f, cl)
		return
	}
	if name, ok := oboconv.GenericName(a.Property); ok {
		if l, ok := a.Value.(owl.Literal); ok {
			cl, err := parseClause(name, l.Value)
			if err != nil {
				c.untranslatable(a, "%v", err)
				return
			}
			c.addClause(f, cl)
			return
		}
	}

	cl := obodoc.NewClause(obodoc.Tag_PropertyValue, c.propertyValue(a.Property, a.Value))
	cl.Qualifiers = c.qualifiers(a.Annotations())
	c.addClause(f, cl)
}

func (c *converter) convertSynonym(f *obodoc.Frame, a owl.AnnotationAssertion, scope string) {
	l, ok := a.Value.(owl.Literal)
	if !ok {
		c.untranslatable(a, "synonym value is not a literal")
		return
	}
	syn := obodoc.Synonym{Text: l.Value, Scope: scope}
	var rest []owl.Annotation
	for _, ann := range a.Annotations() {
		if t, ok := ann.Value.(owl.IRI); ok && ann.Property == owl.OboInOwlHasSynonymType {
			syn.Type = c.id(t)
			continue
		}
		rest = append(rest, ann)
	}
	cl := obodoc.NewClause(obodoc.Tag_Synonym, syn)
	cl.Xrefs, rest = xrefs(rest)
	cl.Qualifiers = c.qualifiers(rest)
	c.addClause(f, cl)
}

func (c *converter) convertTagAnnotation(f *obodoc.Frame, a owl.AnnotationAssertion, tag obodoc.Tag) {
	l, isLiteral := a.Value.(owl.Literal)
	iri, isIRI := a.Value.(owl.IRI)
	rest := a.Annotations()

	var v obodoc.ClauseValue
	switch tag.Shape() {
	case obodoc.Shape_Bool:
		if !isLiteral || (l.Value != obodoc.TrueValue && l.Value != obodoc.FalseValue) {
			c.untranslatable(a, "boolean value expected")
			return
		}
		if tag == obodoc.Tag_IsObsolete && l.Value == obodoc.FalseValue {
			return
		}
		v = obodoc.Bool(l.Value == obodoc.TrueValue)
	case obodoc.Shape_Ref:
		switch {
		case isIRI:
			v = obodoc.Ref(c.id(iri))
		case isLiteral:
			v = obodoc.Ref(l.Value)
		}
	case obodoc.Shape_Quoted:
		if isLiteral {
			v = obodoc.Quoted(l.Value)
		}
	case obodoc.Shape_Xref:
		if isLiteral {
			x := obodoc.XrefValue{IDRef: l.Value}
			x.Annotation, rest = label(rest)
			v = x
		}
	default:
		if isLiteral {
			v = obodoc.Text(l.Value)
		}
	}
	if v == nil {
		c.untranslatable(a, "unexpected %s value", tag)
		return
	}

	cl := obodoc.NewClause(tag, v)
	if tag.HasXrefList() {
		cl.Xrefs, rest = xrefs(rest)
	}
	cl.Qualifiers = c.qualifiers(rest)
	c.addClause(f, cl)
}

// propertyValue returns the property_value for an annotation which has no dedicated tag
func (c *converter) propertyValue(p owl.IRI, value owl.AnnotationValue) obodoc.PropertyValue {
	pv := obodoc.PropertyValue{Property: c.id(p)}
	switch v := value.(type) {
	case owl.IRI:
		pv.Value = c.id(v)
	case owl.Literal:
		pv.Value, pv.Quoted = v.Value, true
		dt := v.Datatype
		if dt == "" {
			dt = owl.XSDString
		}
		pv.Datatype = c.id(dt)
	}
	return pv
}

// qualifiers translates axiom annotations into clause qualifiers
func (c *converter) qualifiers(anns []owl.Annotation) []obodoc.QualifierValue {
	var res []obodoc.QualifierValue
	for _, a := range anns {
		key, ok := oboconv.GenericName(a.Property)
		if !ok {
			key = c.id(a.Property)
		}
		var value string
		switch v := a.Value.(type) {
		case owl.Literal:
			value = v.Value
		case owl.IRI:
			value = c.id(v)
		}
		res = append(res, obodoc.QualifierValue{Qualifier: key, Value: value})
	}
	return res
}

// xrefs extracts hasDbXref annotations
func xrefs(anns []owl.Annotation) (res []obodoc.Xref, rest []owl.Annotation) {
	for _, a := range anns {
		if l, ok := a.Value.(owl.Literal); ok && a.Property == owl.OboInOwlHasDbXref {
			x := obodoc.Xref{IDRef: l.Value}
			x.Annotation, _ = label(a.Annotations)
			res = append(res, x)
			continue
		}
		rest = append(rest, a)
	}
	return res, rest
}

// label extracts the rdfs:label annotation
func label(anns []owl.Annotation) (string, []owl.Annotation) {
	for i, a := range anns {
		if l, ok := a.Value.(owl.Literal); ok && a.Property == owl.RDFSLabel {
			rest := append(append([]owl.Annotation{}, anns[:i]...), anns[i+1:]...)
			return l.Value, rest
		}
	}
	return "", anns
}
