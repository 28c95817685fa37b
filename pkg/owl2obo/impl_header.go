/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"fmt"
	"strings"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/oboparser"
	"github.com/voedger/oboformat/pkg/owl"
)

// convertHeader fills the header from the ontology id, imports and annotations. Returns the ontology id
func (c *converter) convertHeader() string {
	h := c.doc.Header()
	id := c.o.ID()

	ontologyID := c.opts.DefaultOntologyID
	if !c.o.IsAnonymous() {
		ontologyID = oboids.OntologyIDFromIRI(string(id.IRI))
	}
	if ontologyID != "" {
		h.AddClause(obodoc.NewClause(obodoc.Tag_Ontology, obodoc.Text(ontologyID)))
	}
	if id.VersionIRI != "" {
		h.AddClause(obodoc.NewClause(obodoc.Tag_DataVersion, obodoc.Text(oboids.VersionFromIRI(ontologyID, string(id.VersionIRI)))))
	}
	for _, i := range c.o.Imports() {
		h.AddClause(obodoc.NewClause(obodoc.Tag_Import, obodoc.Ref(importKey(i))))
	}

	for _, a := range c.o.Annotations() {
		l, isLiteral := a.Value.(owl.Literal)
		name, generic := oboconv.GenericName(a.Property)
		switch {
		case a.Property == oboconv.FormatVersionProperty && isLiteral:
			h.AddClause(obodoc.NewClause(obodoc.Tag_FormatVersion, obodoc.Text(l.Value)))
		case a.Property == oboconv.RemarkProperty && isLiteral:
			h.AddClause(obodoc.NewClause(obodoc.Tag_Remark, obodoc.Text(l.Value)))
		case generic && isLiteral:
			cl, err := parseClause(name, l.Value)
			if err != nil {
				c.diag(oboconv.DiagnosticKind_Invalid, "", name, "%v", err)
				cl = obodoc.NewUnrecognizedClause(name, l.Value)
			}
			h.AddClause(cl)
		}
	}
	if h.Clause(obodoc.Tag_FormatVersion) == nil {
		h.AddClause(obodoc.NewClause(obodoc.Tag_FormatVersion, obodoc.Text(obodoc.DefaultFormatVersion)))
	}
	return ontologyID
}

// convertHeaderPropertyValues restores header property_value clauses. Requires the id mapper
func (c *converter) convertHeaderPropertyValues() {
	h := c.doc.Header()
	for _, a := range c.o.Annotations() {
		_, isLiteral := a.Value.(owl.Literal)
		_, generic := oboconv.GenericName(a.Property)
		if isLiteral && (generic || a.Property == oboconv.FormatVersionProperty || a.Property == oboconv.RemarkProperty) {
			continue
		}
		cl := obodoc.NewClause(obodoc.Tag_PropertyValue, c.propertyValue(a.Property, a.Value))
		cl.Qualifiers = c.qualifiers(a.Annotations)
		h.AddClause(cl)
	}
}

// parseClause reads a clause written as "tag: value"
func parseClause(tag, value string) (*obodoc.Clause, error) {
	doc, err := oboparser.ParseString(tag + ": " + value + "\n")
	if err != nil {
		return nil, err
	}
	cc := doc.Header().Clauses()
	if len(cc) == 0 {
		return nil, fmt.Errorf("no clause in «%s: %s»", tag, value)
	}
	return cc[0], nil
}

// importKey is the inverse of the import IRI produced for OBO import keys
func importKey(iri owl.IRI) string {
	if key, ok := strings.CutPrefix(string(iri), oboids.OboPrefix); ok && key != "" {
		return key
	}
	return string(iri)
}

// convertHeaderProperties restores subsetdef and synonymtypedef clauses
func (c *converter) convertHeaderProperties() {
	h := c.doc.Header()
	for _, ax := range c.o.AxiomsOfKind(owl.AxiomKind_SubAnnotationPropertyOf) {
		a := ax.(owl.SubAnnotationPropertyOf)
		switch a.Super {
		case owl.OboInOwlSubsetProperty:
			desc := c.literalValue(a.Sub, owl.RDFSComment)
			h.AddClause(obodoc.NewClause(obodoc.Tag_Subsetdef, obodoc.SubsetDef{ID: c.id(a.Sub), Description: desc}))
		case owl.OboInOwlSynonymTypeProperty:
			v := obodoc.SynonymTypeDef{
				ID:          c.id(a.Sub),
				Description: c.literalValue(a.Sub, owl.RDFSLabel),
				Scope:       c.literalValue(a.Sub, owl.OboInOwlHasScope),
			}
			h.AddClause(obodoc.NewClause(obodoc.Tag_Synonymtypedef, v))
		default:
			continue
		}
		c.headerProps[a.Sub] = true
	}
}

func (c *converter) literalValue(subject, property owl.IRI) string {
	v, _ := c.o.AnnotationValue(subject, property)
	if l, ok := v.(owl.Literal); ok {
		return l.Value
	}
	return ""
}
