/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

func newConverter(o *owl.Ontology, opts Options) *converter {
	return &converter{
		opts:        opts,
		o:           o,
		doc:         obodoc.New(),
		idOf:        map[owl.IRI]string{},
		frames:      map[owl.IRI]*obodoc.Frame{},
		headerProps: map[owl.IRI]bool{},
		altIDs:      map[owl.IRI]owl.IRI{},
		res:         &Result{},
	}
}

func (c *converter) convert() {
	ontologyID := c.convertHeader()
	c.ids = oboids.NewMapper(ontologyID, c.doc.IDSpaces())
	c.collectIDs()
	c.convertHeaderPropertyValues()
	c.convertHeaderProperties()
	c.collectAltIDs()
	c.createFrames()

	for _, ax := range c.o.Axioms() {
		switch a := ax.(type) {
		case owl.Declaration:
		case owl.AnnotationAssertion:
			c.convertAnnotationAssertion(a)
		default:
			c.convertLogical(ax)
		}
	}

	for _, alt := range sortedKeys(c.altIDs) {
		if f := c.frames[c.altIDs[alt]]; f != nil {
			c.addClause(f, obodoc.NewClause(obodoc.Tag_AltID, obodoc.Ref(c.id(alt))))
		}
	}

	if len(c.res.Untranslatable) > 0 && !c.opts.Policy.MuteUntranslatable && !c.opts.Policy.Strict {
		ss := make([]string, len(c.res.Untranslatable))
		for i, ax := range c.res.Untranslatable {
			ss[i] = ax.String()
		}
		c.doc.Header().AddClause(obodoc.NewClause(obodoc.Tag_OwlAxioms, obodoc.Text(strings.Join(ss, "\n"))))
	}
	c.res.Doc = c.doc
}

// id returns the OBO id of the entity
func (c *converter) id(iri owl.IRI) string {
	if id, ok := c.idOf[iri]; ok {
		return id
	}
	return c.ids.ID(string(iri))
}

func (c *converter) collectIDs() {
	for _, ax := range c.o.AxiomsOfKind(owl.AxiomKind_AnnotationAssertion) {
		a := ax.(owl.AnnotationAssertion)
		l, ok := a.Value.(owl.Literal)
		if !ok {
			continue
		}
		switch a.Property {
		case owl.OboInOwlID:
			if _, exists := c.idOf[a.Subject]; !exists {
				c.idOf[a.Subject] = l.Value
			}
		case owl.OboInOwlShorthand:
			c.idOf[a.Subject] = l.Value
		}
	}
}

// collectAltIDs finds entities deprecated because they were merged into a declared entity
func (c *converter) collectAltIDs() {
	for _, e := range c.deprecated() {
		reason, _ := c.o.AnnotationValue(e, owl.IAOObsolescenceReason)
		if reason != owl.IAOTermMerged {
			continue
		}
		v, _ := c.o.AnnotationValue(e, owl.IAOReplacedBy)
		if target, ok := v.(owl.IRI); ok && len(c.o.EntityTypes(target)) > 0 {
			c.altIDs[e] = target
		}
	}
}

func (c *converter) deprecated() (res []owl.IRI) {
	for _, ax := range c.o.AxiomsOfKind(owl.AxiomKind_AnnotationAssertion) {
		a := ax.(owl.AnnotationAssertion)
		if a.Property != owl.Deprecated {
			continue
		}
		if l, ok := a.Value.(owl.Literal); ok && l.Value == obodoc.TrueValue {
			res = append(res, a.Subject)
		}
	}
	return res
}

func (c *converter) createFrames() {
	for _, ax := range c.o.AxiomsOfKind(owl.AxiomKind_Declaration) {
		e := ax.(owl.Declaration).Entity
		if _, ok := c.altIDs[e.IRI]; ok || c.headerProps[e.IRI] {
			continue
		}
		var ft obodoc.FrameType
		switch e.Type {
		case owl.EntityType_Class:
			ft = obodoc.FrameType_Term
		case owl.EntityType_ObjectProperty:
			ft = obodoc.FrameType_Typedef
		case owl.EntityType_NamedIndividual:
			ft = obodoc.FrameType_Instance
		case owl.EntityType_AnnotationProperty:
			v, _ := c.o.AnnotationValue(e.IRI, owl.OboInOwlIsMetadataTag)
			if l, ok := v.(owl.Literal); !ok || l.Value != obodoc.TrueValue {
				continue
			}
			ft = obodoc.FrameType_Typedef
		default:
			continue
		}
		if _, ok := c.frames[e.IRI]; ok {
			continue
		}
		f := obodoc.NewFrame(ft, c.id(e.IRI))
		if err := c.doc.AddFrame(f); err != nil {
			c.diag(oboconv.DiagnosticKind_Invalid, f.ID, "", "%v", err)
			continue
		}
		c.frames[e.IRI] = c.doc.Frame(ft, f.ID)
	}
}

func (c *converter) diag(kind oboconv.DiagnosticKind, frameID, tag string, msg string, args ...any) {
	d := oboconv.Diagnostic{Kind: kind, FrameID: frameID, Tag: tag, Message: fmt.Sprintf(msg, args...)}
	if logger.IsVerbose() {
		logger.Verbose(d.String())
	}
	c.res.Diagnostics = append(c.res.Diagnostics, d)
}

func (c *converter) untranslatable(ax owl.Axiom, msg string, args ...any) {
	err := &TranslationError{Axiom: ax, Msg: fmt.Sprintf(msg, args...)}
	if c.opts.Policy.Strict {
		c.errs = append(c.errs, err)
		return
	}
	c.res.Untranslatable = append(c.res.Untranslatable, ax)
	c.diag(oboconv.DiagnosticKind_Untranslatable, "", "", "%s: %s", ax.String(), err.Msg)
}

// addClause adds the clause to the frame. Repeated single valued tags go through the duplicate handler
func (c *converter) addClause(f *obodoc.Frame, cl *obodoc.Clause) {
	if f.ContainsClause(cl) {
		return
	}
	if cl.Tag.IsSingleValued() && f.Clause(cl.Tag) != nil {
		c.diag(oboconv.DiagnosticKind_Duplicate, f.ID, cl.TagName(), "«%s» is already set", f.Clause(cl.Tag).Text())
		if c.opts.Duplicates == nil || !c.opts.Duplicates.HandleDuplicateClause(f, cl) {
			return
		}
	}
	f.AddClause(cl)
}

// frameOf returns the frame of the named entity of the expected type
func (c *converter) frameOf(iri owl.IRI, ft obodoc.FrameType) *obodoc.Frame {
	f, ok := c.frames[iri]
	if !ok || f.Type != ft {
		return nil
	}
	return f
}
