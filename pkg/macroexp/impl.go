/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package macroexp

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/manchester"
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

func newExpander(o *owl.Ontology, opts Options) *expander {
	e := &expander{
		opts:        opts,
		src:         o,
		r:           manchester.NewOntologyResolver(o, opts.IDs),
		expressions: map[owl.IRI]*manchester.Expression{},
		assertions:  map[owl.IRI][]*manchester.Frame{},
		res:         &Result{},
	}
	e.collectTemplates()
	return e
}

func (e *expander) collectTemplates() {
	for _, ax := range e.src.AxiomsOfKind(owl.AxiomKind_AnnotationAssertion) {
		a := ax.(owl.AnnotationAssertion)
		l, ok := a.Value.(owl.Literal)
		if !ok {
			continue
		}
		switch a.Property {
		case owl.IAOExpandExpression:
			x, err := manchester.ParseExpression(l.Value)
			if err != nil {
				e.diag(a.Subject, obodoc.Tag_ExpandExpressionTo, "%v", err)
				continue
			}
			if prev, ok := e.expressions[a.Subject]; ok {
				e.diag(a.Subject, obodoc.Tag_ExpandExpressionTo, "template «%s» ignored, «%s» is used", l.Value, prev)
				continue
			}
			e.expressions[a.Subject] = x
		case owl.IAOExpandAssertion:
			f, err := manchester.ParseFrame(l.Value)
			if err != nil {
				e.diag(a.Subject, obodoc.Tag_ExpandAssertionTo, "%v", err)
				continue
			}
			e.assertions[a.Subject] = append(e.assertions[a.Subject], f)
		}
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%d expression and %d assertion templates found", len(e.expressions), len(e.assertions)))
	}
}

func (e *expander) diag(property owl.IRI, tag obodoc.Tag, msg string, args ...any) {
	d := oboconv.Diagnostic{
		Kind:    oboconv.DiagnosticKind_Invalid,
		FrameID: oboids.IRIToOboID(string(property)),
		Tag:     tag.String(),
		Message: fmt.Sprintf(msg, args...),
	}
	if logger.IsVerbose() {
		logger.Verbose(d.String())
	}
	e.res.Diagnostics = append(e.res.Diagnostics, d)
}

// expansion returns the template instance for `P some Y` if P has an expression template
func (e *expander) expansion(ce owl.ClassExpression) (owl.ClassExpression, bool) {
	some, ok := ce.(owl.ObjectSomeValuesFrom)
	if !ok {
		return nil, false
	}
	p, ok1 := some.Property.(owl.ObjectProperty)
	filler, ok2 := some.Filler.(owl.Class)
	if !ok1 || !ok2 {
		return nil, false
	}
	x, ok := e.expressions[owl.IRI(p)]
	if !ok {
		return nil, false
	}
	res, err := x.Eval(e.r, manchester.Bindings{varFiller: owl.IRI(filler)})
	if err != nil {
		e.diag(owl.IRI(p), obodoc.Tag_ExpandExpressionTo, "%v", err)
		return nil, false
	}
	return res, true
}

// rewrite replaces every expandable restriction inside the class expression
func (e *expander) rewrite(ce owl.ClassExpression) (owl.ClassExpression, bool) {
	if x, ok := e.expansion(ce); ok {
		return x, true
	}
	switch x := ce.(type) {
	case owl.ObjectSomeValuesFrom:
		if f, ok := e.rewrite(x.Filler); ok {
			return owl.Some(x.Property, f), true
		}
	case owl.ObjectAllValuesFrom:
		if f, ok := e.rewrite(x.Filler); ok {
			return owl.Only(x.Property, f), true
		}
	case owl.ObjectCardinality:
		if x.Filler != nil {
			if f, ok := e.rewrite(x.Filler); ok {
				return owl.Cardinality(x.Kind, x.N, x.Property, f), true
			}
		}
	case owl.ObjectComplementOf:
		if op, ok := e.rewrite(x.Operand); ok {
			return owl.ObjectComplementOf{Operand: op}, true
		}
	case owl.ObjectIntersectionOf:
		if ops, ok := e.rewriteAll(x.Operands); ok {
			return owl.NewIntersectionOf(ops...), true
		}
	case owl.ObjectUnionOf:
		if ops, ok := e.rewriteAll(x.Operands); ok {
			return owl.NewUnionOf(ops...), true
		}
	}
	return ce, false
}

func (e *expander) rewriteAll(cc []owl.ClassExpression) ([]owl.ClassExpression, bool) {
	res := make([]owl.ClassExpression, len(cc))
	changed := false
	for i, c := range cc {
		var ok bool
		res[i], ok = e.rewrite(c)
		changed = changed || ok
	}
	return res, changed
}

// expandAxiom returns the class axiom with expandable restrictions replaced
func (e *expander) expandAxiom(ax owl.Axiom) (owl.Axiom, bool) {
	var res owl.Axiom
	switch a := ax.(type) {
	case owl.SubClassOf:
		sub, ok1 := e.rewrite(a.Sub)
		super, ok2 := e.rewrite(a.Super)
		if !ok1 && !ok2 {
			return nil, false
		}
		res = owl.NewSubClassOf(sub, super)
	case owl.EquivalentClasses:
		cc, ok := e.rewriteAll(a.Classes)
		if !ok {
			return nil, false
		}
		res = owl.NewEquivalentClasses(cc)
	case owl.DisjointClasses:
		cc, ok := e.rewriteAll(a.Classes)
		if !ok {
			return nil, false
		}
		res = owl.NewDisjointClasses(cc)
	default:
		return nil, false
	}
	return e.annotate(res, ax), true
}

// assertionAxioms instantiates assertion templates for `X SubClassOf P some Y`
// and for the `P` annotation of X with the value Y
func (e *expander) assertionAxioms(ax owl.Axiom) (res []owl.Axiom) {
	var p, x, y owl.IRI
	switch a := ax.(type) {
	case owl.SubClassOf:
		sub, ok := a.Sub.(owl.Class)
		if !ok {
			return nil
		}
		some, ok := a.Super.(owl.ObjectSomeValuesFrom)
		if !ok {
			return nil
		}
		prop, ok1 := some.Property.(owl.ObjectProperty)
		filler, ok2 := some.Filler.(owl.Class)
		if !ok1 || !ok2 {
			return nil
		}
		p, x, y = owl.IRI(prop), owl.IRI(sub), owl.IRI(filler)
	case owl.AnnotationAssertion:
		v, ok := a.Value.(owl.IRI)
		if !ok {
			return nil
		}
		p, x, y = a.Property, a.Subject, v
	default:
		return nil
	}

	for _, f := range e.assertions[p] {
		aa, err := f.Axioms(e.r, manchester.Bindings{varSubject: x, varFiller: y})
		if err != nil {
			e.diag(p, obodoc.Tag_ExpandAssertionTo, "%v", err)
			continue
		}
		for _, a := range aa {
			res = append(res, e.annotate(a, ax))
		}
	}
	return res
}

// annotate sets annotations of the generated axiom according to options
func (e *expander) annotate(generated, source owl.Axiom) owl.Axiom {
	var anns []owl.Annotation
	if e.opts.PreserveAnnotations {
		anns = append(anns, source.Annotations()...)
	}
	if e.opts.AddExpansionMarker {
		anns = append(anns, ExpansionMarker)
	}
	return owl.WithAnnotations(generated, anns)
}

func (e *expander) expandAll() {
	o := e.src
	for _, ax := range o.Axioms() {
		if expanded, ok := e.expandAxiom(ax); ok {
			o.RemoveAxiom(ax)
			e.res.Removed = append(e.res.Removed, ax)
			if o.AddAxiom(expanded) {
				e.res.Added = append(e.res.Added, expanded)
			}
		}
		for _, a := range e.assertionAxioms(ax) {
			if o.AddAxiom(a) {
				e.res.Added = append(e.res.Added, a)
			}
		}
	}
	e.res.Ontology = o
}

func (e *expander) createGCIOntology() {
	gci := owl.NewOntology("", "")
	add := func(ax owl.Axiom) {
		if gci.AddAxiom(ax) {
			e.res.Added = append(e.res.Added, ax)
		}
	}
	seen := map[string]bool{}
	for _, ax := range e.src.Axioms() {
		for _, ce := range classExpressions(ax) {
			walk(ce, func(c owl.ClassExpression) {
				key := c.String()
				if seen[key] {
					return
				}
				if x, ok := e.expansion(c); ok {
					seen[key] = true
					add(e.annotate(owl.NewEquivalentClasses([]owl.ClassExpression{c, x}), ax))
				}
			})
		}
		for _, a := range e.assertionAxioms(ax) {
			add(a)
		}
	}
	e.res.Ontology = gci
}

// classExpressions returns class expressions used by the class axiom
func classExpressions(ax owl.Axiom) []owl.ClassExpression {
	switch a := ax.(type) {
	case owl.SubClassOf:
		return []owl.ClassExpression{a.Sub, a.Super}
	case owl.EquivalentClasses:
		return a.Classes
	case owl.DisjointClasses:
		return a.Classes
	}
	return nil
}

// walk calls the visitor for the class expression and all nested ones
func walk(ce owl.ClassExpression, visit func(owl.ClassExpression)) {
	visit(ce)
	switch x := ce.(type) {
	case owl.ObjectSomeValuesFrom:
		walk(x.Filler, visit)
	case owl.ObjectAllValuesFrom:
		walk(x.Filler, visit)
	case owl.ObjectCardinality:
		if x.Filler != nil {
			walk(x.Filler, visit)
		}
	case owl.ObjectComplementOf:
		walk(x.Operand, visit)
	case owl.ObjectIntersectionOf:
		for _, op := range x.Operands {
			walk(op, visit)
		}
	case owl.ObjectUnionOf:
		for _, op := range x.Operands {
			walk(op, visit)
		}
	}
}
