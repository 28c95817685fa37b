/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xrefexp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/oboformat/pkg/obodoc"
)

var ruleKinds = map[obodoc.Tag]RuleKind{
	obodoc.Tag_TreatXrefsAsEquivalent:              RuleKind_Equivalent,
	obodoc.Tag_TreatXrefsAsGenusDifferentia:        RuleKind_GenusDifferentia,
	obodoc.Tag_TreatXrefsAsReverseGenusDifferentia: RuleKind_ReverseGenusDifferentia,
	obodoc.Tag_TreatXrefsAsRelationship:            RuleKind_Relationship,
	obodoc.Tag_TreatXrefsAsIsA:                     RuleKind_IsA,
	obodoc.Tag_TreatXrefsAsHasSubclass:             RuleKind_HasSubclass,
}

// parseRules reads treat-xrefs-as-* header clauses in the header order
func parseRules(h *obodoc.Frame) ([]Rule, error) {
	var (
		rules []Rule
		ee    []error
	)
	for _, c := range h.Clauses() {
		kind, ok := ruleKinds[c.Tag]
		if !ok {
			continue
		}
		vv := c.Tuple()
		want := 1
		switch kind {
		case RuleKind_GenusDifferentia, RuleKind_ReverseGenusDifferentia:
			want = 3
		case RuleKind_Relationship:
			want = 2
		}
		if len(vv) != want {
			ee = append(ee, ErrInvalidRule(c, want))
			continue
		}
		r := Rule{Kind: kind, IDSpace: vv[0]}
		if want > 1 {
			r.Relation = vv[1]
		}
		if want > 2 {
			r.Filler = vv[2]
		}
		if !slices.Contains(rules, r) {
			rules = append(rules, r)
		}
	}
	return rules, errors.Join(ee...)
}

func newExpander(doc *obodoc.OBODoc, rules []Rule, opts Options) *expander {
	if opts.Cache == nil {
		opts.Cache = obodoc.Cache{}
	}
	e := &expander{
		opts:   opts,
		src:    doc,
		rules:  map[string][]Rule{},
		bridge: map[string]*obodoc.OBODoc{},
		res:    &Result{Cache: opts.Cache},
	}
	for _, r := range rules {
		e.rules[r.IDSpace] = append(e.rules[r.IDSpace], r)
	}
	return e
}

// bridgeName returns the name of the document receiving expansions of the id space
func (e *expander) bridgeName(idspace string) string {
	if e.opts.BridgePrefix == "" {
		return e.src.OntologyID() + "-" + flatSuffix
	}
	return e.opts.BridgePrefix + "-" + strings.ToLower(idspace)
}

// bridgeDoc returns the bridge document for the id space, creating it if necessary
func (e *expander) bridgeDoc(idspace string) *obodoc.OBODoc {
	name := e.bridgeName(idspace)
	if d, ok := e.bridge[name]; ok {
		return d
	}
	d := obodoc.New()
	d.Header().AddClause(obodoc.NewClause(obodoc.Tag_Ontology, obodoc.Text(name)))
	if parent := e.src.OntologyID(); parent != "" {
		d.Header().AddClause(obodoc.NewClause(obodoc.Tag_Import, obodoc.Ref(parent)))
	}
	e.bridge[name] = d
	if !e.opts.Cache.PutIfAbsent(name, d) {
		logger.Warning(fmt.Sprintf("bridge document «%s» replaces the cached one", name))
		e.opts.Cache[name] = d
	}
	e.src.AddImportKey(name)
	e.res.Keys = append(e.res.Keys, name)
	if logger.IsVerbose() {
		logger.Verbose("bridge document", name, "created")
	}
	return d
}

// target returns the term frame with the id in the bridge document, creating it if necessary
func (e *expander) target(idspace, id string) *obodoc.Frame {
	d := e.bridgeDoc(idspace)
	if f := d.TermFrame(id); f != nil {
		return f
	}
	f := obodoc.NewFrame(obodoc.FrameType_Term, id)
	f.AddClause(obodoc.NewClause(obodoc.Tag_ID, obodoc.Ref(id)))
	_ = d.AddFrame(f)
	return f
}

// copyTypedef copies the typedef declared by the source document into the bridge document
func (e *expander) copyTypedef(idspace, rel string) {
	d := e.bridgeDoc(idspace)
	if d.TypedefFrame(rel) != nil {
		return
	}
	if td := e.src.TypedefFrame(rel); td != nil {
		_ = d.AddFrame(td.Clone())
	}
}

func add(f *obodoc.Frame, c *obodoc.Clause) {
	if !f.ContainsClause(c) {
		f.AddClause(c)
	}
}

func (e *expander) apply(r Rule, id, xref string) {
	is := r.IDSpace
	switch r.Kind {
	case RuleKind_Equivalent:
		add(e.target(is, id), obodoc.NewClause(obodoc.Tag_EquivalentTo, obodoc.Ref(xref)))
	case RuleKind_GenusDifferentia:
		f := e.target(is, id)
		add(f, obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Target: xref}))
		add(f, obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Rel: r.Relation, Target: r.Filler}))
		e.copyTypedef(is, r.Relation)
	case RuleKind_ReverseGenusDifferentia:
		f := e.target(is, xref)
		add(f, obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Target: id}))
		add(f, obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Rel: r.Relation, Target: r.Filler}))
		e.copyTypedef(is, r.Relation)
	case RuleKind_Relationship:
		add(e.target(is, id), obodoc.NewClause(obodoc.Tag_Relationship, obodoc.Relation{Rel: r.Relation, Target: xref}))
		e.copyTypedef(is, r.Relation)
	case RuleKind_IsA:
		add(e.target(is, id), obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref(xref)))
	case RuleKind_HasSubclass:
		add(e.target(is, xref), obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref(id)))
	}
}

func (e *expander) expand() {
	for _, f := range e.src.TermFrames() {
		for _, c := range f.ClausesOf(obodoc.Tag_Xref) {
			xref := c.Text()
			idspace, _, ok := strings.Cut(xref, ":")
			if !ok {
				continue
			}
			for _, r := range e.rules[idspace] {
				e.apply(r, f.ID, xref)
			}
		}
	}
}
