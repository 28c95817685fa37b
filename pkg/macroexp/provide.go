/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package macroexp

import "github.com/voedger/oboformat/pkg/owl"

// ExpandAll rewrites the ontology in place.
//
// Every `P some Y` with an expand_expression_to template on P is replaced by the template
// with ?Y bound to Y. Every `X SubClassOf P some Y` with expand_assertion_to templates on P
// adds the template axioms with ?X and ?Y bound. Template problems are reported as diagnostics
func ExpandAll(o *owl.Ontology, opts Options) *Result {
	e := newExpander(o, opts)
	e.expandAll()
	return e.res
}

// CreateGCIOntology leaves the ontology intact and returns a new anonymous ontology with
// `P some Y EquivalentTo template[Y]` per distinct expandable restriction, and with
// axioms generated by assertion templates
func CreateGCIOntology(o *owl.Ontology, opts Options) *Result {
	e := newExpander(o, opts)
	e.createGCIOntology()
	return e.res
}
