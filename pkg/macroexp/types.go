/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package macroexp

import (
	"github.com/voedger/oboformat/pkg/manchester"
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

type Options struct {
	// PreserveAnnotations copies annotations of the source axiom to the generated ones
	PreserveAnnotations bool
	// AddExpansionMarker annotates generated axioms with ExpansionMarker
	AddExpansionMarker bool
	// IDs resolves OBO ids in templates. Nil resolves unprefixed ids without ontology namespace
	IDs *oboids.Mapper
}

// Result lists axioms added to and removed from Ontology
type Result struct {
	Ontology    *owl.Ontology
	Added       []owl.Axiom
	Removed     []owl.Axiom
	Diagnostics []oboconv.Diagnostic
}

type expander struct {
	opts Options
	src  *owl.Ontology
	r    manchester.Resolver
	// expand_expression_to templates by property
	expressions map[owl.IRI]*manchester.Expression
	// expand_assertion_to templates by property
	assertions map[owl.IRI][]*manchester.Frame
	res        *Result
}
