/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

type Options struct {
	// DefaultOntologyID is used when the header has no ontology clause
	DefaultOntologyID string
	// Duplicates is called for duplicate clauses. Nil converts them anyway
	Duplicates oboconv.DuplicateHandler
	// Imports are consulted for typedef shorthands used but not declared by the document
	Imports []*obodoc.OBODoc
}

// Result is the converted ontology with non-fatal diagnostics
type Result struct {
	Ontology    *owl.Ontology
	Diagnostics []oboconv.Diagnostic
}

type converter struct {
	opts Options
	doc  *obodoc.OBODoc
	o    *owl.Ontology
	ids  *oboids.Mapper
	// typedef id to property IRI for typedefs declared by shorthand
	shorthands map[string]owl.IRI
	res        *Result
}

// relationQualifiers are qualifiers of a relationship clause which shape the restriction
type relationQualifiers struct {
	exact, min, max *int
	allOnly         bool
	gciRelation     string
	gciFiller       string
	// rest become axiom annotations
	rest []obodoc.QualifierValue
}
