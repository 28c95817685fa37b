/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"github.com/voedger/oboformat/pkg/oboconv"
	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

// StrictnessPolicy controls untranslatable axioms
type StrictnessPolicy struct {
	// Strict fails the conversion with TranslationError
	Strict bool
	// MuteUntranslatable keeps untranslatable axioms in Result only.
	// Otherwise they are also written to the owl-axioms header clause
	MuteUntranslatable bool
}

type Options struct {
	Policy StrictnessPolicy
	// Duplicates is called for repeated single valued tags. Nil drops them
	Duplicates oboconv.DuplicateHandler
	// DefaultOntologyID is used for anonymous ontologies
	DefaultOntologyID string
}

// Result is the converted document with untranslatable axioms and non-fatal diagnostics
type Result struct {
	Doc            *obodoc.OBODoc
	Untranslatable []owl.Axiom
	Diagnostics    []oboconv.Diagnostic
}

type converter struct {
	opts Options
	o    *owl.Ontology
	doc  *obodoc.OBODoc
	ids  *oboids.Mapper
	// ids declared by oboInOwl:id and oboInOwl:shorthand
	idOf   map[owl.IRI]string
	frames map[owl.IRI]*obodoc.Frame
	// subsetdef and synonymtypedef properties
	headerProps map[owl.IRI]bool
	// merged entities to the entity they are merged into
	altIDs map[owl.IRI]owl.IRI
	errs   []error
	res    *Result
}
