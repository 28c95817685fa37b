/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// Convert translates the document into an ontology.
//
// Clauses which can not be translated are reported as diagnostics, the only error is a missing ontology id
func Convert(doc *obodoc.OBODoc, opts Options) (*Result, error) {
	id := doc.OntologyID()
	if id == "" {
		id = opts.DefaultOntologyID
	}
	if id == "" {
		return nil, ErrMissingOntologyID
	}
	c := newConverter(doc, id, opts)
	c.convert()
	if logger.IsVerbose() {
		logger.Verbose("converted", id, "to", c.o.AxiomCount(), "axioms with", len(c.res.Diagnostics), "diagnostics")
	}
	return c.res, nil
}
