/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xrefexp

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// Rules returns the treat-xrefs-as-* rules declared by the document header
func Rules(doc *obodoc.OBODoc) ([]Rule, error) {
	return parseRules(doc.Header())
}

// Expand applies treat-xrefs-as-* rules of the document header to xrefs of term frames.
//
// Generated frames are placed into bridge documents which are stored into the cache and imported
// by the document. Bridge documents import the document and contain the typedefs the rules use
func Expand(doc *obodoc.OBODoc, opts Options) (*Result, error) {
	rules, err := parseRules(doc.Header())
	if err != nil {
		return nil, err
	}
	e := newExpander(doc, rules, opts)
	e.expand()
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%d xref rules applied, %d bridge documents", len(rules), len(e.res.Keys)))
	}
	return e.res, nil
}
