/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl2obo

import (
	"errors"

	"github.com/voedger/oboformat/pkg/owl"
)

// Convert translates the ontology into an OBO document.
//
// Axioms which have no OBO form are handled by Options.Policy. In strict mode
// the first conversion problem does not stop the conversion, all of them are returned joined
func Convert(o *owl.Ontology, opts Options) (*Result, error) {
	c := newConverter(o, opts)
	c.convert()
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}
	return c.res, nil
}
