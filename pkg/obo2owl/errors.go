/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obo2owl

import (
	"errors"
)

var ErrMissingOntologyID = errors.New("document has no ontology id")
