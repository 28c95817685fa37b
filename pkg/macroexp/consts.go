/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package macroexp

import "github.com/voedger/oboformat/pkg/owl"

// ExpansionMarker annotates axioms generated from templates if Options.AddExpansionMarker is set
var ExpansionMarker = owl.NewAnnotation(owl.OboInOwlIsInferred, owl.BoolLiteral(true))

// Template variables
const (
	varSubject = "X"
	varFiller  = "Y"
)
