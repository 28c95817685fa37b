/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"github.com/voedger/oboformat/pkg/oboids"
	"github.com/voedger/oboformat/pkg/owl"
)

// Resolver maps names which are neither full IRIs nor variables
type Resolver interface {
	// Resolve returns the IRI of the name. Quoted is true for 'labels'
	Resolve(name string, quoted bool) (owl.IRI, error)
}

// Bindings maps variable names without the leading '?' to IRIs
type Bindings map[string]owl.IRI

// Expression is a parsed class expression, possibly with variables
type Expression struct {
	text string
	ast  *expression
}

// Frame is a parsed Class: frame, possibly with variables
type Frame struct {
	text string
	ast  *frame
}

// OntologyResolver resolves labels against the ontology and ids with the mapper
type OntologyResolver struct {
	Ontology *owl.Ontology
	IDs      *oboids.Mapper
}
