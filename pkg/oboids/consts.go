/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboids

// OboPrefix is the IRI prefix of all OBO library identifiers
const OboPrefix = "http://purl.obolibrary.org/obo/"

const owlFileSuffix = ".owl"

// WellKnownPrefixes maps compact id prefixes to the namespaces they denote.
// Identifiers with these prefixes are not OBO library ids
var WellKnownPrefixes = map[string]string{
	"owl":     "http://www.w3.org/2002/07/owl#",
	"rdf":     "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":    "http://www.w3.org/2000/01/rdf-schema#",
	"xsd":     "http://www.w3.org/2001/XMLSchema#",
	"dc":      "http://purl.org/dc/elements/1.1/",
	"dcterms": "http://purl.org/dc/terms/",
}

var urlSchemes = []string{"http:", "https:", "ftp:", "urn:", "file:", "mailto:", "orcid:"}
