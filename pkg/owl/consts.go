/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

// Namespaces
const (
	NsOWL      = "http://www.w3.org/2002/07/owl#"
	NsRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NsRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NsXSD      = "http://www.w3.org/2001/XMLSchema#"
	NsOboInOwl = "http://www.geneontology.org/formats/oboInOwl#"
	NsObo      = "http://purl.obolibrary.org/obo/"
)

// Prefixes used by the functional syntax reader and writer
var Prefixes = map[string]string{
	"owl":      NsOWL,
	"rdf":      NsRDF,
	"rdfs":     NsRDFS,
	"xsd":      NsXSD,
	"oboInOwl": NsOboInOwl,
	"obo":      NsObo,
}

// Built-in entities
const (
	Thing      IRI = NsOWL + "Thing"
	Nothing    IRI = NsOWL + "Nothing"
	Deprecated IRI = NsOWL + "deprecated"

	RDFSLabel   IRI = NsRDFS + "label"
	RDFSComment IRI = NsRDFS + "comment"
	RDFSSeeAlso IRI = NsRDFS + "seeAlso"

	XSDString  IRI = NsXSD + "string"
	XSDBoolean IRI = NsXSD + "boolean"
)

// IAO annotation properties
const (
	IAODefinition         IRI = NsObo + "IAO_0000115"
	IAOReplacedBy         IRI = NsObo + "IAO_0100001"
	IAOObsolescenceReason IRI = NsObo + "IAO_0000231"
	IAOTermMerged         IRI = NsObo + "IAO_0000227"
	IAOExpandExpression   IRI = NsObo + "IAO_0000424"
	IAOExpandAssertion    IRI = NsObo + "IAO_0000425"
	IAOIsAntiSymmetric    IRI = NsObo + "IAO_0000427"
)

// oboInOwl annotation properties
const (
	OboInOwlID                  IRI = NsOboInOwl + "id"
	OboInOwlHasOBONamespace     IRI = NsOboInOwl + "hasOBONamespace"
	OboInOwlHasExactSynonym     IRI = NsOboInOwl + "hasExactSynonym"
	OboInOwlHasNarrowSynonym    IRI = NsOboInOwl + "hasNarrowSynonym"
	OboInOwlHasBroadSynonym     IRI = NsOboInOwl + "hasBroadSynonym"
	OboInOwlHasRelatedSynonym   IRI = NsOboInOwl + "hasRelatedSynonym"
	OboInOwlHasSynonymType      IRI = NsOboInOwl + "hasSynonymType"
	OboInOwlHasDbXref           IRI = NsOboInOwl + "hasDbXref"
	OboInOwlInSubset            IRI = NsOboInOwl + "inSubset"
	OboInOwlSubsetProperty      IRI = NsOboInOwl + "SubsetProperty"
	OboInOwlSynonymTypeProperty IRI = NsOboInOwl + "SynonymTypeProperty"
	OboInOwlHasScope            IRI = NsOboInOwl + "hasScope"
	OboInOwlConsider            IRI = NsOboInOwl + "consider"
	OboInOwlCreatedBy           IRI = NsOboInOwl + "created_by"
	OboInOwlCreationDate        IRI = NsOboInOwl + "creation_date"
	OboInOwlHasOBOFormatVersion IRI = NsOboInOwl + "hasOBOFormatVersion"
	OboInOwlShorthand           IRI = NsOboInOwl + "shorthand"
	OboInOwlIsCyclic            IRI = NsOboInOwl + "is_cyclic"
	OboInOwlIsClassLevel        IRI = NsOboInOwl + "is_class_level"
	OboInOwlIsAnonymous         IRI = NsOboInOwl + "is_anonymous"
	OboInOwlIsMetadataTag       IRI = NsOboInOwl + "is_metadata_tag"
	OboInOwlIsInferred          IRI = NsOboInOwl + "is_inferred"
	OboInOwlBuiltin             IRI = NsOboInOwl + "builtin"
	OboInOwlSource              IRI = NsOboInOwl + "source"
	OboInOwlDisjointOver        IRI = NsOboInOwl + "disjoint_over"
	OboInOwlNamespaceIDRule     IRI = NsOboInOwl + "namespace-id-rule"
	OboInOwlSavedBy             IRI = NsOboInOwl + "saved-by"
)

const anonymousIRIPrefix = "urn:uuid:"
