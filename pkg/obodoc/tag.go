/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

// Tag identifies the meaning of a clause
type Tag uint8

const (
	Tag_Unrecognized Tag = iota

	// header tags
	Tag_FormatVersion
	Tag_DataVersion
	Tag_Date
	Tag_SavedBy
	Tag_AutoGeneratedBy
	Tag_Import
	Tag_Subsetdef
	Tag_Synonymtypedef
	Tag_DefaultNamespace
	Tag_NamespaceIDRule
	Tag_Idspace
	Tag_TreatXrefsAsEquivalent
	Tag_TreatXrefsAsGenusDifferentia
	Tag_TreatXrefsAsReverseGenusDifferentia
	Tag_TreatXrefsAsRelationship
	Tag_TreatXrefsAsIsA
	Tag_TreatXrefsAsHasSubclass
	Tag_Remark
	Tag_Ontology
	Tag_OwlAxioms

	// frame tags
	Tag_ID
	Tag_IsAnonymous
	Tag_Name
	Tag_Namespace
	Tag_AltID
	Tag_Def
	Tag_Comment
	Tag_Subset
	Tag_Synonym
	Tag_Xref
	Tag_Builtin
	Tag_PropertyValue
	Tag_InstanceOf
	Tag_Domain
	Tag_Range
	Tag_HoldsOverChain
	Tag_IsAntiSymmetric
	Tag_IsCyclic
	Tag_IsReflexive
	Tag_IsSymmetric
	Tag_IsTransitive
	Tag_IsFunctional
	Tag_IsInverseFunctional
	Tag_IsA
	Tag_IntersectionOf
	Tag_UnionOf
	Tag_EquivalentTo
	Tag_DisjointFrom
	Tag_InverseOf
	Tag_TransitiveOver
	Tag_EquivalentToChain
	Tag_DisjointOver
	Tag_Relationship
	Tag_IsObsolete
	Tag_ReplacedBy
	Tag_Consider
	Tag_CreatedBy
	Tag_CreationDate
	Tag_ExpandAssertionTo
	Tag_ExpandExpressionTo
	Tag_IsMetadataTag
	Tag_IsClassLevel

	Tag_Count
)

var tagNames = [Tag_Count]string{
	Tag_Unrecognized:                        "",
	Tag_FormatVersion:                       "format-version",
	Tag_DataVersion:                         "data-version",
	Tag_Date:                                "date",
	Tag_SavedBy:                             "saved-by",
	Tag_AutoGeneratedBy:                     "auto-generated-by",
	Tag_Import:                              "import",
	Tag_Subsetdef:                           "subsetdef",
	Tag_Synonymtypedef:                      "synonymtypedef",
	Tag_DefaultNamespace:                    "default-namespace",
	Tag_NamespaceIDRule:                     "namespace-id-rule",
	Tag_Idspace:                             "idspace",
	Tag_TreatXrefsAsEquivalent:              "treat-xrefs-as-equivalent",
	Tag_TreatXrefsAsGenusDifferentia:        "treat-xrefs-as-genus-differentia",
	Tag_TreatXrefsAsReverseGenusDifferentia: "treat-xrefs-as-reverse-genus-differentia",
	Tag_TreatXrefsAsRelationship:            "treat-xrefs-as-relationship",
	Tag_TreatXrefsAsIsA:                     "treat-xrefs-as-is_a",
	Tag_TreatXrefsAsHasSubclass:             "treat-xrefs-as-has-subclass",
	Tag_Remark:                              "remark",
	Tag_Ontology:                            "ontology",
	Tag_OwlAxioms:                           "owl-axioms",
	Tag_ID:                                  "id",
	Tag_IsAnonymous:                         "is_anonymous",
	Tag_Name:                                "name",
	Tag_Namespace:                           "namespace",
	Tag_AltID:                               "alt_id",
	Tag_Def:                                 "def",
	Tag_Comment:                             "comment",
	Tag_Subset:                              "subset",
	Tag_Synonym:                             "synonym",
	Tag_Xref:                                "xref",
	Tag_Builtin:                             "builtin",
	Tag_PropertyValue:                       "property_value",
	Tag_InstanceOf:                          "instance_of",
	Tag_Domain:                              "domain",
	Tag_Range:                               "range",
	Tag_HoldsOverChain:                      "holds_over_chain",
	Tag_IsAntiSymmetric:                     "is_anti_symmetric",
	Tag_IsCyclic:                            "is_cyclic",
	Tag_IsReflexive:                         "is_reflexive",
	Tag_IsSymmetric:                         "is_symmetric",
	Tag_IsTransitive:                        "is_transitive",
	Tag_IsFunctional:                        "is_functional",
	Tag_IsInverseFunctional:                 "is_inverse_functional",
	Tag_IsA:                                 "is_a",
	Tag_IntersectionOf:                      "intersection_of",
	Tag_UnionOf:                             "union_of",
	Tag_EquivalentTo:                        "equivalent_to",
	Tag_DisjointFrom:                        "disjoint_from",
	Tag_InverseOf:                           "inverse_of",
	Tag_TransitiveOver:                      "transitive_over",
	Tag_EquivalentToChain:                   "equivalent_to_chain",
	Tag_DisjointOver:                        "disjoint_over",
	Tag_Relationship:                        "relationship",
	Tag_IsObsolete:                          "is_obsolete",
	Tag_ReplacedBy:                          "replaced_by",
	Tag_Consider:                            "consider",
	Tag_CreatedBy:                           "created_by",
	Tag_CreationDate:                        "creation_date",
	Tag_ExpandAssertionTo:                   "expand_assertion_to",
	Tag_ExpandExpressionTo:                  "expand_expression_to",
	Tag_IsMetadataTag:                       "is_metadata_tag",
	Tag_IsClassLevel:                        "is_class_level",
}

var tagsByName = func() map[string]Tag {
	m := make(map[string]Tag, Tag_Count)
	for t := Tag_Unrecognized + 1; t < Tag_Count; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

// TagByName returns the tag for the specified clause tag text.
// Returns Tag_Unrecognized for unknown names
func TagByName(name string) Tag {
	if t, ok := tagsByName[name]; ok {
		return t
	}
	return Tag_Unrecognized
}

func (t Tag) String() string {
	if t < Tag_Count {
		return tagNames[t]
	}
	return ""
}

// Shape describes the grammar of the tag value
type Shape uint8

const (
	Shape_Text Shape = iota
	Shape_Ref
	Shape_Bool
	Shape_Relation
	Shape_Intersection
	Shape_Chain
	Shape_Quoted
	Shape_Synonym
	Shape_Xref
	Shape_PropertyValue
	Shape_Subsetdef
	Shape_Synonymtypedef
	Shape_Idspace
	Shape_Tuple
)

// Shape returns the value shape of the tag. Unrecognized tags are text
func (t Tag) Shape() Shape {
	switch t {
	case Tag_Import, Tag_AltID, Tag_Subset, Tag_IsA, Tag_UnionOf, Tag_EquivalentTo, Tag_DisjointFrom,
		Tag_ReplacedBy, Tag_Consider, Tag_InstanceOf, Tag_Domain, Tag_Range, Tag_InverseOf,
		Tag_TransitiveOver, Tag_DisjointOver, Tag_ID,
		Tag_TreatXrefsAsEquivalent, Tag_TreatXrefsAsIsA, Tag_TreatXrefsAsHasSubclass:
		return Shape_Ref
	case Tag_IsAnonymous, Tag_Builtin, Tag_IsObsolete, Tag_IsAntiSymmetric, Tag_IsCyclic, Tag_IsReflexive,
		Tag_IsSymmetric, Tag_IsTransitive, Tag_IsFunctional, Tag_IsInverseFunctional,
		Tag_IsMetadataTag, Tag_IsClassLevel:
		return Shape_Bool
	case Tag_Relationship:
		return Shape_Relation
	case Tag_IntersectionOf:
		return Shape_Intersection
	case Tag_HoldsOverChain, Tag_EquivalentToChain:
		return Shape_Chain
	case Tag_Def, Tag_ExpandAssertionTo, Tag_ExpandExpressionTo:
		return Shape_Quoted
	case Tag_Synonym:
		return Shape_Synonym
	case Tag_Xref:
		return Shape_Xref
	case Tag_PropertyValue:
		return Shape_PropertyValue
	case Tag_Subsetdef:
		return Shape_Subsetdef
	case Tag_Synonymtypedef:
		return Shape_Synonymtypedef
	case Tag_Idspace:
		return Shape_Idspace
	case Tag_TreatXrefsAsGenusDifferentia, Tag_TreatXrefsAsReverseGenusDifferentia, Tag_TreatXrefsAsRelationship:
		return Shape_Tuple
	}
	return Shape_Text
}

// Accepts returns true if the value is of the shape type.
// Single token shapes accept any single token value, text accepts anything
func (s Shape) Accepts(v ClauseValue) bool {
	var ok bool
	switch s {
	case Shape_Text:
		return true
	case Shape_Ref, Shape_Quoted:
		switch v.(type) {
		case Ref, Text, Quoted:
			ok = true
		}
	case Shape_Bool:
		switch v.(type) {
		case Bool, Text:
			ok = true
		}
	case Shape_Relation, Shape_Intersection:
		_, ok = v.(Relation)
	case Shape_Chain:
		_, ok = v.(Chain)
	case Shape_Synonym:
		_, ok = v.(Synonym)
	case Shape_Xref:
		switch v.(type) {
		case XrefValue, Ref:
			ok = true
		}
	case Shape_PropertyValue:
		_, ok = v.(PropertyValue)
	case Shape_Subsetdef:
		_, ok = v.(SubsetDef)
	case Shape_Synonymtypedef:
		_, ok = v.(SynonymTypeDef)
	case Shape_Idspace:
		_, ok = v.(IDSpace)
	case Shape_Tuple:
		_, ok = v.(Tuple)
	}
	return ok
}

// HasXrefList returns true if the tag value is followed by a mandatory xref list
func (t Tag) HasXrefList() bool {
	switch t {
	case Tag_Def, Tag_Synonym, Tag_ExpandAssertionTo, Tag_ExpandExpressionTo:
		return true
	}
	return false
}

// IsSingleValued returns true if a frame may hold at most one clause with the tag
func (t Tag) IsSingleValued() bool {
	switch t {
	case Tag_ID, Tag_Name, Tag_Def, Tag_Comment, Tag_IsObsolete, Tag_Namespace, Tag_IsAnonymous,
		Tag_CreatedBy, Tag_CreationDate, Tag_Domain, Tag_Range, Tag_Builtin,
		Tag_IsAntiSymmetric, Tag_IsCyclic, Tag_IsReflexive, Tag_IsSymmetric, Tag_IsTransitive,
		Tag_IsFunctional, Tag_IsInverseFunctional, Tag_IsMetadataTag, Tag_IsClassLevel,
		Tag_FormatVersion, Tag_DataVersion, Tag_Date, Tag_SavedBy, Tag_AutoGeneratedBy,
		Tag_DefaultNamespace, Tag_Ontology:
		return true
	}
	return false
}

// IsHeaderTag returns true if the tag may appear only in the header frame
func (t Tag) IsHeaderTag() bool {
	return t >= Tag_FormatVersion && t <= Tag_OwlAxioms
}
