/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xrefexp

// DefaultBridgePrefix names bridge documents as `bridge-<idspace>`
const DefaultBridgePrefix = "bridge"

// flatSuffix names the single bridge document `<ontology>-xrefs` if no bridge prefix is set
const flatSuffix = "xrefs"

// RuleKind is the header tag the rule is declared by
type RuleKind uint8

const (
	RuleKind_null RuleKind = iota
	// X treat-xrefs-as-equivalent P: X equivalent_to P:x
	RuleKind_Equivalent
	// X treat-xrefs-as-genus-differentia P R F: X intersection_of P:x, intersection_of R F
	RuleKind_GenusDifferentia
	// P:x treat-xrefs-as-reverse-genus-differentia P R F: P:x intersection_of X, intersection_of R F
	RuleKind_ReverseGenusDifferentia
	// X treat-xrefs-as-relationship P R: X relationship R P:x
	RuleKind_Relationship
	// X treat-xrefs-as-is_a P: X is_a P:x
	RuleKind_IsA
	// P:x treat-xrefs-as-has-subclass P: P:x is_a X
	RuleKind_HasSubclass
	RuleKind_Count
)
