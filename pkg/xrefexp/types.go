/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xrefexp

import "github.com/voedger/oboformat/pkg/obodoc"

type Options struct {
	// BridgePrefix puts expansions of each id space into a separate `<prefix>-<idspace>` document.
	// Empty puts all expansions into the one `<ontology>-xrefs` document
	BridgePrefix string
	// Cache receives bridge documents. Nil creates a new cache
	Cache obodoc.Cache
}

// Rule is a treat-xrefs-as-* header clause
type Rule struct {
	Kind     RuleKind
	IDSpace  string
	Relation string
	Filler   string
}

// Result lists bridge documents in creation order
type Result struct {
	Cache obodoc.Cache
	Keys  []string
}

type expander struct {
	opts   Options
	src    *obodoc.OBODoc
	rules  map[string][]Rule
	bridge map[string]*obodoc.OBODoc
	res    *Result
}
