/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/voedger/oboformat/pkg/obodoc"
)

func tagOrder(t obodoc.FrameType) []obodoc.Tag {
	switch t {
	case obodoc.FrameType_Header:
		return headerTagOrder
	case obodoc.FrameType_Typedef:
		return typedefTagOrder
	case obodoc.FrameType_Instance:
		return instanceTagOrder
	}
	return termTagOrder
}

func tagPriorities(t obodoc.FrameType) map[obodoc.Tag]int {
	order := tagOrder(t)
	res := make(map[obodoc.Tag]int, len(order))
	for i, tag := range order {
		res[tag] = i
	}
	return res
}

// compareStrings compares case-insensitively first, upper case goes first among otherwise equal strings
func compareStrings(caser cases.Caser, a, b string) int {
	if c := strings.Compare(caser.String(a), caser.String(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// compareTuples compares tuples component-wise, shorter tuple goes first
func compareTuples(caser cases.Caser, a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareStrings(caser, a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// compareClauses orders clauses of the same tag
func compareClauses(caser cases.Caser, a, b *obodoc.Clause) int {
	if a.Tag == obodoc.Tag_IntersectionOf {
		la, lb := len(a.Tuple()), len(b.Tuple())
		if la != lb {
			return la - lb
		}
	}
	return compareTuples(caser, a.Tuple(), b.Tuple())
}

// SortClauses returns frame clauses in the order they are written.
//
// Clauses are grouped by tag in the canonical order of the frame type, unrecognized tags go last.
// Header groups keep the insertion order, other groups are sorted by value
func SortClauses(f *obodoc.Frame) []*obodoc.Clause {
	return sortClauses(f, cases.Fold())
}

func sortClauses(f *obodoc.Frame, caser cases.Caser) []*obodoc.Clause {
	prio := tagPriorities(f.Type)
	unknown := map[string]int{}
	priority := func(c *obodoc.Clause) int {
		if p, ok := prio[c.Tag]; ok && c.Tag != obodoc.Tag_Unrecognized {
			return p
		}
		name := c.TagName()
		if p, ok := unknown[name]; ok {
			return p
		}
		p := unknownTagPriority + len(unknown)
		unknown[name] = p
		return p
	}

	res := make([]*obodoc.Clause, len(f.Clauses()))
	copy(res, f.Clauses())
	keys := make(map[*obodoc.Clause]int, len(res))
	for _, c := range res {
		keys[c] = priority(c)
	}

	sorted := f.Type != obodoc.FrameType_Header
	sort.SliceStable(res, func(i, j int) bool {
		pi, pj := keys[res[i]], keys[res[j]]
		if pi != pj {
			return pi < pj
		}
		if !sorted || pi >= unknownTagPriority {
			return false
		}
		return compareClauses(caser, res[i], res[j]) < 0
	})
	return res
}
