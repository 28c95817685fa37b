/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodiff

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/oboformat/pkg/obodoc"
)

type differ struct {
	ignore map[obodoc.Tag]bool
	res    []Diff
}

func (d *differ) compareDocs(a, b *obodoc.OBODoc) {
	d.compareFrames(a.Header(), b.Header())
	for t := obodoc.FrameType_Term; t < obodoc.FrameType_Count; t++ {
		ids := map[string]bool{}
		for _, f := range a.Frames(t) {
			ids[f.ID] = true
		}
		for _, f := range b.Frames(t) {
			ids[f.ID] = true
		}
		sorted := maps.Keys(ids)
		slices.Sort(sorted)
		for _, id := range sorted {
			fa, fb := a.Frame(t, id), b.Frame(t, id)
			switch {
			case fa == nil:
				d.res = append(d.res, Diff{Kind: DiffKind_Added, FrameType: t, FrameID: id})
			case fb == nil:
				d.res = append(d.res, Diff{Kind: DiffKind_Removed, FrameType: t, FrameID: id})
			default:
				d.compareFrames(fa, fb)
			}
		}
	}
}

// compareFrames reports the multiset difference of clauses, pairing single valued tags into changes
func (d *differ) compareFrames(a, b *obodoc.Frame) {
	removed := d.subtract(a, b)
	added := d.subtract(b, a)

	diff := func(kind DiffKind, old, new *obodoc.Clause) {
		d.res = append(d.res, Diff{Kind: kind, FrameType: a.Type, FrameID: a.ID, Old: old, New: new})
	}
	for _, r := range removed {
		if i := changedIndex(r, added); i >= 0 {
			diff(DiffKind_Changed, r, added[i])
			added = append(added[:i], added[i+1:]...)
			continue
		}
		diff(DiffKind_Removed, r, nil)
	}
	for _, n := range added {
		diff(DiffKind_Added, nil, n)
	}
}

// subtract returns clauses of a without matching clauses of b, ordered by tag and key
func (d *differ) subtract(a, b *obodoc.Frame) (res []*obodoc.Clause) {
	counts := map[string]int{}
	for _, cl := range b.Clauses() {
		counts[cl.Key()]++
	}
	for _, cl := range a.Clauses() {
		if d.ignore[cl.Tag] {
			continue
		}
		k := cl.Key()
		if counts[k] > 0 {
			counts[k]--
			continue
		}
		res = append(res, cl)
	}
	slices.SortStableFunc(res, func(x, y *obodoc.Clause) bool {
		if x.TagName() != y.TagName() {
			return x.TagName() < y.TagName()
		}
		return x.Key() < y.Key()
	})
	return res
}

// changedIndex finds the added clause which replaces the removed single valued one
func changedIndex(removed *obodoc.Clause, added []*obodoc.Clause) int {
	if !removed.Tag.IsSingleValued() {
		return -1
	}
	for i, a := range added {
		if a.Tag == removed.Tag {
			return i
		}
	}
	return -1
}
