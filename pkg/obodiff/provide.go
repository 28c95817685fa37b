/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodiff

import (
	"fmt"
	"strings"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// Compare returns differences between documents. Clauses are compared as multisets,
// the order of clauses and frames does not matter. Comments do not take part
func Compare(a, b *obodoc.OBODoc, opts Options) []Diff {
	d := &differ{ignore: map[obodoc.Tag]bool{}}
	for _, t := range opts.IgnoreTags {
		d.ignore[t] = true
	}
	d.compareDocs(a, b)
	return d.res
}

func (k DiffKind) String() string {
	switch k {
	case DiffKind_Added:
		return "added"
	case DiffKind_Removed:
		return "removed"
	case DiffKind_Changed:
		return "changed"
	}
	return fmt.Sprintf("DiffKind(%d)", k)
}

func (d Diff) String() string {
	where := "header"
	if d.FrameType != obodoc.FrameType_Header {
		where = fmt.Sprintf("%v %s", d.FrameType, d.FrameID)
	}
	clause := func(c *obodoc.Clause) string {
		return c.TagName() + ": " + strings.Join(c.Tuple(), " ")
	}
	switch {
	case d.Old == nil && d.New == nil:
		return fmt.Sprintf("%s: frame %v", where, d.Kind)
	case d.Kind == DiffKind_Changed:
		return fmt.Sprintf("%s: changed «%s» to «%s»", where, clause(d.Old), clause(d.New))
	case d.Old != nil:
		return fmt.Sprintf("%s: removed «%s»", where, clause(d.Old))
	}
	return fmt.Sprintf("%s: added «%s»", where, clause(d.New))
}
