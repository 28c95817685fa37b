/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"errors"
	"strings"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// validate checks frame invariants which the parser does not enforce
func validate(f *obodoc.Frame) error {
	var errs []error
	counts := map[obodoc.Tag]int{}
	for _, c := range f.Clauses() {
		counts[c.Tag]++
	}
	if f.Type != obodoc.FrameType_Header {
		for _, tag := range []obodoc.Tag{obodoc.Tag_ID, obodoc.Tag_Name, obodoc.Tag_Def, obodoc.Tag_Comment, obodoc.Tag_IsObsolete} {
			if counts[tag] > 1 {
				errs = append(errs, &FrameStructureError{FrameType: f.Type, FrameID: f.ID, Tag: tag.String(), Msg: "multiple clauses"})
			}
		}
		if counts[obodoc.Tag_IntersectionOf] == 1 {
			errs = append(errs, &FrameStructureError{FrameType: f.Type, FrameID: f.ID, Tag: obodoc.Tag_IntersectionOf.String(),
				Msg: "single intersection_of clause"})
		}
	}
	return errors.Join(errs...)
}

func validateDoc(doc *obodoc.OBODoc) error {
	errs := []error{validate(doc.Header())}
	for t := obodoc.FrameType_Term; t < obodoc.FrameType_Count; t++ {
		for _, f := range doc.Frames(t) {
			errs = append(errs, validate(f))
		}
	}
	return errors.Join(errs...)
}

func (w *writer) writeDoc(doc *obodoc.OBODoc) error {
	if err := validateDoc(doc); err != nil {
		return err
	}
	if w.opts.Names == nil {
		w.opts.Names = doc
	}

	if len(doc.Header().Clauses()) > 0 {
		w.writeFrameBody(doc.Header())
		w.w.WriteByte('\n')
	}
	for t := obodoc.FrameType_Term; t < obodoc.FrameType_Count; t++ {
		for _, f := range doc.Frames(t) {
			w.writeFrame(f)
		}
	}
	return w.w.Flush()
}

func (w *writer) writeFrame(f *obodoc.Frame) {
	w.w.WriteString("[" + f.Type.Stanza() + "]\n")
	w.writeLine(obodoc.Tag_ID.String(), escapeToken(f.ID))
	w.writeFrameBody(f)
	w.w.WriteByte('\n')
}

func (w *writer) writeFrameBody(f *obodoc.Frame) {
	for _, c := range sortClauses(f, w.caser) {
		if line, ok := w.clauseLine(c); ok {
			w.w.WriteString(line)
			w.w.WriteByte('\n')
		}
	}
}

func (w *writer) writeLine(tag, value string) {
	w.w.WriteString(tag)
	w.w.WriteString(": ")
	w.w.WriteString(value)
	w.w.WriteByte('\n')
}

// clauseLine renders the clause. Returns false if the clause is not written
func (w *writer) clauseLine(c *obodoc.Clause) (string, bool) {
	if c.Tag == obodoc.Tag_ID {
		return "", false
	}
	if c.Tag == obodoc.Tag_IsObsolete && !c.BoolValue() {
		return "", false
	}

	b := strings.Builder{}
	b.WriteString(c.TagName())
	b.WriteString(": ")
	b.WriteString(formatValue(c))

	if len(c.Xrefs) > 0 || c.Tag.HasXrefList() {
		b.WriteString(" [")
		for i, x := range c.Xrefs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(escapeXrefID(x.IDRef))
			if x.Annotation != "" {
				b.WriteString(" " + quote(x.Annotation))
			}
		}
		b.WriteString("]")
	}

	if len(c.Qualifiers) > 0 {
		b.WriteString(" {")
		for i, q := range c.Qualifiers {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(escapeTokenWith(q.Qualifier, `{}=,"`))
			b.WriteString("=")
			b.WriteString(quote(q.Value))
		}
		b.WriteString("}")
	}

	if comment := w.comment(c); comment != "" {
		b.WriteString(" ! ")
		b.WriteString(strings.ReplaceAll(comment, "\n", " "))
	}
	return b.String(), true
}

func formatValue(c *obodoc.Clause) string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case obodoc.Text:
		return escapeText(string(v))
	case obodoc.Ref:
		return escapeToken(string(v))
	case obodoc.Bool:
		return v.Tuple()[0]
	case obodoc.Relation:
		if v.IsGenus() {
			return escapeToken(v.Target)
		}
		return escapeToken(v.Rel) + " " + escapeToken(v.Target)
	case obodoc.Chain:
		return escapeToken(v.Rel1) + " " + escapeToken(v.Rel2)
	case obodoc.Quoted:
		return quote(string(v))
	case obodoc.Synonym:
		s := quote(v.Text) + " " + v.Scope
		if v.Type != "" {
			s += " " + escapeToken(v.Type)
		}
		return s
	case obodoc.XrefValue:
		s := escapeToken(v.IDRef)
		if v.Annotation != "" {
			s += " " + quote(v.Annotation)
		}
		return s
	case obodoc.PropertyValue:
		s := escapeToken(v.Property) + " "
		if v.Quoted {
			s += quote(v.Value)
		} else {
			s += escapeToken(v.Value)
		}
		if v.Datatype != "" {
			s += " " + escapeToken(v.Datatype)
		}
		return s
	case obodoc.SubsetDef:
		return escapeToken(v.ID) + " " + quote(v.Description)
	case obodoc.SynonymTypeDef:
		s := escapeToken(v.ID) + " " + quote(v.Description)
		if v.Scope != "" {
			s += " " + v.Scope
		}
		return s
	case obodoc.IDSpace:
		s := escapeToken(v.Prefix) + " " + escapeToken(v.IRI)
		if v.Description != "" {
			s += " " + quote(v.Description)
		}
		return s
	case obodoc.Tuple:
		tt := make([]string, len(v))
		for i, t := range v {
			tt[i] = escapeToken(t)
		}
		return strings.Join(tt, " ")
	}
	return escapeText(c.Text())
}

// comment returns the generated name comment for references or the stored comment
func (w *writer) comment(c *obodoc.Clause) string {
	if !w.opts.NoNameComments && namedRefTags[c.Tag] {
		if generated := w.nameComment(c); generated != "" {
			return generated
		}
	}
	return c.Comment
}

func (w *writer) nameComment(c *obodoc.Clause) string {
	name := func(id string) string {
		n, _ := w.opts.Names.Name(id)
		return n
	}
	if r, ok := c.Value.(obodoc.Relation); ok {
		target := name(r.Target)
		if target == "" {
			return ""
		}
		if rel := name(r.Rel); rel != "" {
			return rel + " " + target
		}
		return target
	}
	return name(c.Text())
}
