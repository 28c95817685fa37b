/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// NewClause returns a clause with the specified tag and value
func NewClause(tag Tag, value ClauseValue) *Clause {
	return &Clause{Tag: tag, Value: value}
}

// NewUnrecognizedClause returns a clause for a tag which has no meaning to the converter
func NewUnrecognizedClause(rawTag, value string) *Clause {
	return &Clause{Tag: Tag_Unrecognized, RawTag: rawTag, Value: Text(value)}
}

// TagName returns the written tag text
func (c *Clause) TagName() string {
	if c.Tag == Tag_Unrecognized {
		return c.RawTag
	}
	return c.Tag.String()
}

// Tuple returns the value tuple, empty if the clause has no value
func (c *Clause) Tuple() []string {
	if c.Value == nil {
		return nil
	}
	return c.Value.Tuple()
}

// Text returns the first value component
func (c *Clause) Text() string {
	if t := c.Tuple(); len(t) > 0 {
		return t[0]
	}
	return ""
}

// HasValidShape returns true if the value matches the tag shape. Only text clauses may have no value
func (c *Clause) HasValidShape() bool {
	if c.Value == nil {
		return c.Tag.Shape() == Shape_Text
	}
	return c.Tag.Shape().Accepts(c.Value)
}

// BoolValue returns true if the clause holds a true boolean value
func (c *Clause) BoolValue() bool {
	switch v := c.Value.(type) {
	case Bool:
		return bool(v)
	case Text:
		return string(v) == TrueValue
	}
	return false
}

func (c *Clause) Qualifier(key string) (string, bool) {
	for _, q := range c.Qualifiers {
		if q.Qualifier == key {
			return q.Value, true
		}
	}
	return "", false
}

func (c *Clause) AddQualifier(key, value string) {
	c.Qualifiers = append(c.Qualifiers, QualifierValue{Qualifier: key, Value: value})
}

// RemoveQualifier removes all qualifiers with the key
func (c *Clause) RemoveQualifier(key string) {
	c.Qualifiers = deleteIf(c.Qualifiers, func(q QualifierValue) bool { return q.Qualifier == key })
}

func (c *Clause) AddXref(x Xref) {
	c.Xrefs = append(c.Xrefs, x)
}

// Clone returns a deep copy of the clause
func (c *Clause) Clone() *Clause {
	n := *c
	n.Xrefs = slices.Clone(c.Xrefs)
	n.Qualifiers = slices.Clone(c.Qualifiers)
	return &n
}

// Key returns a string which is equal for equal clauses. Comments do not take part
func (c *Clause) Key() string {
	b := strings.Builder{}
	b.WriteString(c.TagName())
	b.WriteByte(0)
	b.WriteString(strings.Join(c.Tuple(), "\x1f"))
	b.WriteByte(0)

	xrefs := make([]string, 0, len(c.Xrefs))
	for _, x := range c.Xrefs {
		xrefs = append(xrefs, x.IDRef+"\x1f"+x.Annotation)
	}
	sort.Strings(xrefs)
	b.WriteString(strings.Join(xrefs, "\x1e"))
	b.WriteByte(0)

	quals := make([]string, 0, len(c.Qualifiers))
	for _, q := range c.Qualifiers {
		quals = append(quals, q.Qualifier+"="+q.Value)
	}
	sort.Strings(quals)
	b.WriteString(strings.Join(quals, "\x1e"))
	return b.String()
}

// Equal returns true if clauses have the same tag, value, xrefs and qualifiers
func (c *Clause) Equal(o *Clause) bool {
	if o == nil {
		return false
	}
	return c.Key() == o.Key()
}
