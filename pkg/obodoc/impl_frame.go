/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import "golang.org/x/exp/slices"

func NewFrame(t FrameType, id string) *Frame {
	return &Frame{Type: t, ID: id}
}

// Clauses returns all clauses in insertion order
func (f *Frame) Clauses() []*Clause {
	return f.clauses
}

// ClausesOf returns clauses with the tag in insertion order
func (f *Frame) ClausesOf(tag Tag) (res []*Clause) {
	for _, c := range f.clauses {
		if c.Tag == tag {
			res = append(res, c)
		}
	}
	return res
}

// Clause returns the first clause with the tag or nil
func (f *Frame) Clause(tag Tag) *Clause {
	for _, c := range f.clauses {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// TagValue returns the first value component of the first clause with the tag
func (f *Frame) TagValue(tag Tag) (string, bool) {
	if c := f.Clause(tag); c != nil {
		return c.Text(), true
	}
	return "", false
}

// TagValues returns the first value components of all clauses with the tag
func (f *Frame) TagValues(tag Tag) (res []string) {
	for _, c := range f.ClausesOf(tag) {
		res = append(res, c.Text())
	}
	return res
}

// IsTrue returns true if the frame has a boolean clause with true value
func (f *Frame) IsTrue(tag Tag) bool {
	c := f.Clause(tag)
	return c != nil && c.BoolValue()
}

// Name returns the value of the name clause
func (f *Frame) Name() string {
	n, _ := f.TagValue(Tag_Name)
	return n
}

func (f *Frame) AddClause(c *Clause) {
	f.clauses = append(f.clauses, c)
}

// ContainsClause returns true if an equal clause is already in the frame
func (f *Frame) ContainsClause(c *Clause) bool {
	return slices.IndexFunc(f.clauses, c.Equal) >= 0
}

func (f *Frame) SetClauses(cc []*Clause) {
	f.clauses = cc
}

// RemoveClauses removes all clauses with the tag
func (f *Frame) RemoveClauses(tag Tag) {
	f.clauses = deleteIf(f.clauses, func(c *Clause) bool { return c.Tag == tag })
}

// RemoveClause removes the clause by identity
func (f *Frame) RemoveClause(c *Clause) {
	f.clauses = deleteIf(f.clauses, func(x *Clause) bool { return x == c })
}

// Tags returns distinct tags of the frame in order of the first appearance
func (f *Frame) Tags() (tags []Tag) {
	seen := map[Tag]bool{}
	for _, c := range f.clauses {
		if !seen[c.Tag] {
			seen[c.Tag] = true
			tags = append(tags, c.Tag)
		}
	}
	return tags
}

// Merge adds the clauses of the other frame which are not present yet
func (f *Frame) Merge(other *Frame) error {
	if f.Type != other.Type || f.ID != other.ID {
		return ErrFrameMerge(f, other)
	}
	for _, c := range other.clauses {
		if !f.ContainsClause(c) {
			f.AddClause(c)
		}
	}
	return nil
}

// Clone returns a deep copy of the frame
func (f *Frame) Clone() *Frame {
	n := NewFrame(f.Type, f.ID)
	for _, c := range f.clauses {
		n.AddClause(c.Clone())
	}
	return n
}
