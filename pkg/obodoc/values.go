/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obodoc

import "strconv"

// ClauseValue is the value of a clause. The set of implementations is closed
type ClauseValue interface {
	// Tuple returns the value components in their written order
	Tuple() []string
	isClauseValue()
}

// Text is an unquoted free text value
type Text string

func (v Text) Tuple() []string { return []string{string(v)} }
func (Text) isClauseValue()    {}

// Ref is a reference to an identifier
type Ref string

func (v Ref) Tuple() []string { return []string{string(v)} }
func (Ref) isClauseValue()    {}

type Bool bool

func (v Bool) Tuple() []string { return []string{strconv.FormatBool(bool(v))} }
func (Bool) isClauseValue()    {}

// Relation is a relation + target pair. Rel is empty for the genus of an intersection_of
type Relation struct {
	Rel    string
	Target string
}

func (v Relation) Tuple() []string {
	if v.Rel == "" {
		return []string{v.Target}
	}
	return []string{v.Rel, v.Target}
}
func (Relation) isClauseValue() {}

// IsGenus returns true if intersection_of value has no relation
func (v Relation) IsGenus() bool { return v.Rel == "" }

// Chain is a two-step property chain
type Chain struct {
	Rel1 string
	Rel2 string
}

func (v Chain) Tuple() []string { return []string{v.Rel1, v.Rel2} }
func (Chain) isClauseValue()    {}

// Quoted is a quoted text value
type Quoted string

func (v Quoted) Tuple() []string { return []string{string(v)} }
func (Quoted) isClauseValue()    {}

type Synonym struct {
	Text  string
	Scope string
	Type  string
}

func (v Synonym) Tuple() []string {
	t := []string{v.Text, v.Scope}
	if v.Type != "" {
		t = append(t, v.Type)
	}
	return t
}
func (Synonym) isClauseValue() {}

// XrefValue is the value of an xref clause
type XrefValue Xref

func (v XrefValue) Tuple() []string {
	if v.Annotation == "" {
		return []string{v.IDRef}
	}
	return []string{v.IDRef, v.Annotation}
}
func (XrefValue) isClauseValue() {}

// PropertyValue is a property + value pair. Quoted values are literals and carry a datatype
type PropertyValue struct {
	Property string
	Value    string
	Datatype string
	Quoted   bool
}

func (v PropertyValue) Tuple() []string {
	t := []string{v.Property, v.Value}
	if v.Datatype != "" {
		t = append(t, v.Datatype)
	}
	return t
}
func (PropertyValue) isClauseValue() {}

// IsLiteral returns true if the value is a literal, not a reference
func (v PropertyValue) IsLiteral() bool { return v.Quoted || v.Datatype != "" }

type SubsetDef struct {
	ID          string
	Description string
}

func (v SubsetDef) Tuple() []string { return []string{v.ID, v.Description} }
func (SubsetDef) isClauseValue()    {}

type SynonymTypeDef struct {
	ID          string
	Description string
	Scope       string
}

func (v SynonymTypeDef) Tuple() []string {
	t := []string{v.ID, v.Description}
	if v.Scope != "" {
		t = append(t, v.Scope)
	}
	return t
}
func (SynonymTypeDef) isClauseValue() {}

type IDSpace struct {
	Prefix      string
	IRI         string
	Description string
}

func (v IDSpace) Tuple() []string {
	t := []string{v.Prefix, v.IRI}
	if v.Description != "" {
		t = append(t, v.Description)
	}
	return t
}
func (IDSpace) isClauseValue() {}

// Tuple is a list of whitespace separated tokens
type Tuple []string

func (v Tuple) Tuple() []string { return []string(v) }
func (Tuple) isClauseValue()    {}
