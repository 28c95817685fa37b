/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboconv

import (
	"fmt"
	"strings"

	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/owl"
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticKind_Duplicate:
		return "duplicate"
	case DiagnosticKind_Untranslatable:
		return "untranslatable"
	case DiagnosticKind_Invalid:
		return "invalid"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", k)
}

func (d Diagnostic) String() string {
	s := d.Kind.String()
	if d.FrameID != "" {
		s += " [" + d.FrameID + "]"
	}
	if d.Tag != "" {
		s += " " + d.Tag
	}
	return s + ": " + d.Message
}

// TagProperty returns the annotation property for the frame tag
func TagProperty(tag obodoc.Tag) (owl.IRI, bool) {
	p, ok := tagProperties[tag]
	return p, ok
}

// PropertyTag returns the frame tag for the annotation property
func PropertyTag(p owl.IRI) (obodoc.Tag, bool) {
	t, ok := propertyTags[p]
	return t, ok
}

// SynonymProperty returns the annotation property for the synonym scope
func SynonymProperty(scope string) owl.IRI {
	if p, ok := synonymProperties[scope]; ok {
		return p
	}
	return owl.OboInOwlHasRelatedSynonym
}

// SynonymScope returns the scope of the synonym annotation property
func SynonymScope(p owl.IRI) (string, bool) {
	s, ok := synonymScopes[p]
	return s, ok
}

// TagCharacteristic returns the property characteristic of the typedef flag
func TagCharacteristic(tag obodoc.Tag) (owl.Characteristic, bool) {
	c, ok := tagCharacteristics[tag]
	return c, ok
}

// CharacteristicTag returns the typedef flag of the property characteristic
func CharacteristicTag(c owl.Characteristic) (obodoc.Tag, bool) {
	t, ok := characteristicTags[c]
	return t, ok
}

// GenericProperty returns the oboInOwl property which keeps a tag or a qualifier without own translation
func GenericProperty(name string) owl.IRI {
	return owl.IRI(owl.NsOboInOwl + name)
}

// GenericName returns the tag or qualifier name kept by the oboInOwl property
func GenericName(p owl.IRI) (string, bool) {
	return strings.CutPrefix(string(p), owl.NsOboInOwl)
}
