/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"github.com/voedger/oboformat/pkg/obodoc"
)

var synonymScopes = map[string]bool{
	obodoc.ScopeExact:   true,
	obodoc.ScopeNarrow:  true,
	obodoc.ScopeBroad:   true,
	obodoc.ScopeRelated: true,
}

// parseValue reads the tag value and the trailing xref list
func parseValue(tag obodoc.Tag, s *valueScanner) (v obodoc.ClauseValue, xrefs []xref, err error) {
	switch tag.Shape() {
	case obodoc.Shape_Ref:
		id, err := s.requireToken("identifier")
		return obodoc.Ref(id), nil, err

	case obodoc.Shape_Bool:
		b, err := s.requireToken("boolean value")
		if err != nil {
			return nil, nil, err
		}
		switch b {
		case obodoc.TrueValue:
			return obodoc.Bool(true), nil, nil
		case obodoc.FalseValue:
			return obodoc.Bool(false), nil, nil
		}
		return nil, nil, s.errorf("boolean value expected, got «%s»", b)

	case obodoc.Shape_Relation:
		rel, err := s.requireToken("relation")
		if err != nil {
			return nil, nil, err
		}
		target, err := s.requireToken("relation target")
		return obodoc.Relation{Rel: rel, Target: target}, nil, err

	case obodoc.Shape_Intersection:
		first, err := s.requireToken("class")
		if err != nil {
			return nil, nil, err
		}
		if second := s.optionalToken(); second != "" {
			return obodoc.Relation{Rel: first, Target: second}, nil, nil
		}
		return obodoc.Relation{Target: first}, nil, nil

	case obodoc.Shape_Chain:
		r1, err := s.requireToken("relation")
		if err != nil {
			return nil, nil, err
		}
		r2, err := s.requireToken("relation")
		return obodoc.Chain{Rel1: r1, Rel2: r2}, nil, err

	case obodoc.Shape_Quoted:
		text, err := s.readQuoted()
		if err != nil {
			return nil, nil, err
		}
		xrefs, _, err = s.readXrefs()
		return obodoc.Quoted(text), xrefs, err

	case obodoc.Shape_Synonym:
		return parseSynonym(s)

	case obodoc.Shape_Xref:
		id, err := s.requireToken("xref")
		if err != nil {
			return nil, nil, err
		}
		a, _, err := s.optionalQuoted()
		return obodoc.XrefValue{IDRef: id, Annotation: a}, nil, err

	case obodoc.Shape_PropertyValue:
		return parsePropertyValue(s)

	case obodoc.Shape_Subsetdef:
		id, err := s.requireToken("subset id")
		if err != nil {
			return nil, nil, err
		}
		desc, err := s.readQuoted()
		return obodoc.SubsetDef{ID: id, Description: desc}, nil, err

	case obodoc.Shape_Synonymtypedef:
		id, err := s.requireToken("synonym type id")
		if err != nil {
			return nil, nil, err
		}
		desc, err := s.readQuoted()
		if err != nil {
			return nil, nil, err
		}
		scope := s.optionalToken()
		if scope != "" && !synonymScopes[scope] {
			return nil, nil, s.errorf("unknown synonym scope «%s»", scope)
		}
		return obodoc.SynonymTypeDef{ID: id, Description: desc, Scope: scope}, nil, nil

	case obodoc.Shape_Idspace:
		prefix, err := s.requireToken("idspace prefix")
		if err != nil {
			return nil, nil, err
		}
		iri, err := s.requireToken("idspace IRI")
		if err != nil {
			return nil, nil, err
		}
		desc, _, err := s.optionalQuoted()
		return obodoc.IDSpace{Prefix: prefix, IRI: iri, Description: desc}, nil, err

	case obodoc.Shape_Tuple:
		t := obodoc.Tuple{}
		for tok := s.optionalToken(); tok != ""; tok = s.optionalToken() {
			t = append(t, tok)
		}
		if len(t) == 0 {
			return nil, nil, s.errorf("missed value")
		}
		return t, nil, nil
	}

	s.skipSpaces()
	return obodoc.Text(s.readText()), nil, nil
}

func parseSynonym(s *valueScanner) (obodoc.ClauseValue, []xref, error) {
	text, err := s.readQuoted()
	if err != nil {
		return nil, nil, err
	}
	syn := obodoc.Synonym{Text: text, Scope: obodoc.ScopeRelated}
	if scope := s.optionalToken(); scope != "" {
		if !synonymScopes[scope] {
			return nil, nil, s.errorf("unknown synonym scope «%s»", scope)
		}
		syn.Scope = scope
		syn.Type = s.optionalToken()
	}
	xrefs, _, err := s.readXrefs()
	if err != nil {
		return nil, nil, err
	}
	return syn, xrefs, nil
}

func parsePropertyValue(s *valueScanner) (obodoc.ClauseValue, []xref, error) {
	prop, err := s.requireToken("property")
	if err != nil {
		return nil, nil, err
	}
	pv := obodoc.PropertyValue{Property: prop}
	if v, quoted, err := s.optionalQuoted(); err != nil {
		return nil, nil, err
	} else if quoted {
		pv.Value, pv.Quoted = v, true
	} else if pv.Value, err = s.requireToken("property value"); err != nil {
		return nil, nil, err
	}
	pv.Datatype = s.optionalToken()
	return pv, nil, nil
}
