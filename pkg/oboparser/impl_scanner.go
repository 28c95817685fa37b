/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"fmt"
	"strings"
	"unicode"
)

type scanError struct {
	col int
	msg string
}

func (e *scanError) Error() string {
	return e.msg
}

func newValueScanner(s string) *valueScanner {
	return &valueScanner{src: []rune(s)}
}

func (s *valueScanner) errorf(msg string, args ...any) error {
	return &scanError{col: s.pos, msg: fmt.Sprintf(msg, args...)}
}

func (s *valueScanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *valueScanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *valueScanner) skipSpaces() {
	for !s.eof() && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
}

// atComment returns true if the unescaped bang at the current position starts a comment
func (s *valueScanner) atComment() bool {
	if s.peek() != commentChar {
		return false
	}
	return s.pos == 0 || unicode.IsSpace(s.src[s.pos-1])
}

// atValueEnd returns true if nothing but qualifiers or a comment may follow
func (s *valueScanner) atValueEnd() bool {
	return s.eof() || s.peek() == qualifiersStart || s.atComment()
}

// readEscaped reads the char after a backslash. The backslash is at the current position
func (s *valueScanner) readEscaped() rune {
	s.pos++
	if s.eof() {
		return escapeChar
	}
	r := s.src[s.pos]
	s.pos++
	if e, ok := escapes[r]; ok {
		return e
	}
	return r
}

// readText reads unquoted text up to a qualifier block, a comment or the end of line.
// Trailing spaces are dropped
func (s *valueScanner) readText() string {
	b := strings.Builder{}
	keep := 0
	for !s.eof() {
		r := s.peek()
		switch {
		case r == escapeChar:
			b.WriteRune(s.readEscaped())
			keep = b.Len()
			continue
		case r == qualifiersStart, s.atComment():
			return b.String()[:keep]
		}
		b.WriteRune(r)
		if !unicode.IsSpace(r) {
			keep = b.Len()
		}
		s.pos++
	}
	return b.String()[:keep]
}

// readToken reads a whitespace separated token. Token also ends at any of stops
func (s *valueScanner) readToken(stops string) string {
	b := strings.Builder{}
	for !s.eof() {
		r := s.peek()
		if r == escapeChar {
			b.WriteRune(s.readEscaped())
			continue
		}
		if unicode.IsSpace(r) || strings.ContainsRune(stops, r) {
			break
		}
		b.WriteRune(r)
		s.pos++
	}
	return b.String()
}

// requireToken skips spaces and reads a non-empty token
func (s *valueScanner) requireToken(what string) (string, error) {
	s.skipSpaces()
	if s.atValueEnd() || s.peek() == quoteChar {
		return "", s.errorf("missed %s", what)
	}
	t := s.readToken(string([]rune{qualifiersStart, xrefsStart}))
	if t == "" {
		return "", s.errorf("missed %s", what)
	}
	return t, nil
}

// optionalToken reads a token if the next item is not a quoted string, a list or the value end
func (s *valueScanner) optionalToken() string {
	s.skipSpaces()
	if s.atValueEnd() || s.peek() == quoteChar || s.peek() == xrefsStart {
		return ""
	}
	return s.readToken(string([]rune{qualifiersStart, xrefsStart}))
}

// readQuoted reads a quoted string. The current position must be at the opening quote
func (s *valueScanner) readQuoted() (string, error) {
	s.skipSpaces()
	if s.peek() != quoteChar {
		return "", s.errorf("quoted string expected")
	}
	start := s.pos
	s.pos++
	b := strings.Builder{}
	for !s.eof() {
		r := s.peek()
		switch r {
		case escapeChar:
			b.WriteRune(s.readEscaped())
			continue
		case quoteChar:
			s.pos++
			return b.String(), nil
		}
		b.WriteRune(r)
		s.pos++
	}
	s.pos = start
	return "", s.errorf("unterminated quoted string")
}

// optionalQuoted reads a quoted string if the next item is quoted
func (s *valueScanner) optionalQuoted() (string, bool, error) {
	s.skipSpaces()
	if s.peek() != quoteChar {
		return "", false, nil
	}
	q, err := s.readQuoted()
	return q, true, err
}

// readXrefs reads an optional bracketed xref list
func (s *valueScanner) readXrefs() (xrefs []xref, present bool, err error) {
	s.skipSpaces()
	if s.peek() != xrefsStart {
		return nil, false, nil
	}
	start := s.pos
	s.pos++
	for {
		s.skipSpaces()
		if s.eof() {
			s.pos = start
			return nil, true, s.errorf("unterminated xref list")
		}
		if s.peek() == xrefsEnd {
			s.pos++
			return xrefs, true, nil
		}
		id := s.readToken(string([]rune{listSeparator, xrefsEnd, quoteChar}))
		if id == "" {
			return nil, true, s.errorf("missed xref id")
		}
		x := xref{id: id}
		if a, ok, err := s.optionalQuoted(); err != nil {
			return nil, true, err
		} else if ok {
			x.annotation = a
		}
		xrefs = append(xrefs, x)
		s.skipSpaces()
		if s.peek() == listSeparator {
			s.pos++
		}
	}
}

// readQualifiers reads an optional qualifier block
func (s *valueScanner) readQualifiers() (quals []qualifier, err error) {
	s.skipSpaces()
	if s.peek() != qualifiersStart {
		return nil, nil
	}
	start := s.pos
	s.pos++
	for {
		s.skipSpaces()
		if s.eof() {
			s.pos = start
			return nil, s.errorf("unterminated qualifier block")
		}
		if s.peek() == qualifiersEnd {
			s.pos++
			return quals, nil
		}
		key := s.readToken(string([]rune{qualifierAssign, listSeparator, qualifiersEnd}))
		s.skipSpaces()
		if key == "" || s.peek() != qualifierAssign {
			s.pos = start
			return nil, s.errorf("malformed qualifier block")
		}
		s.pos++
		s.skipSpaces()
		var value string
		if s.peek() == quoteChar {
			if value, err = s.readQuoted(); err != nil {
				return nil, err
			}
		} else {
			value = s.readToken(string([]rune{listSeparator, qualifiersEnd}))
		}
		quals = append(quals, qualifier{key: key, value: value})
		s.skipSpaces()
		switch s.peek() {
		case listSeparator:
			s.pos++
		case qualifiersEnd:
		default:
			s.pos = start
			return nil, s.errorf("malformed qualifier block")
		}
	}
}

// readComment reads an optional trailing comment
func (s *valueScanner) readComment() (string, bool) {
	s.skipSpaces()
	if s.peek() != commentChar {
		return "", false
	}
	c := strings.TrimSpace(string(s.src[s.pos+1:]))
	s.pos = len(s.src)
	return c, true
}

type xref struct {
	id         string
	annotation string
}

type qualifier struct {
	key   string
	value string
}
