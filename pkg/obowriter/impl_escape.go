/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"strings"
	"unicode"
)

func escapeCommon(b *strings.Builder, r rune) bool {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	default:
		return false
	}
	return true
}

// escapeText escapes unquoted free text so that it reads back unchanged
func escapeText(s string) string {
	rr := []rune(s)
	last := len(rr) - 1
	for last >= 0 && rr[last] == ' ' {
		last--
	}
	b := strings.Builder{}
	for i, r := range rr {
		if escapeCommon(&b, r) {
			continue
		}
		switch {
		case r == '{' || r == '}':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '!' && (i == 0 || unicode.IsSpace(rr[i-1])):
			b.WriteString(`\!`)
		case r == ' ' && (i == 0 || i > last):
			b.WriteString(`\W`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeQuoted escapes the content of a quoted string
func escapeQuoted(s string) string {
	b := strings.Builder{}
	for _, r := range s {
		if escapeCommon(&b, r) {
			continue
		}
		if r == '"' {
			b.WriteString(`\"`)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func quote(s string) string {
	return `"` + escapeQuoted(s) + `"`
}

func escapeTokenWith(s string, special string) string {
	b := strings.Builder{}
	for i, r := range s {
		if escapeCommon(&b, r) {
			continue
		}
		switch {
		case r == ' ':
			b.WriteString(`\W`)
		case strings.ContainsRune(special, r), r == '!' && i == 0:
			b.WriteRune('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeToken escapes an identifier token
func escapeToken(s string) string {
	return escapeTokenWith(s, `{["`)
}

// escapeXrefID escapes an identifier inside an xref list
func escapeXrefID(s string) string {
	return escapeTokenWith(s, `{[]",`)
}
