/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

const (
	commentChar     = '!'
	escapeChar      = '\\'
	quoteChar       = '"'
	qualifiersStart = '{'
	qualifiersEnd   = '}'
	xrefsStart      = '['
	xrefsEnd        = ']'
	listSeparator   = ','
	qualifierAssign = '='
	tagSeparator    = ':'
)

const maxLineSize = 16 * 1024 * 1024

var escapes = map[rune]rune{
	'n': '\n',
	't': '\t',
	'W': ' ',
}
