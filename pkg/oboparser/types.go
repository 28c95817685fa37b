/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// OpenFunc opens the document for the import key
type OpenFunc func(key string) (io.ReadCloser, error)

// Options controls the parsing of a single document
type Options struct {
	// Filename is reported in error positions
	Filename string
	// Cache resolves import clauses. Documents parsed for imports are inserted if absent.
	// The cache is not retained after the call
	Cache obodoc.Cache
	// FollowImports makes the parser load and parse imports missing from the cache
	FollowImports bool
	// Open loads imported documents. Required if FollowImports is set
	Open OpenFunc
}

// ParseError is a fatal syntax error
type ParseError struct {
	Pos  lexer.Position
	Line string
	Msg  string
}

type parser struct {
	opts    Options
	doc     *obodoc.OBODoc
	frame   *obodoc.Frame
	pos     lexer.Position
	line    string
	loading map[string]bool
	// stanza is the position and text of the current frame stanza line
	stanza     lexer.Position
	stanzaLine string
}

// valueScanner reads a clause value from a single line
type valueScanner struct {
	src []rune
	pos int
}
