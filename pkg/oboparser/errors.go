/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"errors"
	"fmt"
)

var ErrParseError = errors.New("parse error")

var ErrImportError = errors.New("import error")

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Msg, e.Line)
}

func (e *ParseError) Unwrap() error {
	return ErrParseError
}

func (p *parser) errorf(msg string, args ...any) error {
	return &ParseError{Pos: p.pos, Line: p.line, Msg: fmt.Sprintf(msg, args...)}
}

func (p *parser) errorAt(col int, msg string, args ...any) error {
	pos := p.pos
	pos.Column = col + 1
	return &ParseError{Pos: pos, Line: p.line, Msg: fmt.Sprintf(msg, args...)}
}

func errImport(key string, err error) error {
	return fmt.Errorf("%w «%s»: %w", ErrImportError, key, err)
}
