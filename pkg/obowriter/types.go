/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"bufio"

	"golang.org/x/text/cases"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// NameProvider resolves an identifier to the entity name
type NameProvider interface {
	Name(id string) (string, bool)
}

// Options controls the writing of a document
type Options struct {
	// Names resolves names for generated clause comments. The written document is used if nil
	Names NameProvider
	// NoNameComments disables generated name comments. Stored clause comments are still written
	NoNameComments bool
}

// FrameStructureError is returned if a frame can not be written in a form that reads back the same
type FrameStructureError struct {
	FrameType obodoc.FrameType
	FrameID   string
	Tag       string
	Msg       string
}

type writer struct {
	w     *bufio.Writer
	opts  Options
	caser cases.Caser
}

type namesFunc func(id string) (string, bool)

func (f namesFunc) Name(id string) (string, bool) {
	return f(id)
}
