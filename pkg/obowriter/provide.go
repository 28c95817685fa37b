/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// Write writes the document in canonical form.
//
// Frame invariants are checked before anything is written, violations are returned as *FrameStructureError
func Write(w io.Writer, doc *obodoc.OBODoc, opts Options) error {
	wr := &writer{w: bufio.NewWriter(w), opts: opts, caser: cases.Fold()}
	return wr.writeDoc(doc)
}

// WriteString returns the canonical text of the document
func WriteString(doc *obodoc.OBODoc) (string, error) {
	b := strings.Builder{}
	if err := Write(&b, doc, Options{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ClauseString renders a single clause line without a trailing newline.
// Returns an empty string for clauses which are never written, e.g. false is_obsolete
func ClauseString(c *obodoc.Clause, names NameProvider) string {
	wr := &writer{opts: Options{Names: names, NoNameComments: names == nil}, caser: cases.Fold()}
	line, _ := wr.clauseLine(c)
	return line
}

// Names returns a NameProvider which looks the documents up in order
func Names(docs ...*obodoc.OBODoc) NameProvider {
	return namesFunc(func(id string) (string, bool) {
		for _, d := range docs {
			if n, ok := d.Name(id); ok {
				return n, true
			}
		}
		return "", false
	})
}
