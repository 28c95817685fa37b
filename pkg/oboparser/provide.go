/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/voedger/oboformat/pkg/obodoc"
)

// Parse reads an OBO document from the reader.
//
// Unknown tags are kept as unrecognized clauses. Syntax errors are returned as *ParseError
func Parse(r io.Reader, opts Options) (*obodoc.OBODoc, error) {
	loading := map[string]bool{}
	if opts.Filename != "" {
		loading[opts.Filename] = true
	}
	return newParser(opts, loading).parse(r)
}

// ParseString parses the OBO document text with default options
func ParseString(s string) (*obodoc.OBODoc, error) {
	return Parse(strings.NewReader(s), Options{})
}

// ParseFile parses the OBO file. Imports are opened relative to the file directory
// unless opts.Open is set
func ParseFile(path string, opts Options) (*obodoc.OBODoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if opts.Filename == "" {
		opts.Filename = path
	}
	if opts.Open == nil {
		opts.Open = DirOpener(filepath.Dir(path))
	}
	return Parse(f, opts)
}

// DirOpener returns an OpenFunc which opens local import keys relative to the directory
func DirOpener(dir string) OpenFunc {
	return func(key string) (io.ReadCloser, error) {
		key = strings.TrimPrefix(key, "file:")
		if !filepath.IsAbs(key) {
			key = filepath.Join(dir, key)
		}
		return os.Open(key)
	}
}
