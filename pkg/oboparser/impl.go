/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package oboparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/oboformat/pkg/obodoc"
)

func newParser(opts Options, loading map[string]bool) *parser {
	if loading == nil {
		loading = map[string]bool{}
	}
	return &parser{
		opts:    opts,
		doc:     obodoc.New(),
		pos:     lexer.Position{Filename: opts.Filename},
		loading: loading,
	}
}

func (p *parser) parse(r io.Reader) (*obodoc.OBODoc, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	offset := 0
	for sc.Scan() {
		p.line = strings.TrimRight(sc.Text(), "\r")
		p.pos.Line++
		p.pos.Column = 1
		p.pos.Offset = offset
		offset += len(sc.Bytes()) + 1

		if err := p.parseLine(); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := p.closeFrame(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

func (p *parser) parseLine() error {
	trimmed := strings.TrimSpace(p.line)
	switch {
	case trimmed == "":
		return nil
	case trimmed[0] == commentChar:
		return nil
	case trimmed[0] == xrefsStart:
		return p.parseStanza(trimmed)
	}
	return p.parseClause()
}

func (p *parser) parseStanza(trimmed string) error {
	end := strings.IndexByte(trimmed, xrefsEnd)
	if end < 0 {
		return p.errorf("unterminated stanza name")
	}
	if rest := strings.TrimSpace(trimmed[end+1:]); rest != "" && rest[0] != commentChar {
		return p.errorf("unexpected text after stanza name")
	}
	name := trimmed[1:end]
	ft, ok := obodoc.FrameTypeByStanza(name)
	if !ok {
		return p.errorf("unknown stanza «%s»", name)
	}
	if err := p.closeFrame(); err != nil {
		return err
	}
	p.frame = obodoc.NewFrame(ft, "")
	p.stanza, p.stanzaLine = p.pos, p.line
	return nil
}

func (p *parser) closeFrame() error {
	if p.frame == nil {
		return nil
	}
	f := p.frame
	p.frame = nil
	if f.ID == "" {
		return &ParseError{Pos: p.stanza, Line: p.stanzaLine, Msg: fmt.Sprintf("%v frame has no id", f.Type)}
	}
	return p.doc.AddFrame(f)
}

func (p *parser) currentFrame() *obodoc.Frame {
	if p.frame != nil {
		return p.frame
	}
	return p.doc.Header()
}

func (p *parser) parseClause() error {
	raw, body, ok := strings.Cut(p.line, string(tagSeparator))
	if !ok {
		return p.errorf("clause has no tag")
	}
	rawTag := strings.TrimSpace(raw)
	if rawTag == "" {
		return p.errorf("clause has no tag")
	}
	valueCol := len([]rune(raw)) + 1

	tag := obodoc.TagByName(rawTag)
	if tag == obodoc.Tag_Unrecognized && logger.IsWarning() {
		logger.Warning(p.pos.String() + ": unrecognized tag «" + rawTag + "», kept as is")
	}

	frame := p.currentFrame()
	s := newValueScanner(body)
	clause, err := p.readClause(tag, rawTag, s)
	if err != nil {
		var se *scanError
		if errors.As(err, &se) {
			return p.errorAt(valueCol+se.col, "%s", se.msg)
		}
		return err
	}

	if tag == obodoc.Tag_ID && frame.Type != obodoc.FrameType_Header {
		if frame.ID != "" {
			return p.errorf("%v frame «%s» has multiple ids", frame.Type, frame.ID)
		}
		frame.ID = clause.Text()
		return nil
	}

	if tag == obodoc.Tag_Import && frame.Type == obodoc.FrameType_Header {
		if len(clause.Qualifiers) > 0 {
			logger.Verbose("qualifiers of import clause dropped:", clause.Text())
			clause.Qualifiers = nil
		}
		frame.AddClause(clause)
		return p.resolveImport(clause.Text())
	}

	frame.AddClause(clause)
	return nil
}

func (p *parser) readClause(tag obodoc.Tag, rawTag string, s *valueScanner) (*obodoc.Clause, error) {
	v, xrefs, err := parseValue(tag, s)
	if err != nil {
		return nil, err
	}
	c := obodoc.NewClause(tag, v)
	if tag == obodoc.Tag_Unrecognized {
		c.RawTag = rawTag
	}
	for _, x := range xrefs {
		c.AddXref(obodoc.Xref{IDRef: x.id, Annotation: x.annotation})
	}

	quals, err := s.readQualifiers()
	if err != nil {
		return nil, err
	}
	for _, q := range quals {
		c.AddQualifier(q.key, q.value)
	}

	if comment, ok := s.readComment(); ok {
		c.Comment = comment
	}
	s.skipSpaces()
	if !s.eof() {
		return nil, s.errorf("unexpected «%s»", string(s.src[s.pos:]))
	}
	return c, nil
}

func (p *parser) resolveImport(key string) error {
	p.doc.AddImportKey(key)
	if p.opts.Cache == nil {
		return nil
	}
	if _, ok := p.opts.Cache[key]; ok {
		return nil
	}
	if !p.opts.FollowImports || p.loading[key] {
		return nil
	}
	if p.opts.Open == nil {
		return errImport(key, errors.New("no import loader"))
	}

	logger.Verbose("loading import", key)
	rc, err := p.opts.Open(key)
	if err != nil {
		return errImport(key, err)
	}
	defer rc.Close()

	p.loading[key] = true
	defer delete(p.loading, key)

	childOpts := p.opts
	childOpts.Filename = key
	child, err := newParser(childOpts, p.loading).parse(rc)
	if err != nil {
		return errImport(key, err)
	}
	p.opts.Cache.PutIfAbsent(key, child)
	return nil
}
