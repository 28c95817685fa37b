/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package obowriter

import (
	_ "embed"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboparser"
)

//go:embed testdata/simplego.obo
var simpleGoObo string

//go:embed testdata/cases.obo
var casesObo string

func TestRoundTrip(t *testing.T) {
	for name, text := range map[string]string{"simplego": simpleGoObo, "cases": casesObo} {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			doc, err := oboparser.ParseString(text)
			require.NoError(err)
			written, err := WriteString(doc)
			require.NoError(err)
			require.Equal(text, written)
		})
	}
}

func TestCanonicalOrder(t *testing.T) {
	require := require.New(t)

	doc, err := oboparser.ParseString(`ontology: o
format-version: 1.2

[Term]
id: B:1
is_a: A:1
name: b
is_obsolete: false

[Typedef]
id: r
is_transitive: true
name: r

[Term]
id: A:1
name: a
`)
	require.NoError(err)
	written, err := WriteString(doc)
	require.NoError(err)
	require.Equal(`format-version: 1.2
ontology: o

[Term]
id: A:1
name: a

[Term]
id: B:1
name: b
is_a: A:1 ! a

[Typedef]
id: r
name: r
is_transitive: true

`, written)
}

func TestSortClauses(t *testing.T) {
	t.Run("intersection_of genus goes first", func(t *testing.T) {
		require := require.New(t)
		f := obodoc.NewFrame(obodoc.FrameType_Term, "X:1")
		f.AddClause(obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Rel: "R:1", Target: "Z:1"}))
		f.AddClause(obodoc.NewClause(obodoc.Tag_IntersectionOf, obodoc.Relation{Target: "Y:1"}))
		cc := SortClauses(f)
		require.Equal([]string{"Y:1"}, cc[0].Tuple())
		require.Equal([]string{"R:1", "Z:1"}, cc[1].Tuple())
	})

	t.Run("synonyms", func(t *testing.T) {
		require := require.New(t)
		f := obodoc.NewFrame(obodoc.FrameType_Term, "X:1")
		for _, s := range []string{"cc", "ccc", "AAA", "bbbb", "aaa"} {
			f.AddClause(obodoc.NewClause(obodoc.Tag_Synonym, obodoc.Synonym{Text: s, Scope: obodoc.ScopeExact}))
		}
		texts := []string{}
		for _, c := range SortClauses(f) {
			texts = append(texts, c.Text())
		}
		require.Equal([]string{"AAA", "aaa", "bbbb", "cc", "ccc"}, texts)
	})

	t.Run("header keeps insertion order within a tag", func(t *testing.T) {
		require := require.New(t)
		h := obodoc.NewFrame(obodoc.FrameType_Header, "")
		h.AddClause(obodoc.NewClause(obodoc.Tag_Subsetdef, obodoc.SubsetDef{ID: "z", Description: "z"}))
		h.AddClause(obodoc.NewClause(obodoc.Tag_FormatVersion, obodoc.Text("1.2")))
		h.AddClause(obodoc.NewClause(obodoc.Tag_Subsetdef, obodoc.SubsetDef{ID: "a", Description: "a"}))
		cc := SortClauses(h)
		require.Equal(obodoc.Tag_FormatVersion, cc[0].Tag)
		require.Equal("z", cc[1].Text())
		require.Equal("a", cc[2].Text())
	})
}

func TestWriteObsolete(t *testing.T) {
	tests := []struct {
		value obodoc.ClauseValue
		want  string
	}{
		{obodoc.Bool(false), ""},
		{obodoc.Text("false"), ""},
		{obodoc.Bool(true), "is_obsolete: true"},
		{obodoc.Text("true"), "is_obsolete: true"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, ClauseString(obodoc.NewClause(obodoc.Tag_IsObsolete, test.value), nil))
	}
}

func TestWriteEndOfFile(t *testing.T) {
	require := require.New(t)

	doc, err := oboparser.ParseString("ontology: x\n[Term]\nid: X:1\nname: x")
	require.NoError(err)
	written, err := WriteString(doc)
	require.NoError(err)
	require.True(strings.HasSuffix(written, "name: x\n\n"))
	require.False(strings.HasSuffix(written, "\n\n\n"))
}

func TestWriteOpaqueIdsAsComments(t *testing.T) {
	require := require.New(t)

	doc, err := oboparser.ParseString(`ontology: opaque

[Term]
id: X:1
relationship: RO:0000001 Y:1

[Term]
id: Y:1
name: y1

[Typedef]
id: RO:0000001
name: named relation
`)
	require.NoError(err)
	written, err := WriteString(doc)
	require.NoError(err)
	require.Contains(written, "relationship: RO:0000001 Y:1 ! named relation y1\n")

	t.Run("name comments can be switched off", func(t *testing.T) {
		b := strings.Builder{}
		require.NoError(Write(&b, doc, Options{NoNameComments: true}))
		require.Contains(b.String(), "relationship: RO:0000001 Y:1\n")
	})

	t.Run("names from other documents", func(t *testing.T) {
		other, err := oboparser.ParseString("[Term]\nid: Z:1\nname: zed\n")
		require.NoError(err)
		c := obodoc.NewClause(obodoc.Tag_IsA, obodoc.Ref("Z:1"))
		require.Equal("is_a: Z:1 ! zed", ClauseString(c, Names(doc, other)))
	})
}

func TestFrameStructureErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
	}{
		{"single intersection_of", "[Term]\nid: X:1\nintersection_of: Y:1\n", "intersection_of"},
		{"multiple comments", "[Term]\nid: X:1\ncomment: a\ncomment: b\n", "comment"},
		{"multiple names", "[Term]\nid: X:1\nname: a\nname: b\n", "name"},
		{"multiple defs", "[Term]\nid: X:1\ndef: \"a\" []\ndef: \"b\" []\n", "def"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			doc, err := oboparser.ParseString(test.text)
			require.NoError(err)

			b := strings.Builder{}
			err = Write(&b, doc, Options{})
			require.ErrorIs(err, ErrFrameStructureError)
			var fse *FrameStructureError
			require.True(errors.As(err, &fse))
			require.Equal("X:1", fse.FrameID)
			require.Equal(test.tag, fse.Tag)
			require.Empty(b.String(), "nothing is written for invalid documents")
		})
	}
}

func TestEscaping(t *testing.T) {
	require := require.New(t)

	require.Equal(`a\{b\} c \!d!e \\ x\ny`, escapeText("a{b} c !d!e \\ x\ny"))
	require.Equal(`\!bang`, escapeText("!bang"))
	require.Equal(`\Wlead and trail\W\W`, escapeText(" lead and trail  "))
	require.Equal(`say \"hi\" \\ \n`, escapeQuoted("say \"hi\" \\ \n"))
	require.Equal(`A:1\,2\]\Wx`, escapeXrefID("A:1,2] x"))
	require.Equal(`A:1,2`, escapeToken("A:1,2"))

	t.Run("escaped text reads back", func(t *testing.T) {
		for _, s := range []string{"a{b} c! d", " lead ", "tab\there", "back\\slash !", "!"} {
			doc := obodoc.New()
			f := obodoc.NewFrame(obodoc.FrameType_Term, "X:1")
			f.AddClause(obodoc.NewClause(obodoc.Tag_Comment, obodoc.Text(s)))
			require.NoError(doc.AddFrame(f))
			text, err := WriteString(doc)
			require.NoError(err)

			back, err := oboparser.ParseString(text)
			require.NoError(err)
			c, _ := back.TermFrame("X:1").TagValue(obodoc.Tag_Comment)
			require.Equal(s, c)
		}
	})
}
