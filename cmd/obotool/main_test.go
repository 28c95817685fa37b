/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/oboformat/pkg/obodoc"
	"github.com/voedger/oboformat/pkg/oboparser"
	"github.com/voedger/oboformat/pkg/obowriter"
)

//go:embed testdata/macros.obo
var macrosObo string

const testVersion = "0.0.1"

func run(args ...string) error {
	return execRootCmd(append([]string{"obotool"}, args...), testVersion)
}

func writeTemp(t *testing.T, dir, name, text string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), defaultPermissions))
	return path
}

func readFile(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestFmt(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "in.obo", "ontology: test\n\n[Term]\nid: TEST:2\nname: second\n\n[Term]\nid: TEST:1\nis_a: TEST:2\nname: first\n")
	out := filepath.Join(dir, "out.obo")
	require.NoError(run("fmt", in, "-o", out))

	doc, err := oboparser.ParseString(readFile(t, in))
	require.NoError(err)
	expected, err := obowriter.WriteString(doc)
	require.NoError(err)
	require.Equal(expected, readFile(t, out))

	t.Run("missing file", func(t *testing.T) {
		require.Error(run("fmt", filepath.Join(dir, "absent.obo")))
	})

	t.Run("wrong args", func(t *testing.T) {
		require.Error(run("fmt"))
	})
}

func TestConvert(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "macros.obo", macrosObo)
	owlFile := filepath.Join(dir, "macros.ofn")

	t.Run("obo to owl", func(t *testing.T) {
		require.NoError(run("convert", in, "-o", owlFile))
		text := readFile(t, owlFile)
		require.Contains(text, "Ontology(<http://purl.obolibrary.org/obo/test.owl>")
		require.Contains(text, "SubClassOf(<http://purl.obolibrary.org/obo/TEST_1> <http://purl.obolibrary.org/obo/TEST_2>)")
		require.Contains(text, "ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/RO_0002104> <http://purl.obolibrary.org/obo/TEST_2>)")
	})

	t.Run("owl to obo", func(t *testing.T) {
		out := filepath.Join(dir, "back.obo")
		require.NoError(run("convert", owlFile, "-o", out))
		doc, err := oboparser.ParseString(readFile(t, out))
		require.NoError(err)
		require.Equal("test", doc.OntologyID())
		f := doc.TermFrame("TEST:1")
		require.NotNil(f)
		require.Equal("first", f.Name())
	})

	t.Run("macros and gci", func(t *testing.T) {
		out := filepath.Join(dir, "expanded.ofn")
		require.NoError(run("convert", in, "--macros", "--gci", "-o", out))
		require.Contains(readFile(t, out),
			"SubClassOf(<http://purl.obolibrary.org/obo/TEST_1> ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/BFO_0000051> ")
		require.NotContains(readFile(t, out), "ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/RO_0002104>")
		require.Contains(readFile(t, filepath.Join(dir, "expanded-gci.ofn")), "EquivalentClasses(")
	})

	t.Run("gci requires output", func(t *testing.T) {
		require.Error(run("convert", in, "--gci"))
	})
}

func TestConvertTransitiveImports(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "main.obo", "ontology: main\nimport: common.obo\n\n[Term]\nid: M:0000001\nrelationship: part_of M:0000002\n")
	writeTemp(t, dir, "common.obo", "ontology: common\nimport: ro.obo\n")
	writeTemp(t, dir, "ro.obo", "ontology: ro\n\n[Typedef]\nid: part_of\nxref: BFO:0000050\n")
	out := filepath.Join(dir, "main.ofn")

	require.NoError(run("convert", in, "--follow-imports", "-o", out))
	require.Contains(readFile(t, out),
		"SubClassOf(<http://purl.obolibrary.org/obo/M_0000001> ObjectSomeValuesFrom(<http://purl.obolibrary.org/obo/BFO_0000050> <http://purl.obolibrary.org/obo/M_0000002>))")
}

func TestRoundtrip(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "macros.obo", macrosObo)
	out := filepath.Join(dir, "rt.obo")
	require.NoError(run("roundtrip", in, "-o", out))

	doc, err := oboparser.ParseString(readFile(t, out))
	require.NoError(err)
	require.NotNil(doc.TermFrame("TEST:1"))
	require.NotNil(doc.TypedefFrame("overlaps_membrane"))
}

func TestDiff(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	a := writeTemp(t, dir, "a.obo", "ontology: test\ndate: 01:01:2024 10:00\n\n[Term]\nid: TEST:1\nname: one\n")
	b := writeTemp(t, dir, "b.obo", "ontology: test\ndate: 02:01:2024 10:00\n\n[Term]\nid: TEST:1\nname: first\n")
	out := filepath.Join(dir, "diff.txt")

	require.NoError(run("diff", a, b, "-o", out))
	require.Equal("header: changed «date: 01:01:2024 10:00» to «date: 02:01:2024 10:00»\n"+
		"Term TEST:1: changed «name: one» to «name: first»\n", readFile(t, out))

	t.Run("fail", func(t *testing.T) {
		err := run("diff", a, b, "--fail", "-o", out)
		require.ErrorIs(err, ErrDocumentsDifferError)
		require.NoError(run("diff", a, a, "--fail", "-o", out))
		require.Empty(readFile(t, out))
	})

	t.Run("ignore", func(t *testing.T) {
		require.NoError(run("diff", a, b, "--ignore", "date", "-o", out))
		require.Equal("Term TEST:1: changed «name: one» to «name: first»\n", readFile(t, out))
		require.Error(run("diff", a, b, "--ignore", "no-such-tag"))
	})
}

func TestXrefs(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "macros.obo", macrosObo)
	bridges := filepath.Join(dir, "bridges")

	require.NoError(run("xrefs", in, "-d", bridges))
	doc, err := oboparser.ParseString(readFile(t, filepath.Join(bridges, "bridge-caro.obo")))
	require.NoError(err)
	require.Equal("bridge-caro", doc.OntologyID())
	require.Equal([]string{"CARO:0000001"}, doc.TermFrame("TEST:1").TagValues(obodoc.Tag_IsA))

	t.Run("flat", func(t *testing.T) {
		require.NoError(run("xrefs", in, "-d", bridges, "--bridge-prefix", ""))
		_, err := os.Stat(filepath.Join(bridges, "test-xrefs.obo"))
		require.NoError(err)
	})
}

func TestConfig(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	in := writeTemp(t, dir, "anon.obo", "[Term]\nid: TEST:1\nname: one\n")
	out := filepath.Join(dir, "anon.ofn")

	t.Run("no ontology id", func(t *testing.T) {
		require.Error(run("convert", in, "-o", out))
	})

	t.Run("config file", func(t *testing.T) {
		cfg := writeTemp(t, dir, "obotool.yaml", "convert:\n  defaultOntologyId: fromfile\n")
		require.NoError(run("convert", in, "--config", cfg, "-o", out))
		require.Contains(readFile(t, out), "Ontology(<http://purl.obolibrary.org/obo/fromfile.owl>")
	})

	t.Run("environment beats config file", func(t *testing.T) {
		cfg := writeTemp(t, dir, "obotool.yaml", "convert:\n  defaultOntologyId: fromfile\n")
		t.Setenv(envPrefix+envDefaultOntologyID, "fromenv")
		require.NoError(run("convert", in, "--config", cfg, "-o", out))
		require.Contains(readFile(t, out), "Ontology(<http://purl.obolibrary.org/obo/fromenv.owl>")
	})

	t.Run("errors", func(t *testing.T) {
		require.Error(run("convert", in, "--config", filepath.Join(dir, "absent.yaml"), "-o", out))

		bad := writeTemp(t, dir, "bad.yaml", "convert: [\n")
		err := run("convert", in, "--config", bad, "-o", out)
		require.ErrorIs(err, ErrInvalidConfigError)

		t.Setenv(envPrefix+envStrict, "maybe")
		err = run("fmt", in, "-o", filepath.Join(dir, "fmt.obo"))
		require.ErrorIs(err, ErrInvalidConfigError)
	})
}
