/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package manchester

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type expression struct {
	Pos lexer.Position
	Or  []*conjunction `@@ ( "or" @@ )*`
}

type conjunction struct {
	And []*unary `@@ ( "and" @@ )*`
}

type unary struct {
	Not         *unary       `  "not" @@`
	Restriction *restriction `| @@`
	Primary     *primary     `| @@`
}

type restriction struct {
	Property    *property `@@`
	Quantifier  string    `( @( "some" | "only" )`
	Filler      *unary    `  @@`
	Cardinality string    `| @( "exactly" | "min" | "max" )`
	N           int       `  @Int`
	Qualified   *primary  `  @@? )`
}

type property struct {
	Inverse *name `  "inverse" ( "(" @@ ")" | @@ )`
	Name    *name `| @@`
}

type primary struct {
	Sub  *expression `  "(" @@ ")"`
	Name *name       `| @@`
}

type name struct {
	Pos    lexer.Position
	IRI    string `  @IRI`
	Label  string `| @Quoted`
	Var    string `| @Var`
	Symbol string `| @Ident`
}

type frame struct {
	Subject  *name      `"Class:" @@`
	Sections []*section `@@*`
}

type section struct {
	Kind  string        `@( "SubClassOf:" | "EquivalentTo:" | "DisjointWith:" )`
	Exprs []*expression `@@ ( "," @@ )*`
}

var mLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Keyword", Pattern: `(Class|SubClassOf|EquivalentTo|DisjointWith):`},
	{Name: "IRI", Pattern: `<[^<>\s]*>`},
	{Name: "Quoted", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Var", Pattern: `\?[A-Za-z]\w*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][\w\-\.]*(:[\w\-\.]+)?`},
	{Name: "Punct", Pattern: `[(),]`},
})

var (
	expressionParser = participle.MustBuild[expression](
		participle.Lexer(mLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)
	frameParser = participle.MustBuild[frame](
		participle.Lexer(mLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(4),
	)
)
