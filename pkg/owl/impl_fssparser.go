/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package owl

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// FunctionalDocument is the content of a functional syntax text
type FunctionalDocument struct {
	ID          OntologyID
	Imports     []IRI
	Annotations []Annotation
	Axioms      []Axiom
}

type fssDocument struct {
	Prefixes []*fssPrefix `@@*`
	Items    []*fssCall   `@@*`
}

type fssPrefix struct {
	Name string `"Prefix" "(" @Prefixed "="`
	IRI  string `@IRI ")"`
}

type fssCall struct {
	Pos  lexer.Position
	Name string    `@Ident "("`
	Args []*fssArg `@@* ")"`
}

type fssArg struct {
	Pos      lexer.Position
	IRI      *string     `  @IRI`
	Prefixed *string     `| @Prefixed`
	Literal  *fssLiteral `| @@`
	Number   *int        `| @Number`
	Call     *fssCall    `| @@`
}

type fssLiteral struct {
	Value    fssString `@String`
	Lang     *string   `( "@" @Ident`
	Datatype *string   `| "^^" ( @IRI | @Prefixed ) )?`
}

type fssString string

func (s *fssString) Capture(values []string) error {
	v := values[0]
	*s = fssString(unescapeLiteral(v[1 : len(v)-1]))
	return nil
}

var fssParser = participle.MustBuild[fssDocument](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "IRI", Pattern: `<[^<>"\s]*>`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Prefixed", Pattern: `[A-Za-z_][\w\-\.]*:[\w\-\.]*`},
		{Name: "Ident", Pattern: `[A-Za-z_]\w*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Punct", Pattern: `\^\^|[()=@]`},
	})),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

type fssReader struct {
	prefixes map[string]string
}

// ParseFunctional reads axioms, imports and annotations from functional syntax text.
// The text is either a bare list of axioms or an Ontology(...) document
func ParseFunctional(text string) (*FunctionalDocument, error) {
	doc, err := fssParser.ParseString("", text)
	if err != nil {
		return nil, ErrSyntax("%v", err)
	}
	r := fssReader{prefixes: map[string]string{}}
	for p, ns := range Prefixes {
		r.prefixes[p] = ns
	}
	for _, p := range doc.Prefixes {
		r.prefixes[strings.TrimSuffix(p.Name, ":")] = strings.Trim(p.IRI, "<>")
	}

	res := &FunctionalDocument{}
	var errs []error
	for _, item := range doc.Items {
		if item.Name == "Ontology" {
			errs = append(errs, r.readOntology(item, res))
			continue
		}
		ax, err := r.axiom(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res.Axioms = append(res.Axioms, ax)
	}
	return res, errors.Join(errs...)
}

// ParseAxioms reads axioms from functional syntax text
func ParseAxioms(text string) ([]Axiom, error) {
	doc, err := ParseFunctional(text)
	if doc == nil {
		return nil, err
	}
	return doc.Axioms, err
}

// Ontology returns a new ontology with the document content
func (d *FunctionalDocument) Ontology() *Ontology {
	o := NewOntology(d.ID.IRI, d.ID.VersionIRI)
	for _, i := range d.Imports {
		o.AddImport(i)
	}
	for _, a := range d.Annotations {
		o.AddAnnotation(a)
	}
	o.AddAxioms(d.Axioms...)
	return o
}

func (r *fssReader) readOntology(c *fssCall, res *FunctionalDocument) error {
	var errs []error
	for _, a := range c.Args {
		switch {
		case a.Call == nil:
			iri, err := r.iri(a)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if res.ID.IRI == "" {
				res.ID.IRI = iri
			} else {
				res.ID.VersionIRI = iri
			}
		case a.Call.Name == "Import":
			if len(a.Call.Args) != 1 {
				errs = append(errs, r.errorf(a.Call.Pos, "Import requires one IRI"))
				continue
			}
			iri, err := r.iri(a.Call.Args[0])
			if err != nil {
				errs = append(errs, err)
				continue
			}
			res.Imports = append(res.Imports, iri)
		case a.Call.Name == "Annotation":
			ann, err := r.annotation(a.Call)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			res.Annotations = append(res.Annotations, ann)
		default:
			ax, err := r.axiom(a.Call)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			res.Axioms = append(res.Axioms, ax)
		}
	}
	return errors.Join(errs...)
}

func (r *fssReader) errorf(pos lexer.Position, msg string, args ...any) error {
	return ErrSyntax(pos.String()+": "+msg, args...)
}

func (r *fssReader) iri(a *fssArg) (IRI, error) {
	switch {
	case a.IRI != nil:
		return r.expand(a.Pos, *a.IRI)
	case a.Prefixed != nil:
		return r.expand(a.Pos, *a.Prefixed)
	}
	return "", r.errorf(a.Pos, "IRI expected")
}

// expand returns the IRI of a full <iri> or prefixed name token
func (r *fssReader) expand(pos lexer.Position, token string) (IRI, error) {
	if strings.HasPrefix(token, "<") {
		return IRI(strings.Trim(token, "<>")), nil
	}
	prefix, local, _ := strings.Cut(token, ":")
	ns, ok := r.prefixes[prefix]
	if !ok {
		return "", r.errorf(pos, "unknown prefix «%s»", prefix)
	}
	return IRI(ns + local), nil
}

// splitAnnotations separates leading Annotation(...) arguments
func (r *fssReader) splitAnnotations(args []*fssArg) ([]Annotation, []*fssArg, error) {
	var anns []Annotation
	i := 0
	for ; i < len(args); i++ {
		if args[i].Call == nil || args[i].Call.Name != "Annotation" {
			break
		}
		a, err := r.annotation(args[i].Call)
		if err != nil {
			return nil, nil, err
		}
		anns = append(anns, a)
	}
	return anns, args[i:], nil
}

func (r *fssReader) annotation(c *fssCall) (Annotation, error) {
	anns, rest, err := r.splitAnnotations(c.Args)
	if err != nil {
		return Annotation{}, err
	}
	if len(rest) != 2 {
		return Annotation{}, r.errorf(c.Pos, "Annotation requires a property and a value")
	}
	p, err := r.iri(rest[0])
	if err != nil {
		return Annotation{}, err
	}
	v, err := r.annotationValue(rest[1])
	if err != nil {
		return Annotation{}, err
	}
	return NewAnnotation(p, v, anns...), nil
}

func (r *fssReader) annotationValue(a *fssArg) (AnnotationValue, error) {
	if a.Literal == nil {
		return r.iri(a)
	}
	l := Literal{Value: string(a.Literal.Value)}
	switch {
	case a.Literal.Lang != nil:
		l.Lang = *a.Literal.Lang
	case a.Literal.Datatype != nil:
		dt, err := r.expand(a.Pos, *a.Literal.Datatype)
		if err != nil {
			return nil, err
		}
		l.Datatype = dt
	default:
		l.Datatype = XSDString
	}
	return l, nil
}

func (r *fssReader) classExpression(a *fssArg) (ClassExpression, error) {
	if a.Call == nil {
		iri, err := r.iri(a)
		return Class(iri), err
	}
	c := a.Call
	switch c.Name {
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		if len(c.Args) != 2 {
			return nil, r.errorf(c.Pos, "%s requires a property and a filler", c.Name)
		}
		p, err := r.propertyExpression(c.Args[0])
		if err != nil {
			return nil, err
		}
		f, err := r.classExpression(c.Args[1])
		if err != nil {
			return nil, err
		}
		if c.Name == "ObjectSomeValuesFrom" {
			return Some(p, f), nil
		}
		return Only(p, f), nil
	case "ObjectIntersectionOf", "ObjectUnionOf":
		ops, err := r.classExpressions(c.Args)
		if err != nil {
			return nil, err
		}
		if c.Name == "ObjectIntersectionOf" {
			return NewIntersectionOf(ops...), nil
		}
		return NewUnionOf(ops...), nil
	case "ObjectComplementOf":
		if len(c.Args) != 1 {
			return nil, r.errorf(c.Pos, "ObjectComplementOf requires one operand")
		}
		op, err := r.classExpression(c.Args[0])
		return ObjectComplementOf{Operand: op}, err
	}
	for kind, name := range cardinalityNames {
		if name != c.Name {
			continue
		}
		if len(c.Args) < 2 || len(c.Args) > 3 || c.Args[0].Number == nil {
			return nil, r.errorf(c.Pos, "%s requires a number, a property and an optional filler", c.Name)
		}
		p, err := r.propertyExpression(c.Args[1])
		if err != nil {
			return nil, err
		}
		var f ClassExpression
		if len(c.Args) == 3 {
			if f, err = r.classExpression(c.Args[2]); err != nil {
				return nil, err
			}
		}
		return Cardinality(kind, *c.Args[0].Number, p, f), nil
	}
	return nil, ErrUnsupported("%s: class expression %s", c.Pos, c.Name)
}

func (r *fssReader) classExpressions(args []*fssArg) ([]ClassExpression, error) {
	res := make([]ClassExpression, 0, len(args))
	for _, a := range args {
		ce, err := r.classExpression(a)
		if err != nil {
			return nil, err
		}
		res = append(res, ce)
	}
	return res, nil
}

func (r *fssReader) propertyExpression(a *fssArg) (PropertyExpression, error) {
	if a.Call == nil {
		iri, err := r.iri(a)
		return ObjectProperty(iri), err
	}
	if a.Call.Name != "ObjectInverseOf" || len(a.Call.Args) != 1 {
		return nil, ErrUnsupported("%s: property expression %s", a.Call.Pos, a.Call.Name)
	}
	iri, err := r.iri(a.Call.Args[0])
	return ObjectInverseOf{Property: ObjectProperty(iri)}, err
}

func (r *fssReader) propertyExpressions(args []*fssArg) ([]PropertyExpression, error) {
	res := make([]PropertyExpression, 0, len(args))
	for _, a := range args {
		p, err := r.propertyExpression(a)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func (r *fssReader) entity(a *fssArg) (Entity, error) {
	if a.Call == nil || len(a.Call.Args) != 1 {
		return Entity{}, r.errorf(a.Pos, "entity expected")
	}
	for t, name := range entityTypeNames {
		if name == a.Call.Name {
			iri, err := r.iri(a.Call.Args[0])
			return Entity{Type: t, IRI: iri}, err
		}
	}
	return Entity{}, ErrUnsupported("%s: entity type %s", a.Call.Pos, a.Call.Name)
}

func (r *fssReader) axiom(c *fssCall) (Axiom, error) {
	anns, args, err := r.splitAnnotations(c.Args)
	if err != nil {
		return nil, err
	}
	arity := func(n int) error {
		if len(args) != n {
			return r.errorf(c.Pos, "%s requires %d arguments, got %d", c.Name, n, len(args))
		}
		return nil
	}

	switch c.Name {
	case "Declaration":
		if err := arity(1); err != nil {
			return nil, err
		}
		e, err := r.entity(args[0])
		return Declaration{Entity: e, Annotated: Annotated{anns}}, err

	case "SubClassOf":
		if err := arity(2); err != nil {
			return nil, err
		}
		sub, err := r.classExpression(args[0])
		if err != nil {
			return nil, err
		}
		super, err := r.classExpression(args[1])
		return NewSubClassOf(sub, super, anns...), err

	case "EquivalentClasses", "DisjointClasses":
		if len(args) < 2 {
			return nil, r.errorf(c.Pos, "%s requires at least two classes", c.Name)
		}
		cc, err := r.classExpressions(args)
		if err != nil {
			return nil, err
		}
		if c.Name == "EquivalentClasses" {
			return NewEquivalentClasses(cc, anns...), nil
		}
		return NewDisjointClasses(cc, anns...), nil

	case "SubObjectPropertyOf":
		if err := arity(2); err != nil {
			return nil, err
		}
		super, err := r.propertyExpression(args[1])
		if err != nil {
			return nil, err
		}
		if args[0].Call != nil && args[0].Call.Name == "ObjectPropertyChain" {
			chain, err := r.propertyExpressions(args[0].Call.Args)
			return NewSubPropertyChainOf(chain, super, anns...), err
		}
		sub, err := r.propertyExpression(args[0])
		return NewSubObjectPropertyOf(sub, super, anns...), err

	case "EquivalentObjectProperties", "DisjointObjectProperties":
		pp, err := r.propertyExpressions(args)
		if err != nil {
			return nil, err
		}
		if c.Name == "EquivalentObjectProperties" {
			return NewEquivalentObjectProperties(pp, anns...), nil
		}
		return NewDisjointObjectProperties(pp, anns...), nil

	case "InverseObjectProperties":
		if err := arity(2); err != nil {
			return nil, err
		}
		pp, err := r.propertyExpressions(args)
		if err != nil {
			return nil, err
		}
		return NewInverseObjectProperties(pp[0], pp[1], anns...), nil

	case "ObjectPropertyDomain", "ObjectPropertyRange":
		if err := arity(2); err != nil {
			return nil, err
		}
		p, err := r.propertyExpression(args[0])
		if err != nil {
			return nil, err
		}
		ce, err := r.classExpression(args[1])
		if err != nil {
			return nil, err
		}
		if c.Name == "ObjectPropertyDomain" {
			return NewObjectPropertyDomain(p, ce, anns...), nil
		}
		return NewObjectPropertyRange(p, ce, anns...), nil

	case "AnnotationAssertion":
		if err := arity(3); err != nil {
			return nil, err
		}
		p, err := r.iri(args[0])
		if err != nil {
			return nil, err
		}
		s, err := r.iri(args[1])
		if err != nil {
			return nil, err
		}
		v, err := r.annotationValue(args[2])
		return NewAnnotationAssertion(p, s, v, anns...), err

	case "SubAnnotationPropertyOf":
		if err := arity(2); err != nil {
			return nil, err
		}
		sub, err := r.iri(args[0])
		if err != nil {
			return nil, err
		}
		super, err := r.iri(args[1])
		return NewSubAnnotationPropertyOf(sub, super, anns...), err

	case "ClassAssertion":
		if err := arity(2); err != nil {
			return nil, err
		}
		ce, err := r.classExpression(args[0])
		if err != nil {
			return nil, err
		}
		i, err := r.iri(args[1])
		return NewClassAssertion(ce, i, anns...), err

	case "ObjectPropertyAssertion":
		if err := arity(3); err != nil {
			return nil, err
		}
		p, err := r.propertyExpression(args[0])
		if err != nil {
			return nil, err
		}
		s, err := r.iri(args[1])
		if err != nil {
			return nil, err
		}
		o, err := r.iri(args[2])
		return NewObjectPropertyAssertion(p, s, o, anns...), err
	}

	for ch, name := range characteristicNames {
		if name == c.Name {
			if err := arity(1); err != nil {
				return nil, err
			}
			p, err := r.propertyExpression(args[0])
			return NewCharacteristic(ch, p, anns...), err
		}
	}
	return nil, ErrUnsupported("%s: axiom %s", c.Pos, c.Name)
}
