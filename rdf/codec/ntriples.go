package codec

import (
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"github.com/Magicianred/RDFSharp/rdf"
	"github.com/Magicianred/RDFSharp/rdf/datatype"
	"github.com/Magicianred/RDFSharp/rdf/graph"
)

// serializeNTriples writes every triple of the graph in insertion order.
func serializeNTriples(g *graph.Graph, w io.Writer) error {
	qw := nquads.NewWriter(w)
	for _, t := range g.Triples() {
		q := quad.Quad{
			Subject:   resourceToQuadValue(t.Subject()),
			Predicate: resourceToQuadValue(t.Predicate()),
			Object:    termToQuadValue(t.Object()),
		}
		if err := qw.WriteQuad(q); err != nil {
			return err
		}
	}
	return qw.Close()
}

// deserializeNTriples builds a graph by repeated triple insertion.
// Statements whose terms cannot be represented (relative IRIs, graph
// labels) are skipped rather than failing the whole load; a malformed
// stream is a hard error.
func deserializeNTriples(r io.Reader) (*graph.Graph, error) {
	qr := nquads.NewReader(r, false)
	defer qr.Close()

	g := graph.NewGraph()
	for {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, err
		}

		subject, ok := quadValueToResource(q.Subject)
		if !ok {
			continue
		}
		predicate, ok := quadValueToResource(q.Predicate)
		if !ok {
			continue
		}
		object, ok := quadValueToTerm(q.Object)
		if !ok {
			continue
		}

		t, err := rdf.NewTriple(subject, predicate, object)
		if err != nil {
			continue
		}
		if err := g.AddTriple(t); err != nil {
			return nil, err
		}
	}
}

func resourceToQuadValue(r *rdf.Resource) quad.Value {
	if r.IsBlank() {
		return quad.BNode(r.BlankID())
	}
	return quad.IRI(r.String())
}

func termToQuadValue(t rdf.Term) quad.Value {
	switch v := t.(type) {
	case *rdf.Resource:
		return resourceToQuadValue(v)
	case *rdf.Literal:
		if v.IsTyped() {
			return quad.TypedString{
				Value: quad.String(v.Value()),
				Type:  quad.IRI(datatype.DatatypeToString(v.Datatype())),
			}
		}
		if v.Language() != "" {
			return quad.LangString{
				Value: quad.String(v.Value()),
				Lang:  v.Language(),
			}
		}
		return quad.String(v.Value())
	default:
		return nil
	}
}

func quadValueToResource(v quad.Value) (*rdf.Resource, bool) {
	switch value := v.(type) {
	case quad.IRI:
		r, err := rdf.InternResource(string(value))
		if err != nil {
			return nil, false
		}
		return r, true
	case quad.BNode:
		return rdf.NewBlankNodeFromID(string(value)), true
	default:
		return nil, false
	}
}

func quadValueToTerm(v quad.Value) (rdf.Term, bool) {
	switch value := v.(type) {
	case quad.IRI, quad.BNode:
		return quadValueToResourceTerm(v)
	case quad.LangString:
		lit, err := rdf.NewPlainLiteralWithLanguage(string(value.Value), value.Lang)
		if err != nil {
			// Malformed language tag degrades to a plain literal.
			return rdf.NewPlainLiteral(string(value.Value)), true
		}
		return lit, true
	case quad.TypedString:
		dt, err := datatype.StringToDatatype(string(value.Type))
		if err != nil {
			return rdf.NewPlainLiteral(string(value.Value)), true
		}
		lit, err := rdf.NewTypedLiteral(string(value.Value), dt)
		if err != nil {
			// A lexical value that fails its datatype degrades to a
			// plain literal instead of dropping the statement.
			return rdf.NewPlainLiteral(string(value.Value)), true
		}
		return lit, true
	case quad.String:
		return rdf.NewPlainLiteral(string(value)), true
	default:
		return nil, false
	}
}

func quadValueToResourceTerm(v quad.Value) (rdf.Term, bool) {
	r, ok := quadValueToResource(v)
	if !ok {
		return nil, false
	}
	return r, true
}
