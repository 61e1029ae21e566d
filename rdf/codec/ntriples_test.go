package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magicianred/RDFSharp/rdf"
	"github.com/Magicianred/RDFSharp/rdf/datatype"
	"github.com/Magicianred/RDFSharp/rdf/graph"
)

func buildCodecFixture(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	s := rdf.MustResource("http://example.org/s")
	p := rdf.MustResource("http://example.org/p")

	age, err := rdf.NewTypedLiteral("42", datatype.XSDInteger)
	require.NoError(t, err)
	greeting, err := rdf.NewPlainLiteralWithLanguage("hello", "en")
	require.NoError(t, err)

	objects := []rdf.Term{
		rdf.MustResource("http://example.org/o"),
		rdf.NewBlankNodeFromID("b1"),
		rdf.NewPlainLiteral("plain"),
		greeting,
		age,
	}
	for _, o := range objects {
		triple, err := rdf.NewTriple(s, p, o)
		require.NoError(t, err)
		require.NoError(t, g.AddTriple(triple))
	}
	return g
}

func TestNTriplesRoundTrip(t *testing.T) {
	g := buildCodecFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Serialize(NTriples, g, &buf))

	loaded, err := Deserialize(NTriples, &buf)
	require.NoError(t, err)
	require.Equal(t, g.Len(), loaded.Len())

	for _, triple := range g.Triples() {
		assert.True(t, loaded.ContainsTriple(triple),
			"round trip must preserve %s", triple)
	}
}

func TestNTriplesSerializedShape(t *testing.T) {
	g := buildCodecFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Serialize(NTriples, g, &buf))
	out := buf.String()

	assert.Contains(t, out, "<http://example.org/s>")
	assert.Contains(t, out, "_:b1")
	assert.Contains(t, out, `"plain"`)
	assert.Contains(t, out, `"hello"@en`)
	assert.Contains(t, out, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		assert.True(t, strings.HasSuffix(strings.TrimSpace(line), "."),
			"every statement ends with a period: %q", line)
	}
}

func TestNTriplesDeserializeDegradedLiterals(t *testing.T) {
	// A typed literal whose value fails its datatype keeps the statement
	// with a plain literal object; an unknown datatype degrades to the
	// default literal type.
	input := `<http://example.org/s> <http://example.org/p> "not a number"^^<http://www.w3.org/2001/XMLSchema#integer> .
<http://example.org/s> <http://example.org/p2> "x"^^<http://example.org/customType> .
`
	g, err := Deserialize(NTriples, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	for _, triple := range g.Triples() {
		lit, ok := triple.ObjectLiteral()
		require.True(t, ok)
		assert.False(t, lit.IsTyped() && lit.Datatype() == datatype.XSDInteger,
			"invalid integer must not survive as xsd:integer")
	}
}

func TestNTriplesDeserializeMalformedStream(t *testing.T) {
	_, err := Deserialize(NTriples, strings.NewReader("this is not n-triples\n"))
	assert.Error(t, err)
}

func TestNTriplesDuplicateStatements(t *testing.T) {
	input := `<http://example.org/s> <http://example.org/p> <http://example.org/o> .
<http://example.org/s> <http://example.org/p> <http://example.org/o> .
`
	g, err := Deserialize(NTriples, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len(), "duplicate statements collapse on load")
}

func TestUnsupportedFormats(t *testing.T) {
	g := graph.NewGraph()
	var buf bytes.Buffer

	for _, f := range []Format{RDFXML, TriX, Turtle} {
		err := Serialize(f, g, &buf)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "serialize %s", f)

		_, err = Deserialize(f, strings.NewReader(""))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "deserialize %s", f)
	}
}
