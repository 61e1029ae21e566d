package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magicianred/RDFSharp/rdf"
)

// buildSelectFixture creates a graph mixing resource- and
// literal-object triples with overlapping subjects and predicates.
func buildSelectFixture(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	for i := 0; i < 24; i++ {
		var object rdf.Term
		if i%2 == 0 {
			object = rdf.MustResource(fmt.Sprintf("http://example.org/o%d", i%4))
		} else {
			object = rdf.NewPlainLiteral(fmt.Sprintf("v%d", i%4))
		}
		triple := mustTriple(t,
			fmt.Sprintf("http://example.org/s%d", i%5),
			fmt.Sprintf("http://example.org/p%d", i%3),
			object)
		require.NoError(t, g.AddTriple(triple))
	}
	return g
}

// naiveSelect is the reference implementation: a linear scan checking
// every bound term against every triple.
func naiveSelect(g *Graph, subject, predicate, objectResource *rdf.Resource, objectLiteral *rdf.Literal) []*rdf.Triple {
	var out []*rdf.Triple
	for _, t := range g.Triples() {
		if subject != nil && t.Subject().ID() != subject.ID() {
			continue
		}
		if predicate != nil && t.Predicate().ID() != predicate.ID() {
			continue
		}
		if objectResource != nil {
			r, ok := t.ObjectResource()
			if !ok || r.ID() != objectResource.ID() {
				continue
			}
		}
		if objectLiteral != nil {
			l, ok := t.ObjectLiteral()
			if !ok || l.ID() != objectLiteral.ID() {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func TestSelectTriplesMatchesNaiveScan(t *testing.T) {
	g := buildSelectFixture(t)

	subjects := []*rdf.Resource{nil, rdf.MustResource("http://example.org/s0"), rdf.MustResource("http://example.org/s4")}
	predicates := []*rdf.Resource{nil, rdf.MustResource("http://example.org/p1")}
	objects := []*rdf.Resource{nil, rdf.MustResource("http://example.org/o2")}
	literals := []*rdf.Literal{nil, rdf.NewPlainLiteral("v1"), rdf.NewPlainLiteral("missing")}

	for _, s := range subjects {
		for _, p := range predicates {
			for _, o := range objects {
				for _, l := range literals {
					if o != nil && l != nil {
						continue
					}
					got, err := SelectTriples(g, s, p, o, l)
					require.NoError(t, err)
					want := naiveSelect(g, s, p, o, l)
					assert.ElementsMatch(t, tripleIDs(want), tripleIDs(got),
						"s=%v p=%v o=%v l=%v", s, p, o, l)
				}
			}
		}
	}
}

func TestSelectTriplesUnbound(t *testing.T) {
	g := buildSelectFixture(t)

	all, err := SelectTriples(g, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, g.Len())

	// The result is a copy, not a live view.
	all = all[:0]
	again, err := SelectTriples(g, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, again, g.Len())
}

func TestSelectTriplesFlavorSeparation(t *testing.T) {
	g := NewGraph()
	s := rdf.MustResource("http://example.org/s")
	p := rdf.MustResource("http://example.org/p")

	spo := mustTriple(t, "http://example.org/s", "http://example.org/p", rdf.MustResource("http://example.org/o"))
	spl := mustTriple(t, "http://example.org/s", "http://example.org/p", rdf.NewPlainLiteral("o"))
	require.NoError(t, g.AddTriple(spo))
	require.NoError(t, g.AddTriple(spl))

	resourceMatches, err := SelectTriples(g, s, p, rdf.MustResource("http://example.org/o"), nil)
	require.NoError(t, err)
	require.Len(t, resourceMatches, 1)
	assert.Equal(t, rdf.SPO, resourceMatches[0].Flavor())

	literalMatches, err := SelectTriples(g, s, p, nil, rdf.NewPlainLiteral("o"))
	require.NoError(t, err)
	require.Len(t, literalMatches, 1)
	assert.Equal(t, rdf.SPL, literalMatches[0].Flavor())
}

func TestSelectTriplesPreconditions(t *testing.T) {
	g := buildSelectFixture(t)

	_, err := SelectTriples(nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, rdf.ErrQuery)

	// Binding both object flavors in one call is rejected.
	_, err = SelectTriples(g, nil, nil,
		rdf.MustResource("http://example.org/o0"), rdf.NewPlainLiteral("v0"))
	assert.ErrorIs(t, err, rdf.ErrQuery)
}

func TestSelectTriplesAbsentTerm(t *testing.T) {
	g := buildSelectFixture(t)
	matches, err := SelectTriples(g, rdf.MustResource("http://example.org/never-seen"), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, matches, "an absent key yields an empty result, not an error")
}
