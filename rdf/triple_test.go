package rdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriple(t *testing.T) {
	subject := MustResource("http://example.org/s")
	predicate := MustResource("http://example.org/p")
	object := MustResource("http://example.org/o")
	literal := NewPlainLiteral("datum")

	spo, err := NewTriple(subject, predicate, object)
	require.NoError(t, err)
	assert.Equal(t, SPO, spo.Flavor())
	r, ok := spo.ObjectResource()
	require.True(t, ok)
	assert.True(t, object.Equal(r))

	spl, err := NewTriple(subject, predicate, literal)
	require.NoError(t, err)
	assert.Equal(t, SPL, spl.Flavor())
	l, ok := spl.ObjectLiteral()
	require.True(t, ok)
	assert.Equal(t, "datum", l.Value())

	assert.NotEqual(t, spo.ID(), spl.ID())
}

func TestNewTriplePreconditions(t *testing.T) {
	subject := MustResource("http://example.org/s")
	predicate := MustResource("http://example.org/p")
	object := MustResource("http://example.org/o")

	_, err := NewTriple(nil, predicate, object)
	assert.ErrorIs(t, err, ErrModel)

	_, err = NewTriple(subject, nil, object)
	assert.ErrorIs(t, err, ErrModel)

	_, err = NewTriple(subject, NewBlankNode(), object)
	assert.ErrorIs(t, err, ErrModel, "blank predicate must be rejected")

	_, err = NewTriple(subject, predicate, nil)
	assert.ErrorIs(t, err, ErrModel)
}

func TestTripleStructuralIdentity(t *testing.T) {
	s := MustResource("http://example.org/s")
	p := MustResource("http://example.org/p")
	o := NewPlainLiteral("v")

	a, err := NewTriple(s, p, o)
	require.NoError(t, err)

	// Rebuilt terms with the same canonical strings give the same triple.
	b, err := NewTriple(MustResource("http://example.org/s"), MustResource("http://example.org/p"), NewPlainLiteral("v"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.ID(), b.ID())
}
