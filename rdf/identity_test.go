package rdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIdentityDeterminism(t *testing.T) {
	inputs := []string{
		"http://example.org/subject",
		"bnode:1234",
		`"a plain literal"`,
		`"3"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		"",
	}
	for _, input := range inputs {
		first := ComputeIdentity(input)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ComputeIdentity(input), "identity must be stable for %q", input)
		}
	}
}

func TestComputeIdentityLowCollisionRate(t *testing.T) {
	seen := make(map[Identity]string)
	for i := 0; i < 50000; i++ {
		iri := fmt.Sprintf("http://example.org/resource/%d", i)
		id := ComputeIdentity(iri)
		prev, collided := seen[id]
		require.False(t, collided, "collision between %q and %q", prev, iri)
		seen[id] = iri
	}
}

func TestComputeTermIdentity(t *testing.T) {
	r := MustResource("http://example.org/thing")
	id, err := ComputeTermIdentity(r)
	require.NoError(t, err)
	assert.Equal(t, r.ID(), id)

	_, err = ComputeTermIdentity(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModel)
}

func TestEqualCanonicalStringsShareIdentity(t *testing.T) {
	a := MustResource("http://example.org/same")
	b := MustResource("http://example.org/same")
	assert.Equal(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))

	lit1 := NewPlainLiteral("same")
	lit2 := NewPlainLiteral("same")
	assert.Equal(t, lit1.ID(), lit2.ID())
}
