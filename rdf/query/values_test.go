package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magicianred/RDFSharp/rdf"
)

func TestValuesSingleVariable(t *testing.T) {
	v := NewValues()
	assert.False(t, v.IsEvaluable())

	v.AddBindings("x", []rdf.Term{
		rdf.NewPlainLiteral("a"),
		nil, // explicit UNDEF
		rdf.NewPlainLiteral("b"),
	})
	assert.True(t, v.IsEvaluable())
	assert.Equal(t, []string{"x"}, v.Variables())

	table := v.Materialize()
	require.Equal(t, 3, table.RowCount())

	first, bound := table.Cell(0, "x")
	require.True(t, bound)
	assert.Equal(t, "a", first.(*rdf.Literal).Value())

	_, bound = table.Cell(1, "x")
	assert.False(t, bound, "nil entry materializes as UNDEF")

	third, bound := table.Cell(2, "x")
	require.True(t, bound)
	assert.Equal(t, "b", third.(*rdf.Literal).Value())
}

func TestValuesRaggedColumns(t *testing.T) {
	v := NewValues().
		AddBindings("x", []rdf.Term{
			rdf.NewPlainLiteral("a"),
			rdf.NewPlainLiteral("b"),
			rdf.NewPlainLiteral("c"),
		}).
		AddBindings("y", []rdf.Term{
			rdf.MustResource("http://example.org/only"),
		})

	table := v.Materialize()
	require.Equal(t, 3, table.RowCount(), "row count is the longest column")
	assert.Equal(t, []string{"x", "y"}, table.Columns())

	_, bound := table.Cell(0, "y")
	assert.True(t, bound)
	_, bound = table.Cell(1, "y")
	assert.False(t, bound, "shorter column pads with trailing UNDEF")
	_, bound = table.Cell(2, "y")
	assert.False(t, bound)
}

func TestValuesEdgeCases(t *testing.T) {
	v := NewValues()

	// An empty variable name is ignored entirely.
	v.AddBindings("", []rdf.Term{rdf.NewPlainLiteral("a")})
	assert.False(t, v.IsEvaluable())
	assert.Empty(t, v.Variables())

	// A nil entry list still contributes one UNDEF row.
	v.AddBindings("x", nil)
	table := v.Materialize()
	require.Equal(t, 1, table.RowCount())
	_, bound := table.Cell(0, "x")
	assert.False(t, bound)

	// Repeated calls for the same variable extend its column.
	v.AddBindings("x", []rdf.Term{rdf.NewPlainLiteral("later")})
	table = v.Materialize()
	require.Equal(t, 2, table.RowCount())
	cell, bound := table.Cell(1, "x")
	require.True(t, bound)
	assert.Equal(t, "later", cell.(*rdf.Literal).Value())
}

func TestValuesEmptyMaterialize(t *testing.T) {
	table := NewValues().Materialize()
	assert.Equal(t, 0, table.RowCount())
	assert.Empty(t, table.Columns())
}
