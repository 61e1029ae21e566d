package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Magicianred/RDFSharp/rdf"
)

func TestTableFormatterEmptyStates(t *testing.T) {
	assert.Equal(t, "_Empty solution table_", TableString(nil))
	assert.Equal(t, "_Empty solution table_", TableString(NewSolutionTable()))

	noRows := TableString(NewSolutionTable("x"))
	assert.Contains(t, noRows, "_No rows_")
}

func TestTableFormatterRendering(t *testing.T) {
	table := NewSolutionTable("x", "y")
	require.NoError(t, table.AddRow([]rdf.Term{rdf.NewPlainLiteral("a"), nil}))
	require.NoError(t, table.AddRow([]rdf.Term{
		rdf.MustResource("http://example.org/r"),
		rdf.NewPlainLiteral("b"),
	}))

	out := TableString(table)
	assert.Contains(t, out, "?x")
	assert.Contains(t, out, "?y")
	assert.Contains(t, out, "UNDEF")
	assert.Contains(t, out, "http://example.org/r")
	assert.Contains(t, out, "_2 rows_")
}

func TestTableFormatterTruncation(t *testing.T) {
	tf := NewTableFormatter()
	tf.MaxWidth = 10

	table := NewSolutionTable("x")
	require.NoError(t, table.AddRow([]rdf.Term{rdf.NewPlainLiteral(strings.Repeat("z", 40))}))

	out := tf.Format(table)
	assert.Contains(t, out, strings.Repeat("z", 9)+"...")
	assert.NotContains(t, out, strings.Repeat("z", 20))
}
