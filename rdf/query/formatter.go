package query

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Magicianred/RDFSharp/rdf"
)

// TableFormatter renders solution tables as markdown tables.
type TableFormatter struct {
	// MaxWidth is the maximum width for a cell value
	MaxWidth int
	// TruncateString is the string appended when truncating
	TruncateString string
	// UndefMarker is rendered for UNDEF cells
	UndefMarker string
}

// NewTableFormatter creates a formatter with default settings.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		MaxWidth:       50,
		TruncateString: "...",
		UndefMarker:    "UNDEF",
	}
}

// Format renders a solution table as a markdown table with a row count
// footer. Column order follows the table's variable insertion order.
func (tf *TableFormatter) Format(t *SolutionTable) string {
	if t == nil || len(t.Columns()) == 0 {
		return "_Empty solution table_"
	}

	columns := t.Columns()
	if t.RowCount() == 0 {
		return fmt.Sprintf("_Columns: %v_\n\n_No rows_", columns)
	}

	tableString := &strings.Builder{}

	alignment := make([]tw.Align, len(columns))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}

	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = "?" + strings.TrimPrefix(col, "?")
	}
	table.Header(headers)

	for row := 0; row < t.RowCount(); row++ {
		cells := make([]string, len(columns))
		for i, col := range columns {
			term, bound := t.Cell(row, col)
			cells[i] = tf.formatCell(term, bound)
		}
		table.Append(cells)
	}

	table.Render()
	tableString.WriteString(fmt.Sprintf("\n_%d rows_\n", t.RowCount()))

	return tableString.String()
}

// formatCell renders a single cell value.
func (tf *TableFormatter) formatCell(term rdf.Term, bound bool) string {
	if !bound {
		return tf.UndefMarker
	}
	s := term.String()
	if tf.MaxWidth > 0 && len(s) > tf.MaxWidth {
		s = s[:tf.MaxWidth] + tf.TruncateString
	}
	return s
}

// TableString returns the default markdown rendering of a table.
func TableString(t *SolutionTable) string {
	return NewTableFormatter().Format(t)
}

// PrintTable prints a solution table to stdout.
func PrintTable(t *SolutionTable) {
	fmt.Println(TableString(t))
}
