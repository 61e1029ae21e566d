// Package query implements the SPARQL solution-table primitives:
// tables of variable bindings with explicit UNDEF cells, VALUES
// binding, and group-based aggregation over table partitions.
package query

import (
	"fmt"

	"github.com/Magicianred/RDFSharp/rdf"
)

// SolutionTable is an ordered set of named columns (variable names,
// unique) and an ordered set of rows. A nil cell is UNDEF: an
// explicitly absent binding.
//
// Tables are transient: constructed and consumed within a single query
// evaluation, with no internal locking.
type SolutionTable struct {
	columns []string
	colIdx  map[string]int
	rows    [][]rdf.Term
}

// NewSolutionTable creates an empty table with the given columns.
// Duplicate column names are ignored; column order is preserved for
// deterministic rendering.
func NewSolutionTable(columns ...string) *SolutionTable {
	t := &SolutionTable{colIdx: make(map[string]int)}
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

// AddColumn appends a column if not already present and returns its
// index. Existing rows grow a trailing UNDEF cell.
func (t *SolutionTable) AddColumn(variable string) int {
	if idx, ok := t.colIdx[variable]; ok {
		return idx
	}
	idx := len(t.columns)
	t.columns = append(t.columns, variable)
	t.colIdx[variable] = idx
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], nil)
	}
	return idx
}

// Columns returns the column names in insertion order.
func (t *SolutionTable) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the variable names a column.
func (t *SolutionTable) HasColumn(variable string) bool {
	_, ok := t.colIdx[variable]
	return ok
}

// RowCount returns the number of rows.
func (t *SolutionTable) RowCount() int {
	return len(t.rows)
}

// AddRow appends a row. Short rows are padded with UNDEF; long rows are
// a precondition violation.
func (t *SolutionTable) AddRow(cells []rdf.Term) error {
	if len(cells) > len(t.columns) {
		return fmt.Errorf("%w: row has %d cells but table has %d columns", rdf.ErrQuery, len(cells), len(t.columns))
	}
	row := make([]rdf.Term, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Cell returns the binding of a variable in a row. ok is false for
// UNDEF cells, unknown variables and out-of-range rows.
func (t *SolutionTable) Cell(row int, variable string) (rdf.Term, bool) {
	idx, exists := t.colIdx[variable]
	if !exists || row < 0 || row >= len(t.rows) {
		return nil, false
	}
	term := t.rows[row][idx]
	return term, term != nil
}

// SetCell binds a variable in a row. Setting a nil term makes the cell
// UNDEF.
func (t *SolutionTable) SetCell(row int, variable string, term rdf.Term) error {
	idx, exists := t.colIdx[variable]
	if !exists {
		return fmt.Errorf("%w: unknown variable %q", rdf.ErrQuery, variable)
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row %d out of range", rdf.ErrQuery, row)
	}
	t.rows[row][idx] = term
	return nil
}

// Row returns a copy of a row's cells.
func (t *SolutionTable) Row(row int) []rdf.Term {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	out := make([]rdf.Term, len(t.rows[row]))
	copy(out, t.rows[row])
	return out
}
