package query

import (
	"github.com/Magicianred/RDFSharp/rdf"
)

// Values collects explicit variable bindings (the VALUES construct)
// and materializes them into a solution table.
type Values struct {
	variables []string
	bindings  [][]rdf.Term
	evaluable bool
}

// NewValues creates an empty VALUES construct.
func NewValues() *Values {
	return &Values{}
}

// AddBindings appends an entry list for a variable, creating its column
// on first use. A nil or empty list appends a single UNDEF marker. Any
// element that is not a resource or literal is coerced to UNDEF, so
// malformed input never propagates. Returns the receiver for chaining.
func (v *Values) AddBindings(variable string, terms []rdf.Term) *Values {
	if variable == "" {
		return v
	}

	col := -1
	for i, name := range v.variables {
		if name == variable {
			col = i
			break
		}
	}
	if col == -1 {
		col = len(v.variables)
		v.variables = append(v.variables, variable)
		v.bindings = append(v.bindings, nil)
	}

	if len(terms) == 0 {
		v.bindings[col] = append(v.bindings[col], nil)
	} else {
		for _, term := range terms {
			switch term.(type) {
			case *rdf.Resource, *rdf.Literal:
				v.bindings[col] = append(v.bindings[col], term)
			default:
				v.bindings[col] = append(v.bindings[col], nil)
			}
		}
	}

	v.evaluable = true
	return v
}

// IsEvaluable reports whether at least one binding has been added.
func (v *Values) IsEvaluable() bool {
	return v.evaluable
}

// Variables returns the bound variable names in insertion order.
func (v *Values) Variables() []string {
	out := make([]string, len(v.variables))
	copy(out, v.variables)
	return out
}

// Materialize builds the solution table. Row count is the maximum
// entry-list length across variables; columns shorter than that get
// trailing UNDEF cells. Column order is variable insertion order.
func (v *Values) Materialize() *SolutionTable {
	table := NewSolutionTable(v.variables...)

	rowCount := 0
	for _, col := range v.bindings {
		if len(col) > rowCount {
			rowCount = len(col)
		}
	}

	for row := 0; row < rowCount; row++ {
		cells := make([]rdf.Term, len(v.variables))
		for col := range v.variables {
			if row < len(v.bindings[col]) {
				cells[col] = v.bindings[col][row]
			}
		}
		// AddRow cannot fail here: cells matches the column count.
		_ = table.AddRow(cells)
	}

	return table
}
