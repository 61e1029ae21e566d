package query

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/Magicianred/RDFSharp/rdf"
	"github.com/Magicianred/RDFSharp/rdf/datatype"
)

// AggregatorKind enumerates the closed set of aggregation functions.
// Keeping the set closed keeps the grouping engine's iteration logic in
// one place, with only the combine rule varying per kind.
type AggregatorKind uint8

const (
	Count AggregatorKind = iota
	Sum
	Avg
	Min
	Max
	GroupConcat
	Sample
)

func (k AggregatorKind) String() string {
	switch k {
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	case GroupConcat:
		return "GROUP_CONCAT"
	case Sample:
		return "SAMPLE"
	default:
		return "unknown"
	}
}

// decimalCtx is the arithmetic context for aggregate accumulation.
var decimalCtx = apd.BaseContext.WithPrecision(34)

// Aggregator computes one scalar per group over a partitioned solution
// table, reading InputVariable from each row and writing the running
// result into the group's single output row under OutputVariable.
type Aggregator struct {
	Kind           AggregatorKind
	InputVariable  string
	OutputVariable string

	// Separator is used by GroupConcat; defaults to a single space.
	Separator string
}

// AsDecimal extracts a row's numeric value for a variable: a plain
// literal with no language tag and a numeric lexical form, or a typed
// literal with a decimal-compatible datatype. Anything else yields
// zero — aggregation never aborts on one malformed row.
func AsDecimal(table *SolutionTable, row int, variable string) *apd.Decimal {
	term, bound := table.Cell(row, variable)
	if !bound {
		return apd.New(0, 0)
	}
	lit, ok := term.(*rdf.Literal)
	if !ok {
		return apd.New(0, 0)
	}
	if lit.IsTyped() && !datatype.IsDecimalCompatible(lit.Datatype()) {
		return apd.New(0, 0)
	}
	if !lit.IsTyped() && lit.Language() != "" {
		return apd.New(0, 0)
	}
	d, _, err := apd.NewFromString(lit.Value())
	if err != nil || d.Form != apd.Finite {
		return apd.New(0, 0)
	}
	return d
}

// AsString extracts a row's raw string value for a variable, or the
// empty string if unbound.
func AsString(table *SolutionTable, row int, variable string) string {
	term, bound := table.Cell(row, variable)
	if !bound {
		return ""
	}
	if lit, ok := term.(*rdf.Literal); ok {
		return lit.Value()
	}
	return term.String()
}

// GroupingRegistry holds the output table of a grouped aggregation: one
// row per group key, carrying the group-by values and the running
// accumulator cells the aggregators read and overwrite.
type GroupingRegistry struct {
	table    *SolutionTable
	rowByKey map[string]int
	combines map[string]int64
}

// NewGroupingRegistry creates a registry whose output table starts with
// the group-by columns.
func NewGroupingRegistry(groupBy []string) *GroupingRegistry {
	return &GroupingRegistry{
		table:    NewSolutionTable(groupBy...),
		rowByKey: make(map[string]int),
		combines: make(map[string]int64),
	}
}

// Table returns the output table.
func (r *GroupingRegistry) Table() *SolutionTable {
	return r.table
}

// ensureGroup returns the output row for a group key, creating it with
// the group-by cell values on first sight.
func (r *GroupingRegistry) ensureGroup(key string, groupCells []rdf.Term) int {
	if row, ok := r.rowByKey[key]; ok {
		return row
	}
	row := r.table.RowCount()
	_ = r.table.AddRow(groupCells)
	r.rowByKey[key] = row
	return row
}

// bump counts combine steps for one (group, output variable) pair and
// returns the new count.
func (r *GroupingRegistry) bump(key, variable string) int64 {
	k := key + "\x00" + variable
	r.combines[k]++
	return r.combines[k]
}

func (r *GroupingRegistry) combineCount(key, variable string) int64 {
	return r.combines[key+"\x00"+variable]
}

// GetAggregate reads the current accumulator of a group as a decimal,
// defaulting to zero if absent or unparsable.
func (r *GroupingRegistry) GetAggregate(key, variable string) *apd.Decimal {
	row, ok := r.rowByKey[key]
	if !ok {
		return apd.New(0, 0)
	}
	return AsDecimal(r.table, row, variable)
}

// GetAggregateString reads the current accumulator of a group as a
// string, defaulting to empty.
func (r *GroupingRegistry) GetAggregateString(key, variable string) string {
	row, ok := r.rowByKey[key]
	if !ok {
		return ""
	}
	return AsString(r.table, row, variable)
}

// SetAggregate overwrites a group's accumulator with a decimal value.
func (r *GroupingRegistry) SetAggregate(key, variable string, value *apd.Decimal) {
	row, ok := r.rowByKey[key]
	if !ok {
		return
	}
	lit, err := rdf.NewTypedLiteral(value.Text('f'), datatype.XSDDecimal)
	if err != nil {
		return
	}
	_ = r.table.SetCell(row, variable, lit)
}

// SetAggregateString overwrites a group's accumulator with a string value.
func (r *GroupingRegistry) SetAggregateString(key, variable, value string) {
	row, ok := r.rowByKey[key]
	if !ok {
		return
	}
	_ = r.table.SetCell(row, variable, rdf.NewPlainLiteral(value))
}

// setAggregateTerm overwrites a group's accumulator with a term (Sample).
func (r *GroupingRegistry) setAggregateTerm(key, variable string, term rdf.Term) {
	row, ok := r.rowByKey[key]
	if !ok {
		return
	}
	_ = r.table.SetCell(row, variable, term)
}

// ExecuteAggregatorFunction combines one source row into the running
// accumulator of its group. This is the single dispatch point over the
// closed aggregator set; everything outside the switch is shared.
func (a *Aggregator) ExecuteAggregatorFunction(reg *GroupingRegistry, key string, source *SolutionTable, row int) {
	switch a.Kind {
	case Count:
		cur := reg.GetAggregate(key, a.OutputVariable)
		var next apd.Decimal
		_, _ = decimalCtx.Add(&next, cur, apd.New(1, 0))
		reg.SetAggregate(key, a.OutputVariable, &next)

	case Sum:
		cur := reg.GetAggregate(key, a.OutputVariable)
		var next apd.Decimal
		_, _ = decimalCtx.Add(&next, cur, AsDecimal(source, row, a.InputVariable))
		reg.SetAggregate(key, a.OutputVariable, &next)

	case Avg:
		// Running sum in the cell, combine count in the registry;
		// Finalize divides.
		reg.bump(key, a.OutputVariable)
		cur := reg.GetAggregate(key, a.OutputVariable)
		var next apd.Decimal
		_, _ = decimalCtx.Add(&next, cur, AsDecimal(source, row, a.InputVariable))
		reg.SetAggregate(key, a.OutputVariable, &next)

	case Min:
		value := AsDecimal(source, row, a.InputVariable)
		if reg.bump(key, a.OutputVariable) == 1 {
			reg.SetAggregate(key, a.OutputVariable, value)
		} else if value.Cmp(reg.GetAggregate(key, a.OutputVariable)) < 0 {
			reg.SetAggregate(key, a.OutputVariable, value)
		}

	case Max:
		value := AsDecimal(source, row, a.InputVariable)
		if reg.bump(key, a.OutputVariable) == 1 {
			reg.SetAggregate(key, a.OutputVariable, value)
		} else if value.Cmp(reg.GetAggregate(key, a.OutputVariable)) > 0 {
			reg.SetAggregate(key, a.OutputVariable, value)
		}

	case GroupConcat:
		value := AsString(source, row, a.InputVariable)
		if reg.bump(key, a.OutputVariable) == 1 {
			reg.SetAggregateString(key, a.OutputVariable, value)
		} else {
			sep := a.Separator
			if sep == "" {
				sep = " "
			}
			cur := reg.GetAggregateString(key, a.OutputVariable)
			reg.SetAggregateString(key, a.OutputVariable, cur+sep+value)
		}

	case Sample:
		if reg.bump(key, a.OutputVariable) == 1 {
			if term, bound := source.Cell(row, a.InputVariable); bound {
				reg.setAggregateTerm(key, a.OutputVariable, term)
			}
		}
	}
}

// Finalize completes a group's accumulator after all rows have been
// combined. Only Avg needs it: the running sum is divided by the
// combine count.
func (a *Aggregator) Finalize(reg *GroupingRegistry, key string) {
	if a.Kind != Avg {
		return
	}
	n := reg.combineCount(key, a.OutputVariable)
	if n == 0 {
		return
	}
	sum := reg.GetAggregate(key, a.OutputVariable)
	var avg apd.Decimal
	_, _ = decimalCtx.Quo(&avg, sum, apd.New(n, 0))
	var reduced apd.Decimal
	reduced.Reduce(&avg)
	reg.SetAggregate(key, a.OutputVariable, &reduced)
}

// ApplyAggregators partitions a solution table by the group-by
// variables and runs every aggregator over each partition, producing
// one output row per group.
func ApplyAggregators(table *SolutionTable, groupBy []string, aggregators []*Aggregator) (*SolutionTable, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: cannot aggregate a nil solution table", rdf.ErrQuery)
	}
	for _, agg := range aggregators {
		if agg == nil || agg.OutputVariable == "" {
			return nil, fmt.Errorf("%w: aggregator requires an output variable", rdf.ErrQuery)
		}
	}

	reg := NewGroupingRegistry(groupBy)
	for _, agg := range aggregators {
		reg.table.AddColumn(agg.OutputVariable)
	}

	for row := 0; row < table.RowCount(); row++ {
		key, groupCells := groupKeyForRow(table, row, groupBy)
		reg.ensureGroup(key, groupCells)
		for _, agg := range aggregators {
			agg.ExecuteAggregatorFunction(reg, key, table, row)
		}
	}

	for key := range reg.rowByKey {
		for _, agg := range aggregators {
			agg.Finalize(reg, key)
		}
	}

	return reg.Table(), nil
}

// groupKeyForRow builds the partition key and the group-by cell values
// of a row. UNDEF cells group together under a reserved marker.
func groupKeyForRow(table *SolutionTable, row int, groupBy []string) (string, []rdf.Term) {
	parts := make([]string, len(groupBy))
	cells := make([]rdf.Term, len(groupBy))
	for i, variable := range groupBy {
		term, bound := table.Cell(row, variable)
		if bound {
			parts[i] = term.String()
			cells[i] = term
		} else {
			parts[i] = "\x00UNDEF"
		}
	}
	return strings.Join(parts, "\x1f"), cells
}
