package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names every placement source must provide.
const (
	ColumnYear     = "Year"
	ColumnBranch   = "Branch"
	ColumnEmployer = "Name of the Employer"
)

// RequiredColumns lists the columns checked at load time.
var RequiredColumns = []string{ColumnYear, ColumnBranch, ColumnEmployer}

var ErrMissingColumn = errors.New("missing required column")

// LoadError is returned when the placement table cannot be produced.
// It aborts the whole render cycle.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load placements from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PlacementTable is the in-memory table of placement records. Every cell is
// kept as a string; columns other than the required ones are passed through.
type PlacementTable struct {
	columns []string
	frame   dataframe.DataFrame
	rows    int
}

// NewPlacementTable builds a table from a header and its rows.
func NewPlacementTable(columns []string, rows [][]string) (*PlacementTable, error) {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.TrimSpace(c)
	}

	for _, required := range RequiredColumns {
		if indexOf(cols, required) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	t := &PlacementTable{columns: cols, rows: len(rows)}
	if len(rows) == 0 {
		return t, nil
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, cols)
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i+1, len(r), len(cols))
		}
		records = append(records, r)
	}

	t.frame = dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{}),
	)
	if t.frame.Err != nil {
		return nil, t.frame.Err
	}
	t.columns = t.frame.Names()
	return t, nil
}

// Len returns the number of rows.
func (t *PlacementTable) Len() int { return t.rows }

// Empty reports whether the table has no rows.
func (t *PlacementTable) Empty() bool { return t.rows == 0 }

// Columns returns the header in source order.
func (t *PlacementTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Column returns the values of one column, or nil for an empty table or an
// unknown column.
func (t *PlacementTable) Column(name string) []string {
	if t.rows == 0 || indexOf(t.columns, name) < 0 {
		return nil
	}
	return t.frame.Col(name).Records()
}

// Rows returns every row in table order.
func (t *PlacementTable) Rows() [][]string {
	if t.rows == 0 {
		return [][]string{}
	}
	return t.frame.Records()[1:]
}

// Subset returns a new table holding the rows at the given positions.
func (t *PlacementTable) Subset(indexes []int) *PlacementTable {
	if len(indexes) == 0 {
		return &PlacementTable{columns: t.Columns()}
	}
	return &PlacementTable{
		columns: t.Columns(),
		frame:   t.frame.Subset(indexes),
		rows:    len(indexes),
	}
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return -1
}
