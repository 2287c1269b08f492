// Package table implements the fixed-width tabular container every
// converter in this module produces. A Table has a declared, ordered
// column set that never changes after construction; cells start out null
// and stay loosely typed until written.
package table

import (
	"fmt"
	"time"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
)

// Table is a rectangular, column-ordered container with nullable cells.
// The zero value is not usable, construct one with New.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]any
}

// New returns a table with exactly rows rows and one column per name, in
// the given order. Every cell starts out null. rows must be >= 0 and
// column names must be unique; violations are programming errors.
func New(rows int, columns []string) *Table {
	if rows < 0 {
		panic(fmt.Sprintf("table: negative row count %d", rows))
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := index[name]; exists {
			panic(fmt.Sprintf("table: duplicate column %q", name))
		}
		index[name] = i
	}
	cells := make([][]any, rows)
	for i := range cells {
		cells[i] = make([]any, len(columns))
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		cells:   cells,
	}
}

// Columns returns the declared column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) NumRows() int {
	return len(t.cells)
}

func (t *Table) columnIndex(column string) int {
	i, ok := t.index[column]
	if !ok {
		panic(fmt.Sprintf("table: unknown column %q", column))
	}
	return i
}

// Set writes a value into a cell. A nil value makes the cell null again.
func (t *Table) Set(row int, column string, value any) {
	t.cells[row][t.columnIndex(column)] = value
}

// Get returns the raw cell value, nil when the cell is null.
func (t *Table) Get(row int, column string) any {
	return t.cells[row][t.columnIndex(column)]
}

func (t *Table) IsNull(row int, column string) bool {
	return t.cells[row][t.columnIndex(column)] == nil
}

// StringAt returns the cell as a string. ok is false when the cell is
// null or holds a different type.
func (t *Table) StringAt(row int, column string) (value string, ok bool) {
	value, ok = t.Get(row, column).(string)
	return value, ok
}

func (t *Table) IntAt(row int, column string) (value int64, ok bool) {
	value, ok = t.Get(row, column).(int64)
	return value, ok
}

func (t *Table) FloatAt(row int, column string) (value float64, ok bool) {
	value, ok = t.Get(row, column).(float64)
	return value, ok
}

func (t *Table) BoolAt(row int, column string) (value bool, ok bool) {
	value, ok = t.Get(row, column).(bool)
	return value, ok
}

func (t *Table) TimeAt(row int, column string) (value time.Time, ok bool) {
	value, ok = t.Get(row, column).(time.Time)
	return value, ok
}

// AppendRow adds one all-null row and returns its index.
func (t *Table) AppendRow() int {
	t.cells = append(t.cells, make([]any, len(t.columns)))
	return len(t.cells) - 1
}

// Concat appends every row of other to t. The two tables must declare the
// same columns in the same order.
func (t *Table) Concat(other *Table) error {
	if len(other.columns) != len(t.columns) {
		return fmt.Errorf("table: cannot concat, column count mismatch %d != %d", len(other.columns), len(t.columns))
	}
	for i, name := range t.columns {
		if other.columns[i] != name {
			return fmt.Errorf("table: cannot concat, column %d is %q != %q", i, other.columns[i], name)
		}
	}
	for _, row := range other.cells {
		t.cells = append(t.cells, append([]any(nil), row...))
	}
	return nil
}

// Render formats the table for human consumption.
func (t *Table) Render() string {
	w := prettytable.NewWriter()
	w.SetStyle(prettytable.StyleRounded)

	header := make(prettytable.Row, len(t.columns))
	for i, name := range t.columns {
		header[i] = name
	}
	w.AppendHeader(header)

	for _, cells := range t.cells {
		row := make(prettytable.Row, len(cells))
		for i, cell := range cells {
			if cell == nil {
				row[i] = ""
				continue
			}
			if ts, ok := cell.(time.Time); ok {
				row[i] = ts.Format(time.RFC3339)
				continue
			}
			row[i] = cell
		}
		w.AppendRow(row)
	}
	return w.Render()
}
