// Package table provides the column-oriented input consumed by the
// vectorized compiler: named columns of quantities with a consistent row
// count, plus scalar columns that broadcast across every row.
package table

import (
	"fmt"

	"github.com/vk/calcsheet/internal/quantity"
)

// Table is a set of named columns. The zero value is not usable; call New.
type Table struct {
	columns map[string]column
	rows    int
	sized   bool
}

type column struct {
	values []quantity.Quantity
	scalar bool
}

// New returns an empty table.
func New() *Table {
	return &Table{columns: make(map[string]column)}
}

// AddColumn adds a vector column. Every vector column in a table must
// share the same length.
func (t *Table) AddColumn(name string, values []quantity.Quantity) error {
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("column %q already present", name)
	}
	if t.sized && len(values) != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", name, len(values), t.rows)
	}
	t.columns[name] = column{values: values}
	t.rows = len(values)
	t.sized = true
	return nil
}

// SetScalar adds a single-value column that broadcasts to every row.
func (t *Table) SetScalar(name string, value quantity.Quantity) error {
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("column %q already present", name)
	}
	t.columns[name] = column{values: []quantity.Quantity{value}, scalar: true}
	return nil
}

// Rows returns the table's row count. A table holding only scalar columns
// has one logical row.
func (t *Table) Rows() int {
	if !t.sized {
		return 1
	}
	return t.rows
}

// Has reports whether the table has a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Value returns the cell at (name, row), broadcasting scalar columns.
func (t *Table) Value(name string, row int) (quantity.Quantity, bool) {
	col, ok := t.columns[name]
	if !ok {
		return quantity.Quantity{}, false
	}
	if col.scalar {
		return col.values[0], true
	}
	if row < 0 || row >= len(col.values) {
		return quantity.Quantity{}, false
	}
	return col.values[row], true
}
