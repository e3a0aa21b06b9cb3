package metadata

import (
	"sort"
	"strings"

	"shotname/internal/services"
)

// Table is an ordered, immutable collection of rows. A column counts as
// present only when every row reported it.
type Table struct {
	rows    []Row
	present map[Column]struct{}
}

// NewTable copies rows into a table with the given present columns. Rows are
// kept in the order supplied.
func NewTable(rows []Row, present ...Column) *Table {
	t := &Table{
		rows:    make([]Row, len(rows)),
		present: make(map[Column]struct{}, len(present)),
	}
	copy(t.rows, rows)
	for _, c := range present {
		t.present[c] = struct{}{}
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns a copy of all rows in table order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Has reports whether every listed column is present. An empty table has no
// columns.
func (t *Table) Has(cols ...Column) bool {
	return len(t.Missing(cols...)) == 0
}

// Missing returns the listed columns that are absent, in argument order.
func (t *Table) Missing(cols ...Column) []Column {
	var missing []Column
	for _, c := range cols {
		if t == nil || len(t.rows) == 0 {
			missing = append(missing, c)
			continue
		}
		if _, ok := t.present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Columns lists the present columns, typed columns first in report order,
// then extra tags alphabetically.
func (t *Table) Columns() []Column {
	if t == nil {
		return nil
	}
	cols := make([]Column, 0, len(t.present))
	for _, c := range AllColumns {
		if _, ok := t.present[c]; ok {
			cols = append(cols, c)
		}
	}
	var extra []string
	for c := range t.present {
		if !c.IsTyped() {
			extra = append(extra, string(c))
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		cols = append(cols, Column(name))
	}
	return cols
}

// Require returns an ErrMissingColumn error naming every absent column.
func (t *Table) Require(command string, cols ...Column) error {
	missing := t.Missing(cols...)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = string(c)
	}
	return services.Wrap(services.ErrMissingColumn, command, "check columns", strings.Join(names, ", "), nil)
}
