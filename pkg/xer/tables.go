package xer

import "strings"

// Row is a single data row: field name to raw cell value. A cell absent
// because the %R line had fewer columns than the table's %F line is simply
// not a key in the map — it is not an empty string.
type Row map[string]string

// Table is one XER table: its column names in export order and its rows.
type Table struct {
	Name   string
	Fields []string
	Rows   []Row
}

// Tables is the ordered dictionary the reader produces: uppercase table
// name to Table. Order reflects first encounter in the byte stream; content
// reflects the last %T...%E (or %T...EOF) occurrence, per the XER
// duplicate-table rule.
type Tables struct {
	order  []string
	byName map[string]*Table
}

func newTables() *Tables {
	return &Tables{byName: make(map[string]*Table)}
}

func (t *Tables) finalize(tbl *Table) {
	if _, exists := t.byName[tbl.Name]; !exists {
		t.order = append(t.order, tbl.Name)
	}
	t.byName[tbl.Name] = tbl
}

// Get returns the table with the given name (case-insensitive), and whether
// it was present in the stream.
func (t *Tables) Get(name string) (*Table, bool) {
	tbl, ok := t.byName[strings.ToUpper(name)]
	return tbl, ok
}

// Names returns the table names in first-encounter order.
func (t *Tables) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// RowCount returns the total number of data rows across all tables.
func (t *Tables) RowCount() int {
	n := 0
	for _, tbl := range t.byName {
		n += len(tbl.Rows)
	}
	return n
}
