package record

import (
	"sort"
	"strings"
)

// Row is a single data row keyed by column name. A nil value (or an absent
// key) represents a null cell.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of rows sharing one column set. Column order
// is significant for output; rows may omit columns, which reads as null.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy of the table (rows are cloned, values are not).
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	out.Rows = make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}

// HasColumn reports whether the column label is present.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumns appends any missing column labels; existing rows read the new
// columns as null.
func (t *Table) EnsureColumns(names ...string) {
	for _, name := range names {
		if !t.HasColumn(name) {
			t.Columns = append(t.Columns, name)
		}
	}
}

// DropColumns removes the named columns from the label set and from every row.
func (t *Table) DropColumns(names ...string) {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, row := range t.Rows {
		for n := range drop {
			delete(row, n)
		}
	}
}

// DedupeColumns removes repeated column labels, keeping the first occurrence.
// Upstream per-state tables occasionally carry duplicate labels after merges.
func (t *Table) DedupeColumns() {
	seen := make(map[string]struct{}, len(t.Columns))
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		kept = append(kept, c)
	}
	t.Columns = kept
}

// Reorder arranges columns to match the preferred sequence. Preferred columns
// missing from the table are created as null; columns not in the preferred
// sequence keep their relative order and are appended at the end.
func (t *Table) Reorder(preferred []string) {
	t.EnsureColumns(preferred...)
	inPreferred := make(map[string]struct{}, len(preferred))
	for _, c := range preferred {
		inPreferred[c] = struct{}{}
	}
	ordered := make([]string, 0, len(t.Columns))
	ordered = append(ordered, preferred...)
	for _, c := range t.Columns {
		if _, ok := inPreferred[c]; !ok {
			ordered = append(ordered, c)
		}
	}
	t.Columns = ordered
}

// SortBy sorts rows ascending by the string form of the given columns. The
// sort is stable so equal keys keep their input order.
func (t *Table) SortBy(columns ...string) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		for _, col := range columns {
			a := String(t.Rows[i][col])
			b := String(t.Rows[j][col])
			if a != b {
				return a < b
			}
		}
		return false
	})
}

// Concat appends the rows of other, unioning the column sets. Duplicate labels
// in either table are collapsed first.
func (t *Table) Concat(other *Table) {
	if other == nil {
		return
	}
	other.DedupeColumns()
	t.DedupeColumns()
	t.EnsureColumns(other.Columns...)
	t.Rows = append(t.Rows, other.Rows...)
}

// SetAll assigns the same value to a column in every row, creating the column
// if needed.
func (t *Table) SetAll(name string, value any) {
	t.EnsureColumns(name)
	for _, row := range t.Rows {
		row[name] = value
	}
}

// Filter returns a new table containing the rows for which keep returns true.
func (t *Table) Filter(keep func(Row) bool) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// DistinctCount returns the number of distinct non-null string values in a
// column. Used for run summaries.
func (t *Table) DistinctCount(name string) int {
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		v := strings.TrimSpace(String(row[name]))
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
