package standards

import (
	"strings"

	"filings/internal/record"
)

// DedupeStatewide collapses rows that are identical except for county.
// Statewide candidates show up once per county in some exports; the
// survivor keeps a null county. stable_id, raw_data, and the
// file_source/row_index provenance columns are excluded from the
// comparison, since per-county copies of one candidate always differ
// in at least row_index.
func DedupeStatewide(table *record.Table) *record.Table {
	groups := make(map[string]record.Row, table.Len())
	out := table.Filter(func(row record.Row) bool {
		key := rowKey(row, table.Columns,
			record.ColCounty, record.ColStableID, record.ColRawData,
			record.ColFileSource, record.ColRowIndex)
		if first, ok := groups[key]; ok {
			first[record.ColCounty] = nil
			return false
		}
		groups[key] = row
		return true
	})
	return out
}

// DedupeByStableID keeps the first row per stable_id. Rows without an
// ID survive untouched.
func DedupeByStableID(table *record.Table) *record.Table {
	if !table.HasColumn(record.ColStableID) {
		return table
	}
	seen := make(map[string]bool, table.Len())
	return table.Filter(func(row record.Row) bool {
		id := record.TrimString(row[record.ColStableID])
		if id == "" {
			return true
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		return true
	})
}

func rowKey(row record.Row, columns []string, exclude ...string) string {
	skip := make(map[string]bool, len(exclude))
	for _, col := range exclude {
		skip[col] = true
	}
	var b strings.Builder
	for _, col := range columns {
		if skip[col] {
			continue
		}
		b.WriteString(record.String(row[col]))
		b.WriteByte('\x1f')
	}
	return b.String()
}
