package statecleaner

import (
	"log/slog"
	"strings"

	"filings/internal/logging"
	"filings/internal/record"
)

// Cleaner normalizes one state's structured records: split names into
// parts, coerce years, and drop rows that lost their name.
type Cleaner interface {
	State() string
	Clean(table *record.Table) (*record.Table, error)
}

// rules carries the per-state deviations from the shared cleaning
// path. The zero value is a fully default state.
type rules struct {
	state   string
	display string

	// normalizeName repairs state-specific name layouts before the
	// shared parser runs (running-mate slashes, flipped commas).
	normalizeName func(string) string

	// cleanDistrict rewrites district values in state formats like
	// "HD 1" down to the bare number.
	cleanDistrict func(string) string
}

type stateCleaner struct {
	rules  rules
	logger *slog.Logger
}

func newStateCleaner(r rules, logger *slog.Logger) *stateCleaner {
	return &stateCleaner{
		rules:  r,
		logger: logging.NewComponentLogger(logger, "statecleaner"),
	}
}

func (c *stateCleaner) State() string { return c.rules.state }

// Clean runs the shared steps in a fixed order: state name repairs,
// standard columns, year coercion, empty-name drops, name parsing,
// duplicate removal. Identity columns pass through untouched.
func (c *stateCleaner) Clean(table *record.Table) (*record.Table, error) {
	out := table.Clone()
	before := out.Len()

	c.applyStateRules(out)
	out.EnsureColumns(record.StructuredColumns...)
	out.EnsureColumns(record.NamePartColumns...)
	coerceYears(out)
	out = dropEmptyNames(out)
	parseNames(out)
	out = dropDuplicateRows(out)

	c.logger.Info("cleaned state records",
		logging.String(logging.FieldState, c.rules.state),
		logging.Int("input_rows", before),
		logging.Int(logging.FieldRows, out.Len()))
	return out, nil
}

func (c *stateCleaner) applyStateRules(table *record.Table) {
	if c.rules.normalizeName != nil {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColCandidateName]); v != "" {
				row[record.ColCandidateName] = c.rules.normalizeName(v)
			}
		}
	}
	if c.rules.cleanDistrict != nil {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColDistrict]); v != "" {
				row[record.ColDistrict] = c.rules.cleanDistrict(v)
			}
		}
	}
}

func coerceYears(table *record.Table) {
	for _, row := range table.Rows {
		if v := row[record.ColElectionYear]; !record.IsBlank(v) {
			row[record.ColElectionYear] = record.YearString(v)
		}
	}
}

func dropEmptyNames(table *record.Table) *record.Table {
	return table.Filter(func(row record.Row) bool {
		return record.TrimString(row[record.ColCandidateName]) != ""
	})
}

// parseNames fills the name part columns from candidate_name. The
// original name stays in candidate_name; full_name_display is rebuilt
// from the parsed parts.
func parseNames(table *record.Table) {
	for _, row := range table.Rows {
		name := record.TrimString(row[record.ColCandidateName])
		if name == "" {
			continue
		}
		p := ParseName(name)
		row[record.ColFirstName] = nullable(p.First)
		row[record.ColMiddleName] = nullable(p.Middle)
		row[record.ColLastName] = nullable(p.Last)
		row[record.ColPrefix] = nullable(p.Prefix)
		row[record.ColSuffix] = nullable(p.Suffix)
		row[record.ColNickname] = nullable(p.Nickname)
		row[record.ColFullNameDisplay] = nullable(p.Display)
	}
}

// dropDuplicateRows keeps the first of any rows identical across every
// column except raw_data, which varies by source formatting, and the
// file_source/row_index provenance columns, which differ on every row.
func dropDuplicateRows(table *record.Table) *record.Table {
	seen := make(map[string]bool, table.Len())
	return table.Filter(func(row record.Row) bool {
		var b strings.Builder
		for _, col := range table.Columns {
			switch col {
			case record.ColRawData, record.ColFileSource, record.ColRowIndex:
				continue
			}
			b.WriteString(record.String(row[col]))
			b.WriteByte('\x1f')
		}
		key := b.String()
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
