package standards

import (
	"regexp"
	"strings"

	"filings/internal/record"
)

var electionTypePatterns = []struct {
	column   string
	patterns []*regexp.Regexp
}{
	{record.ColRanInPrimary, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bprimary\b`),
		regexp.MustCompile(`(?i)\bpri\b`),
		regexp.MustCompile(`(?i)\bprim\b`),
	}},
	{record.ColRanInGeneral, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bgeneral\b`),
		regexp.MustCompile(`(?i)\bgen\b`),
		regexp.MustCompile(`(?i)\bnovember\b`),
	}},
	{record.ColRanInSpecial, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bspecial\b`),
		regexp.MustCompile(`(?i)\bspec\b`),
		regexp.MustCompile(`(?i)\bby.?election\b`),
		regexp.MustCompile(`(?i)\bfill vacancy\b`),
	}},
}

var electionTypeSplit = regexp.MustCompile(`[,;]`)

// StandardizeElectionTypes replaces the free-text election_type column
// with ran_in_primary/general/special booleans plus a notes column for
// compound or unrecognized values.
func StandardizeElectionTypes(table *record.Table) {
	table.EnsureColumns(record.ColRanInPrimary, record.ColRanInGeneral,
		record.ColRanInSpecial, record.ColElectionTypeNotes)

	hasSource := table.HasColumn(record.ColElectionType)
	for _, row := range table.Rows {
		row[record.ColRanInPrimary] = false
		row[record.ColRanInGeneral] = false
		row[record.ColRanInSpecial] = false
		row[record.ColElectionTypeNotes] = ""

		if !hasSource {
			row[record.ColElectionTypeNotes] = "No election type data available"
			continue
		}
		raw := record.TrimString(row[record.ColElectionType])
		if raw == "" {
			continue
		}

		parts := []string{raw}
		var notes []string
		if strings.ContainsAny(raw, ",;") {
			parts = electionTypeSplit.Split(raw, -1)
			notes = append(notes, "Original: "+raw)
		}
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !classifyElectionType(row, part) {
				notes = append(notes, "Unknown: "+part)
			}
		}
		row[record.ColElectionTypeNotes] = strings.Join(notes, "; ")
	}

	table.DropColumns(record.ColElectionType)
}

func classifyElectionType(row record.Row, value string) bool {
	for _, group := range electionTypePatterns {
		for _, p := range group.patterns {
			if p.MatchString(value) {
				row[group.column] = true
				return true
			}
		}
	}
	return false
}
