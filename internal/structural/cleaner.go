package structural

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"filings/internal/extract"
	"filings/internal/logging"
	"filings/internal/record"
	"filings/internal/services"
)

// Profile describes how one state's raw exports map onto the
// structured column set. Most states only need identifiers; the
// mapping fields override the shared keyword matching where an
// export's headers are too irregular for it.
type Profile struct {
	State       string
	DisplayName string

	// Identifiers are filename fragments that select this state's
	// files under the raw directory. Defaults to State and
	// DisplayName when empty.
	Identifiers []string

	// Keywords overrides the default header fragments for a field.
	Keywords map[string][]string

	// Exact names columns read verbatim for a field, tried before
	// keyword matching.
	Exact map[string][]string

	// Combine names columns whose non-blank values are joined with
	// spaces, for exports that split a field across columns.
	Combine map[string][]string

	// DistrictFromOffice parses "District N" out of the office text
	// when no district column exists.
	DistrictFromOffice bool
}

func (p Profile) identifiers() []string {
	if len(p.Identifiers) > 0 {
		return p.Identifiers
	}
	return []string{p.State, strings.ToLower(p.DisplayName)}
}

// Cleaner turns one state's raw exports into structured rows.
type Cleaner struct {
	profile Profile
	logger  *slog.Logger
}

func NewCleaner(profile Profile, logger *slog.Logger) *Cleaner {
	return &Cleaner{
		profile: profile,
		logger:  logging.NewComponentLogger(logger, "structural"),
	}
}

func (c *Cleaner) State() string       { return c.profile.State }
func (c *Cleaner) DisplayName() string { return c.profile.DisplayName }

// ProcessState locates and extracts every raw file for the cleaner's
// state and concatenates the structured rows.
func (c *Cleaner) ProcessState(rawDir string) (*record.Table, error) {
	files, err := extract.FindStateFiles(rawDir, c.profile.identifiers())
	if err != nil {
		return nil, services.Wrap(services.ErrParse, "structural", "find_files", c.profile.State, err)
	}
	if len(files) == 0 {
		return nil, services.Wrap(services.ErrNotFound, "structural", "find_files",
			fmt.Sprintf("no raw files for %s", c.profile.State), nil)
	}

	out := record.New(record.StructuredColumns...)
	for _, path := range files {
		parsed, err := extract.ParseFile(path)
		if err != nil {
			c.logger.Warn("skipping unreadable file",
				logging.String(logging.FieldState, c.profile.State),
				logging.String("file", filepath.Base(path)),
				logging.Error(err))
			continue
		}
		for _, w := range parsed.Warnings {
			c.logger.Warn("raw file irregularity",
				logging.String("file", filepath.Base(path)),
				logging.Int("row", w.Row),
				logging.String("detail", w.Message))
		}
		table := c.Extract(parsed.Table, path)
		c.logger.Info("extracted raw file",
			logging.String(logging.FieldState, c.profile.State),
			logging.String("file", filepath.Base(path)),
			logging.String("encoding", parsed.Encoding),
			logging.Int(logging.FieldRows, table.Len()))
		out.Concat(table)
	}
	return out, nil
}

// Extract maps raw rows from a single file onto the structured column
// set. Rows that do not look like candidate records are skipped, and a
// record is kept only when a name and an office were found.
func (c *Cleaner) Extract(raw *record.Table, source string) *record.Table {
	out := record.New(record.StructuredColumns...)
	fileYear, _ := extract.YearFromFilename(source)
	base := filepath.Base(source)

	for i, row := range raw.Rows {
		if !isCandidateRow(row, raw.Columns) {
			continue
		}
		rec := c.extractRecord(row, raw.Columns)
		name := record.String(rec[record.ColCandidateName])
		office := record.String(rec[record.ColOffice])
		if name == "" || office == "" {
			continue
		}
		if record.IsBlank(rec[record.ColElectionYear]) && fileYear != "" {
			rec[record.ColElectionYear] = fileYear
		}
		rec[record.ColState] = c.profile.DisplayName
		if record.IsBlank(rec[record.ColAddressState]) {
			rec[record.ColAddressState] = c.profile.DisplayName
		}
		rec[record.ColRawData] = encodeRaw(row, raw.Columns)
		rec[record.ColFileSource] = base
		rec[record.ColRowIndex] = i
		out.Append(rec)
	}
	return out
}

func (c *Cleaner) extractRecord(row record.Row, columns []string) record.Row {
	rec := record.Row{}
	for _, col := range record.StructuredColumns {
		rec[col] = nil
	}
	for field, keywords := range defaultKeywords {
		rec[field] = c.extractField(row, columns, field, keywords)
	}
	if c.profile.DistrictFromOffice && record.IsBlank(rec[record.ColDistrict]) {
		if d := districtFromOffice(record.String(rec[record.ColOffice])); d != "" {
			rec[record.ColDistrict] = d
		}
	}
	return rec
}

func (c *Cleaner) extractField(row record.Row, columns []string, field string, keywords []string) any {
	if exact := c.profile.Exact[field]; len(exact) > 0 {
		if v := extractExact(row, exact); v != "" {
			return v
		}
	}
	if combine := c.profile.Combine[field]; len(combine) > 0 {
		if v := combineParts(row, combine); v != "" {
			return v
		}
	}
	if override := c.profile.Keywords[field]; len(override) > 0 {
		keywords = override
	}
	var v string
	switch field {
	case record.ColEmail:
		v = extractEmail(row, columns, keywords)
	case record.ColElectionYear:
		v = extractYear(row, columns, keywords)
	default:
		v = extractByKeywords(row, columns, keywords)
	}
	if v == "" {
		return nil
	}
	return v
}

// headerTokens are header-ish words; a row whose values hit several of
// them is a repeated header or a summary band, not a candidate.
var headerTokens = []string{
	"total", "count", "summary", "header",
	"name", "office", "party", "candidate",
	"filing", "election", "date", "address",
}

func isCandidateRow(row record.Row, columns []string) bool {
	nonEmpty := 0
	tokenHits := 0
	for _, col := range columns {
		v := strings.ToLower(record.TrimString(row[col]))
		if v == "" || isNullToken(v) {
			continue
		}
		nonEmpty++
		for _, tok := range headerTokens {
			if v == tok {
				tokenHits++
				break
			}
		}
	}
	return nonEmpty >= 2 && tokenHits < 3
}

// encodeRaw preserves the original row as JSON so later phases can
// audit what the extraction saw.
func encodeRaw(row record.Row, columns []string) string {
	m := make(map[string]string, len(columns))
	for _, col := range columns {
		m[col] = record.String(row[col])
	}
	data, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(data)
}
