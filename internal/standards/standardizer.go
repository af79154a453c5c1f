package standards

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"filings/internal/logging"
	"filings/internal/record"
)

// Standardizer applies the cross-state normalization pass. It is best
// effort by contract: a failing full pass degrades to a party-only
// pass, and a failing party pass degrades to an empty table. It never
// returns an error upward.
type Standardizer struct {
	cfg    Options
	logger *slog.Logger
}

// Options toggles the individual standardization families.
type Options struct {
	Office         bool
	Party          bool
	ElectionTypes  bool
	StatewideDedup bool
}

// DefaultOptions enables every family.
func DefaultOptions() Options {
	return Options{Office: true, Party: true, ElectionTypes: true, StatewideDedup: true}
}

func NewStandardizer(cfg Options, logger *slog.Logger) *Standardizer {
	return &Standardizer{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "standards"),
	}
}

// Pass modes reported by Apply.
const (
	ModeFull      = "full"
	ModePartyOnly = "party_only"
	ModeEmpty     = "empty"
)

// Report records which pass produced the output and the errors that
// forced any degradation.
type Report struct {
	Mode   string
	Errors []string
}

// Degraded reports whether Apply fell back from the full pass.
func (r *Report) Degraded() bool {
	return r.Mode != ModeFull
}

// Apply merges the per-state tables and runs the full standardization
// pass over the merged table.
func (s *Standardizer) Apply(tables map[string]*record.Table) (*record.Table, *Report) {
	report := &Report{Mode: ModeFull}
	merged := Merge(tables)
	if merged.Empty() {
		s.logger.Warn("no rows to standardize")
		return merged, report
	}

	out, err := s.fullPass(merged.Clone())
	if err == nil {
		return out, report
	}
	report.Errors = append(report.Errors, err.Error())
	s.logger.Error("standardization failed, falling back to party-only pass", logging.Error(err))

	out, err = s.partyOnlyPass(merged.Clone())
	if err == nil {
		report.Mode = ModePartyOnly
		return out, report
	}
	report.Errors = append(report.Errors, err.Error())
	report.Mode = ModeEmpty
	s.logger.Error("party-only fallback failed, returning empty table", logging.Error(err))
	return record.New(merged.Columns...), report
}

func (s *Standardizer) fullPass(table *record.Table) (_ *record.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("standardization panic: %v", r)
		}
	}()

	if s.cfg.Office {
		s.standardizeOffices(table)
	}
	if s.cfg.Party {
		s.standardizeParties(table)
	}
	s.applyCaseStandards(table)
	s.standardizeStates(table)
	s.formatElectionDates(table)
	s.standardizeCounties(table)
	s.fixSingleWordNames(table)
	s.standardizeNames(table)
	s.standardizePhones(table)
	if s.cfg.StatewideDedup {
		table = DedupeStatewide(table)
	}
	if s.cfg.ElectionTypes {
		StandardizeElectionTypes(table)
	}
	table = DedupeByStableID(table)

	s.logger.Info("applied national standards", logging.Int(logging.FieldRows, table.Len()))
	return table, nil
}

func (s *Standardizer) partyOnlyPass(table *record.Table) (_ *record.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("party standardization panic: %v", r)
		}
	}()
	s.standardizeParties(table)
	return table, nil
}

// standardizeOffices maps offices to the national vocabulary,
// preserving the source text in source_office and source_district and
// recovering a district from office text when the column was empty.
func (s *Standardizer) standardizeOffices(table *record.Table) {
	if !table.HasColumn(record.ColOffice) {
		return
	}
	table.EnsureColumns(record.ColSourceOffice, record.ColSourceDistrict)
	unmatched := 0
	for _, row := range table.Rows {
		office := record.TrimString(row[record.ColOffice])
		row[record.ColSourceOffice] = row[record.ColOffice]
		row[record.ColSourceDistrict] = row[record.ColDistrict]
		if office == "" {
			continue
		}
		standardized, matched := StandardizeOffice(office)
		row[record.ColOffice] = standardized
		if !matched {
			unmatched++
		}
		if record.IsBlank(row[record.ColDistrict]) {
			if d := DistrictFromOfficeText(office); d != "" {
				row[record.ColDistrict] = d
			}
		}
	}
	if unmatched > 0 {
		s.logger.Info("offices left unmapped", logging.Int("count", unmatched))
	}
}

// standardizeParties infers a party from office text for blank rows,
// then maps every party through the variation table. The raw value is
// preserved in source_party.
func (s *Standardizer) standardizeParties(table *record.Table) {
	if !table.HasColumn(record.ColParty) {
		return
	}
	table.EnsureColumns(record.ColSourceParty)
	inferred := 0
	for _, row := range table.Rows {
		row[record.ColSourceParty] = row[record.ColParty]
		party := record.TrimString(row[record.ColParty])
		if party == "" {
			office := officeContext(row)
			if p := InferPartyFromOffice(office); p != "" {
				party = p
				inferred++
			}
		}
		if party == "" {
			continue
		}
		row[record.ColParty] = nullIfEmpty(StandardizeParty(party))
	}
	if inferred > 0 {
		s.logger.Info("parties inferred from office context", logging.Int("count", inferred))
	}
}

func officeContext(row record.Row) string {
	if v := record.TrimString(row[record.ColSourceOffice]); v != "" {
		return v
	}
	return record.TrimString(row[record.ColOffice])
}

var properCaseColumns = []string{
	record.ColCandidateName,
	record.ColOffice,
	record.ColCounty,
	record.ColCity,
	record.ColDistrict,
}

func (s *Standardizer) applyCaseStandards(table *record.Table) {
	for _, col := range properCaseColumns {
		if !table.HasColumn(col) {
			continue
		}
		for _, row := range table.Rows {
			if v := record.TrimString(row[col]); v != "" {
				row[col] = SmartProperCase(v)
			}
		}
	}
}

func (s *Standardizer) standardizeStates(table *record.Table) {
	if table.HasColumn(record.ColState) {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColState]); v != "" {
				row[record.ColState] = TitleCase(v)
			}
		}
	}
	if table.HasColumn(record.ColAddressState) {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColAddressState]); v != "" {
				row[record.ColAddressState] = StateAbbreviation(v)
			}
		}
	}
}

func (s *Standardizer) formatElectionDates(table *record.Table) {
	if !table.HasColumn(record.ColElectionDate) {
		return
	}
	for _, row := range table.Rows {
		if v := record.TrimString(row[record.ColElectionDate]); v != "" {
			row[record.ColElectionDate] = FormatElectionDate(v)
		}
	}
}

func (s *Standardizer) standardizeCounties(table *record.Table) {
	if !table.HasColumn(record.ColCounty) {
		return
	}
	for _, row := range table.Rows {
		if v := record.TrimString(row[record.ColCounty]); v != "" {
			row[record.ColCounty] = StandardizeCounty(v)
		}
	}
}

// fixSingleWordNames moves a lone first_name token to last_name when
// last_name is empty; single-word candidate names are surnames.
func (s *Standardizer) fixSingleWordNames(table *record.Table) {
	if !table.HasColumn(record.ColFirstName) || !table.HasColumn(record.ColLastName) {
		return
	}
	for _, row := range table.Rows {
		first := record.TrimString(row[record.ColFirstName])
		last := record.TrimString(row[record.ColLastName])
		if first != "" && last == "" && !strings.Contains(first, " ") {
			row[record.ColLastName] = first
			row[record.ColFirstName] = nil
		}
	}
}

var parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)`)

var partyLetterCodes = []struct {
	pattern *regexp.Regexp
	party   string
}{
	{regexp.MustCompile(`(?i)\(R\)`), "Republican"},
	{regexp.MustCompile(`(?i)\(D\)`), "Democratic"},
	{regexp.MustCompile(`(?i)\(G\)`), "Green Party"},
	{regexp.MustCompile(`(?i)\(L\)`), "Libertarian"},
	{regexp.MustCompile(`(?i)\(I\)`), "Independent"},
}

var congressmanPrefix = regexp.MustCompile(`^Congressman\s+`)

var nameColumns = []string{
	record.ColFirstName,
	record.ColMiddleName,
	record.ColLastName,
	record.ColFullNameDisplay,
}

// standardizeNames strips embedded party annotations out of name
// columns (filling the party column from letter codes when it was
// blank), normalizes suffixes, and title-cases name parts.
func (s *Standardizer) standardizeNames(table *record.Table) {
	for _, col := range nameColumns {
		if !table.HasColumn(col) {
			continue
		}
		for _, row := range table.Rows {
			v := record.TrimString(row[col])
			if v == "" {
				continue
			}
			for _, code := range partyLetterCodes {
				if code.pattern.MatchString(v) {
					v = strings.TrimSpace(code.pattern.ReplaceAllString(v, ""))
					if record.IsBlank(row[record.ColParty]) {
						row[record.ColParty] = code.party
					}
				}
			}
			v = strings.TrimSpace(parentheticalPattern.ReplaceAllString(v, ""))
			v = strings.TrimSpace(congressmanPrefix.ReplaceAllString(v, ""))
			row[col] = nullIfEmpty(v)
		}
	}

	if table.HasColumn(record.ColSuffix) {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColSuffix]); v != "" {
				row[record.ColSuffix] = StandardizeSuffix(v)
			}
		}
	}

	for _, col := range []string{record.ColFirstName, record.ColMiddleName, record.ColLastName, record.ColPrefix, record.ColNickname} {
		if !table.HasColumn(col) {
			continue
		}
		for _, row := range table.Rows {
			if v := record.TrimString(row[col]); v != "" {
				row[col] = TitleCase(v)
			}
		}
	}
	if table.HasColumn(record.ColFullNameDisplay) {
		for _, row := range table.Rows {
			if v := record.TrimString(row[record.ColFullNameDisplay]); v != "" && v == strings.ToUpper(v) {
				// Only shouted names get recased; mixed case like
				// "McDonald" is already deliberate.
				row[record.ColFullNameDisplay] = SmartProperCase(v)
			}
		}
	}
}

func (s *Standardizer) standardizePhones(table *record.Table) {
	if !table.HasColumn(record.ColPhone) {
		return
	}
	for _, row := range table.Rows {
		v := record.TrimString(row[record.ColPhone])
		if v == "" || strings.EqualFold(v, "nan") {
			row[record.ColPhone] = nil
			continue
		}
		row[record.ColPhone] = nullIfEmpty(DigitsOnly(v))
	}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
