package finalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"filings/internal/identity"
	"filings/internal/logging"
	"filings/internal/record"
	"filings/internal/standards"
)

// PipelineVersion is stamped on every output row.
const PipelineVersion = "1.0"

const dataSource = "state_filings"

// Consolidator produces the canonical output table. Every cleanup step
// is isolated: a failing step is logged and skipped, never aborting
// the remaining steps or the run.
type Consolidator struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewConsolidator(logger *slog.Logger) *Consolidator {
	return &Consolidator{
		logger: logging.NewComponentLogger(logger, "finalize"),
		now:    time.Now,
	}
}

// Report lists the consolidation steps that failed and were skipped.
type Report struct {
	FailedSteps []string
}

// Degraded reports whether any step was skipped.
func (r *Report) Degraded() bool {
	return len(r.FailedSteps) > 0
}

// Finalize runs the consolidation steps and returns the ordered,
// schema-complete table.
func (c *Consolidator) Finalize(table *record.Table) (*record.Table, *Report) {
	report := &Report{}
	if table.Empty() {
		c.logger.Warn("no rows to finalize")
		return table, report
	}
	out := table.Clone()

	c.step(report, "ensure_columns", func() { out.EnsureColumns(record.PreferredOrder...) })
	c.step(report, "display_name", func() { resolveDisplayNames(out) })
	c.step(report, "raw_data", func() { normalizeRawData(out) })
	c.step(report, "name_case", func() { normalizeNameCase(out) })
	c.step(report, "email_case", func() { lowercaseEmails(out) })
	c.step(report, "phone", func() { fixNumericStrings(out, record.ColPhone) })
	c.step(report, "zip_code", func() { fixNumericStrings(out, record.ColZipCode) })
	c.step(report, "statewide_district", func() { clearStatewideDistricts(out) })
	c.step(report, "address", func() { cleanAddresses(out) })
	c.step(report, "stable_id_backfill", func() { backfillStableIDs(out) })
	c.step(report, "election_date", func() { formatElectionDates(out) })
	c.step(report, "sort", func() {
		out.SortBy(record.ColState, record.ColOffice, record.ColFullNameDisplay)
	})
	c.step(report, "column_order", func() {
		out.DropColumns(record.ColCandidateName)
		out.Reorder(record.PreferredOrder)
	})
	c.step(report, "metadata", func() { c.addProcessingMetadata(out) })

	c.logger.Info("finalized output table",
		logging.Int(logging.FieldRows, out.Len()),
		logging.Int("states", out.DistinctCount(record.ColState)),
		logging.Int("offices", out.DistinctCount(record.ColOffice)))
	return out, report
}

func (c *Consolidator) step(report *Report, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			report.FailedSteps = append(report.FailedSteps, name)
			c.logger.Warn("consolidation step failed",
				logging.String("step", name),
				logging.Error(fmt.Errorf("%v", r)))
		}
	}()
	fn()
}

// resolveDisplayNames fills full_name_display from candidate_name when
// the display form is missing. candidate_name itself is dropped from
// the final column order later.
func resolveDisplayNames(table *record.Table) {
	for _, row := range table.Rows {
		if record.IsBlank(row[record.ColFullNameDisplay]) {
			if v := record.TrimString(row[record.ColCandidateName]); v != "" {
				row[record.ColFullNameDisplay] = v
			}
		}
	}
}

// normalizeRawData guarantees raw_data is a JSON string or null.
func normalizeRawData(table *record.Table) {
	for _, row := range table.Rows {
		v := row[record.ColRawData]
		if record.IsNull(v) {
			row[record.ColRawData] = nil
			continue
		}
		if s, ok := v.(string); ok {
			row[record.ColRawData] = s
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			row[record.ColRawData] = nil
			continue
		}
		row[record.ColRawData] = string(data)
	}
}

var nameCaseColumns = []string{
	record.ColFirstName,
	record.ColMiddleName,
	record.ColLastName,
	record.ColPrefix,
}

// normalizeNameCase title-cases name parts. Idempotent; suffix keeps
// the form it got earlier in the run.
func normalizeNameCase(table *record.Table) {
	for _, col := range nameCaseColumns {
		for _, row := range table.Rows {
			if v := record.TrimString(row[col]); v != "" {
				row[col] = standards.TitleCase(v)
			}
		}
	}
}

func lowercaseEmails(table *record.Table) {
	for _, row := range table.Rows {
		if v := record.TrimString(row[record.ColEmail]); v != "" {
			row[record.ColEmail] = strings.ToLower(v)
		}
	}
}

// fixNumericStrings repairs float-coercion artifacts: a trailing ".0"
// is stripped and a literal "nan" becomes null.
func fixNumericStrings(table *record.Table, col string) {
	for _, row := range table.Rows {
		v := record.String(row[col])
		if v == "" || strings.EqualFold(v, "nan") {
			row[col] = nil
			continue
		}
		row[col] = record.StripFloatSuffix(v)
	}
}

// clearStatewideDistricts nulls a 0/0.0 district on offices that are
// statewide by definition.
func clearStatewideDistricts(table *record.Table) {
	for _, row := range table.Rows {
		office := record.TrimString(row[record.ColOffice])
		if !standards.StatewideOffices[office] {
			continue
		}
		switch record.TrimString(row[record.ColDistrict]) {
		case "0", "0.0":
			row[record.ColDistrict] = nil
		}
	}
}

var streetNumberFloat = regexp.MustCompile(`^(\d+)\.0\b`)

func cleanAddresses(table *record.Table) {
	for _, row := range table.Rows {
		v := record.TrimString(row[record.ColAddress])
		if v == "" {
			continue
		}
		v = streetNumberFloat.ReplaceAllString(v, "$1")
		row[record.ColAddress] = strings.Join(strings.Fields(v), " ")
	}
}

// backfillStableIDs guarantees every output row has an identity, even
// rows that skipped identity resolution upstream. The hash recipe is
// identical to the resolver's.
func backfillStableIDs(table *record.Table) {
	for _, row := range table.Rows {
		if record.TrimString(row[record.ColStableID]) != "" {
			continue
		}
		row[record.ColStableID] = identity.StableID(
			record.String(row[record.ColFullNameDisplay]),
			record.String(row[record.ColState]),
			record.String(row[record.ColOffice]),
			record.String(row[record.ColElectionYear]),
		)
	}
}

func formatElectionDates(table *record.Table) {
	for _, row := range table.Rows {
		if v := record.TrimString(row[record.ColElectionDate]); v != "" {
			row[record.ColElectionDate] = standards.FormatElectionDate(v)
		}
	}
}

func (c *Consolidator) addProcessingMetadata(table *record.Table) {
	stamp := c.now().UTC().Format(time.RFC3339)
	table.SetAll(record.ColProcessingTimestamp, stamp)
	table.SetAll(record.ColPipelineVersion, PipelineVersion)
	table.SetAll(record.ColDataSource, dataSource)
}
