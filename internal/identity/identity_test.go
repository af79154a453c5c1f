package identity_test

import (
	"regexp"
	"testing"
	"time"

	"filings/internal/identity"
	"filings/internal/logging"
	"filings/internal/record"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{12}$`)

func TestStableIDDeterministic(t *testing.T) {
	first := identity.StableID("Jane Doe", "ohio", "Governor", "2024")
	second := identity.StableID("Jane Doe", "ohio", "Governor", "2024")
	if first != second {
		t.Fatalf("expected identical IDs, got %q and %q", first, second)
	}
	if !hexPattern.MatchString(first) {
		t.Fatalf("expected 12 lowercase hex chars, got %q", first)
	}
}

func TestStableIDCaseWhitespaceInvariance(t *testing.T) {
	a := identity.StableID("Jane Doe", "Ohio", "Governor", "2024")
	b := identity.StableID(" jane doe ", "OHIO", "governor", "2024")
	if a != b {
		t.Fatalf("expected case/whitespace invariance, got %q and %q", a, b)
	}
}

func TestStableIDDistinguishesFields(t *testing.T) {
	a := identity.StableID("Jane Doe", "ohio", "Governor", "2024")
	b := identity.StableID("Jane Doe", "ohio", "Governor", "2020")
	if a == b {
		t.Fatal("expected different years to yield different IDs")
	}
}

func structuredRow(name, office string, year any) record.Row {
	return record.Row{
		record.ColCandidateName: name,
		record.ColOffice:        office,
		record.ColElectionYear:  year,
		record.ColState:         "ohio",
	}
}

func newTable(rows ...record.Row) *record.Table {
	table := record.New(record.ColCandidateName, record.ColOffice, record.ColElectionYear, record.ColState)
	for _, row := range rows {
		table.Append(row)
	}
	return table
}

func TestResolveAugmentsRows(t *testing.T) {
	resolver := identity.NewResolver(identity.NewSession(), logging.NewNop())

	out, err := resolver.Resolve("ohio", newTable(structuredRow("Jane Doe", "Governor", 2020.0)))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", out.Len())
	}

	row := out.Rows[0]
	id, _ := row[record.ColStableID].(string)
	if !hexPattern.MatchString(id) {
		t.Fatalf("expected 12 hex char stable_id, got %v", row[record.ColStableID])
	}
	if row[record.ColElectionYear] != "2020" {
		t.Fatalf("expected election_year coerced to \"2020\", got %v", row[record.ColElectionYear])
	}
	first, _ := row[record.ColFirstAddedDate].(string)
	if _, err := time.Parse(time.RFC3339, first); err != nil {
		t.Fatalf("expected RFC3339 first_added_date, got %v", row[record.ColFirstAddedDate])
	}
	if row[record.ColLastUpdatedDate] != nil {
		t.Fatalf("expected nil last_updated_date, got %v", row[record.ColLastUpdatedDate])
	}
	if row[record.ColActionType] != identity.ActionInsert {
		t.Fatalf("expected INSERT action, got %v", row[record.ColActionType])
	}

	for _, col := range record.IdentityColumns {
		if !out.HasColumn(col) {
			t.Fatalf("expected output to carry column %q", col)
		}
	}
}

func TestResolveYearTypeDriftKeepsIdentity(t *testing.T) {
	resolver := identity.NewResolver(identity.NewSession(), logging.NewNop())

	asFloat, err := resolver.Resolve("ohio", newTable(structuredRow("Jane Doe", "Governor", 2016.0)))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	asString, err := resolver.Resolve("ohio", newTable(structuredRow("Jane Doe", "Governor", "2016")))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if asFloat.Rows[0][record.ColStableID] != asString.Rows[0][record.ColStableID] {
		t.Fatal("expected numeric and string years to yield the same stable_id")
	}
}

func TestResolveFiltersPlaceholderNames(t *testing.T) {
	resolver := identity.NewResolver(identity.NewSession(), logging.NewNop())

	out, err := resolver.Resolve("ohio", newTable(
		structuredRow("Vacant", "Governor", "2024"),
		structuredRow("No Nominations", "Governor", "2024"),
		structuredRow("Jane Doe", "Governor", "2024"),
	))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected placeholders to be dropped, got %d rows", out.Len())
	}
	if out.Rows[0][record.ColCandidateName] != "Jane Doe" {
		t.Fatalf("unexpected surviving row: %v", out.Rows[0])
	}
}

func TestResolveFiltersMissingFields(t *testing.T) {
	resolver := identity.NewResolver(identity.NewSession(), logging.NewNop())

	out, err := resolver.Resolve("ohio", newTable(
		structuredRow("", "Governor", "2024"),
		structuredRow("Jane Doe", "", "2024"),
		structuredRow("Jane Doe", "Governor", nil),
		structuredRow("Jane Doe", "Governor", "n/a"),
	))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected all rows to be dropped, got %d", out.Len())
	}
}

func TestFirstSeenStabilityAndDuplicateCount(t *testing.T) {
	session := identity.NewSession()
	resolver := identity.NewResolver(session, logging.NewNop())

	out, err := resolver.Resolve("ohio", newTable(
		structuredRow("Jane Doe", "Governor", "2024"),
		structuredRow("jane doe ", "governor", "2024"),
	))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected both occurrences retained, got %d", out.Len())
	}
	if out.Rows[0][record.ColStableID] != out.Rows[1][record.ColStableID] {
		t.Fatal("expected both occurrences to share a stable_id")
	}
	if out.Rows[0][record.ColFirstAddedDate] != out.Rows[1][record.ColFirstAddedDate] {
		t.Fatal("expected both occurrences to share first_added_date")
	}
	if session.Duplicates() != 1 {
		t.Fatalf("expected exactly one duplicate, got %d", session.Duplicates())
	}
}

func TestSessionReset(t *testing.T) {
	session := identity.NewSession()
	session.SetClock(func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) })

	session.Observe("abc123def456")
	session.Observe("abc123def456")
	if session.Duplicates() != 1 || session.Len() != 1 {
		t.Fatalf("unexpected pre-reset state: dups=%d len=%d", session.Duplicates(), session.Len())
	}

	session.Reset()
	if session.Duplicates() != 0 || session.Len() != 0 {
		t.Fatalf("expected empty session after reset: dups=%d len=%d", session.Duplicates(), session.Len())
	}
	if session.Known("abc123def456") {
		t.Fatal("expected reset to forget observed IDs")
	}
}

func TestIsPlaceholderName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Vacant", true},
		{" WRITE-IN ", true},
		{"no candidates filed", true},
		{"Jane Doe", false},
		{"Nancy Null", false},
	}
	for _, tc := range cases {
		if got := identity.IsPlaceholderName(tc.name); got != tc.want {
			t.Fatalf("IsPlaceholderName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
