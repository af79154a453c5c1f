package standards

import (
	"testing"

	"filings/internal/logging"
	"filings/internal/record"
)

func TestStateDisplayName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"alaska", "Alaska"},
		{"new_york", "New York"},
		{"west_virginia", "West Virginia"},
		{"iowa", "Iowa"},
	}
	for _, tc := range cases {
		if got := StateDisplayName(tc.in); got != tc.want {
			t.Fatalf("StateDisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStateAbbreviation(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Alaska", "AK"},
		{"north carolina", "NC"},
		{"Ohio", "OHIO"},
	}
	for _, tc := range cases {
		if got := StateAbbreviation(tc.in); got != tc.want {
			t.Fatalf("StateAbbreviation(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStandardizeParty(t *testing.T) {
	cases := []struct{ in, want string }{
		{"DEM", "Democratic"},
		{"Democrat", "Democratic"},
		{"democratic party", "Democratic"},
		{"GOP", "Republican"},
		{"R", "Republican"},
		{"-", "Unaffiliated"},
		{"11/3/2020", "Unknown"},
		{"N/A", "Unknown"},
		{"Q", "Unknown"},
		{"Working Families", "Working Families"},
		{"green party", "Green Party"},
		{"GRE", "Green Party"},
		{"constitutional", "Constitution Party"},
		{"CST", "Constitution Party"},
		{"non-partisan", "Nonpartisan"},
	}
	for _, tc := range cases {
		if got := StandardizeParty(tc.in); got != tc.want {
			t.Fatalf("StandardizeParty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInferPartyFromOffice(t *testing.T) {
	cases := []struct{ in, want string }{
		{"State Senate (D)", "Democratic"},
		{"Governor - Republican", "Republican"},
		{"Democratic-Farmer-Labor Nominee", "Democratic"},
		{"Governor", ""},
	}
	for _, tc := range cases {
		if got := InferPartyFromOffice(tc.in); got != tc.want {
			t.Fatalf("InferPartyFromOffice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStandardizeOffice(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		matched bool
	}{
		{"U.S. Representative, 3rd District", "US House", true},
		{"united states senator", "US Senate", true},
		{"GOVERNOR", "Governor", true},
		{"State Representative District 14", "State House", true},
		{"Dog Catcher", "Dog Catcher", false},
	}
	for _, tc := range cases {
		got, matched := StandardizeOffice(tc.in)
		if got != tc.want || matched != tc.matched {
			t.Fatalf("StandardizeOffice(%q) = (%q, %v), want (%q, %v)",
				tc.in, got, matched, tc.want, tc.matched)
		}
	}
}

func TestDistrictFromOfficeText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"U.S. Representative, 3rd District", "3"},
		{"State Senate District 14", "14"},
		{"City Council Seat 2", "2"},
		{"Governor", ""},
	}
	for _, tc := range cases {
		if got := DistrictFromOfficeText(tc.in); got != tc.want {
			t.Fatalf("DistrictFromOfficeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSmartProperCaseIdempotent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"US SENATE", "US Senate"},
		{"jane doe jr", "Jane Doe Jr"},
		{"district 1A", "District 1A"},
	}
	for _, tc := range cases {
		once := SmartProperCase(tc.in)
		if once != tc.want {
			t.Fatalf("SmartProperCase(%q) = %q, want %q", tc.in, once, tc.want)
		}
		if twice := SmartProperCase(once); twice != once {
			t.Fatalf("SmartProperCase not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"NEW YORK", "New York"},
		{"GOP", "Gop"},
		{"democratic-farmer-labor", "Democratic-Farmer-Labor"},
		{"no party preference", "No Party Preference"},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Fatalf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatElectionDate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"20201103-GEN", "2020-11-03"},
		{"20240305", "2024-03-05"},
		{"2020-11-03", "2020-11-03"},
		{"November 3", "November 3"},
	}
	for _, tc := range cases {
		if got := FormatElectionDate(tc.in); got != tc.want {
			t.Fatalf("FormatElectionDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMergeStampsStateAndSortsKeys(t *testing.T) {
	iowa := record.New(record.ColCandidateName)
	iowa.Append(record.Row{record.ColCandidateName: "Jane Doe"})
	ny := record.New(record.ColCandidateName)
	ny.Append(record.Row{record.ColCandidateName: "John Roe"})

	out := Merge(map[string]*record.Table{"new_york": ny, "iowa": iowa})
	if out.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.Len())
	}
	if got := record.String(out.Rows[0][record.ColState]); got != "Iowa" {
		t.Fatalf("row 0 state = %q, want sorted merge order", got)
	}
	if got := record.String(out.Rows[1][record.ColState]); got != "New York" {
		t.Fatalf("row 1 state = %q", got)
	}
}

func TestStandardizeElectionTypes(t *testing.T) {
	table := record.New(record.ColCandidateName, record.ColElectionType)
	table.Append(record.Row{record.ColCandidateName: "A", record.ColElectionType: "Primary"})
	table.Append(record.Row{record.ColCandidateName: "B", record.ColElectionType: "Primary, General"})
	table.Append(record.Row{record.ColCandidateName: "C", record.ColElectionType: "Recall"})
	table.Append(record.Row{record.ColCandidateName: "D", record.ColElectionType: nil})

	StandardizeElectionTypes(table)
	if table.HasColumn(record.ColElectionType) {
		t.Fatal("election_type column should be dropped")
	}
	if table.Rows[0][record.ColRanInPrimary] != true || table.Rows[0][record.ColRanInGeneral] != false {
		t.Fatalf("row A flags wrong: %+v", table.Rows[0])
	}
	if table.Rows[1][record.ColRanInPrimary] != true || table.Rows[1][record.ColRanInGeneral] != true {
		t.Fatalf("row B flags wrong: %+v", table.Rows[1])
	}
	if notes := record.String(table.Rows[1][record.ColElectionTypeNotes]); notes != "Original: Primary, General" {
		t.Fatalf("row B notes = %q", notes)
	}
	if notes := record.String(table.Rows[2][record.ColElectionTypeNotes]); notes != "Unknown: Recall" {
		t.Fatalf("row C notes = %q", notes)
	}
	if table.Rows[3][record.ColRanInPrimary] != false {
		t.Fatal("row D should have no flags set")
	}
}

func TestDedupeStatewide(t *testing.T) {
	// Pipeline rows always carry file_source and row_index, and the
	// per-county copies of a statewide candidate differ in row_index.
	// The comparison has to skip provenance or it matches nothing.
	table := record.New(record.ColCandidateName, record.ColOffice, record.ColCounty,
		record.ColStableID, record.ColFileSource, record.ColRowIndex)
	table.Append(record.Row{
		record.ColCandidateName: "Jane Doe", record.ColOffice: "Governor",
		record.ColCounty: "Polk", record.ColStableID: "id1",
		record.ColFileSource: "iowa_candidates.csv", record.ColRowIndex: 0,
	})
	table.Append(record.Row{
		record.ColCandidateName: "Jane Doe", record.ColOffice: "Governor",
		record.ColCounty: "Linn", record.ColStableID: "id2",
		record.ColFileSource: "iowa_candidates.csv", record.ColRowIndex: 1,
	})
	table.Append(record.Row{
		record.ColCandidateName: "John Roe", record.ColOffice: "Sheriff",
		record.ColCounty: "Polk", record.ColStableID: "id3",
		record.ColFileSource: "iowa_candidates.csv", record.ColRowIndex: 2,
	})

	out := DedupeStatewide(table)
	if out.Len() != 2 {
		t.Fatalf("expected county duplicates to collapse to 2 rows, got %d", out.Len())
	}
	if !record.IsNull(out.Rows[0][record.ColCounty]) {
		t.Fatalf("statewide survivor county = %v, want null", out.Rows[0][record.ColCounty])
	}
	if got := record.String(out.Rows[1][record.ColCounty]); got != "Polk" {
		t.Fatalf("county-specific row county = %q", got)
	}
}

func TestDedupeByStableID(t *testing.T) {
	table := record.New(record.ColCandidateName, record.ColStableID)
	table.Append(record.Row{record.ColCandidateName: "Jane Doe", record.ColStableID: "id1"})
	table.Append(record.Row{record.ColCandidateName: "Jane D.", record.ColStableID: "id1"})
	table.Append(record.Row{record.ColCandidateName: "John Roe", record.ColStableID: nil})

	out := DedupeByStableID(table)
	if out.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", out.Len())
	}
	if got := record.String(out.Rows[0][record.ColCandidateName]); got != "Jane Doe" {
		t.Fatalf("kept row = %q, want first occurrence", got)
	}
}

func TestApplyStandardizesPartyVariants(t *testing.T) {
	iowa := record.New(record.ColCandidateName, record.ColOffice, record.ColParty)
	iowa.Append(record.Row{record.ColCandidateName: "Jane Doe", record.ColOffice: "Governor", record.ColParty: "DEM"})
	iowa.Append(record.Row{record.ColCandidateName: "John Roe", record.ColOffice: "Governor", record.ColParty: "Democrat"})

	std := NewStandardizer(DefaultOptions(), logging.NewNop())
	out, _ := std.Apply(map[string]*record.Table{"iowa": iowa})
	for i := range 2 {
		if got := record.String(out.Rows[i][record.ColParty]); got != "Democratic" {
			t.Fatalf("row %d party = %q", i, got)
		}
	}
	if got := record.String(out.Rows[0][record.ColSourceParty]); got != "DEM" {
		t.Fatalf("source_party = %q", got)
	}
}

func TestApplyInfersPartyFromOffice(t *testing.T) {
	table := record.New(record.ColCandidateName, record.ColOffice, record.ColParty)
	table.Append(record.Row{record.ColCandidateName: "Jane Doe", record.ColOffice: "State Senate (D)", record.ColParty: nil})

	std := NewStandardizer(DefaultOptions(), logging.NewNop())
	out, _ := std.Apply(map[string]*record.Table{"iowa": table})
	if got := record.String(out.Rows[0][record.ColParty]); got != "Democratic" {
		t.Fatalf("party = %q, want inferred Democratic", got)
	}
}

func TestApplyPreservesSourceOfficeAndDistrict(t *testing.T) {
	table := record.New(record.ColCandidateName, record.ColOffice, record.ColDistrict, record.ColParty)
	table.Append(record.Row{
		record.ColCandidateName: "Jane Doe",
		record.ColOffice:        "U.S. Representative, 3rd District",
		record.ColDistrict:      nil,
		record.ColParty:         "REP",
	})

	std := NewStandardizer(DefaultOptions(), logging.NewNop())
	out, _ := std.Apply(map[string]*record.Table{"iowa": table})
	row := out.Rows[0]
	if got := record.String(row[record.ColOffice]); got != "US House" {
		t.Fatalf("office = %q", got)
	}
	if got := record.String(row[record.ColSourceOffice]); got != "U.S. Representative, 3rd District" {
		t.Fatalf("source_office = %q", got)
	}
	if got := record.String(row[record.ColDistrict]); got != "3" {
		t.Fatalf("district = %q, want recovered from office text", got)
	}
}

func TestApplyEmptyInput(t *testing.T) {
	std := NewStandardizer(DefaultOptions(), logging.NewNop())
	out, report := std.Apply(map[string]*record.Table{})
	if !out.Empty() {
		t.Fatalf("expected empty table, got %d rows", out.Len())
	}
	if report.Degraded() {
		t.Fatalf("report = %+v, empty input is not a degradation", report)
	}
}

func TestApplyMovesSingleWordFirstName(t *testing.T) {
	table := record.New(record.ColCandidateName, record.ColOffice, record.ColParty,
		record.ColFirstName, record.ColLastName)
	table.Append(record.Row{
		record.ColCandidateName: "Madonna",
		record.ColOffice:        "Mayor",
		record.ColFirstName:     "Madonna",
		record.ColLastName:      nil,
	})

	std := NewStandardizer(DefaultOptions(), logging.NewNop())
	out, _ := std.Apply(map[string]*record.Table{"iowa": table})
	row := out.Rows[0]
	if !record.IsNull(row[record.ColFirstName]) {
		t.Fatalf("first_name = %v, want null", row[record.ColFirstName])
	}
	if got := record.String(row[record.ColLastName]); got != "Madonna" {
		t.Fatalf("last_name = %q", got)
	}
}
