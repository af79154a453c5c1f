package structural

import (
	"fmt"
	"log/slog"
	"sort"

	"filings/internal/record"
)

// profiles covers every state with a supported raw export. States with
// well-behaved headers rely entirely on keyword matching; the rest pin
// the irregular columns explicitly.
var profiles = []Profile{
	{State: "alaska", DisplayName: "Alaska"},
	{State: "arkansas", DisplayName: "Arkansas"},
	{
		State:       "colorado",
		DisplayName: "Colorado",
		Exact: map[string][]string{
			record.ColCandidateName: {"name"},
			record.ColOffice:        {"office"},
			record.ColParty:         {"party"},
			record.ColDistrict:      {"district"},
		},
	},
	{
		State:       "florida",
		DisplayName: "Florida",
		Exact: map[string][]string{
			record.ColOffice: {"OfficeDesc", "OfficeCode"},
		},
	},
	{
		State:       "georgia",
		DisplayName: "Georgia",
		Exact: map[string][]string{
			record.ColCandidateName: {"Candidate Name"},
			record.ColOffice:        {"Office Name"},
			record.ColParty:         {"Candidate Party"},
			record.ColCounty:        {"County (If Local Contest)"},
			record.ColCity:          {"City"},
			record.ColZipCode:       {"Zip"},
			record.ColElectionDate:  {"Election Date Name"},
		},
		Combine: map[string][]string{
			record.ColAddress: {"Street Number", "Street Name", "Unit/Apt/Suite"},
		},
	},
	{State: "hawaii", DisplayName: "Hawaii"},
	{State: "idaho", DisplayName: "Idaho"},
	{State: "iowa", DisplayName: "Iowa"},
	{State: "kansas", DisplayName: "Kansas"},
	{
		State:       "louisiana",
		DisplayName: "Louisiana",
		Exact: map[string][]string{
			record.ColOffice: {"OfficeTitle"},
			record.ColParty:  {"Party"},
		},
		Combine: map[string][]string{
			record.ColCandidateName: {"BallotFirstName", "BallotLastName", "BallotSuffix"},
		},
		DistrictFromOffice: true,
	},
	{State: "maryland", DisplayName: "Maryland"},
	{State: "massachusetts", DisplayName: "Massachusetts"},
	{State: "minnesota", DisplayName: "Minnesota"},
	{State: "missouri", DisplayName: "Missouri"},
	{State: "new_york", DisplayName: "New York", Identifiers: []string{"new_york", "new york", "ny_"}},
	{
		State:       "north_carolina",
		DisplayName: "North Carolina",
		Identifiers: []string{"north_carolina", "north carolina", "nc_"},
		Exact: map[string][]string{
			record.ColCandidateName: {"name_on_ballot"},
			record.ColOffice:        {"contest_name"},
			record.ColParty:         {"party_candidate", "party_contest"},
		},
		Combine: map[string][]string{
			record.ColCandidateName: {"first_name", "middle_name", "last_name", "name_suffix_lbl"},
		},
	},
	{State: "north_dakota", DisplayName: "North Dakota", Identifiers: []string{"north_dakota", "north dakota", "nd_"}},
	{
		State:       "pennsylvania",
		DisplayName: "Pennsylvania",
		Exact: map[string][]string{
			record.ColCandidateName: {"Name"},
			record.ColOffice:        {"Office"},
			record.ColParty:         {"Party"},
			record.ColCounty:        {"County"},
			record.ColDistrict:      {"District Name"},
			record.ColCity:          {"Municipality"},
		},
	},
	{State: "south_carolina", DisplayName: "South Carolina", Identifiers: []string{"south_carolina", "south carolina", "sc_"}},
	{State: "south_dakota", DisplayName: "South Dakota", Identifiers: []string{"south_dakota", "south dakota", "sd_"}},
	{State: "utah", DisplayName: "Utah"},
	{State: "vermont", DisplayName: "Vermont"},
	{
		State:       "virginia",
		DisplayName: "Virginia",
		Exact: map[string][]string{
			record.ColCandidateName: {"Candidate Name"},
			record.ColOffice:        {"Office Title"},
			record.ColParty:         {"Political Party"},
			record.ColCounty:        {"Locality Name"},
			record.ColAddress:       {"Campaign Address Line 1", "Address 1"},
			record.ColEmail:         {"Campaign Email", "Email"},
			record.ColPhone:         {"Campaign Phone", "Phone"},
		},
	},
	{State: "west_virginia", DisplayName: "West Virginia", Identifiers: []string{"west_virginia", "west virginia", "wv_"}},
	{
		State:       "wyoming",
		DisplayName: "Wyoming",
		Exact: map[string][]string{
			record.ColCandidateName: {"Name"},
			record.ColOffice:        {"Office"},
			record.ColParty:         {"Party"},
			record.ColFilingDate:    {"Date Filed"},
		},
	},
}

// States lists the supported state keys in sorted order.
func States() []string {
	keys := make([]string, 0, len(profiles))
	for _, p := range profiles {
		keys = append(keys, p.State)
	}
	sort.Strings(keys)
	return keys
}

// Supported reports whether a structural profile exists for the state.
func Supported(state string) bool {
	_, err := profileFor(state)
	return err == nil
}

// CleanerFor builds the structural cleaner for one state.
func CleanerFor(state string, logger *slog.Logger) (*Cleaner, error) {
	p, err := profileFor(state)
	if err != nil {
		return nil, err
	}
	return NewCleaner(p, logger), nil
}

func profileFor(state string) (Profile, error) {
	for _, p := range profiles {
		if p.State == state {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("no structural profile for state %q", state)
}
