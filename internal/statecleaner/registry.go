package statecleaner

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

var districtNumber = regexp.MustCompile(`\d+`)

// splitRunningMate drops a "/ Running Mate" tail and flips a
// "Last, First" layout into display order. Used by states whose
// exports carry presidential tickets as a single field.
func splitRunningMate(name string) string {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	if parts := strings.SplitN(name, ",", 2); len(parts) == 2 {
		name = strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0])
	}
	return strings.Join(strings.Fields(name), " ")
}

// bareDistrictNumber reduces formats like "District 12" or "HD 3" to
// the number itself.
func bareDistrictNumber(district string) string {
	if m := districtNumber.FindString(district); m != "" {
		return m
	}
	return district
}

var stateRules = []rules{
	{state: "alaska", display: "Alaska", normalizeName: splitRunningMate, cleanDistrict: bareDistrictNumber},
	{state: "arkansas", display: "Arkansas"},
	{state: "colorado", display: "Colorado"},
	{state: "florida", display: "Florida", cleanDistrict: bareDistrictNumber},
	{state: "georgia", display: "Georgia"},
	{state: "hawaii", display: "Hawaii", cleanDistrict: bareDistrictNumber},
	{state: "idaho", display: "Idaho"},
	{state: "iowa", display: "Iowa"},
	{state: "kansas", display: "Kansas"},
	{state: "louisiana", display: "Louisiana"},
	{state: "maryland", display: "Maryland"},
	{state: "massachusetts", display: "Massachusetts"},
	{state: "minnesota", display: "Minnesota", cleanDistrict: bareDistrictNumber},
	{state: "missouri", display: "Missouri"},
	{state: "new_york", display: "New York", normalizeName: splitRunningMate},
	{state: "north_carolina", display: "North Carolina"},
	{state: "north_dakota", display: "North Dakota"},
	{state: "pennsylvania", display: "Pennsylvania"},
	{state: "south_carolina", display: "South Carolina"},
	{state: "south_dakota", display: "South Dakota"},
	{state: "utah", display: "Utah"},
	{state: "vermont", display: "Vermont"},
	{state: "virginia", display: "Virginia"},
	{state: "west_virginia", display: "West Virginia"},
	{state: "wyoming", display: "Wyoming", cleanDistrict: bareDistrictNumber},
}

// CleanerFor returns the content cleaner for one state.
func CleanerFor(state string, logger *slog.Logger) (Cleaner, error) {
	for _, r := range stateRules {
		if r.state == state {
			return newStateCleaner(r, logger), nil
		}
	}
	return nil, fmt.Errorf("no state cleaner for %q", state)
}

// Supported reports whether a cleaner exists for the state.
func Supported(state string) bool {
	for _, r := range stateRules {
		if r.state == state {
			return true
		}
	}
	return false
}
