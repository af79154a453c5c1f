package standards

import (
	"sort"
	"strings"

	"filings/internal/record"
)

// stateDisplayNames covers multi-word and otherwise irregular state
// keys; everything else is plain snake_case to Title Case.
var stateDisplayNames = map[string]string{
	"new_york":       "New York",
	"new_jersey":     "New Jersey",
	"new_mexico":     "New Mexico",
	"new_hampshire":  "New Hampshire",
	"north_carolina": "North Carolina",
	"north_dakota":   "North Dakota",
	"south_carolina": "South Carolina",
	"south_dakota":   "South Dakota",
	"west_virginia":  "West Virginia",
	"rhode_island":   "Rhode Island",
}

// StateDisplayName turns a snake_case state key into its display form.
func StateDisplayName(key string) string {
	if display, ok := stateDisplayNames[key]; ok {
		return display
	}
	return TitleCase(strings.ReplaceAll(key, "_", " "))
}

// stateAbbreviations for the address_state column.
var stateAbbreviations = map[string]string{
	"alaska": "AK", "arkansas": "AR", "arizona": "AZ", "colorado": "CO",
	"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maryland": "MD",
	"massachusetts": "MA", "minnesota": "MN", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "new hampshire": "NH",
	"new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wyoming": "WY",
}

// StateAbbreviation returns the two-letter postal form. Unknown input
// comes back uppercased.
func StateAbbreviation(state string) string {
	if abbr, ok := stateAbbreviations[strings.ToLower(strings.TrimSpace(state))]; ok {
		return abbr
	}
	return strings.ToUpper(strings.TrimSpace(state))
}

// Merge concatenates per-state tables into one, stamping the display
// state name on every row. States merge in sorted key order so output
// is deterministic; rows keep their order within each state. Column
// labels are deduplicated per table before concatenation.
func Merge(tables map[string]*record.Table) *record.Table {
	keys := make([]string, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := record.New()
	for _, key := range keys {
		table := tables[key]
		if table == nil || table.Empty() {
			continue
		}
		part := table.Clone()
		part.DedupeColumns()
		part.EnsureColumns(record.ColState)
		part.SetAll(record.ColState, StateDisplayName(key))
		out.Concat(part)
	}
	return out
}
