package standards

import (
	"regexp"
	"strings"
)

type partyRule struct {
	pattern *regexp.Regexp
	party   string
}

// partyIndicators are tried in order against office text when a row
// has no party; the first match wins. Parenthetical letter codes come
// first because they are the least ambiguous.
var partyIndicators = []partyRule{
	{regexp.MustCompile(`\(D\)`), "Democratic"},
	{regexp.MustCompile(`\(R\)`), "Republican"},
	{regexp.MustCompile(`\(I\)`), "Independent"},
	{regexp.MustCompile(`\(L\)`), "Libertarian"},
	{regexp.MustCompile(`\(G\)`), "Green Party"},
	{regexp.MustCompile(`\(C\)`), "Constitution Party"},
	{regexp.MustCompile(`\(P\)`), "Progressive"},
	{regexp.MustCompile(`\(W\)`), "Working Families"},

	{regexp.MustCompile(`Democratic-Farmer-Labor`), "Democratic"},
	{regexp.MustCompile(`\bDFL\b`), "Democratic"},
	{regexp.MustCompile(`Alaska Independence`), "Alaska Independence Party"},
	{regexp.MustCompile(`Vermont Progressive`), "Vermont Progressive Party"},

	{regexp.MustCompile(`Democratic Party`), "Democratic"},
	{regexp.MustCompile(`Republican Party`), "Republican"},
	{regexp.MustCompile(`Libertarian Party`), "Libertarian"},
	{regexp.MustCompile(`Green Party`), "Green Party"},
	{regexp.MustCompile(`Constitution Party`), "Constitution Party"},
	{regexp.MustCompile(`Working Families Party`), "Working Families"},

	{regexp.MustCompile(`\bDEM\b`), "Democratic"},
	{regexp.MustCompile(`\bREP\b`), "Republican"},
	{regexp.MustCompile(`\bIND\b`), "Independent"},
	{regexp.MustCompile(`\bLIB\b`), "Libertarian"},
	{regexp.MustCompile(`\bGRN\b`), "Green Party"},
	{regexp.MustCompile(`\bWFP\b`), "Working Families"},

	{regexp.MustCompile(`- Democratic`), "Democratic"},
	{regexp.MustCompile(`- Republican`), "Republican"},
	{regexp.MustCompile(`- Independent`), "Independent"},
	{regexp.MustCompile(`- Libertarian`), "Libertarian"},

	{regexp.MustCompile(`^Democratic\s+`), "Democratic"},
	{regexp.MustCompile(`^Republican\s+`), "Republican"},
	{regexp.MustCompile(`^Libertarian\s+`), "Libertarian"},
}

// InferPartyFromOffice returns a party read out of office text, or ""
// when no indicator matches.
func InferPartyFromOffice(office string) string {
	for _, rule := range partyIndicators {
		if rule.pattern.MatchString(office) {
			return rule.party
		}
	}
	return ""
}

var datePartyPattern = regexp.MustCompile(`^(\d{1,2}[/.\-]\d{1,2}([/.\-]\d{2,4})?|\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2})$`)

// partyVariations maps title-cased source strings to standard names.
// Only obvious duplicates and abbreviations are mapped; unknown
// parties pass through in title case.
var partyVariations = map[string]string{
	"Democrat":                 "Democratic",
	"Dem":                      "Democratic",
	"Democratic Party":         "Democratic",
	"Democractic":              "Democratic",
	"D":                        "Democratic",
	"Rep":                      "Republican",
	"Republican Party":         "Republican",
	"R":                        "Republican",
	"G.o.p.":                   "Republican",
	"G.o.p":                    "Republican",
	"Gop":                      "Republican",
	"Grand Old":                "Republican",
	"The Republican":           "Republican",
	"Ind":                      "Independent",
	"I":                        "Independent",
	"Non-Partisan":             "Nonpartisan",
	"Non Partisan":             "Nonpartisan",
	"Non":                      "Nonpartisan",
	"Np":                       "Nonpartisan",
	"Nonaffiliated":            "Nonpartisan",
	"Unaffiliated":             "Nonpartisan",
	"Una":                      "Nonpartisan",
	"No Party":                 "Nonpartisan",
	"No Party Preference":      "Nonpartisan",
	"No Party Affiliation":     "Nonpartisan",
	"No Affiliation":           "Nonpartisan",
	"Undeclared":               "Nonpartisan",
	"Nonpartisan Special":      "Nonpartisan",
	"Write-In":                 "",
	"Lib":                      "Libertarian",
	"Lbt":                      "Libertarian",
	"L":                        "Libertarian",
	"Green":                    "Green Party",
	"Greens":                   "Green Party",
	"Grn":                      "Green Party",
	"Gre":                      "Green Party",
	"Green Party Of The United States": "Green Party",
	"Constitution":             "Constitution Party",
	"Constitutional":           "Constitution Party",
	"Constitutional Party":     "Constitution Party",
	"Con":                      "Constitution Party",
	"Cst":                      "Constitution Party",
	"Democratic-Farmer-Labor":  "Democratic",
	"Dfl":                      "Democratic",
	"Republican Party Of Iowa": "Republican",
}

// StandardizeParty maps a raw party string to its standard name.
// Date-shaped values and data entry noise become "Unknown"; single
// stray characters outside the known letter codes likewise.
func StandardizeParty(party string) string {
	party = strings.TrimSpace(party)
	if party == "-" {
		return "Unaffiliated"
	}
	if datePartyPattern.MatchString(party) {
		return "Unknown"
	}
	switch party {
	case "", "N/A", "NA", "n/a", "na", "None", "none", "NULL", "null":
		return "Unknown"
	}
	if len(party) == 1 {
		switch party {
		case "D", "R", "I", "L":
		default:
			return "Unknown"
		}
	}
	titled := TitleCase(party)
	if mapped, ok := partyVariations[titled]; ok {
		return mapped
	}
	return titled
}
