package standards

import (
	"regexp"
	"strings"
)

// districtTailPatterns strip district, seat, and locality tails off
// office text before mapping. Anchored at the end so mid-title words
// survive.
var districtTailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*\d+[a-z]*\s*district\s*$`),
	regexp.MustCompile(`(?i)\s*,?\s*district\s*:?\s*\d+[a-z]*\s*$`),
	regexp.MustCompile(`(?i)\s*,?\s*\d+(?:st|nd|rd|th)?\s+district\s*$`),
	regexp.MustCompile(`(?i)\s*,?\s*dist\.?\s+\d+\s*$`),
	regexp.MustCompile(`(?i)\s*,?\s*dist\.?\s+[ivxlcdm]+\s*$`),
	regexp.MustCompile(`(?i)\s*\(\s*(?:dist(?:rict)?\s*:?\s*)?\d+[a-z]*(?:\s*district)?\s*\)\s*$`),
	regexp.MustCompile(`(?i)\s*position\s*\d+\s*$`),
	regexp.MustCompile(`(?i)\s*division\s*[a-z]?-?\d+\s*$`),
	regexp.MustCompile(`(?i)\s*seat\s*\d+\s*$`),
	regexp.MustCompile(`(?i)\s*place\s*\d+\s*$`),
	regexp.MustCompile(`(?i)\s*ward\s*\d+\s*$`),
	regexp.MustCompile(`(?i)\s*,\s*[a-z\s]+county\s*$`),
	regexp.MustCompile(`(?i)\s*\([a-z\s]+county\)\s*$`),
}

var officeDistrictPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)district\s*:?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th)\s+district`),
	regexp.MustCompile(`(?i)\bdist\.?\s+(\d+)`),
	regexp.MustCompile(`(?i)seat\s*(\d+)`),
	regexp.MustCompile(`(?i)position\s*(\d+)`),
	regexp.MustCompile(`(?i)ward\s*(\d+)`),
}

// officeMappings sends cleaned office text, lowercased, to the
// national office vocabulary.
var officeMappings = map[string]string{
	"president of the united states": "US President",
	"president of united states":     "US President",
	"u.s. president":                 "US President",
	"us president":                   "US President",
	"united states president":        "US President",
	"president and vice president":   "US President",
	"president/vice president":       "US President",

	"u.s. senator":          "US Senate",
	"us senator":            "US Senate",
	"u.s. senate":           "US Senate",
	"us senate":             "US Senate",
	"united states senator": "US Senate",
	"united states senate":  "US Senate",

	"u.s. representative":                    "US House",
	"us representative":                      "US House",
	"united states representative":           "US House",
	"u.s. house":                             "US House",
	"us house":                               "US House",
	"united states house":                    "US House",
	"u.s. house of representatives":          "US House",
	"us house of representatives":            "US House",
	"united states house of representatives": "US House",
	"representative in congress":             "US House",
	"member of congress":                     "US House",

	"governor":             "Governor",
	"governor/lt governor": "Governor",
	"lieutenant governor":  "Lieutenant Governor",
	"lt. governor":         "Lieutenant Governor",
	"lt governor":          "Lieutenant Governor",

	"secretary of state":          "Secretary of State",
	"attorney general":            "State Attorney General",
	"state attorney general":      "State Attorney General",
	"treasurer":                   "State Treasurer",
	"state treasurer":             "State Treasurer",
	"treasurer of state":          "State Treasurer",
	"auditor":                     "State Auditor",
	"state auditor":               "State Auditor",
	"auditor of state":            "State Auditor",
	"commissioner of agriculture": "Agriculture Commissioner",
	"agriculture commissioner":    "Agriculture Commissioner",
	"insurance commissioner":      "Insurance Commissioner",

	"state senator":            "State Senate",
	"state senate":             "State Senate",
	"senate":                   "State Senate",
	"state representative":     "State House",
	"state house":              "State House",
	"house of representatives": "State House",
	"state assembly":           "State House",
	"house of delegates":       "State House",

	"supreme court justice":    "Supreme Court Justice",
	"justice of supreme court": "Supreme Court Justice",
	"judge":                    "Judge",
	"district judge":           "Judge",
	"circuit judge":            "Judge",
	"probate judge":            "Judge",
	"probate/magistrate judge": "Judge",
	"magistrate":               "Judge",

	"mayor":                     "Mayor",
	"city council":              "City Council",
	"city council member":       "City Council",
	"councilmember":             "City Council",
	"city commissioner":         "City Council",
	"city commissioner/council": "City Council",
	"county commissioner":       "County Commissioner",
	"commissioner":              "Commissioner",
	"school board":              "School Board",
	"school board member":       "School Board",
	"board of education":        "School Board",
	"sheriff":                   "Sheriff",
	"county sheriff":            "Sheriff",
	"county clerk":              "County Clerk",
	"clerk":                     "Clerk",
	"clerk/treasurer":           "Clerk/Treasurer",
	"assessor":                  "Assessor",
	"coroner":                   "Coroner",
	"district attorney":         "District Attorney",
	"state's attorney":          "District Attorney",
	"county attorney":           "County Attorney",
}

var (
	partyLetterTail = regexp.MustCompile(`(?i)\s*\([rd]\)\s*$`)
	countyPrefix    = regexp.MustCompile(`(?i)^[a-z\s]+county\s+`)
	localityPrefix  = regexp.MustCompile(`(?i)^(?:city|town)\s+of\s+`)
)

// CleanOfficeName strips district tails, locality prefixes, and
// padding from office text.
func CleanOfficeName(office string) string {
	office = strings.TrimSpace(office)
	for _, p := range districtTailPatterns {
		office = p.ReplaceAllString(office, "")
	}
	office = partyLetterTail.ReplaceAllString(office, "")
	office = countyPrefix.ReplaceAllString(office, "")
	office = localityPrefix.ReplaceAllString(office, "")
	office = strings.TrimRight(strings.Join(strings.Fields(office), " "), ",")
	return strings.TrimSpace(office)
}

// StandardizeOffice maps office text to the national vocabulary.
// Returns the standardized name and whether a mapping matched; when
// none does, the cleaned, smart-cased source text comes back.
func StandardizeOffice(office string) (string, bool) {
	cleaned := CleanOfficeName(office)
	if cleaned == "" {
		return "", false
	}
	if mapped, ok := officeMappings[strings.ToLower(cleaned)]; ok {
		return mapped, true
	}
	return SmartProperCase(cleaned), false
}

// DistrictFromOfficeText pulls a numeric district out of office text,
// for rows whose district column was empty.
func DistrictFromOfficeText(office string) string {
	for _, p := range officeDistrictPatterns {
		if m := p.FindStringSubmatch(office); m != nil {
			return m[1]
		}
	}
	return ""
}

// StatewideOffices are offices that never carry a district.
var StatewideOffices = map[string]bool{
	"Governor":               true,
	"Secretary of State":     true,
	"State Attorney General": true,
	"State Treasurer":        true,
	"US Senate":              true,
	"US President":           true,
}
