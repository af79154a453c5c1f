package structural

import (
	"regexp"
	"strings"

	"filings/internal/record"
)

// defaultKeywords maps a structured field to the column-header fragments
// that commonly carry it in state filing exports. Matching is
// case-insensitive substring matching over the source headers.
var defaultKeywords = map[string][]string{
	record.ColCandidateName: {"name", "candidate"},
	record.ColOffice:        {"office", "contest", "position", "seat"},
	record.ColParty:         {"party", "affiliation"},
	record.ColCounty:        {"county", "parish"},
	record.ColDistrict:      {"district", "dist"},
	record.ColAddress:       {"address", "addr", "street"},
	record.ColCity:          {"city", "town"},
	record.ColZipCode:       {"zip", "postal"},
	record.ColPhone:         {"phone", "tel"},
	record.ColEmail:         {"email", "e-mail"},
	record.ColWebsite:       {"website", "web", "url"},
	record.ColFacebook:      {"facebook", "fb"},
	record.ColTwitter:       {"twitter"},
	record.ColFilingDate:    {"filing date", "date filed", "filing", "filed"},
	record.ColElectionDate:  {"election date"},
	record.ColElectionType:  {"election type", "type"},
	record.ColElectionYear:  {"year", "election"},
}

var yearPattern = regexp.MustCompile(`20\d{2}`)

// matchColumns returns source headers containing any of the keyword
// fragments, in header order.
func matchColumns(columns []string, keywords []string) []string {
	var matched []string
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, col)
				break
			}
		}
	}
	return matched
}

// extractByKeywords returns the first non-blank value from any column
// whose header matches one of the keywords.
func extractByKeywords(row record.Row, columns []string, keywords []string) string {
	for _, col := range matchColumns(columns, keywords) {
		if v := record.TrimString(row[col]); v != "" && !isNullToken(v) {
			return v
		}
	}
	return ""
}

// extractExact returns the first non-blank value from the named columns.
func extractExact(row record.Row, columns []string) string {
	for _, col := range columns {
		if v := record.TrimString(row[col]); v != "" && !isNullToken(v) {
			return v
		}
	}
	return ""
}

// combineParts joins the non-blank values of the named columns with a
// single space. Used for exports that split names across columns.
func combineParts(row record.Row, columns []string) string {
	var parts []string
	for _, col := range columns {
		if v := record.TrimString(row[col]); v != "" && !isNullToken(v) {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// extractEmail matches like extractByKeywords but only accepts values
// that look like an address. Filings often put consent flags in
// email-labelled columns.
func extractEmail(row record.Row, columns []string, keywords []string) string {
	for _, col := range matchColumns(columns, keywords) {
		v := record.TrimString(row[col])
		if v != "" && strings.Contains(v, "@") {
			return v
		}
	}
	return ""
}

// extractYear pulls a four-digit election year out of any matching
// column value, not only values that are purely a year.
func extractYear(row record.Row, columns []string, keywords []string) string {
	for _, col := range matchColumns(columns, keywords) {
		v := record.TrimString(row[col])
		if v == "" {
			continue
		}
		if m := yearPattern.FindString(v); m != "" {
			return m
		}
	}
	return ""
}

var districtPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)district\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th)\s+district`),
}

// districtFromOffice parses a numeric district out of office text for
// states that fold the district into the contest name.
func districtFromOffice(office string) string {
	for _, p := range districtPatterns {
		if m := p.FindStringSubmatch(office); m != nil {
			return m[1]
		}
	}
	return ""
}

func isNullToken(v string) bool {
	switch strings.ToLower(v) {
	case "nan", "none", "null", "n/a":
		return true
	}
	return false
}
