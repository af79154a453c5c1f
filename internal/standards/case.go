package standards

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// preserveUppercase are tokens kept in their canonical form when
// casing office, name, and place text.
var preserveUppercase = map[string]string{
	"JD": "JD", "MD": "MD", "PHD": "PhD", "MBA": "MBA", "CPA": "CPA",
	"ESQ": "Esq", "JR": "Jr", "SR": "Sr",
	"II": "II", "III": "III", "IV": "IV", "V": "V", "VI": "VI",
	"VII": "VII", "VIII": "VIII", "IX": "IX", "X": "X",
	"US": "US",
}

var preserveTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^\d+[A-Z]$`),
	regexp.MustCompile(`^[A-Z]\d+$`),
	regexp.MustCompile(`^\d+\.\d+$`),
	regexp.MustCompile(`^\d+-\d+$`),
}

// SmartProperCase capitalizes each word while keeping acronyms,
// numerals, and generational suffixes in their canonical form.
// Idempotent.
func SmartProperCase(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if canonical, ok := preserveUppercase[strings.ToUpper(word)]; ok {
			words[i] = canonical
			continue
		}
		if preserveToken(word) {
			continue
		}
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func preserveToken(word string) bool {
	for _, p := range preserveTokenPatterns {
		if p.MatchString(word) {
			return true
		}
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// TitleCase title-cases free text without the preservation rules of
// SmartProperCase. Casers are stateful, so one is built per call.
func TitleCase(text string) string {
	return cases.Title(language.Und).String(text)
}

var nonDigits = regexp.MustCompile(`\D`)

// DigitsOnly strips formatting from phone numbers. Returns "" when no
// digits remain.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// suffixForms normalizes generational suffix casing and punctuation.
var suffixForms = map[string]string{
	"sr": "Sr.", "jr": "Jr.",
	"ii": "II", "iii": "III", "iv": "IV", "v": "V",
	"vi": "VI", "vii": "VII", "viii": "VIII", "ix": "IX", "x": "X",
}

// StandardizeSuffix returns the canonical form of a generational
// suffix, or the input unchanged when unrecognized.
func StandardizeSuffix(suffix string) string {
	key := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(suffix), "."))
	if canonical, ok := suffixForms[key]; ok {
		return canonical
	}
	return suffix
}

// countyAbbreviations expands source-specific county codes. Florida
// exports truncate county names to three letters.
var countyAbbreviations = map[string]string{
	"Lee": "Lee County",
	"Hil": "Hillsborough County",
	"Dad": "Dade County",
	"Bro": "Broward County",
	"Pal": "Palm Beach County",
	"Pas": "Pasco County",
	"Ora": "Orange County",
	"Man": "Manatee County",
	"Stj": "St. Johns County",
	"Cll": "Collier County",
	"K":   "Kent",
	"N":   "New Castle",
	"S":   "Sussex",
}

// StandardizeCounty expands known county abbreviations.
func StandardizeCounty(county string) string {
	county = strings.TrimSpace(county)
	if full, ok := countyAbbreviations[county]; ok {
		return full
	}
	return county
}

var yyyymmdd = regexp.MustCompile(`^\d{8}$`)

// FormatElectionDate strips an election-type suffix like "-GEN" and
// rewrites an 8-digit YYYYMMDD token as YYYY-MM-DD. Anything else
// passes through unchanged.
func FormatElectionDate(date string) string {
	date = strings.TrimSpace(strings.ReplaceAll(date, "-GEN", ""))
	if yyyymmdd.MatchString(date) {
		return date[:4] + "-" + date[4:6] + "-" + date[6:8]
	}
	return date
}
