package statecleaner

import (
	"regexp"
	"strings"
)

// NameParts is the decomposition of a candidate name.
type NameParts struct {
	First    string
	Middle   string
	Last     string
	Prefix   string
	Suffix   string
	Nickname string
	Display  string
}

var (
	nicknamePattern = regexp.MustCompile("[\"'“”‘’]([^\"'“”‘’]+)[\"'“”‘’]")
	prefixPattern   = regexp.MustCompile(`(?i)^(Dr|Mr|Mrs|Ms|Miss|Prof|Rev|Hon|Sen|Rep|Gov|Lt|Col|Gen|Adm|Capt|Maj|Sgt|Cpl|Pvt)\.?\s+`)
	suffixPattern   = regexp.MustCompile(`(?i)\s*\.?\s*\b(Jr|Sr|II|III|IV|V|VI|VII|VIII|IX|X)\b\.?`)
	spacePattern    = regexp.MustCompile(`\s+`)
)

// ParseName splits a candidate name into its components. Handles both
// "First Middle Last" and "Last, First Middle" layouts, quoted
// nicknames, honorific prefixes, and generational suffixes.
func ParseName(name string) NameParts {
	var p NameParts
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"'`)
	name = spacePattern.ReplaceAllString(name, " ")
	if name == "" {
		return p
	}

	if m := nicknamePattern.FindStringSubmatch(name); m != nil {
		p.Nickname = strings.TrimSpace(m[1])
		name = strings.TrimSpace(nicknamePattern.ReplaceAllString(name, ""))
		name = spacePattern.ReplaceAllString(name, " ")
	}
	if m := prefixPattern.FindStringSubmatch(name); m != nil {
		p.Prefix = m[1]
		name = strings.TrimSpace(prefixPattern.ReplaceAllString(name, ""))
	}
	if m := suffixPattern.FindStringSubmatch(name); m != nil {
		p.Suffix = m[1]
		name = strings.TrimSpace(suffixPattern.ReplaceAllString(name, ""))
	}

	if strings.Contains(name, ",") {
		parts := splitTrim(name, ",")
		if len(parts) >= 2 {
			p.Last = parts[0]
			firstMiddle := strings.Fields(parts[1])
			switch {
			case len(firstMiddle) == 1:
				p.First = firstMiddle[0]
			case len(firstMiddle) >= 2:
				p.First = firstMiddle[0]
				p.Middle = strings.Join(firstMiddle[1:], " ")
			}
		} else if len(parts) == 1 {
			p.Last = parts[0]
		}
	} else {
		parts := strings.Fields(name)
		switch len(parts) {
		case 0:
		case 1:
			p.Last = parts[0]
		case 2:
			p.First = parts[0]
			p.Last = parts[1]
		default:
			p.First = parts[0]
			p.Middle = strings.Join(parts[1:len(parts)-1], " ")
			p.Last = parts[len(parts)-1]
		}
	}

	p.Display = p.buildDisplay()
	return p
}

func (p NameParts) buildDisplay() string {
	var parts []string
	for _, s := range []string{p.Prefix, p.First, p.Middle, p.Last, p.Suffix} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.Nickname != "" {
		parts = append(parts, `"`+p.Nickname+`"`)
	}
	return strings.Join(parts, " ")
}

func splitTrim(s, sep string) []string {
	raw := strings.Split(s, sep)
	out := make([]string, 0, len(raw))
	for _, part := range raw {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
