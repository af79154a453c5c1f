package extract

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var yearPattern = regexp.MustCompile(`20\d{2}`)

// FindStateFiles walks the raw directory and returns every file whose name
// contains one of the state's identifiers (case-insensitive). The result is
// sorted for deterministic processing order.
func FindStateFiles(rawDir string, identifiers []string) ([]string, error) {
	if _, err := os.Stat(rawDir); err != nil {
		return nil, fmt.Errorf("raw data directory: %w", err)
	}

	lowered := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			lowered = append(lowered, id)
		}
	}

	var matches []string
	err := filepath.WalkDir(rawDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, id := range lowered {
			if strings.Contains(name, id) {
				matches = append(matches, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk raw directory: %w", err)
	}

	sort.Strings(matches)
	return matches, nil
}

// YearFromFilename extracts a plausible election year (2000-2030) from a raw
// file name, for extracts that do not carry the year in a column.
func YearFromFilename(path string) (string, bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, match := range yearPattern.FindAllString(name, -1) {
		year, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if year >= 2000 && year <= 2030 {
			return match, true
		}
	}
	return "", false
}
