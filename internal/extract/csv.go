package extract

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"filings/internal/record"
)

// Warning represents a non-fatal issue encountered while parsing a raw file.
type Warning struct {
	Row     int
	Message string
}

// Result holds a parsed raw extract plus any row-level warnings.
type Result struct {
	Table    *record.Table
	Encoding string
	Warnings []Warning
}

// ParseCSV parses raw CSV bytes into a table of header -> string value rows.
// Real-world extracts are messy: the parser tolerates lazy quotes, pads or
// truncates ragged rows to the header width with a warning, and decodes
// whatever encoding the file arrived in.
func ParseCSV(data []byte) (*Result, error) {
	return parse(data, ',')
}

// ParseTSV parses tab-separated raw bytes with the same tolerances as
// ParseCSV.
func ParseTSV(data []byte) (*Result, error) {
	return parse(data, '\t')
}

// ParseFile reads and parses a raw extract file, choosing the delimiter from
// the file extension (.txt and .tsv are treated as tab-separated).
func ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read raw file: %w", err)
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".tsv") {
		return ParseTSV(data)
	}
	return ParseCSV(data)
}

func parse(data []byte, comma rune) (*Result, error) {
	decoded, encodingName, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = comma
	// Ragged rows are padded or truncated below instead of failing the file.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row found")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	table := record.New(headers...)
	var warnings []Warning
	rowNum := 1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			warnings = append(warnings, Warning{Row: rowNum, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}

		if len(row) != len(headers) {
			if len(row) < len(headers) {
				warnings = append(warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), len(headers)),
				})
				padded := make([]string, len(headers))
				copy(padded, row)
				row = padded
			} else {
				warnings = append(warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), len(headers)),
				})
				row = row[:len(headers)]
			}
		}

		parsed := make(record.Row, len(headers))
		for i, h := range headers {
			parsed[h] = row[i]
		}
		table.Append(parsed)
	}

	return &Result{Table: table, Encoding: encodingName, Warnings: warnings}, nil
}
