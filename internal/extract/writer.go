package extract

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"filings/internal/record"
)

// WriteCSV writes a table to path as UTF-8 CSV in column order. Null values
// become empty cells. The write goes through a temporary file and rename so
// a failed run never leaves a truncated output behind.
func WriteCSV(path string, table *record.Table) error {
	if table == nil {
		return fmt.Errorf("write csv: nil table")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	writer := csv.NewWriter(tmp)
	if err := writer.Write(table.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}

	cells := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			value := row[col]
			if record.IsNull(value) {
				cells[i] = ""
			} else {
				cells[i] = record.String(value)
			}
		}
		if err := writer.Write(cells); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
