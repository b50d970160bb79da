// Package fileio reads and writes the file formats the exercises share:
// header-keyed CSV files and plain number files with one value per line.
package fileio

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CSVData holds the records of a CSV file keyed by header, with the header
// order preserved.
type CSVData struct {
	Columns []string
	Records []map[string]string
}

// ReadCSV reads a comma-separated value file whose first row is a header.
func ReadCSV(path string) (*CSVData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &CSVData{}, nil
	}

	data := &CSVData{Columns: rows[0]}
	for _, row := range rows[1:] {
		record := make(map[string]string, len(data.Columns))
		for i, col := range data.Columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		data.Records = append(data.Records, record)
	}
	return data, nil
}

// Column returns the named column parsed as floats. Blank cells are skipped.
func (d *CSVData) Column(name string) ([]float64, error) {
	var values []float64
	for _, record := range d.Records {
		cell := strings.TrimSpace(record[name])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// ReadNumbers reads floats from a file, one per line. Blank lines are
// skipped.
func ReadNumbers(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read numbers: %w", err)
	}
	var results []float64
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("read numbers %s: %w", path, err)
		}
		results = append(results, v)
	}
	return results, nil
}

// WriteNumbers writes floats to a file, one per line.
func WriteNumbers(path string, values []float64) error {
	var b strings.Builder
	for _, v := range values {
		fmt.Fprintf(&b, "%g\n", v)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write numbers: %w", err)
	}
	return nil
}

// ReadLists reads rows of comma-separated floats from a file.
func ReadLists(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lists: %w", err)
	}
	var results [][]float64
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []float64
		for _, cell := range strings.Split(line, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("read lists %s: %w", path, err)
			}
			row = append(row, v)
		}
		results = append(results, row)
	}
	return results, nil
}

// WriteLists writes rows of comma-separated floats to a file.
func WriteLists(path string, rows [][]float64) error {
	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write lists: %w", err)
	}
	return nil
}

// FindFiles returns the paths under root whose base name matches the glob
// pattern.
func FindFiles(root, pattern string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find files: %w", err)
	}
	return matches, nil
}
