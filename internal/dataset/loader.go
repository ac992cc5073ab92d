package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadCSV reads one delimited text file into a Table. A missing or
// unreadable file is a configuration error and is returned as-is; this is a
// one-shot batch tool, so there is nothing to retry.
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: file has no header row", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ReadDir reads every .csv file in dir into its own Table. Other entries
// are ignored. A directory with no .csv files at all is an error, since the
// pipeline would have nothing to do.
func ReadDir(dir string) ([]*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var tables []*Table
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		table, err := ReadCSV(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("no .csv files found in %s", dir)
	}
	return tables, nil
}

// Concat appends same-schema tables into one, preserving all rows. Columns
// are matched by name against the first table's header, so export files
// whose columns are ordered differently still concatenate cleanly; a table
// missing a column is an error.
func Concat(tables []*Table) (*Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("concatenating tables: no tables given")
	}

	out := &Table{Header: append([]string(nil), tables[0].Header...)}
	for _, table := range tables {
		indices := make([]int, len(out.Header))
		for i, name := range out.Header {
			j := table.Column(name)
			if j < 0 {
				return nil, fmt.Errorf("concatenating tables: column %q missing", name)
			}
			indices[i] = j
		}
		for _, row := range table.Rows {
			cells := make([]string, len(indices))
			for i, j := range indices {
				if j < len(row) {
					cells[i] = row[j]
				}
			}
			out.Rows = append(out.Rows, cells)
		}
	}
	return out, nil
}
