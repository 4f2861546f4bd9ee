// Package sheet reads the site's CSV sources into header-indexed tables.
//
// The first record is the header. Cells are looked up by column name, so
// column order in the file does not matter. Short records read as empty
// cells for the missing columns.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ColumnError reports a required column that the header does not contain.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// Table is a parsed CSV file.
type Table struct {
	header  []string
	columns map[string]int
	records [][]string
}

// Row is one data record of a Table.
type Row struct {
	// Index is the 0-based position of the record below the header.
	Index   int
	fields  []string
	columns map[string]int
}

// Read parses CSV from r. An empty input yields an empty table with no columns.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Table{columns: map[string]int{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	t := &Table{
		header:  make([]string, len(header)),
		columns: make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		t.header[i] = name
		if _, dup := t.columns[name]; !dup {
			t.columns[name] = i
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV records: %w", err)
	}
	t.records = records

	return t, nil
}

// Header returns the column names in file order.
func (t *Table) Header() []string {
	return t.header
}

// Len returns the number of data records.
func (t *Table) Len() int {
	return len(t.records)
}

// Require checks that every named column is present.
func (t *Table) Require(columns ...string) error {
	for _, col := range columns {
		if _, ok := t.columns[col]; !ok {
			return &ColumnError{Column: col}
		}
	}
	return nil
}

// Rows returns every data record in file order.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.records))
	for i, rec := range t.records {
		rows[i] = Row{Index: i, fields: rec, columns: t.columns}
	}
	return rows
}

// Get returns the cell under column, or "" when the column or cell is absent.
func (r Row) Get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}
