// Package csvutil provides strict-header csv parsing shared by the roster
// and enrollment-attribute imports.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one data row of a parsed csv file.
// Line is the 1-based data line number (the header is line 0).
type Row struct {
	Line   int
	Values map[string]string
}

// HeaderError reports a csv file whose header does not match what the
// importer expects. The whole file is rejected before any row is processed.
type HeaderError struct {
	Expected []string
	Found    []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf(
		"Expected a CSV file with [%s] columns, but found [%s] columns instead.",
		strings.Join(e.Expected, ", "),
		strings.Join(e.Found, ", "),
	)
}

// ParseExact reads a csv file whose header must match expectedColumns
// exactly (order included). Returns all data rows keyed by column name.
func ParseExact(r io.Reader, expectedColumns []string) ([]Row, error) {
	header, rows, err := Parse(r)
	if err != nil {
		return nil, err
	}

	if !equalColumns(header, expectedColumns) {
		return nil, &HeaderError{Expected: expectedColumns, Found: header}
	}

	return rows, nil
}

// Parse reads a csv file and returns its header and data rows. Header and
// cell values are whitespace-trimmed; short rows leave missing cells empty.
func Parse(r io.Reader) ([]string, []Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rawHeader, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	header := make([]string, len(rawHeader))
	for i, col := range rawHeader {
		header[i] = strings.TrimSpace(col)
	}

	var rows []Row
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		line++
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				values[col] = strings.TrimSpace(record[i])
			} else {
				values[col] = ""
			}
		}
		rows = append(rows, Row{Line: line, Values: values})
	}

	return header, rows, nil
}

func equalColumns(found, expected []string) bool {
	if len(found) != len(expected) {
		return false
	}
	for i := range expected {
		if found[i] != expected[i] {
			return false
		}
	}
	return true
}
