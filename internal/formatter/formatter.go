// Package formatter renders extracted SObject records in table, CSV or
// JSON form for terminal and pipeline consumption.
package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"sfq/internal/salesforce"
)

// Supported output formats.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatCSV:   true,
	FormatJSON:  true,
}

// Format writes records to w in the requested format. Columns fix both the
// field order and the set of fields rendered; table and CSV output one row
// per record, JSON outputs the records as an array of objects.
func Format(w io.Writer, format string, columns []string, records []salesforce.Record) error {
	switch format {
	case FormatTable:
		return writeTable(w, columns, records)
	case FormatCSV:
		return writeCSV(w, columns, records)
	case FormatJSON:
		return writeJSON(w, records)
	default:
		return fmt.Errorf("unsupported format %q: must be one of: table, csv, json", format)
	}
}

func writeTable(w io.Writer, columns []string, records []salesforce.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(columns, "\t")); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}
	for _, record := range records {
		if _, err := fmt.Fprintln(tw, strings.Join(recordRow(columns, record), "\t")); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table output: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, columns []string, records []salesforce.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		if err := cw.Write(recordRow(columns, record)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, records []salesforce.Record) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if records == nil {
		records = []salesforce.Record{}
	}
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// recordRow renders one record as string cells in column order. Absent and
// null fields render as empty cells.
func recordRow(columns []string, record salesforce.Record) []string {
	row := make([]string, len(columns))
	for i, column := range columns {
		value, ok := record[column]
		if !ok || value == nil {
			continue
		}
		row[i] = fmt.Sprintf("%v", value)
	}
	return row
}
