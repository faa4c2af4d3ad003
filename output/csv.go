package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/lsq/query"
)

// csvRecordHeader mirrors recordHeader with machine-friendly names.
var csvRecordHeader = []string{"modified", "accessed", "created", "type", "size", "name"}

// CSVFormatter outputs results as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// FormatRecords writes a header row followed by one row per record.
// The header is written even when there are no records.
func (c *CSVFormatter) FormatRecords(records []query.FileRecord) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(csvRecordHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := csvWriter.Write(csvRecordRow(rec)); err != nil {
			return err
		}
	}

	return flushCSV(csvWriter)
}

// FormatGroups writes one row per record with a leading group column.
// Groups appear in key order.
func (c *CSVFormatter) FormatGroups(groups map[string][]query.FileRecord) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(append([]string{"group"}, csvRecordHeader...)); err != nil {
		return err
	}
	for _, key := range sortedKeys(groups) {
		for _, rec := range groups[key] {
			if err := csvWriter.Write(append([]string{sanitizeCell(key)}, csvRecordRow(rec)...)); err != nil {
				return err
			}
		}
	}

	return flushCSV(csvWriter)
}

// FormatAggregates writes one row per group. The scalar aggregates use
// a group,aggregate,value header; max and min append the record
// columns instead of a value column. A group without a value leaves
// its cells empty.
func (c *CSVFormatter) FormatAggregates(agg query.Aggregate, values map[string]interface{}) error {
	csvWriter := csv.NewWriter(c.writer)

	if agg.Func == query.AggMax || agg.Func == query.AggMin {
		if err := csvWriter.Write(append([]string{"group", "aggregate"}, csvRecordHeader...)); err != nil {
			return err
		}
		for _, key := range sortedKeys(values) {
			row := append([]string{sanitizeCell(key), agg.String()}, csvAggregateRecordRow(values[key])...)
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return flushCSV(csvWriter)
	}

	if err := csvWriter.Write([]string{"group", "aggregate", "value"}); err != nil {
		return err
	}
	for _, key := range sortedKeys(values) {
		row := []string{sanitizeCell(key), agg.String(), csvScalar(values[key])}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	return flushCSV(csvWriter)
}

// csvRecordRow renders one record, sanitizing the name cell.
func csvRecordRow(rec query.FileRecord) []string {
	row := recordRow(rec)
	row[len(row)-1] = sanitizeCell(row[len(row)-1])
	return row
}

// csvAggregateRecordRow renders a max/min result, leaving the record
// cells empty when the group was empty.
func csvAggregateRecordRow(v interface{}) []string {
	rec, ok := v.(query.FileRecord)
	if !ok {
		return make([]string, len(csvRecordHeader))
	}
	return csvRecordRow(rec)
}

// csvScalar renders a scalar aggregate value, with the empty cell for
// a group without a value.
func csvScalar(v interface{}) string {
	if v == nil {
		return ""
	}
	return scalarString(v)
}

// flushCSV drains the writer, surfacing any buffered write error.
func flushCSV(csvWriter *csv.Writer) error {
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitizeCell guards cells whose content comes from filenames against
// CSV injection by prefixing values whose first character spreadsheet
// applications treat as a formula trigger.
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
