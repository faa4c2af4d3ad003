package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/lsq/query"
)

// TableFormatter renders results as an aligned text table for terminal
// use. It is the default output format.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// newTable builds a tablewriter with the package's display settings.
// Header auto-formatting is off so "Size (bytes)" keeps its casing.
func (t *TableFormatter) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(t.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

// FormatRecords writes one row per record.
func (t *TableFormatter) FormatRecords(records []query.FileRecord) error {
	table := t.newTable(recordHeader)
	for _, rec := range records {
		table.Append(recordRow(rec))
	}
	table.Render()
	return nil
}

// FormatGroups writes one row per record with a leading Group column.
// Groups appear in key order, each keeping its record order.
func (t *TableFormatter) FormatGroups(groups map[string][]query.FileRecord) error {
	table := t.newTable(append([]string{"Group"}, recordHeader...))
	for _, key := range sortedKeys(groups) {
		for _, rec := range groups[key] {
			table.Append(append([]string{key}, recordRow(rec)...))
		}
	}
	table.Render()
	return nil
}

// FormatAggregates writes one row per group. Max and min carry a whole
// record, so their rows take the record columns; the scalar aggregates
// render as a two-column table keyed by group. A group without a value
// renders as "-".
func (t *TableFormatter) FormatAggregates(agg query.Aggregate, values map[string]interface{}) error {
	if agg.Func == query.AggMax || agg.Func == query.AggMin {
		table := t.newTable(append([]string{"Group"}, recordHeader...))
		for _, key := range sortedKeys(values) {
			table.Append(append([]string{key}, aggregateRecordRow(values[key])...))
		}
		table.Render()
		return nil
	}

	table := t.newTable([]string{"Group", agg.String()})
	for _, key := range sortedKeys(values) {
		table.Append([]string{key, scalarString(values[key])})
	}
	table.Render()
	return nil
}

// aggregateRecordRow renders a max/min result, placing "-" in every
// record column when the group was empty.
func aggregateRecordRow(v interface{}) []string {
	rec, ok := v.(query.FileRecord)
	if !ok {
		row := make([]string, len(recordHeader))
		for i := range row {
			row[i] = "-"
		}
		return row
	}
	return recordRow(rec)
}
