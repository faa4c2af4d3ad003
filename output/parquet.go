package output

import (
	"fmt"
	"io"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/lsq/query"
)

// exportRecord is the parquet row schema for record listings. The
// group column is empty in ungrouped listings, so grouped and flat
// exports share one schema. Timestamps are unix nanoseconds.
type exportRecord struct {
	Group     string `parquet:"group"`
	Name      string `parquet:"name"`
	Extension string `parquet:"extension"`
	Size      uint64 `parquet:"size"`
	Type      string `parquet:"type"`
	Modified  int64  `parquet:"modified"`
	Accessed  int64  `parquet:"accessed"`
	Created   int64  `parquet:"created"`
}

// exportAggregate is the parquet row schema for scalar aggregates.
// A group without a value writes null.
type exportAggregate struct {
	Group     string   `parquet:"group"`
	Aggregate string   `parquet:"aggregate"`
	Value     *float64 `parquet:"value,optional"`
}

// ParquetFormatter outputs results as a parquet file, suitable for
// feeding query results into other tools.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// FormatRecords writes one row per record with an empty group column.
func (p *ParquetFormatter) FormatRecords(records []query.FileRecord) error {
	rows := make([]exportRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, newExportRecord("", rec))
	}
	return p.writeRecords(rows)
}

// FormatGroups writes one row per record carrying its group key.
// Groups appear in key order.
func (p *ParquetFormatter) FormatGroups(groups map[string][]query.FileRecord) error {
	var rows []exportRecord
	for _, key := range sortedKeys(groups) {
		for _, rec := range groups[key] {
			rows = append(rows, newExportRecord(key, rec))
		}
	}
	return p.writeRecords(rows)
}

// FormatAggregates writes one row per group. Max and min write record
// rows, leaving out groups without a value; the scalar aggregates
// write group, aggregate label and a nullable value column.
func (p *ParquetFormatter) FormatAggregates(agg query.Aggregate, values map[string]interface{}) error {
	if agg.Func == query.AggMax || agg.Func == query.AggMin {
		rows := make([]exportRecord, 0, len(values))
		for _, key := range sortedKeys(values) {
			rec, ok := values[key].(query.FileRecord)
			if !ok {
				continue
			}
			rows = append(rows, newExportRecord(key, rec))
		}
		return p.writeRecords(rows)
	}

	rows := make([]exportAggregate, 0, len(values))
	for _, key := range sortedKeys(values) {
		rows = append(rows, exportAggregate{
			Group:     key,
			Aggregate: agg.String(),
			Value:     scalarValue(values[key]),
		})
	}

	writer := parquet.NewGenericWriter[exportAggregate](p.writer)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func (p *ParquetFormatter) writeRecords(rows []exportRecord) error {
	writer := parquet.NewGenericWriter[exportRecord](p.writer)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func newExportRecord(group string, rec query.FileRecord) exportRecord {
	return exportRecord{
		Group:     group,
		Name:      rec.Name,
		Extension: rec.Extension,
		Size:      rec.Size,
		Type:      rec.FileType,
		Modified:  rec.Modified.UnixNano(),
		Accessed:  rec.Accessed.UnixNano(),
		Created:   rec.Created.UnixNano(),
	}
}

// scalarValue converts count and sum to float64 so the scalar
// aggregates share one column type. nil stays nil.
func scalarValue(v interface{}) *float64 {
	switch val := v.(type) {
	case uint64:
		f := float64(val)
		return &f
	case float64:
		return &val
	}
	return nil
}
