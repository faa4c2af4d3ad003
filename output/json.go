package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/lsq/query"
)

// JSONFormatter outputs results as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// recordObject converts a record to its JSON object form. Timestamps
// are formatted strings so every output format shows the same layout.
func recordObject(rec query.FileRecord) map[string]interface{} {
	return map[string]interface{}{
		"name":      rec.Name,
		"extension": rec.Extension,
		"size":      rec.Size,
		"type":      rec.FileType,
		"modified":  rec.Modified.Format(timeFormat),
		"accessed":  rec.Accessed.Format(timeFormat),
		"created":   rec.Created.Format(timeFormat),
	}
}

// FormatRecords writes records as JSON Lines (one object per line)
func (j *JSONFormatter) FormatRecords(records []query.FileRecord) error {
	encoder := json.NewEncoder(j.writer)
	for _, rec := range records {
		if err := encoder.Encode(recordObject(rec)); err != nil {
			return err
		}
	}
	return nil
}

// FormatGroups writes one object per record with a "group" key added.
// Groups appear in key order.
func (j *JSONFormatter) FormatGroups(groups map[string][]query.FileRecord) error {
	encoder := json.NewEncoder(j.writer)
	for _, key := range sortedKeys(groups) {
		for _, rec := range groups[key] {
			obj := recordObject(rec)
			obj["group"] = key
			if err := encoder.Encode(obj); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatAggregates writes one object per group with the group key, the
// aggregate label and its value. A group without a value encodes as
// JSON null; max and min encode their record as a nested object.
func (j *JSONFormatter) FormatAggregates(agg query.Aggregate, values map[string]interface{}) error {
	encoder := json.NewEncoder(j.writer)
	for _, key := range sortedKeys(values) {
		obj := map[string]interface{}{
			"group":     key,
			"aggregate": agg.String(),
			"value":     aggregateValue(values[key]),
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

// aggregateValue converts a max/min record to its object form. Scalars
// and nil pass through unchanged.
func aggregateValue(v interface{}) interface{} {
	if rec, ok := v.(query.FileRecord); ok {
		return recordObject(rec)
	}
	return v
}
