package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vegasq/lsq/query"
)

// timeFormat is the timestamp layout shared by every output format.
const timeFormat = "2006-01-02 15:04:05"

// recordHeader is the column order of a rendered record. recordRow
// must stay aligned with it.
var recordHeader = []string{"Modified", "Accessed", "Created", "Type", "Size (bytes)", "Name"}

// Formatter defines the interface for output formatters.
//
// A query result takes one of three shapes, and each shape has its own
// method: a flat record listing, records partitioned by group key, or
// one aggregate value per group.
type Formatter interface {
	// FormatRecords writes a flat record listing
	FormatRecords(records []query.FileRecord) error

	// FormatGroups writes records partitioned by group key
	FormatGroups(groups map[string][]query.FileRecord) error

	// FormatAggregates writes one aggregate value per group
	FormatAggregates(agg query.Aggregate, values map[string]interface{}) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// sortedKeys returns the map keys in ascending order. Group maps carry
// no order of their own, so every formatter sorts keys to keep output
// stable across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// recordRow renders one record into the recordHeader columns.
func recordRow(rec query.FileRecord) []string {
	return []string{
		rec.Modified.Format(timeFormat),
		rec.Accessed.Format(timeFormat),
		rec.Created.Format(timeFormat),
		rec.FileType,
		strconv.FormatUint(rec.Size, 10),
		rec.Name,
	}
}

// scalarString renders a scalar aggregate value. nil, the result of
// aggregating an empty group, renders as "-".
func scalarString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
