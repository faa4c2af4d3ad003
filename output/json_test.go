package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/lsq/query"
)

// decodeLines parses JSON Lines output into one map per line.
func decodeLines(t *testing.T, out string) []map[string]interface{} {
	t.Helper()

	var rows []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var row map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &row))
		rows = append(rows, row)
	}
	return rows
}

func TestJSONFormatter_FormatRecords(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatRecords(testRecords()))

	rows := decodeLines(t, buf.String())
	require.Len(t, rows, 2)

	assert.Equal(t, "notes.txt", rows[0]["name"])
	assert.Equal(t, "txt", rows[0]["extension"])
	assert.Equal(t, float64(1000), rows[0]["size"])
	assert.Equal(t, query.TypeFile, rows[0]["type"])
	assert.Equal(t, "2024-03-07 09:05:02", rows[0]["modified"])
	assert.NotContains(t, rows[0], "group")
}

func TestJSONFormatter_FormatRecords_Empty(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatRecords(nil))
	assert.Zero(t, buf.Len())
}

func TestJSONFormatter_FormatGroups(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	require.NoError(t, f.FormatGroups(testGroups()))

	rows := decodeLines(t, buf.String())
	require.Len(t, rows, 2)

	// Groups come out in key order: rs before txt.
	assert.Equal(t, "rs", rows[0]["group"])
	assert.Equal(t, "main.rs", rows[0]["name"])
	assert.Equal(t, "txt", rows[1]["group"])
}

func TestJSONFormatter_FormatAggregates_Scalar(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	values := map[string]interface{}{"txt": uint64(2), "empty": nil}
	require.NoError(t, f.FormatAggregates(query.Aggregate{Func: query.AggCount}, values))

	rows := decodeLines(t, buf.String())
	require.Len(t, rows, 2)

	assert.Equal(t, "empty", rows[0]["group"])
	assert.Equal(t, "Count", rows[0]["aggregate"])
	assert.Nil(t, rows[0]["value"])

	assert.Equal(t, "txt", rows[1]["group"])
	assert.Equal(t, float64(2), rows[1]["value"])
}

func TestJSONFormatter_FormatAggregates_Record(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	values := map[string]interface{}{"txt": testRecords()[0]}
	agg := query.Aggregate{Func: query.AggMax, Field: query.FieldSize}
	require.NoError(t, f.FormatAggregates(agg, values))

	rows := decodeLines(t, buf.String())
	require.Len(t, rows, 1)
	assert.Equal(t, "Max of size", rows[0]["aggregate"])

	value, ok := rows[0]["value"].(map[string]interface{})
	require.True(t, ok, "value should be a nested record object")
	assert.Equal(t, "notes.txt", value["name"])
	assert.Equal(t, float64(1000), value["size"])
}
