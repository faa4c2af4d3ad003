package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches the working directory to dir and restores the
// previous one when the test finishes. It stands in for t.Chdir,
// which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("failed to restore working directory: %v", err)
		}
	})
}

// runCommand executes the root command with fresh options. HOME and
// the working directory point at empty directories so a developer's
// real .lsq.yml cannot leak into the run.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	*rootOpts = rootOptions{}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// populateDir creates a small directory fixture: two txt files and
// one rs file.
func populateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.txt":   "alpha",
		"b.txt":   "beta beta",
		"main.rs": "fn main() {}",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun_GroupedCountToCSV(t *testing.T) {
	dir := populateDir(t)
	out := filepath.Join(t.TempDir(), "result.csv")

	err := runCommand(t, dir,
		"--group-by", "extension",
		"--aggregate", "count",
		"--format", "csv",
		"--output", out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"group", "aggregate", "value"}, rows[0])
	assert.Equal(t, []string{"rs", "Count", "1"}, rows[1])
	assert.Equal(t, []string{"txt", "Count", "2"}, rows[2])
}

func TestRun_FilteredListingToCSV(t *testing.T) {
	dir := populateDir(t)
	out := filepath.Join(t.TempDir(), "result.csv")

	err := runCommand(t, dir,
		"--where", "extension,eq,txt",
		"--format", "csv",
		"--output", out,
	)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a.txt", rows[1][5])
	assert.Equal(t, "b.txt", rows[2][5])
}

func TestRun_TableToFile(t *testing.T) {
	dir := populateDir(t)
	out := filepath.Join(t.TempDir(), "result.txt")

	err := runCommand(t, dir, "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Size (bytes)")
	assert.Contains(t, string(data), "main.rs")
}

func TestRun_ConfigSetsFormat(t *testing.T) {
	dir := populateDir(t)
	cfgPath := filepath.Join(t.TempDir(), ".lsq.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o644))
	out := filepath.Join(t.TempDir(), "result.jsonl")

	err := runCommand(t, dir, "--config", cfgPath, "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "{"), "output should be JSON Lines")
}

func TestRun_InvalidWhere(t *testing.T) {
	err := runCommand(t, populateDir(t), "--where", "owner,eq,root")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --where")
}

func TestRun_InvalidGroupBy(t *testing.T) {
	err := runCommand(t, populateDir(t), "--group-by", "size")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --group-by")
}

func TestRun_InvalidAggregate(t *testing.T) {
	err := runCommand(t, populateDir(t), "--aggregate", "median")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --aggregate")
}

func TestRun_UnknownFormat(t *testing.T) {
	err := runCommand(t, populateDir(t), "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRun_ParquetRequiresOutput(t *testing.T) {
	err := runCommand(t, populateDir(t), "--format", "parquet")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --output")
}

func TestRun_MissingDirectory(t *testing.T) {
	err := runCommand(t, filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}

func TestBuildQuery(t *testing.T) {
	*rootOpts = rootOptions{where: "size,gt,1024", groupBy: "extension", aggregate: "count"}

	q, err := buildQuery("/tmp/demo")
	require.NoError(t, err)

	assert.NotNil(t, q.Predicate)
	assert.NotNil(t, q.Grouping)
	assert.NotNil(t, q.Aggregate)
	assert.Equal(t, "/tmp/demo", q.DefaultKey)
}
