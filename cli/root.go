// Package cli wires flag parsing, configuration, scanning, query
// execution and output rendering into the lsq command.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vegasq/lsq/config"
	"github.com/vegasq/lsq/output"
	"github.com/vegasq/lsq/query"
	"github.com/vegasq/lsq/scanner"
)

var rootCmd = &cobra.Command{
	Use:   "lsq [path]",
	Short: "List directory contents with SQL-style queries",
	Long: `lsq lists the contents of a directory the way ls does, with optional
WHERE, GROUP BY and aggregate stages applied to the file metadata.

Query syntax:
  --where      "field,operator,value"   filter records
  --group-by   "field[,modifier...]"    partition records into groups
  --aggregate  "func[,field]"           reduce each group to one value

Fields: name, extension, size, modified, accessed, created, filetype.
Operators: eq, ne, gt, ge, lt, le, contains, starts_with, ends_with.
Aggregates: count, sum, average, max, min.

Examples:
  lsq
  lsq /var/log --where "extension,eq,log"
  lsq --group-by extension --aggregate count
  lsq --where "size,gt,1024" --group-by "size,kb"
  lsq --group-by "modified,y,m" --aggregate "max,size"
  lsq --format csv --output result.csv`,
	Version:       "0.1.0",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

type rootOptions struct {
	where      string
	groupBy    string
	aggregate  string
	format     string
	outputPath string
	configPath string
	verbose    bool
}

var rootOpts = &rootOptions{}

func init() {
	rootCmd.Flags().StringVarP(&rootOpts.where, "where", "w", "", `filter records: "field,operator,value"`)
	rootCmd.Flags().StringVarP(&rootOpts.groupBy, "group-by", "g", "", `group records: "field[,modifier...]"`)
	rootCmd.Flags().StringVarP(&rootOpts.aggregate, "aggregate", "a", "", `aggregate each group: "func[,field]"`)
	rootCmd.Flags().StringVarP(&rootOpts.format, "format", "f", "", "output format: table, json, csv, parquet")
	rootCmd.Flags().StringVarP(&rootOpts.outputPath, "output", "o", "", "write output to file instead of stdout")
	rootCmd.Flags().StringVar(&rootOpts.configPath, "config", "", "config file (default .lsq.yml in cwd or home)")
	rootCmd.Flags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "verbose logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if rootOpts.format != "" {
		format = rootOpts.format
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	baseLogger := setupLogger(cfg)
	logger := baseLogger.With().Str("component", "cli").Logger()

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	q, err := buildQuery(path)
	if err != nil {
		return err
	}

	scanLogger := baseLogger.With().Str("component", "scanner").Logger()
	records, err := scanner.NewScanner(scanLogger).Scan(path)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", path).Int("records", len(records)).Msg("scan complete")

	res, err := query.Execute(records, q)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("query_id", res.QueryID).
		Dur("duration", res.Duration).
		Msg("query complete")

	if rootOpts.outputPath != "" {
		file, err := os.Create(rootOpts.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		renderErr := render(newFormatter(format, file), q, res)
		closeErr := file.Close()
		if renderErr != nil {
			return renderErr
		}
		return closeErr
	}

	return render(newFormatter(format, os.Stdout), q, res)
}

// loadConfig resolves the configuration: an explicit --config path, the
// nearest .lsq.yml, or the defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := rootOpts.configPath
	if path == "" {
		path = config.FindConfig()
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// setupLogger builds a console logger writing to stderr, keeping
// stdout free for query output. --verbose forces debug level.
func setupLogger(cfg *config.Config) zerolog.Logger {
	// The level spelling was validated when the config loaded.
	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	if rootOpts.verbose {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

// buildQuery parses the three stage flags. The scanned path becomes
// the implicit group key for aggregates without a grouping.
func buildQuery(path string) (query.Query, error) {
	q := query.Query{DefaultKey: path}

	if rootOpts.where != "" {
		p, err := query.ParsePredicate(rootOpts.where)
		if err != nil {
			return query.Query{}, fmt.Errorf("invalid --where: %w", err)
		}
		q.Predicate = p
	}

	if rootOpts.groupBy != "" {
		g, err := query.ParseGrouping(rootOpts.groupBy)
		if err != nil {
			return query.Query{}, fmt.Errorf("invalid --group-by: %w", err)
		}
		q.Grouping = g
	}

	if rootOpts.aggregate != "" {
		a, err := query.ParseAggregate(rootOpts.aggregate)
		if err != nil {
			return query.Query{}, fmt.Errorf("invalid --aggregate: %w", err)
		}
		q.Aggregate = a
	}

	return q, nil
}

// validateFormat rejects unknown formats and parquet to a terminal,
// since parquet output is binary.
func validateFormat(format string) error {
	switch format {
	case "table", "json", "csv":
		return nil
	case "parquet":
		if rootOpts.outputPath == "" {
			return fmt.Errorf("parquet output requires --output")
		}
		return nil
	}
	return fmt.Errorf("unknown output format: %s", format)
}

// newFormatter builds the formatter for a validated format name.
func newFormatter(format string, w io.Writer) output.Formatter {
	switch format {
	case "json":
		return output.NewJSONFormatter(w)
	case "csv":
		return output.NewCSVFormatter(w)
	case "parquet":
		return output.NewParquetFormatter(w)
	}
	return output.NewTableFormatter(w)
}

// render writes the populated result shape.
func render(f output.Formatter, q query.Query, res *query.Result) error {
	switch {
	case res.Aggregates != nil:
		return f.FormatAggregates(*q.Aggregate, res.Aggregates)
	case res.Groups != nil:
		return f.FormatGroups(res.Groups)
	default:
		return f.FormatRecords(res.Records)
	}
}
