// Package output provides formatters for rendering query results to
// various output formats.
//
// This package defines the Formatter interface and provides
// implementations for terminal tables, JSON Lines, CSV and parquet.
// A query result takes one of three shapes, and the interface has one
// method per shape: a flat record listing, records partitioned by
// group key, and one aggregate value per group.
//
// # Supported Formats
//
//   - Table: aligned text table for terminal use (the default)
//   - JSON Lines: one JSON object per line (suitable for streaming)
//   - CSV: comma-separated values with header row
//   - Parquet: columnar file for feeding results into other tools
//
// # Basic Usage
//
// Rendering a record listing:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.FormatRecords(records); err != nil {
//	    log.Fatal(err)
//	}
//
// Rendering grouped records as JSON Lines:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.FormatGroups(groups); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//
//	file, err := os.Create("result.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.FormatRecords(records); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ordering
//
// Group maps carry no order, so every formatter emits groups in
// ascending key order. Records keep the order they were scanned in.
//
// # Missing Values
//
// Aggregating an empty group yields no value. The table renders it as
// "-", JSON as null, CSV as an empty cell; the parquet scalar schema
// writes null, and parquet max/min exports leave the group out.
//
// The parquet formatter uses github.com/segmentio/parquet-go for the
// underlying file operations.
package output
