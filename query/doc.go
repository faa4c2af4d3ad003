// Package query evaluates filter, group-by and aggregate queries over
// file metadata records.
//
// The package implements a small typed query pipeline with support for:
//   - WHERE-style predicates over name, extension, size, the three
//     timestamps and the file type
//   - regex-or-literal name matching (an invalid pattern falls back to
//     exact equality)
//   - GROUP BY-style key derivation with size-unit bucketing and
//     timestamp component masking
//   - Aggregate functions (count, sum, average, max, min) per group
//
// # Basic Usage
//
// Parse the textual specs and execute the pipeline:
//
//	predicate, err := query.ParsePredicate("size,gt,4096")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	grouping, err := query.ParseGrouping("extension")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	aggregate, err := query.ParseAggregate("sum")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := query.Execute(records, query.Query{
//	    Predicate: predicate,
//	    Grouping:  grouping,
//	    Aggregate: aggregate,
//	})
//
// Each stage is optional; a query with none of them returns the input
// records unchanged.
//
// # Filtering
//
// Apply a single predicate directly:
//
//	predicate := query.NewNamePredicate(query.CompareEq, `\.go$`)
//	matched, err := query.ApplyFilter(records, predicate)
//
// # Grouping and Aggregation
//
// Partition records and compute one value per group:
//
//	groups := query.ApplyGrouping(records, &query.Grouping{Field: query.FieldExtension})
//	sums, err := query.ApplyAggregate(groups, query.Aggregate{Func: query.AggSum, Field: query.FieldSize})
//
// Size grouping buckets by truncating division ("0 KB" holds every
// size below 1024), and timestamp grouping keys records by the masked
// format day.month.year hour:minute:second with "*" for every masked
// component.
//
// # Query Mini-Language
//
// Textual specs use comma-separated forms:
//   - Predicate: "field,operator,value", or "field,value" for equality
//   - Grouping: "extension", "filetype", "size,UNIT" or a timestamp
//     field with component flags, e.g. "modified,y,m,d"
//   - Aggregate: "count", "sum", "average", "max,FIELD", "min,FIELD"
//
// Field, operator, unit and function spellings have short aliases and
// are case-insensitive. Predicate values keep their case.
//
// # Error Handling
//
// The package returns descriptive errors for:
//   - Malformed specs (unknown field, operator or unit, missing parts)
//   - Operators applied to incompatible fields (contains on size)
//   - Literals not parseable as the field type (non-numeric size,
//     unrecognized date/time form)
//
// Aggregating an empty group is not an error: average, max and min
// yield a nil value that rendering code must handle, while count and
// sum yield 0.
package query
