package query

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Query couples the optional stages of one evaluation. A nil stage is
// skipped and the previous stage's output passes through unchanged.
type Query struct {
	Predicate Predicate
	Grouping  *Grouping
	Aggregate *Aggregate

	// DefaultKey labels the implicit single group used when an
	// aggregate runs over ungrouped records. Callers usually set it to
	// the scanned directory path.
	DefaultKey string
}

// Result is the outcome of one evaluation. Exactly one of Records,
// Groups and Aggregates is populated, depending on which stages the
// query carries. QueryID correlates log lines for one evaluation.
type Result struct {
	QueryID  string
	Duration time.Duration

	Records    []FileRecord
	Groups     map[string][]FileRecord
	Aggregates map[string]interface{}
}

// Execute runs filter, grouping and aggregation in order over the
// records, skipping the stages the query leaves unset. Execution is
// synchronous and leaves the input untouched; calling it twice with
// the same input and query yields the same result.
func Execute(records []FileRecord, q Query) (*Result, error) {
	start := time.Now()
	res := &Result{QueryID: uuid.New().String()}

	filtered := records
	if q.Predicate != nil {
		var err error
		filtered, err = ApplyFilter(records, q.Predicate)
		if err != nil {
			return nil, fmt.Errorf("failed to apply filter: %w", err)
		}
	}

	switch {
	case q.Grouping == nil && q.Aggregate == nil:
		res.Records = filtered
	case q.Aggregate == nil:
		res.Groups = ApplyGrouping(filtered, q.Grouping)
	default:
		groups := map[string][]FileRecord{q.DefaultKey: filtered}
		if q.Grouping != nil {
			groups = ApplyGrouping(filtered, q.Grouping)
		}
		values, err := ApplyAggregate(groups, *q.Aggregate)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate: %w", err)
		}
		res.Aggregates = values
	}

	res.Duration = time.Since(start)
	return res, nil
}
