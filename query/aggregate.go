package query

import (
	"fmt"
	"strings"
)

// AggregateFunc identifies the aggregate computation.
type AggregateFunc int

const (
	AggCount AggregateFunc = iota
	AggSum
	AggAverage
	AggMax
	AggMin
)

// Aggregate pairs an aggregate function with its field argument.
// Count carries no field. Sum and Average accept the numeric fields;
// Max and Min accept any ordered field.
type Aggregate struct {
	Func  AggregateFunc
	Field Field
}

// String returns a display label, e.g. "Sum of size".
func (a Aggregate) String() string {
	switch a.Func {
	case AggCount:
		return "Count"
	case AggSum:
		return fmt.Sprintf("Sum of %s", a.Field)
	case AggAverage:
		return fmt.Sprintf("Average of %s", a.Field)
	case AggMax:
		return fmt.Sprintf("Max of %s", a.Field)
	case AggMin:
		return fmt.Sprintf("Min of %s", a.Field)
	}
	return fmt.Sprintf("aggregate(%d)", int(a.Func))
}

// numericFields maps the fields with a numeric value onto their
// extractor. Sum and Average accept exactly these fields; extending
// the arithmetic aggregates to another field is one entry here.
var numericFields = map[Field]func(FileRecord) uint64{
	FieldSize: func(rec FileRecord) uint64 { return rec.Size },
}

// orderedFields maps the fields with a total order onto a comparator
// applying a relational operator across two records. Max and Min
// accept exactly these fields.
var orderedFields = map[Field]func(op Comparison, a, b FileRecord) (bool, error){
	FieldSize: func(op Comparison, a, b FileRecord) (bool, error) {
		return compareUint64(op, a.Size, b.Size)
	},
	FieldModified: func(op Comparison, a, b FileRecord) (bool, error) {
		return compareTime(op, a.Modified, b.Modified)
	},
	FieldAccessed: func(op Comparison, a, b FileRecord) (bool, error) {
		return compareTime(op, a.Accessed, b.Accessed)
	},
	FieldCreated: func(op Comparison, a, b FileRecord) (bool, error) {
		return compareTime(op, a.Created, b.Created)
	},
}

// NewAggregate builds an aggregate spec, validating the field against
// the function's registry.
func NewAggregate(fn AggregateFunc, field Field) (*Aggregate, error) {
	switch fn {
	case AggCount:
	case AggSum, AggAverage:
		if _, ok := numericFields[field]; !ok {
			return nil, fmt.Errorf("field %s is not numeric", field)
		}
	case AggMax, AggMin:
		if _, ok := orderedFields[field]; !ok {
			return nil, fmt.Errorf("field %s is not ordered", field)
		}
	default:
		return nil, fmt.Errorf("unknown aggregate function: %d", int(fn))
	}
	return &Aggregate{Func: fn, Field: field}, nil
}

// ParseAggregate parses the textual form "func[,field]". Sum and
// Average default to size when no field is given; Max and Min require
// one. Spellings are case-insensitive.
func ParseAggregate(s string) (*Aggregate, error) {
	parts := strings.SplitN(strings.ToLower(s), ",", 2)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var fn AggregateFunc
	switch parts[0] {
	case "count", "c":
		return NewAggregate(AggCount, FieldSize)
	case "sum", "s":
		fn = AggSum
	case "average", "avg", "a":
		fn = AggAverage
	case "max":
		fn = AggMax
	case "min":
		fn = AggMin
	default:
		return nil, fmt.Errorf("unknown aggregate function: %s", s)
	}

	if len(parts) < 2 {
		if fn == AggMax || fn == AggMin {
			return nil, fmt.Errorf("missing field for %s", parts[0])
		}
		return NewAggregate(fn, FieldSize)
	}

	field, err := parseField(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid aggregate %q: %w", s, err)
	}
	return NewAggregate(fn, field)
}

// ApplyAggregate computes the aggregate value of every group. Scalar
// results are uint64 for count and sum and float64 for average; max
// and min yield the extremal FileRecord. Aggregating an empty group
// yields nil for average, max and min, the distinct no-value outcome;
// count and sum of an empty group are 0.
func ApplyAggregate(groups map[string][]FileRecord, agg Aggregate) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(groups))
	for key, records := range groups {
		value, err := evaluateAggregate(records, agg)
		if err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, nil
}

// evaluateAggregate computes one group's value.
func evaluateAggregate(records []FileRecord, agg Aggregate) (interface{}, error) {
	switch agg.Func {
	case AggCount:
		return uint64(len(records)), nil
	case AggSum:
		return evaluateSum(records, agg.Field)
	case AggAverage:
		if len(records) == 0 {
			return nil, nil
		}
		sum, err := evaluateSum(records, agg.Field)
		if err != nil {
			return nil, err
		}
		return float64(sum) / float64(len(records)), nil
	case AggMax:
		return evaluateExtreme(records, agg.Field, CompareGt)
	case AggMin:
		return evaluateExtreme(records, agg.Field, CompareLt)
	}
	return nil, fmt.Errorf("unknown aggregate function: %d", int(agg.Func))
}

func evaluateSum(records []FileRecord, field Field) (uint64, error) {
	extract, ok := numericFields[field]
	if !ok {
		return 0, fmt.Errorf("field %s is not numeric", field)
	}
	var sum uint64
	for _, rec := range records {
		sum += extract(rec)
	}
	return sum, nil
}

// evaluateExtreme returns the record winning every strict comparison
// against the running extreme. Among tied records the first seen
// stays; which member of a tie is returned carries no guarantee.
func evaluateExtreme(records []FileRecord, field Field, op Comparison) (interface{}, error) {
	cmp, ok := orderedFields[field]
	if !ok {
		return nil, fmt.Errorf("field %s is not ordered", field)
	}
	if len(records) == 0 {
		return nil, nil
	}

	extreme := records[0]
	for _, rec := range records[1:] {
		wins, err := cmp(op, rec, extreme)
		if err != nil {
			return nil, err
		}
		if wins {
			extreme = rec
		}
	}
	return extreme, nil
}
