package query

import (
	"fmt"
	"strings"
	"time"
)

// Comparison identifies one comparison operator. The six relational
// operators apply to any totally-ordered value; the three string
// operators apply to strings only.
type Comparison int

const (
	CompareEq Comparison = iota
	CompareNe
	CompareGt
	CompareGe
	CompareLt
	CompareLe
	CompareContains
	CompareStartsWith
	CompareEndsWith
)

// String returns the canonical spelling of the operator.
func (c Comparison) String() string {
	switch c {
	case CompareEq:
		return "eq"
	case CompareNe:
		return "ne"
	case CompareGt:
		return "gt"
	case CompareGe:
		return "ge"
	case CompareLt:
		return "lt"
	case CompareLe:
		return "le"
	case CompareContains:
		return "contains"
	case CompareStartsWith:
		return "starts_with"
	case CompareEndsWith:
		return "ends_with"
	}
	return fmt.Sprintf("comparison(%d)", int(c))
}

// relational reports whether the operator is one of the six ordering
// operators, as opposed to the string-only set.
func (c Comparison) relational() bool {
	return c >= CompareEq && c <= CompareLe
}

// parseComparison resolves an operator spelling, including the aliases
// accepted in textual query specs. The input must already be lowercased.
func parseComparison(s string) (Comparison, error) {
	switch s {
	case "eq", "equal", "equals":
		return CompareEq, nil
	case "ne", "not_equal", "neq":
		return CompareNe, nil
	case "gt", "greater", "greater_than":
		return CompareGt, nil
	case "ge", "gte", "greater_equal":
		return CompareGe, nil
	case "lt", "less", "less_than":
		return CompareLt, nil
	case "le", "lte", "less_equal":
		return CompareLe, nil
	case "contains":
		return CompareContains, nil
	case "starts_with", "startswith":
		return CompareStartsWith, nil
	case "ends_with", "endswith":
		return CompareEndsWith, nil
	}
	return 0, fmt.Errorf("unknown operator: %s", s)
}

// compareUint64 applies a relational operator to two unsigned values.
// The string operators have no meaning for numbers and are rejected.
func compareUint64(op Comparison, a, b uint64) (bool, error) {
	switch op {
	case CompareEq:
		return a == b, nil
	case CompareNe:
		return a != b, nil
	case CompareGt:
		return a > b, nil
	case CompareGe:
		return a >= b, nil
	case CompareLt:
		return a < b, nil
	case CompareLe:
		return a <= b, nil
	}
	return false, fmt.Errorf("operator %s is not defined for numeric values", op)
}

// compareTime applies a relational operator to two timestamps.
func compareTime(op Comparison, a, b time.Time) (bool, error) {
	switch op {
	case CompareEq:
		return a.Equal(b), nil
	case CompareNe:
		return !a.Equal(b), nil
	case CompareGt:
		return a.After(b), nil
	case CompareGe:
		return a.After(b) || a.Equal(b), nil
	case CompareLt:
		return a.Before(b), nil
	case CompareLe:
		return a.Before(b) || a.Equal(b), nil
	}
	return false, fmt.Errorf("operator %s is not defined for timestamps", op)
}

// compareStrings applies any of the nine operators to two strings.
// Relational operators use lexicographic byte order; all comparisons
// are case-sensitive.
func compareStrings(op Comparison, a, b string) (bool, error) {
	switch op {
	case CompareEq:
		return a == b, nil
	case CompareNe:
		return a != b, nil
	case CompareGt:
		return a > b, nil
	case CompareGe:
		return a >= b, nil
	case CompareLt:
		return a < b, nil
	case CompareLe:
		return a <= b, nil
	case CompareContains:
		return strings.Contains(a, b), nil
	case CompareStartsWith:
		return strings.HasPrefix(a, b), nil
	case CompareEndsWith:
		return strings.HasSuffix(a, b), nil
	}
	return false, fmt.Errorf("unknown operator: %s", op)
}
