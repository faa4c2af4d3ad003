package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Predicate is a single typed filter condition over one record field.
// Values are produced by ParsePredicate or constructed directly;
// Matches reports whether a record survives the filter.
type Predicate interface {
	Matches(rec FileRecord) (bool, error)
}

// NamePredicate matches on the record name. The pattern is dual-mode
// for equality: when it compiles as a regular expression, a record
// matches iff the pattern matches anywhere in the name; when
// compilation fails, the pattern is an exact equality literal. The
// decision is made once at construction, so the same pattern always
// resolves to the same mode. All other operators compare the name and
// the pattern as plain strings.
type NamePredicate struct {
	Op      Comparison
	Pattern string

	re *regexp.Regexp // nil when Pattern did not compile
}

// NewNamePredicate builds a name predicate, compiling the pattern up
// front so the regex-or-literal choice is fixed.
func NewNamePredicate(op Comparison, pattern string) *NamePredicate {
	p := &NamePredicate{Op: op, Pattern: pattern}
	if op == CompareEq {
		if re, err := regexp.Compile(pattern); err == nil {
			p.re = re
		}
	}
	return p
}

// Matches implements Predicate.
func (p *NamePredicate) Matches(rec FileRecord) (bool, error) {
	if p.re != nil {
		return p.re.MatchString(rec.Name), nil
	}
	return compareStrings(p.Op, rec.Name, p.Pattern)
}

// ExtensionPredicate matches on the extension, case-sensitive. Records
// without an extension carry the empty string.
type ExtensionPredicate struct {
	Op    Comparison
	Value string
}

// Matches implements Predicate.
func (p *ExtensionPredicate) Matches(rec FileRecord) (bool, error) {
	return compareStrings(p.Op, rec.Extension, p.Value)
}

// FileTypePredicate matches on the File/Directory tag, case-sensitive.
type FileTypePredicate struct {
	Op    Comparison
	Value string
}

// Matches implements Predicate.
func (p *FileTypePredicate) Matches(rec FileRecord) (bool, error) {
	return compareStrings(p.Op, rec.FileType, p.Value)
}

// SizePredicate compares the byte size against a fixed bound.
type SizePredicate struct {
	Op   Comparison
	Size uint64
}

// NewSizePredicate builds a size predicate. Only the six relational
// operators apply to sizes; the string operators are rejected here so
// a bad spec fails before any record is touched.
func NewSizePredicate(op Comparison, size uint64) (*SizePredicate, error) {
	if !op.relational() {
		return nil, fmt.Errorf("operator %s is not applicable to size", op)
	}
	return &SizePredicate{Op: op, Size: size}, nil
}

// Matches implements Predicate.
func (p *SizePredicate) Matches(rec FileRecord) (bool, error) {
	return compareUint64(p.Op, rec.Size, p.Size)
}

// TimePredicate compares one of the timestamp fields against a fixed
// instant.
type TimePredicate struct {
	Field Field
	Op    Comparison
	When  time.Time
}

// NewTimePredicate builds a predicate over one of the timestamp
// fields. Only the six relational operators apply to timestamps.
func NewTimePredicate(field Field, op Comparison, when time.Time) (*TimePredicate, error) {
	switch field {
	case FieldModified, FieldAccessed, FieldCreated:
	default:
		return nil, fmt.Errorf("field %s is not a timestamp", field)
	}
	if !op.relational() {
		return nil, fmt.Errorf("operator %s is not applicable to %s", op, field)
	}
	return &TimePredicate{Field: field, Op: op, When: when}, nil
}

// Matches implements Predicate.
func (p *TimePredicate) Matches(rec FileRecord) (bool, error) {
	return compareTime(p.Op, timeValue(rec, p.Field), p.When)
}

// Timestamp literal layouts. The unpadded layout accepts both "2.1.2006"
// and "02.01.2006" style input.
const (
	layoutDateTime = "2.1.2006 15:04"
	layoutTimeOnly = "15:04"
)

// parseTimeLiteral parses a timestamp literal in either accepted form:
// full date and time, or time of day only, in which case today's date
// is substituted. Both resolve in local time.
func parseTimeLiteral(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutTimeOnly, s, time.Local); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, fmt.Errorf("invalid date/time value: %s", s)
}

// ParsePredicate parses the textual form "field,operator,value" into a
// typed predicate. The short form "field,value" means equality. Field
// and operator spellings are case-insensitive; the value keeps its
// case, since matching is case-sensitive. Only the first two commas
// separate, so a value may itself contain commas.
func ParsePredicate(s string) (Predicate, error) {
	parts := strings.SplitN(s, ",", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 2 {
		parts = []string{parts[0], "eq", parts[1]}
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid predicate %q: expected field,operator,value", s)
	}

	field, err := parseField(strings.ToLower(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid predicate %q: %w", s, err)
	}
	op, err := parseComparison(strings.ToLower(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid predicate %q: %w", s, err)
	}
	value := parts[2]

	switch field {
	case FieldName:
		return NewNamePredicate(op, value), nil
	case FieldExtension:
		return &ExtensionPredicate{Op: op, Value: value}, nil
	case FieldFileType:
		return &FileTypePredicate{Op: op, Value: value}, nil
	case FieldSize:
		size, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size value: %s", value)
		}
		return NewSizePredicate(op, size)
	case FieldModified, FieldAccessed, FieldCreated:
		when, err := parseTimeLiteral(value)
		if err != nil {
			return nil, err
		}
		return NewTimePredicate(field, op, when)
	}
	return nil, fmt.Errorf("invalid predicate: %s", s)
}
