package query

import (
	"fmt"
	"strings"
	"time"
)

// SizeUnit is the bucket width used when grouping by size.
type SizeUnit int

const (
	UnitBytes SizeUnit = iota
	UnitKilobytes
	UnitMegabytes
	UnitGigabytes
	UnitTerabytes
)

// parseSizeUnit resolves a unit spelling. The input must already be
// lowercased.
func parseSizeUnit(s string) (SizeUnit, error) {
	switch s {
	case "bytes", "b":
		return UnitBytes, nil
	case "kilobytes", "kb":
		return UnitKilobytes, nil
	case "megabytes", "mb":
		return UnitMegabytes, nil
	case "gigabytes", "gb":
		return UnitGigabytes, nil
	case "terabytes", "tb":
		return UnitTerabytes, nil
	}
	return 0, fmt.Errorf("unknown size unit: %s", s)
}

// divisor returns the number of bytes per unit.
func (u SizeUnit) divisor() uint64 {
	switch u {
	case UnitKilobytes:
		return 1 << 10
	case UnitMegabytes:
		return 1 << 20
	case UnitGigabytes:
		return 1 << 30
	case UnitTerabytes:
		return 1 << 40
	}
	return 1
}

// suffix returns the display suffix of the unit.
func (u SizeUnit) suffix() string {
	switch u {
	case UnitKilobytes:
		return "KB"
	case UnitMegabytes:
		return "MB"
	case UnitGigabytes:
		return "GB"
	case UnitTerabytes:
		return "TB"
	}
	return "B"
}

// FormatSize converts a byte count to the unit using truncating
// integer division and appends the unit suffix. 1000 and 1023 bytes
// both format as "0 KB"; sizes that truncate to the same value share
// a bucket.
func (u SizeUnit) FormatSize(size uint64) string {
	return fmt.Sprintf("%d %s", size/u.divisor(), u.suffix())
}

// TimeMask selects which timestamp components survive into a group
// key. Components left false render as a "*" placeholder, so records
// differing only in masked-out components share a key. An all-false
// mask keys every record identically.
type TimeMask struct {
	Year   bool
	Month  bool
	Day    bool
	Hour   bool
	Minute bool
	Second bool
}

// FormatTime renders the key as day.month.year hour:minute:second,
// zero-padded, with "*" in place of each masked-out component.
func (m TimeMask) FormatTime(t time.Time) string {
	comp := func(on bool, width, value int) string {
		if !on {
			return "*"
		}
		return fmt.Sprintf("%0*d", width, value)
	}
	return fmt.Sprintf("%s.%s.%s %s:%s:%s",
		comp(m.Day, 2, t.Day()),
		comp(m.Month, 2, int(t.Month())),
		comp(m.Year, 4, t.Year()),
		comp(m.Hour, 2, t.Hour()),
		comp(m.Minute, 2, t.Minute()),
		comp(m.Second, 2, t.Second()),
	)
}

// parseTimeMask builds a mask from modifier flags. Unrecognized flags
// are ignored, so a list with no recognized flag yields the all-false
// mask rather than an error.
func parseTimeMask(flags []string) TimeMask {
	var m TimeMask
	for _, f := range flags {
		switch f {
		case "y", "year":
			m.Year = true
		case "m", "month":
			m.Month = true
		case "d", "day":
			m.Day = true
		case "h", "hour":
			m.Hour = true
		case "min", "minute":
			m.Minute = true
		case "s", "sec", "second":
			m.Second = true
		}
	}
	return m
}

// Grouping derives a string group key from one record field. Unit is
// meaningful only for size grouping, Mask only for the timestamp
// fields.
type Grouping struct {
	Field Field
	Unit  SizeUnit
	Mask  TimeMask
}

// Key derives the group key for one record. Extension and file type
// group on the raw value, so the empty extension is a valid, distinct
// key.
func (g *Grouping) Key(rec FileRecord) string {
	switch g.Field {
	case FieldExtension:
		return rec.Extension
	case FieldFileType:
		return rec.FileType
	case FieldSize:
		return g.Unit.FormatSize(rec.Size)
	case FieldModified, FieldAccessed, FieldCreated:
		return g.Mask.FormatTime(timeValue(rec, g.Field))
	}
	return ""
}

// ParseGrouping parses the textual form "field[,modifier...]".
// Extension and file type take no modifiers; size requires a unit;
// the timestamp fields require at least one component flag position,
// though unrecognized flags are tolerated. Spellings are
// case-insensitive.
func ParseGrouping(s string) (*Grouping, error) {
	parts := strings.Split(strings.ToLower(s), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch parts[0] {
	case "extension", "ext", "e":
		return &Grouping{Field: FieldExtension}, nil
	case "filetype", "ftype":
		return &Grouping{Field: FieldFileType}, nil
	}

	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid grouping %q: expected field,modifier", s)
	}

	switch parts[0] {
	case "size", "s":
		unit, err := parseSizeUnit(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid grouping %q: %w", s, err)
		}
		return &Grouping{Field: FieldSize, Unit: unit}, nil
	case "modified", "mod", "m":
		return &Grouping{Field: FieldModified, Mask: parseTimeMask(parts[1:])}, nil
	case "accessed", "acc", "a":
		return &Grouping{Field: FieldAccessed, Mask: parseTimeMask(parts[1:])}, nil
	case "created", "cre", "c":
		return &Grouping{Field: FieldCreated, Mask: parseTimeMask(parts[1:])}, nil
	}

	return nil, fmt.Errorf("invalid grouping %q: unknown field: %s", s, parts[0])
}

// ApplyGrouping partitions records by their derived key. Every record
// lands in exactly one group; key order is unspecified.
func ApplyGrouping(records []FileRecord, g *Grouping) map[string][]FileRecord {
	groups := make(map[string][]FileRecord)
	for _, rec := range records {
		key := g.Key(rec)
		groups[key] = append(groups[key], rec)
	}
	return groups
}
