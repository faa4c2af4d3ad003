package query

import (
	"fmt"
	"time"
)

// FileRecord is a single directory entry with the metadata the engine
// queries. Records are built once by the scanner and never mutated;
// every pipeline stage returns a new collection instead of editing
// records in place.
type FileRecord struct {
	Name      string
	Extension string
	Size      uint64
	Modified  time.Time
	Accessed  time.Time
	Created   time.Time
	FileType  string
}

// File type tags carried by FileRecord.FileType.
const (
	TypeFile      = "File"
	TypeDirectory = "Directory"
)

// Field identifies one queryable record field.
type Field int

const (
	FieldName Field = iota
	FieldExtension
	FieldSize
	FieldModified
	FieldAccessed
	FieldCreated
	FieldFileType
)

// String returns the canonical spelling of the field.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldExtension:
		return "extension"
	case FieldSize:
		return "size"
	case FieldModified:
		return "modified"
	case FieldAccessed:
		return "accessed"
	case FieldCreated:
		return "created"
	case FieldFileType:
		return "filetype"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// parseField resolves a field spelling, including the short aliases
// accepted in textual query specs. The input must already be lowercased.
func parseField(s string) (Field, error) {
	switch s {
	case "name", "n":
		return FieldName, nil
	case "extension", "ext", "e":
		return FieldExtension, nil
	case "size", "s":
		return FieldSize, nil
	case "modified", "mod", "m":
		return FieldModified, nil
	case "accessed", "acc", "a":
		return FieldAccessed, nil
	case "created", "cre", "c":
		return FieldCreated, nil
	case "filetype", "file_type", "type", "f", "t":
		return FieldFileType, nil
	}
	return 0, fmt.Errorf("unknown field: %s", s)
}

// timeValue returns the timestamp the field refers to. Only valid for
// the three timestamp fields.
func timeValue(rec FileRecord, f Field) time.Time {
	switch f {
	case FieldModified:
		return rec.Modified
	case FieldAccessed:
		return rec.Accessed
	case FieldCreated:
		return rec.Created
	}
	return time.Time{}
}
