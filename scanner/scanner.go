package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/djherbis/times"
	"github.com/rs/zerolog"

	"github.com/vegasq/lsq/query"
)

// Scanner lists the entries of a directory and converts them to query
// records.
type Scanner struct {
	logger zerolog.Logger
}

// NewScanner creates a scanner that reports skipped entries through the
// given logger.
func NewScanner(logger zerolog.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan reads the immediate entries of the directory at path and returns
// one record per entry. It does not recurse into subdirectories.
//
// An entry whose metadata cannot be read is logged and skipped; the
// scan itself fails only when the directory cannot be listed at all.
//
// Example:
//
//	s := scanner.NewScanner(logger)
//	records, err := s.Scan("/var/log")
//	if err != nil {
//	    log.Fatal(err)
//	}
func (s *Scanner) Scan(path string) ([]query.FileRecord, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	records := make([]query.FileRecord, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			s.logger.Warn().Err(err).Str("entry", entry.Name()).Msg("skipping unreadable entry")
			continue
		}
		records = append(records, buildRecord(info))
	}

	return records, nil
}

// buildRecord converts one directory entry's metadata to a record.
//
// The creation timestamp uses the filesystem birth time where the
// platform exposes one, falling back to the inode change time and
// finally to the modification time.
func buildRecord(info os.FileInfo) query.FileRecord {
	ts := times.Get(info)

	created := info.ModTime()
	if ts.HasBirthTime() {
		created = ts.BirthTime()
	} else if ts.HasChangeTime() {
		created = ts.ChangeTime()
	}

	fileType := query.TypeFile
	if info.IsDir() {
		fileType = query.TypeDirectory
	}

	return query.FileRecord{
		Name:      info.Name(),
		Extension: extensionOf(info.Name()),
		Size:      uint64(info.Size()),
		Modified:  info.ModTime(),
		Accessed:  ts.AccessTime(),
		Created:   created,
		FileType:  fileType,
	}
}

// extensionOf returns the extension without its leading dot. Dotfiles
// such as .gitignore and names ending in a bare dot have no extension.
func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
