// Package scanner reads directory entries and converts their metadata
// into query records.
//
// A scan covers the immediate entries of one directory, mirroring what
// ls shows. Each entry becomes a query.FileRecord carrying the name,
// extension, size, the three filesystem timestamps and whether the
// entry is a file or a directory.
//
// # Basic Usage
//
//	s := scanner.NewScanner(logger)
//	records, err := s.Scan(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range records {
//	    fmt.Printf("%s (%d bytes)\n", rec.Name, rec.Size)
//	}
//
// # Timestamps
//
// Modification time comes from the standard file info. Access and
// creation times come from github.com/djherbis/times; on platforms
// without a birth time the creation timestamp falls back to the inode
// change time, then to the modification time.
//
// # Unreadable Entries
//
// Entries whose metadata cannot be read, for example because they were
// removed mid-scan, are logged at warn level and left out of the
// result. Only a directory that cannot be listed at all fails the scan.
package scanner
