package query

// ApplyFilter returns the records matching the predicate, preserving
// input order. An empty input yields an empty result, never an error.
func ApplyFilter(records []FileRecord, p Predicate) ([]FileRecord, error) {
	filtered := make([]FileRecord, 0, len(records))
	for _, rec := range records {
		ok, err := p.Matches(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
