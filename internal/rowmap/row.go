// Package rowmap builds canonical Customer and Order records from the
// loosely-structured rows of an imported spreadsheet. Column headers are
// matched against per-field alias lists, so column order and spelling
// (including the legacy localized headers) do not matter.
package rowmap

import "strings"

// Row is one tabular line keyed by column header.
type Row map[string]string

// First returns the value of the first alias present in the row with a
// non-blank value. The bool distinguishes "not found" from "found but
// empty".
func (r Row) First(aliases []string) (string, bool) {
	for _, key := range aliases {
		if v, ok := r[key]; ok {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				return trimmed, true
			}
		}
	}
	return "", false
}

// Get is First with a default for absent fields.
func (r Row) Get(aliases []string, def string) string {
	if v, ok := r.First(aliases); ok {
		return v
	}
	return def
}

// FromRecord zips a header row and a data record into a Row. Short
// records are tolerated; extra cells beyond the header are ignored.
func FromRecord(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i >= len(record) {
			break
		}
		row[strings.TrimSpace(h)] = record[i]
	}
	return row
}
