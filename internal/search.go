package internal

import (
	"bytes"
	"database/sql"
	"regexp"
	"strings"
)

// contextWindow is how many bytes of surrounding text are captured around
// the first occurrence of the search term.
const contextWindow = 200

var printableRunPattern = regexp.MustCompile(`[\x20-\x7E]{8,}`)

// SearchMatch describes one record that contains the search term. Kind is
// "json" when the value is valid JSON, "text" when it decodes as readable
// text, otherwise "binary".
type SearchMatch struct {
	Table    string
	Key      string
	Kind     string
	Position int
	Context  string
	// Strings holds printable ASCII runs from binary values that contain
	// the term, best-effort extraction only.
	Strings []string
}

// SearchStore scans every key-value table for records containing the term.
// This is a generic byte search across the whole store, not message parsing:
// it looks inside JSON, text and binary values alike and reports where the
// term was found.
func SearchStore(db *sql.DB, term string) ([]SearchMatch, error) {
	if term == "" {
		return nil, nil
	}

	tables, err := ListTables(db)
	if err != nil {
		return nil, err
	}

	needle := []byte(term)
	var matches []SearchMatch

	for _, table := range tables {
		if table != TableItemTable && table != TableDiskKV {
			continue
		}

		records, err := QueryRecords(db, table, "")
		if err != nil {
			return nil, err
		}

		for _, rec := range records {
			if rec.Value == nil || !bytes.Contains(rec.Value, needle) {
				continue
			}
			matches = append(matches, matchRecord(table, rec, term))
		}
	}

	return matches, nil
}

func matchRecord(table string, rec RawRecord, term string) SearchMatch {
	decoded := DecodeArchival(rec.Value)

	match := SearchMatch{
		Table: table,
		Key:   rec.Key,
		Kind:  decoded.Kind.String(),
	}

	text := lossyString(rec.Value)
	if pos := strings.Index(text, term); pos >= 0 {
		match.Position = pos
		start := pos - contextWindow
		if start < 0 {
			start = 0
		}
		end := pos + len(term) + contextWindow
		if end > len(text) {
			end = len(text)
		}
		match.Context = text[start:end]
	}

	if decoded.Kind == KindBinary {
		for _, run := range printableRunPattern.FindAll(rec.Value, -1) {
			if bytes.Contains(run, []byte(term)) {
				match.Strings = append(match.Strings, string(run))
			}
		}
	}

	return match
}
