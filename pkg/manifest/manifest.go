// Package manifest implements the aggregate index document that lists all
// known workout logs by date. The manifest is a secondary index over the
// per-date log files: it can always be rebuilt by enumerating date-named
// JSON files in the storage folder.
package manifest

import (
	"sort"
	"strings"
)

// FileName is the well-known name of the manifest document in the folder.
const FileName = "index.json"

// SchemaVersion is the current manifest schema version.
const SchemaVersion = 2

// Entry describes one known log, keyed by date.
type Entry struct {
	Date          string `json:"date"`
	File          string `json:"file"`
	Hash          string `json:"hash,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	SchemaVersion int    `json:"schema_version,omitempty"`
	SessionID     string `json:"session_id,omitempty"`
	WorkoutType   string `json:"workout_type,omitempty"`
}

// Manifest is the index document. Entries are kept sorted by date
// ascending with at most one entry per date.
type Manifest struct {
	SchemaVersion int     `json:"schema_version"`
	Entries       []Entry `json:"entries"`
}

// New returns an empty manifest at the current schema version.
func New() *Manifest {
	return &Manifest{
		SchemaVersion: SchemaVersion,
		Entries:       []Entry{},
	}
}

// Upsert replaces the entry for the given date or inserts a new one,
// then restores date ordering.
func (m *Manifest) Upsert(e Entry) {
	for i := range m.Entries {
		if m.Entries[i].Date == e.Date {
			m.Entries[i] = e
			SortEntries(m.Entries)
			return
		}
	}
	m.Entries = append(m.Entries, e)
	SortEntries(m.Entries)
}

// SortEntries orders entries by date ascending. ISO calendar dates sort
// correctly as strings.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// Before returns the entries strictly earlier than the cutoff date. An
// empty cutoff returns the input unchanged.
func Before(entries []Entry, cutoff string) []Entry {
	if cutoff == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date < cutoff {
			out = append(out, e)
		}
	}
	return out
}

// FromFileNames derives skeleton entries from a listing of JSON file names
// in the storage folder. Used when no manifest document exists. The
// manifest file itself is excluded; each date is the filename without its
// ".json" suffix. Only date and file are known in this form.
func FromFileNames(names []string) []Entry {
	entries := []Entry{}
	for _, name := range names {
		if name == FileName || !strings.HasSuffix(name, ".json") {
			continue
		}
		entries = append(entries, Entry{
			Date: strings.TrimSuffix(name, ".json"),
			File: name,
		})
	}
	SortEntries(entries)
	return entries
}

// LogFileName returns the backing file name for a log date.
func LogFileName(date string) string {
	return date + ".json"
}
