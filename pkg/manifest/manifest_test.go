package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertKeepsEntriesSortedAndUnique(t *testing.T) {
	m := New()
	m.Upsert(Entry{Date: "2024-05-03", File: "2024-05-03.json"})
	m.Upsert(Entry{Date: "2024-05-01", File: "2024-05-01.json"})
	m.Upsert(Entry{Date: "2024-05-02", File: "2024-05-02.json"})

	require.Len(t, m.Entries, 3)
	assert.Equal(t, "2024-05-01", m.Entries[0].Date)
	assert.Equal(t, "2024-05-02", m.Entries[1].Date)
	assert.Equal(t, "2024-05-03", m.Entries[2].Date)

	// Re-upserting an existing date replaces the entry in place.
	m.Upsert(Entry{Date: "2024-05-02", File: "2024-05-02.json", Hash: "abc"})
	require.Len(t, m.Entries, 3)
	assert.Equal(t, "abc", m.Entries[1].Hash)

	seen := map[string]bool{}
	for _, e := range m.Entries {
		assert.False(t, seen[e.Date], "duplicate date %s", e.Date)
		seen[e.Date] = true
	}
}

func TestUpsertRepeated(t *testing.T) {
	m := New()
	for i := 0; i < 5; i++ {
		m.Upsert(Entry{Date: "2024-05-01", File: "2024-05-01.json"})
	}
	assert.Len(t, m.Entries, 1)
}

func TestBefore(t *testing.T) {
	entries := []Entry{
		{Date: "2024-05-01"},
		{Date: "2024-05-02"},
		{Date: "2024-05-03"},
	}

	// Cutoff is exclusive.
	filtered := Before(entries, "2024-05-03")
	require.Len(t, filtered, 2)
	assert.Equal(t, "2024-05-02", filtered[1].Date)

	assert.Empty(t, Before(entries, "2024-05-01"))
	assert.Len(t, Before(entries, ""), 3)
}

func TestFromFileNames(t *testing.T) {
	entries := FromFileNames([]string{
		"2024-05-02.json",
		"index.json",
		"2024-05-01.json",
		"notes.txt",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Date: "2024-05-01", File: "2024-05-01.json"}, entries[0])
	assert.Equal(t, Entry{Date: "2024-05-02", File: "2024-05-02.json"}, entries[1])
}

func TestLogFileName(t *testing.T) {
	assert.Equal(t, "2024-05-01.json", LogFileName("2024-05-01"))
}
