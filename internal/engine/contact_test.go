package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/engine"
)

// TestEntries verifies next-occurrence projection, age and agenda ordering.
func TestEntries(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	contacts := []*book.Contact{
		contact(t, "Past", "01.01.1990"),
		contact(t, "Future", "31.12.1990"),
		contact(t, "Today", "15.06.1990"),
		contact(t, "Leapling", "29.02.2000"),
		contact(t, "Twin B", "20.06.1995"),
		contact(t, "Twin A", "20.06.1995"),
		contact(t, "No Birthday", ""),
	}

	entries := engine.Entries(contacts, now)
	require.Len(t, entries, 6)

	var got []string
	for _, e := range entries {
		got = append(got, e.Name)
	}
	assert.Equal(t, []string{"Today", "Twin A", "Twin B", "Future", "Past", "Leapling"}, got,
		"Sorted by next occurrence, ties broken by name")

	byName := make(map[string]engine.BirthdayEntry)
	for _, e := range entries {
		byName[e.Name] = e
	}

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), byName["Past"].NextOccurrence)
	assert.Equal(t, 36, byName["Past"].AgeNext)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), byName["Future"].NextOccurrence)
	assert.Equal(t, 35, byName["Future"].AgeNext)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), byName["Today"].NextOccurrence)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), byName["Leapling"].NextOccurrence)
	assert.Equal(t, 26, byName["Leapling"].AgeNext)

	assert.Len(t, byName["Past"].UID, 32, "16 bytes, hex encoded")
	assert.NotEqual(t, byName["Twin A"].UID, byName["Twin B"].UID)
}

func TestEntries_Empty(t *testing.T) {
	assert.Empty(t, engine.Entries(nil, time.Now()))
}
