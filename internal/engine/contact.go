package engine

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// BirthdayEntry is a read-only view of a contact's birthday relative to "now".
// It decouples listings and calendar export from the mutable Contact.
type BirthdayEntry struct {
	// UID is a deterministic hash of name and date, stable across exports.
	UID string

	Name string

	// DateOfBirth is the stored birthday at midnight UTC.
	DateOfBirth time.Time

	// NextOccurrence is the birthday in the current or next year.
	// This is the primary sorting key for the agenda.
	NextOccurrence time.Time

	// AgeNext is the age the person will turn at NextOccurrence.
	AgeNext int
}

// Entries returns one entry per contact with a birthday, sorted by next
// occurrence and then by name.
func Entries(contacts []*book.Contact, now time.Time) []BirthdayEntry {
	var entries []BirthdayEntry
	for _, c := range contacts {
		b, ok := c.Birthday()
		if !ok {
			continue
		}
		dob, _ := b.Date()
		next := book.NextOccurrence(now, dob)

		entries = append(entries, BirthdayEntry{
			UID:            entryUID(c.Name(), dob),
			Name:           c.Name(),
			DateOfBirth:    dob,
			NextOccurrence: next,
			AgeNext:        next.Year() - dob.Year(),
		})
	}

	slices.SortStableFunc(entries, func(a, b BirthdayEntry) int {
		if c := a.NextOccurrence.Compare(b.NextOccurrence); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// entryUID hashes name and date of birth with a salt so that re-exports of the
// same contact produce the same calendar UIDs.
func entryUID(name string, dob time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, dob.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
