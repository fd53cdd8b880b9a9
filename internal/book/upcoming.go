package book

import (
	"fmt"
	"strings"
	"time"
)

// DefaultHorizonDays is the number of days, starting today, considered upcoming.
const DefaultHorizonDays = 7

// congratulationOrder is the emission order of weekday groups.
// Weekend occurrences are moved to Monday, so Saturday and Sunday never appear.
var congratulationOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// CongratulationEntry is a derived, ephemeral record of who to congratulate when.
type CongratulationEntry struct {
	Name string
	// Occurrence is the birthday itself in the target year.
	Occurrence time.Time
	// Date is Occurrence moved off the weekend.
	Date    time.Time
	Weekday time.Weekday
}

// WeekdayName returns the fixed English weekday name of the congratulation date.
func (e CongratulationEntry) WeekdayName() string {
	return e.Weekday.String()
}

// WeekdayGroup holds the names to congratulate on one weekday.
type WeekdayGroup struct {
	Weekday time.Weekday
	Names   []string
}

func (g WeekdayGroup) String() string {
	return fmt.Sprintf("%s: %s", g.Weekday, strings.Join(g.Names, ", "))
}

// NextOccurrence returns the birthday's month and day applied to today's year,
// or to the next year when that date has already passed.
// Feb 29 falls on Mar 1 in non-leap years (time.Date normalisation).
func NextOccurrence(today, birthDate time.Time) time.Time {
	today = dateOf(today)
	candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// CongratulationDate moves Saturday and Sunday occurrences to the following Monday.
func CongratulationDate(occurrence time.Time) time.Time {
	switch occurrence.Weekday() {
	case time.Saturday:
		return occurrence.AddDate(0, 0, 2)
	case time.Sunday:
		return occurrence.AddDate(0, 0, 1)
	default:
		return occurrence
	}
}

// UpcomingBirthdays returns, in contact order, every contact whose next
// birthday falls within [today, today+horizonDays). Contacts without a
// birthday are skipped. The result depends only on the arguments.
func UpcomingBirthdays(contacts []*Contact, today time.Time, horizonDays int) []CongratulationEntry {
	today = dateOf(today)
	var entries []CongratulationEntry

	for _, c := range contacts {
		b, ok := c.Birthday()
		if !ok {
			continue
		}
		birthDate, _ := b.Date()

		occurrence := NextOccurrence(today, birthDate)
		delta := daysBetween(today, occurrence)
		if delta < 0 || delta >= horizonDays {
			continue
		}

		date := CongratulationDate(occurrence)
		entries = append(entries, CongratulationEntry{
			Name:       c.Name(),
			Occurrence: occurrence,
			Date:       date,
			Weekday:    date.Weekday(),
		})
	}
	return entries
}

// GroupByWeekday groups entries Monday to Friday, keeping entry order within a group.
func GroupByWeekday(entries []CongratulationEntry) []WeekdayGroup {
	byDay := make(map[time.Weekday][]string)
	for _, e := range entries {
		byDay[e.Weekday] = append(byDay[e.Weekday], e.Name)
	}

	var groups []WeekdayGroup
	for _, day := range congratulationOrder {
		if names, ok := byDay[day]; ok {
			groups = append(groups, WeekdayGroup{Weekday: day, Names: names})
		}
	}
	return groups
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
