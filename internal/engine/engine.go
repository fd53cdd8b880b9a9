package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Generator turns the directory's birthdays into an iCalendar feed.
type Generator struct {
	Clock book.Clock // Interface for time mocking.

	// FormatSummary allows the shell to inject localized strings into the export.
	FormatSummary func(name string, age int) string
}

// Calendar renders one all-day event per contact for the previous, current and
// next year. It returns the ICS data and how many birthdays fall on today.
func (g *Generator) Calendar(ctx context.Context, contacts []*book.Contact, reminderTrigger string) ([]byte, int, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	cal := ical.NewCalendar()

	// Set standard iCalendar headers
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Birthdays are local calendar dates; only DTSTAMP is converted to UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	today := 0
	for _, entry := range Entries(contacts, now) {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		events, isToday := g.createEvents(entry, reminderTrigger, now)
		if isToday {
			today++
			log.Debug(config.MsgBdayToday, config.LogKeyName, entry.Name)
		}

		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	// A VCALENDAR with no components fails encoding; emit the minimal stub instead.
	if len(cal.Children) == 0 {
		log.Info(config.MsgCalendarEmpty)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	log.Info(config.MsgCalendarDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyEvents, len(cal.Children)),
			slog.Int(config.LogKeyToday, today),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), today, nil
}

// createEvents generates calendar events for CurrentYear-1, CurrentYear and CurrentYear+1.
// No event is created for a year before the person was born.
func (g *Generator) createEvents(entry BirthdayEntry, reminderTrigger string, now time.Time) ([]*ical.Event, bool) {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}

	var events []*ical.Event
	isToday := false

	todayYear, todayMonth, todayDay := now.Date()
	dob := entry.DateOfBirth

	for _, y := range targetYears {
		if y < dob.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, entry.UID, y, config.ICalDomain))

		age := y - dob.Year()
		summary := fmt.Sprintf(config.FallbackSummary, entry.Name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(entry.Name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalises to Mar 1 in non-leap years.
		eventDate := time.Date(y, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		if y == todayYear && eventDate.Month() == todayMonth && eventDate.Day() == todayDay {
			isToday = true
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if reminderTrigger != "" {
			addAlarm(event, reminderTrigger, summary)
		}

		events = append(events, event)
	}
	return events, isToday
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalAlarm)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
