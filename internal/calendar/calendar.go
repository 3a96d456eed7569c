// Package calendar renders meetings as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/aidar/event-planner/internal/domain"
)

const (
	productID = "-//event-planner//meetings//EN"
	uidDomain = "event-planner"
)

// ContentType is the media type of the rendered feed.
const ContentType = "text/calendar; charset=utf-8"

// Build converts an event's meetings into a VCALENDAR with one VEVENT per
// meeting. Attendees without an email, and missing users, are left out.
func Build(event *domain.Event, meetings []*domain.EnrichedMeeting, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.Set(&ical.Prop{Name: "X-WR-CALNAME", Params: ical.Params{}, Value: event.Name})

	for _, m := range meetings {
		cal.Children = append(cal.Children, toVEvent(m, now))
	}
	return cal
}

// Write encodes the calendar.
func Write(w io.Writer, cal *ical.Calendar) error {
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func toVEvent(m *domain.EnrichedMeeting, now time.Time) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", m.ID, uidDomain))
	ve.Props.SetText(ical.PropSummary, m.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, m.StartsAt.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, m.EndsAt.UTC())

	if m.Location != nil && *m.Location != "" {
		ve.Props.SetText(ical.PropLocation, *m.Location)
	}
	if m.HasNotes {
		ve.Props.SetText(ical.PropDescription, "Meeting notes available.")
	}

	for _, attendee := range m.Attendees {
		if attendee == nil || attendee.Email == nil {
			continue
		}
		// ATTENDEE is a CAL-ADDRESS, so no VALUE parameter is written
		p := ical.NewProp(ical.PropAttendee)
		p.Value = fmt.Sprintf("mailto:%s", *attendee.Email)
		p.Params.Set(ical.ParamCommonName, attendee.Name)
		ve.Props.Add(p)
	}
	return ve
}
