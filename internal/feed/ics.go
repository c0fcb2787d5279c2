package feed

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// Filename is how the served calendar document names itself.
const Filename = "rooster.ics"

// RenderICS serializes events as an iCalendar document. now becomes the
// DTSTAMP of every event and is the only part of the output that varies
// between renders of the same input.
func RenderICS(events []Event, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rooster//schedule feed//NL")

	for _, ev := range events {
		ve := cal.AddEvent(ev.UID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetSummary(ev.Summary)
		ve.SetLocation(ev.Location)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
	}

	return cal.Serialize()
}
