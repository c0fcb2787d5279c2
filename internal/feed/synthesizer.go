// Package feed renders the worker's calendar: stored shift history merged
// with placeholder shifts synthesized for upcoming allowed weekdays.
package feed

import (
	"time"

	"github.com/starford/rooster/internal/models"
)

// TimezoneName is the zone all shift wall-clock times are anchored in.
const TimezoneName = "Europe/Amsterdam"

// Location is printed on every rendered event.
const Location = "De Bofkont"

// placeholderWindow is how many days past the anchor date placeholders are
// synthesized for.
const placeholderWindow = 28

// Placeholder shifts assume the usual evening window until a real schedule
// photo replaces them.
var (
	placeholderStart = models.TimeOfDay{Hour: 15}
	placeholderEnd   = models.TimeOfDay{Hour: 22}
)

// Event is one calendar entry, derived per render and never persisted.
// Start and End are absolute instants; the serializer renders them in UTC.
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Location    string
	Description string
}

// Synthesizer builds calendar events from stored shifts.
type Synthesizer struct {
	boffID   string
	name     string
	weekdays map[int]bool // allowed ISO weekday numbers for placeholders
	loc      *time.Location
	now      func() time.Time
}

// NewSynthesizer creates a synthesizer for one worker. weekdays lists the
// ISO weekday numbers (1=Monday..7=Sunday) eligible for placeholders.
func NewSynthesizer(boffID, name string, weekdays []int, loc *time.Location) *Synthesizer {
	allowed := make(map[int]bool, len(weekdays))
	for _, d := range weekdays {
		allowed[d] = true
	}
	return &Synthesizer{
		boffID:   boffID,
		name:     name,
		weekdays: allowed,
		loc:      loc,
		now:      time.Now,
	}
}

// Events merges stored shifts with synthesized placeholders and renders
// one event per shift. For unchanged input the uids, starts, ends, and
// summaries are identical across calls.
func (s *Synthesizer) Events(stored []models.Shift) []Event {
	shifts := append(append([]models.Shift(nil), stored...), s.placeholders(stored)...)

	events := make([]Event, 0, len(shifts))
	for _, shift := range shifts {
		events = append(events, s.event(shift))
	}
	return events
}

// placeholders synthesizes assumed future shifts: one per allowed weekday
// within placeholderWindow days strictly after the anchor. The anchor is
// the most recent stored date, or today when no history exists, so
// synthesized dates never collide with stored ones.
func (s *Synthesizer) placeholders(stored []models.Shift) []models.Shift {
	anchor := s.anchor(stored)

	var out []models.Shift
	for off := 1; off <= placeholderWindow; off++ {
		d := anchor.AddDate(0, 0, off)
		if !s.weekdays[models.ISOWeekday(d)] {
			continue
		}
		out = append(out, models.Shift{
			BoffID:   s.boffID,
			Name:     s.name,
			Date:     d,
			Planning: models.PlanningPA,
			Start:    placeholderStart,
			End:      placeholderEnd,
		})
	}
	return out
}

func (s *Synthesizer) anchor(stored []models.Shift) time.Time {
	var latest time.Time
	for _, shift := range stored {
		if shift.Date.After(latest) {
			latest = shift.Date
		}
	}
	if !latest.IsZero() {
		return latest
	}
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// event renders one shift. Wall-clock times are anchored in the service
// timezone; the summary is the Dutch day code of the date followed by the
// planning code, e.g. "MAPA".
func (s *Synthesizer) event(shift models.Shift) Event {
	ev := Event{
		UID:      shift.UID(),
		Start:    shift.Start.At(shift.Date, s.loc),
		End:      shift.End.At(shift.Date, s.loc),
		Summary:  models.DayCode(shift.Date) + string(shift.Planning),
		Location: Location,
	}
	if shift.Info != "" {
		ev.Description = shift.Info
	}
	return ev
}
