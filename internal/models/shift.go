// Package models defines the shift domain model shared across the service.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date format used for storage keys
// and event identifiers.
const DateLayout = "2006-01-02"

// Planning is the shift category. A worker holds at most one shift per
// category per day.
type Planning string

// The two shift categories appearing on the schedule photos.
const (
	PlanningPA Planning = "PA"
	PlanningPO Planning = "PO"
)

// ParsePlanning maps a two-letter category code onto a Planning value.
func ParsePlanning(code string) (Planning, error) {
	switch code {
	case "PA":
		return PlanningPA, nil
	case "PO":
		return PlanningPO, nil
	}
	return "", fmt.Errorf("models: unknown planning code %q", code)
}

// dayCodes maps weekdays onto the Dutch two-letter codes used in schedule
// announcements and event summaries.
var dayCodes = map[time.Weekday]string{
	time.Monday:    "MA",
	time.Tuesday:   "DI",
	time.Wednesday: "WO",
	time.Thursday:  "DO",
	time.Friday:    "VR",
	time.Saturday:  "ZA",
	time.Sunday:    "ZO",
}

// DayCode returns the Dutch two-letter code for the weekday of d.
func DayCode(d time.Time) string {
	return dayCodes[d.Weekday()]
}

// ISOWeekday returns the ISO-8601 weekday number of d (1=Monday..7=Sunday).
func ISOWeekday(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Shift is one worker's assignment on one date. The natural key is
// (Date, Planning, BoffID); the store upserts on it, overwriting the
// remaining fields.
type Shift struct {
	BoffID string
	Name   string

	Date     time.Time // calendar date at midnight UTC
	Planning Planning

	Start TimeOfDay
	End   TimeOfDay

	Info string // free-text note, empty means none
}

// UID returns the deterministic event identifier derived from the natural
// key. It is stable across renders of the same stored state.
func (s Shift) UID() string {
	return fmt.Sprintf("%s-%s-%s", s.Date.Format(DateLayout), s.Planning, s.BoffID)
}
