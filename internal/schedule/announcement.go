// Package schedule parses announcement messages and derives shift records
// from reconstructed table grids.
package schedule

import (
	"regexp"
	"time"

	"github.com/starford/rooster/internal/models"
)

// announcementRe matches schedule announcements such as
// "Planning MAPA 05-01-2025": a Dutch day code, a planning code, and a
// strict DD-MM-YYYY date. The day code is never cross-checked against the
// date's actual weekday; the date is authoritative.
var announcementRe = regexp.MustCompile(
	`^Planning (?P<day>MA|DI|WO|DO|VR|ZA|ZO)(?P<type>PA|PO) (?P<date>(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4})$`,
)

const announcementDateLayout = "02-01-2006"

// Metadata identifies the schedule a message announces.
type Metadata struct {
	Date     time.Time
	Planning models.Planning
}

// ParseAnnouncement extracts schedule metadata from a message body. ok is
// false for any body that is not a schedule announcement; that is a normal
// outcome for unrelated chatter, not an error.
func ParseAnnouncement(body string) (Metadata, bool) {
	m := announcementRe.FindStringSubmatch(body)
	if m == nil {
		return Metadata{}, false
	}

	planning, err := models.ParsePlanning(m[announcementRe.SubexpIndex("type")])
	if err != nil {
		return Metadata{}, false
	}

	date, err := time.Parse(announcementDateLayout, m[announcementRe.SubexpIndex("date")])
	if err != nil {
		return Metadata{}, false
	}

	return Metadata{Date: date, Planning: planning}, true
}
