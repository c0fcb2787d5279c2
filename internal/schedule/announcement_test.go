package schedule

import (
	"testing"
	"time"

	"github.com/starford/rooster/internal/models"
)

func TestParseAnnouncement(t *testing.T) {
	meta, ok := ParseAnnouncement("Planning MAPA 05-01-2025")
	if !ok {
		t.Fatal("expected match")
	}
	want := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !meta.Date.Equal(want) {
		t.Errorf("date = %v, want %v", meta.Date, want)
	}
	if meta.Planning != models.PlanningPA {
		t.Errorf("planning = %v, want PA", meta.Planning)
	}
}

func TestParseAnnouncementPO(t *testing.T) {
	meta, ok := ParseAnnouncement("Planning ZOPO 28-02-2025")
	if !ok {
		t.Fatal("expected match")
	}
	if meta.Planning != models.PlanningPO {
		t.Errorf("planning = %v, want PO", meta.Planning)
	}
}

func TestParseAnnouncementDayCodeNotCrossChecked(t *testing.T) {
	// 2025-01-05 is a Sunday; ZA claims Saturday. The date wins.
	meta, ok := ParseAnnouncement("Planning ZAPA 05-01-2025")
	if !ok {
		t.Fatal("expected match despite mismatched day code")
	}
	if meta.Date.Weekday() != time.Sunday {
		t.Errorf("weekday = %v, want Sunday", meta.Date.Weekday())
	}
}

func TestParseAnnouncementRejects(t *testing.T) {
	cases := []string{
		"Planning XXPA 05-01-2025", // invalid day code
		"Planning MAXX 05-01-2025", // invalid planning code
		"Planning MAPA 5-1-2025",   // day and month must be two digits
		"Planning MAPA 32-01-2025", // no such day
		"Planning MAPA 05-13-2025", // no such month
		"Planning MAPA 05-01-2025 extra",
		"planning MAPA 05-01-2025", // case matters
		"hey everyone",
		"",
	}
	for _, body := range cases {
		if _, ok := ParseAnnouncement(body); ok {
			t.Errorf("ParseAnnouncement(%q) should not match", body)
		}
	}
}
