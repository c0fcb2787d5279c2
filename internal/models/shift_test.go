package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay: %v", err)
	}
	if tod.Hour != 7 || tod.Minute != 30 {
		t.Errorf("got %02d:%02d, want 07:30", tod.Hour, tod.Minute)
	}

	for _, bad := range []string{"", "late", "25:00", "12:61"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", bad)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod := TimeOfDay{Hour: 9, Minute: 5}
	if got := tod.String(); got != "09:05" {
		t.Errorf("String() = %q, want 09:05", got)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatal(err)
	}
	tod := TimeOfDay{Hour: 15}
	got := tod.At(date(2025, time.January, 6), loc)

	// Amsterdam is UTC+1 in January.
	want := time.Date(2025, time.January, 6, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("At() = %v, want %v", got, want)
	}
}

func TestShiftUID(t *testing.T) {
	s := Shift{BoffID: "b123", Date: date(2025, time.January, 5), Planning: PlanningPA}
	if got := s.UID(); got != "2025-01-05-PA-b123" {
		t.Errorf("UID() = %q", got)
	}
}

func TestParsePlanning(t *testing.T) {
	if p, err := ParsePlanning("PO"); err != nil || p != PlanningPO {
		t.Errorf("ParsePlanning(PO) = %v, %v", p, err)
	}
	if _, err := ParsePlanning("XX"); err == nil {
		t.Error("ParsePlanning(XX) should fail")
	}
}

func TestISOWeekday(t *testing.T) {
	// 2025-01-06 is a Monday, 2025-01-05 a Sunday.
	if got := ISOWeekday(date(2025, time.January, 6)); got != 1 {
		t.Errorf("Monday = %d, want 1", got)
	}
	if got := ISOWeekday(date(2025, time.January, 5)); got != 7 {
		t.Errorf("Sunday = %d, want 7", got)
	}
}

func TestDayCode(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{6, "MA"}, {7, "DI"}, {8, "WO"}, {9, "DO"}, {10, "VR"}, {11, "ZA"}, {12, "ZO"},
	}
	for _, c := range cases {
		if got := DayCode(date(2025, time.January, c.day)); got != c.want {
			t.Errorf("DayCode(2025-01-%02d) = %q, want %q", c.day, got, c.want)
		}
	}
}
