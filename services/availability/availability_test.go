package availability

import (
	"testing"
	"time"

	"fixly/models"
)

// monday is 2025-06-02; all clock fixtures are relative to it.
var monday = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func weekSchedule() models.WeeklySchedule {
	s := DefaultSchedule()
	s["monday"] = models.DaySchedule{
		Available: true,
		Hours: []models.TimeRange{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "17:00"},
		},
	}
	s["wednesday"] = models.DaySchedule{
		Available: true,
		Hours:     []models.TimeRange{{Start: "10:00", End: "16:00"}},
	}
	return s
}

func testAvailability() models.Availability {
	return models.Availability{
		Schedule:          weekSchedule(),
		BookingBuffer:     60,
		MaxAdvanceBooking: 30,
		BlackoutDates:     []models.BlackoutDate{{Date: "2025-06-09", Reason: "vacation"}},
	}
}

func TestDefaultScheduleCoversAllDays(t *testing.T) {
	s := DefaultSchedule()
	if len(s) != 7 {
		t.Fatalf("expected 7 days, got %d", len(s))
	}
	for _, day := range DayNames {
		d, ok := s[day]
		if !ok {
			t.Fatalf("missing day %s", day)
		}
		if d.Available || len(d.Hours) != 0 {
			t.Errorf("%s should start unavailable with no hours", day)
		}
	}
}

func TestIsDayAvailable(t *testing.T) {
	s := weekSchedule()
	if !IsDayAvailable(s, "monday") {
		t.Error("monday should be available")
	}
	if IsDayAvailable(s, "tuesday") {
		t.Error("tuesday should not be available")
	}

	// Available flag without hours is not bookable.
	s["friday"] = models.DaySchedule{Available: true, Hours: []models.TimeRange{}}
	if IsDayAvailable(s, "friday") {
		t.Error("a day with no hour ranges should not be bookable")
	}
}

func TestSlotsForDateWeekdayResolution(t *testing.T) {
	av := testAvailability()

	slots, err := SlotsForDate(av, "2025-06-04", monday) // a Wednesday
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 || slots[0].Start != "10:00" {
		t.Fatalf("expected wednesday hours, got %v", slots)
	}

	slots, err = SlotsForDate(av, "2025-06-03", monday) // a Tuesday
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on an unavailable day, got %v", slots)
	}
}

func TestSlotsForDateBlackout(t *testing.T) {
	av := testAvailability()
	// 2025-06-09 is a Monday but blacked out.
	slots, err := SlotsForDate(av, "2025-06-09", monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a blackout date, got %v", slots)
	}
}

func TestSlotsForDateTodayBuffer(t *testing.T) {
	av := testAvailability()

	// 08:00 now, 60 minute buffer: both morning and afternoon ranges stand.
	slots, err := SlotsForDate(av, "2025-06-02", monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected both ranges at 08:00, got %v", slots)
	}

	// 08:30 now: the 09:00 range starts within the buffer and is dropped.
	later := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)
	slots, err = SlotsForDate(av, "2025-06-02", later)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 || slots[0].Start != "14:00" {
		t.Fatalf("expected only the afternoon range at 08:30, got %v", slots)
	}
}

func TestSlotsForDateRejectsBadDate(t *testing.T) {
	if _, err := SlotsForDate(testAvailability(), "06/02/2025", monday); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestContainsTime(t *testing.T) {
	ranges := []models.TimeRange{{Start: "09:00", End: "12:00"}}

	cases := []struct {
		clock string
		want  bool
	}{
		{"09:00", true},  // start inclusive
		{"11:59", true},
		{"12:00", false}, // end exclusive
		{"08:59", false},
	}
	for _, tc := range cases {
		got, err := ContainsTime(ranges, tc.clock)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("ContainsTime(%s) = %v, want %v", tc.clock, got, tc.want)
		}
	}

	if _, err := ContainsTime(ranges, "9am"); err == nil {
		t.Error("expected an error for a malformed clock value")
	}
}

func TestWithinBookingHorizon(t *testing.T) {
	cases := []struct {
		name       string
		date       string
		allowToday bool
		want       bool
	}{
		{"today not bookable", "2025-06-02", false, false},
		{"today bookable when urgent+emergency", "2025-06-02", true, true},
		{"tomorrow bookable", "2025-06-03", false, true},
		{"horizon boundary inclusive", "2025-07-02", false, true},
		{"past horizon", "2025-07-03", false, false},
		{"yesterday", "2025-06-01", true, false},
	}
	for _, tc := range cases {
		got, err := WithinBookingHorizon(tc.date, 30, tc.allowToday, monday)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestToggleDayOffClearsHours(t *testing.T) {
	s := weekSchedule()
	out := ToggleDay(s, "monday")
	if out["monday"].Available {
		t.Error("monday should be toggled off")
	}
	if len(out["monday"].Hours) != 0 {
		t.Error("toggling a day off should clear its hours")
	}
	// Input untouched.
	if !s["monday"].Available || len(s["monday"].Hours) != 2 {
		t.Error("ToggleDay should not mutate its input")
	}
}

func TestSetHoursMarksAvailable(t *testing.T) {
	s := DefaultSchedule()
	out := SetHours(s, "tuesday", []models.TimeRange{{Start: "08:00", End: "10:00"}})
	if !out["tuesday"].Available || len(out["tuesday"].Hours) != 1 {
		t.Fatalf("unexpected tuesday state: %+v", out["tuesday"])
	}
}

func TestAddBlackoutDate(t *testing.T) {
	av := testAvailability()

	out, err := AddBlackoutDate(av, "2025-06-16", "training")
	if err != nil {
		t.Fatal(err)
	}
	if len(out.BlackoutDates) != 2 {
		t.Fatalf("expected 2 blackout dates, got %d", len(out.BlackoutDates))
	}
	if len(av.BlackoutDates) != 1 {
		t.Error("AddBlackoutDate should not mutate its input")
	}

	if _, err := AddBlackoutDate(av, "2025-06-09", "again"); err == nil {
		t.Error("expected an error for a duplicate blackout date")
	}
	if _, err := AddBlackoutDate(av, "June 9", ""); err == nil {
		t.Error("expected an error for a malformed blackout date")
	}
}

func TestRemoveBlackoutDate(t *testing.T) {
	av := testAvailability()
	out := RemoveBlackoutDate(av, "2025-06-09")
	if len(out.BlackoutDates) != 0 {
		t.Fatalf("expected blackout removed, got %v", out.BlackoutDates)
	}
	// Removing an absent date is a no-op.
	out = RemoveBlackoutDate(av, "2030-01-01")
	if len(out.BlackoutDates) != 1 {
		t.Error("removing an absent date should leave the list unchanged")
	}
}

func TestValidate(t *testing.T) {
	valid := testAvailability()
	warnings, err := Validate(valid)
	if err != nil {
		t.Fatalf("valid availability rejected: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	t.Run("missing weekday", func(t *testing.T) {
		av := testAvailability()
		delete(av.Schedule, "sunday")
		if _, err := Validate(av); err == nil {
			t.Error("expected an error for a missing weekday")
		}
	})

	t.Run("hours on unavailable day", func(t *testing.T) {
		av := testAvailability()
		av.Schedule["tuesday"] = models.DaySchedule{
			Available: false,
			Hours:     []models.TimeRange{{Start: "09:00", End: "10:00"}},
		}
		if _, err := Validate(av); err == nil {
			t.Error("expected an error for hours on an unavailable day")
		}
	})

	t.Run("available day without hours warns", func(t *testing.T) {
		av := testAvailability()
		av.Schedule["friday"] = models.DaySchedule{Available: true, Hours: []models.TimeRange{}}
		warnings, err := Validate(av)
		if err != nil {
			t.Fatal(err)
		}
		if len(warnings) != 1 {
			t.Fatalf("expected one warning, got %v", warnings)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		av := testAvailability()
		av.Schedule["monday"] = models.DaySchedule{
			Available: true,
			Hours:     []models.TimeRange{{Start: "15:00", End: "09:00"}},
		}
		if _, err := Validate(av); err == nil {
			t.Error("expected an error for a range that ends before it starts")
		}
	})

	t.Run("buffer bounds", func(t *testing.T) {
		for _, buffer := range []int{14, 181, 0, -5} {
			av := testAvailability()
			av.BookingBuffer = buffer
			if _, err := Validate(av); err == nil {
				t.Errorf("expected an error for bookingBuffer %d", buffer)
			}
		}
		for _, buffer := range []int{15, 180} {
			av := testAvailability()
			av.BookingBuffer = buffer
			if _, err := Validate(av); err != nil {
				t.Errorf("bookingBuffer %d should be valid: %v", buffer, err)
			}
		}
	})

	t.Run("horizon bounds", func(t *testing.T) {
		for _, days := range []int{0, 366} {
			av := testAvailability()
			av.MaxAdvanceBooking = days
			if _, err := Validate(av); err == nil {
				t.Errorf("expected an error for maxAdvanceBooking %d", days)
			}
		}
	})

	t.Run("duplicate blackouts", func(t *testing.T) {
		av := testAvailability()
		av.BlackoutDates = append(av.BlackoutDates, models.BlackoutDate{Date: "2025-06-09"})
		if _, err := Validate(av); err == nil {
			t.Error("expected an error for duplicate blackout dates")
		}
	})
}
