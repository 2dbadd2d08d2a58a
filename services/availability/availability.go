// Package availability implements the per-handyman availability model:
// weekly schedules, blackout dates, booking buffers and the advance-booking
// horizon. Everything here is pure; callers supply "now" where it matters.
package availability

import (
	"fmt"
	"strings"
	"time"

	"fixly/models"
)

// DateLayout is the calendar-date format used across the model.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format for time ranges.
const ClockLayout = "15:04"

// DayNames lists the weekly schedule keys in display order.
var DayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayName resolves a date to its lowercase schedule key.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// DefaultSchedule returns a fresh weekly schedule with every day unavailable.
func DefaultSchedule() models.WeeklySchedule {
	s := make(models.WeeklySchedule, len(DayNames))
	for _, day := range DayNames {
		s[day] = models.DaySchedule{Available: false, Hours: []models.TimeRange{}}
	}
	return s
}

// IsDayAvailable reports whether a weekday is bookable. A day with
// available=true but no hour ranges is not bookable.
func IsDayAvailable(schedule models.WeeklySchedule, day string) bool {
	d, ok := schedule[day]
	return ok && d.Available && len(d.Hours) > 0
}

// IsDateBlackedOut checks a calendar date against the blackout list by exact
// string match.
func IsDateBlackedOut(blackoutDates []models.BlackoutDate, date string) bool {
	for _, b := range blackoutDates {
		if b.Date == date {
			return true
		}
	}
	return false
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// SlotsForDate resolves the bookable hour ranges for a calendar date.
// It returns an empty slice when the date is blacked out or the weekday is
// unavailable. When the date is today, ranges whose start is less than
// BookingBuffer minutes away from now are excluded.
func SlotsForDate(av models.Availability, date string, now time.Time) ([]models.TimeRange, error) {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	if IsDateBlackedOut(av.BlackoutDates, date) {
		return []models.TimeRange{}, nil
	}

	name := WeekdayName(day)
	if !IsDayAvailable(av.Schedule, name) {
		return []models.TimeRange{}, nil
	}

	ranges := av.Schedule[name].Hours
	if date != now.Format(DateLayout) {
		out := make([]models.TimeRange, len(ranges))
		copy(out, ranges)
		return out, nil
	}

	// Today: enforce the booking buffer against the current time.
	nowMinutes := now.Hour()*60 + now.Minute()
	out := make([]models.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		start, err := ParseClock(r.Start)
		if err != nil {
			return nil, err
		}
		if start-nowMinutes >= av.BookingBuffer {
			out = append(out, r)
		}
	}
	return out, nil
}

// ContainsTime reports whether clock (HH:MM) falls inside one of the given
// ranges, start inclusive, end exclusive.
func ContainsTime(ranges []models.TimeRange, clock string) (bool, error) {
	m, err := ParseClock(clock)
	if err != nil {
		return false, err
	}
	for _, r := range ranges {
		start, err := ParseClock(r.Start)
		if err != nil {
			return false, err
		}
		end, err := ParseClock(r.End)
		if err != nil {
			return false, err
		}
		if m >= start && m < end {
			return true, nil
		}
	}
	return false, nil
}

// WithinBookingHorizon checks that a date is bookable relative to now.
// The earliest bookable day is tomorrow, or today for urgent requests to a
// handyman with emergency availability. The latest is now+maxAdvanceBooking
// days, inclusive.
func WithinBookingHorizon(date string, maxAdvanceBooking int, allowToday bool, now time.Time) (bool, error) {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	earliest := today.AddDate(0, 0, 1)
	if allowToday {
		earliest = today
	}
	latest := today.AddDate(0, 0, maxAdvanceBooking)

	return !d.Before(earliest) && !d.After(latest), nil
}
