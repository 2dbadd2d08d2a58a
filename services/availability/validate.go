package availability

import (
	"fmt"
	"time"

	"fixly/models"
)

// Booking buffer and advance-booking bounds.
const (
	MinBookingBuffer     = 15
	MaxBookingBuffer     = 180
	MinAdvanceBooking    = 1
	MaxAdvanceBookingCap = 365
)

// Validate checks an availability block against the model invariants.
// Violations are returned as an error; benign-but-odd states (an available
// day with no hour ranges) come back as warnings.
func Validate(av models.Availability) (warnings []string, err error) {
	if len(av.Schedule) != len(DayNames) {
		return nil, fmt.Errorf("schedule must contain exactly %d weekdays, got %d", len(DayNames), len(av.Schedule))
	}
	for _, day := range DayNames {
		d, ok := av.Schedule[day]
		if !ok {
			return nil, fmt.Errorf("schedule is missing weekday %q", day)
		}
		if !d.Available && len(d.Hours) > 0 {
			return nil, fmt.Errorf("%s is unavailable but has %d hour ranges", day, len(d.Hours))
		}
		if d.Available && len(d.Hours) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s is available but has no time slots set", day))
		}
		for _, r := range d.Hours {
			start, err := ParseClock(r.Start)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", day, err)
			}
			end, err := ParseClock(r.End)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", day, err)
			}
			if start >= end {
				return nil, fmt.Errorf("%s: range %s-%s does not end after it starts", day, r.Start, r.End)
			}
		}
	}

	if av.BookingBuffer < MinBookingBuffer || av.BookingBuffer > MaxBookingBuffer {
		return nil, fmt.Errorf("bookingBuffer must be between %d and %d minutes, got %d",
			MinBookingBuffer, MaxBookingBuffer, av.BookingBuffer)
	}
	if av.MaxAdvanceBooking < MinAdvanceBooking || av.MaxAdvanceBooking > MaxAdvanceBookingCap {
		return nil, fmt.Errorf("maxAdvanceBooking must be between %d and %d days, got %d",
			MinAdvanceBooking, MaxAdvanceBookingCap, av.MaxAdvanceBooking)
	}

	seen := make(map[string]bool, len(av.BlackoutDates))
	for _, b := range av.BlackoutDates {
		if _, err := time.Parse(DateLayout, b.Date); err != nil {
			return nil, fmt.Errorf("invalid blackout date %q", b.Date)
		}
		if seen[b.Date] {
			return nil, fmt.Errorf("duplicate blackout date %s", b.Date)
		}
		seen[b.Date] = true
	}

	return warnings, nil
}
