package availability

import (
	"fmt"
	"time"

	"fixly/models"
)

// Mutations never modify their input; each returns a fresh copy with the
// change applied. Callers are responsible for persisting the result.

func cloneSchedule(s models.WeeklySchedule) models.WeeklySchedule {
	out := make(models.WeeklySchedule, len(s))
	for day, d := range s {
		hours := make([]models.TimeRange, len(d.Hours))
		copy(hours, d.Hours)
		out[day] = models.DaySchedule{Available: d.Available, Hours: hours}
	}
	return out
}

func cloneBlackouts(b []models.BlackoutDate) []models.BlackoutDate {
	out := make([]models.BlackoutDate, len(b))
	copy(out, b)
	return out
}

// ToggleDay flips a day's availability. Turning a day off clears its hour
// ranges so the schedule never carries hours on an unavailable day.
func ToggleDay(s models.WeeklySchedule, day string) models.WeeklySchedule {
	out := cloneSchedule(s)
	d := out[day]
	d.Available = !d.Available
	if !d.Available {
		d.Hours = []models.TimeRange{}
	}
	out[day] = d
	return out
}

// SetHours replaces a day's hour ranges and marks the day available.
// An empty hours list is permitted; it renders as "no time slots set" and
// surfaces as a validation warning, not an error.
func SetHours(s models.WeeklySchedule, day string, hours []models.TimeRange) models.WeeklySchedule {
	out := cloneSchedule(s)
	copied := make([]models.TimeRange, len(hours))
	copy(copied, hours)
	out[day] = models.DaySchedule{Available: true, Hours: copied}
	return out
}

// AddBlackoutDate appends a blackout date, rejecting duplicates and
// malformed dates.
func AddBlackoutDate(av models.Availability, date, reason string) (models.Availability, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return models.Availability{}, fmt.Errorf("invalid blackout date %q: %w", date, err)
	}
	if IsDateBlackedOut(av.BlackoutDates, date) {
		return models.Availability{}, fmt.Errorf("blackout date %s already exists", date)
	}
	out := av
	out.Schedule = cloneSchedule(av.Schedule)
	out.BlackoutDates = append(cloneBlackouts(av.BlackoutDates), models.BlackoutDate{Date: date, Reason: reason})
	return out, nil
}

// RemoveBlackoutDate drops a blackout date; removing an absent date is a no-op.
func RemoveBlackoutDate(av models.Availability, date string) models.Availability {
	out := av
	out.Schedule = cloneSchedule(av.Schedule)
	kept := make([]models.BlackoutDate, 0, len(av.BlackoutDates))
	for _, b := range av.BlackoutDates {
		if b.Date != date {
			kept = append(kept, b)
		}
	}
	out.BlackoutDates = kept
	return out
}
