package models

import (
	"time"
)

// Service area variants. Exactly one shape is meaningful per profile.
const (
	ServiceAreaRadius   = "radius"
	ServiceAreaZipcodes = "zipcodes"
	ServiceAreaCities   = "cities"
)

// Verification statuses.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
)

// Skill is a single trade a handyman offers.
type Skill struct {
	Name              string   `bson:"name" json:"name"`
	Category          string   `bson:"category" json:"category"`
	Level             string   `bson:"level" json:"level"` // e.g. "Beginner", "Intermediate", "Expert"
	YearsOfExperience int      `bson:"yearsOfExperience" json:"yearsOfExperience"`
	Certifications    []string `bson:"certifications,omitempty" json:"certifications,omitempty"`
}

// ServiceArea is the geographic scope in which a handyman accepts jobs.
type ServiceArea struct {
	Type        string    `bson:"type" json:"type"`
	Center      *GeoPoint `bson:"center,omitempty" json:"center,omitempty"`
	RadiusMiles float64   `bson:"radiusMiles,omitempty" json:"radiusMiles,omitempty"`
	Zipcodes    []string  `bson:"zipcodes,omitempty" json:"zipcodes,omitempty"`
	Cities      []string  `bson:"cities,omitempty" json:"cities,omitempty"`
}

// TimeRange is a bookable window within a day, "HH:MM" 24h clock.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DaySchedule describes one weekday of the weekly schedule.
type DaySchedule struct {
	Available bool        `bson:"available" json:"available"`
	Hours     []TimeRange `bson:"hours" json:"hours"`
}

// WeeklySchedule maps lowercase weekday names ("monday".."sunday") to their
// schedules. Each weekday key appears exactly once.
type WeeklySchedule map[string]DaySchedule

// BlackoutDate marks a calendar date unavailable regardless of the weekly
// schedule. Dates are "YYYY-MM-DD" and unique per profile.
type BlackoutDate struct {
	Date   string `bson:"date" json:"date"`
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Availability holds everything needed to decide when a handyman can be booked.
type Availability struct {
	Schedule              WeeklySchedule `bson:"schedule" json:"schedule"`
	EmergencyAvailability bool           `bson:"emergencyAvailability" json:"emergencyAvailability"`
	BookingBuffer         int            `bson:"bookingBuffer" json:"bookingBuffer"`         // minutes, [15,180]
	MaxAdvanceBooking     int            `bson:"maxAdvanceBooking" json:"maxAdvanceBooking"` // days, [1,365]
	BlackoutDates         []BlackoutDate `bson:"blackoutDates,omitempty" json:"blackoutDates,omitempty"`
}

// Pricing holds a handyman's rate card. All amounts are USD base units.
type Pricing struct {
	HourlyRate    float64 `bson:"hourlyRate" json:"hourlyRate"`
	MinimumCharge float64 `bson:"minimumCharge" json:"minimumCharge"`
	EmergencyRate float64 `bson:"emergencyRate" json:"emergencyRate"`
	TravelFee     float64 `bson:"travelFee" json:"travelFee"`
}

// Verification tracks the review state of a profile.
type Verification struct {
	Status     string     `bson:"status" json:"status"`
	VerifiedAt *time.Time `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
}

// HandymanProfile is the full marketplace profile for one handyman.
type HandymanProfile struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"userId"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email,omitempty"`
	Phone        string       `bson:"phone" json:"phone,omitempty"`
	Bio          string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills       []Skill      `bson:"skills" json:"skills"`
	ServiceArea  ServiceArea  `bson:"serviceArea" json:"serviceArea"`
	Availability Availability `bson:"availability" json:"availability"`
	Pricing      Pricing      `bson:"pricing" json:"pricing"`
	Verification Verification `bson:"verification" json:"verification"`
	Rating       float64      `bson:"rating" json:"rating"`
	TotalReviews int          `bson:"totalReviews" json:"totalReviews"`
	TotalJobs    int          `bson:"totalJobs" json:"totalJobs"`
	IsActive     bool         `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// YearsOfExperience returns the largest experience figure across the
// profile's skills; it is the value experience-sorted searches rank by.
func (p HandymanProfile) YearsOfExperience() int {
	max := 0
	for _, s := range p.Skills {
		if s.YearsOfExperience > max {
			max = s.YearsOfExperience
		}
	}
	return max
}

// HasSkill reports whether the profile lists a skill with the given name.
func (p HandymanProfile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}
