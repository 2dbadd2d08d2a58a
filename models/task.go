package models

import "time"

// Task categories. These are the only categories the pricing tables cover.
const (
	CategoryPlumbing   = "plumbing"
	CategoryElectrical = "electrical"
	CategoryCarpentry  = "carpentry"
	CategoryAppliance  = "appliance"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
	UrgencyUrgent = "urgent"
)

// TaskCategories lists the supported categories in display order.
var TaskCategories = []string{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryCarpentry,
	CategoryAppliance,
}

// UrgencyLevels lists the valid urgency values.
var UrgencyLevels = []string{UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent}

// Task is a job posted by a user. Tasks are created and deleted, never
// updated in place.
type Task struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"userId" json:"userId"`
	Title          string    `bson:"title" json:"title"`
	Category       string    `bson:"category" json:"category"`
	Description    string    `bson:"description" json:"description"`
	Urgency        string    `bson:"urgency" json:"urgency"`
	Location       string    `bson:"location" json:"location"`
	EstimatedPrice float64   `bson:"estimatedPrice" json:"estimatedPrice"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// ValidCategory reports whether c is a supported task category.
func ValidCategory(c string) bool {
	for _, cat := range TaskCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// ValidUrgency reports whether u is a recognised urgency level.
func ValidUrgency(u string) bool {
	for _, lvl := range UrgencyLevels {
		if lvl == u {
			return true
		}
	}
	return false
}
