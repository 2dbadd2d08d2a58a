package models

import "time"

// Booking statuses. There is no state machine beyond creation and deletion;
// bookings are confirmed at creation time.
const BookingConfirmed = "confirmed"

// Booking represents a confirmed booking record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	HandymanID string    `bson:"handymanId" json:"handymanId"`
	UserID     string    `bson:"userId" json:"userId"`
	TaskID     string    `bson:"taskId,omitempty" json:"taskId,omitempty"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time       string    `bson:"time" json:"time"` // "HH:MM", 24h clock
	Status     string    `bson:"status" json:"status"`
	FinalPrice float64   `bson:"finalPrice" json:"finalPrice"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	HandymanID string `json:"handymanId"`
	TaskID     string `json:"taskId,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Urgent     bool   `json:"urgent,omitempty"`
}
