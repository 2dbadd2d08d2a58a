// Package booking validates slot requests against a handyman's availability
// model and creates booking records.
package booking

import (
	"fmt"
	"strings"
	"time"

	"fixly/database/repository"
	"fixly/models"
	"fixly/services/availability"
	"fixly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService defines the booking workflow.
type BookingService interface {
	CreateBooking(userID string, req models.BookingRequest) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	CancelBooking(userID, bookingID string) error
	AvailableSlots(handymanID, date string) ([]models.TimeRange, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	HandymanRepo repository.HandymanRepository
	BookingRepo  repository.BookingRepository

	// Now is a clock override for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking validates the requested slot and persists a confirmed
// booking. The requested time must fall inside a range returned by the
// availability model, the date must be within the handyman's booking
// horizon, and the (handyman, date, time) slot must be free.
func (s *DefaultBookingService) CreateBooking(userID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	date := strings.TrimSpace(req.Date)
	clock := strings.TrimSpace(req.Time)
	if date == "" || clock == "" {
		return nil, NewValidationError("date and time are required")
	}
	if strings.TrimSpace(req.HandymanID) == "" {
		return nil, NewValidationError("handymanId is required")
	}

	handyman, err := s.HandymanRepo.GetByID(req.HandymanID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up handyman: %w", err)
	}
	if handyman == nil {
		return nil, NewNotFoundError("handyman %s does not exist", req.HandymanID)
	}

	now := s.now()
	allowToday := req.Urgent && handyman.Availability.EmergencyAvailability
	inHorizon, err := availability.WithinBookingHorizon(date, handyman.Availability.MaxAdvanceBooking, allowToday, now)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	if !inHorizon {
		return nil, NewValidationError("date %s is outside the booking horizon", date)
	}

	slots, err := availability.SlotsForDate(handyman.Availability, date, now)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	ok, err := availability.ContainsTime(slots, clock)
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	if !ok {
		return nil, NewValidationError("%s %s is not within the handyman's available slots", date, clock)
	}

	taken, err := s.BookingRepo.ExistsForSlot(req.HandymanID, date, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, NewConflictError("handyman %s is already booked at %s %s", req.HandymanID, date, clock)
	}

	// Flat rate: the hourly rate as quoted, not multiplied by duration.
	booking := &models.Booking{
		ID:         uuid.New().String(),
		HandymanID: req.HandymanID,
		UserID:     userID,
		TaskID:     req.TaskID,
		Date:       date,
		Time:       clock,
		Status:     models.BookingConfirmed,
		FinalPrice: handyman.Pricing.HourlyRate,
		CreatedAt:  now,
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("handymanID", booking.HandymanID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	return booking, nil
}

// GetUserBookings lists a user's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// CancelBooking removes a booking owned by the given user.
func (s *DefaultBookingService) CancelBooking(userID, bookingID string) error {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking == nil || booking.UserID != userID {
		return NewNotFoundError("booking %s does not exist", bookingID)
	}
	if err := s.BookingRepo.Delete(bookingID); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	return nil
}

// AvailableSlots exposes the availability model for a handyman and date.
func (s *DefaultBookingService) AvailableSlots(handymanID, date string) ([]models.TimeRange, error) {
	handyman, err := s.HandymanRepo.GetByID(handymanID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up handyman: %w", err)
	}
	if handyman == nil {
		return nil, NewNotFoundError("handyman %s does not exist", handymanID)
	}
	slots, err := availability.SlotsForDate(handyman.Availability, date, s.now())
	if err != nil {
		return nil, NewValidationError("%v", err)
	}
	return slots, nil
}
