package booking

import (
	"errors"
	"testing"
	"time"

	handymanRepo "fixly/database/repository/handyman"
	"fixly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// monday is 2025-06-02 08:00 UTC; the fixture handyman works Mondays and
// Wednesdays.
var monday = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

type stubHandymanRepo struct {
	profiles map[string]*models.HandymanProfile
}

func (s *stubHandymanRepo) GetByID(id string) (*models.HandymanProfile, error) {
	return s.profiles[id], nil
}
func (s *stubHandymanRepo) GetByUserID(userID string) (*models.HandymanProfile, error) {
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}
func (s *stubHandymanRepo) GetAll() ([]models.HandymanProfile, error) {
	var out []models.HandymanProfile
	for _, p := range s.profiles {
		out = append(out, *p)
	}
	return out, nil
}
func (s *stubHandymanRepo) Search(criteria handymanRepo.SearchCriteria) ([]models.HandymanProfile, error) {
	return s.GetAll()
}
func (s *stubHandymanRepo) Create(p *models.HandymanProfile) error { s.profiles[p.ID] = p; return nil }
func (s *stubHandymanRepo) Update(p *models.HandymanProfile) error { s.profiles[p.ID] = p; return nil }
func (s *stubHandymanRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return nil
}
func (s *stubHandymanRepo) Delete(id string) error { delete(s.profiles, id); return nil }

type stubBookingRepo struct {
	bookings map[string]*models.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (s *stubBookingRepo) Create(b *models.Booking) error {
	s.bookings[b.ID] = b
	return nil
}
func (s *stubBookingRepo) GetByID(id string) (*models.Booking, error) { return s.bookings[id], nil }
func (s *stubBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (s *stubBookingRepo) GetByHandyman(handymanID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.HandymanID == handymanID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (s *stubBookingRepo) ExistsForSlot(handymanID, date, timeStr string) (bool, error) {
	for _, b := range s.bookings {
		if b.HandymanID == handymanID && b.Date == date && b.Time == timeStr {
			return true, nil
		}
	}
	return false, nil
}
func (s *stubBookingRepo) Delete(id string) error { delete(s.bookings, id); return nil }

func fixtureProfile() *models.HandymanProfile {
	schedule := models.WeeklySchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		schedule[day] = models.DaySchedule{Available: false, Hours: []models.TimeRange{}}
	}
	schedule["monday"] = models.DaySchedule{
		Available: true,
		Hours:     []models.TimeRange{{Start: "09:00", End: "17:00"}},
	}
	schedule["wednesday"] = models.DaySchedule{
		Available: true,
		Hours:     []models.TimeRange{{Start: "10:00", End: "14:00"}},
	}
	return &models.HandymanProfile{
		ID:     "h1",
		UserID: "owner",
		Name:   "Fixture Handyman",
		Availability: models.Availability{
			Schedule:          schedule,
			BookingBuffer:     60,
			MaxAdvanceBooking: 30,
			BlackoutDates:     []models.BlackoutDate{{Date: "2025-06-11", Reason: "out"}},
		},
		Pricing: models.Pricing{HourlyRate: 95},
	}
}

func newService() (*DefaultBookingService, *stubBookingRepo) {
	bookings := newStubBookingRepo()
	svc := &DefaultBookingService{
		HandymanRepo: &stubHandymanRepo{profiles: map[string]*models.HandymanProfile{"h1": fixtureProfile()}},
		BookingRepo:  bookings,
		Now:          func() time.Time { return monday },
	}
	return svc, bookings
}

func TestCreateBookingRequiresDateAndTime(t *testing.T) {
	svc, bookings := newService()

	cases := []models.BookingRequest{
		{HandymanID: "h1", Time: "10:00"},
		{HandymanID: "h1", Date: "2025-06-09"},
		{HandymanID: "h1", Date: "  ", Time: "10:00"},
	}
	for _, req := range cases {
		_, err := svc.CreateBooking("u1", req)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("request %+v: expected a validation error, got %v", req, err)
		}
	}
	if len(bookings.bookings) != 0 {
		t.Error("nothing should be persisted on validation failure")
	}
}

func TestCreateBookingUnknownHandyman(t *testing.T) {
	svc, _ := newService()
	_, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "missing", Date: "2025-06-09", Time: "10:00",
	})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc, _ := newService()

	// The following Monday, inside working hours.
	b, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", TaskID: "t1", Date: "2025-06-09", Time: "10:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if b.ID == "" {
		t.Error("booking should receive a generated id")
	}
	if b.Status != models.BookingConfirmed {
		t.Errorf("status = %q, want %q", b.Status, models.BookingConfirmed)
	}
	if b.FinalPrice != 95 {
		t.Errorf("final price = %.2f, want the hourly rate", b.FinalPrice)
	}
	if b.UserID != "u1" || b.HandymanID != "h1" || b.TaskID != "t1" {
		t.Errorf("booking ownership fields wrong: %+v", b)
	}
	if !b.CreatedAt.Equal(monday) {
		t.Errorf("createdAt = %v, want the injected clock", b.CreatedAt)
	}
}

func TestCreateBookingRejectsToday(t *testing.T) {
	svc, _ := newService()
	_, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-02", Time: "10:00",
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("same-day booking without urgency should fail validation, got %v", err)
	}
}

func TestCreateBookingUrgentSameDay(t *testing.T) {
	svc, _ := newService()

	// Without emergency availability the urgent flag changes nothing.
	_, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-02", Time: "10:00", Urgent: true,
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("urgent same-day without emergency availability should fail, got %v", err)
	}

	// With it, today becomes bookable (10:00 clears the 60 minute buffer at
	// 08:00).
	repo := svc.HandymanRepo.(*stubHandymanRepo)
	repo.profiles["h1"].Availability.EmergencyAvailability = true
	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-02", Time: "10:00", Urgent: true,
	}); err != nil {
		t.Fatalf("urgent same-day with emergency availability should succeed: %v", err)
	}
}

func TestCreateBookingOutsideHorizon(t *testing.T) {
	svc, _ := newService()
	// MaxAdvanceBooking is 30 days; 2025-07-07 is a Monday beyond it.
	_, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-07-07", Time: "10:00",
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error past the horizon, got %v", err)
	}
}

func TestCreateBookingOutsideSlots(t *testing.T) {
	svc, _ := newService()

	// Tuesday is unavailable.
	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-10", Time: "10:00",
	}); err == nil {
		t.Error("booking on an unavailable weekday should fail")
	}

	// Wednesday 2025-06-11 is blacked out.
	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-11", Time: "11:00",
	}); err == nil {
		t.Error("booking on a blackout date should fail")
	}

	// Monday outside working hours.
	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-09", Time: "18:00",
	}); err == nil {
		t.Error("booking outside working hours should fail")
	}

	// End of range is exclusive.
	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-09", Time: "17:00",
	}); err == nil {
		t.Error("booking at the exclusive end of a range should fail")
	}
}

func TestCreateBookingDoubleBooking(t *testing.T) {
	svc, _ := newService()

	req := models.BookingRequest{HandymanID: "h1", Date: "2025-06-09", Time: "10:00"}
	if _, err := svc.CreateBooking("u1", req); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateBooking("u2", req)
	var cf *ConflictError
	if !errors.As(err, &cf) {
		t.Fatalf("expected a conflict error for a taken slot, got %v", err)
	}
}

func TestCancelBookingOwnership(t *testing.T) {
	svc, bookings := newService()

	b, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-09", Time: "10:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	var nf *NotFoundError
	if err := svc.CancelBooking("intruder", b.ID); !errors.As(err, &nf) {
		t.Fatalf("cancelling another user's booking should look like not-found, got %v", err)
	}
	if err := svc.CancelBooking("u1", "nope"); !errors.As(err, &nf) {
		t.Fatalf("cancelling an unknown booking should be not-found, got %v", err)
	}

	if err := svc.CancelBooking("u1", b.ID); err != nil {
		t.Fatal(err)
	}
	if len(bookings.bookings) != 0 {
		t.Error("booking should be removed after cancellation")
	}
}

func TestGetUserBookings(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.CreateBooking("u1", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-09", Time: "10:00",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateBooking("u2", models.BookingRequest{
		HandymanID: "h1", Date: "2025-06-09", Time: "11:00",
	}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetUserBookings("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("expected only u1's booking, got %+v", got)
	}
}

func TestAvailableSlots(t *testing.T) {
	svc, _ := newService()

	slots, err := svc.AvailableSlots("h1", "2025-06-09")
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 || slots[0].Start != "09:00" {
		t.Fatalf("unexpected slots: %v", slots)
	}

	var nf *NotFoundError
	if _, err := svc.AvailableSlots("missing", "2025-06-09"); !errors.As(err, &nf) {
		t.Fatalf("expected not-found for an unknown handyman, got %v", err)
	}
}
