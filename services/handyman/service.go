// Package handyman manages marketplace profiles: registration, updates,
// skills and the availability block.
package handyman

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

// HandymanService defines profile management operations.
type HandymanService interface {
	Register(userID string, req RegistrationRequest) (*models.HandymanProfile, error)
	GetByID(id string) (*models.HandymanProfile, error)
	Update(id string, updates ProfileUpdate) (*models.HandymanProfile, error)
	Delete(id string) error
	UpdateAvailability(id string, av models.Availability) (*models.HandymanProfile, []string, error)
	AddSkill(id string, skill models.Skill) (*models.HandymanProfile, error)
	RemoveSkill(id, skillName string) (*models.HandymanProfile, error)
	SlotsForDate(id, date string) ([]models.TimeRange, error)
}

// RegistrationRequest carries the fields a handyman supplies at signup.
// Anything omitted falls back to the registration defaults.
type RegistrationRequest struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Bio          string               `json:"bio"`
	Skills       []models.Skill       `json:"skills"`
	ServiceArea  *models.ServiceArea  `json:"serviceArea,omitempty"`
	Availability *models.Availability `json:"availability,omitempty"`
	Pricing      *models.Pricing      `json:"pricing,omitempty"`
}

// ProfileUpdate is a partial profile patch. Nil sections are untouched.
type ProfileUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Bio         *string             `json:"bio,omitempty"`
	ServiceArea *models.ServiceArea `json:"serviceArea,omitempty"`
	Pricing     *models.Pricing     `json:"pricing,omitempty"`
	IsActive    *bool               `json:"isActive,omitempty"`
}

// DefaultHandymanService implements HandymanService.
type DefaultHandymanService struct {
	Repo repository.HandymanRepository

	// Now is a clock override for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultHandymanService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Service-area radius bounds in miles.
const (
	MinServiceRadius = 5
	MaxServiceRadius = 50
)

func validateServiceArea(area models.ServiceArea) error {
	switch area.Type {
	case models.ServiceAreaRadius:
		if area.Center == nil || !area.Center.Valid() {
			return fmt.Errorf("radius service area requires a center point")
		}
		if area.RadiusMiles < MinServiceRadius || area.RadiusMiles > MaxServiceRadius {
			return fmt.Errorf("service radius must be between %d and %d miles, got %.1f",
				MinServiceRadius, MaxServiceRadius, area.RadiusMiles)
		}
	case models.ServiceAreaZipcodes:
		if len(area.Zipcodes) == 0 {
			return fmt.Errorf("zipcode service area requires at least one zipcode")
		}
	case models.ServiceAreaCities:
		if len(area.Cities) == 0 {
			return fmt.Errorf("city service area requires at least one city")
		}
	default:
		return fmt.Errorf("unknown service area type %q", area.Type)
	}
	return nil
}

// defaultAvailability is the registration default: nothing bookable until
// the handyman sets a schedule.
func defaultAvailability() models.Availability {
	return models.Availability{
		Schedule:              availability.DefaultSchedule(),
		EmergencyAvailability: false,
		BookingBuffer:         60,
		MaxAdvanceBooking:     30,
		BlackoutDates:         []models.BlackoutDate{},
	}
}

func defaultPricing() models.Pricing {
	return models.Pricing{
		HourlyRate:    50,
		MinimumCharge: 100,
		EmergencyRate: 75,
		TravelFee:     15,
	}
}

// Register creates a new profile for a user. A user may own at most one
// profile; new profiles start unverified and inactive.
func (s *DefaultHandymanService) Register(userID string, req RegistrationRequest) (*models.HandymanProfile, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("name and email are required")
	}

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a handyman profile already exists for this user")
	}

	av := defaultAvailability()
	if req.Availability != nil {
		av = *req.Availability
	}
	if _, err := availability.Validate(av); err != nil {
		return nil, fmt.Errorf("invalid availability: %w", err)
	}

	area := models.ServiceArea{Type: models.ServiceAreaRadius, Center: nil, RadiusMiles: 10}
	if req.ServiceArea != nil {
		area = *req.ServiceArea
		if err := validateServiceArea(area); err != nil {
			return nil, err
		}
	}

	pricing := defaultPricing()
	if req.Pricing != nil {
		pricing = *req.Pricing
	}

	now := s.now()
	profile := &models.HandymanProfile{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Bio:          req.Bio,
		Skills:       append([]models.Skill{}, req.Skills...),
		ServiceArea:  area,
		Availability: av,
		Pricing:      pricing,
		Verification: models.Verification{Status: models.VerificationPending},
		IsActive:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create handyman profile: %w", err)
	}

	utils.GetLogger().Info("handyman registered",
		zap.String("profileID", profile.ID),
		zap.String("userID", userID))

	return profile, nil
}

func (s *DefaultHandymanService) GetByID(id string) (*models.HandymanProfile, error) {
	profile, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch handyman %s: %w", id, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("handyman %s not found", id)
	}
	return profile, nil
}

// Update applies a partial patch to a profile.
func (s *DefaultHandymanService) Update(id string, updates ProfileUpdate) (*models.HandymanProfile, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		profile.Name = *updates.Name
	}
	if updates.Phone != nil {
		profile.Phone = *updates.Phone
	}
	if updates.Bio != nil {
		profile.Bio = *updates.Bio
	}
	if updates.ServiceArea != nil {
		if err := validateServiceArea(*updates.ServiceArea); err != nil {
			return nil, err
		}
		profile.ServiceArea = *updates.ServiceArea
	}
	if updates.Pricing != nil {
		profile.Pricing = *updates.Pricing
	}
	if updates.IsActive != nil {
		profile.IsActive = *updates.IsActive
	}
	profile.UpdatedAt = s.now()

	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DefaultHandymanService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// UpdateAvailability validates and persists a full availability block.
// Validation warnings do not block the update; they are returned so the
// caller can surface them.
func (s *DefaultHandymanService) UpdateAvailability(id string, av models.Availability) (*models.HandymanProfile, []string, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	warnings, err := availability.Validate(av)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid availability: %w", err)
	}

	profile.Availability = av
	profile.UpdatedAt = s.now()
	if err := s.Repo.Update(profile); err != nil {
		return nil, nil, err
	}
	return profile, warnings, nil
}

// AddSkill appends a skill to a profile; duplicate names are rejected.
func (s *DefaultHandymanService) AddSkill(id string, skill models.Skill) (*models.HandymanProfile, error) {
	if strings.TrimSpace(skill.Name) == "" {
		return nil, fmt.Errorf("skill name is required")
	}

	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile.HasSkill(skill.Name) {
		return nil, fmt.Errorf("skill %q already exists on this profile", skill.Name)
	}

	profile.Skills = append(profile.Skills, skill)
	profile.UpdatedAt = s.now()
	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// RemoveSkill drops a skill by name.
func (s *DefaultHandymanService) RemoveSkill(id, skillName string) (*models.HandymanProfile, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Skill, 0, len(profile.Skills))
	removed := false
	for _, sk := range profile.Skills {
		if sk.Name == skillName {
			removed = true
			continue
		}
		kept = append(kept, sk)
	}
	if !removed {
		return nil, fmt.Errorf("skill %q not found on this profile", skillName)
	}

	profile.Skills = kept
	profile.UpdatedAt = s.now()
	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SlotsForDate exposes the availability model for one profile and date.
func (s *DefaultHandymanService) SlotsForDate(id, date string) ([]models.TimeRange, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return availability.SlotsForDate(profile.Availability, date, s.now())
}
