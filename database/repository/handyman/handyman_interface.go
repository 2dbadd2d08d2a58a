package handymanRepo

import (
	"fixly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchCriteria is the coarse database-side prefilter for handyman
// searches. The search engine applies the full predicate set in memory;
// this only narrows the candidate pool.
type SearchCriteria struct {
	Category     string
	MinRating    float64
	VerifiedOnly bool
}

// HandymanRepository defines methods for handyman profile data access.
type HandymanRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.HandymanProfile, error)
	// GetByUserID retrieves the profile owned by a user, if any.
	GetByUserID(userID string) (*models.HandymanProfile, error)
	// GetAll retrieves all profiles.
	GetAll() ([]models.HandymanProfile, error)
	// Search retrieves profiles matching a coarse prefilter.
	Search(criteria SearchCriteria) ([]models.HandymanProfile, error)
	// Create inserts a new profile record.
	Create(profile *models.HandymanProfile) error
	// Update replaces an existing profile record.
	Update(profile *models.HandymanProfile) error
	// UpdateWithDocument patches a profile document with the given update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a profile record by its ID.
	Delete(id string) error
}
