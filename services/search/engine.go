// Package search implements the handyman search/filter engine: conjunctive
// predicates over a candidate pool, stable sorting and pagination.
package search

import (
	"math"
	"sort"
	"strings"

	"fixly/models"
)

// Sort keys accepted by Filters.SortBy.
const (
	SortByRating     = "rating"
	SortByPrice      = "price"
	SortByExperience = "experience"
	SortByReviews    = "reviews"
)

// Availability modes accepted by Filters.Availability.
const (
	AvailabilityEmergency = "emergency"
	AvailabilityActive    = "active"
)

// DefaultPageSize is used when a request does not set a page size.
const DefaultPageSize = 10

// Filters is the search specification. Zero values disable a predicate;
// active predicates are ANDed together.
type Filters struct {
	Skills       []string         `json:"skills,omitempty"`
	Category     string           `json:"category,omitempty"`
	Location     *models.GeoPoint `json:"location,omitempty"`
	RadiusMiles  float64          `json:"radiusMiles,omitempty"`
	MinRate      float64          `json:"minRate,omitempty"`
	MaxRate      float64          `json:"maxRate,omitempty"`
	MinRating    float64          `json:"minRating,omitempty"`
	Availability string           `json:"availability,omitempty"`
	VerifiedOnly bool             `json:"verified,omitempty"`
	SortBy       string           `json:"sortBy,omitempty"`
	Page         int              `json:"page,omitempty"`
	Limit        int              `json:"limit,omitempty"`
}

// EarthRadiusMiles is the haversine Earth radius used for all distances.
const EarthRadiusMiles = 3959

// Haversine returns the great-circle distance between two points in miles.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLng := (lng2 - lng1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

func matches(p models.HandymanProfile, f Filters) bool {
	if len(f.Skills) > 0 {
		found := false
		for _, name := range f.Skills {
			if p.HasSkill(name) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Category != "" {
		found := false
		for _, s := range p.Skills {
			if strings.EqualFold(s.Name, f.Category) || strings.EqualFold(s.Category, f.Category) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Location != nil && f.Location.Valid() && f.RadiusMiles > 0 {
		center := p.ServiceArea.Center
		if center == nil || !center.Valid() {
			// Distance is undefined without a service-area center.
			return false
		}
		dist := Haversine(f.Location.Lat(), f.Location.Lng(), center.Lat(), center.Lng())
		limit := math.Max(f.RadiusMiles, p.ServiceArea.RadiusMiles)
		if dist > limit {
			return false
		}
	}

	rate := p.Pricing.HourlyRate
	if f.MinRate > 0 && rate < f.MinRate {
		return false
	}
	if f.MaxRate > 0 && rate > f.MaxRate {
		return false
	}

	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}

	switch f.Availability {
	case "":
		// No availability predicate.
	case AvailabilityEmergency:
		if !p.Availability.EmergencyAvailability {
			return false
		}
	default:
		if !p.IsActive {
			return false
		}
	}

	if f.VerifiedOnly && p.Verification.Status != models.VerificationVerified {
		return false
	}

	return true
}

func sortResults(results []models.HandymanProfile, sortBy string) {
	switch sortBy {
	case SortByRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortByPrice:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Pricing.HourlyRate < results[j].Pricing.HourlyRate
		})
	case SortByExperience:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].YearsOfExperience() > results[j].YearsOfExperience()
		})
	case SortByReviews:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].TotalReviews > results[j].TotalReviews
		})
	}
}

// Apply filters, sorts and paginates the candidate pool. No matches and
// out-of-range pages both yield an empty page, never an error.
func Apply(pool []models.HandymanProfile, f Filters) models.PagedResult {
	results := make([]models.HandymanProfile, 0, len(pool))
	for _, p := range pool {
		if matches(p, f) {
			results = append(results, p)
		}
	}

	sortResults(results, f.SortBy)

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(results)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	items := []models.HandymanProfile{}
	if start < total {
		if end > total {
			end = total
		}
		items = append(items, results[start:end]...)
	}

	return models.PagedResult{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasMore:    page*limit < total,
	}
}
