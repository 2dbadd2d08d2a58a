package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"fixly/config"
	"fixly/database/repository"
	"fixly/models"
	"fixly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SearchService runs filter specifications against the handyman directory.
type SearchService interface {
	Search(filters Filters) (models.PagedResult, error)
	Vocabulary() (Vocabulary, error)
}

// Vocabulary lists the distinct skill names and categories in the pool,
// plus the predefined skills offered for autocomplete.
type Vocabulary struct {
	Skills           []string       `json:"skills"`
	SkillCategories  []string       `json:"skillCategories"`
	PredefinedSkills []models.Skill `json:"predefinedSkills"`
}

// DefaultSearchService implements SearchService over the handyman repository
// with a Redis page cache in front.
type DefaultSearchService struct {
	Repo  repository.HandymanRepository
	Cache *redis.Client
}

func cacheTTL() time.Duration {
	ttl := config.AppConfig.SearchCacheTTL
	if ttl <= 0 {
		ttl = 60
	}
	return time.Duration(ttl) * time.Second
}

func cacheKey(f Filters) (string, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return utils.SearchCachePrefix + hex.EncodeToString(sum[:]), nil
}

// Search resolves the candidate pool, applies the filter engine and caches
// the resulting page. Cache failures degrade to a direct query.
func (s *DefaultSearchService) Search(filters Filters) (models.PagedResult, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	key, keyErr := cacheKey(filters)
	if keyErr == nil && s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.PagedResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Warn("search cache read failed", zap.Error(err))
		}
	}

	pool, err := s.Repo.Search(repository.SearchCriteria{
		Category:     filters.Category,
		MinRating:    filters.MinRating,
		VerifiedOnly: filters.VerifiedOnly,
	})
	if err != nil {
		return models.PagedResult{}, fmt.Errorf("failed to load handyman pool: %w", err)
	}

	result := Apply(pool, filters)

	if keyErr == nil && s.Cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, key, raw, cacheTTL()).Err(); err != nil {
				logger.Warn("search cache write failed", zap.Error(err))
			}
		}
	}

	return result, nil
}

// PredefinedSkills mirrors the fixed skill catalogue offered during
// registration.
var PredefinedSkills = []models.Skill{
	{Name: "Plumbing", Category: "Main Trade"},
	{Name: "Electrical", Category: "Main Trade"},
	{Name: "Carpentry", Category: "Main Trade"},
	{Name: "Appliance Repair", Category: "Main Trade"},
	{Name: "Painting", Category: "Home Improvement"},
	{Name: "Drywall", Category: "Home Improvement"},
	{Name: "Flooring", Category: "Home Improvement"},
	{Name: "General Repair", Category: "Additional Services"},
	{Name: "Assembly", Category: "Additional Services"},
}

// Vocabulary aggregates the distinct skill names and categories across all
// profiles for autocomplete.
func (s *DefaultSearchService) Vocabulary() (Vocabulary, error) {
	pool, err := s.Repo.GetAll()
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to load handyman pool: %w", err)
	}

	names := make(map[string]bool)
	categories := make(map[string]bool)
	for _, p := range pool {
		for _, sk := range p.Skills {
			names[sk.Name] = true
			categories[sk.Category] = true
		}
	}

	return Vocabulary{
		Skills:           sortedKeys(names),
		SkillCategories:  sortedKeys(categories),
		PredefinedSkills: PredefinedSkills,
	}, nil
}
