// Package task handles job postings and their price estimates.
package task

import (
	"fmt"
	"strings"
	"time"

	"fixly/database/repository"
	"fixly/models"
	"fixly/services/pricing"
	"fixly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService defines task lifecycle operations.
type TaskService interface {
	Create(userID string, req CreateRequest) (*models.Task, error)
	GetByID(id string) (*models.Task, error)
	ListForUser(userID string) ([]models.Task, error)
	ListAll() ([]models.Task, error)
	Delete(userID, id string) error
	PriceBreakdown(id, currency string) (*models.PriceBreakdown, error)
}

// CreateRequest carries the fields for a new task.
type CreateRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
	Location    string `json:"location"`
}

// DefaultTaskService implements TaskService.
type DefaultTaskService struct {
	Repo repository.TaskRepository
}

// Create validates and stores a new task. An estimated price is derived
// from the category's standard breakdown so listings can show a figure
// before any handyman quotes.
func (s *DefaultTaskService) Create(userID string, req CreateRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if !models.ValidCategory(req.Category) {
		return nil, fmt.Errorf("unsupported task category %q", req.Category)
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = models.UrgencyNormal
	}
	if !models.ValidUrgency(urgency) {
		return nil, fmt.Errorf("unknown urgency level %q", req.Urgency)
	}

	breakdown := pricing.ForCategory(req.Category)

	task := &models.Task{
		ID:             uuid.New().String(),
		UserID:         userID,
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Urgency:        urgency,
		Location:       req.Location,
		EstimatedPrice: breakdown.TotalEstimate,
		CreatedAt:      time.Now(),
	}

	if err := s.Repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	utils.GetLogger().Info("task created",
		zap.String("taskID", task.ID),
		zap.String("category", task.Category))

	return task, nil
}

func (s *DefaultTaskService) GetByID(id string) (*models.Task, error) {
	task, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task %s: %w", id, err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}
	return task, nil
}

func (s *DefaultTaskService) ListForUser(userID string) ([]models.Task, error) {
	return s.Repo.GetByUser(userID)
}

func (s *DefaultTaskService) ListAll() ([]models.Task, error) {
	return s.Repo.GetAll()
}

// Delete removes a task. Only the owner may delete it.
func (s *DefaultTaskService) Delete(userID, id string) error {
	task, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if task.UserID != userID {
		return fmt.Errorf("task %s not found", id)
	}
	return s.Repo.Delete(id)
}

// PriceBreakdown returns the standard cost breakdown for a task's category,
// converted to the requested currency when one is given.
func (s *DefaultTaskService) PriceBreakdown(id, currency string) (*models.PriceBreakdown, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.ForCategory(task.Category)
	if currency != "" && currency != utils.DefaultCurrency {
		breakdown = pricing.Convert(breakdown, currency)
	}
	return &breakdown, nil
}
