package task

import (
	"math"
	"testing"

	"fixly/models"
)

type stubTaskRepo struct {
	tasks map[string]*models.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*models.Task)}
}

func (s *stubTaskRepo) GetAll() ([]models.Task, error) {
	var out []models.Task
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out, nil
}
func (s *stubTaskRepo) GetByID(id string) (*models.Task, error) { return s.tasks[id], nil }
func (s *stubTaskRepo) GetByUser(userID string) ([]models.Task, error) {
	var out []models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}
func (s *stubTaskRepo) Create(t *models.Task) error { s.tasks[t.ID] = t; return nil }
func (s *stubTaskRepo) Delete(id string) error      { delete(s.tasks, id); return nil }

func newService() (*DefaultTaskService, *stubTaskRepo) {
	repo := newStubTaskRepo()
	return &DefaultTaskService{Repo: repo}, repo
}

func TestCreateTask(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create("u1", CreateRequest{
		Title:       "Leaky kitchen sink",
		Category:    models.CategoryPlumbing,
		Description: "Dripping under the basin",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("task should receive a generated id")
	}
	if created.Urgency != models.UrgencyNormal {
		t.Errorf("urgency defaulted to %q, want normal", created.Urgency)
	}
	if math.Abs(created.EstimatedPrice-485.46) > 1e-6 {
		t.Errorf("estimated price = %.2f, want the category total 485.46", created.EstimatedPrice)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, repo := newService()

	cases := []CreateRequest{
		{Category: models.CategoryPlumbing},                                     // no title
		{Title: "x", Category: "roofing"},                                       // unknown category
		{Title: "x", Category: models.CategoryElectrical, Urgency: "immediate"}, // unknown urgency
	}
	for _, req := range cases {
		if _, err := svc.Create("u1", req); err == nil {
			t.Errorf("request %+v should be rejected", req)
		}
	}
	if len(repo.tasks) != 0 {
		t.Error("nothing should be persisted on validation failure")
	}
}

func TestDeleteTaskOwnership(t *testing.T) {
	svc, repo := newService()

	created, err := svc.Create("u1", CreateRequest{Title: "Fix door", Category: models.CategoryCarpentry})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete("intruder", created.ID); err == nil {
		t.Error("only the owner may delete a task")
	}
	if err := svc.Delete("u1", "missing"); err == nil {
		t.Error("deleting an unknown task should fail")
	}
	if err := svc.Delete("u1", created.ID); err != nil {
		t.Fatal(err)
	}
	if len(repo.tasks) != 0 {
		t.Error("task should be removed")
	}
}

func TestPriceBreakdown(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create("u1", CreateRequest{Title: "Rewire outlet", Category: models.CategoryElectrical})
	if err != nil {
		t.Fatal(err)
	}

	b, err := svc.PriceBreakdown(created.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if b.Category != models.CategoryElectrical || b.Currency != "USD" {
		t.Fatalf("unexpected breakdown header: %+v", b)
	}

	inr, err := svc.PriceBreakdown(created.ID, "INR")
	if err != nil {
		t.Fatal(err)
	}
	if inr.Currency != "INR" {
		t.Errorf("currency = %q, want INR", inr.Currency)
	}
	if math.Abs(inr.TotalEstimate-b.TotalEstimate*83.12) > 1e-6 {
		t.Errorf("converted total = %.2f, want %.2f", inr.TotalEstimate, b.TotalEstimate*83.12)
	}

	if _, err := svc.PriceBreakdown("missing", ""); err == nil {
		t.Error("unknown task should error")
	}
}
