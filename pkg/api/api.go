// Package api defines the request and response messages of the investcalc
// RPC services. Messages are plain Go structs carried as JSON.
package api

import (
	"github.com/mmynk/investcalc/internal/models"
)

// CalculateRequest submits a fully coerced investment plan.
type CalculateRequest struct {
	InitialInvestment float64 `json:"initial_investment"`
	AnnualInvestment  float64 `json:"annual_investment"`
	ExpectedReturn    float64 `json:"expected_return"`
	Duration          int     `json:"duration"`
}

// Input converts the request into the domain input.
func (r *CalculateRequest) Input() models.InvestmentInput {
	return models.InvestmentInput{
		InitialInvestment: r.InitialInvestment,
		AnnualInvestment:  r.AnnualInvestment,
		ExpectedReturn:    r.ExpectedReturn,
		Duration:          r.Duration,
	}
}

// CalculateResponse carries the projection that replaced the held result.
// Headline is the summary sentence in the server's locale and currency.
type CalculateResponse struct {
	Records  []models.YearRecord `json:"records"`
	Summary  models.Summary      `json:"summary"`
	Headline string              `json:"headline"`
}

// GetResultsRequest has no fields.
type GetResultsRequest struct{}

// GetResultsResponse is the current held projection.
// HasResults is false until the first Calculate.
type GetResultsResponse struct {
	Records    []models.YearRecord `json:"records"`
	Summary    models.Summary      `json:"summary"`
	Headline   string              `json:"headline"`
	HasResults bool                `json:"has_results"`
}

// AddTaskRequest creates a task for a user.
type AddTaskRequest struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	DueDate string `json:"due_date"`
}

// AddTaskResponse returns the stored task.
type AddTaskResponse struct {
	Task *models.Task `json:"task"`
}

// CompleteTaskRequest marks a task done, removing it from the list.
type CompleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// CompleteTaskResponse has no fields.
type CompleteTaskResponse struct{}

// ListTasksRequest selects a user's tasks.
type ListTasksRequest struct {
	UserID string `json:"user_id"`
}

// ListTasksResponse lists tasks newest first.
type ListTasksResponse struct {
	Tasks []*models.Task `json:"tasks"`
}
