package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/investcalc/internal/calculator"
	"github.com/mmynk/investcalc/internal/metrics"
	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/render"
	"github.com/mmynk/investcalc/internal/storage"
	"github.com/mmynk/investcalc/pkg/api"
	"github.com/mmynk/investcalc/pkg/api/apiconnect"
)

// Ensure ProjectionService implements the Connect handler interface
var _ apiconnect.ProjectionServiceHandler = (*ProjectionService)(nil)

// ProjectionService implements the Connect ProjectionService
type ProjectionService struct {
	results storage.ResultStore
	metrics *metrics.Metrics
	format  render.Format
}

// NewProjectionService creates a new ProjectionService that keeps its latest
// result in results and formats headlines with format.
func NewProjectionService(results storage.ResultStore, m *metrics.Metrics, format render.Format) *ProjectionService {
	return &ProjectionService{results: results, metrics: m, format: format}
}

// Calculate projects the submitted plan and replaces the held result.
func (s *ProjectionService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	input := req.Msg.Input()
	slog.Info("Calculate request received",
		"initial_investment", input.InitialInvestment,
		"annual_investment", input.AnnualInvestment,
		"expected_return", input.ExpectedReturn,
		"duration", input.Duration,
	)

	if input.Duration > calculator.MaxYears {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("duration %d exceeds %d years", input.Duration, calculator.MaxYears))
	}

	records := calculator.Project(input)
	if !calculator.Finite(records) {
		slog.Warn("Projection overflowed", "duration", input.Duration)
		return nil, connect.NewError(connect.CodeInvalidArgument,
			errors.New("projection exceeds the representable range; use smaller amounts or return"))
	}
	s.results.Replace(records)
	s.metrics.ObserveProjection(len(records))

	summary := calculator.Summarize(records)
	slog.Debug("Projection computed",
		"years", summary.Years,
		"final_value", summary.FinalValue,
		"total_interest", summary.TotalInterest,
	)

	return connect.NewResponse(&api.CalculateResponse{
		Records:  records,
		Summary:  summary,
		Headline: render.Headline(records, s.format),
	}), nil
}

// GetResults returns the held projection, if any.
func (s *ProjectionService) GetResults(ctx context.Context, req *connect.Request[api.GetResultsRequest]) (*connect.Response[api.GetResultsResponse], error) {
	records, ok := s.results.Get()
	slog.Info("GetResults request received", "has_results", ok, "years", len(records))

	return connect.NewResponse(&api.GetResultsResponse{
		Records:    records,
		Summary:    calculator.Summarize(records),
		Headline:   headline(records, ok, s.format),
		HasResults: ok,
	}), nil
}

// headline is empty until a projection has been stored.
func headline(records []models.YearRecord, ok bool, f render.Format) string {
	if !ok {
		return ""
	}
	return render.Headline(records, f)
}
