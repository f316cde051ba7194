package service

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/investcalc/internal/metrics"
	"github.com/mmynk/investcalc/internal/middleware"
	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/render"
	"github.com/mmynk/investcalc/internal/storage/memory"
	"github.com/mmynk/investcalc/pkg/api"
	"github.com/mmynk/investcalc/pkg/api/apiconnect"
)

// setupTestServer creates a test server with in-memory stores and returns clients for both services
func setupTestServer(t *testing.T) (apiconnect.ProjectionServiceClient, apiconnect.TaskServiceClient, *memory.ResultStore) {
	t.Helper()

	results := memory.NewResultStore()
	tasks := memory.NewTaskStore()
	m := metrics.New()

	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), m.Interceptor())
	projectionPath, projectionHandler := apiconnect.NewProjectionServiceHandler(NewProjectionService(results, m, render.DefaultFormat()), interceptors)
	taskPath, taskHandler := apiconnect.NewTaskServiceHandler(NewTaskService(tasks, m), interceptors)

	mux := http.NewServeMux()
	mux.Handle(projectionPath, projectionHandler)
	mux.Handle(taskPath, taskHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		tasks.Close()
	})

	projectionClient := apiconnect.NewProjectionServiceClient(http.DefaultClient, server.URL)
	taskClient := apiconnect.NewTaskServiceClient(http.DefaultClient, server.URL)

	return projectionClient, taskClient, results
}

func TestCalculate_CompoundsInitialInvestment(t *testing.T) {
	client, _, _ := setupTestServer(t)

	resp, err := client.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{
		InitialInvestment: 1000,
		AnnualInvestment:  0,
		ExpectedReturn:    10,
		Duration:          2,
	}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(resp.Msg.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Msg.Records))
	}

	// Year 1: $100 interest → $1100, Year 2: $110 interest → $1210
	year2 := resp.Msg.Records[1]
	if math.Abs(year2.Interest-110) > 1e-9 {
		t.Errorf("year 2 interest: expected 110, got %f", year2.Interest)
	}
	if math.Abs(year2.ValueEndOfYear-1210) > 1e-9 {
		t.Errorf("year 2 value: expected 1210, got %f", year2.ValueEndOfYear)
	}

	if resp.Msg.Summary.Years != 2 {
		t.Errorf("summary years: expected 2, got %d", resp.Msg.Summary.Years)
	}
	if math.Abs(resp.Msg.Summary.FinalValue-1210) > 1e-9 {
		t.Errorf("summary final value: expected 1210, got %f", resp.Msg.Summary.FinalValue)
	}

	want := "After 2 years: $ 1,210.00 ($ 210.00 interest on $ 1,000.00 invested)"
	if resp.Msg.Headline != want {
		t.Errorf("headline: expected %q, got %q", want, resp.Msg.Headline)
	}
}

func TestCalculate_ZeroDuration(t *testing.T) {
	client, _, _ := setupTestServer(t)

	resp, err := client.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{
		InitialInvestment: 500,
		ExpectedReturn:    5,
		Duration:          0,
	}))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	if len(resp.Msg.Records) != 0 {
		t.Errorf("expected no records, got %d", len(resp.Msg.Records))
	}
	if resp.Msg.Summary != (models.Summary{}) {
		t.Errorf("expected zero summary, got %+v", resp.Msg.Summary)
	}
}

func TestGetResults_BeforeCalculate(t *testing.T) {
	client, _, _ := setupTestServer(t)

	resp, err := client.GetResults(context.Background(), connect.NewRequest(&api.GetResultsRequest{}))
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}

	if resp.Msg.HasResults {
		t.Error("expected HasResults to be false before any Calculate")
	}
	if resp.Msg.Headline != "" {
		t.Errorf("expected empty headline, got %q", resp.Msg.Headline)
	}
	if len(resp.Msg.Records) != 0 {
		t.Errorf("expected no records, got %d", len(resp.Msg.Records))
	}
}

func TestGetResults_ReflectsLatestCalculate(t *testing.T) {
	client, _, results := setupTestServer(t)
	ctx := context.Background()

	var notified atomic.Int32
	results.Subscribe(func(records []models.YearRecord) {
		notified.Add(1)
	})

	for _, duration := range []int{5, 3} {
		_, err := client.Calculate(ctx, connect.NewRequest(&api.CalculateRequest{
			AnnualInvestment: 100,
			Duration:         duration,
		}))
		if err != nil {
			t.Fatalf("Calculate failed: %v", err)
		}
	}

	resp, err := client.GetResults(ctx, connect.NewRequest(&api.GetResultsRequest{}))
	if err != nil {
		t.Fatalf("GetResults failed: %v", err)
	}

	if !resp.Msg.HasResults {
		t.Fatal("expected HasResults to be true")
	}
	if len(resp.Msg.Records) != 3 {
		t.Fatalf("expected the latest 3-year result, got %d records", len(resp.Msg.Records))
	}
	for i, want := range []float64{100, 200, 300} {
		if resp.Msg.Records[i].ValueEndOfYear != want {
			t.Errorf("year %d value: expected %v, got %v", i+1, want, resp.Msg.Records[i].ValueEndOfYear)
		}
	}
	if !strings.HasPrefix(resp.Msg.Headline, "After 3 years: $ 300.00") {
		t.Errorf("unexpected headline %q", resp.Msg.Headline)
	}
	if resp.Msg.Summary.TotalInvested != 300 {
		t.Errorf("summary invested: expected 300, got %v", resp.Msg.Summary.TotalInvested)
	}
	if got := notified.Load(); got != 2 {
		t.Errorf("expected 2 store notifications, got %d", got)
	}
}

func TestCalculate_DurationTooLong(t *testing.T) {
	client, _, results := setupTestServer(t)

	_, err := client.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{
		InitialInvestment: 1,
		Duration:          1_000_000,
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Errorf("expected InvalidArgument, got %v", connect.CodeOf(err))
	}
	if _, ok := results.Get(); ok {
		t.Error("rejected request must not replace the held result")
	}
}

func TestCalculate_OverflowKeepsHeldResult(t *testing.T) {
	client, _, results := setupTestServer(t)
	ctx := context.Background()

	if _, err := client.Calculate(ctx, connect.NewRequest(&api.CalculateRequest{
		AnnualInvestment: 100,
		Duration:         2,
	})); err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	_, err := client.Calculate(ctx, connect.NewRequest(&api.CalculateRequest{
		InitialInvestment: 1e300,
		ExpectedReturn:    1e10,
		Duration:          3,
	}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	held, ok := results.Get()
	if !ok || len(held) != 2 || held[1].ValueEndOfYear != 200 {
		t.Errorf("overflowing projection replaced the held result: %+v", held)
	}

	resp, err := client.GetResults(ctx, connect.NewRequest(&api.GetResultsRequest{}))
	if err != nil {
		t.Fatalf("GetResults failed after rejected Calculate: %v", err)
	}
	if len(resp.Msg.Records) != 2 {
		t.Errorf("expected the earlier 2-year result, got %d records", len(resp.Msg.Records))
	}
}
