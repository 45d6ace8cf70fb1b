package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/respond"
)

type mockRepo struct {
	summary *DashboardSummary
	counts  []*MonthlyAppointmentCount
	revenue []*MonthlyRevenue
	err     error
}

func (m *mockRepo) DashboardSummary(_ context.Context) (*DashboardSummary, error) {
	return m.summary, m.err
}

func (m *mockRepo) MonthlyAppointmentCounts(_ context.Context) ([]*MonthlyAppointmentCount, error) {
	return m.counts, m.err
}

func (m *mockRepo) MonthlyRevenue(_ context.Context) ([]*MonthlyRevenue, error) {
	return m.revenue, m.err
}

func newTestServer(repo Repository) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	NewHandler(NewService(repo)).RegisterRoutes(api)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	e := newTestServer(&mockRepo{summary: &DashboardSummary{
		TotalPatients: 12, TotalDoctors: 4, TotalAppointments: 30,
		TotalBills: 25, TotalRevenue: 48000, PendingPayments: 3,
	}})
	rec := get(e, "/api/dashboard/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env respond.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if !env.Success || env.Message != "Dashboard summary retrieved successfully" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	data := env.Data.(map[string]interface{})
	if data["totalPatients"].(float64) != 12 || data["pendingPayments"].(float64) != 3 {
		t.Errorf("unexpected summary: %+v", data)
	}
}

// Report endpoints answer 200 with success=false on failure.
func TestDashboardSummaryErrorStays200(t *testing.T) {
	e := newTestServer(&mockRepo{err: errors.New("db down")})
	rec := get(e, "/api/dashboard/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even on failure, got %d", rec.Code)
	}
	var env respond.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Message != "Failed to retrieve dashboard summary: db down" {
		t.Errorf("unexpected message: %s", env.Message)
	}
}

func TestMonthlyAppointmentsEndpoint(t *testing.T) {
	e := newTestServer(&mockRepo{counts: []*MonthlyAppointmentCount{
		{Month: "2025-05", Count: 8},
		{Month: "2025-06", Count: 11},
	}})
	rec := get(e, "/api/reports/monthly-appointments")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env respond.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Message != "Monthly appointment counts retrieved successfully" {
		t.Errorf("unexpected message: %s", env.Message)
	}
	rows := env.Data.([]interface{})
	first := rows[0].(map[string]interface{})
	if first["month"] != "2025-05" || first["count"].(float64) != 8 {
		t.Errorf("unexpected row: %+v", first)
	}
}

func TestMonthlyRevenueEndpoint(t *testing.T) {
	e := newTestServer(&mockRepo{revenue: []*MonthlyRevenue{
		{Month: "2025-06", TotalRevenue: 15500},
	}})
	rec := get(e, "/api/reports/monthly-revenue")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var env respond.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Message != "Monthly revenue summary retrieved successfully" {
		t.Errorf("unexpected message: %s", env.Message)
	}
	row := env.Data.([]interface{})[0].(map[string]interface{})
	if row["totalRevenue"].(float64) != 15500 {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestMonthlyRevenueErrorStays200(t *testing.T) {
	e := newTestServer(&mockRepo{err: errors.New("timeout")})
	rec := get(e, "/api/reports/monthly-revenue")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even on failure, got %d", rec.Code)
	}
	var env respond.Envelope
	json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Message != "Failed to retrieve monthly revenue summary: timeout" {
		t.Errorf("unexpected message: %s", env.Message)
	}
}
