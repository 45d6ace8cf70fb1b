package identity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/respond"
)

func newTestServer() (*echo.Echo, *Service) {
	svc := newTestService()
	e := echo.New()
	e.Use(auth.ExtractRole())
	api := e.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return e, svc
}

func doJSON(e *echo.Echo, method, path, body, role string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != "" {
		req.Header.Set(auth.RoleHeader, role)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return env
}

const patientBody = `{"patientName":"Asha Rao","gender":"FEMALE","age":34,"bloodGroup":"O+","contactNumber":"9876543210","address":"12 Lake View Road"}`

const doctorBody = `{"doctorName":"Meera Iyer","specialization":"Cardiology","qualification":"MD","experience":10,"contactNumber":"9123456780","email":"meera@example.com"}`

func TestCreatePatientEndpoint(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/patients", patientBody, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := envelope(t, rec)
	if !env.Success || env.Message != "Patient created successfully" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestCreatePatientEndpointRejectsIncomplete(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/patients", `{"patientName":"Asha Rao"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "All fields are required" {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}

func TestGetPatientEndpointNotFound(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodGet, "/api/patients/99", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Patient not found" {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}

func TestDeletePatientEndpoint(t *testing.T) {
	e, _ := newTestServer()
	doJSON(e, http.MethodPost, "/api/patients", patientBody, "")
	rec := doJSON(e, http.MethodDelete, "/api/patients/1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Patient deleted successfully" {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/patients/1", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleted patient should 404, got %d", rec.Code)
	}
}

func TestDoctorMutationsRequireAdmin(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/doctors", doctorBody, "DOCTOR")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Access denied. Only ADMIN can create doctors." {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodPut, "/api/doctors/1", doctorBody, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Access denied. Only ADMIN can update doctors." {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}

	rec = doJSON(e, http.MethodDelete, "/api/doctors/1", "", "PATIENT")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Access denied. Only ADMIN can delete doctors." {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}

func TestDoctorLifecycleAsAdmin(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/api/doctors", doctorBody, "admin")
	if rec.Code != http.StatusCreated {
		t.Fatalf("lowercase admin header should pass, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/doctors/1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor reads need no role, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/api/doctors/1", "", "ADMIN")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if envelope(t, rec).Message != "Doctor soft-deleted successfully" {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}
}
