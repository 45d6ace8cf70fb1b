package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/pkg/apperr"
	"github.com/hms/hms/pkg/dates"
)

// -- Mocks --

type mockRepo struct {
	appointments map[int64]*Appointment
	nextID       int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[int64]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	m.nextID++
	a.ID = m.nextID
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok || !a.Active {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Appointment, error) {
	var result []*Appointment
	for _, a := range m.appointments {
		if a.Active {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) Deactivate(_ context.Context, id int64) error {
	if a, ok := m.appointments[id]; ok {
		a.Active = false
	}
	return nil
}

func (m *mockRepo) ExistsActive(_ context.Context, id int64) (bool, error) {
	a, ok := m.appointments[id]
	return ok && a.Active, nil
}

type stubDirectory map[int64]bool

func (d stubDirectory) ExistsActive(_ context.Context, id int64) (bool, error) {
	return d[id], nil
}

// -- Tests --

func int64Ptr(n int64) *int64 { return &n }

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, stubDirectory{1: true}, stubDirectory{1: true})
	return svc, repo
}

func validRequest() *AppointmentRequest {
	return &AppointmentRequest{
		AppointmentDate: dates.New(2025, time.June, 10),
		AppointmentTime: "10:30",
		Reason:          "Chest pain",
		PatientID:       int64Ptr(1),
		DoctorID:        int64Ptr(1),
	}
}

func TestCreateDefaultsToScheduled(t *testing.T) {
	svc, _ := newTestService()
	a, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != "SCHEDULED" {
		t.Errorf("expected SCHEDULED, got %s", a.Status)
	}
	if !a.Active {
		t.Error("new appointment should be active")
	}
}

func TestCreateRequiredFields(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.DoctorID = nil
	_, err := svc.Create(context.Background(), req)
	want := "Appointment date, time, reason, patient ID, and doctor ID are required"
	if err == nil || err.Error() != want {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateRejectsUnknownPatient(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.PatientID = int64Ptr(42)
	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Patient not found or inactive" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Error("reference failures are 400s, not 404s")
	}
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.Status = "DONE"
	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Invalid status. Must be SCHEDULED, COMPLETED, or CANCELLED" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateKeepsStatusWhenOmitted(t *testing.T) {
	svc, _ := newTestService()
	a, _ := svc.Create(context.Background(), validRequest())

	req := validRequest()
	req.Reason = "Follow-up"
	req.PatientID = nil
	req.DoctorID = nil
	updated, err := svc.Update(context.Background(), a.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Reason != "Follow-up" {
		t.Errorf("reason not updated: %s", updated.Reason)
	}
	if updated.Status != "SCHEDULED" {
		t.Errorf("omitted status should be kept, got %s", updated.Status)
	}
	if updated.PatientID != 1 || updated.DoctorID != 1 {
		t.Error("omitted references should be kept")
	}
}

func TestUpdateRequiresCoreFields(t *testing.T) {
	svc, _ := newTestService()
	a, _ := svc.Create(context.Background(), validRequest())

	req := validRequest()
	req.AppointmentTime = ""
	_, err := svc.Update(context.Background(), a.ID, req)
	if err == nil || err.Error() != "Appointment date, time, and reason are required" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update(context.Background(), 77, validRequest())
	if err == nil || err.Error() != "Appointment not found" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Error("expected not found kind")
	}
}

func TestDeleteSoftDeletes(t *testing.T) {
	svc, repo := newTestService()
	a, _ := svc.Create(context.Background(), validRequest())

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.appointments[a.ID].Active {
		t.Error("delete should clear the active flag, not remove the row")
	}
	if _, err := svc.Get(context.Background(), a.ID); err == nil {
		t.Error("deleted appointment should not be retrievable")
	}
}
