package records

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/pkg/apperr"
	"github.com/hms/hms/pkg/dates"
)

type mockRepo struct {
	records map[int64]*MedicalRecord
	nextID  int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[int64]*MedicalRecord)}
}

func (m *mockRepo) Create(_ context.Context, r *MedicalRecord) error {
	m.nextID++
	r.ID = m.nextID
	m.records[r.ID] = r
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*MedicalRecord, error) {
	r, ok := m.records[id]
	if !ok || !r.Active {
		return nil, ErrNotFound
	}
	return r, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID int64) ([]*MedicalRecord, error) {
	var result []*MedicalRecord
	for _, r := range m.records {
		if r.Active && r.PatientID == patientID {
			result = append(result, r)
		}
	}
	return result, nil
}

type stubDirectory map[int64]bool

func (d stubDirectory) ExistsActive(_ context.Context, id int64) (bool, error) {
	return d[id], nil
}

func int64Ptr(n int64) *int64 { return &n }

func newTestService() *Service {
	return NewService(newMockRepo(), stubDirectory{1: true})
}

func validRequest() *MedicalRecordRequest {
	return &MedicalRecordRequest{
		VisitDate: dates.New(2025, time.May, 2),
		Symptoms:  "Fever, headache",
		Diagnosis: "Viral infection",
		Treatment: "Rest and fluids",
		PatientID: int64Ptr(1),
	}
}

func TestCreateRecord(t *testing.T) {
	svc := newTestService()
	r, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Active {
		t.Error("new record should be active")
	}
}

func TestCreateRequiredFields(t *testing.T) {
	svc := newTestService()
	req := validRequest()
	req.Treatment = " "
	_, err := svc.Create(context.Background(), req)
	want := "Visit date, symptoms, diagnosis, treatment, and patient ID are required"
	if err == nil || err.Error() != want {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateRejectsUnknownPatient(t *testing.T) {
	svc := newTestService()
	req := validRequest()
	req.PatientID = int64Ptr(8)
	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Patient not found or inactive" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Error("reference failures are 400s")
	}
}

func TestListByPatientChecksPatient(t *testing.T) {
	svc := newTestService()
	svc.Create(context.Background(), validRequest())

	items, err := svc.ListByPatient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 record, got %d", len(items))
	}

	if _, err := svc.ListByPatient(context.Background(), 9); err == nil {
		t.Error("unknown patient should be rejected")
	}
}
