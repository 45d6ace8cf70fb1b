package identity

import (
	"context"
	"testing"

	"github.com/hms/hms/pkg/apperr"
)

// -- Mock repositories --

type mockPatientRepo struct {
	patients map[int64]*Patient
	nextID   int64
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*Patient)}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	m.nextID++
	p.ID = m.nextID
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok || !p.Active {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPatientRepo) List(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if p.Active {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Deactivate(_ context.Context, id int64) error {
	if p, ok := m.patients[id]; ok {
		p.Active = false
	}
	return nil
}

func (m *mockPatientRepo) ExistsActive(_ context.Context, id int64) (bool, error) {
	p, ok := m.patients[id]
	return ok && p.Active, nil
}

type mockDoctorRepo struct {
	doctors map[int64]*Doctor
	nextID  int64
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[int64]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	m.nextID++
	d.ID = m.nextID
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id int64) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok || !d.Active {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *mockDoctorRepo) List(_ context.Context) ([]*Doctor, error) {
	var result []*Doctor
	for _, d := range m.doctors {
		if d.Active {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Deactivate(_ context.Context, id int64) error {
	if d, ok := m.doctors[id]; ok {
		d.Active = false
	}
	return nil
}

func (m *mockDoctorRepo) ExistsActive(_ context.Context, id int64) (bool, error) {
	d, ok := m.doctors[id]
	return ok && d.Active, nil
}

// -- Tests --

func intPtr(n int) *int { return &n }

func newTestService() *Service {
	return NewService(newMockPatientRepo(), newMockDoctorRepo())
}

func validPatient() *Patient {
	return &Patient{
		PatientName:   "Asha Rao",
		Gender:        "FEMALE",
		Age:           intPtr(34),
		BloodGroup:    "O+",
		ContactNumber: "9876543210",
		Address:       "12 Lake View Road",
	}
}

func validDoctor() *Doctor {
	return &Doctor{
		DoctorName:     "Meera Iyer",
		Specialization: "Cardiology",
		Qualification:  "MD",
		Experience:     intPtr(10),
		ContactNumber:  "9123456780",
		Email:          "meera@example.com",
	}
}

func TestCreatePatient(t *testing.T) {
	svc := newTestService()
	p := validPatient()
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected assigned ID")
	}
	if !p.Active {
		t.Error("new patient should be active")
	}
}

func TestCreatePatientMissingFields(t *testing.T) {
	svc := newTestService()
	p := validPatient()
	p.Gender = ""
	err := svc.CreatePatient(context.Background(), p)
	if err == nil || err.Error() != "All fields are required" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Error("expected invalid kind")
	}
}

func TestGetPatientNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetPatient(context.Background(), 99)
	if err == nil || err.Error() != "Patient not found" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Error("expected not found kind")
	}
}

func TestUpdatePatientReplacesAllFields(t *testing.T) {
	svc := newTestService()
	p := validPatient()
	svc.CreatePatient(context.Background(), p)

	in := validPatient()
	in.PatientName = "Asha R"
	in.Age = intPtr(35)
	updated, err := svc.UpdatePatient(context.Background(), p.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PatientName != "Asha R" || *updated.Age != 35 {
		t.Errorf("fields not replaced: %+v", updated)
	}
	if !updated.Active {
		t.Error("update must not change the active flag")
	}
}

func TestDeletePatientSoftDeletes(t *testing.T) {
	svc := newTestService()
	p := validPatient()
	svc.CreatePatient(context.Background(), p)

	if err := svc.DeletePatient(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetPatient(context.Background(), p.ID); err == nil {
		t.Error("deleted patient should not be retrievable")
	}
	if err := svc.DeletePatient(context.Background(), p.ID); err == nil {
		t.Error("second delete should report not found")
	}
}

func TestCreateDoctorNegativeExperience(t *testing.T) {
	svc := newTestService()
	d := validDoctor()
	d.Experience = intPtr(-1)
	err := svc.CreateDoctor(context.Background(), d)
	if err == nil || err.Error() != "Experience cannot be negative" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetDoctor(context.Background(), 5)
	if err == nil || err.Error() != "Doctor not found or inactive" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateDoctorValidatesBeforeLookup(t *testing.T) {
	svc := newTestService()
	in := validDoctor()
	in.Email = ""
	_, err := svc.UpdateDoctor(context.Background(), 404, in)
	if err == nil || err.Error() != "All fields are required" {
		t.Errorf("validation should run before the existence check: %v", err)
	}
}
