package pharmacy

import (
	"context"
	"errors"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type MedicineService struct {
	repo MedicineRepository
}

func NewMedicineService(repo MedicineRepository) *MedicineService {
	return &MedicineService{repo: repo}
}

// checkNameFree rejects a name already carried by another active medicine.
// excludeID skips the medicine being updated.
func (s *MedicineService) checkNameFree(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.repo.FindActiveByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != excludeID {
		return apperr.Conflict("Medicine with this name already exists")
	}
	return nil
}

func (s *MedicineService) Create(ctx context.Context, req *MedicineRequest) (*Medicine, error) {
	if isBlank(req.MedicineName) || req.Price == nil || req.Stock == nil {
		return nil, apperr.Invalid("Medicine name, price, and stock are required")
	}
	if *req.Price < 0 {
		return nil, apperr.Invalid("Price cannot be negative")
	}
	if *req.Stock < 0 {
		return nil, apperr.Invalid("Stock cannot be negative")
	}
	name := strings.TrimSpace(req.MedicineName)
	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	m := &Medicine{
		MedicineName: name,
		Price:        *req.Price,
		Stock:        *req.Stock,
		Active:       true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MedicineService) List(ctx context.Context) ([]*Medicine, error) {
	return s.repo.List(ctx)
}

func (s *MedicineService) Get(ctx context.Context, id int64) (*Medicine, error) {
	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Medicine not found or inactive")
	}
	return m, err
}

func (s *MedicineService) Update(ctx context.Context, id int64, req *MedicineRequest) (*Medicine, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Medicine not found or inactive")
	}
	if err != nil {
		return nil, err
	}

	if !isBlank(req.MedicineName) {
		name := strings.TrimSpace(req.MedicineName)
		if err := s.checkNameFree(ctx, name, id); err != nil {
			return nil, err
		}
		existing.MedicineName = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperr.Invalid("Price cannot be negative")
		}
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperr.Invalid("Stock cannot be negative")
		}
		existing.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *MedicineService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Medicine not found or inactive")
	}
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

type PrescriptionService struct {
	repo         PrescriptionRepository
	patients     PatientDirectory
	doctors      DoctorDirectory
	appointments AppointmentDirectory
}

func NewPrescriptionService(repo PrescriptionRepository, patients PatientDirectory,
	doctors DoctorDirectory, appointments AppointmentDirectory) *PrescriptionService {
	return &PrescriptionService{repo: repo, patients: patients, doctors: doctors, appointments: appointments}
}

func (s *PrescriptionService) checkPatient(ctx context.Context, id int64) error {
	ok, err := s.patients.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Patient not found or inactive")
	}
	return nil
}

func (s *PrescriptionService) checkDoctor(ctx context.Context, id int64) error {
	ok, err := s.doctors.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Doctor not found or inactive")
	}
	return nil
}

func (s *PrescriptionService) checkAppointment(ctx context.Context, id int64) error {
	ok, err := s.appointments.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Appointment not found or inactive")
	}
	return nil
}

func (s *PrescriptionService) Create(ctx context.Context, req *PrescriptionRequest) (*Prescription, error) {
	if req.PrescriptionDate.IsZero() || isBlank(req.Diagnosis) || isBlank(req.Medicines) ||
		req.PatientID == nil || req.DoctorID == nil {
		return nil, apperr.Invalid("Prescription date, diagnosis, medicines, patient ID, and doctor ID are required")
	}
	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctor(ctx, *req.DoctorID); err != nil {
		return nil, err
	}
	if req.AppointmentID != nil {
		if err := s.checkAppointment(ctx, *req.AppointmentID); err != nil {
			return nil, err
		}
	}

	rx := &Prescription{
		PrescriptionDate: req.PrescriptionDate,
		Diagnosis:        req.Diagnosis,
		Medicines:        req.Medicines,
		Notes:            req.Notes,
		PatientID:        *req.PatientID,
		DoctorID:         *req.DoctorID,
		AppointmentID:    req.AppointmentID,
		Active:           true,
	}
	if err := s.repo.Create(ctx, rx); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, rx.ID)
}

func (s *PrescriptionService) List(ctx context.Context) ([]*Prescription, error) {
	return s.repo.List(ctx)
}

func (s *PrescriptionService) Get(ctx context.Context, id int64) (*Prescription, error) {
	rx, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Prescription not found or inactive")
	}
	return rx, err
}

// Update merges the provided fields into the existing prescription. Omitted
// fields keep their current values.
func (s *PrescriptionService) Update(ctx context.Context, id int64, req *PrescriptionRequest) (*Prescription, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Prescription not found or inactive")
	}
	if err != nil {
		return nil, err
	}

	if !req.PrescriptionDate.IsZero() {
		existing.PrescriptionDate = req.PrescriptionDate
	}
	if !isBlank(req.Diagnosis) {
		existing.Diagnosis = req.Diagnosis
	}
	if !isBlank(req.Medicines) {
		existing.Medicines = req.Medicines
	}
	if req.Notes != nil {
		existing.Notes = req.Notes
	}
	if req.PatientID != nil {
		if err := s.checkPatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
		existing.PatientID = *req.PatientID
	}
	if req.DoctorID != nil {
		if err := s.checkDoctor(ctx, *req.DoctorID); err != nil {
			return nil, err
		}
		existing.DoctorID = *req.DoctorID
	}
	if req.AppointmentID != nil {
		if err := s.checkAppointment(ctx, *req.AppointmentID); err != nil {
			return nil, err
		}
		existing.AppointmentID = req.AppointmentID
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PrescriptionService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Prescription not found or inactive")
	}
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
