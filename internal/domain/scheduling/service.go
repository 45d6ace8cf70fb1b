package scheduling

import (
	"context"
	"errors"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

type Service struct {
	repo     Repository
	patients PatientDirectory
	doctors  DoctorDirectory
}

func NewService(repo Repository, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

var validStatuses = map[string]bool{
	"SCHEDULED": true, "COMPLETED": true, "CANCELLED": true,
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *Service) checkPatient(ctx context.Context, id int64) error {
	ok, err := s.patients.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Patient not found or inactive")
	}
	return nil
}

func (s *Service) checkDoctor(ctx context.Context, id int64) error {
	ok, err := s.doctors.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Doctor not found or inactive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req *AppointmentRequest) (*Appointment, error) {
	if req.AppointmentDate.IsZero() || isBlank(req.AppointmentTime) || isBlank(req.Reason) ||
		req.PatientID == nil || req.DoctorID == nil {
		return nil, apperr.Invalid("Appointment date, time, reason, patient ID, and doctor ID are required")
	}
	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}
	if err := s.checkDoctor(ctx, *req.DoctorID); err != nil {
		return nil, err
	}
	status := req.Status
	if isBlank(status) {
		status = "SCHEDULED"
	} else if !validStatuses[status] {
		return nil, apperr.Invalid("Invalid status. Must be SCHEDULED, COMPLETED, or CANCELLED")
	}

	a := &Appointment{
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          status,
		PatientID:       *req.PatientID,
		DoctorID:        *req.DoctorID,
		Active:          true,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, a.ID)
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Appointment not found")
	}
	return a, err
}

func (s *Service) Update(ctx context.Context, id int64, req *AppointmentRequest) (*Appointment, error) {
	if req.AppointmentDate.IsZero() || isBlank(req.AppointmentTime) || isBlank(req.Reason) {
		return nil, apperr.Invalid("Appointment date, time, and reason are required")
	}
	if !isBlank(req.Status) && !validStatuses[req.Status] {
		return nil, apperr.Invalid("Invalid status. Must be SCHEDULED, COMPLETED, or CANCELLED")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Appointment not found")
	}
	if err != nil {
		return nil, err
	}

	existing.AppointmentDate = req.AppointmentDate
	existing.AppointmentTime = req.AppointmentTime
	existing.Reason = req.Reason
	if !isBlank(req.Status) {
		existing.Status = req.Status
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

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Appointment not found")
	}
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
