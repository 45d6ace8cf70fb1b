package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
}

func NewService(patients PatientRepository, doctors DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// -- Patient --

func validatePatient(p *Patient) error {
	if isBlank(p.PatientName) || isBlank(p.Gender) || p.Age == nil ||
		isBlank(p.BloodGroup) || isBlank(p.ContactNumber) || isBlank(p.Address) {
		return apperr.Invalid("All fields are required")
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	p.Active = true
	return s.patients.Create(ctx, p)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Patient not found")
	}
	return p, err
}

func (s *Service) UpdatePatient(ctx context.Context, id int64, in *Patient) (*Patient, error) {
	if err := validatePatient(in); err != nil {
		return nil, err
	}
	existing, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Patient not found")
	}
	if err != nil {
		return nil, err
	}
	existing.PatientName = in.PatientName
	existing.Gender = in.Gender
	existing.Age = in.Age
	existing.BloodGroup = in.BloodGroup
	existing.ContactNumber = in.ContactNumber
	existing.Address = in.Address
	if err := s.patients.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	_, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Patient not found")
	}
	if err != nil {
		return err
	}
	return s.patients.Deactivate(ctx, id)
}

// -- Doctor --

func validateDoctor(d *Doctor) error {
	if isBlank(d.DoctorName) || isBlank(d.Specialization) || isBlank(d.Qualification) ||
		d.Experience == nil || isBlank(d.ContactNumber) || isBlank(d.Email) {
		return apperr.Invalid("All fields are required")
	}
	if *d.Experience < 0 {
		return apperr.Invalid("Experience cannot be negative")
	}
	return nil
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	d.Active = true
	return s.doctors.Create(ctx, d)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*Doctor, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Doctor not found or inactive")
	}
	return d, err
}

func (s *Service) UpdateDoctor(ctx context.Context, id int64, in *Doctor) (*Doctor, error) {
	if err := validateDoctor(in); err != nil {
		return nil, err
	}
	existing, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Doctor not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	existing.DoctorName = in.DoctorName
	existing.Specialization = in.Specialization
	existing.Qualification = in.Qualification
	existing.Experience = in.Experience
	existing.ContactNumber = in.ContactNumber
	existing.Email = in.Email
	if err := s.doctors.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id int64) error {
	_, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Doctor not found or inactive")
	}
	if err != nil {
		return err
	}
	return s.doctors.Deactivate(ctx, id)
}
