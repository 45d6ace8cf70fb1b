package records

import (
	"context"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
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

func (s *Service) Create(ctx context.Context, req *MedicalRecordRequest) (*MedicalRecord, error) {
	if req.VisitDate.IsZero() || isBlank(req.Symptoms) || isBlank(req.Diagnosis) ||
		isBlank(req.Treatment) || req.PatientID == nil {
		return nil, apperr.Invalid("Visit date, symptoms, diagnosis, treatment, and patient ID are required")
	}
	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}

	m := &MedicalRecord{
		VisitDate: req.VisitDate,
		Symptoms:  req.Symptoms,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		PatientID: *req.PatientID,
		Active:    true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, m.ID)
}

// ListByPatient returns a patient's history, most recent visit first. The
// patient must exist and be active.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	if err := s.checkPatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}
