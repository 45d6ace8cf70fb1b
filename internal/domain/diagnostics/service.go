package diagnostics

import (
	"context"
	"errors"
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

var validTestStatuses = map[string]bool{
	"PENDING": true, "IN_PROGRESS": true, "COMPLETED": true,
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

func (s *Service) Create(ctx context.Context, req *LabTestRequest) (*LabTest, error) {
	if isBlank(req.TestName) || req.TestFee == nil || isBlank(req.Status) || req.PatientID == nil {
		return nil, apperr.Invalid("Test name, test fee, status, and patient ID are required")
	}
	if *req.TestFee < 0 {
		return nil, apperr.Invalid("Test fee cannot be negative")
	}
	if !validTestStatuses[req.Status] {
		return nil, apperr.Invalid("Invalid status. Must be PENDING, IN_PROGRESS, or COMPLETED")
	}
	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}

	t := &LabTest{
		TestName:  strings.TrimSpace(req.TestName),
		TestFee:   *req.TestFee,
		Result:    req.Result,
		Status:    req.Status,
		PatientID: *req.PatientID,
		Active:    true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, t.ID)
}

func (s *Service) List(ctx context.Context) ([]*LabTest, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*LabTest, error) {
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Lab test not found or inactive")
	}
	return t, err
}

// Update is merge-style: only fields present in the request overwrite the
// stored row.
func (s *Service) Update(ctx context.Context, id int64, req *LabTestRequest) (*LabTest, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Lab test not found or inactive")
	}
	if err != nil {
		return nil, err
	}

	if !isBlank(req.TestName) {
		existing.TestName = strings.TrimSpace(req.TestName)
	}
	if req.TestFee != nil {
		if *req.TestFee < 0 {
			return nil, apperr.Invalid("Test fee cannot be negative")
		}
		existing.TestFee = *req.TestFee
	}
	if req.Result != nil {
		existing.Result = req.Result
	}
	if !isBlank(req.Status) {
		if !validTestStatuses[req.Status] {
			return nil, apperr.Invalid("Invalid status. Must be PENDING, IN_PROGRESS, or COMPLETED")
		}
		existing.Status = req.Status
	}
	if req.PatientID != nil {
		if err := s.checkPatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
		existing.PatientID = *req.PatientID
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Lab test not found or inactive")
	}
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
