package records

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no active row matches.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, m *MedicalRecord) error
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
}

type PatientDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
