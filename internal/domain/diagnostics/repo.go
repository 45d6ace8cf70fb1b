package diagnostics

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no active row matches.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, t *LabTest) error
	GetByID(ctx context.Context, id int64) (*LabTest, error)
	List(ctx context.Context) ([]*LabTest, error)
	Update(ctx context.Context, t *LabTest) error
	Deactivate(ctx context.Context, id int64) error
}

type PatientDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
