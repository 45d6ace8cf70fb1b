package pharmacy

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repositories when no active row matches.
var ErrNotFound = errors.New("not found")

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id int64) (*Medicine, error)
	List(ctx context.Context) ([]*Medicine, error)
	// FindActiveByName matches the exact name among active medicines.
	FindActiveByName(ctx context.Context, name string) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	Deactivate(ctx context.Context, id int64) error
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id int64) (*Prescription, error)
	List(ctx context.Context) ([]*Prescription, error)
	Update(ctx context.Context, p *Prescription) error
	Deactivate(ctx context.Context, id int64) error
}

type PatientDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type DoctorDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type AppointmentDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
