package identity

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no active row matches.
var ErrNotFound = errors.New("not found")

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	List(ctx context.Context) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Deactivate(ctx context.Context, id int64) error
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	List(ctx context.Context) ([]*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Deactivate(ctx context.Context, id int64) error
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
