package scheduling

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no active row matches.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Deactivate(ctx context.Context, id int64) error
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

// PatientDirectory and DoctorDirectory answer active-existence checks at
// write time. The identity repositories satisfy them.
type PatientDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type DoctorDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
