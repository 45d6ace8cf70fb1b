package billing

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no active row matches.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, b *Billing) error
	GetByID(ctx context.Context, id int64) (*Billing, error)
	List(ctx context.Context) ([]*Billing, error)
	Update(ctx context.Context, b *Billing) error
	Deactivate(ctx context.Context, id int64) error
}

type PatientDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}

type AppointmentDirectory interface {
	ExistsActive(ctx context.Context, id int64) (bool, error)
}
