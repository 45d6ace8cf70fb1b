package accounts

import (
	"context"
	"errors"
)

// ErrNotFound is returned by the repository when no row matches.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
