package accounts

import (
	"context"
	"errors"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validRoles = map[string]bool{
	"ADMIN": true, "DOCTOR": true, "PATIENT": true,
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func view(u *User) *UserView {
	return &UserView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Register checks the role before anything else, then the email, then the
// remaining required fields. The order is load-bearing for callers that
// depend on which message a half-empty request produces.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserView, error) {
	if !validRoles[req.Role] {
		return nil, apperr.Invalid("Invalid role. Must be ADMIN, DOCTOR, or PATIENT")
	}
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Invalid("Email already exists")
	}
	if isBlank(req.Name) || isBlank(req.Email) || isBlank(req.Password) {
		return nil, apperr.Invalid("Name, email, and password are required")
	}

	u := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Active:   true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return view(u), nil
}

// Login returns the same unauthorized error for an unknown email, a wrong
// password, and an inactive account.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*UserView, error) {
	if isBlank(req.Email) || isBlank(req.Password) {
		return nil, apperr.Invalid("Email and password are required")
	}
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if u.Password != req.Password || !u.Active {
		return nil, apperr.Unauthorized("Invalid email or password")
	}
	return view(u), nil
}
