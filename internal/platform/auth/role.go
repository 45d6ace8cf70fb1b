// Package auth derives the caller's role from the X-User-Role request
// header. The API trusts the header as-is; there is no token validation.
package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/respond"
)

// RoleHeader is the request header carrying the caller's role.
const RoleHeader = "X-User-Role"

const roleContextKey = "caller_role"

// Role is a normalized caller role. The empty Role means the header was
// absent or blank.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

// ExtractRole reads the role header once per request, uppercases it, and
// stores the typed result in the request context for downstream checks.
func ExtractRole() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(RoleHeader))
			if raw != "" {
				c.Set(roleContextKey, Role(strings.ToUpper(raw)))
			}
			return next(c)
		}
	}
}

// RoleFromContext returns the caller's role, or "" when no role header was
// supplied.
func RoleFromContext(c echo.Context) Role {
	if r, ok := c.Get(roleContextKey).(Role); ok {
		return r
	}
	return ""
}

// RequireAdmin guards a route so that only callers with the ADMIN role may
// pass. Any other caller, including one with no role header at all, gets a
// 403 with the given message.
func RequireAdmin(deniedMessage string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if RoleFromContext(c) != RoleAdmin {
				return respond.Fail(c, http.StatusForbidden, deniedMessage)
			}
			return next(c)
		}
	}
}
