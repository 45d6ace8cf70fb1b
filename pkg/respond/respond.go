// Package respond writes the API's uniform response envelope. Every
// endpoint answers with {success, message, data} regardless of outcome.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/apperr"
)

type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// Error maps a service error onto the envelope. Classified errors keep
// their message verbatim; anything unclassified becomes a 500 with the
// failure prefix prepended, e.g. "Failed to create patient: <cause>".
func Error(c echo.Context, err error, failPrefix string) error {
	switch apperr.KindOf(err) {
	case apperr.KindInvalid:
		return Fail(c, http.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		return Fail(c, http.StatusNotFound, err.Error())
	case apperr.KindConflict:
		return Fail(c, http.StatusConflict, err.Error())
	case apperr.KindUnauthorized:
		return Fail(c, http.StatusUnauthorized, err.Error())
	default:
		return Fail(c, http.StatusInternalServerError, failPrefix+": "+err.Error())
	}
}
