package identity

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	patients := api.Group("/patients")
	patients.POST("", h.CreatePatient)
	patients.GET("", h.ListPatients)
	patients.GET("/:id", h.GetPatient)
	patients.PUT("/:id", h.UpdatePatient)
	patients.DELETE("/:id", h.DeletePatient)

	doctors := api.Group("/doctors")
	doctors.GET("", h.ListDoctors)
	doctors.GET("/:id", h.GetDoctor)
	doctors.POST("", h.CreateDoctor, auth.RequireAdmin("Access denied. Only ADMIN can create doctors."))
	doctors.PUT("/:id", h.UpdateDoctor, auth.RequireAdmin("Access denied. Only ADMIN can update doctors."))
	doctors.DELETE("/:id", h.DeleteDoctor, auth.RequireAdmin("Access denied. Only ADMIN can delete doctors."))
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// -- Patient Handlers --

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return respond.Error(c, err, "Failed to create patient")
	}
	return respond.Created(c, "Patient created successfully", p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve patients")
	}
	return respond.OK(c, "Patients retrieved successfully", patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve patient")
	}
	return respond.OK(c, "Patient retrieved successfully", p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdatePatient(c.Request().Context(), id, &p)
	if err != nil {
		return respond.Error(c, err, "Failed to update patient")
	}
	return respond.OK(c, "Patient updated successfully", updated)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete patient")
	}
	return respond.OK(c, "Patient deleted successfully", nil)
}

// -- Doctor Handlers --

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDoctor(c.Request().Context(), &d); err != nil {
		return respond.Error(c, err, "Failed to create doctor")
	}
	return respond.Created(c, "Doctor created successfully", d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve doctors")
	}
	return respond.OK(c, "Doctors retrieved successfully", doctors)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve doctor")
	}
	return respond.OK(c, "Doctor retrieved successfully", d)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateDoctor(c.Request().Context(), id, &d)
	if err != nil {
		return respond.Error(c, err, "Failed to update doctor")
	}
	return respond.OK(c, "Doctor updated successfully", updated)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteDoctor(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete doctor")
	}
	return respond.OK(c, "Doctor soft-deleted successfully", nil)
}
