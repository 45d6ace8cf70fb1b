package scheduling

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/appointments")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) Create(c echo.Context) error {
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create appointment")
	}
	return respond.Created(c, "Appointment created successfully", a)
}

func (h *Handler) List(c echo.Context) error {
	appointments, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve appointments")
	}
	return respond.OK(c, "Appointments retrieved successfully", appointments)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve appointment")
	}
	return respond.OK(c, "Appointment retrieved successfully", a)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var req AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respond.Error(c, err, "Failed to update appointment")
	}
	return respond.OK(c, "Appointment updated successfully", a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete appointment")
	}
	return respond.OK(c, "Appointment deleted successfully", nil)
}
