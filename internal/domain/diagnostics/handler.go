package diagnostics

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
	g := api.Group("/lab-tests")
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
	var req LabTestRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	t, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create lab test")
	}
	return respond.Created(c, "Lab test created successfully", t)
}

func (h *Handler) List(c echo.Context) error {
	tests, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to fetch lab tests")
	}
	return respond.OK(c, "Lab tests fetched successfully", tests)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	t, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to fetch lab test")
	}
	return respond.OK(c, "Lab test fetched successfully", t)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var req LabTestRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	t, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respond.Error(c, err, "Failed to update lab test")
	}
	return respond.OK(c, "Lab test updated successfully", t)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete lab test")
	}
	return respond.OK(c, "Lab test soft-deleted successfully", nil)
}
