package billing

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
	g := api.Group("/billings")
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
	var req BillingRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create billing")
	}
	return respond.Created(c, "Billing record created successfully", b)
}

func (h *Handler) List(c echo.Context) error {
	billings, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve billings")
	}
	return respond.OK(c, "Billings retrieved successfully", billings)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to retrieve billing")
	}
	return respond.OK(c, "Billing retrieved successfully", b)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var req BillingRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	b, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respond.Error(c, err, "Failed to update billing")
	}
	return respond.OK(c, "Billing updated successfully", b)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete billing")
	}
	return respond.OK(c, "Billing deleted successfully", nil)
}
