package reporting

import (
	"net/http"

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
	api.GET("/dashboard/summary", h.DashboardSummary)
	api.GET("/reports/monthly-appointments", h.MonthlyAppointmentCounts)
	api.GET("/reports/monthly-revenue", h.MonthlyRevenue)
}

// Report endpoints answer 200 even on failure; consumers read the success
// flag instead of the status code.
func (h *Handler) DashboardSummary(c echo.Context) error {
	s, err := h.svc.DashboardSummary(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusOK, "Failed to retrieve dashboard summary: "+err.Error())
	}
	return respond.OK(c, "Dashboard summary retrieved successfully", s)
}

func (h *Handler) MonthlyAppointmentCounts(c echo.Context) error {
	items, err := h.svc.MonthlyAppointmentCounts(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusOK, "Failed to retrieve monthly appointment counts: "+err.Error())
	}
	return respond.OK(c, "Monthly appointment counts retrieved successfully", items)
}

func (h *Handler) MonthlyRevenue(c echo.Context) error {
	items, err := h.svc.MonthlyRevenue(c.Request().Context())
	if err != nil {
		return respond.Fail(c, http.StatusOK, "Failed to retrieve monthly revenue summary: "+err.Error())
	}
	return respond.OK(c, "Monthly revenue summary retrieved successfully", items)
}
