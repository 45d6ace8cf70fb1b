package records

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
	g := api.Group("/records")
	g.POST("", h.Create)
	g.GET("/patient/:patientId", h.ListByPatient)
}

func (h *Handler) Create(c echo.Context) error {
	var req MedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create medical record")
	}
	return respond.Created(c, "Medical record created successfully", m)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return respond.Error(c, err, "Failed to fetch medical records")
	}
	return respond.OK(c, "Medical records fetched successfully", items)
}
