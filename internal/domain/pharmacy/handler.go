package pharmacy

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/respond"
)

type Handler struct {
	medicines     *MedicineService
	prescriptions *PrescriptionService
}

func NewHandler(medicines *MedicineService, prescriptions *PrescriptionService) *Handler {
	return &Handler{medicines: medicines, prescriptions: prescriptions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	m := api.Group("/medicines")
	m.POST("", h.CreateMedicine)
	m.GET("", h.ListMedicines)
	m.GET("/:id", h.GetMedicine)
	m.PUT("/:id", h.UpdateMedicine)
	m.DELETE("/:id", h.DeleteMedicine)

	r := api.Group("/prescriptions")
	r.POST("", h.CreatePrescription)
	r.GET("", h.ListPrescriptions)
	r.GET("/:id", h.GetPrescription)
	r.PUT("/:id", h.UpdatePrescription)
	r.DELETE("/:id", h.DeletePrescription)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	m, err := h.medicines.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create medicine")
	}
	return respond.Created(c, "Medicine created successfully", m)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	items, err := h.medicines.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to fetch medicines")
	}
	return respond.OK(c, "Medicines fetched successfully", items)
}

func (h *Handler) GetMedicine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	m, err := h.medicines.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to fetch medicine")
	}
	return respond.OK(c, "Medicine fetched successfully", m)
}

func (h *Handler) UpdateMedicine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	m, err := h.medicines.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respond.Error(c, err, "Failed to update medicine")
	}
	return respond.OK(c, "Medicine updated successfully", m)
}

func (h *Handler) DeleteMedicine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.medicines.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete medicine")
	}
	return respond.OK(c, "Medicine soft-deleted successfully", nil)
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var req PrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	rx, err := h.prescriptions.Create(c.Request().Context(), &req)
	if err != nil {
		return respond.Error(c, err, "Failed to create prescription")
	}
	return respond.Created(c, "Prescription created successfully", rx)
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	items, err := h.prescriptions.List(c.Request().Context())
	if err != nil {
		return respond.Error(c, err, "Failed to fetch prescriptions")
	}
	return respond.OK(c, "Prescriptions fetched successfully", items)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	rx, err := h.prescriptions.Get(c.Request().Context(), id)
	if err != nil {
		return respond.Error(c, err, "Failed to fetch prescription")
	}
	return respond.OK(c, "Prescription fetched successfully", rx)
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	var req PrescriptionRequest
	if err := c.Bind(&req); err != nil {
		return respond.Fail(c, http.StatusBadRequest, err.Error())
	}
	rx, err := h.prescriptions.Update(c.Request().Context(), id, &req)
	if err != nil {
		return respond.Error(c, err, "Failed to update prescription")
	}
	return respond.OK(c, "Prescription updated successfully", rx)
}

func (h *Handler) DeletePrescription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return respond.Fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.prescriptions.Delete(c.Request().Context(), id); err != nil {
		return respond.Error(c, err, "Failed to delete prescription")
	}
	return respond.OK(c, "Prescription soft-deleted successfully", nil)
}
