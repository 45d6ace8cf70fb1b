package billing

import (
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/pkg/dates"
)

// Billing is an invoice for a patient, optionally tied to an appointment.
// TotalAmount is always derived from the three fee components; it is never
// accepted from the client.
type Billing struct {
	ID              int64                   `json:"id"`
	BillDate        dates.Date              `json:"billDate"`
	ConsultationFee float64                 `json:"consultationFee"`
	TreatmentFee    float64                 `json:"treatmentFee"`
	MedicineFee     float64                 `json:"medicineFee"`
	TotalAmount     float64                 `json:"totalAmount"`
	PaymentMode     string                  `json:"paymentMode"`
	PaymentStatus   string                  `json:"paymentStatus"`
	PatientID       int64                   `json:"-"`
	AppointmentID   *int64                  `json:"-"`
	Patient         *identity.Patient       `json:"patient,omitempty"`
	Appointment     *scheduling.Appointment `json:"appointment,omitempty"`
	Active          bool                    `json:"active"`
}

// BillingRequest is the write payload. On update, a nil PatientID or
// AppointmentID keeps the existing reference and a blank PaymentStatus
// keeps the existing status.
type BillingRequest struct {
	BillDate        dates.Date `json:"billDate"`
	ConsultationFee *float64   `json:"consultationFee"`
	TreatmentFee    *float64   `json:"treatmentFee"`
	MedicineFee     *float64   `json:"medicineFee"`
	PaymentMode     string     `json:"paymentMode"`
	PaymentStatus   string     `json:"paymentStatus"`
	PatientID       *int64     `json:"patientId"`
	AppointmentID   *int64     `json:"appointmentId"`
}
