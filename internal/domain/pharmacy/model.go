package pharmacy

import (
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/pkg/dates"
)

// Medicine is a catalogue entry. Names are unique among active medicines.
type Medicine struct {
	ID           int64   `json:"id"`
	MedicineName string  `json:"medicineName"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Active       bool    `json:"active"`
}

type MedicineRequest struct {
	MedicineName string   `json:"medicineName"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
}

// Prescription records what a doctor prescribed during a visit. Medicines is
// free text, not a reference into the medicine catalogue. The appointment
// reference is optional.
type Prescription struct {
	ID               int64                   `json:"id"`
	PrescriptionDate dates.Date              `json:"prescriptionDate"`
	Diagnosis        string                  `json:"diagnosis"`
	Medicines        string                  `json:"medicines"`
	Notes            *string                 `json:"notes"`
	PatientID        int64                   `json:"-"`
	DoctorID         int64                   `json:"-"`
	AppointmentID    *int64                  `json:"-"`
	Patient          *identity.Patient       `json:"patient,omitempty"`
	Doctor           *identity.Doctor        `json:"doctor,omitempty"`
	Appointment      *scheduling.Appointment `json:"appointment,omitempty"`
	Active           bool                    `json:"active"`
}

type PrescriptionRequest struct {
	PrescriptionDate dates.Date `json:"prescriptionDate"`
	Diagnosis        string     `json:"diagnosis"`
	Medicines        string     `json:"medicines"`
	Notes            *string    `json:"notes"`
	PatientID        *int64     `json:"patientId"`
	DoctorID         *int64     `json:"doctorId"`
	AppointmentID    *int64     `json:"appointmentId"`
}
