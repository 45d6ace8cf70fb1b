package scheduling

import (
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/pkg/dates"
)

// Appointment links a patient and a doctor on a given date. Responses carry
// the referenced rows as they are stored, even after the patient or doctor
// has been soft-deleted.
type Appointment struct {
	ID              int64             `json:"id"`
	AppointmentDate dates.Date        `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	Reason          string            `json:"reason"`
	Status          string            `json:"status"`
	PatientID       int64             `json:"-"`
	DoctorID        int64             `json:"-"`
	Patient         *identity.Patient `json:"patient,omitempty"`
	Doctor          *identity.Doctor  `json:"doctor,omitempty"`
	Active          bool              `json:"active"`
}

// AppointmentRequest is the write payload. On update, a nil PatientID or
// DoctorID keeps the existing reference and a blank Status keeps the
// existing status.
type AppointmentRequest struct {
	AppointmentDate dates.Date `json:"appointmentDate"`
	AppointmentTime string     `json:"appointmentTime"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	PatientID       *int64     `json:"patientId"`
	DoctorID        *int64     `json:"doctorId"`
}
