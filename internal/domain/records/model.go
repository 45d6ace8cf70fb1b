package records

import (
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/pkg/dates"
)

// MedicalRecord is one visit entry in a patient's history. Records are
// append-only: there is no update or delete endpoint.
type MedicalRecord struct {
	ID        int64             `json:"id"`
	VisitDate dates.Date        `json:"visitDate"`
	Symptoms  string            `json:"symptoms"`
	Diagnosis string            `json:"diagnosis"`
	Treatment string            `json:"treatment"`
	PatientID int64             `json:"-"`
	Patient   *identity.Patient `json:"patient,omitempty"`
	Active    bool              `json:"active"`
}

type MedicalRecordRequest struct {
	VisitDate dates.Date `json:"visitDate"`
	Symptoms  string     `json:"symptoms"`
	Diagnosis string     `json:"diagnosis"`
	Treatment string     `json:"treatment"`
	PatientID *int64     `json:"patientId"`
}
