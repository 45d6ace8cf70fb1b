package diagnostics

import (
	"github.com/hms/hms/internal/domain/identity"
)

// LabTest is an ordered test for a patient. Result stays null until the
// test has been performed.
type LabTest struct {
	ID        int64             `json:"id"`
	TestName  string            `json:"testName"`
	TestFee   float64           `json:"testFee"`
	Result    *string           `json:"result"`
	Status    string            `json:"status"`
	PatientID int64             `json:"-"`
	Patient   *identity.Patient `json:"patient,omitempty"`
	Active    bool              `json:"active"`
}

// LabTestRequest is the write payload. Updates are merge-style: only the
// fields present in the request overwrite the stored row.
type LabTestRequest struct {
	TestName  string   `json:"testName"`
	TestFee   *float64 `json:"testFee"`
	Result    *string  `json:"result"`
	Status    string   `json:"status"`
	PatientID *int64   `json:"patientId"`
}
