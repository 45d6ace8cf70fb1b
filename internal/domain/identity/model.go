package identity

// Patient is a registered patient. Soft-deleted rows keep their data but
// carry active=false and disappear from every read path.
type Patient struct {
	ID            int64  `json:"id"`
	PatientName   string `json:"patientName"`
	Gender        string `json:"gender"`
	Age           *int   `json:"age"`
	BloodGroup    string `json:"bloodGroup"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	Active        bool   `json:"active"`
}

// Doctor is a practicing doctor. Mutations are restricted to ADMIN callers.
type Doctor struct {
	ID             int64  `json:"id"`
	DoctorName     string `json:"doctorName"`
	Specialization string `json:"specialization"`
	Qualification  string `json:"qualification"`
	Experience     *int   `json:"experience"`
	ContactNumber  string `json:"contactNumber"`
	Email          string `json:"email"`
	Active         bool   `json:"active"`
}
