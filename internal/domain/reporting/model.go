package reporting

// DashboardSummary aggregates headline counts for the landing page.
type DashboardSummary struct {
	TotalPatients     int64   `json:"totalPatients"`
	TotalDoctors      int64   `json:"totalDoctors"`
	TotalAppointments int64   `json:"totalAppointments"`
	TotalBills        int64   `json:"totalBills"`
	TotalRevenue      float64 `json:"totalRevenue"`
	PendingPayments   int64   `json:"pendingPayments"`
}

// MonthlyAppointmentCount is one row of the monthly appointment report.
// Month is formatted YYYY-MM.
type MonthlyAppointmentCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// MonthlyRevenue is one row of the monthly revenue report, covering paid
// billings only.
type MonthlyRevenue struct {
	Month        string  `json:"month"`
	TotalRevenue float64 `json:"totalRevenue"`
}
