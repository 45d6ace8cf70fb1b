package reporting

import "context"

type Repository interface {
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
	MonthlyAppointmentCounts(ctx context.Context) ([]*MonthlyAppointmentCount, error)
	MonthlyRevenue(ctx context.Context) ([]*MonthlyRevenue, error)
}
