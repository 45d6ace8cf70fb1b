package reporting

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	return s.repo.DashboardSummary(ctx)
}

func (s *Service) MonthlyAppointmentCounts(ctx context.Context) ([]*MonthlyAppointmentCount, error) {
	return s.repo.MonthlyAppointmentCounts(ctx)
}

func (s *Service) MonthlyRevenue(ctx context.Context) ([]*MonthlyRevenue, error) {
	return s.repo.MonthlyRevenue(ctx)
}
