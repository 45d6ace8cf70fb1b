package reporting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// DashboardSummary runs one aggregate per counter. Revenue covers paid
// billings, pending payments count unpaid ones; everything else is a plain
// active-row count.
func (r *repoPG) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var s DashboardSummary
	queries := []struct {
		sql  string
		dest interface{}
	}{
		{`SELECT COUNT(*) FROM patients WHERE active = TRUE`, &s.TotalPatients},
		{`SELECT COUNT(*) FROM doctors WHERE active = TRUE`, &s.TotalDoctors},
		{`SELECT COUNT(*) FROM appointments WHERE active = TRUE`, &s.TotalAppointments},
		{`SELECT COUNT(*) FROM billings WHERE active = TRUE`, &s.TotalBills},
		{`SELECT COALESCE(SUM(total_amount), 0) FROM billings WHERE active = TRUE AND payment_status = 'PAID'`, &s.TotalRevenue},
		{`SELECT COUNT(*) FROM billings WHERE active = TRUE AND payment_status = 'PENDING'`, &s.PendingPayments},
	}
	for _, q := range queries {
		if err := r.pool.QueryRow(ctx, q.sql).Scan(q.dest); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *repoPG) MonthlyAppointmentCounts(ctx context.Context) ([]*MonthlyAppointmentCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(a.appointment_date, 'YYYY-MM') AS month, COUNT(a.id) AS count
		FROM appointments a WHERE a.active = TRUE
		GROUP BY to_char(a.appointment_date, 'YYYY-MM')
		ORDER BY to_char(a.appointment_date, 'YYYY-MM')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MonthlyAppointmentCount
	for rows.Next() {
		var m MonthlyAppointmentCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *repoPG) MonthlyRevenue(ctx context.Context) ([]*MonthlyRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT to_char(b.bill_date, 'YYYY-MM') AS month, COALESCE(SUM(b.total_amount), 0) AS total_revenue
		FROM billings b WHERE b.active = TRUE AND b.payment_status = 'PAID'
		GROUP BY to_char(b.bill_date, 'YYYY-MM')
		ORDER BY to_char(b.bill_date, 'YYYY-MM')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MonthlyRevenue
	for rows.Next() {
		var m MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.TotalRevenue); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}
