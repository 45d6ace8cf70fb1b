package billing

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/pkg/dates"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// Referenced rows are joined without an active filter so a billing keeps
// reporting its patient and appointment after they are soft-deleted. The
// appointment reference is optional.
const billCols = `b.id, b.bill_date, b.consultation_fee, b.treatment_fee, b.medicine_fee, b.total_amount,
	b.payment_mode, b.payment_status, b.patient_id, b.appointment_id, b.active,
	p.id, p.patient_name, p.gender, p.age, p.blood_group, p.contact_number, p.address, p.active,
	a.id, a.appointment_date, a.appointment_time, a.reason, a.status, a.active`

const billFrom = ` FROM billings b
	JOIN patients p ON p.id = b.patient_id
	LEFT JOIN appointments a ON a.id = b.appointment_id`

func scanBilling(row pgx.Row) (*Billing, error) {
	var b Billing
	var p identity.Patient
	var (
		apptID     *int64
		apptDate   *time.Time
		apptTime   *string
		apptReason *string
		apptStatus *string
		apptActive *bool
	)
	err := row.Scan(&b.ID, &b.BillDate, &b.ConsultationFee, &b.TreatmentFee, &b.MedicineFee, &b.TotalAmount,
		&b.PaymentMode, &b.PaymentStatus, &b.PatientID, &b.AppointmentID, &b.Active,
		&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active,
		&apptID, &apptDate, &apptTime, &apptReason, &apptStatus, &apptActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.Patient = &p
	if apptID != nil {
		b.Appointment = &scheduling.Appointment{
			ID:              *apptID,
			AppointmentDate: dates.Date{Time: *apptDate},
			AppointmentTime: *apptTime,
			Reason:          *apptReason,
			Status:          *apptStatus,
			Active:          *apptActive,
		}
	}
	return &b, nil
}

func (r *repoPG) Create(ctx context.Context, b *Billing) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO billings (bill_date, consultation_fee, treatment_fee, medicine_fee, total_amount,
			payment_mode, payment_status, patient_id, appointment_id, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id`,
		b.BillDate, b.ConsultationFee, b.TreatmentFee, b.MedicineFee, b.TotalAmount,
		b.PaymentMode, b.PaymentStatus, b.PatientID, b.AppointmentID, b.Active).Scan(&b.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Billing, error) {
	return scanBilling(r.pool.QueryRow(ctx,
		`SELECT `+billCols+billFrom+` WHERE b.id = $1 AND b.active = TRUE`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Billing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+billCols+billFrom+` WHERE b.active = TRUE ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Billing
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, b *Billing) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE billings SET bill_date=$2, consultation_fee=$3, treatment_fee=$4, medicine_fee=$5,
			total_amount=$6, payment_mode=$7, payment_status=$8, patient_id=$9, appointment_id=$10
		WHERE id = $1`,
		b.ID, b.BillDate, b.ConsultationFee, b.TreatmentFee, b.MedicineFee,
		b.TotalAmount, b.PaymentMode, b.PaymentStatus, b.PatientID, b.AppointmentID)
	return err
}

func (r *repoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE billings SET active = FALSE WHERE id = $1`, id)
	return err
}
