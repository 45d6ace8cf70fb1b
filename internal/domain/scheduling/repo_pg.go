package scheduling

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/domain/identity"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

// Referenced patient and doctor rows are joined without an active filter:
// an appointment keeps reporting its participants after they are
// soft-deleted.
const apptCols = `a.id, a.appointment_date, a.appointment_time, a.reason, a.status, a.patient_id, a.doctor_id, a.active,
	p.id, p.patient_name, p.gender, p.age, p.blood_group, p.contact_number, p.address, p.active,
	d.id, d.doctor_name, d.specialization, d.qualification, d.experience, d.contact_number, d.email, d.active`

const apptFrom = ` FROM appointments a
	JOIN patients p ON p.id = a.patient_id
	JOIN doctors d ON d.id = a.doctor_id`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	var p identity.Patient
	var d identity.Doctor
	err := row.Scan(&a.ID, &a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status, &a.PatientID, &a.DoctorID, &a.Active,
		&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active,
		&d.ID, &d.DoctorName, &d.Specialization, &d.Qualification, &d.Experience, &d.ContactNumber, &d.Email, &d.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Patient = &p
	a.Doctor = &d
	return &a, nil
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (appointment_date, appointment_time, reason, status, patient_id, doctor_id, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status, a.PatientID, a.DoctorID, a.Active).Scan(&a.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+apptFrom+` WHERE a.id = $1 AND a.active = TRUE`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+apptFrom+` WHERE a.active = TRUE ORDER BY a.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointments SET appointment_date=$2, appointment_time=$3, reason=$4,
			status=$5, patient_id=$6, doctor_id=$7
		WHERE id = $1`,
		a.ID, a.AppointmentDate, a.AppointmentTime, a.Reason, a.Status, a.PatientID, a.DoctorID)
	return err
}

func (r *repoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE appointments SET active = FALSE WHERE id = $1`, id)
	return err
}

func (r *repoPG) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE id = $1 AND active = TRUE)`, id).Scan(&exists)
	return exists, err
}
