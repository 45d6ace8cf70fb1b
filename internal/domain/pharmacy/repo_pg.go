package pharmacy

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

type medicineRepoPG struct{ pool *pgxpool.Pool }

func NewMedicineRepoPG(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{pool: pool}
}

const medicineCols = `id, medicine_name, price, stock, active`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.MedicineName, &m.Price, &m.Stock, &m.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medicines (medicine_name, price, stock, active)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		m.MedicineName, m.Price, m.Stock, m.Active).Scan(&m.ID)
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id int64) (*Medicine, error) {
	return scanMedicine(r.pool.QueryRow(ctx,
		`SELECT `+medicineCols+` FROM medicines WHERE id = $1 AND active = TRUE`, id))
}

func (r *medicineRepoPG) List(ctx context.Context) ([]*Medicine, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+medicineCols+` FROM medicines WHERE active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *medicineRepoPG) FindActiveByName(ctx context.Context, name string) (*Medicine, error) {
	return scanMedicine(r.pool.QueryRow(ctx,
		`SELECT `+medicineCols+` FROM medicines WHERE medicine_name = $1 AND active = TRUE`, name))
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE medicines SET medicine_name=$2, price=$3, stock=$4
		WHERE id = $1`,
		m.ID, m.MedicineName, m.Price, m.Stock)
	return err
}

func (r *medicineRepoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE medicines SET active = FALSE WHERE id = $1`, id)
	return err
}

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepoPG{pool: pool}
}

// Referenced rows are joined without an active filter so a prescription keeps
// reporting its patient, doctor and appointment after they are soft-deleted.
const rxCols = `r.id, r.prescription_date, r.diagnosis, r.medicines, r.notes,
	r.patient_id, r.doctor_id, r.appointment_id, r.active,
	p.id, p.patient_name, p.gender, p.age, p.blood_group, p.contact_number, p.address, p.active,
	d.id, d.doctor_name, d.specialization, d.qualification, d.experience, d.contact_number, d.email, d.active,
	a.id, a.appointment_date, a.appointment_time, a.reason, a.status, a.active`

const rxFrom = ` FROM prescriptions r
	JOIN patients p ON p.id = r.patient_id
	JOIN doctors d ON d.id = r.doctor_id
	LEFT JOIN appointments a ON a.id = r.appointment_id`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var rx Prescription
	var p identity.Patient
	var d identity.Doctor
	var (
		apptID     *int64
		apptDate   *time.Time
		apptTime   *string
		apptReason *string
		apptStatus *string
		apptActive *bool
	)
	err := row.Scan(&rx.ID, &rx.PrescriptionDate, &rx.Diagnosis, &rx.Medicines, &rx.Notes,
		&rx.PatientID, &rx.DoctorID, &rx.AppointmentID, &rx.Active,
		&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active,
		&d.ID, &d.DoctorName, &d.Specialization, &d.Qualification, &d.Experience, &d.ContactNumber, &d.Email, &d.Active,
		&apptID, &apptDate, &apptTime, &apptReason, &apptStatus, &apptActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rx.Patient = &p
	rx.Doctor = &d
	if apptID != nil {
		rx.Appointment = &scheduling.Appointment{
			ID:              *apptID,
			AppointmentDate: dates.Date{Time: *apptDate},
			AppointmentTime: *apptTime,
			Reason:          *apptReason,
			Status:          *apptStatus,
			Active:          *apptActive,
		}
	}
	return &rx, nil
}

func (r *prescriptionRepoPG) Create(ctx context.Context, rx *Prescription) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (prescription_date, diagnosis, medicines, notes,
			patient_id, doctor_id, appointment_id, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		rx.PrescriptionDate, rx.Diagnosis, rx.Medicines, rx.Notes,
		rx.PatientID, rx.DoctorID, rx.AppointmentID, rx.Active).Scan(&rx.ID)
}

func (r *prescriptionRepoPG) GetByID(ctx context.Context, id int64) (*Prescription, error) {
	return scanPrescription(r.pool.QueryRow(ctx,
		`SELECT `+rxCols+rxFrom+` WHERE r.id = $1 AND r.active = TRUE`, id))
}

func (r *prescriptionRepoPG) List(ctx context.Context) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+rxCols+rxFrom+` WHERE r.active = TRUE ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Prescription
	for rows.Next() {
		rx, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rx)
	}
	return items, rows.Err()
}

func (r *prescriptionRepoPG) Update(ctx context.Context, rx *Prescription) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE prescriptions SET prescription_date=$2, diagnosis=$3, medicines=$4, notes=$5,
			patient_id=$6, doctor_id=$7, appointment_id=$8
		WHERE id = $1`,
		rx.ID, rx.PrescriptionDate, rx.Diagnosis, rx.Medicines, rx.Notes,
		rx.PatientID, rx.DoctorID, rx.AppointmentID)
	return err
}

func (r *prescriptionRepoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE prescriptions SET active = FALSE WHERE id = $1`, id)
	return err
}
