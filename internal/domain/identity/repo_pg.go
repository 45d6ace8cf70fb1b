package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, patient_name, gender, age, blood_group, contact_number, address, active`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (patient_name, gender, age, blood_group, contact_number, address, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		p.PatientName, p.Gender, p.Age, p.BloodGroup, p.ContactNumber, p.Address, p.Active).Scan(&p.ID)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND active = TRUE`, id))
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patients SET patient_name=$2, gender=$3, age=$4, blood_group=$5,
			contact_number=$6, address=$7
		WHERE id = $1`,
		p.ID, p.PatientName, p.Gender, p.Age, p.BloodGroup, p.ContactNumber, p.Address)
	return err
}

func (r *patientRepoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE patients SET active = FALSE WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1 AND active = TRUE)`, id).Scan(&exists)
	return exists, err
}

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `id, doctor_name, specialization, qualification, experience, contact_number, email, active`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.DoctorName, &d.Specialization, &d.Qualification, &d.Experience, &d.ContactNumber, &d.Email, &d.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctors (doctor_name, specialization, qualification, experience, contact_number, email, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		d.DoctorName, d.Specialization, d.Qualification, d.Experience, d.ContactNumber, d.Email, d.Active).Scan(&d.ID)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1 AND active = TRUE`, id))
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE active = TRUE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE doctors SET doctor_name=$2, specialization=$3, qualification=$4,
			experience=$5, contact_number=$6, email=$7
		WHERE id = $1`,
		d.ID, d.DoctorName, d.Specialization, d.Qualification, d.Experience, d.ContactNumber, d.Email)
	return err
}

func (r *doctorRepoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE doctors SET active = FALSE WHERE id = $1`, id)
	return err
}

func (r *doctorRepoPG) ExistsActive(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1 AND active = TRUE)`, id).Scan(&exists)
	return exists, err
}
