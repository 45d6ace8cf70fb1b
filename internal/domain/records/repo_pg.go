package records

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

const recordCols = `m.id, m.visit_date, m.symptoms, m.diagnosis, m.treatment, m.patient_id, m.active,
	p.id, p.patient_name, p.gender, p.age, p.blood_group, p.contact_number, p.address, p.active`

const recordFrom = ` FROM medical_records m
	JOIN patients p ON p.id = m.patient_id`

func scanRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	var p identity.Patient
	err := row.Scan(&m.ID, &m.VisitDate, &m.Symptoms, &m.Diagnosis, &m.Treatment, &m.PatientID, &m.Active,
		&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m.Patient = &p
	return &m, nil
}

func (r *repoPG) Create(ctx context.Context, m *MedicalRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medical_records (visit_date, symptoms, diagnosis, treatment, patient_id, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		m.VisitDate, m.Symptoms, m.Diagnosis, m.Treatment, m.PatientID, m.Active).Scan(&m.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	return scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+recordFrom+` WHERE m.id = $1 AND m.active = TRUE`, id))
}

// ListByPatient returns the patient's active records, most recent visit
// first.
func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordCols+recordFrom+` WHERE m.patient_id = $1 AND m.active = TRUE ORDER BY m.visit_date DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*MedicalRecord
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
