package diagnostics

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

const labTestCols = `t.id, t.test_name, t.test_fee, t.result, t.status, t.patient_id, t.active,
	p.id, p.patient_name, p.gender, p.age, p.blood_group, p.contact_number, p.address, p.active`

const labTestFrom = ` FROM lab_tests t
	JOIN patients p ON p.id = t.patient_id`

func scanLabTest(row pgx.Row) (*LabTest, error) {
	var t LabTest
	var p identity.Patient
	err := row.Scan(&t.ID, &t.TestName, &t.TestFee, &t.Result, &t.Status, &t.PatientID, &t.Active,
		&p.ID, &p.PatientName, &p.Gender, &p.Age, &p.BloodGroup, &p.ContactNumber, &p.Address, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Patient = &p
	return &t, nil
}

func (r *repoPG) Create(ctx context.Context, t *LabTest) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO lab_tests (test_name, test_fee, result, status, patient_id, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		t.TestName, t.TestFee, t.Result, t.Status, t.PatientID, t.Active).Scan(&t.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*LabTest, error) {
	return scanLabTest(r.pool.QueryRow(ctx,
		`SELECT `+labTestCols+labTestFrom+` WHERE t.id = $1 AND t.active = TRUE`, id))
}

func (r *repoPG) List(ctx context.Context) ([]*LabTest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+labTestCols+labTestFrom+` WHERE t.active = TRUE ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*LabTest
	for rows.Next() {
		t, err := scanLabTest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, t *LabTest) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE lab_tests SET test_name=$2, test_fee=$3, result=$4, status=$5, patient_id=$6
		WHERE id = $1`,
		t.ID, t.TestName, t.TestFee, t.Result, t.Status, t.PatientID)
	return err
}

func (r *repoPG) Deactivate(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE lab_tests SET active = FALSE WHERE id = $1`, id)
	return err
}
