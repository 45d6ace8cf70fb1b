package billing

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/pkg/apperr"
	"github.com/hms/hms/pkg/dates"
)

// -- Mocks --

type mockRepo struct {
	billings map[int64]*Billing
	nextID   int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{billings: make(map[int64]*Billing)}
}

func (m *mockRepo) Create(_ context.Context, b *Billing) error {
	m.nextID++
	b.ID = m.nextID
	m.billings[b.ID] = b
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Billing, error) {
	b, ok := m.billings[id]
	if !ok || !b.Active {
		return nil, ErrNotFound
	}
	return b, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Billing, error) {
	var result []*Billing
	for _, b := range m.billings {
		if b.Active {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *mockRepo) Update(_ context.Context, b *Billing) error {
	m.billings[b.ID] = b
	return nil
}

func (m *mockRepo) Deactivate(_ context.Context, id int64) error {
	if b, ok := m.billings[id]; ok {
		b.Active = false
	}
	return nil
}

type stubDirectory map[int64]bool

func (d stubDirectory) ExistsActive(_ context.Context, id int64) (bool, error) {
	return d[id], nil
}

// -- Tests --

func floatPtr(f float64) *float64 { return &f }
func int64Ptr(n int64) *int64     { return &n }

func newTestService() *Service {
	return NewService(newMockRepo(), stubDirectory{1: true}, stubDirectory{1: true})
}

func validRequest() *BillingRequest {
	return &BillingRequest{
		BillDate:        dates.New(2025, time.June, 12),
		ConsultationFee: floatPtr(500),
		TreatmentFee:    floatPtr(1200),
		MedicineFee:     floatPtr(300),
		PaymentMode:     "CASH",
		PatientID:       int64Ptr(1),
	}
}

func TestCreateComputesTotal(t *testing.T) {
	svc := newTestService()
	b, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalAmount != 2000 {
		t.Errorf("expected total 2000, got %v", b.TotalAmount)
	}
	if b.PaymentStatus != "PENDING" {
		t.Errorf("expected default PENDING, got %s", b.PaymentStatus)
	}
}

func TestCreateValidationOrder(t *testing.T) {
	svc := newTestService()

	req := validRequest()
	req.ConsultationFee = nil
	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Bill date, fees, payment mode, and patient ID are required" {
		t.Errorf("unexpected error: %v", err)
	}

	req = validRequest()
	req.PaymentMode = "CHEQUE"
	_, err = svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Invalid payment mode. Must be CASH, CARD, or UPI" {
		t.Errorf("unexpected error: %v", err)
	}

	req = validRequest()
	req.PaymentStatus = "OVERDUE"
	_, err = svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Invalid payment status. Must be PAID or PENDING" {
		t.Errorf("unexpected error: %v", err)
	}

	req = validRequest()
	req.PatientID = int64Ptr(9)
	_, err = svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Patient not found or inactive" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateRejectsUnknownAppointment(t *testing.T) {
	svc := newTestService()
	req := validRequest()
	req.AppointmentID = int64Ptr(9)
	_, err := svc.Create(context.Background(), req)
	if err == nil || err.Error() != "Appointment not found or inactive" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindInvalid {
		t.Error("reference failures are 400s")
	}
}

func TestUpdateRecomputesTotal(t *testing.T) {
	svc := newTestService()
	b, _ := svc.Create(context.Background(), validRequest())

	req := validRequest()
	req.TreatmentFee = floatPtr(2000)
	req.PatientID = nil
	updated, err := svc.Update(context.Background(), b.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TotalAmount != 2800 {
		t.Errorf("expected total 2800, got %v", updated.TotalAmount)
	}
}

func TestUpdateKeepsPaymentStatusWhenBlank(t *testing.T) {
	svc := newTestService()
	req := validRequest()
	req.PaymentStatus = "PAID"
	b, _ := svc.Create(context.Background(), req)

	upd := validRequest()
	upd.PatientID = nil
	updated, err := svc.Update(context.Background(), b.ID, upd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PaymentStatus != "PAID" {
		t.Errorf("blank status should keep PAID, got %s", updated.PaymentStatus)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()
	_, err := svc.Update(context.Background(), 41, validRequest())
	if err == nil || err.Error() != "Billing not found" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeleteNotFoundMessage(t *testing.T) {
	svc := newTestService()
	err := svc.Delete(context.Background(), 41)
	if err == nil || err.Error() != "Billing not found" {
		t.Errorf("unexpected error: %v", err)
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Error("expected not found kind")
	}
}
