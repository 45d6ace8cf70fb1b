package billing

import (
	"context"
	"errors"
	"strings"

	"github.com/hms/hms/pkg/apperr"
)

type Service struct {
	repo         Repository
	patients     PatientDirectory
	appointments AppointmentDirectory
}

func NewService(repo Repository, patients PatientDirectory, appointments AppointmentDirectory) *Service {
	return &Service{repo: repo, patients: patients, appointments: appointments}
}

var validPaymentModes = map[string]bool{
	"CASH": true, "CARD": true, "UPI": true,
}

var validPaymentStatuses = map[string]bool{
	"PAID": true, "PENDING": true,
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// fee treats a missing component as zero when deriving the total.
func fee(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func totalAmount(consultation, treatment, medicine *float64) float64 {
	return fee(consultation) + fee(treatment) + fee(medicine)
}

func (s *Service) checkPatient(ctx context.Context, id int64) error {
	ok, err := s.patients.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Patient not found or inactive")
	}
	return nil
}

func (s *Service) checkAppointment(ctx context.Context, id int64) error {
	ok, err := s.appointments.ExistsActive(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Invalid("Appointment not found or inactive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req *BillingRequest) (*Billing, error) {
	if req.BillDate.IsZero() || req.ConsultationFee == nil || req.TreatmentFee == nil ||
		req.MedicineFee == nil || isBlank(req.PaymentMode) || req.PatientID == nil {
		return nil, apperr.Invalid("Bill date, fees, payment mode, and patient ID are required")
	}
	if !validPaymentModes[req.PaymentMode] {
		return nil, apperr.Invalid("Invalid payment mode. Must be CASH, CARD, or UPI")
	}
	paymentStatus := req.PaymentStatus
	if isBlank(paymentStatus) {
		paymentStatus = "PENDING"
	} else if !validPaymentStatuses[paymentStatus] {
		return nil, apperr.Invalid("Invalid payment status. Must be PAID or PENDING")
	}
	if err := s.checkPatient(ctx, *req.PatientID); err != nil {
		return nil, err
	}
	if req.AppointmentID != nil {
		if err := s.checkAppointment(ctx, *req.AppointmentID); err != nil {
			return nil, err
		}
	}

	b := &Billing{
		BillDate:        req.BillDate,
		ConsultationFee: fee(req.ConsultationFee),
		TreatmentFee:    fee(req.TreatmentFee),
		MedicineFee:     fee(req.MedicineFee),
		TotalAmount:     totalAmount(req.ConsultationFee, req.TreatmentFee, req.MedicineFee),
		PaymentMode:     req.PaymentMode,
		PaymentStatus:   paymentStatus,
		PatientID:       *req.PatientID,
		AppointmentID:   req.AppointmentID,
		Active:          true,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, b.ID)
}

func (s *Service) List(ctx context.Context) ([]*Billing, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Billing, error) {
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Billing not found")
	}
	return b, err
}

func (s *Service) Update(ctx context.Context, id int64, req *BillingRequest) (*Billing, error) {
	if req.BillDate.IsZero() || req.ConsultationFee == nil || req.TreatmentFee == nil ||
		req.MedicineFee == nil || isBlank(req.PaymentMode) {
		return nil, apperr.Invalid("Bill date, fees, and payment mode are required")
	}
	if !validPaymentModes[req.PaymentMode] {
		return nil, apperr.Invalid("Invalid payment mode. Must be CASH, CARD, or UPI")
	}
	if !isBlank(req.PaymentStatus) && !validPaymentStatuses[req.PaymentStatus] {
		return nil, apperr.Invalid("Invalid payment status. Must be PAID or PENDING")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("Billing not found")
	}
	if err != nil {
		return nil, err
	}

	existing.BillDate = req.BillDate
	existing.ConsultationFee = fee(req.ConsultationFee)
	existing.TreatmentFee = fee(req.TreatmentFee)
	existing.MedicineFee = fee(req.MedicineFee)
	existing.TotalAmount = totalAmount(req.ConsultationFee, req.TreatmentFee, req.MedicineFee)
	existing.PaymentMode = req.PaymentMode
	if !isBlank(req.PaymentStatus) {
		existing.PaymentStatus = req.PaymentStatus
	}
	if req.PatientID != nil {
		if err := s.checkPatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
		existing.PatientID = *req.PatientID
	}
	if req.AppointmentID != nil {
		if err := s.checkAppointment(ctx, *req.AppointmentID); err != nil {
			return nil, err
		}
		existing.AppointmentID = req.AppointmentID
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("Billing not found")
	}
	if err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
