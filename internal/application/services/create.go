package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/google/uuid"
)

type CreatePaymentService struct {
	paymentRepo application.PaymentRepository
	logger      *slog.Logger
}

func NewCreatePaymentService(
	paymentRepo application.PaymentRepository,
	logger *slog.Logger,
) *CreatePaymentService {
	return &CreatePaymentService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// CreatePayment validates a raw creation body and stores a new payment under
// a freshly generated identifier.
func (s *CreatePaymentService) CreatePayment(ctx context.Context, raw []byte) (*CreateResult, error) {
	input, errs := validation.ValidateCreate(raw)
	if len(errs) > 0 {
		s.logger.Warn("payment input validation failed", "errors", errs)
		return nil, application.NewValidationError("Validation failed", errs)
	}

	payment, err := domain.NewPayment(uuid.New().String(), input.Amount, input.Currency)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		s.logger.Error("failed to create payment", "payment_id", payment.ID, "error", err)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment created", "payment_id", payment.ID)
	return &CreateResult{ID: payment.ID}, nil
}
