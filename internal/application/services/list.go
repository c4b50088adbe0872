package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/DanielPopoola/payment-records/internal/domain"
)

type ListPaymentsService struct {
	paymentRepo application.PaymentRepository
	logger      *slog.Logger
}

func NewListPaymentsService(
	paymentRepo application.PaymentRepository,
	logger *slog.Logger,
) *ListPaymentsService {
	return &ListPaymentsService{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// ListPayments scans the repository with the validated filter. Results are
// never cached.
func (s *ListPaymentsService) ListPayments(ctx context.Context, rawQuery map[string]string) (*ListResult, error) {
	query, errs := validation.ValidateListQuery(rawQuery)
	if len(errs) > 0 {
		s.logger.Warn("list payments query validation failed", "errors", errs)
		return nil, application.NewValidationError("Invalid query parameters", errs)
	}

	page, err := s.paymentRepo.Scan(ctx, domain.ListFilter{
		Currency: query.Currency,
		Limit:    query.Limit,
		Skip:     query.Skip,
	})
	if err != nil {
		s.logger.Error("failed to list payments", "currency", query.Currency, "error", err)
		return nil, application.NewInternalError(err)
	}

	return &ListResult{
		Items: page.Items,
		Total: page.Total,
		Limit: query.Limit,
		Skip:  query.Skip,
	}, nil
}
