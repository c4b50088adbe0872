package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/google/uuid"
)

const cacheKeyPrefix = "payment:"

type GetPaymentService struct {
	paymentRepo application.PaymentRepository
	cache       application.PaymentCache
	logger      *slog.Logger
}

func NewGetPaymentService(
	paymentRepo application.PaymentRepository,
	cache application.PaymentCache,
	logger *slog.Logger,
) *GetPaymentService {
	return &GetPaymentService{
		paymentRepo: paymentRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetPayment returns the payment with rawID. Lookups go through the cache;
// a repository miss is cached too, so repeated requests for an unknown id
// reach the repository once per TTL.
func (s *GetPaymentService) GetPayment(ctx context.Context, rawID string) (*domain.Payment, error) {
	if rawID == "" {
		s.logger.Warn("missing payment ID")
		return nil, application.NewMissingPaymentIDError()
	}

	id, ok := canonicalID(rawID)
	if !ok {
		s.logger.Warn("invalid payment ID format", "payment_id", rawID)
		return nil, application.NewMalformedPaymentIDError()
	}

	payment, err := s.cachedPayment(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve payment", "payment_id", id, "error", err)
		return nil, application.NewInternalError(err)
	}

	if payment == nil {
		s.logger.Warn("payment not found", "payment_id", id)
		return nil, application.NewPaymentNotFoundError(rawID)
	}

	// The cached payment is shared by every reader; callers get their own copy.
	found := *payment
	return &found, nil
}

func (s *GetPaymentService) cachedPayment(ctx context.Context, id string) (*domain.Payment, error) {
	key := cacheKeyPrefix + id

	if payment, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", "payment_id", id)
		return payment, nil
	}

	s.logger.Debug("cache miss", "payment_id", id)
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, err
		}
		payment = nil
	}

	s.cache.Set(key, payment)
	return payment, nil
}

// canonicalID accepts only the 36-character hyphenated form and returns it
// lowercased.
func canonicalID(raw string) (string, bool) {
	if len(raw) != 36 {
		return "", false
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
