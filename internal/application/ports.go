package application

import (
	"context"

	"github.com/DanielPopoola/payment-records/internal/domain"
)

// PaymentRepository is the port for persistence.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	// FindByID returns domain.ErrPaymentNotFound when no payment has id.
	FindByID(ctx context.Context, id string) (*domain.Payment, error)
	Scan(ctx context.Context, filter domain.ListFilter) (*domain.PaymentPage, error)
}

// PaymentCache is the read-path cache consulted by GetPaymentService. A nil
// payment stored under a key records that the repository has no such payment.
type PaymentCache interface {
	Get(key string) (*domain.Payment, bool)
	Set(key string, payment *domain.Payment)
}
