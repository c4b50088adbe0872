// Package memory is an in-process payment repository for local runs and tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/DanielPopoola/payment-records/internal/domain"
)

var ErrDuplicatePaymentID = errors.New("payment ID already exists")

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
	order    []string
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]*domain.Payment),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePaymentID, payment.ID)
	}

	stored := *payment
	r.payments[payment.ID] = &stored
	r.order = append(r.order, payment.ID)
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	found := *p
	return &found, nil
}

// Scan walks payments in insertion order.
func (r *PaymentRepository) Scan(ctx context.Context, filter domain.ListFilter) (*domain.PaymentPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []*domain.Payment{}
	total := 0
	for _, id := range r.order {
		p := r.payments[id]
		if filter.Currency != "" && p.Currency != filter.Currency {
			continue
		}
		if total >= filter.Skip && len(items) < filter.Limit {
			found := *p
			items = append(items, &found)
		}
		total++
	}

	return &domain.PaymentPage{Items: items, Total: total}, nil
}
