package services

import "github.com/DanielPopoola/payment-records/internal/domain"

// CreateResult is the outcome of a successful CreatePayment.
type CreateResult struct {
	ID string
}

// ListResult is one page of payments plus the echoed window.
type ListResult struct {
	Items []*domain.Payment
	Total int
	Limit int
	Skip  int
}
