// Package domain encodes a payment record and its invariants
package domain

import (
	"math"
	"regexp"
	"time"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Payment is an immutable payment record. It is never updated after creation.
type Payment struct {
	ID        string
	Amount    float64
	Currency  string
	CreatedAt time.Time
}

func NewPayment(id string, amount float64, currency string) (*Payment, error) {
	if id == "" {
		return nil, ErrMissingRequiredField
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !IsCurrencyCode(currency) {
		return nil, ErrInvalidCurrency
	}

	return &Payment{
		ID:        id,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// IsCurrencyCode reports whether s has the shape of an ISO 4217 code.
// The code is not checked against a registry.
func IsCurrencyCode(s string) bool {
	return currencyPattern.MatchString(s)
}

// Reconstitute - Special constructor for loading from a store
func Reconstitute(id string, amount float64, currency string, createdAt time.Time) *Payment {
	return &Payment{
		ID:        id,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: createdAt,
	}
}

// ListFilter narrows a scan. An empty Currency matches every payment.
type ListFilter struct {
	Currency string
	Limit    int
	Skip     int
}

// PaymentPage is one window of a scan. Total counts every payment matching
// the filter, independent of Limit and Skip.
type PaymentPage struct {
	Items []*Payment
	Total int
}
