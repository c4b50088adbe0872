package domain

import "errors"

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidAmount        = errors.New("amount must be a positive finite number")
	ErrInvalidCurrency      = errors.New("currency must be a 3-letter uppercase code")
	ErrMissingRequiredField = errors.New("payment ID is required")
)
