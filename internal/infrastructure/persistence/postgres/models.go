package postgres

import "time"

// PaymentModel is the row shape of the payments table.
type PaymentModel struct {
	ID        string
	Amount    float64
	Currency  string
	CreatedAt time.Time
}
