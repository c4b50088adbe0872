package rest

import (
	"time"

	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/domain"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePaymentResponse struct {
	ID string `json:"id"`
}

type ListPaymentsResponse struct {
	Items []PaymentResponse `json:"items"`
	Total int               `json:"total"`
	Limit int               `json:"limit"`
	Skip  int               `json:"skip"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt.UTC(),
	}
}

func ToCreatePaymentResponse(r *services.CreateResult) CreatePaymentResponse {
	return CreatePaymentResponse{ID: r.ID}
}

// ToListPaymentsResponse always renders items as an array, never null.
func ToListPaymentsResponse(r *services.ListResult) ListPaymentsResponse {
	items := make([]PaymentResponse, 0, len(r.Items))
	for _, p := range r.Items {
		items = append(items, ToPaymentResponse(p))
	}

	return ListPaymentsResponse{
		Items: items,
		Total: r.Total,
		Limit: r.Limit,
		Skip:  r.Skip,
	}
}
