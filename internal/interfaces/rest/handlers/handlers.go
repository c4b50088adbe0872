package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/domain"
)

type PaymentCreator interface {
	CreatePayment(ctx context.Context, raw []byte) (*services.CreateResult, error)
}

type PaymentGetter interface {
	GetPayment(ctx context.Context, rawID string) (*domain.Payment, error)
}

type PaymentLister interface {
	ListPayments(ctx context.Context, rawQuery map[string]string) (*services.ListResult, error)
}

type Handlers struct {
	createService PaymentCreator
	getService    PaymentGetter
	listService   PaymentLister
	logger        *slog.Logger
}

func NewHandlers(
	createService PaymentCreator,
	getService PaymentGetter,
	listService PaymentLister,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		createService: createService,
		getService:    getService,
		listService:   listService,
		logger:        logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleCreatePayment)
	mux.HandleFunc("GET /payments", h.HandleListPayments)
	mux.HandleFunc("GET /payments/{$}", h.HandleGetPayment)
	mux.HandleFunc("GET /payments/{id}", h.HandleGetPayment)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
