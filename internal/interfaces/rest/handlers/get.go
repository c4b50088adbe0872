package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
)

// HandleGetPayment serves both /payments/{id} and the bare /payments/
// route, where the empty id is rejected by the service.
func (h *Handlers) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.getService.GetPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToPaymentResponse(payment))
}
