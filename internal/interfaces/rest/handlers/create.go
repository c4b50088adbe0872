package handlers

import (
	"io"
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
)

const maxBodyBytes = 1 << 20

// HandleCreatePayment hands the raw body to the service. An unreadable body
// is validated as empty, like malformed JSON.
func (h *Handlers) HandleCreatePayment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("failed to read request body", "error", err)
		body = nil
	}

	result, err := h.createService.CreatePayment(r.Context(), body)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.ToCreatePaymentResponse(result))
}
