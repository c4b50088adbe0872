package rest_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	rest.WriteJSON(rec, http.StatusCreated, rest.CreatePaymentResponse{ID: "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestWriteError_ServiceErrorWithDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := application.NewValidationError("Invalid payment data", validation.Errors{
		{Field: "amount", Message: "Amount is required"},
	})

	rest.WriteError(rec, err, discard)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	apiErr := body["error"].(map[string]any)
	assert.Equal(t, application.ErrCodeValidationFailed, apiErr["code"])
	assert.Equal(t, "Invalid payment data", apiErr["message"])
	assert.Equal(t, []any{map[string]any{"field": "amount", "message": "Amount is required"}}, apiErr["details"])
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()

	rest.WriteError(rec, errors.New("pq: connection refused to 10.0.0.3"), discard)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
	apiErr := decode(t, rec)["error"].(map[string]any)
	assert.Equal(t, application.ErrCodeInternal, apiErr["code"])
	assert.Equal(t, "An internal error occurred", apiErr["message"])
	assert.NotContains(t, apiErr, "details")
}

func TestToListPaymentsResponse_EmptyItemsIsArray(t *testing.T) {
	resp := rest.ToListPaymentsResponse(&services.ListResult{Limit: 20})

	raw, err := json.Marshal(resp)

	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0,"limit":20,"skip":0}`, string(raw))
}

func TestToPaymentResponse(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Reconstitute("8c7f6a3e-2b1d-4c5e-9f0a-1b2c3d4e5f60", 12.5, "EUR", created)

	resp := rest.ToPaymentResponse(p)

	assert.Equal(t, rest.PaymentResponse{
		ID:        p.ID,
		Amount:    12.5,
		Currency:  "EUR",
		CreatedAt: created,
	}, resp)
}

func TestAPIDocs_ServesBothFormats(t *testing.T) {
	apiDocs, err := rest.LoadAPIDocs(t.Context())
	require.NoError(t, err)

	mux := http.NewServeMux()
	apiDocs.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	swagger := decode(t, rec)
	assert.Equal(t, "2.0", swagger["swagger"])

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	openapi := decode(t, rec)
	assert.Contains(t, openapi["openapi"], "3.")
	assert.Contains(t, openapi["paths"], "/payments/{id}")
}
