package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/application/services"
	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/cache"
	"github.com/DanielPopoola/payment-records/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest/middleware"
	"github.com/stretchr/testify/require"
)

// Response is the decoded envelope of any API response.
type Response struct {
	Status  int             `json:"-"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details validation.Errors `json:"details"`
	} `json:"error"`
}

// TestClient wraps HTTP calls to the service
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TestClient) do(t *testing.T, method, path string, body []byte) *Response {
	t.Helper()

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := &Response{Status: resp.StatusCode}
	require.NoError(t, json.Unmarshal(raw, out), string(raw))
	return out
}

func (c *TestClient) CreatePayment(t *testing.T, payload any) *Response {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return c.do(t, http.MethodPost, "/payments", body)
}

func (c *TestClient) GetPayment(t *testing.T, id string) *Response {
	return c.do(t, http.MethodGet, "/payments/"+id, nil)
}

func (c *TestClient) ListPayments(t *testing.T, rawQuery string) *Response {
	path := "/payments"
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	return c.do(t, http.MethodGet, path, nil)
}

// countingRepository records how often FindByID reaches the store.
type countingRepository struct {
	*memory.PaymentRepository
	finds atomic.Int64
}

func (r *countingRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	r.finds.Add(1)
	return r.PaymentRepository.FindByID(ctx, id)
}

// newServer wires the whole service the way cmd/gateway does, on the
// in-memory store.
func newServer(t *testing.T, repo *countingRepository) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)

	paymentCache, err := cache.NewStore[*domain.Payment](time.Minute, 10)
	require.NoError(t, err)

	h := handlers.NewHandlers(
		services.NewCreatePaymentService(repo, logger),
		services.NewGetPaymentService(repo, paymentCache, logger),
		services.NewListPaymentsService(repo, logger),
		logger,
	)

	apiDocs, err := rest.LoadAPIDocs(t.Context())
	require.NoError(t, err)

	mux := http.NewServeMux()
	apiDocs.RegisterRoutes(mux)
	h.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(5 * time.Second)(handler)

	return httptest.NewServer(handler)
}
