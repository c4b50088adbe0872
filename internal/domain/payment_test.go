package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("creates payment successfully", func(t *testing.T) {
		payment, err := domain.NewPayment("pay-123", 1000, "USD")

		require.NoError(t, err)
		assert.Equal(t, "pay-123", payment.ID)
		assert.Equal(t, float64(1000), payment.Amount)
		assert.Equal(t, "USD", payment.Currency)
		assert.NotZero(t, payment.CreatedAt)
	})

	t.Run("rejects empty payment ID", func(t *testing.T) {
		_, err := domain.NewPayment("", 1000, "USD")

		assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
	})

	t.Run("rejects non-positive and non-finite amounts", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := domain.NewPayment("pay-123", amount, "USD")

			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %v", amount)
		}
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		for _, currency := range []string{"", "usd", "US", "USDD", "U5D"} {
			_, err := domain.NewPayment("pay-123", 10, currency)

			assert.ErrorIs(t, err, domain.ErrInvalidCurrency, "currency %q", currency)
		}
	})
}

func TestReconstitute(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	payment := domain.Reconstitute("pay-1", 12.5, "AUD", createdAt)

	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, 12.5, payment.Amount)
	assert.Equal(t, "AUD", payment.Currency)
	assert.Equal(t, createdAt, payment.CreatedAt)
}

func TestIsCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsCurrencyCode("AUD"))
	assert.False(t, domain.IsCurrencyCode("aud"))
	assert.False(t, domain.IsCurrencyCode("AUDD"))
	assert.False(t, domain.IsCurrencyCode(" AUD"))
}
