package validation_test

import (
	"testing"

	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs validation.Errors) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func messageFor(errs validation.Errors, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestValidateCreate(t *testing.T) {
	t.Run("accepts a valid payload", func(t *testing.T) {
		input, errs := validation.ValidateCreate([]byte(`{"amount":1000,"currency":"USD"}`))

		require.Empty(t, errs)
		assert.Equal(t, float64(1000), input.Amount)
		assert.Equal(t, "USD", input.Currency)
	})

	t.Run("accepts fractional amounts", func(t *testing.T) {
		input, errs := validation.ValidateCreate([]byte(`{"amount":0.01,"currency":"AUD"}`))

		require.Empty(t, errs)
		assert.Equal(t, 0.01, input.Amount)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, body := range []string{
			`{"amount":0,"currency":"USD"}`,
			`{"amount":-1,"currency":"USD"}`,
			`{"amount":-0.5,"currency":"USD"}`,
		} {
			_, errs := validation.ValidateCreate([]byte(body))

			assert.Equal(t, []string{"amount"}, fields(errs), body)
			assert.Equal(t, "Amount must be greater than zero", messageFor(errs, "amount"))
		}
	})

	t.Run("rejects non-finite amounts", func(t *testing.T) {
		_, errs := validation.ValidateCreate([]byte(`{"amount":1e400,"currency":"USD"}`))

		assert.Equal(t, []string{"amount"}, fields(errs))
		assert.Equal(t, "Amount must be a finite number", messageFor(errs, "amount"))
	})

	t.Run("rejects non-numeric amounts", func(t *testing.T) {
		_, errs := validation.ValidateCreate([]byte(`{"amount":"1000","currency":"USD"}`))

		assert.Equal(t, []string{"amount"}, fields(errs))
		assert.Equal(t, "Amount must be a number", messageFor(errs, "amount"))
	})

	t.Run("rejects malformed currencies", func(t *testing.T) {
		for _, currency := range []string{`"usd"`, `"US"`, `"USDD"`, `"U2D"`, `""`, `"Usd"`} {
			_, errs := validation.ValidateCreate([]byte(`{"amount":10,"currency":` + currency + `}`))

			assert.Equal(t, []string{"currency"}, fields(errs), currency)
			assert.Equal(t, "Currency must be a 3-letter ISO currency code (e.g., AUD)", messageFor(errs, "currency"))
		}
	})

	t.Run("rejects non-string currency", func(t *testing.T) {
		_, errs := validation.ValidateCreate([]byte(`{"amount":10,"currency":840}`))

		assert.Equal(t, "Currency must be a string", messageFor(errs, "currency"))
	})

	t.Run("collects every violation", func(t *testing.T) {
		_, errs := validation.ValidateCreate([]byte(`{"amount":-5,"currency":"us"}`))

		assert.ElementsMatch(t, []string{"amount", "currency"}, fields(errs))
	})

	t.Run("accepts trailing whitespace after the body", func(t *testing.T) {
		input, errs := validation.ValidateCreate([]byte("{\"amount\":1,\"currency\":\"USD\"}\n"))

		require.Empty(t, errs)
		assert.Equal(t, "USD", input.Currency)
	})

	t.Run("treats malformed bodies as empty objects", func(t *testing.T) {
		for _, body := range []string{
			``, `{`, `null`, `[]`, `"text"`, `42`,
			`{"amount":1000,"currency":"USD"`,
			`{"amount":1000,"currency":"USD"} trailing`,
			`{"amount":1000,"currency":"USD"}{"x":1}`,
		} {
			_, errs := validation.ValidateCreate([]byte(body))

			assert.Equal(t, "Amount is required", messageFor(errs, "amount"), body)
			assert.Equal(t, "Currency is required", messageFor(errs, "currency"), body)
			assert.Len(t, errs, 2, body)
		}
	})
}

func TestValidateListQuery(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		query, errs := validation.ValidateListQuery(map[string]string{})

		require.Empty(t, errs)
		assert.Equal(t, validation.ListQuery{Limit: 20, Skip: 0}, query)
	})

	t.Run("treats empty values as absent", func(t *testing.T) {
		query, errs := validation.ValidateListQuery(map[string]string{"currency": "", "limit": "", "skip": ""})

		require.Empty(t, errs)
		assert.Equal(t, validation.ListQuery{Limit: 20, Skip: 0}, query)
	})

	t.Run("coerces limit and skip", func(t *testing.T) {
		query, errs := validation.ValidateListQuery(map[string]string{"currency": "EUR", "limit": "5", "skip": "10"})

		require.Empty(t, errs)
		assert.Equal(t, validation.ListQuery{Currency: "EUR", Limit: 5, Skip: 10}, query)
	})

	t.Run("limit bounds are inclusive", func(t *testing.T) {
		for _, limit := range []string{"1", "100"} {
			_, errs := validation.ValidateListQuery(map[string]string{"limit": limit})

			assert.Empty(t, errs, limit)
		}
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		cases := map[string]map[string]string{
			"limit": {"limit": "0"},
			"skip":  {"skip": "-1"},
		}
		for field, raw := range cases {
			_, errs := validation.ValidateListQuery(raw)

			assert.Equal(t, []string{field}, fields(errs))
		}

		_, errs := validation.ValidateListQuery(map[string]string{"limit": "101"})
		assert.Equal(t, "Limit must be between 1 and 100", messageFor(errs, "limit"))
	})

	t.Run("integers beyond int range fail the range rule", func(t *testing.T) {
		_, errs := validation.ValidateListQuery(map[string]string{
			"limit": "99999999999999999999",
			"skip":  "-99999999999999999999",
		})

		assert.Equal(t, "Limit must be between 1 and 100", messageFor(errs, "limit"))
		assert.Equal(t, "Skip must be zero or greater", messageFor(errs, "skip"))
		assert.Len(t, errs, 2)
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		_, errs := validation.ValidateListQuery(map[string]string{"limit": "ten", "skip": "1.5"})

		assert.Equal(t, "Limit must be a number", messageFor(errs, "limit"))
		assert.Equal(t, "Skip must be a number", messageFor(errs, "skip"))
		assert.Len(t, errs, 2)
	})

	t.Run("rejects lowercase currency", func(t *testing.T) {
		_, errs := validation.ValidateListQuery(map[string]string{"currency": "usd"})

		assert.Equal(t, []string{"currency"}, fields(errs))
	})
}
