package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
)

// CreateInput is a creation payload that passed every rule.
type CreateInput struct {
	Amount   float64 `json:"amount" validate:"gt=0"`
	Currency string  `json:"currency" validate:"currency_code"`
}

// ValidateCreate checks a raw creation body. Malformed JSON and non-object
// bodies are validated as an empty object.
func ValidateCreate(raw []byte) (CreateInput, Errors) {
	fields := decodeObject(raw)

	var (
		input CreateInput
		errs  Errors
	)

	switch v := fields["amount"].(type) {
	case nil:
		errs.add("amount", "Amount is required")
	case json.Number:
		f, err := v.Float64()
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			errs.add("amount", "Amount must be a finite number")
			break
		}
		input.Amount = f
	default:
		errs.add("amount", "Amount must be a number")
	}

	switch v := fields["currency"].(type) {
	case nil:
		errs.add("currency", "Currency is required")
	case string:
		input.Currency = v
	default:
		errs.add("currency", "Currency must be a string")
	}

	checkRules(input, &errs)

	if len(errs) > 0 {
		return CreateInput{}, errs
	}
	return input, nil
}

func decodeObject(raw []byte) map[string]any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return map[string]any{}
	}
	// Anything after the object makes the whole body malformed.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return map[string]any{}
	}
	return fields
}
