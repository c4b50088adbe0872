// Package validation turns untyped request input into typed values or a
// list of field-addressed errors.
package validation

import (
	"reflect"
	"strings"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/go-playground/validator"
)

// ValidationError addresses one rejected field. Field is dot-joined for
// nested paths.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every violation of a single input.
type Errors []ValidationError

func (e *Errors) add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

func (e Errors) has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// ruleMessages maps "<field>.<tag>" to the message reported for a failed rule.
var ruleMessages = map[string]string{
	"amount.gt":              "Amount must be greater than zero",
	"currency.currency_code": "Currency must be a 3-letter ISO currency code (e.g., AUD)",
	"limit.min":              "Limit must be between 1 and 100",
	"limit.max":              "Limit must be between 1 and 100",
	"skip.min":               "Skip must be zero or greater",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return domain.IsCurrencyCode(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// checkRules runs the struct-tag rules of s and appends a message for every
// failure on a field that has not already been rejected.
func checkRules(s any, errs *Errors) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.add("", err.Error())
		return
	}

	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if errs.has(field) {
			continue
		}
		msg, ok := ruleMessages[field+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		errs.add(field, msg)
	}
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
