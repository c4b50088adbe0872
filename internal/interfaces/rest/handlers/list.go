package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-records/internal/application"
	"github.com/DanielPopoola/payment-records/internal/application/validation"
	"github.com/DanielPopoola/payment-records/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

var listParams = []string{"currency", "limit", "skip"}

func (h *Handlers) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	query, err := bindListQuery(r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.listService.ListPayments(r.Context(), query)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToListPaymentsResponse(result))
}

// bindListQuery collects the list parameters as raw strings. Type
// conversion and range checks belong to the validator, so binding only
// fails when a parameter is repeated.
func bindListQuery(r *http.Request) (map[string]string, error) {
	values := r.URL.Query()
	query := make(map[string]string, len(listParams))
	var errs validation.Errors

	for _, name := range listParams {
		var value *string
		if err := runtime.BindQueryParameter("form", true, false, name, values, &value); err != nil {
			errs = append(errs, validation.ValidationError{
				Field:   name,
				Message: "Parameter must be given at most once",
			})
			continue
		}
		if value != nil {
			query[name] = *value
		}
	}

	if len(errs) > 0 {
		return nil, application.NewValidationError("Invalid query parameters", errs)
	}
	return query, nil
}
