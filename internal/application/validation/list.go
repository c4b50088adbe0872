package validation

import (
	"errors"
	"strconv"
)

const (
	DefaultLimit = 20
	DefaultSkip  = 0
)

// ListQuery is a list request that passed every rule. Limit and Skip are
// always in range.
type ListQuery struct {
	Currency string `json:"currency" validate:"omitempty,currency_code"`
	Limit    int    `json:"limit" validate:"min=1,max=100"`
	Skip     int    `json:"skip" validate:"min=0"`
}

// ValidateListQuery checks raw query parameters. Absent or empty values take
// their defaults.
func ValidateListQuery(raw map[string]string) (ListQuery, Errors) {
	query := ListQuery{
		Currency: raw["currency"],
		Limit:    DefaultLimit,
		Skip:     DefaultSkip,
	}
	var errs Errors

	if s := raw["limit"]; s != "" {
		n, err := parseInt(s)
		if err != nil {
			errs.add("limit", "Limit must be a number")
		} else {
			query.Limit = n
		}
	}

	if s := raw["skip"]; s != "" {
		n, err := parseInt(s)
		if err != nil {
			errs.add("skip", "Skip must be a number")
		} else {
			query.Skip = n
		}
	}

	checkRules(query, &errs)

	if len(errs) > 0 {
		return ListQuery{}, errs
	}
	return query, nil
}

// parseInt accepts any integer. Values beyond the int range are clamped so
// the range rules report them instead of the number rule.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}
