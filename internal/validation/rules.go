package validation

import (
	"strconv"
	"strings"
)

// MaxMoney is the sanity ceiling for monetary inputs.
const MaxMoney = 10_000_000

// RequireClientID flags a missing or non-positive-integer client reference.
func RequireClientID(errs Errors, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs.Add("client_id", "Client ID is required")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		errs.Add("client_id", "Client ID must be a valid positive number")
	}
}

// CheckMoney flags an optional monetary field that is present but does not
// parse to a non-negative number under MaxMoney.
func CheckMoney(errs Errors, field, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		errs.Add(field, "Must be a valid positive number")
		return
	}
	if value > MaxMoney {
		errs.Add(field, "Must be less than $10,000,000")
	}
}

// CheckDateRange flags an end date preceding the start date when both are
// present, recording the problem under the end field's name. Unparsable dates
// are flagged distinctly from ordering violations.
func CheckDateRange(errs Errors, endField, start, end string) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return
	}
	startAt, startErr := ParseDate(start)
	endAt, endErr := ParseDate(end)
	if startErr != nil || endErr != nil {
		errs.Add(endField, "Invalid date format")
		return
	}
	if endAt.Before(startAt) {
		errs.Add(endField, "End date must be after start date")
	}
}
