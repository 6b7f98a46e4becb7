package invoice

import (
	"strconv"
	"strings"

	"github.com/rpggio/fieldbook/internal/validation"
)

// FormInput carries the raw invoice form fields.
type FormInput struct {
	ClientID  string
	Subtotal  string
	Tax       string
	Total     string
	IssueDate string
	DueDate   string
	Notes     string
}

// ValidateForm checks invoice form input and returns every problem at once.
func ValidateForm(in FormInput) validation.Errors {
	errs := validation.Errors{}

	validation.RequireClientID(errs, in.ClientID)

	total := strings.TrimSpace(in.Total)
	if total == "" {
		errs.Add("total", "Total is required")
	} else if value, err := strconv.ParseFloat(total, 64); err != nil || value < 0 {
		errs.Add("total", "Total must be a valid positive number")
	} else if value > validation.MaxMoney {
		errs.Add("total", "Total must be less than $10,000,000")
	}

	validation.CheckMoney(errs, "subtotal", in.Subtotal)
	validation.CheckMoney(errs, "tax", in.Tax)
	validation.CheckDateRange(errs, "due_date", in.IssueDate, in.DueDate)

	if len(strings.TrimSpace(in.Notes)) > 500 {
		errs.Add("notes", "Notes must be less than 500 characters")
	}

	return errs
}
