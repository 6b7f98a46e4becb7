package proposal

import (
	"strings"

	"github.com/rpggio/fieldbook/internal/validation"
)

// FormInput carries the raw proposal form fields.
type FormInput struct {
	Title       string
	ClientID    string
	Description string
	Subtotal    string
	Tax         string
	Total       string
	ValidUntil  string
	Notes       string
}

// ValidateForm checks proposal form input and returns every problem at once.
func ValidateForm(in FormInput) validation.Errors {
	errs := validation.Errors{}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs.Add("title", "Proposal title is required")
	} else if len(title) < 3 {
		errs.Add("title", "Proposal title must be at least 3 characters")
	} else if len(title) > 100 {
		errs.Add("title", "Proposal title must be less than 100 characters")
	}

	validation.RequireClientID(errs, in.ClientID)

	if len(strings.TrimSpace(in.Description)) > 1000 {
		errs.Add("description", "Description must be less than 1000 characters")
	}

	validation.CheckMoney(errs, "subtotal", in.Subtotal)
	validation.CheckMoney(errs, "tax", in.Tax)
	validation.CheckMoney(errs, "total", in.Total)

	if until := strings.TrimSpace(in.ValidUntil); until != "" {
		if _, err := validation.ParseDate(until); err != nil {
			errs.Add("valid_until", "Invalid date format")
		}
	}

	if len(strings.TrimSpace(in.Notes)) > 500 {
		errs.Add("notes", "Notes must be less than 500 characters")
	}

	return errs
}
