package project

import (
	"strings"

	"github.com/rpggio/fieldbook/internal/validation"
)

// FormInput carries the raw project form fields. Numeric and date fields
// arrive as strings so unparsable input can be flagged instead of lost.
type FormInput struct {
	Title       string
	ClientID    string
	Description string
	Budget      string
	StartDate   string
	EndDate     string
	Notes       string
}

// ValidateForm checks project form input and returns every problem at once.
func ValidateForm(in FormInput) validation.Errors {
	errs := validation.Errors{}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs.Add("title", "Project title is required")
	} else if len(title) < 3 {
		errs.Add("title", "Project title must be at least 3 characters")
	} else if len(title) > 100 {
		errs.Add("title", "Project title must be less than 100 characters")
	}

	validation.RequireClientID(errs, in.ClientID)

	if len(strings.TrimSpace(in.Description)) > 1000 {
		errs.Add("description", "Description must be less than 1000 characters")
	}

	validation.CheckMoney(errs, "budget", in.Budget)
	validation.CheckDateRange(errs, "end_date", in.StartDate, in.EndDate)

	if len(strings.TrimSpace(in.Notes)) > 500 {
		errs.Add("notes", "Notes must be less than 500 characters")
	}

	return errs
}
