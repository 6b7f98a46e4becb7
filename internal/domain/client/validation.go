package client

import (
	"strings"

	"github.com/rpggio/fieldbook/internal/validation"
)

// ValidateForm checks client form input and returns every problem at once.
func ValidateForm(name, email, notes string) validation.Errors {
	errs := validation.Errors{}

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Client name is required")
	} else if len(name) < 3 {
		errs.Add("name", "Client name must be at least 3 characters")
	} else if len(name) > 100 {
		errs.Add("name", "Client name must be less than 100 characters")
	}

	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		errs.Add("email", "Email address is not valid")
	}

	if len(strings.TrimSpace(notes)) > 500 {
		errs.Add("notes", "Notes must be less than 500 characters")
	}

	return errs
}
