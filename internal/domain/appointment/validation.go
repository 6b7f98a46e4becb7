package appointment

import (
	"strconv"
	"strings"

	"github.com/rpggio/fieldbook/internal/validation"
)

// FormInput carries the raw appointment form fields.
type FormInput struct {
	Title    string
	ClientID string
	Date     string
	Duration string
	Notes    string
}

// ValidateForm checks appointment form input and returns every problem at
// once.
func ValidateForm(in FormInput) validation.Errors {
	errs := validation.Errors{}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs.Add("title", "Appointment title is required")
	} else if len(title) > 100 {
		errs.Add("title", "Appointment title must be less than 100 characters")
	}

	validation.RequireClientID(errs, in.ClientID)

	if date := strings.TrimSpace(in.Date); date == "" {
		errs.Add("date", "Appointment date is required")
	} else if _, err := validation.ParseDate(date); err != nil {
		errs.Add("date", "Invalid date format")
	}

	if dur := strings.TrimSpace(in.Duration); dur != "" {
		if minutes, err := strconv.Atoi(dur); err != nil || minutes <= 0 {
			errs.Add("duration", "Duration must be a positive number of minutes")
		}
	}

	if len(strings.TrimSpace(in.Notes)) > 500 {
		errs.Add("notes", "Notes must be less than 500 characters")
	}

	return errs
}
