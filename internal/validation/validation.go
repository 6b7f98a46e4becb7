package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Errors maps field names to human-readable problems. An empty map means the
// input is valid. The "general" key is reserved for failures not attributable
// to a single field.
type Errors map[string]string

// Add records a problem for a field. The first problem per field wins so
// callers can chain rules from most to least specific.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; ok {
		return
	}
	e[field] = message
}

// Valid reports whether no problems were recorded.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Error wraps a non-empty Errors map so services can return validation
// failures as data rather than aborting.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError returns an *Error for a non-empty map, nil otherwise.
func NewError(fields Errors) error {
	if fields.Valid() {
		return nil
	}
	return &Error{Fields: fields}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses the date formats records carry (plain ISO dates from forms,
// RFC3339 from imports).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
